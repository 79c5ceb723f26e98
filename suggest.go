// suggest.go — nearest-word hints for unknown identifiers.
//
// When a line references a word the engine does not know, the error text
// gets a "did you mean" hint picked by Jaro-Winkler similarity over the
// bound variables, unit names and currency codes. This only decorates
// error messages; the autocomplete engine proper is an external
// collaborator.
package sumpad

import (
	"strings"

	"github.com/xrash/smetrics"
)

const suggestThreshold = 0.90

// suggest returns the closest known word to name, or "" when nothing is
// close enough to be worth showing.
func (c *evalContext) suggest(name string) string {
	lower := strings.ToLower(name)
	best, bestScore := "", suggestThreshold

	consider := func(cand string) {
		if cand == "" || cand == lower {
			return
		}
		score := smetrics.JaroWinkler(lower, strings.ToLower(cand), 0.7, 4)
		if score > bestScore {
			best, bestScore = cand, score
		}
	}

	for v := range c.vars {
		consider(v)
	}
	for u := range c.kw.UnitNames {
		consider(u)
	}
	for code := range fallbackPerUSD {
		consider(code)
	}
	return best
}
