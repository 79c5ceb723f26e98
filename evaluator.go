// evaluator.go — the multi-line document pass.
//
// One EvaluateDocument call is one pass: a fresh variable environment and
// result history are created at pass start and returned to the caller at
// pass end; nothing is retained between calls, and nothing here blocks on
// external data — the rate table is whatever snapshot the caller handed
// in. Failures are captured per line; one line's error never prevents
// evaluation of its siblings.
//
// Per line, in order: tokenize, strip noise words, try the
// natural-language sentence shapes (assignment, aggregates, split,
// compound tip/tax+split), and only then fall back to general expression
// evaluation.
package sumpad

import "strings"

// LineResult is the outcome of evaluating one line.
type LineResult struct {
	Text     string
	Value    *Value // nil when the line is blank, comment-only, or errored
	Err      *EvalError
	Variable string // variable name bound by an assignment line
}

// Options configures one evaluation pass.
type Options struct {
	Keywords *ParserKeywords // nil means English
	Rates    *RateTable      // nil means the static fallback table
}

// DocumentResult is the output of one pass: per-line results plus the
// final variable bindings (read by the autocomplete collaborator, then
// discarded).
type DocumentResult struct {
	Lines []LineResult
	Vars  map[string]Value
}

// EvaluateDocument evaluates a whole newline-delimited note.
func EvaluateDocument(text string, opts Options) *DocumentResult {
	kw := opts.Keywords
	if kw == nil {
		kw = ForLanguage("en")
	}
	rates := opts.Rates
	if rates == nil {
		rates = FallbackRates()
	}
	c := &evalContext{
		kw:    kw,
		rates: rates,
		vars:  map[string]Value{},
	}
	for _, line := range strings.Split(text, "\n") {
		c.results = append(c.results, c.evalLine(line))
	}
	return &DocumentResult{Lines: c.results, Vars: c.vars}
}

// evalContext is the per-pass state: the active bundle and rate snapshot
// (read-only) plus variables and the result history so far.
type evalContext struct {
	kw      *ParserKeywords
	rates   *RateTable
	vars    map[string]Value
	results []LineResult
}

func (c *evalContext) invalid(near string) *EvalError {
	err := newError(c.kw, ErrInvalidExpression)
	if near != "" {
		err.Msg += ": " + near
	}
	return err
}

// unknownWord builds an invalid-expression error for an unrecognized
// identifier, with a nearest-match suggestion when one is close enough.
func (c *evalContext) unknownWord(name string) *EvalError {
	err := c.invalid(name)
	if hint := c.suggest(name); hint != "" {
		err.Msg += " (" + hint + "?)"
	}
	return err
}

// prevValue returns the value of the nearest preceding line that produced
// one.
func (c *evalContext) prevValue() (Value, bool) {
	for i := len(c.results) - 1; i >= 0; i-- {
		if c.results[i].Value != nil {
			return *c.results[i].Value, true
		}
	}
	return Value{}, false
}

func (c *evalContext) evalLine(line string) LineResult {
	res := LineResult{Text: line}

	toks := Tokenize(line, c.kw)
	toks = dropComments(toks)
	toks = c.stripNoise(toks)
	if len(toks) == 0 {
		return res // blank or comment-only: neither value nor error
	}

	v, name, err := c.evalShapes(toks)
	if err != nil {
		res.Err = err
		return res
	}
	res.Value = &v
	res.Variable = name
	if name != "" {
		c.vars[name] = v
	}
	return res
}

func dropComments(ts []Token) []Token {
	out := ts[:0:len(ts)]
	for _, t := range ts {
		if t.Type != TokComment {
			out = append(out, t)
		}
	}
	return out
}

// stripNoise removes leading noise words ("what is", "qué es") and
// trailing noise keywords that follow a count ("ways", "people").
func (c *evalContext) stripNoise(ts []Token) []Token {
	for len(ts) > 0 && isNoiseWord(ts[0], c.leadingNoiseWords()) {
		ts = ts[1:]
	}
	for len(ts) > 1 && isTrailingNoise(ts[len(ts)-1], ts[len(ts)-2], c.kw) {
		ts = ts[:len(ts)-1]
	}
	return ts
}

func isNoiseWord(t Token, noise map[string]bool) bool {
	if t.Type != TokVariable && t.Type != TokWord {
		return false
	}
	return noise[strings.ToLower(t.Name)]
}

// isTrailingNoise accepts a trailing noise word only when a number comes
// right before it ("4 ways"), so a variable that happens to share the name
// still works elsewhere on the line.
func isTrailingNoise(last, prev Token, kw *ParserKeywords) bool {
	if last.Type != TokVariable && last.Type != TokWord {
		return false
	}
	if !kw.TrailingNoise[strings.ToLower(last.Name)] {
		return false
	}
	return prev.Type == TokNumber
}

// leadingNoiseWords flattens the bundle's noise phrases into a word set.
func (c *evalContext) leadingNoiseWords() map[string]bool {
	words := map[string]bool{}
	for _, phrase := range c.kw.LeadingNoise {
		for _, w := range strings.Fields(phrase) {
			words[w] = true
		}
	}
	return words
}

// evalShapes recognizes the sentence shapes, then falls back to a general
// expression. It returns the value and, for assignments, the bound name.
func (c *evalContext) evalShapes(ts []Token) (Value, string, *EvalError) {
	// Assignment: <identifier> = <expr>
	if len(ts) >= 3 && ts[0].Type == TokVariable &&
		ts[1].Type == TokOperator && ts[1].Op == OpAssign {
		v, err := c.evalSplitOrExpr(ts[2:])
		if err != nil {
			return Value{}, "", err
		}
		return v, ts[0].Name, nil
	}

	// Bare aggregate: sum / total / average / avg
	if len(ts) == 1 && ts[0].Type == TokKeyword {
		switch ts[0].Keyword {
		case KwSum:
			return c.aggregate(false)
		case KwAverage:
			return c.aggregate(true)
		}
	}

	v, err := c.evalSplitOrExpr(ts)
	return v, "", err
}

// evalSplitOrExpr handles the split shapes, including a tip/tax result
// feeding a trailing split clause, and otherwise evaluates a general
// expression.
func (c *evalContext) evalSplitOrExpr(ts []Token) (Value, *EvalError) {
	idx := topLevelSplit(ts)
	if idx < 0 {
		return c.evalTokens(ts)
	}

	var amountToks, countToks []Token
	if idx == 0 {
		// split <amount> between <N>
		rest := ts[1:]
		j := splitSeparator(rest)
		if j < 0 {
			return Value{}, c.invalid("split")
		}
		amountToks, countToks = rest[:j], rest[j+1:]
	} else {
		// <amount> split [among|between] <N>
		amountToks, countToks = ts[:idx], ts[idx+1:]
		if len(countToks) > 0 && isSplitSeparator(countToks[0]) {
			countToks = countToks[1:]
		}
	}

	amount, err := c.evalTokens(amountToks)
	if err != nil {
		return Value{}, err
	}
	count, err := c.evalTokens(countToks)
	if err != nil {
		return Value{}, err
	}
	if count.Num <= 0 {
		return Value{}, newError(c.kw, ErrDomain)
	}
	return Value{Num: amount.Num / count.Num, Unit: amount.Unit}, nil
}

// topLevelSplit finds the split keyword outside any parentheses.
func topLevelSplit(ts []Token) int {
	depth := 0
	for i, t := range ts {
		switch t.Type {
		case TokLeftParen:
			depth++
		case TokRightParen:
			depth--
		case TokKeyword:
			if depth == 0 && t.Keyword == KwSplit {
				return i
			}
		}
	}
	return -1
}

// isSplitSeparator matches the word between the amount and the count:
// between/among, or a division word ("entre") in languages where the
// separator doubles as the division operator.
func isSplitSeparator(t Token) bool {
	if t.Type == TokKeyword && (t.Keyword == KwBetween || t.Keyword == KwAmong) {
		return true
	}
	return t.Type == TokOperator && t.Op == OpDiv
}

func splitSeparator(ts []Token) int {
	depth := 0
	for i, t := range ts {
		switch t.Type {
		case TokLeftParen:
			depth++
		case TokRightParen:
			depth--
		default:
			if depth == 0 && isSplitSeparator(t) {
				return i
			}
		}
	}
	return -1
}

// aggregate folds the contiguous run of immediately preceding lines with
// numeric results, stopping at the first blank line or document start.
// Comment-only lines inside the run are skipped. Values are combined in
// the unit of the nearest preceding valued line; convertible values are
// converted into it, anything else contributes its bare number.
func (c *evalContext) aggregate(mean bool) (Value, string, *EvalError) {
	var sum float64
	var unit Unit
	count := 0
	for i := len(c.results) - 1; i >= 0; i-- {
		r := c.results[i]
		if strings.TrimSpace(r.Text) == "" {
			break
		}
		if r.Value == nil {
			continue
		}
		v := *r.Value
		if count == 0 {
			unit = v.Unit
			sum = v.Num
		} else if sameConvertibleCategory(v.Unit, unit) {
			n, err := Convert(v.Num, v.Unit, unit, c.rates)
			if err == nil {
				sum += n
			} else {
				sum += v.Num
			}
		} else {
			sum += v.Num
		}
		count++
	}
	if count == 0 {
		return Value{}, "", c.invalid("")
	}
	if mean {
		sum /= float64(count)
	}
	return Value{Num: sum, Unit: unit}, "", nil
}
