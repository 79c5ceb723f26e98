// formatter.go — localized display of computed values.
//
// The formatter is a pure function of a Value and a FormatConfig: grouped
// or ungrouped integers, trimmed or fixed decimals, currency symbol
// placement with crypto-specific precision, percent, duration bucketing
// with localized words, literal 0x/0b/0o prefixes, and scientific
// notation.
package sumpad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatConfig holds the display preferences for one pass.
type FormatConfig struct {
	// ThousandsSeparator groups integer digits with commas.
	ThousandsSeparator bool
	// Precision is 0 for automatic trimming, or a fixed 2, 4 or 6.
	Precision int
	// Keywords supplies localized duration words; nil means English.
	Keywords *ParserKeywords
}

const dateLayout = "2006-01-02 15:04:05"

// Format renders a value with its unit for display.
func Format(v Value, cfg FormatConfig) string {
	kw := cfg.Keywords
	if kw == nil {
		kw = ForLanguage("en")
	}

	switch v.Unit.Kind {
	case Percent:
		return formatNumber(v.Num, cfg) + "%"
	case Hex:
		return formatBase(v.Num, 16, "0x")
	case Binary:
		return formatBase(v.Num, 2, "0b")
	case Octal:
		return formatBase(v.Num, 8, "0o")
	case Scientific:
		return strconv.FormatFloat(v.Num, 'e', -1, 64)
	case DateKind:
		return time.Unix(int64(v.Num), 0).UTC().Format(dateLayout)
	case ElapsedDuration:
		return formatDuration(v.Num, cfg, kw)
	case CurrencyKind:
		return formatCurrency(v.Num, v.Unit.Code, cfg)
	case UnitNone:
		return formatNumber(v.Num, cfg)
	}

	sym := v.Unit.Symbol()
	if strings.HasPrefix(sym, "°") {
		return formatNumber(v.Num, cfg) + sym
	}
	return formatNumber(v.Num, cfg) + " " + sym
}

// formatNumber renders a bare number per the precision and grouping
// preferences.
func formatNumber(n float64, cfg FormatConfig) string {
	prec := -1
	if cfg.Precision == 2 || cfg.Precision == 4 || cfg.Precision == 6 {
		prec = cfg.Precision
	} else if math.Abs(n) < 1e15 {
		// automatic mode: round away float noise, then trim
		n = math.Round(n*1e10) / 1e10
	}
	s := strconv.FormatFloat(n, 'f', prec, 64)
	if cfg.ThousandsSeparator {
		s = groupThousands(s)
	}
	return s
}

func formatFixed(n float64, decimals int, cfg FormatConfig) string {
	s := strconv.FormatFloat(n, 'f', decimals, 64)
	if cfg.ThousandsSeparator {
		s = groupThousands(s)
	}
	return s
}

// groupThousands inserts commas into the integer part of a formatted
// number.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	out := intPart + frac
	if neg {
		out = "-" + out
	}
	return out
}

func formatBase(n float64, base int, prefix string) string {
	i := int64(n)
	if i < 0 {
		return "-" + prefix + strconv.FormatInt(-i, base)
	}
	return prefix + strconv.FormatInt(i, base)
}

// formatCurrency places the symbol before the amount where the currency
// has one ("$102.00", "₿0.00012345") and falls back to a code suffix
// ("102.00 CAD"). Crypto precision: 8 decimals for coin-like units, none
// for whole-unit denominations, 2 for stablecoins, magnitude-based
// otherwise.
func formatCurrency(n float64, code string, cfg FormatConfig) string {
	decimals := 2
	if cryptoCodes[code] {
		decimals = cryptoDecimals(code, n)
	}
	num := formatFixed(n, decimals, cfg)
	if sym, ok := currencySymbols[code]; ok {
		return sym + num
	}
	return num + " " + code
}

func cryptoDecimals(code string, n float64) int {
	switch code {
	case "BTC", "ETH":
		return 8
	case "SAT":
		return 0
	case "USDT", "USDC", "DAI":
		return 2
	}
	switch abs := math.Abs(n); {
	case abs >= 1000:
		return 2
	case abs >= 1:
		return 4
	default:
		return 6
	}
}

// formatDuration buckets a second count to the largest unit exceeding its
// threshold, using the bundle's localized words.
func formatDuration(seconds float64, cfg FormatConfig, kw *ParserKeywords) string {
	kind := Second
	n := seconds
	switch abs := math.Abs(seconds); {
	case abs >= 86400:
		kind, n = Day, seconds/86400
	case abs >= 3600:
		kind, n = Hour, seconds/3600
	case abs >= 60:
		kind, n = Minute, seconds/60
	}
	words := kw.DurationWords[kind]
	word := words[1]
	if n == 1 {
		word = words[0]
	}
	return fmt.Sprintf("%s %s", formatNumber(n, cfg), word)
}
