// funcs.go — builtin monadic functions.
//
// Each builtin takes one parenthesized numeric argument. A domain
// violation yields ok=false and the evaluator turns that into a DomainError
// for the line; builtins never return NaN or Inf as a "result".
package sumpad

import (
	"math"
)

type builtinFunc struct {
	apply func(float64) (float64, bool)
	unit  UnitKind // display pseudo-unit stamped on the result, if any
}

func monadic(f func(float64) float64) builtinFunc {
	return builtinFunc{apply: func(x float64) (float64, bool) {
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}}
}

func domain(f func(float64) float64, ok func(float64) bool) builtinFunc {
	return builtinFunc{apply: func(x float64) (float64, bool) {
		if !ok(x) {
			return 0, false
		}
		return f(x), true
	}}
}

var builtinFuncs = map[string]builtinFunc{
	"sqrt": domain(math.Sqrt, func(x float64) bool { return x >= 0 }),
	"cbrt": monadic(math.Cbrt),
	"abs":  monadic(math.Abs),

	// log is base 10, the calculator convention; ln is natural.
	"log":   domain(math.Log10, positive),
	"ln":    domain(math.Log, positive),
	"log2":  domain(math.Log2, positive),
	"log10": domain(math.Log10, positive),

	"sin":  monadic(math.Sin),
	"cos":  monadic(math.Cos),
	"tan":  monadic(math.Tan),
	"asin": domain(math.Asin, unitInterval),
	"acos": domain(math.Acos, unitInterval),
	"atan": monadic(math.Atan),
	"sinh": monadic(math.Sinh),
	"cosh": monadic(math.Cosh),
	"tanh": monadic(math.Tanh),

	"round": monadic(math.Round),
	"ceil":  monadic(math.Ceil),
	"floor": monadic(math.Floor),

	"fact": {apply: factorial},

	// fromunix interprets a Unix timestamp; the result renders as a date.
	"fromunix": {
		apply: func(x float64) (float64, bool) {
			if x != math.Trunc(x) {
				return 0, false
			}
			return x, true
		},
		unit: DateKind,
	},
}

func positive(x float64) bool     { return x > 0 }
func unitInterval(x float64) bool { return x >= -1 && x <= 1 }

// factorial rejects negative, non-integer and overflow-magnitude (>170)
// inputs instead of producing undefined behavior. fact(0) is 1.
func factorial(x float64) (float64, bool) {
	if x < 0 || x != math.Trunc(x) || x > 170 {
		return 0, false
	}
	out := 1.0
	for i := 2.0; i <= x; i++ {
		out *= i
	}
	return out, true
}
