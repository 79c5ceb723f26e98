// errors.go: the per-line error taxonomy and user-facing rendering.
//
// Every failure the engine can produce is an *EvalError carrying one of a
// small, closed set of kinds. Errors never cross line boundaries: the
// evaluator catches them and stores the localized message on the line's
// LineResult. The message text itself comes from the active ParserKeywords
// bundle, so callers see errors in the note's language.
//
// PrettyLineError renders a caret-annotated snippet for terminal output;
// it is used by cmd/sumpad when a line fails, and is deliberately plain
// text (no ANSI colors).
package sumpad

import (
	"fmt"
	"strings"
)

// ErrorKind classifies an evaluation failure.
type ErrorKind int

const (
	ErrGeneric ErrorKind = iota
	ErrDivisionByZero
	ErrInvalidExpression
	ErrIncompatibleUnits
	ErrDomain
)

// EvalError is the engine's only error type. Msg is already localized.
type EvalError struct {
	Kind ErrorKind
	Msg  string
}

func (e *EvalError) Error() string { return e.Msg }

// IsDivisionByZero reports whether err is an *EvalError of kind
// ErrDivisionByZero.
func IsDivisionByZero(err error) bool { return kindOf(err) == ErrDivisionByZero }

// IsIncompatibleUnits reports whether err is an *EvalError of kind
// ErrIncompatibleUnits.
func IsIncompatibleUnits(err error) bool { return kindOf(err) == ErrIncompatibleUnits }

// IsDomainError reports whether err is an *EvalError of kind ErrDomain.
func IsDomainError(err error) bool { return kindOf(err) == ErrDomain }

func kindOf(err error) ErrorKind {
	if e, ok := err.(*EvalError); ok {
		return e.Kind
	}
	return -1
}

// newError builds a localized *EvalError. The format arguments are applied
// to the message template looked up in kw for the given kind.
func newError(kw *ParserKeywords, kind ErrorKind, args ...any) *EvalError {
	tmpl := kw.Errors[kind]
	if tmpl == "" {
		tmpl = englishErrors[kind]
	}
	msg := tmpl
	if len(args) > 0 {
		msg = fmt.Sprintf(tmpl, args...)
	}
	return &EvalError{Kind: kind, Msg: msg}
}

// englishErrors is the fallback message table; the English keyword bundle
// uses the same strings.
var englishErrors = map[ErrorKind]string{
	ErrGeneric:           "could not evaluate",
	ErrDivisionByZero:    "division by zero",
	ErrInvalidExpression: "invalid expression",
	ErrIncompatibleUnits: "cannot convert %s to %s",
	ErrDomain:            "argument out of range",
}

// PrettyLineError renders a line error as a numbered snippet with a caret
// under the first column, suitable for logs and terminals:
//
//	   3 | 10 / 0
//	     | ^ division by zero
func PrettyLineError(lineNo int, lineText, msg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", lineNo, lineText)
	fmt.Fprintf(&b, "     | ^ %s\n", msg)
	return b.String()
}
