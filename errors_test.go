// errors_test.go
package sumpad

import (
	"errors"
	"testing"
)

func Test_Errors_NewError_FallsBackToEnglish(t *testing.T) {
	bare := &ParserKeywords{} // no templates at all
	err := newError(bare, ErrDivisionByZero)
	if err.Msg != "division by zero" {
		t.Fatalf("want english fallback, got %q", err.Msg)
	}

	err = newError(bare, ErrIncompatibleUnits, "kg", "°C")
	if err.Msg != "cannot convert kg to °C" {
		t.Fatalf("want formatted message, got %q", err.Msg)
	}
}

func Test_Errors_Predicates(t *testing.T) {
	div := &EvalError{Kind: ErrDivisionByZero, Msg: "x"}
	if !IsDivisionByZero(div) || IsIncompatibleUnits(div) || IsDomainError(div) {
		t.Fatalf("predicate mismatch for %+v", div)
	}
	if IsDivisionByZero(errors.New("plain")) {
		t.Fatalf("foreign errors must not match")
	}
	var nilErr error
	if IsDomainError(nilErr) {
		t.Fatalf("nil must not match")
	}
}

func Test_Errors_PrettyLineError(t *testing.T) {
	got := PrettyLineError(3, "10 / 0", "division by zero")
	want := "   3 | 10 / 0\n     | ^ division by zero\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
