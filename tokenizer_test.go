// tokenizer_test.go
package sumpad

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, line string) []Token {
	t.Helper()
	return Tokenize(line, ForLanguage("en"))
}

func wantTypes(t *testing.T, line string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, line)
	gotTypes := make([]TokenType, len(got))
	for i, tok := range got {
		gotTypes[i] = tok.Type
	}
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nline:\n%s\nwant types:\n%v\ngot types:\n%v\n", line, want, gotTypes)
	}
	return got
}

func Test_Tokenizer_Arithmetic_Basic(t *testing.T) {
	got := wantTypes(t, "2 + 3 * (4 - 1)", []TokenType{
		TokNumber, TokOperator, TokNumber, TokOperator,
		TokLeftParen, TokNumber, TokOperator, TokNumber, TokRightParen,
	})
	if got[0].Num != 2 || got[1].Op != OpAdd || got[3].Op != OpMul {
		t.Fatalf("token payloads wrong: %+v", got[:4])
	}
}

func Test_Tokenizer_Operators_Symbols(t *testing.T) {
	got := wantTypes(t, "2 ** 3 << 1 & 7 | 8 ^ 5 ~ x = 1", []TokenType{
		TokNumber, TokOperator, TokNumber, TokOperator, TokNumber,
		TokOperator, TokNumber, TokOperator, TokNumber, TokOperator,
		TokNumber, TokOperator, TokVariable, TokOperator, TokNumber,
	})
	wantOps := []Operator{OpPow, OpShl, OpAnd, OpOr, OpXor, OpNot, OpAssign}
	var gotOps []Operator
	for _, tok := range got {
		if tok.Type == TokOperator {
			gotOps = append(gotOps, tok.Op)
		}
	}
	if !reflect.DeepEqual(gotOps, wantOps) {
		t.Fatalf("want ops %v, got %v", wantOps, gotOps)
	}
}

func Test_Tokenizer_CurrencySymbol_RequiresDigit(t *testing.T) {
	got := wantTypes(t, "$85", []TokenType{TokUnit, TokNumber})
	if got[0].Unit.Code != "USD" || got[1].Num != 85 {
		t.Fatalf("want $85 as USD 85, got %+v", got)
	}

	// a lone $ is not a currency token
	wantTypes(t, "$", []TokenType{TokWord})

	got = wantTypes(t, "R$10", []TokenType{TokUnit, TokNumber})
	if got[0].Unit.Code != "BRL" {
		t.Fatalf("want BRL for R$, got %q", got[0].Unit.Code)
	}

	// ₿ and Ξ may stand alone
	got = wantTypes(t, "₿", []TokenType{TokUnit})
	if got[0].Unit.Code != "BTC" {
		t.Fatalf("want BTC for ₿, got %q", got[0].Unit.Code)
	}
	got = wantTypes(t, "Ξ2", []TokenType{TokUnit, TokNumber})
	if got[0].Unit.Code != "ETH" {
		t.Fatalf("want ETH for Ξ, got %q", got[0].Unit.Code)
	}
}

func Test_Tokenizer_Numbers_BaseLiterals(t *testing.T) {
	got := wantTypes(t, "0xff", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 255 || got[1].Unit.Kind != Hex {
		t.Fatalf("want 255 hex, got %+v", got)
	}

	got = wantTypes(t, "0b101", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 5 || got[1].Unit.Kind != Binary {
		t.Fatalf("want 5 binary, got %+v", got)
	}

	got = wantTypes(t, "0o17", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 15 || got[1].Unit.Kind != Octal {
		t.Fatalf("want 15 octal, got %+v", got)
	}

	// "0 bytes" must stay a plain zero with a data unit, not a binary literal
	got = wantTypes(t, "0 bytes", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 0 || got[1].Unit.Kind != Byte {
		t.Fatalf("want 0 bytes, got %+v", got)
	}
}

func Test_Tokenizer_Numbers_ThousandsAndScientific(t *testing.T) {
	got := wantTypes(t, "1,234.5", []TokenType{TokNumber})
	if got[0].Num != 1234.5 {
		t.Fatalf("want 1234.5, got %v", got[0].Num)
	}

	got = wantTypes(t, "1e5", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 1e5 || got[1].Unit.Kind != Scientific {
		t.Fatalf("want 1e5 scientific, got %+v", got)
	}

	got = wantTypes(t, "2E-3", []TokenType{TokNumber, TokUnit})
	if got[0].Num != 2e-3 {
		t.Fatalf("want 0.002, got %v", got[0].Num)
	}

	// "e" followed by letters is a word, not an exponent
	got = wantTypes(t, "5 euros", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Code != "EUR" {
		t.Fatalf("want EUR, got %+v", got[1])
	}
}

func Test_Tokenizer_Degree_And_Temperatures(t *testing.T) {
	got := wantTypes(t, "90°", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Degree {
		t.Fatalf("want degree, got %+v", got[1])
	}
	got = wantTypes(t, "32°F", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Fahrenheit {
		t.Fatalf("want fahrenheit, got %+v", got[1])
	}
	got = wantTypes(t, "20 °c", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Celsius {
		t.Fatalf("want celsius, got %+v", got[1])
	}
}

func Test_Tokenizer_Percent_AlwaysPercent(t *testing.T) {
	got := wantTypes(t, "20%", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Percent {
		t.Fatalf("want percent, got %+v", got[1])
	}
}

func Test_Tokenizer_WordChain_KeywordBeatsUnit(t *testing.T) {
	// "in" is always the conversion keyword, never the inch unit
	got := wantTypes(t, "5 km in miles", []TokenType{TokNumber, TokUnit, TokKeyword, TokUnit})
	if got[2].Keyword != KwIn {
		t.Fatalf("want KwIn, got %+v", got[2])
	}
	if got[1].Unit.Kind != Kilometer || got[3].Unit.Kind != Mile {
		t.Fatalf("want km and mi, got %+v %+v", got[1], got[3])
	}

	// inches are reachable through the long name
	got = wantTypes(t, "5 inches", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Inch {
		t.Fatalf("want inch, got %+v", got[1])
	}
}

func Test_Tokenizer_WordChain_DividedBy(t *testing.T) {
	got := wantTypes(t, "10 divided by 2", []TokenType{TokNumber, TokOperator, TokNumber})
	if got[1].Op != OpDiv {
		t.Fatalf("want OpDiv, got %+v", got[1])
	}

	// "divided" without "by" is just a word
	wantTypes(t, "10 divided 2", []TokenType{TokNumber, TokVariable, TokNumber})
}

func Test_Tokenizer_SingleLetter_CaseSensitive(t *testing.T) {
	got := wantTypes(t, "300 K", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Kelvin {
		t.Fatalf("want kelvin, got %+v", got[1])
	}
	// lower-case k is an ordinary identifier
	wantTypes(t, "300 k", []TokenType{TokNumber, TokVariable})

	got = wantTypes(t, "100 C", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Celsius {
		t.Fatalf("want celsius, got %+v", got[1])
	}
	got = wantTypes(t, "100 F", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Fahrenheit {
		t.Fatalf("want fahrenheit, got %+v", got[1])
	}
}

func Test_Tokenizer_UnitPhrases_LongestMatch(t *testing.T) {
	got := wantTypes(t, "3 square meters", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != SquareMeter {
		t.Fatalf("want square meter, got %+v", got[1])
	}

	got = wantTypes(t, "2 fluid ounces", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != FluidOunce {
		t.Fatalf("want fluid ounce, got %+v", got[1])
	}

	got = wantTypes(t, "100 km/h", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != KilometerPerHour {
		t.Fatalf("want km/h, got %+v", got[1])
	}

	got = wantTypes(t, "10 m/s", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != MeterPerSecond {
		t.Fatalf("want m/s, got %+v", got[1])
	}

	// a half-matched phrase falls back to a plain word
	wantTypes(t, "square dance", []TokenType{TokVariable, TokVariable})
}

func Test_Tokenizer_Currency_WordsAndCodes(t *testing.T) {
	got := wantTypes(t, "100 usd", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Code != "USD" {
		t.Fatalf("want USD, got %+v", got[1])
	}
	got = wantTypes(t, "2 bitcoin", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Code != "BTC" {
		t.Fatalf("want BTC, got %+v", got[1])
	}
	got = wantTypes(t, "5000 sats", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Code != "SAT" {
		t.Fatalf("want SAT, got %+v", got[1])
	}
	got = wantTypes(t, "9 dollars", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Code != "USD" {
		t.Fatalf("want USD for dollars, got %+v", got[1])
	}
}

func Test_Tokenizer_Pound_IsWeight(t *testing.T) {
	got := wantTypes(t, "5 pounds", []TokenType{TokNumber, TokUnit})
	if got[1].Unit.Kind != Pound {
		t.Fatalf("want weight pound, got %+v", got[1])
	}
}

func Test_Tokenizer_Functions_And_FormatWords(t *testing.T) {
	got := wantTypes(t, "sqrt(16)", []TokenType{TokFunction, TokLeftParen, TokNumber, TokRightParen})
	if got[0].Name != "sqrt" {
		t.Fatalf("want sqrt, got %q", got[0].Name)
	}
	got = wantTypes(t, "255 in hex", []TokenType{TokNumber, TokKeyword, TokUnit})
	if got[2].Unit.Kind != Hex {
		t.Fatalf("want hex format word, got %+v", got[2])
	}
}

func Test_Tokenizer_Comments(t *testing.T) {
	wantTypes(t, "// note to self", []TokenType{TokComment})
	wantTypes(t, "# groceries", []TokenType{TokComment})
	got := wantTypes(t, "5 + 5 # rest of line", []TokenType{
		TokNumber, TokOperator, TokNumber, TokComment,
	})
	if got[3].End != len("5 + 5 # rest of line") {
		t.Fatalf("comment must span to end of line, got %+v", got[3])
	}
}

func Test_Tokenizer_RangeParity(t *testing.T) {
	kw := ForLanguage("en")
	lines := []string{
		"",
		"2 + 3 * 4",
		"20% tip on $85 // dinner",
		"# just a comment",
		"what is 1,000 km/h in mph?",
		"€5 + £3 - ₿0.001",
		"0xff & 0b1010",
		"x = fact(5) split 2 ways",
		"5 kg + 3 °C",
		"…unrecognized ¤ runes…",
	}
	for _, line := range lines {
		ts := Tokenize(line, kw)
		rs := TokenizeWithRanges(line, kw)
		if len(ts) != len(rs) {
			t.Fatalf("line %q: %d tokens but %d ranges", line, len(ts), len(rs))
		}
		prev := 0
		for i, r := range rs {
			if r.Type != ts[i].Type {
				t.Fatalf("line %q: range %d type %v != token type %v", line, i, r.Type, ts[i].Type)
			}
			if r.Start < prev || r.End < r.Start || r.End > len(line) {
				t.Fatalf("line %q: bad span %d..%d", line, r.Start, r.End)
			}
			prev = r.End
		}
	}
}
