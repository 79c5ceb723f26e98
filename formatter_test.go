// formatter_test.go
package sumpad

import "testing"

func fmtPlain(v Value) string {
	return Format(v, FormatConfig{})
}

func fmtGrouped(v Value) string {
	return Format(v, FormatConfig{ThousandsSeparator: true})
}

func Test_Formatter_Numbers(t *testing.T) {
	if got := fmtGrouped(Number(1234567.5)); got != "1,234,567.5" {
		t.Fatalf("want 1,234,567.5, got %q", got)
	}
	if got := fmtPlain(Number(1234567.5)); got != "1234567.5" {
		t.Fatalf("want ungrouped, got %q", got)
	}
	if got := fmtGrouped(Number(-1234567)); got != "-1,234,567" {
		t.Fatalf("want -1,234,567, got %q", got)
	}
	if got := fmtPlain(Number(512)); got != "512" {
		t.Fatalf("integers must not grow decimals, got %q", got)
	}

	// automatic mode rounds away float noise
	if got := fmtPlain(Number(0.1 + 0.2)); got != "0.3" {
		t.Fatalf("want 0.3, got %q", got)
	}

	if got := Format(Number(3.14159), FormatConfig{Precision: 2}); got != "3.14" {
		t.Fatalf("want 3.14, got %q", got)
	}
	if got := Format(Number(2), FormatConfig{Precision: 4}); got != "2.0000" {
		t.Fatalf("want 2.0000, got %q", got)
	}
}

func Test_Formatter_Units(t *testing.T) {
	if got := fmtPlain(Value{Num: 5, Unit: Unit{Kind: Kilometer}}); got != "5 km" {
		t.Fatalf("want 5 km, got %q", got)
	}
	// degree-prefixed symbols attach without a space
	if got := fmtPlain(Value{Num: 20.5, Unit: Unit{Kind: Celsius}}); got != "20.5°C" {
		t.Fatalf("want 20.5°C, got %q", got)
	}
	if got := fmtPlain(Value{Num: 12.5, Unit: Unit{Kind: Percent}}); got != "12.5%" {
		t.Fatalf("want 12.5%%, got %q", got)
	}
}

func Test_Formatter_Currency(t *testing.T) {
	if got := fmtGrouped(Value{Num: 102, Unit: CurrencyUnit("USD")}); got != "$102.00" {
		t.Fatalf("want $102.00, got %q", got)
	}
	if got := fmtGrouped(Value{Num: 1234.5, Unit: CurrencyUnit("EUR")}); got != "€1,234.50" {
		t.Fatalf("want €1,234.50, got %q", got)
	}
	// no symbol: trailing code
	if got := fmtPlain(Value{Num: 102, Unit: CurrencyUnit("CAD")}); got != "102.00 CAD" {
		t.Fatalf("want 102.00 CAD, got %q", got)
	}
	// crypto precision
	if got := fmtPlain(Value{Num: 0.5, Unit: CurrencyUnit("BTC")}); got != "₿0.50000000" {
		t.Fatalf("want 8 decimals for BTC, got %q", got)
	}
	if got := fmtPlain(Value{Num: 150, Unit: CurrencyUnit("SAT")}); got != "150 SAT" {
		t.Fatalf("want whole sats, got %q", got)
	}
	if got := fmtPlain(Value{Num: 10, Unit: CurrencyUnit("USDT")}); got != "10.00 USDT" {
		t.Fatalf("want stablecoin 2 decimals, got %q", got)
	}
}

func Test_Formatter_Bases(t *testing.T) {
	if got := fmtPlain(Value{Num: 255, Unit: Unit{Kind: Hex}}); got != "0xff" {
		t.Fatalf("want 0xff, got %q", got)
	}
	if got := fmtPlain(Value{Num: -255, Unit: Unit{Kind: Hex}}); got != "-0xff" {
		t.Fatalf("want sign outside prefix, got %q", got)
	}
	if got := fmtPlain(Value{Num: 5, Unit: Unit{Kind: Binary}}); got != "0b101" {
		t.Fatalf("want 0b101, got %q", got)
	}
	if got := fmtPlain(Value{Num: 15, Unit: Unit{Kind: Octal}}); got != "0o17" {
		t.Fatalf("want 0o17, got %q", got)
	}
}

func Test_Formatter_Scientific(t *testing.T) {
	if got := fmtPlain(Value{Num: 123000, Unit: Unit{Kind: Scientific}}); got != "1.23e+05" {
		t.Fatalf("want 1.23e+05, got %q", got)
	}
}

func Test_Formatter_Date(t *testing.T) {
	if got := fmtPlain(Value{Num: 0, Unit: Unit{Kind: DateKind}}); got != "1970-01-01 00:00:00" {
		t.Fatalf("want epoch, got %q", got)
	}
}

func Test_Formatter_Duration_Localized(t *testing.T) {
	en := FormatConfig{}
	if got := Format(Value{Num: 90, Unit: Unit{Kind: ElapsedDuration}}, en); got != "1.5 minutes" {
		t.Fatalf("want 1.5 minutes, got %q", got)
	}
	if got := Format(Value{Num: 1, Unit: Unit{Kind: ElapsedDuration}}, en); got != "1 second" {
		t.Fatalf("want singular second, got %q", got)
	}
	if got := Format(Value{Num: 86400, Unit: Unit{Kind: ElapsedDuration}}, en); got != "1 day" {
		t.Fatalf("want singular day, got %q", got)
	}

	es := FormatConfig{Keywords: ForLanguage("es")}
	if got := Format(Value{Num: 2 * 86400, Unit: Unit{Kind: ElapsedDuration}}, es); got != "2 días" {
		t.Fatalf("want 2 días, got %q", got)
	}
	if got := Format(Value{Num: 3600, Unit: Unit{Kind: ElapsedDuration}}, es); got != "1 hora" {
		t.Fatalf("want 1 hora, got %q", got)
	}
}
