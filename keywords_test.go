// keywords_test.go
package sumpad

import "testing"

func Test_Keywords_Merge_KeepsEveryEnglishKey(t *testing.T) {
	en := ForLanguage("en")
	for _, lang := range LanguageCodes() {
		kw := ForLanguage(lang)
		for k := range en.Keywords {
			if _, ok := kw.Keywords[k]; !ok {
				t.Fatalf("lang %s: english keyword %q lost in merge", lang, k)
			}
		}
		for k := range en.WordOperators {
			if _, ok := kw.WordOperators[k]; !ok {
				t.Fatalf("lang %s: english operator %q lost in merge", lang, k)
			}
		}
		for k := range en.UnitNames {
			if _, ok := kw.UnitNames[k]; !ok {
				t.Fatalf("lang %s: english unit name %q lost in merge", lang, k)
			}
		}
		for k := range en.CurrencyNames {
			if _, ok := kw.CurrencyNames[k]; !ok {
				t.Fatalf("lang %s: english currency name %q lost in merge", lang, k)
			}
		}
		for kind, tmpl := range kw.Errors {
			if tmpl == "" {
				t.Fatalf("lang %s: empty error template for kind %v", lang, kind)
			}
		}
	}
}

func Test_Keywords_Merge_OverlayWins(t *testing.T) {
	base := englishKeywords()
	overlay := &ParserKeywords{
		WordOperators: map[string]Operator{"plus": OpSub},
		Keywords:      map[string]Keyword{"dividend": KwSplit},
		LeadingNoise:  []string{"pray tell"},
	}
	merged := Merge(base, overlay)

	if merged.WordOperators["plus"] != OpSub {
		t.Fatalf("overlay must win on collision")
	}
	if merged.Keywords["dividend"] != KwSplit {
		t.Fatalf("overlay-only key missing")
	}
	if merged.Keywords["split"] != KwSplit {
		t.Fatalf("base key must survive")
	}
	// base is untouched
	if base.WordOperators["plus"] != OpAdd {
		t.Fatalf("Merge must not mutate its inputs")
	}

	seen := map[string]bool{}
	for _, s := range merged.LeadingNoise {
		if seen[s] {
			t.Fatalf("duplicate noise phrase %q after union", s)
		}
		seen[s] = true
	}
	if !seen["pray tell"] || !seen["what is"] {
		t.Fatalf("union must keep both sides: %v", merged.LeadingNoise)
	}
}

func Test_Keywords_ForLanguage_Normalization(t *testing.T) {
	if kw := ForLanguage("es-MX"); kw.Keywords["suma"] != KwSum {
		t.Fatalf("es-MX must resolve to spanish")
	}
	if kw := ForLanguage("PT_BR"); kw.Keywords["soma"] != KwSum {
		t.Fatalf("PT_BR must resolve to portuguese")
	}
	if kw := ForLanguage("fr"); kw != ForLanguage("en") {
		t.Fatalf("unknown language must fall back to english")
	}
	if kw := ForLanguage(""); kw != ForLanguage("en") {
		t.Fatalf("empty language must fall back to english")
	}
}

func Test_Keywords_English_CoreTables(t *testing.T) {
	en := ForLanguage("en")
	if en.Keywords["in"] != KwIn || en.Keywords["to"] != KwIn || en.Keywords["as"] != KwIn {
		t.Fatalf("conversion keywords wrong")
	}
	if en.Keywords["total"] != KwSum || en.Keywords["avg"] != KwAverage {
		t.Fatalf("aggregate keywords wrong")
	}
	if en.UnitNames["pound"] != Pound {
		t.Fatalf("pound must resolve to the weight unit")
	}
	if _, ok := en.UnitNames["in"]; ok {
		t.Fatalf("the word 'in' must never be a unit name")
	}
	if en.WordOperators["times"] != OpMul {
		t.Fatalf("word operators wrong")
	}
}
