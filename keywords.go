// keywords.go — per-language lookup tables for the tokenizer and parser.
//
// Each language supplies a ParserKeywords bundle; the bundle that parsing
// actually uses is always the English base with the active language's
// overlay merged on top. Merging never removes an English key, overlay
// values win on collision, and set-valued fields union — so English syntax
// parses under every language.
//
// Bundles are built once at package init and must be treated as immutable
// by callers.
package sumpad

import "strings"

// Operator identifies an arithmetic or bitwise operator.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpNot // unary bitwise not
	OpAssign
)

// Keyword identifies a word with grammatical meaning.
type Keyword int

const (
	KwNone Keyword = iota
	KwIn   // in/into/as/to — unit conversion or display switch
	KwOf   // <pct>% of <value>
	KwOn   // increase by percentage (also the tip/tax preposition)
	KwOff  // decrease by percentage
	KwSplit
	KwBetween
	KwAmong
	KwTip
	KwTax
	KwSum
	KwAverage
	KwPrev
)

// ParserKeywords is one language's immutable lookup bundle.
type ParserKeywords struct {
	// WordOperators maps spelled-out operators ("plus", "más") to ops.
	WordOperators map[string]Operator
	// DividedBy lists two-word division phrases ("divided by").
	DividedBy [][2]string
	// Keywords maps grammar words to their Keyword.
	Keywords map[string]Keyword
	// UnitNames maps written unit names, symbols and multi-word phrases
	// (lower-cased) to unit kinds.
	UnitNames map[string]UnitKind
	// CurrencyNames maps spelled-out currency words to codes.
	CurrencyNames map[string]string
	// LeadingNoise lists phrases stripped from the start of a line.
	LeadingNoise []string
	// TrailingNoise lists words dropped when they trail a count.
	TrailingNoise map[string]bool
	// Errors holds the localized message templates per error kind.
	Errors map[ErrorKind]string
	// DurationWords holds {singular, plural} display words per time kind.
	DurationWords map[UnitKind][2]string
	// FormatWords maps display-format words to pseudo-units.
	FormatWords map[string]UnitKind
	// Autocomplete is the word list handed to the external suggestion
	// collaborator; the engine itself never reads it.
	Autocomplete []string
}

// ForLanguage returns the merged bundle for a language code ("en", "es",
// "pt"). Unknown codes fall back to English.
func ForLanguage(code string) *ParserKeywords {
	if kw, ok := languages[normalizeLang(code)]; ok {
		return kw
	}
	return languages["en"]
}

// LanguageCodes lists the built-in languages.
func LanguageCodes() []string { return []string{"en", "es", "pt"} }

func normalizeLang(code string) string {
	code = strings.ToLower(code)
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

var languages map[string]*ParserKeywords

func init() {
	en := englishKeywords()
	languages = map[string]*ParserKeywords{
		"en": en,
		"es": Merge(en, spanishOverlay()),
		"pt": Merge(en, portugueseOverlay()),
	}
}

// Merge layers overlay onto base: map entries from overlay win on key
// collision, list/set fields union. base and overlay are not mutated.
func Merge(base, overlay *ParserKeywords) *ParserKeywords {
	out := &ParserKeywords{
		WordOperators: mergeMaps(base.WordOperators, overlay.WordOperators),
		DividedBy:     append(append([][2]string{}, base.DividedBy...), overlay.DividedBy...),
		Keywords:      mergeMaps(base.Keywords, overlay.Keywords),
		UnitNames:     mergeMaps(base.UnitNames, overlay.UnitNames),
		CurrencyNames: mergeMaps(base.CurrencyNames, overlay.CurrencyNames),
		LeadingNoise:  unionList(base.LeadingNoise, overlay.LeadingNoise),
		TrailingNoise: mergeMaps(base.TrailingNoise, overlay.TrailingNoise),
		Errors:        mergeMaps(base.Errors, overlay.Errors),
		DurationWords: mergeMaps(base.DurationWords, overlay.DurationWords),
		FormatWords:   mergeMaps(base.FormatWords, overlay.FormatWords),
		Autocomplete:  unionList(base.Autocomplete, overlay.Autocomplete),
	}
	return out
}

func mergeMaps[K comparable, V any](base, overlay map[K]V) map[K]V {
	out := make(map[K]V, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

func unionList(base, overlay []string) []string {
	seen := make(map[string]bool, len(base)+len(overlay))
	out := make([]string, 0, len(base)+len(overlay))
	for _, lst := range [][]string{base, overlay} {
		for _, s := range lst {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// ─────────────────────────────── English base ───────────────────────────────

func englishKeywords() *ParserKeywords {
	units := mergeMaps(unitSymbols, map[string]UnitKind{
		"millimeter": Millimeter, "millimeters": Millimeter,
		"millimetre": Millimeter, "millimetres": Millimeter,
		"centimeter": Centimeter, "centimeters": Centimeter,
		"centimetre": Centimeter, "centimetres": Centimeter,
		"meter": Meter, "meters": Meter, "metre": Meter, "metres": Meter,
		"kilometer": Kilometer, "kilometers": Kilometer,
		"kilometre": Kilometer, "kilometres": Kilometer,
		"inch": Inch, "inches": Inch,
		"foot": Foot, "feet": Foot,
		"yard": Yard, "yards": Yard,
		"mile": Mile, "miles": Mile,
		"nautical mile": NauticalMile, "nautical miles": NauticalMile,

		"milligram": Milligram, "milligrams": Milligram,
		"gram": Gram, "grams": Gram,
		"kilogram": Kilogram, "kilograms": Kilogram,
		"kilo": Kilogram, "kilos": Kilogram,
		"tonne": Tonne, "tonnes": Tonne, "ton": Tonne, "tons": Tonne,
		"metric ton": Tonne, "metric tons": Tonne,
		"ounce": Ounce, "ounces": Ounce,
		// "pound" resolves to weight by default, even where a currency
		// reading would be possible.
		"pound": Pound, "pounds": Pound,
		"stone": Stone, "stones": Stone,

		"square meter": SquareMeter, "square meters": SquareMeter,
		"square metre": SquareMeter, "square metres": SquareMeter,
		"square kilometer": SquareKilometer, "square kilometers": SquareKilometer,
		"square foot": SquareFoot, "square feet": SquareFoot,
		"square inch": SquareInch, "square inches": SquareInch,
		"acres": Acre, "hectare": Hectare, "hectares": Hectare,

		"milliliter": Milliliter, "milliliters": Milliliter,
		"liter": Liter, "liters": Liter, "litre": Liter, "litres": Liter,
		"cubic meter": CubicMeter, "cubic meters": CubicMeter,
		"teaspoon": Teaspoon, "teaspoons": Teaspoon,
		"tablespoon": Tablespoon, "tablespoons": Tablespoon,
		"fluid ounce": FluidOunce, "fluid ounces": FluidOunce,
		"cups": Cup, "pints": Pint, "quarts": Quart,
		"gallon": Gallon, "gallons": Gallon,

		"millisecond": Millisecond, "milliseconds": Millisecond,
		"second": Second, "seconds": Second,
		"minute": Minute, "minutes": Minute,
		"hour": Hour, "hours": Hour,
		"days": Day, "weeks": Week, "months": Month, "years": Year,

		"bytes": Byte, "kilobyte": Kilobyte, "kilobytes": Kilobyte,
		"megabyte": Megabyte, "megabytes": Megabyte,
		"gigabyte": Gigabyte, "gigabytes": Gigabyte,
		"terabyte": Terabyte, "terabytes": Terabyte,
		"petabyte": Petabyte, "petabytes": Petabyte,

		"radian": Radian, "radians": Radian,
		"degree": Degree, "degrees": Degree,
		"gradian": Gradian, "gradians": Gradian, "turns": Turn,

		"pascal": Pascal, "pascals": Pascal, "bars": Bar,
		"atmosphere": Atmosphere, "atmospheres": Atmosphere,

		"joule": Joule, "joules": Joule,
		"calorie": Calorie, "calories": Calorie,
		"kilocalorie": Kilocalorie, "kilocalories": Kilocalorie,
		"watt hour": WattHour, "watt hours": WattHour,
		"kilowatt hour": KilowattHour, "kilowatt hours": KilowattHour,

		"pixel": Pixel, "pixels": Pixel, "points": Point,
	})

	return &ParserKeywords{
		WordOperators: map[string]Operator{
			"plus": OpAdd, "minus": OpSub, "times": OpMul,
			"over": OpDiv, "mod": OpMod, "modulo": OpMod,
		},
		DividedBy: [][2]string{{"divided", "by"}},
		Keywords: map[string]Keyword{
			"in": KwIn, "into": KwIn, "as": KwIn, "to": KwIn,
			"of": KwOf, "on": KwOn, "off": KwOff,
			"split": KwSplit, "between": KwBetween, "among": KwAmong,
			"tip": KwTip, "tax": KwTax,
			"sum": KwSum, "total": KwSum,
			"average": KwAverage, "avg": KwAverage,
			"prev": KwPrev, "previous": KwPrev,
		},
		UnitNames: units,
		CurrencyNames: map[string]string{
			"dollar": "USD", "dollars": "USD", "buck": "USD", "bucks": "USD",
			"euro": "EUR", "euros": "EUR",
			"yen": "JPY", "won": "KRW",
			"ruble": "RUB", "rubles": "RUB",
			"rupee": "INR", "rupees": "INR",
			"franc": "CHF", "francs": "CHF",
			"yuan": "CNY",
			"peso": "MXN", "pesos": "MXN",
		},
		LeadingNoise: []string{
			"what is", "what's", "whats", "what",
			"how much is", "how much", "how many",
			"calculate", "convert", "is",
		},
		TrailingNoise: map[string]bool{
			"way": true, "ways": true,
			"person": true, "people": true, "persons": true,
			"part": true, "parts": true,
		},
		Errors: englishErrors,
		DurationWords: map[UnitKind][2]string{
			Day:    {"day", "days"},
			Hour:   {"hour", "hours"},
			Minute: {"minute", "minutes"},
			Second: {"second", "seconds"},
		},
		FormatWords: map[string]UnitKind{
			"hex": Hex, "hexadecimal": Hex,
			"binary": Binary,
			"octal":  Octal,
			"scientific": Scientific, "sci": Scientific,
		},
		Autocomplete: []string{
			"plus", "minus", "times", "divided by", "split", "tip on",
			"tax on", "sum", "average", "prev", "in", "of",
			"km", "miles", "kg", "pounds", "usd", "eur", "btc",
		},
	}
}

// ─────────────────────────────── Spanish overlay ─────────────────────────────

func spanishOverlay() *ParserKeywords {
	return &ParserKeywords{
		WordOperators: map[string]Operator{
			"más": OpAdd, "mas": OpAdd,
			"menos": OpSub,
			"por":   OpMul,
			"entre": OpDiv,
		},
		DividedBy: [][2]string{{"dividido", "por"}, {"dividido", "entre"}},
		Keywords: map[string]Keyword{
			"en": KwIn, "como": KwIn,
			"de":        KwOf,
			"repartido": KwSplit, "repartir": KwSplit, "dividir": KwSplit,
			"propina":  KwTip,
			"impuesto": KwTax,
			"suma":     KwSum,
			"promedio": KwAverage, "media": KwAverage,
			"anterior": KwPrev,
		},
		UnitNames: map[string]UnitKind{
			"metro": Meter, "metros": Meter,
			"kilómetro": Kilometer, "kilómetros": Kilometer,
			"kilometro": Kilometer, "kilometros": Kilometer,
			"milla": Mile, "millas": Mile,
			"pie": Foot, "pies": Foot,
			"pulgada": Inch, "pulgadas": Inch,
			"gramo": Gram, "gramos": Gram,
			"kilogramo": Kilogram, "kilogramos": Kilogram,
			"libra": Pound, "libras": Pound,
			"onza": Ounce, "onzas": Ounce,
			"litro": Liter, "litros": Liter,
			"mililitro": Milliliter, "mililitros": Milliliter,
			"galón": Gallon, "galones": Gallon,
			"segundo": Second, "segundos": Second,
			"minuto": Minute, "minutos": Minute,
			"hora": Hour, "horas": Hour,
			"día": Day, "días": Day, "dia": Day, "dias": Day,
			"semana": Week, "semanas": Week,
			"mes": Month, "meses": Month,
			"año": Year, "años": Year,
			"grado": Degree, "grados": Degree,
		},
		CurrencyNames: map[string]string{
			"dólar": "USD", "dólares": "USD", "dolar": "USD", "dolares": "USD",
			"yenes": "JPY", "rublos": "RUB", "rupias": "INR",
			"reales": "BRL",
		},
		LeadingNoise: []string{
			"qué es", "que es", "cuánto es", "cuanto es",
			"cuánto", "cuanto", "cuántos", "cuantos",
			"calcula", "convierte", "es",
		},
		TrailingNoise: map[string]bool{
			"personas": true, "persona": true,
			"partes": true, "parte": true,
			"maneras": true, "formas": true,
		},
		Errors: map[ErrorKind]string{
			ErrGeneric:           "no se pudo evaluar",
			ErrDivisionByZero:    "división por cero",
			ErrInvalidExpression: "expresión no válida",
			ErrIncompatibleUnits: "no se puede convertir %s a %s",
			ErrDomain:            "argumento fuera de rango",
		},
		DurationWords: map[UnitKind][2]string{
			Day:    {"día", "días"},
			Hour:   {"hora", "horas"},
			Minute: {"minuto", "minutos"},
			Second: {"segundo", "segundos"},
		},
		FormatWords: map[string]UnitKind{
			"hexadecimal": Hex,
			"binario":     Binary,
			"octal":       Octal,
			"científico":  Scientific, "cientifico": Scientific,
		},
		Autocomplete: []string{"más", "menos", "por", "entre", "suma", "promedio"},
	}
}

// ───────────────────────────── Portuguese overlay ────────────────────────────

func portugueseOverlay() *ParserKeywords {
	return &ParserKeywords{
		WordOperators: map[string]Operator{
			"mais": OpAdd, "menos": OpSub, "vezes": OpMul,
		},
		DividedBy: [][2]string{{"dividido", "por"}},
		Keywords: map[string]Keyword{
			"em": KwIn, "para": KwIn,
			"de":       KwOf,
			"repartir": KwSplit,
			"gorjeta":  KwTip,
			"imposto":  KwTax,
			"soma":     KwSum,
			"média":    KwAverage, "media": KwAverage,
			"anterior": KwPrev,
		},
		UnitNames: map[string]UnitKind{
			"metro": Meter, "metros": Meter,
			"quilômetro": Kilometer, "quilômetros": Kilometer,
			"quilometro": Kilometer, "quilometros": Kilometer,
			"milha": Mile, "milhas": Mile,
			"pé": Foot, "pés": Foot, "pes": Foot,
			"polegada": Inch, "polegadas": Inch,
			"grama": Gram, "gramas": Gram,
			"quilograma": Kilogram, "quilogramas": Kilogram,
			"quilo": Kilogram, "quilos": Kilogram,
			"libra": Pound, "libras": Pound,
			"litro": Liter, "litros": Liter,
			"segundo": Second, "segundos": Second,
			"minuto": Minute, "minutos": Minute,
			"hora": Hour, "horas": Hour,
			"dia": Day, "dias": Day,
			"semana": Week, "semanas": Week,
			"mês": Month, "meses": Month,
			"ano": Year, "anos": Year,
			"grau": Degree, "graus": Degree,
		},
		CurrencyNames: map[string]string{
			"dólar": "USD", "dólares": "USD", "dolar": "USD", "dolares": "USD",
			"real": "BRL", "reais": "BRL",
			"iene": "JPY", "ienes": "JPY",
		},
		LeadingNoise: []string{
			"o que é", "o que e", "quanto é", "quanto e",
			"quanto", "quantos", "calcule", "converta",
		},
		TrailingNoise: map[string]bool{
			"pessoas": true, "pessoa": true,
			"partes": true, "parte": true,
		},
		Errors: map[ErrorKind]string{
			ErrGeneric:           "não foi possível avaliar",
			ErrDivisionByZero:    "divisão por zero",
			ErrInvalidExpression: "expressão inválida",
			ErrIncompatibleUnits: "não é possível converter %s em %s",
			ErrDomain:            "argumento fora do intervalo",
		},
		DurationWords: map[UnitKind][2]string{
			Day:    {"dia", "dias"},
			Hour:   {"hora", "horas"},
			Minute: {"minuto", "minutos"},
			Second: {"segundo", "segundos"},
		},
		FormatWords: map[string]UnitKind{
			"hexadecimal": Hex,
			"binário":     Binary, "binario": Binary,
			"octal":      Octal,
			"científico": Scientific, "cientifico": Scientific,
		},
		Autocomplete: []string{"mais", "menos", "vezes", "dividido por", "soma", "média"},
	}
}
