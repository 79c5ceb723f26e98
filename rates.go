// rates.go — currency/crypto ratio tables.
//
// The engine never fetches rates itself; an external collaborator supplies
// a flat code→ratio snapshot and the evaluator reads whichever snapshot is
// current at pass start. Ratios are stored uniformly as units-per-USD:
// fiat rates are quoted that way directly, and crypto rates are stored as
// 1/priceInUSD, which makes every conversion the same division:
//
//	result = v * perUSD(to) / perUSD(from)
//
// Until a live snapshot exists, FallbackRates supplies a static table so
// currency expressions always evaluate to something plausible.
package sumpad

import "strings"

// RateTable is an immutable snapshot of units-per-USD ratios.
type RateTable struct {
	perUSD map[string]float64
}

// NewRateTable builds a snapshot from a live code→units-per-USD map.
// Codes missing from the live data keep their static fallback ratio, so a
// partial fetch never breaks conversion for the rest.
func NewRateTable(live map[string]float64) *RateTable {
	m := make(map[string]float64, len(fallbackPerUSD)+len(live))
	for code, r := range fallbackPerUSD {
		m[code] = r
	}
	for code, r := range live {
		if r > 0 {
			m[strings.ToUpper(code)] = r
		}
	}
	return &RateTable{perUSD: m}
}

var fallback = &RateTable{perUSD: fallbackPerUSD}

// FallbackRates returns the built-in static table.
func FallbackRates() *RateTable { return fallback }

// Rate returns the units-per-USD ratio for a code.
func (t *RateTable) Rate(code string) (float64, bool) {
	r, ok := t.perUSD[strings.ToUpper(code)]
	return r, ok
}

// Convert converts v between two currency codes. The second return is
// false when either code is unknown to this snapshot.
func (t *RateTable) Convert(v float64, from, to string) (float64, bool) {
	rf, okf := t.Rate(from)
	rt, okt := t.Rate(to)
	if !okf || !okt || rf == 0 {
		return 0, false
	}
	return v * rt / rf, true
}

// fallbackPerUSD holds the static units-per-USD ratios: 24 fiat codes and
// 30 crypto codes. Crypto entries are 1/priceUSD.
var fallbackPerUSD = map[string]float64{
	// fiat
	"USD": 1, "EUR": 0.92, "GBP": 0.79, "JPY": 155, "KRW": 1380,
	"RUB": 92, "INR": 83.5, "BRL": 5.4, "CAD": 1.37, "AUD": 1.52,
	"NZD": 1.64, "CHF": 0.88, "CNY": 7.25, "HKD": 7.8, "SGD": 1.35,
	"SEK": 10.9, "NOK": 10.8, "DKK": 6.9, "PLN": 3.95, "MXN": 18.2,
	"ZAR": 18.5, "TRY": 33, "AED": 3.67, "ILS": 3.7,

	// crypto (1/priceUSD)
	"BTC": 1.0 / 65000, "ETH": 1.0 / 3200, "USDT": 1, "USDC": 1,
	"DAI": 1, "BNB": 1.0 / 580, "SOL": 1.0 / 150, "XRP": 1.0 / 0.52,
	"ADA": 1.0 / 0.45, "DOGE": 1.0 / 0.13, "AVAX": 1.0 / 28,
	"TRX": 1.0 / 0.12, "DOT": 1.0 / 6.2, "LINK": 1.0 / 14,
	"MATIC": 1.0 / 0.55, "LTC": 1.0 / 72, "SHIB": 1.0 / 0.000018,
	"BCH": 1.0 / 380, "UNI": 1.0 / 8, "XLM": 1.0 / 0.1,
	"ATOM": 1.0 / 7, "ETC": 1.0 / 23, "XMR": 1.0 / 160,
	"FIL": 1.0 / 4.5, "APT": 1.0 / 7.5, "ARB": 1.0 / 0.8,
	"OP": 1.0 / 1.8, "NEAR": 1.0 / 5.5, "ALGO": 1.0 / 0.15,
	"SAT": 1e8 / 65000,
}

// cryptoCodes marks which fallback codes are crypto; the tokenizer and the
// formatter both branch on this.
var cryptoCodes = map[string]bool{
	"BTC": true, "ETH": true, "USDT": true, "USDC": true, "DAI": true,
	"BNB": true, "SOL": true, "XRP": true, "ADA": true, "DOGE": true,
	"AVAX": true, "TRX": true, "DOT": true, "LINK": true, "MATIC": true,
	"LTC": true, "SHIB": true, "BCH": true, "UNI": true, "XLM": true,
	"ATOM": true, "ETC": true, "XMR": true, "FIL": true, "APT": true,
	"ARB": true, "OP": true, "NEAR": true, "ALGO": true, "SAT": true,
}

// fiatCode reports whether code is one of the known 3-letter fiat codes.
func fiatCode(code string) bool {
	c := strings.ToUpper(code)
	if cryptoCodes[c] {
		return false
	}
	_, ok := fallbackPerUSD[c]
	return ok
}

// IsCurrencyCode reports whether the engine knows code as fiat or crypto.
func IsCurrencyCode(code string) bool {
	_, ok := fallbackPerUSD[strings.ToUpper(code)]
	return ok
}

// currencySymbols maps codes to their display symbol where one exists;
// every other code renders as a trailing code suffix.
var currencySymbols = map[string]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "KRW": "₩",
	"RUB": "₽", "INR": "₹", "BRL": "R$", "BTC": "₿", "ETH": "Ξ",
}

// symbolCurrencies is the inverse tokenizer table: written symbol → code.
var symbolCurrencies = map[string]string{
	"$": "USD", "€": "EUR", "£": "GBP", "¥": "JPY", "₩": "KRW",
	"₽": "RUB", "₹": "INR", "R$": "BRL", "₿": "BTC", "Ξ": "ETH",
}

// cryptoNames maps spelled-out crypto names to codes. Localized fiat names
// live in the keyword bundles; crypto names are the same in every language.
var cryptoNames = map[string]string{
	"bitcoin": "BTC", "ethereum": "ETH", "ether": "ETH",
	"tether": "USDT", "solana": "SOL", "ripple": "XRP",
	"cardano": "ADA", "dogecoin": "DOGE", "avalanche": "AVAX",
	"tron": "TRX", "polkadot": "DOT", "chainlink": "LINK",
	"polygon": "MATIC", "litecoin": "LTC", "monero": "XMR",
	"stellar": "XLM", "cosmos": "ATOM", "filecoin": "FIL",
	"uniswap": "UNI", "algorand": "ALGO",
	"satoshi": "SAT", "satoshis": "SAT", "sats": "SAT",
}
