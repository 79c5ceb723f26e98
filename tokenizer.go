// tokenizer.go — the line tokenizer.
//
// One call tokenizes one single-line string against a ParserKeywords bundle
// and yields tokens in source order. Disambiguation rules are applied in a
// fixed priority order per character/word; see scanToken. Word recognition
// follows a strict precedence chain and stops at the first match; see
// scanWord.
//
// Every token carries its byte span in the source line, so the highlight
// mode (TokenizeWithRanges) is derived from the very same scan and is
// guaranteed to produce exactly one range per token, in token order. A
// comment produces a Comment token spanning to end of line; the parser
// skips it, the highlighter colors it.
package sumpad

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the kind of token.
type TokenType int

const (
	TokNumber TokenType = iota
	TokUnit
	TokOperator
	TokLeftParen
	TokRightParen
	TokVariable
	TokFunction
	TokKeyword
	TokComma
	TokWord // unrecognized word
	TokComment
)

// Token is a lexical token. Only the field matching Type is meaningful:
// Num for TokNumber, Unit for TokUnit, Op for TokOperator, Keyword for
// TokKeyword, Name for TokVariable/TokFunction/TokWord.
type Token struct {
	Type    TokenType
	Text    string // raw source slice
	Num     float64
	Unit    Unit
	Op      Operator
	Keyword Keyword
	Name    string
	Start   int // byte offset of the token in the line
	End     int // byte offset one past the token
}

// Range is one highlight span over the source line.
type Range struct {
	Start int
	End   int
	Type  TokenType
}

// Tokenize converts one line of text into tokens using the given bundle.
func Tokenize(line string, kw *ParserKeywords) []Token {
	t := &tokenizer{src: line, kw: kw}
	t.run()
	return t.toks
}

// TokenizeWithRanges produces one highlight range per token, in token
// order. len(TokenizeWithRanges(l, kw)) == len(Tokenize(l, kw)) for every
// line.
func TokenizeWithRanges(line string, kw *ParserKeywords) []Range {
	toks := Tokenize(line, kw)
	out := make([]Range, len(toks))
	for i, tok := range toks {
		out[i] = Range{Start: tok.Start, End: tok.End, Type: tok.Type}
	}
	return out
}

type tokenizer struct {
	src   string
	cur   int
	start int
	kw    *ParserKeywords
	toks  []Token
}

func (t *tokenizer) atEnd() bool { return t.cur >= len(t.src) }

func (t *tokenizer) peekByte() (byte, bool) {
	if t.atEnd() {
		return 0, false
	}
	return t.src[t.cur], true
}

func (t *tokenizer) peekByteAt(n int) (byte, bool) {
	if t.cur+n >= len(t.src) {
		return 0, false
	}
	return t.src[t.cur+n], true
}

func (t *tokenizer) peekRune() (rune, int) {
	if t.atEnd() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(t.src[t.cur:])
}

func (t *tokenizer) add(tok Token) {
	tok.Text = t.src[t.start:t.cur]
	tok.Start = t.start
	tok.End = t.cur
	t.toks = append(t.toks, tok)
}

func (t *tokenizer) skipWhitespace() {
	for !t.atEnd() {
		b := t.src[t.cur]
		if b == ' ' || b == '\t' || b == '\r' {
			t.cur++
			continue
		}
		return
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWordStart(r rune) bool { return unicode.IsLetter(r) }
func isWordPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func (t *tokenizer) run() {
	for {
		t.skipWhitespace()
		if t.atEnd() {
			return
		}
		t.start = t.cur
		if !t.scanToken() {
			return
		}
	}
}

// scanToken scans one token. It returns false when the rest of the line
// has been consumed (comments).
func (t *tokenizer) scanToken() bool {
	rest := t.src[t.cur:]

	// 1. Comments run to end of line.
	if strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "#") {
		t.cur = len(t.src)
		t.add(Token{Type: TokComment})
		return false
	}

	// 2. Currency symbols, including the two-byte "R$". A symbol counts
	// only when a digit or '.' follows; ₿ and Ξ also stand alone.
	if code, width, ok := t.currencySymbol(); ok {
		t.cur += width
		t.add(Token{Type: TokUnit, Unit: CurrencyUnit(code)})
		return true
	}

	b := t.src[t.cur]

	// 3. Numeric literals, including 0x/0b/0o and thousands separators.
	if isDigit(b) || (b == '.' && t.digitAt(1)) {
		t.scanNumber()
		return true
	}

	// 4. Operators and structural tokens.
	switch b {
	case '(':
		t.cur++
		t.add(Token{Type: TokLeftParen})
		return true
	case ')':
		t.cur++
		t.add(Token{Type: TokRightParen})
		return true
	case ',':
		t.cur++
		t.add(Token{Type: TokComma})
		return true
	case '+':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpAdd})
		return true
	case '-':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpSub})
		return true
	case '*':
		t.cur++
		op := OpMul
		if c, ok := t.peekByte(); ok && c == '*' {
			t.cur++
			op = OpPow
		}
		t.add(Token{Type: TokOperator, Op: op})
		return true
	case '/':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpDiv})
		return true
	case '<':
		if c, ok := t.peekByteAt(1); ok && c == '<' {
			t.cur += 2
			t.add(Token{Type: TokOperator, Op: OpShl})
			return true
		}
	case '>':
		if c, ok := t.peekByteAt(1); ok && c == '>' {
			t.cur += 2
			t.add(Token{Type: TokOperator, Op: OpShr})
			return true
		}
	case '&':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpAnd})
		return true
	case '|':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpOr})
		return true
	case '^':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpXor})
		return true
	case '~':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpNot})
		return true
	case '=':
		t.cur++
		t.add(Token{Type: TokOperator, Op: OpAssign})
		return true
	case '%':
		// 5. '%' is always the percent unit.
		t.cur++
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Percent}})
		return true
	}

	// 6. '°' alone is the degree unit; °C/°F are temperatures
	// (case-insensitive suffix).
	if r, w := t.peekRune(); r == '°' {
		t.cur += w
		if c, ok := t.peekByte(); ok {
			switch c {
			case 'C', 'c':
				t.cur++
				t.add(Token{Type: TokUnit, Unit: Unit{Kind: Celsius}})
				return true
			case 'F', 'f':
				t.cur++
				t.add(Token{Type: TokUnit, Unit: Unit{Kind: Fahrenheit}})
				return true
			}
		}
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Degree}})
		return true
	}

	// 7. Words (keywords, operators, functions, units, currencies,
	// variables).
	if r, _ := t.peekRune(); isWordStart(r) {
		t.scanWord()
		return true
	}

	// Anything else is an unrecognized one-rune word.
	_, w := t.peekRune()
	t.cur += w
	t.add(Token{Type: TokWord, Name: t.src[t.start:t.cur]})
	return true
}

// digitAt reports whether the byte n positions ahead is a digit.
func (t *tokenizer) digitAt(n int) bool {
	b, ok := t.peekByteAt(n)
	return ok && isDigit(b)
}

// currencySymbol recognizes a currency symbol at the cursor. It returns
// the currency code and the symbol's byte width.
func (t *tokenizer) currencySymbol() (string, int, bool) {
	rest := t.src[t.cur:]
	var sym string
	if strings.HasPrefix(rest, "R$") {
		sym = "R$"
	} else {
		r, w := utf8.DecodeRuneInString(rest)
		s := string(r)
		if _, ok := symbolCurrencies[s]; ok && w > 0 {
			sym = s
		}
	}
	if sym == "" {
		return "", 0, false
	}
	code := symbolCurrencies[sym]
	after := t.cur + len(sym)
	if after < len(t.src) && (isDigit(t.src[after]) || t.src[after] == '.') {
		return code, len(sym), true
	}
	// ₿ and Ξ are unambiguous enough to stand alone.
	if sym == "₿" || sym == "Ξ" {
		return code, len(sym), true
	}
	return "", 0, false
}

// scanNumber scans a numeric literal: hex/binary/octal with 0x/0b/0o
// prefixes, or a decimal with optional interior thousands-separator
// commas and an optional scientific-notation suffix. Literals in a
// display-format base emit their pseudo-unit token right after the number.
func (t *tokenizer) scanNumber() {
	if t.src[t.cur] == '0' {
		if b, ok := t.peekByteAt(1); ok {
			switch b {
			case 'x', 'X':
				if c, ok := t.peekByteAt(2); ok && isHexDigit(c) {
					t.scanBaseLiteral(2, 16, isHexDigit, Hex)
					return
				}
			case 'b', 'B':
				// Only 0 or 1 right after the prefix makes this a binary
				// literal; "0 bytes" style input must stay a plain zero.
				if c, ok := t.peekByteAt(2); ok && (c == '0' || c == '1') {
					t.scanBaseLiteral(2, 2, func(b byte) bool { return b == '0' || b == '1' }, Binary)
					return
				}
			case 'o', 'O':
				if c, ok := t.peekByteAt(2); ok && c >= '0' && c <= '7' {
					t.scanBaseLiteral(2, 8, func(b byte) bool { return b >= '0' && b <= '7' }, Octal)
					return
				}
			}
		}
	}

	sci := false
	var digits strings.Builder
	for !t.atEnd() {
		b := t.src[t.cur]
		switch {
		case isDigit(b) || b == '.':
			digits.WriteByte(b)
			t.cur++
		case b == ',' && t.digitBefore() && t.digitAt(1):
			// thousands separator: swallowed, not emitted
			t.cur++
		case (b == 'e' || b == 'E') && t.scientificSuffix():
			digits.WriteByte('e')
			t.cur++
			if c, ok := t.peekByte(); ok && (c == '+' || c == '-') {
				digits.WriteByte(c)
				t.cur++
			}
			for !t.atEnd() && isDigit(t.src[t.cur]) {
				digits.WriteByte(t.src[t.cur])
				t.cur++
			}
			sci = true
		default:
			goto done
		}
	}
done:
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		t.add(Token{Type: TokWord, Name: t.src[t.start:t.cur]})
		return
	}
	t.add(Token{Type: TokNumber, Num: v})
	if sci {
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Scientific}})
	}
}

// digitBefore reports whether the byte just before the cursor is a digit.
func (t *tokenizer) digitBefore() bool {
	return t.cur > 0 && isDigit(t.src[t.cur-1])
}

// scientificSuffix reports whether the cursor sits on a valid e/E
// exponent suffix ("e5", "E-3"), not on a word such as "euros".
func (t *tokenizer) scientificSuffix() bool {
	i := t.cur + 1
	if i < len(t.src) && (t.src[i] == '+' || t.src[i] == '-') {
		i++
	}
	return i < len(t.src) && isDigit(t.src[i])
}

// scanBaseLiteral consumes a prefixed literal (0x.., 0b.., 0o..) and emits
// the number followed by its display-format unit token. The unit token
// shares the literal's span.
func (t *tokenizer) scanBaseLiteral(skip int, base int, valid func(byte) bool, kind UnitKind) {
	t.cur += skip
	digStart := t.cur
	for !t.atEnd() && valid(t.src[t.cur]) {
		t.cur++
	}
	v, err := strconv.ParseUint(t.src[digStart:t.cur], base, 64)
	if err != nil {
		t.add(Token{Type: TokWord, Name: t.src[t.start:t.cur]})
		return
	}
	t.add(Token{Type: TokNumber, Num: float64(v)})
	t.add(Token{Type: TokUnit, Unit: Unit{Kind: kind}})
}

// word reads the word starting at byte offset i and returns it with its
// end offset.
func (t *tokenizer) word(i int) (string, int) {
	j := i
	for j < len(t.src) {
		r, w := utf8.DecodeRuneInString(t.src[j:])
		if !isWordPart(r) {
			break
		}
		j += w
	}
	return t.src[i:j], j
}

// nextWord returns the word following offset i after spaces, if any.
func (t *tokenizer) nextWord(i int) (string, int, bool) {
	for i < len(t.src) && (t.src[i] == ' ' || t.src[i] == '\t') {
		i++
	}
	if i >= len(t.src) {
		return "", i, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[i:])
	if !isWordStart(r) {
		return "", i, false
	}
	w, end := t.word(i)
	return w, end, true
}

// scanWord applies the ordered word-precedence chain and stops at the
// first match: keywords → word operators (incl. two-word "divided by") →
// builtin functions → display-format words → longest unit-phrase match →
// currency codes → crypto names → currency name words → case-sensitive
// single-letter shortcuts → variable fallback.
func (t *tokenizer) scanWord() {
	word, end := t.word(t.cur)
	lower := strings.ToLower(word)
	t.cur = end

	if k, ok := t.kw.Keywords[lower]; ok {
		t.add(Token{Type: TokKeyword, Keyword: k})
		return
	}

	// two-word division phrases before single word operators, so that
	// "divided by" never half-matches
	for _, pair := range t.kw.DividedBy {
		if lower != pair[0] {
			continue
		}
		if next, nend, ok := t.nextWord(t.cur); ok && strings.ToLower(next) == pair[1] {
			t.cur = nend
			t.add(Token{Type: TokOperator, Op: OpDiv})
			return
		}
	}
	if op, ok := t.kw.WordOperators[lower]; ok {
		t.add(Token{Type: TokOperator, Op: op})
		return
	}

	if _, ok := builtinFuncs[lower]; ok {
		t.add(Token{Type: TokFunction, Name: lower})
		return
	}

	if kind, ok := t.kw.FormatWords[lower]; ok {
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: kind}})
		return
	}

	if kind, ok := t.matchUnitPhrase(lower); ok {
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: kind}})
		return
	}

	if len(lower) == 3 && fiatCode(lower) {
		t.add(Token{Type: TokUnit, Unit: CurrencyUnit(strings.ToUpper(lower))})
		return
	}
	if cryptoCodes[strings.ToUpper(lower)] {
		t.add(Token{Type: TokUnit, Unit: CurrencyUnit(strings.ToUpper(lower))})
		return
	}
	if code, ok := cryptoNames[lower]; ok {
		t.add(Token{Type: TokUnit, Unit: CurrencyUnit(code)})
		return
	}

	if code, ok := t.kw.CurrencyNames[lower]; ok {
		t.add(Token{Type: TokUnit, Unit: CurrencyUnit(code)})
		return
	}

	// Single-letter shortcuts are case-sensitive: K, C, F only.
	switch word {
	case "K":
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Kelvin}})
		return
	case "C":
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Celsius}})
		return
	case "F":
		t.add(Token{Type: TokUnit, Unit: Unit{Kind: Fahrenheit}})
		return
	}

	t.add(Token{Type: TokVariable, Name: word})
}

// matchUnitPhrase matches the longest unit name starting with word. It
// extends over following words ("square meters", "fluid ounces") and over
// a '/' joint ("km/h", "m/s"); a match must end on a word boundary.
func (t *tokenizer) matchUnitPhrase(word string) (UnitKind, bool) {
	bestKind := UnitNone
	bestEnd := -1

	if kind, ok := t.kw.UnitNames[word]; ok {
		bestKind, bestEnd = kind, t.cur
	}

	// '/'-joined compound symbols
	if t.cur < len(t.src) && t.src[t.cur] == '/' {
		if next, nend, ok := t.nextWordAt(t.cur + 1); ok {
			joined := word + "/" + strings.ToLower(next)
			if kind, ok := t.kw.UnitNames[joined]; ok && nend > bestEnd {
				bestKind, bestEnd = kind, nend
			}
		}
	}

	// multi-word phrases, longest first by construction of the loop
	phrase := word
	scan := t.cur
	for {
		next, nend, ok := t.nextWord(scan)
		if !ok {
			break
		}
		phrase = phrase + " " + strings.ToLower(next)
		scan = nend
		if kind, ok := t.kw.UnitNames[phrase]; ok && scan > bestEnd {
			bestKind, bestEnd = kind, scan
		}
		if !t.kw.hasUnitPrefix(phrase) {
			break
		}
	}

	if bestEnd < 0 {
		return UnitNone, false
	}
	t.cur = bestEnd
	return bestKind, true
}

// nextWordAt is nextWord without whitespace skipping semantics changed; it
// reads the word at exactly offset i.
func (t *tokenizer) nextWordAt(i int) (string, int, bool) {
	if i >= len(t.src) {
		return "", i, false
	}
	r, _ := utf8.DecodeRuneInString(t.src[i:])
	if !isWordStart(r) {
		return "", i, false
	}
	w, end := t.word(i)
	return w, end, true
}

// hasUnitPrefix reports whether any unit name continues the given phrase.
func (kw *ParserKeywords) hasUnitPrefix(phrase string) bool {
	p := phrase + " "
	for name := range kw.UnitNames {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
