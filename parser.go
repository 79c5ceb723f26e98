// parser.go — precedence-climbing expression evaluation over one token
// slice.
//
// There is no retained AST: the parser folds values as it climbs, which is
// all a per-keystroke full recomputation needs. Precedence, low to high:
//
//	bitwise-or < bitwise-xor < bitwise-and < shifts <
//	add/subtract < multiply/divide/modulo < power < unary
//
// Power is right-associative; unary minus and unary bitwise-not bind at
// the top. After the ordinary expression, the lowest-precedence postfix
// clauses apply: in/into/as/to (conversion or display switch), of
// (percent-of), and on/off (percent adjustment, with tip/tax as optional
// noise words).
package sumpad

import (
	"math"
)

type exprParser struct {
	ts  []Token
	i   int
	ctx *evalContext
}

// evalTokens evaluates a complete token slice to one value. Leftover
// tokens after the clause loop make the whole line invalid.
func (c *evalContext) evalTokens(ts []Token) (Value, *EvalError) {
	if len(ts) == 0 {
		return Value{}, c.invalid("")
	}
	p := &exprParser{ts: ts, ctx: c}
	v, err := p.clauses()
	if err != nil {
		return Value{}, err
	}
	if !p.atEnd() {
		return Value{}, c.invalid(p.peek().Text)
	}
	return v, nil
}

func (p *exprParser) atEnd() bool { return p.i >= len(p.ts) }

func (p *exprParser) peek() Token {
	if p.atEnd() {
		return Token{Type: TokWord}
	}
	return p.ts[p.i]
}

func (p *exprParser) peekAt(n int) Token {
	if p.i+n >= len(p.ts) {
		return Token{Type: TokWord}
	}
	return p.ts[p.i+n]
}

func (p *exprParser) matchKeyword(kws ...Keyword) (Keyword, bool) {
	t := p.peek()
	if t.Type != TokKeyword {
		return KwNone, false
	}
	for _, k := range kws {
		if t.Keyword == k {
			p.i++
			return k, true
		}
	}
	return KwNone, false
}

// bp returns the binding power of a binary operator.
func bp(op Operator) (int, bool) {
	switch op {
	case OpOr:
		return 10, true
	case OpXor:
		return 20, true
	case OpAnd:
		return 30, true
	case OpShl, OpShr:
		return 40, true
	case OpAdd, OpSub:
		return 50, true
	case OpMul, OpDiv, OpMod:
		return 60, true
	case OpPow:
		return 70, true
	}
	return 0, false
}

func rightAssoc(op Operator) bool { return op == OpPow }

// clauses parses an expression followed by its postfix clauses.
func (p *exprParser) clauses() (Value, *EvalError) {
	left, err := p.expr(0)
	if err != nil {
		return Value{}, err
	}
	for {
		// "20% tip on 85": tip/tax are noise words when on follows.
		if t := p.peek(); t.Type == TokKeyword && (t.Keyword == KwTip || t.Keyword == KwTax) {
			if n := p.peekAt(1); n.Type == TokKeyword && n.Keyword == KwOn {
				p.i++
				continue
			}
		}
		kw, ok := p.matchKeyword(KwIn, KwOf, KwOn, KwOff)
		if !ok {
			return left, nil
		}
		switch kw {
		case KwIn:
			left, err = p.convertClause(left)
		case KwOf:
			left, err = p.percentClause(left, func(pct, base float64) float64 { return base * pct / 100 })
		case KwOn:
			left, err = p.percentClause(left, func(pct, base float64) float64 { return base * (1 + pct/100) })
		case KwOff:
			left, err = p.percentClause(left, func(pct, base float64) float64 { return base * (1 - pct/100) })
		}
		if err != nil {
			return Value{}, err
		}
	}
}

// convertClause handles `<value> in <unit>`: a unit conversion, or a
// switch to a display-only representation.
func (p *exprParser) convertClause(left Value) (Value, *EvalError) {
	t := p.peek()
	if t.Type != TokUnit {
		return Value{}, p.ctx.invalid(t.Text)
	}
	p.i++
	target := t.Unit
	if !target.Convertible() {
		// hex/binary/octal/scientific and friends: representation only
		return Value{Num: left.Num, Unit: target}, nil
	}
	if left.Unit.Kind == UnitNone || left.Unit.Kind == Percent {
		// a bare number adopts the unit as-is
		return Value{Num: left.Num, Unit: target}, nil
	}
	out, err := Convert(left.Num, left.Unit, target, p.ctx.rates)
	if err != nil {
		return Value{}, newError(p.ctx.kw, ErrIncompatibleUnits, left.Unit.Symbol(), target.Symbol())
	}
	return Value{Num: out, Unit: target}, nil
}

// percentClause handles of/on/off: the left side must be a percentage.
func (p *exprParser) percentClause(left Value, apply func(pct, base float64) float64) (Value, *EvalError) {
	if left.Unit.Kind != Percent {
		return Value{}, p.ctx.invalid("%")
	}
	base, err := p.expr(0)
	if err != nil {
		return Value{}, err
	}
	return Value{Num: apply(left.Num, base.Num), Unit: base.Unit}, nil
}

// expr is the precedence climber.
func (p *exprParser) expr(minBP int) (Value, *EvalError) {
	left, err := p.unary()
	if err != nil {
		return Value{}, err
	}
	for {
		t := p.peek()
		if t.Type != TokOperator {
			return left, nil
		}
		power, ok := bp(t.Op)
		if !ok || power < minBP {
			return left, nil
		}
		p.i++
		next := power + 1
		if rightAssoc(t.Op) {
			next = power
		}
		right, err := p.expr(next)
		if err != nil {
			return Value{}, err
		}
		left, err = p.ctx.applyBinary(t.Op, left, right)
		if err != nil {
			return Value{}, err
		}
	}
}

func (p *exprParser) unary() (Value, *EvalError) {
	t := p.peek()
	if t.Type == TokOperator {
		switch t.Op {
		case OpSub:
			p.i++
			v, err := p.unary()
			if err != nil {
				return Value{}, err
			}
			v.Num = -v.Num
			return v, nil
		case OpAdd:
			p.i++
			return p.unary()
		case OpNot:
			p.i++
			v, err := p.unary()
			if err != nil {
				return Value{}, err
			}
			v.Num = float64(^int64(v.Num))
			return v, nil
		}
	}
	return p.primary()
}

func (p *exprParser) primary() (Value, *EvalError) {
	t := p.peek()
	switch t.Type {
	case TokNumber:
		p.i++
		v := Value{Num: t.Num}
		if u := p.peek(); u.Type == TokUnit {
			p.i++
			v.Unit = u.Unit
		}
		return v, nil

	case TokUnit:
		// currency symbol before the amount: $85
		if t.Unit.Kind == CurrencyKind && p.peekAt(1).Type == TokNumber {
			p.i += 2
			return Value{Num: p.ts[p.i-1].Num, Unit: t.Unit}, nil
		}
		return Value{}, p.ctx.invalid(t.Text)

	case TokVariable:
		p.i++
		if v, ok := p.ctx.vars[t.Name]; ok {
			return v, nil
		}
		return Value{}, p.ctx.unknownWord(t.Name)

	case TokKeyword:
		if t.Keyword == KwPrev {
			p.i++
			if v, ok := p.ctx.prevValue(); ok {
				return v, nil
			}
			return Value{}, p.ctx.invalid(t.Text)
		}

	case TokFunction:
		p.i++
		return p.call(t.Name)

	case TokLeftParen:
		p.i++
		v, err := p.clauses()
		if err != nil {
			return Value{}, err
		}
		if p.peek().Type != TokRightParen {
			return Value{}, p.ctx.invalid(")")
		}
		p.i++
		// a parenthesized value may still take a unit: (2+3) km
		if u := p.peek(); u.Type == TokUnit && v.Unit.Kind == UnitNone {
			p.i++
			v.Unit = u.Unit
		}
		return v, nil

	case TokWord:
		return Value{}, p.ctx.unknownWord(t.Name)
	}
	return Value{}, p.ctx.invalid(t.Text)
}

// call applies a builtin to one parenthesized argument.
func (p *exprParser) call(name string) (Value, *EvalError) {
	fn := builtinFuncs[name]
	if p.peek().Type != TokLeftParen {
		return Value{}, p.ctx.invalid(name)
	}
	p.i++
	arg, err := p.clauses()
	if err != nil {
		return Value{}, err
	}
	if p.peek().Type != TokRightParen {
		return Value{}, p.ctx.invalid(")")
	}
	p.i++
	out, ok := fn.apply(arg.Num)
	if !ok {
		return Value{}, newError(p.ctx.kw, ErrDomain)
	}
	v := Value{Num: out, Unit: arg.Unit}
	if fn.unit != UnitNone {
		v.Unit = Unit{Kind: fn.unit}
	}
	return v, nil
}

// applyBinary folds one binary operation, with unit-aware semantics for
// the arithmetic operators.
func (c *evalContext) applyBinary(op Operator, a, b Value) (Value, *EvalError) {
	switch op {
	case OpAdd, OpSub:
		return c.addSub(op, a, b)

	case OpMul:
		return Value{Num: a.Num * b.Num, Unit: pickUnit(a.Unit, b.Unit)}, nil

	case OpDiv:
		if b.Num == 0 {
			return Value{}, newError(c.kw, ErrDivisionByZero)
		}
		if sameConvertibleCategory(a.Unit, b.Unit) {
			bn, err := Convert(b.Num, b.Unit, a.Unit, c.rates)
			if err == nil {
				// ratio of like quantities is dimensionless
				return Value{Num: a.Num / bn}, nil
			}
		}
		return Value{Num: a.Num / b.Num, Unit: a.Unit}, nil

	case OpMod:
		if b.Num == 0 {
			return Value{}, newError(c.kw, ErrDivisionByZero)
		}
		return Value{Num: math.Mod(a.Num, b.Num), Unit: a.Unit}, nil

	case OpPow:
		out := math.Pow(a.Num, b.Num)
		if math.IsNaN(out) || math.IsInf(out, 0) {
			return Value{}, newError(c.kw, ErrDomain)
		}
		return Value{Num: out, Unit: a.Unit}, nil

	case OpAnd:
		return Value{Num: float64(int64(a.Num) & int64(b.Num)), Unit: a.Unit}, nil
	case OpOr:
		return Value{Num: float64(int64(a.Num) | int64(b.Num)), Unit: a.Unit}, nil
	case OpXor:
		return Value{Num: float64(int64(a.Num) ^ int64(b.Num)), Unit: a.Unit}, nil
	case OpShl:
		return Value{Num: float64(int64(a.Num) << uint(b.Num)), Unit: a.Unit}, nil
	case OpShr:
		return Value{Num: float64(int64(a.Num) >> uint(b.Num)), Unit: a.Unit}, nil
	}
	return Value{}, c.invalid("")
}

// addSub implements unit-aware +/-. A bare percent on the right adjusts
// the left operand; mixed convertible categories are an error naming both
// units; otherwise the right side converts into the left side's unit.
func (c *evalContext) addSub(op Operator, a, b Value) (Value, *EvalError) {
	sign := 1.0
	if op == OpSub {
		sign = -1
	}

	if b.Unit.Kind == Percent && a.Unit.Kind != Percent {
		return Value{Num: a.Num + sign*a.Num*b.Num/100, Unit: a.Unit}, nil
	}

	if a.Unit.Convertible() && b.Unit.Convertible() {
		bn, err := Convert(b.Num, b.Unit, a.Unit, c.rates)
		if err != nil {
			return Value{}, newError(c.kw, ErrIncompatibleUnits, a.Unit.Symbol(), b.Unit.Symbol())
		}
		return Value{Num: a.Num + sign*bn, Unit: a.Unit}, nil
	}

	return Value{Num: a.Num + sign*b.Num, Unit: pickUnit(a.Unit, b.Unit)}, nil
}

func sameConvertibleCategory(a, b Unit) bool {
	return a.Convertible() && b.Convertible() && a.Category() == b.Category()
}

// pickUnit keeps the left unit when present, otherwise the right one, so
// scalar multiplication preserves the united operand's unit.
func pickUnit(a, b Unit) Unit {
	if a.Kind != UnitNone {
		return a
	}
	return b
}
