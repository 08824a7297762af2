package wordcalc

import (
	"io"
	"strconv"
	"strings"
)

// Expr is a parsed expression, stored as its operands and operators in
// postfix order. An Expr is never modified after parsing, so it may be
// evaluated any number of times, including concurrently.
type Expr struct {
	rpn []lexToken
}

// Parse parses an expression from src. Errors from src other than io.EOF are
// returned as is; every other error implements InputError.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	for i := range toks {
		toks[i] = normalize(toks[i])
	}
	toks = aggregate(toks)
	toks = rewriteUnary(toks)
	rpn, err := shunt(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// rewriteUnary inserts a zero before each minus that begins the expression
// or follows an operator or open bracket, so that the minus becomes a
// subtraction from zero. The rewritten minus binds more tightly than any
// binary operator, so it negates only the term after it.
func rewriteUnary(toks []lexToken) []lexToken {
	r := make([]lexToken, 0, len(toks)+1)
	for i, tok := range toks {
		if tok.kind == tokenOp && tok.text == "-" {
			if i == 0 || toks[i-1].kind == tokenOp || toks[i-1].kind == tokenOpen {
				r = append(r, lexToken{text: "0", kind: tokenNum, pos: tok.pos})
				tok.neg = true
			}
		}
		r = append(r, tok)
	}
	return r
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// binop gets the operator for an operator token.
func binop(tok lexToken) operator {
	if tok.neg {
		return operator{3, true}
	}
	switch tok.text {
	case "+", "-":
		return operator{1, false}
	case "*", "/":
		return operator{2, false}
	default:
		panic("wordcalc: invalid operator " + strconv.Quote(tok.text))
	}
}

// yields reports whether an operator already on the stack must be output
// before p is pushed.
func (p operator) yields(top operator) bool {
	if p.prec != top.prec {
		return top.prec > p.prec
	}
	return !p.right
}

// shunt converts a token sequence in infix order to postfix order. Brackets
// do not appear in the result.
func shunt(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var ops []lexToken
	end := 1
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			p := binop(tok)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenOpen || !p.yields(binop(top)) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Bracket: tok.text}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenWord:
			return nil, &TokenError{Col: tok.pos, Token: tok.text}
		case tokenEOF:
			end = tok.pos
		default:
			panic("wordcalc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenOpen {
			return nil, &BracketError{Col: top.pos, Bracket: top.text}
		}
		out = append(out, top)
	}
	if len(out) == 0 {
		return nil, &EmptyExpressionError{Col: end}
	}
	return out, nil
}

// Len returns the number of operands and operators in the expression.
func (e *Expr) Len() int {
	return len(e.rpn)
}

// String formats the expression in postfix order, e.g. "0 2 20 * -".
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.kind {
		case tokenNum:
			b.WriteString(strconv.FormatFloat(tok.num, 'f', -1, 64))
		default:
			b.WriteString(tok.text)
		}
	}
	return b.String()
}
