package wordcalc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// operand is a value on the evaluation stack with the position of the token
// that produced it.
type operand struct {
	v   float64
	pos int
}

// Eval evaluates the expression. The error, if any, is a *DivisionError or
// an *OperandError.
func (e *Expr) Eval() (float64, error) {
	stack := make([]operand, 0, len(e.rpn))
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, operand{tok.num, tok.pos})
		case tokenOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Op: tok.text}
			}
			r := stack[len(stack)-1]
			l := &stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			switch tok.text {
			case "+":
				l.v += r.v
			case "-":
				l.v -= r.v
			case "*":
				l.v *= r.v
			case "/":
				if r.v == 0 {
					return 0, &DivisionError{Col: tok.pos}
				}
				l.v /= r.v
			default:
				panic("wordcalc: invalid operator " + strconv.Quote(tok.text))
			}
		default:
			panic("wordcalc: invalid postfix token " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return 0, &EmptyExpressionError{Col: 1}
	case 1:
		return stack[0].v, nil
	default:
		return 0, &OperandError{Col: stack[1].pos}
	}
}

// Eval is a shortcut to parse and evaluate an expression. If evaluation
// divides by zero, the error is a *DivisionError. Any other error is an
// *ExprError.
func Eval(src io.RuneScanner) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, wrap(err)
	}
	r, err := e.Eval()
	if err != nil {
		return 0, wrap(err)
	}
	return r, nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// Format renders the result of Eval or EvalString as text: the error message
// if err is non-nil, otherwise the number. Numbers use positional notation
// between 1e-4 and 1e16 and exponent notation outside that range. Whole
// numbers in positional notation keep one decimal place, so 11 is "11.0".
func Format(x float64, err error) string {
	if err != nil {
		return err.Error()
	}
	if a := math.Abs(x); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".N") {
		s += ".0"
	}
	return s
}
