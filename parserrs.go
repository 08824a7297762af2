package wordcalc

import (
	"errors"
	"strconv"
)

// TokenError is an error indicating a word that is not a number, an
// operator, or a bracket. It implements InputError.
type TokenError struct {
	// Col is the position of the word.
	Col int
	// Token is the word that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "неизвестный токен "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unbalanced bracket.
	Col int
	// Bracket is the unbalanced bracket, either "(" or ")".
	Bracket string
}

func (err *BracketError) Error() string {
	if err.Bracket == "(" {
		return errpos(err.Col, "открывающая скобка без закрывающей")
	}
	return errpos(err.Col, "закрывающая скобка без открывающей")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating that an expression does not have the
// right number of operands for its operators, e.g. "два плюс" or
// "( два ) ( три )". It implements InputError.
type OperandError struct {
	// Col is the position of the operator missing an operand, or of the
	// operand that has no operator.
	Col int
	// Op is the operator missing an operand. If Op is empty, the error is
	// an operand with no operator to use it.
	Op string
}

func (err *OperandError) Error() string {
	if err.Op == "" {
		return errpos(err.Col, "лишний операнд")
	}
	return errpos(err.Col, "не хватает операнда для "+strconv.Quote(err.Op))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression with nothing to
// evaluate, e.g. "" or "( )". It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "пустое выражение")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DivisionError is the error from dividing by zero. Eval and EvalString
// return it as is, never wrapped in ExprError.
type DivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionError) Error() string {
	return "Деление на ноль!"
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// ExprError wraps any failure other than division by zero returned from
// Eval and EvalString.
type ExprError struct {
	Err error
}

func (err *ExprError) Error() string {
	return "Ошибка в выражении: " + err.Err.Error()
}

func (err *ExprError) Unwrap() error {
	return err.Err
}

// wrap converts an error to one of the two forms Eval returns.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var dz *DivisionError
	if errors.As(err, &dz) {
		return dz
	}
	var ee *ExprError
	if errors.As(err, &ee) {
		return ee
	}
	return &ExprError{Err: err}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DivisionError)(nil)
)
