package calculator

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is the error that EmptyExpressionError and
// ExcessOperandsError unwrap to. It indicates that evaluation did not leave
// exactly one value.
var ErrInvalidExpression = errors.New("invalid expression")

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the tokenizer could not classify.
	Text string
	// Kind is the type of token the tokenizer was scanning. This is "number"
	// for literals that don't parse as floats and empty otherwise.
	Kind string
	// Col is the position of the start of Text.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, or empty if a close had no open.
	Left string
	// Right is the closing parenthesis, or empty if an open was never closed.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator or function applied with
// too few values on the stack. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator symbol or function name.
	Op string
	// Need is the number of operands Op takes.
	Need int
	// Have is the number of operands that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Op)+": need "+strconv.Itoa(err.Need)+", have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood by the evaluator. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown binary operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// FuncError is an error indicating a function token naming no known function.
// It implements InputError.
type FuncError struct {
	// Col is the position of the function name.
	Col int
	// Func is the unknown name.
	Func string
}

func (err *FuncError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Func))
}

func (err *FuncError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that evaluation produced no
// value, e.g. for empty input. It unwraps to ErrInvalidExpression.
type EmptyExpressionError struct {
	// Col is the position after the last token, or 1 if there were none.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no value at end of expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

// ExcessOperandsError is an error indicating that evaluation left more than
// one value, i.e. the expression is missing operators, as in "2 3". It
// unwraps to ErrInvalidExpression.
type ExcessOperandsError struct {
	// Col is the position of the first token whose value was left over.
	Col int
	// Count is the number of values left.
	Count int
}

func (err *ExcessOperandsError) Error() string {
	return errpos(err.Col, strconv.Itoa(err.Count)+" values with no operator between them")
}

func (err *ExcessOperandsError) Pos() int {
	return err.Col
}

func (err *ExcessOperandsError) Unwrap() error {
	return ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position. Tokens
// that weren't scanned from text have no position, so it is omitted.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error. The position is
	// 0 for tokens that were not produced by Tokenize.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*FuncError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ExcessOperandsError)(nil)
)
