package rpn

import "errors"

var (
	// ErrInvalidChar is the error that every *LexError unwraps to.
	ErrInvalidChar = errors.New("invalid character")
	// ErrMissingOperand indicates an operator with fewer than two values to
	// apply to.
	ErrMissingOperand = errors.New("Invalid RPN Syntax: missing operand. operator should be required two operands.")
	// ErrRemainingOperand indicates an expression that does not reduce to
	// exactly one value.
	ErrRemainingOperand = errors.New("Invalid RPN Syntax: remaining operand. rpn result is one value")
)

// LexError indicates a rune that is not whitespace, a digit, or an operator.
// It implements InputError.
type LexError struct {
	// Char is the invalid rune.
	Char rune
	// Col is the total number of runes scanned by the lexer up to and
	// including the invalid one.
	Col int
}

func (err *LexError) Error() string {
	return "Invalid Char: " + string(err.Char)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrInvalidChar
}

// ParseErrorKind distinguishes the ways a token sequence can fail to be an
// RPN expression.
type ParseErrorKind int8

const (
	// MissingOperand means an operator appeared with fewer than two values
	// before it.
	MissingOperand ParseErrorKind = iota + 1
	// RemainingOperand means the tokens left zero or several values.
	RemainingOperand
)

// ParseError is an error indicating a token sequence which is not a single
// RPN expression. It implements InputError.
type ParseError struct {
	// Kind is the reason the sequence is invalid.
	Kind ParseErrorKind
	// Col is the position of the operator missing an operand, or of the last
	// token for a remaining operand. It is 0 if there were no tokens.
	Col int
}

func (err *ParseError) Error() string {
	if u := err.Unwrap(); u != nil {
		return u.Error()
	}
	return "Invalid RPN Syntax"
}

func (err *ParseError) Pos() int {
	return err.Col
}

// Unwrap returns ErrMissingOperand or ErrRemainingOperand according to the
// error's kind, or nil if the kind is invalid.
func (err *ParseError) Unwrap() error {
	switch err.Kind {
	case MissingOperand:
		return ErrMissingOperand
	case RemainingOperand:
		return ErrRemainingOperand
	default:
		return nil
	}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
