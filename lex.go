package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single operand or operator scanned from an expression.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Value is the value of an operand. It is zero for operators.
	Value float64
	// Op is the operator of an operator token. It is OpNone for operands.
	Op Operator
	// Pos is the number of runes up to and including the token.
	Pos int
}

// Operand returns an operand token with the given value and position.
func Operand(v float64, pos int) Token {
	return Token{Kind: TokenOperand, Value: v, Pos: pos}
}

// OperatorToken returns an operator token with the given position.
func OperatorToken(op Operator, pos int) Token {
	return Token{Kind: TokenOperator, Op: op, Pos: pos}
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenOperand:
		s = strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenOperator:
		s = t.Op.String()
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenOperand is a single digit.
	TokenOperand
	// TokenOperator is one of Operators.
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenOperand:
		return "Operand"
	case TokenOperator:
		return "Operator"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	for {
		r, sz, err := l.src.ReadRune()
		if err != nil {
			return Token{}, err
		}
		if sz > 0 {
			l.rune++
		}
		switch {
		case unicode.IsSpace(r):
			continue
		// Only ASCII digits. unicode.IsDigit would also accept digits from
		// other scripts, which have no single obvious value here.
		case '0' <= r && r <= '9':
			return Operand(float64(r-'0'), l.rune), nil
		default:
			if op := operator(r); op != OpNone {
				return OperatorToken(op, l.rune), nil
			}
			return Token{}, &LexError{Char: r, Col: l.rune}
		}
	}
}

// Tokenize scans all tokens from src. If any rune in the input is neither
// whitespace, a digit, nor an operator, the result is nil with a *LexError
// for that rune. An input with no tokens gives a nil slice and nil error.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}
