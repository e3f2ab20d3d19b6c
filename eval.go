package rpn

import (
	"io"
	"strings"
)

// Eval is a shortcut to tokenize, parse, and evaluate an expression. The
// error, if any, is the first *LexError or *ParseError encountered, or an
// error reading src. Its message is suitable to show to the user as is.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	a, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

// Evaluate is a shortcut to evaluate a string expression.
func Evaluate(expr string) (float64, error) {
	return Eval(strings.NewReader(expr))
}
