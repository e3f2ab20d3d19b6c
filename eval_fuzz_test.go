package rpn_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("893/*4+")
	f.Add("9999+")
	f.Add("9++++")
	f.Add("1a+")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := rpn.Evaluate(s)
		if err == nil {
			return
		}
		var ierr rpn.InputError
		if !errors.As(err, &ierr) {
			t.Errorf("%q: error %v is not an InputError", s, err)
		}
	})
}

func FuzzTokenize(f *testing.F) {
	f.Add("123+- 45 *")
	f.Add(" \t ")
	f.Add("x")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := rpn.TokenizeString(s)
		if err != nil && toks != nil {
			t.Errorf("%q: tokens %v with error %v", s, toks, err)
		}
		last := 0
		for _, tok := range toks {
			if tok.Pos <= last {
				t.Errorf("%q: token %v not after position %d", s, tok, last)
			}
			last = tok.Pos
		}
	})
}
