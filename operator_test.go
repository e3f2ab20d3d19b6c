package rpn

import (
	"math"
	"testing"
)

func TestExec(t *testing.T) {
	cases := []struct {
		op   Operator
		x, y float64
		want float64
	}{
		{Add, 1, 2, 3},
		{Sub, 5, 2, 3},
		{Sub, 1, 2, -1},
		{Mul, 4, 2, 8},
		{Div, 8, 2, 4},
		{Div, 1, 4, 0.25},
		{Div, 1, 0, math.Inf(1)},
		{Div, -1, 0, math.Inf(-1)},
	}
	for _, c := range cases {
		if got := c.op.Exec(c.x, c.y); got != c.want {
			t.Errorf("%g %v %g: want %g, got %g", c.x, c.op, c.y, c.want, got)
		}
	}
	if got := Div.Exec(0, 0); !math.IsNaN(got) {
		t.Errorf("0/0: want NaN, got %g", got)
	}
}

func TestExecInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic executing invalid operator")
		}
	}()
	OpNone.Exec(1, 2)
}

func TestOperatorString(t *testing.T) {
	cases := []struct {
		op   Operator
		want string
	}{
		{Add, "+"},
		{Sub, "-"},
		{Mul, "*"},
		{Div, "/"},
		{OpNone, "Operator(0)"},
		{Operator(9), "Operator(9)"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
	for _, r := range Operators {
		if op := operator(r); op.String() != string(r) {
			t.Errorf("operator(%q) = %v", r, op)
		}
	}
}
