package rpn

import "strconv"

// Operator is one of the four binary arithmetic operators.
type Operator int8

const (
	// OpNone is the zero Operator. It is not a valid operator.
	OpNone Operator = iota
	// Add is +.
	Add
	// Sub is -.
	Sub
	// Mul is *.
	Mul
	// Div is /.
	Div
)

// Operators contains the runes which are operators, in the same order as the
// Operator constants starting from Add.
const Operators = "+-*/"

// operator returns the operator for r, or OpNone if r is not an operator.
func operator(r rune) Operator {
	switch r {
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mul
	case '/':
		return Div
	}
	return OpNone
}

// Exec applies the operator to x and y, in that order. Division by zero
// follows IEEE-754, giving an infinity or NaN. Panics if op is not a valid
// operator.
func (op Operator) Exec(x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Sub:
		return x - y
	case Mul:
		return x * y
	case Div:
		return x / y
	default:
		panic("rpn: invalid operator " + op.String())
	}
}

func (op Operator) String() string {
	if op < Add || op > Div {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op-Add : op-Add+1]
}
