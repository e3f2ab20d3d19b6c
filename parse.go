package rpn

// Expr = digit | Expr Expr op
// digit = '0' | '1' | ... | '9'
// op = '+' | '-' | '*' | '/'

// Expr is a parsed expression. An Expr is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Eval computes the value of the expression. Only expressions returned by
// Parse are valid; Eval panics on a nil or zero Expr.
func (e *Expr) Eval() float64 {
	if e == nil || e.n == nil {
		panic("rpn: Eval of invalid Expr")
	}
	return e.n.eval()
}

// Parse builds an expression from a token sequence in a single pass. Each
// operand pushes a value; each operator replaces the two most recent values
// with their combination, the earlier one as its left operand. The sequence
// must leave exactly one value.
//
// If an operator has fewer than two values available, parsing stops with a
// *ParseError of kind MissingOperand. If the tokens leave zero or several
// values, the error is of kind RemainingOperand. Parse panics on a token that
// Tokenize could not produce.
func Parse(tokens []Token) (*Expr, error) {
	var stack []*node
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOperand:
			stack = append(stack, num(tok.Value))
		case TokenOperator:
			if tok.Op < Add || tok.Op > Div {
				panic("rpn: invalid token " + tok.String())
			}
			if len(stack) < 2 {
				return nil, &ParseError{Kind: MissingOperand, Col: tok.Pos}
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, binary(tok.Op, lhs, rhs))
		default:
			panic("rpn: invalid token " + tok.String())
		}
	}
	if len(stack) != 1 {
		col := 0
		if len(tokens) > 0 {
			col = tokens[len(tokens)-1].Pos
		}
		return nil, &ParseError{Kind: RemainingOperand, Col: col}
	}
	return &Expr{n: stack[0]}, nil
}
