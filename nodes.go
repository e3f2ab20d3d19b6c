package rpn

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	num float64
	op  Operator

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // value is num
	nodeOp  // evaluate left, then right, then apply op
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeOp:
		return "Op"
	default:
		return "nodeKind(?)"
	}
}

func num(v float64) *node {
	return &node{kind: nodeNum, num: v}
}

func binary(op Operator, lhs, rhs *node) *node {
	return &node{kind: nodeOp, op: op, left: lhs, right: rhs}
}

// eval computes the value of the subtree rooted at n.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeOp:
		x := n.left.eval()
		y := n.right.eval()
		return n.op.Exec(x, y)
	default:
		panic("rpn: invalid AST node " + n.kind.String())
	}
}
