package ast

// Visitor receives depth-first traversal events. Typed nodes and
// declarations are reported through separate methods.
type Visitor interface {
	Enter(n *Node)
	Exit(n *Node)
	EnterDeclaration(n *Node)
	ExitDeclaration(n *Node)
}

// Walk visits root and its descendants in document order.
func Walk(root *Node, v Visitor) {
	if root == nil {
		return
	}
	walk(root, v)
}

func walk(n *Node, v Visitor) {
	if n.IsDeclaration() {
		v.EnterDeclaration(n)
	} else {
		v.Enter(n)
	}

	for _, c := range n.Children {
		walk(c, v)
	}

	if n.IsDeclaration() {
		v.ExitDeclaration(n)
	} else {
		v.Exit(n)
	}
}
