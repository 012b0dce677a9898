package match

import "github.com/jacoelho/cssq/internal/css/ast"

// Context is what the matcher knows about a node when it is visited.
type Context struct {
	Own ast.Metadata

	// Index is the 1-based position among the siblings visited so far.
	Index int

	Root   bool
	Nested bool
}

// sibling is a visited child as recorded in its parent's frame.
type sibling struct {
	node *ast.Node
	ctx  Context
	ord  int

	// children is the final child count, known once the sibling has exited.
	children int
}

// frame is one entry of the ancestor stack.
type frame struct {
	node     *ast.Node
	ctx      Context
	ord      int
	children []sibling
}

// cursor locates an element relative to the stack: depth is the stack index
// of its parent frame (-1 for the root) and index its position in that
// frame's children.
type cursor struct {
	depth int
	index int
}

// position is an element's place among its complete set of siblings.
type position struct {
	index       int
	fromEnd     int
	total       int
	typeIndex   int
	typeFromEnd int
	typeTotal   int
}

// rootPosition treats the root as the only child of a virtual parent.
var rootPosition = position{1, 1, 1, 1, 1, 1}

// positions computes the position of every element of a complete child list
// whose identities id returns. Type-relative fields are filled only when
// tracking is set: one forward pass counts occurrences so far and one
// backward pass counts occurrences remaining.
func positions(count int, id func(int) ast.NodeID, tracking bool) []position {
	out := make([]position, count)
	for i := range out {
		out[i].index = i + 1
		out[i].fromEnd = count - i
		out[i].total = count
	}
	if !tracking {
		return out
	}

	seen := make(map[ast.NodeID]int)
	for i := range out {
		k := id(i)
		seen[k]++
		out[i].typeIndex = seen[k]
	}
	remaining := make(map[ast.NodeID]int)
	for i := count - 1; i >= 0; i-- {
		k := id(i)
		remaining[k]++
		out[i].typeFromEnd = remaining[k]
		out[i].typeTotal = seen[k]
	}
	return out
}

// positionOf derives a node's position from the finalized tree.
func positionOf(n *ast.Node) position {
	if n.Parent == nil {
		return rootPosition
	}
	siblings := n.Parent.Children
	return positions(len(siblings), func(i int) ast.NodeID { return siblings[i].ID }, true)[n.Index]
}

// target is an element under test together with what is known about it.
type target struct {
	node *ast.Node
	ctx  Context
	pos  *position

	// children is the recorded child count, or -1 to read it from the tree.
	children int
}

func newTarget(n *ast.Node, ctx Context) *target {
	return &target{node: n, ctx: ctx, children: -1}
}

// treeTarget builds a target from the tree alone.
func treeTarget(n *ast.Node) *target {
	ctx := Context{Own: n.Own, Index: n.Index + 1, Root: n.Parent == nil}
	for a := n.Parent; a != nil; a = a.Parent {
		if a.ID == ast.StyleRule {
			ctx.Nested = true
			break
		}
	}
	return newTarget(n, ctx)
}

// index is the 1-based sibling position, complete when known.
func (t *target) index() int {
	if t.pos != nil {
		return t.pos.index
	}
	return t.ctx.Index
}

func (t *target) position() position {
	if t.pos == nil {
		p := positionOf(t.node)
		t.pos = &p
	}
	return *t.pos
}

func (t *target) childCount() int {
	if t.children >= 0 {
		return t.children
	}
	return len(t.node.Children)
}
