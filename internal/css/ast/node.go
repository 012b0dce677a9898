package ast

import "iter"

// Span locates a node in its source. Start and End are byte offsets;
// Line and Column are 1-based and refer to Start.
type Span struct {
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (s Span) Len() int { return s.End - s.Start }

// Text returns the spanned source, or "" when the span is out of range.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return string(src[s.Start:s.End])
}

// Node is a stylesheet tree node. Declarations are nodes with ID NoNode whose
// children are the functions used in their value.
//
// Trees are built once, then Finalize links parents and computes metadata;
// after that a tree is read-only and safe to share between goroutines.
type Node struct {
	ID       NodeID
	Span     Span
	Name     string
	Value    string
	Own      Metadata
	Meta     Metadata
	Children []*Node
	Parent   *Node
	Index    int
}

func (n *Node) IsDeclaration() bool { return n.ID == NoNode }

// Property returns the queryable property of the given kind.
func (n *Node) Property(kind PropertyKind) (string, bool) {
	if !n.Own.Properties.Has(kind) {
		return "", false
	}
	switch kind {
	case PropertyName:
		return n.Name, true
	case PropertyValue:
		return n.Value, true
	}
	return "", false
}

// Append adds children and returns n, to keep tree literals short.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Preorder yields n and its descendants in document order.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n *Node, yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !preorder(c, yield) {
			return false
		}
	}
	return true
}

// Finalize links parents and sibling indexes and computes Own and Meta for
// the whole tree. Own fields set by the builder are kept and extended.
func Finalize(root *Node) {
	if root == nil {
		return
	}
	finalize(root, nil, 0)
}

func finalize(n, parent *Node, index int) Metadata {
	n.Parent = parent
	n.Index = index

	if n.ID != NoNode {
		n.Own.Nodes |= n.ID.Kinds()
		n.Own.Vendors |= n.ID.Vendor()
		n.Own.AtRules |= n.ID.AtRule()
		if len(n.Children) == 0 {
			n.Own.Nodes |= KindEmptyBlock
		}
	}
	if n.Name != "" {
		n.Own.Properties |= PropertyName
	}
	if n.IsDeclaration() {
		n.Own.Properties |= PropertyValue
	}
	if n.Own.Size == 0 {
		n.Own.Size = itemCount(n)
	}

	meta := n.Own
	for i, c := range n.Children {
		meta = meta.Merge(finalize(c, n, i))
	}
	meta.Size = n.Own.Size
	n.Meta = meta
	return meta
}

// itemCount is the default size: direct children, not counting the
// selector list of a style rule.
func itemCount(n *Node) int {
	count := 0
	for _, c := range n.Children {
		if c.ID != SelectorList {
			count++
		}
	}
	return count
}
