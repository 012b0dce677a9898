package match

import (
	"iter"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/selector"
)

// :not() and :has() arguments are matched against the finalized tree
// instead of the live stack, since :has() looks at nodes not yet visited.

// matchesAny reports whether any selector of l matches n.
func matchesAny(l *selector.List, n *ast.Node) bool {
	for _, sel := range l.Selectors {
		if matchesTree(sel, n, nil) {
			return true
		}
	}
	return false
}

// hasMatch reports whether some node related to scope matches a relative
// selector of l. Without a leading combinator the candidates are the
// descendants of scope; with + or ~ they are its later siblings and their
// descendants.
func hasMatch(l *selector.List, scope *ast.Node) bool {
	for _, sel := range l.Selectors {
		for cand := range candidates(sel.Leading, scope) {
			if matchesTree(sel, cand, scope) {
				return true
			}
		}
	}
	return false
}

func candidates(lead selector.Combinator, scope *ast.Node) iter.Seq[*ast.Node] {
	return func(yield func(*ast.Node) bool) {
		var roots []*ast.Node
		switch lead {
		case selector.NextSibling, selector.SubsequentSibling:
			if scope.Parent != nil {
				roots = scope.Parent.Children[scope.Index+1:]
			}
		default:
			roots = scope.Children
		}
		for _, r := range roots {
			for n := range r.Preorder() {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// matchesTree matches sel with n as the anchor. A non-nil scope is the
// element a relative selector is anchored to.
func matchesTree(sel *selector.Selector, n, scope *ast.Node) bool {
	return tryTree(sel, len(sel.Segments)-1, n, scope)
}

func tryTree(sel *selector.Selector, seg int, n, scope *ast.Node) bool {
	if !segmentMatches(sel, seg, treeTarget(n)) {
		return false
	}
	if seg == 0 {
		return related(sel.Leading, n, scope)
	}

	switch sel.Segments[seg-1].Combinator {
	case selector.Child:
		return n.Parent != nil && tryTree(sel, seg-1, n.Parent, scope)
	case selector.Descendant:
		for a := n.Parent; a != nil; a = a.Parent {
			if tryTree(sel, seg-1, a, scope) {
				return true
			}
		}
	case selector.NextSibling:
		return n.Parent != nil && n.Index > 0 && tryTree(sel, seg-1, n.Parent.Children[n.Index-1], scope)
	case selector.SubsequentSibling:
		if n.Parent == nil {
			return false
		}
		for i := n.Index - 1; i >= 0; i-- {
			if tryTree(sel, seg-1, n.Parent.Children[i], scope) {
				return true
			}
		}
	}
	return false
}

// related checks the leftmost element of a relative selector against scope.
func related(lead selector.Combinator, n, scope *ast.Node) bool {
	if scope == nil {
		return true
	}
	switch lead {
	case selector.Child:
		return n.Parent == scope
	case selector.NextSibling:
		return scope.Parent != nil && n.Parent == scope.Parent && n.Index == scope.Index+1
	case selector.SubsequentSibling:
		return scope.Parent != nil && n.Parent == scope.Parent && n.Index > scope.Index
	}
	for a := n.Parent; a != nil; a = a.Parent {
		if a == scope {
			return true
		}
	}
	return false
}
