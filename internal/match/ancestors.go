package match

import "github.com/jacoelho/cssq/internal/selector"

// resolve matches segment seg and everything left of it against the live
// stack. cur locates the element that matched segment seg+1.
func (m *Matcher) resolve(sel *selector.Selector, seg int, cur cursor) bool {
	switch sel.Segments[seg].Combinator {
	case selector.Child:
		return m.tryFrame(sel, seg, cur.depth)
	case selector.Descendant:
		for depth := range m.stack.Backward(cur.depth) {
			if m.tryFrame(sel, seg, depth) {
				return true
			}
		}
	case selector.NextSibling:
		return cur.index > 0 && m.trySibling(sel, seg, cur.depth, cur.index-1)
	case selector.SubsequentSibling:
		for i := cur.index - 1; i >= 0; i-- {
			if m.trySibling(sel, seg, cur.depth, i) {
				return true
			}
		}
	}
	return false
}

// tryFrame tests the ancestor frame at depth, then continues leftwards from
// it. A failure lets a descendant scan backtrack to a higher frame.
func (m *Matcher) tryFrame(sel *selector.Selector, seg, depth int) bool {
	f := m.stack.At(depth)
	if f == nil {
		return false
	}
	if !segmentMatches(sel, seg, newTarget(f.node, f.ctx)) {
		return false
	}
	if seg == 0 {
		return true
	}
	return m.resolve(sel, seg-1, cursor{depth: depth - 1, index: f.ctx.Index - 1})
}

// trySibling tests an earlier child of the frame at depth.
func (m *Matcher) trySibling(sel *selector.Selector, seg, depth, index int) bool {
	parent := m.stack.At(depth)
	if parent == nil || index >= len(parent.children) {
		return false
	}
	s := &parent.children[index]
	t := newTarget(s.node, s.ctx)
	t.children = s.children
	if !segmentMatches(sel, seg, t) {
		return false
	}
	if seg == 0 {
		return true
	}
	return m.resolve(sel, seg-1, cursor{depth: depth, index: index})
}
