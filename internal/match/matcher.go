// Package match runs compiled selectors over stylesheet trees in a single
// depth-first pass.
package match

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/selector"
	"github.com/jacoelho/cssq/internal/stack"
)

const defaultDepth = 32

type options struct {
	prefilter bool
}

type Option func(*options)

// WithoutPrefilter makes every selector participate regardless of the
// document summary.
func WithoutPrefilter() Option {
	return func(o *options) {
		o.prefilter = false
	}
}

// Matcher holds the state of one run. It is not safe for concurrent use;
// independent runs need their own Matcher.
type Matcher struct {
	list *selector.List

	// immediate selectors are decided when a node is entered, empty ones at
	// the node's own exit and deferred ones at the parent's exit.
	immediate []*selector.Selector
	empty     []*selector.Selector
	deferred  []*selector.Selector
	tracking  bool

	stack   *stack.Stack[frame]
	ord     int
	results []result
}

type result struct {
	ord int
	out Output
}

// New prepares a matcher for a document with the given summary.
func New(list *selector.List, summary ast.Metadata, opts ...Option) *Matcher {
	o := options{prefilter: true}
	for _, opt := range opts {
		opt(&o)
	}

	var active []int
	if o.prefilter {
		active = Active(list, summary)
	} else {
		for i := range list.Selectors {
			active = append(active, i)
		}
	}

	m := &Matcher{
		list:  list,
		stack: stack.NewWithCapacity[frame](defaultDepth),
	}
	for _, i := range active {
		sel := list.Selectors[i]
		switch {
		case sel.Meta.Deferred:
			// deferred matching only covers selectors without ancestors
			if sel.HasAncestors() {
				continue
			}
			m.deferred = append(m.deferred, sel)
			m.tracking = m.tracking || sel.Meta.NeedsTypeTracking
		case sel.Meta.Empty:
			m.empty = append(m.empty, sel)
		default:
			m.immediate = append(m.immediate, sel)
		}
	}
	return m
}

// Idle reports whether no selector can match, so the walk can be skipped.
func (m *Matcher) Idle() bool {
	return len(m.immediate)+len(m.empty)+len(m.deferred) == 0
}

// Active is the number of selectors taking part in the run.
func (m *Matcher) Active() int {
	return len(m.immediate) + len(m.empty) + len(m.deferred)
}

func (m *Matcher) Enter(n *ast.Node)            { m.enter(n) }
func (m *Matcher) Exit(n *ast.Node)             { m.exit(n) }
func (m *Matcher) EnterDeclaration(n *ast.Node) { m.enter(n) }
func (m *Matcher) ExitDeclaration(n *ast.Node)  { m.exit(n) }

func (m *Matcher) enter(n *ast.Node) {
	ord := m.ord
	m.ord++

	ctx := Context{Own: n.Own, Index: 1, Root: m.stack.IsEmpty()}
	parent := m.stack.PeekRef()
	if parent != nil {
		ctx.Index = len(parent.children) + 1
		ctx.Nested = parent.ctx.Nested || parent.node.ID == ast.StyleRule
	}

	cur := cursor{depth: m.stack.Size() - 1, index: ctx.Index - 1}
	t := newTarget(n, ctx)
	for _, sel := range m.immediate {
		if m.matches(sel, t, cur) {
			m.emit(n, ord)
		}
	}

	if parent != nil {
		parent.children = append(parent.children, sibling{node: n, ctx: ctx, ord: ord})
	}
	m.stack.Push(frame{node: n, ctx: ctx, ord: ord})
}

func (m *Matcher) exit(n *ast.Node) {
	f, ok := m.stack.Pop()
	if !ok {
		return
	}
	self := sibling{node: n, ctx: f.ctx, ord: f.ord, children: len(f.children)}
	if parent := m.stack.PeekRef(); parent != nil {
		parent.children[len(parent.children)-1].children = self.children
	}

	if len(m.empty) > 0 && self.children == 0 {
		t := newTarget(n, f.ctx)
		t.children = 0
		cur := cursor{depth: m.stack.Size() - 1, index: f.ctx.Index - 1}
		for _, sel := range m.empty {
			if m.matches(sel, t, cur) {
				m.emit(n, f.ord)
			}
		}
	}

	if len(m.deferred) > 0 {
		m.settle(f.children)
		if m.stack.IsEmpty() {
			m.settle([]sibling{self})
		}
	}
}

// settle decides deferred selectors for a complete list of siblings.
func (m *Matcher) settle(children []sibling) {
	if len(children) == 0 {
		return
	}
	pos := positions(len(children), func(i int) ast.NodeID { return children[i].node.ID }, m.tracking)

	for i := range children {
		s := &children[i]
		t := newTarget(s.node, s.ctx)
		t.pos = &pos[i]
		t.children = s.children
		for _, sel := range m.deferred {
			if m.matches(sel, t, cursor{depth: -1}) {
				m.emit(s.node, s.ord)
			}
		}
	}
}

// matches applies the fast rejections, then the anchor segment, then the
// ancestor segments.
func (m *Matcher) matches(sel *selector.Selector, t *target, cur cursor) bool {
	n := t.node
	meta := sel.Meta
	if !n.IsDeclaration() {
		if meta.TypeFixed && meta.RightmostType != n.ID {
			return false
		}
		if meta.NotFixed && meta.NotType == n.ID {
			return false
		}
	}

	anchor := len(sel.Segments) - 1
	if !segmentMatches(sel, anchor, t) {
		return false
	}
	if anchor == 0 {
		return true
	}
	return m.resolve(sel, anchor-1, cur)
}

func (m *Matcher) emit(n *ast.Node, ord int) {
	m.results = append(m.results, result{ord: ord, out: Output{Node: n.ID, Span: n.Span, Ref: n}})
}

// Results returns the matches in document order. Matches of the same node
// keep selector order.
func (m *Matcher) Results() []Output {
	slices.SortStableFunc(m.results, func(a, b result) int { return a.ord - b.ord })
	out := make([]Output, len(m.results))
	for i, r := range m.results {
		out[i] = r.out
	}
	return out
}

// Run matches list against the tree rooted at root.
func Run(list *selector.List, root *ast.Node, opts ...Option) []Output {
	if root == nil || list == nil {
		return nil
	}
	m := New(list, root.Meta, opts...)
	if m.Idle() {
		return nil
	}
	ast.Walk(root, m)
	return m.Results()
}

// RunAll matches several lists against one tree concurrently, each with its
// own Matcher. The tree must not be modified while RunAll runs.
func RunAll(ctx context.Context, lists []*selector.List, root *ast.Node, opts ...Option) ([][]Output, error) {
	out := make([][]Output, len(lists))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, list := range lists {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Run(list, root, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
