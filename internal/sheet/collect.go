package sheet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/selector"
)

// Stat is a statistic's total after collection.
type Stat struct {
	Name  string   `json:"name" yaml:"name"`
	Type  StatType `json:"type" yaml:"type"`
	Value int      `json:"value" yaml:"value"`
}

// Diagnostic is a rendered message for one match.
type Diagnostic struct {
	Level   Level  `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
	Node    string `json:"node" yaml:"node"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
}

// Report is the outcome of running a sheet over one document.
type Report struct {
	Stats       []Stat       `json:"stats" yaml:"stats"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Count returns the number of diagnostics at level.
func (r *Report) Count(level Level) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Level == level {
			n++
		}
	}
	return n
}

type hit struct {
	node     *ast.Node
	snapshot map[string]int
}

// collection is the per-document state of one Collect call.
type collection struct {
	sheet  *Sheet
	src    []byte
	totals []int
	hits   [][]hit
	done   []bool
}

// Collect runs the sheet over the tree parsed from src.
//
// Rules without conditions run first. Conditional rules then run in rounds:
// each round runs, in sheet order, every pending rule whose conditions hold
// against the totals so far, and rounds repeat until one runs nothing. Each
// rule runs at most once. A rule without a query matches the root once.
func (s *Sheet) Collect(ctx context.Context, root *ast.Node, src []byte, opts ...match.Option) (*Report, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no document to collect from", ErrSheet)
	}
	c := &collection{
		sheet:  s,
		src:    src,
		totals: make([]int, len(s.stats)),
		hits:   make([][]hit, len(s.rules)),
		done:   make([]bool, len(s.rules)),
	}

	var first []int
	var lists []*selector.List
	for i, r := range s.rules {
		if len(r.when) == 0 {
			first = append(first, i)
			lists = append(lists, r.list)
		}
	}
	outputs, err := match.RunAll(ctx, lists, root, opts...)
	if err != nil {
		return nil, err
	}
	for j, i := range first {
		c.apply(i, outputs[j])
	}

	for progress := true; progress; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress = false
		for i, r := range s.rules {
			if c.done[i] || !c.holds(r) {
				continue
			}
			outs := []match.Output{{Node: root.ID, Span: root.Span, Ref: root}}
			if r.list != nil {
				outs = match.Run(r.list, root, opts...)
			}
			c.apply(i, outs)
			progress = true
		}
	}
	return c.report(), nil
}

func (c *collection) value(name string) int {
	return c.totals[c.sheet.index[name]]
}

func (c *collection) holds(r *rule) bool {
	for _, cond := range r.when {
		if !cond.Holds(c.value) {
			return false
		}
	}
	return true
}

func (c *collection) apply(i int, outs []match.Output) {
	r := c.sheet.rules[i]
	c.done[i] = true
	for _, o := range outs {
		if r.message != nil {
			h := hit{node: o.Ref}
			if names := r.message.stats(); len(names) > 0 {
				h.snapshot = make(map[string]int, len(names))
				for _, name := range names {
					h.snapshot[name] = c.value(name)
				}
			}
			c.hits[i] = append(c.hits[i], h)
		}
		for _, name := range r.collect {
			idx := c.sheet.index[name]
			c.totals[idx] += c.amount(c.sheet.stats[idx].typ, o.Span)
		}
	}
}

func (c *collection) amount(typ StatType, span ast.Span) int {
	switch typ {
	case Bytes:
		return span.Len()
	case Lines:
		if span.Start < 0 || span.End > len(c.src) || span.Start >= span.End {
			return 0
		}
		return lines(c.src[span.Start:span.End])
	}
	return 1
}

// lines counts lines the way a line iterator would: a trailing newline does
// not start another line.
func lines(text []byte) int {
	n := bytes.Count(text, []byte{'\n'})
	if !bytes.HasSuffix(text, []byte{'\n'}) {
		n++
	}
	return n
}

func (c *collection) report() *Report {
	rep := &Report{Stats: make([]Stat, len(c.sheet.stats))}
	for i, st := range c.sheet.stats {
		rep.Stats[i] = Stat{Name: st.name, Type: st.typ, Value: c.totals[i]}
	}
	for i, r := range c.sheet.rules {
		if r.message == nil {
			continue
		}
		for _, h := range c.hits[i] {
			rep.Diagnostics = append(rep.Diagnostics, Diagnostic{
				Level:   r.level,
				Message: r.message.render(h.node, h.snapshot),
				Node:    h.node.ID.String(),
				Line:    h.node.Span.Line,
				Column:  h.node.Span.Column,
				Start:   h.node.Span.Start,
				End:     h.node.Span.End,
			})
		}
	}
	return rep
}
