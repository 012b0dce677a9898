package match

import "github.com/jacoelho/cssq/internal/css/ast"

// Output is one match: the node identity and where it is in the source.
// Declarations report ast.NoNode.
type Output struct {
	Node ast.NodeID
	Span ast.Span
	Ref  *ast.Node
}

// Record is the serialisable form of an Output.
type Record struct {
	Node   string `json:"node" yaml:"node"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
}

func (o Output) Record() Record {
	r := Record{
		Node:   o.Node.String(),
		Line:   o.Span.Line,
		Column: o.Span.Column,
		Start:  o.Span.Start,
		End:    o.Span.End,
	}
	if o.Ref != nil {
		r.Name = o.Ref.Name
		r.Value = o.Ref.Value
	}
	return r
}

// Records converts outputs for encoding.
func Records(outs []Output) []Record {
	records := make([]Record, len(outs))
	for i, o := range outs {
		records[i] = o.Record()
	}
	return records
}
