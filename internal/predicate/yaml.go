package predicate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// UnmarshalYAML decodes the mapping form
//
//	op: <operator>
//	value: <any>   # omitted for exists
func (e *Expr) UnmarshalYAML(node ast.Node) error {
	m, ok := node.(*ast.MappingNode)
	if !ok {
		return errors.New("predicate must be a mapping")
	}
	return e.decode(m.Values)
}

func (e *Expr) decode(values []*ast.MappingValueNode) error {
	for _, kv := range values {
		key, ok := kv.Key.(*ast.StringNode)
		if !ok {
			return errors.New("predicate key must be a string")
		}
		switch key.Value {
		case "op":
			s, ok := kv.Value.(*ast.StringNode)
			if !ok || strings.TrimSpace(s.Value) == "" {
				return errors.New("op must be a non-empty string")
			}
			e.Op = Operator(strings.TrimSpace(s.Value))
		case "value":
			v, err := nodeValue(kv.Value)
			if err != nil {
				return fmt.Errorf("failed to parse value: %w", err)
			}
			e.Value, e.HasValue = v, true
		default:
			return fmt.Errorf("unsupported predicate key %q: use 'op' and optional 'value'", key.Value)
		}
	}
	if e.Op == "" {
		return errors.New("predicate must specify an op")
	}
	return nil
}

// DecodeWith splits a mapping into one named string field and the predicate
// formed by the remaining keys, as in {path: $.x, op: equals, value: 1}.
func DecodeWith(node ast.Node, field string, dst *string, e *Expr) error {
	m, ok := node.(*ast.MappingNode)
	if !ok {
		return errors.New("expected a mapping")
	}
	var rest []*ast.MappingValueNode
	for _, kv := range m.Values {
		key, ok := kv.Key.(*ast.StringNode)
		if ok && key.Value == field {
			s, ok := kv.Value.(*ast.StringNode)
			if !ok {
				return fmt.Errorf("%s must be a string", field)
			}
			*dst = s.Value
			continue
		}
		rest = append(rest, kv)
	}
	if *dst == "" {
		return fmt.Errorf("missing required %q field", field)
	}
	return e.decode(rest)
}

// nodeValue normalises integers to int64 and floats to float64.
func nodeValue(node ast.Node) (any, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return v, nil
		case uint64:
			if v > math.MaxInt64 {
				return nil, fmt.Errorf("integer %d out of range", v)
			}
			return int64(v), nil
		}
		return nil, fmt.Errorf("unexpected integer value %T", n.Value)
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.NullNode:
		return nil, nil
	case *ast.SequenceNode:
		out := make([]any, 0, len(n.Values))
		for i, item := range n.Values {
			v, err := nodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("invalid value at index %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported node type: %T", node)
}
