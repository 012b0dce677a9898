package selector

import (
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
)

// AttrOp is an attribute test operator.
type AttrOp uint8

const (
	AttrExists   AttrOp = iota // [name]
	AttrEquals                 // [name=v]
	AttrIncludes               // [name~=v]
	AttrDash                   // [name|=v]
	AttrPrefix                 // [name^=v]
	AttrSuffix                 // [name$=v]
	AttrContains               // [name*=v]
)

var attrOps = map[string]AttrOp{
	"=":  AttrEquals,
	"~=": AttrIncludes,
	"|=": AttrDash,
	"^=": AttrPrefix,
	"$=": AttrSuffix,
	"*=": AttrContains,
}

// Attribute tests a queryable node property. Kind is zero for names other
// than "name" and "value", which never match.
type Attribute struct {
	Name  string
	Kind  ast.PropertyKind
	Op    AttrOp
	Value string
}

// Match compares actual against the expected value, ignoring ASCII case.
func (a Attribute) Match(actual string) bool {
	if a.Op == AttrExists {
		return true
	}
	want := a.Value
	switch a.Op {
	case AttrEquals:
		return strings.EqualFold(actual, want)
	case AttrIncludes:
		if want == "" {
			return false
		}
		for _, word := range strings.Fields(actual) {
			if strings.EqualFold(word, want) {
				return true
			}
		}
		return false
	case AttrDash:
		if want == "" || strings.EqualFold(actual, want) {
			return true
		}
		return len(actual) > len(want) && actual[len(want)] == '-' && strings.EqualFold(actual[:len(want)], want)
	case AttrPrefix:
		return len(actual) >= len(want) && strings.EqualFold(actual[:len(want)], want)
	case AttrSuffix:
		return len(actual) >= len(want) && strings.EqualFold(actual[len(actual)-len(want):], want)
	case AttrContains:
		return strings.Contains(strings.ToLower(actual), strings.ToLower(want))
	}
	return false
}
