package selector

import (
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
)

// Combinator joins two segments.
type Combinator uint8

const (
	CombinatorNone Combinator = iota
	Descendant
	Child
	NextSibling
	SubsequentSibling
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case NextSibling:
		return "+"
	case SubsequentSibling:
		return "~"
	}
	return ""
}

// ComponentKind discriminates Component.
type ComponentKind uint8

const (
	KindType ComponentKind = iota + 1
	KindWildcard
	KindAttribute
	KindPseudo
)

// Pseudo enumerates pseudo-classes, plain and functional.
type Pseudo uint8

const (
	PseudoImportant Pseudo = iota + 1
	PseudoCustom
	PseudoComputed
	PseudoShorthand
	PseudoLonghand
	PseudoUnknown
	PseudoPrefixed
	PseudoRoot
	PseudoRule
	PseudoAtRule
	PseudoFunction
	PseudoNested
	PseudoFirstChild
	PseudoLastChild
	PseudoOnlyChild
	PseudoFirstOfType
	PseudoLastOfType
	PseudoOnlyOfType
	PseudoEmpty
	PseudoNot
	PseudoHas
	PseudoNthChild
	PseudoNthLastChild
	PseudoNthOfType
	PseudoNthLastOfType
	PseudoPropertyType
	PseudoPrefixedVendor
	PseudoSize
)

var pseudoNames = map[string]Pseudo{
	"important":     PseudoImportant,
	"custom":        PseudoCustom,
	"computed":      PseudoComputed,
	"shorthand":     PseudoShorthand,
	"longhand":      PseudoLonghand,
	"unknown":       PseudoUnknown,
	"prefixed":      PseudoPrefixed,
	"root":          PseudoRoot,
	"rule":          PseudoRule,
	"at-rule":       PseudoAtRule,
	"function":      PseudoFunction,
	"nested":        PseudoNested,
	"first-child":   PseudoFirstChild,
	"last-child":    PseudoLastChild,
	"only-child":    PseudoOnlyChild,
	"first-of-type": PseudoFirstOfType,
	"last-of-type":  PseudoLastOfType,
	"only-of-type":  PseudoOnlyOfType,
	"empty":         PseudoEmpty,
}

var functionalNames = map[string]Pseudo{
	"not":              PseudoNot,
	"has":              PseudoHas,
	"nth-child":        PseudoNthChild,
	"nth-last-child":   PseudoNthLastChild,
	"nth-of-type":      PseudoNthOfType,
	"nth-last-of-type": PseudoNthLastOfType,
	"property-type":    PseudoPropertyType,
	"prefixed":         PseudoPrefixedVendor,
	"size":             PseudoSize,
}

// Deferred reports whether p can only be decided once every sibling is known.
func (p Pseudo) Deferred() bool {
	switch p {
	case PseudoOnlyChild, PseudoLastChild, PseudoNthLastChild,
		PseudoFirstOfType, PseudoLastOfType, PseudoOnlyOfType,
		PseudoNthOfType, PseudoNthLastOfType:
		return true
	}
	return false
}

// TypeTracking reports whether p needs per-type sibling counts.
func (p Pseudo) TypeTracking() bool {
	switch p {
	case PseudoFirstOfType, PseudoLastOfType, PseudoOnlyOfType,
		PseudoNthOfType, PseudoNthLastOfType:
		return true
	}
	return false
}

// Positional reports whether p depends on the node's place among siblings.
func (p Pseudo) Positional() bool {
	return p == PseudoFirstChild || p == PseudoNthChild || p.Deferred()
}

// DeclarationEligible reports whether p is a meaningful constraint on a
// declaration.
func (p Pseudo) DeclarationEligible() bool {
	switch p {
	case PseudoImportant, PseudoCustom, PseudoComputed, PseudoShorthand,
		PseudoLonghand, PseudoUnknown, PseudoPrefixed, PseudoPrefixedVendor,
		PseudoPropertyType:
		return true
	}
	return false
}

// Component is one simple selector.
type Component struct {
	Kind ComponentKind
	Pos  int

	// Type is the tested identity for KindType. Unknown tag names compile to
	// ast.NoNode, which no typed node carries.
	Type     ast.NodeID
	TypeName string

	Attribute Attribute

	Pseudo Pseudo
	Nth    Nth
	Size   Comparison
	Group  ast.PropertyGroup
	Vendor ast.VendorPrefix
	Inner  *List
}

// Selector is one compiled alternative of a List.
type Selector struct {
	Text       string
	Components []Component
	Segments   []Segment
	Meta       Metadata

	// Leading is set for relative selectors inside :has(), as in :has(> a).
	Leading Combinator
}

// Anchor returns the rightmost segment.
func (s *Selector) Anchor() *Segment {
	return &s.Segments[len(s.Segments)-1]
}

// AnchorComponents returns the components of the rightmost segment.
func (s *Selector) AnchorComponents() []Component {
	a := s.Anchor()
	return s.Components[a.Start:a.End]
}

// HasAncestors reports whether any segment precedes the anchor.
func (s *Selector) HasAncestors() bool { return len(s.Segments) > 1 }

// List is a comma separated selector list.
type List struct {
	Text      string
	Selectors []*Selector
}

func (l *List) Len() int { return len(l.Selectors) }

func (l *List) String() string {
	parts := make([]string, len(l.Selectors))
	for i, s := range l.Selectors {
		parts[i] = s.Text
	}
	return strings.Join(parts, ", ")
}
