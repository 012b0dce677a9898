package selector

import "github.com/jacoelho/cssq/internal/css/ast"

// Requirement is a set of capabilities a document must have for a selector
// to match anything in it.
type Requirement uint16

const (
	RequireImportant Requirement = 1 << iota
	RequireCustom
	RequireComputed
	RequireShorthand
	RequireLonghand
	RequireUnknown
	RequirePrefixed
	RequireStyleRule
	RequireAtRule
	RequireFunction
	RequireRule
)

func (r Requirement) Has(flags Requirement) bool { return r&flags == flags }

// Capabilities derives the capabilities present in a document summary.
func Capabilities(m ast.Metadata) Requirement {
	var r Requirement
	decls := map[ast.DeclarationKind]Requirement{
		ast.Important: RequireImportant,
		ast.Custom:    RequireCustom,
		ast.Computed:  RequireComputed,
		ast.Shorthand: RequireShorthand,
		ast.Longhand:  RequireLonghand,
	}
	for kind, req := range decls {
		if m.Declarations.Has(kind) {
			r |= req
		}
	}
	if m.HasUnknown() {
		r |= RequireUnknown
	}
	if m.Vendors != 0 {
		r |= RequirePrefixed
	}
	if m.Nodes.Has(ast.KindStyleRule) {
		r |= RequireStyleRule | RequireRule
	}
	if m.Nodes.Has(ast.KindAtRule) {
		r |= RequireAtRule | RequireRule
	}
	if m.Nodes.Has(ast.KindFunction) {
		r |= RequireFunction
	}
	return r
}

// Structure flags the shape of a selector.
type Structure uint8

const (
	HasCombinator Structure = 1 << iota
	HasAttribute
	HasPseudo
	HasFunctional
	HasType
	HasWildcard
)

func (s Structure) Has(flags Structure) bool { return s&flags == flags }

// Metadata summarises a selector or one of its segments.
//
// Segment metadata holds what can be tested against a single node. Selector
// metadata merges every segment plus the requirements of :has() arguments and
// is used to pre-filter whole documents.
type Metadata struct {
	Requirements    Requirement
	Structure       Structure
	PropertyGroups  ast.PropertyGroup
	VendorFilter    ast.VendorPrefix
	AttributeFilter ast.PropertyKind

	// RightmostType is the single identity the node must have, valid when
	// TypeFixed is set.
	RightmostType ast.NodeID
	TypeFixed     bool

	// NotType is an identity excluded by :not(type), valid when NotFixed is set.
	NotType  ast.NodeID
	NotFixed bool

	Deferred          bool
	NeedsTypeTracking bool
	Empty             bool

	// DeclarationEligible is set when some component is a meaningful
	// constraint on a declaration.
	DeclarationEligible bool
}

// Merge ORs the bitset fields and flags of other into m. The single valued
// type fields are left untouched.
func (m Metadata) Merge(other Metadata) Metadata {
	m.Requirements |= other.Requirements
	m.Structure |= other.Structure
	m.PropertyGroups |= other.PropertyGroups
	m.VendorFilter |= other.VendorFilter
	m.AttributeFilter |= other.AttributeFilter
	m.Deferred = m.Deferred || other.Deferred
	m.NeedsTypeTracking = m.NeedsTypeTracking || other.NeedsTypeTracking
	m.Empty = m.Empty || other.Empty
	m.DeclarationEligible = m.DeclarationEligible || other.DeclarationEligible
	return m
}

// filters keeps only the document-level fields that a :has() argument may
// contribute to its host selector.
func (m Metadata) filters() Metadata {
	return Metadata{
		Requirements:    m.Requirements,
		PropertyGroups:  m.PropertyGroups,
		VendorFilter:    m.VendorFilter,
		AttributeFilter: m.AttributeFilter,
	}
}

// intersect keeps what both alternatives require.
func (m Metadata) intersect(other Metadata) Metadata {
	m.Requirements &= other.Requirements
	m.PropertyGroups &= other.PropertyGroups
	m.VendorFilter &= other.VendorFilter
	m.AttributeFilter &= other.AttributeFilter
	return m
}

var pseudoRequirements = map[Pseudo]Requirement{
	PseudoImportant: RequireImportant,
	PseudoCustom:    RequireCustom,
	PseudoComputed:  RequireComputed,
	PseudoShorthand: RequireShorthand,
	PseudoLonghand:  RequireLonghand,
	PseudoUnknown:   RequireUnknown,
	PseudoPrefixed:  RequirePrefixed,
	PseudoRule:      RequireRule,
	PseudoAtRule:    RequireAtRule,
	PseudoFunction:  RequireFunction,
	PseudoNested:    RequireStyleRule,
}

func typeRequirement(id ast.NodeID) Requirement {
	var r Requirement
	kinds := id.Kinds()
	if kinds.Has(ast.KindStyleRule) {
		r |= RequireStyleRule
	}
	if kinds.Has(ast.KindAtRule) {
		r |= RequireAtRule
	}
	if kinds.Has(ast.KindFunction) {
		r |= RequireFunction
	}
	return r
}

// componentMeta is the node-level metadata contributed by one component.
func componentMeta(c Component) Metadata {
	var m Metadata
	switch c.Kind {
	case KindType:
		m.Structure |= HasType
		m.Requirements |= typeRequirement(c.Type)
	case KindWildcard:
		m.Structure |= HasWildcard
	case KindAttribute:
		m.Structure |= HasAttribute
		m.AttributeFilter |= c.Attribute.Kind
		m.DeclarationEligible = true
	case KindPseudo:
		m.Structure |= HasPseudo
		if c.Pseudo >= PseudoNot {
			m.Structure |= HasFunctional
		}
		m.Requirements |= pseudoRequirements[c.Pseudo]
		m.Deferred = c.Pseudo.Deferred()
		m.NeedsTypeTracking = c.Pseudo.TypeTracking()
		m.Empty = c.Pseudo == PseudoEmpty
		m.DeclarationEligible = c.Pseudo.DeclarationEligible()
		switch c.Pseudo {
		case PseudoPropertyType:
			m.PropertyGroups |= c.Group
		case PseudoPrefixedVendor:
			m.VendorFilter |= c.Vendor
			m.Requirements |= RequirePrefixed
		}
	}
	return m
}

// segmentMeta computes the node-level metadata of components.
func segmentMeta(components []Component) Metadata {
	var m Metadata
	wildcard := false
	for _, c := range components {
		m = m.Merge(componentMeta(c))
		switch c.Kind {
		case KindWildcard:
			wildcard = true
		case KindType:
			if m.TypeFixed && m.RightmostType != c.Type {
				// two different type tests can never both hold
				m.RightmostType = ast.NoNode
			} else {
				m.RightmostType = c.Type
			}
			m.TypeFixed = true
		case KindPseudo:
			if c.Pseudo == PseudoNot && !m.NotFixed {
				if id, ok := bareType(c.Inner); ok {
					m.NotType, m.NotFixed = id, true
				}
			}
		}
	}
	if wildcard {
		m.TypeFixed = false
		m.RightmostType = ast.NoNode
	}
	return m
}

// bareType reports whether l is exactly one type test.
func bareType(l *List) (ast.NodeID, bool) {
	if l == nil || len(l.Selectors) != 1 {
		return ast.NoNode, false
	}
	s := l.Selectors[0]
	if len(s.Components) != 1 || s.Leading != CombinatorNone || s.Components[0].Kind != KindType {
		return ast.NoNode, false
	}
	return s.Components[0].Type, true
}

// finish computes segment and selector metadata once parsing is done.
func (s *Selector) finish() {
	var meta Metadata
	for i := range s.Segments {
		seg := &s.Segments[i]
		seg.Meta = segmentMeta(s.Components[seg.Start:seg.End])
		meta = meta.Merge(seg.Meta)
	}
	if len(s.Segments) > 1 {
		meta.Structure |= HasCombinator
	}

	anchor := s.Anchor().Meta
	meta.RightmostType, meta.TypeFixed = anchor.RightmostType, anchor.TypeFixed
	meta.NotType, meta.NotFixed = anchor.NotType, anchor.NotFixed
	meta.Deferred = anchor.Deferred
	meta.NeedsTypeTracking = anchor.NeedsTypeTracking
	meta.Empty = anchor.Empty
	meta.DeclarationEligible = anchor.DeclarationEligible

	for _, c := range s.Components {
		if c.Kind == KindPseudo && c.Pseudo == PseudoHas {
			meta = meta.Merge(hasFilters(c.Inner))
		}
	}
	s.Meta = meta
}

func hasFilters(l *List) Metadata {
	if l == nil || len(l.Selectors) == 0 {
		return Metadata{}
	}
	m := l.Selectors[0].Meta.filters()
	for _, s := range l.Selectors[1:] {
		m = m.intersect(s.Meta.filters())
	}
	return m
}
