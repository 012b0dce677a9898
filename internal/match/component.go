package match

import (
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/css/properties"
	"github.com/jacoelho/cssq/internal/selector"
)

// segmentMatches tests one segment against t, without the type fast path.
func segmentMatches(sel *selector.Selector, seg int, t *target) bool {
	meta := sel.Segments[seg].Meta
	if t.node.IsDeclaration() && (meta.Structure.Has(selector.HasType) || !meta.DeclarationEligible) {
		return false
	}
	if !nodeFilters(meta, t.node) {
		return false
	}
	for _, c := range sel.SegmentComponents(seg) {
		if !matchComponent(c, t) {
			return false
		}
	}
	return true
}

// nodeFilters rejects nodes lacking the groups or vendors a segment needs.
// Named nodes skip the vendor check since their prefix may only be visible
// in the raw name.
func nodeFilters(meta selector.Metadata, n *ast.Node) bool {
	if meta.PropertyGroups != 0 && !n.Own.Groups.Has(meta.PropertyGroups) {
		return false
	}
	if meta.VendorFilter != 0 && !n.Own.Vendors.Has(meta.VendorFilter) && !n.Own.Properties.Has(ast.PropertyName) {
		return false
	}
	return true
}

func matchComponent(c selector.Component, t *target) bool {
	n := t.node
	switch c.Kind {
	case selector.KindWildcard:
		return true
	case selector.KindType:
		return !n.IsDeclaration() && n.ID == c.Type
	case selector.KindAttribute:
		if c.Attribute.Kind == 0 {
			return false
		}
		v, ok := n.Property(c.Attribute.Kind)
		return ok && c.Attribute.Match(v)
	case selector.KindPseudo:
		return matchPseudo(c, t)
	}
	return false
}

func matchPseudo(c selector.Component, t *target) bool {
	n := t.node
	decl := n.IsDeclaration()
	flags := n.Own.Declarations

	switch c.Pseudo {
	case selector.PseudoImportant:
		return decl && flags.Has(ast.Important)
	case selector.PseudoCustom:
		return decl && flags.Has(ast.Custom)
	case selector.PseudoComputed:
		return decl && flags.Has(ast.Computed)
	case selector.PseudoShorthand:
		return decl && flags.Has(ast.Shorthand)
	case selector.PseudoLonghand:
		return decl && flags.Has(ast.Longhand)
	case selector.PseudoUnknown:
		if decl {
			return flags.Has(ast.UnknownProperty)
		}
		return n.ID.IsUnknown()
	case selector.PseudoPropertyType:
		return decl && n.Own.Groups.Has(c.Group)
	case selector.PseudoPrefixed:
		return vendorOf(n) != 0
	case selector.PseudoPrefixedVendor:
		v := vendorOf(n)
		return v != 0 && v.Has(c.Vendor)

	case selector.PseudoRoot:
		return t.ctx.Root
	case selector.PseudoRule:
		return !decl && n.ID.IsRule()
	case selector.PseudoAtRule:
		return !decl && n.ID.IsAtRule()
	case selector.PseudoFunction:
		return !decl && n.ID.IsFunction()
	case selector.PseudoNested:
		return t.ctx.Nested
	case selector.PseudoEmpty:
		return t.childCount() == 0
	case selector.PseudoSize:
		return c.Size.Matches(n.Own.Size)

	case selector.PseudoFirstChild:
		return t.index() == 1
	case selector.PseudoNthChild:
		return c.Nth.Matches(t.index())
	case selector.PseudoLastChild:
		return t.position().fromEnd == 1
	case selector.PseudoOnlyChild:
		return t.position().total == 1
	case selector.PseudoNthLastChild:
		return c.Nth.Matches(t.position().fromEnd)
	case selector.PseudoFirstOfType:
		return t.position().typeIndex == 1
	case selector.PseudoLastOfType:
		return t.position().typeFromEnd == 1
	case selector.PseudoOnlyOfType:
		return t.position().typeTotal == 1
	case selector.PseudoNthOfType:
		return c.Nth.Matches(t.position().typeIndex)
	case selector.PseudoNthLastOfType:
		return c.Nth.Matches(t.position().typeFromEnd)

	case selector.PseudoNot:
		return !matchesAny(c.Inner, n)
	case selector.PseudoHas:
		return hasMatch(c.Inner, n)
	}
	return false
}

// vendorOf returns the node's vendor prefix, falling back to the raw name
// for properties the catalog does not know.
func vendorOf(n *ast.Node) ast.VendorPrefix {
	if n.Own.Vendors != 0 {
		return n.Own.Vendors
	}
	name, ok := n.Property(ast.PropertyName)
	if !ok {
		return 0
	}
	prefix, _, ok := properties.SplitVendor(strings.ToLower(name))
	if !ok {
		return 0
	}
	v, _ := ast.ParseVendor(prefix)
	return v
}
