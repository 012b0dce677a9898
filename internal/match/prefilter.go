package match

import (
	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/selector"
)

// Active returns the indices of the selectors in l that can match a
// document with the given summary.
//
// Selectors that test vendor prefixes always participate: prefixes of
// properties missing from the catalog are only found by inspecting the raw
// name, so they never reach the summary.
func Active(l *selector.List, summary ast.Metadata) []int {
	caps := selector.Capabilities(summary)
	var active []int
	for i, sel := range l.Selectors {
		if participates(sel.Meta, summary, caps) {
			active = append(active, i)
		}
	}
	return active
}

func participates(m selector.Metadata, summary ast.Metadata, caps selector.Requirement) bool {
	if m.Requirements.Has(selector.RequirePrefixed) {
		return true
	}
	if m.Requirements&^caps != 0 {
		return false
	}
	if m.PropertyGroups != 0 && !summary.Groups.Has(m.PropertyGroups) {
		return false
	}
	if m.AttributeFilter != 0 && !summary.Properties.Has(m.AttributeFilter) {
		return false
	}
	return true
}
