// Package properties is a catalog of known CSS properties: the module groups
// each belongs to and whether it is a shorthand.
package properties

import (
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
)

// Info describes a declaration's property name.
type Info struct {
	Name      string
	Groups    ast.PropertyGroup
	Shorthand bool
	Vendor    ast.VendorPrefix
	Custom    bool
}

// Lookup classifies a property name. Names are matched ignoring ASCII case.
// A vendor-prefixed name resolves to its unprefixed entry and records the
// prefix; prefixed names without a catalog entry are reported unknown and
// carry no vendor bits.
func Lookup(name string) (Info, bool) {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "--") {
		return Info{Name: name, Custom: true, Groups: ast.GroupVariables}, true
	}

	if e, ok := catalog[lower]; ok {
		return Info{Name: name, Groups: e.groups, Shorthand: e.shorthand}, true
	}

	prefix, base, ok := SplitVendor(lower)
	if !ok {
		return Info{Name: name}, false
	}
	vendor, known := ast.ParseVendor(prefix)
	e, ok := catalog[base]
	if !ok || !known {
		return Info{Name: name}, false
	}
	return Info{Name: name, Groups: e.groups, Shorthand: e.shorthand, Vendor: vendor}, true
}

// SplitVendor splits "-webkit-transform" into "webkit" and "transform".
// Custom properties ("--x") and unprefixed names do not split.
func SplitVendor(name string) (prefix, rest string, ok bool) {
	if len(name) < 2 || name[0] != '-' {
		return "", "", false
	}
	end := strings.IndexByte(name[1:], '-')
	if end <= 0 {
		return "", "", false
	}
	return name[1 : 1+end], name[2+end:], true
}

var groupNames = map[string]ast.PropertyGroup{
	"align":            ast.GroupAlign,
	"anchor":           ast.GroupAnchorPosition,
	"anchor-position":  ast.GroupAnchorPosition,
	"animation":        ast.GroupAnimations,
	"animations":       ast.GroupAnimations,
	"background":       ast.GroupBackgrounds,
	"backgrounds":      ast.GroupBackgrounds,
	"border":           ast.GroupBorders,
	"borders":          ast.GroupBorders,
	"box":              ast.GroupBox,
	"break":            ast.GroupBreak,
	"cascade":          ast.GroupCascade,
	"color":            ast.GroupColor,
	"color-adjust":     ast.GroupColorAdjust,
	"conditional":      ast.GroupConditional,
	"contain":          ast.GroupContain,
	"content":          ast.GroupContent,
	"display":          ast.GroupDisplay,
	"flex":             ast.GroupFlexbox,
	"flexbox":          ast.GroupFlexbox,
	"font":             ast.GroupFonts,
	"fonts":            ast.GroupFonts,
	"gap":              ast.GroupGaps,
	"gaps":             ast.GroupGaps,
	"grid":             ast.GroupGrid,
	"image":            ast.GroupImages,
	"images":           ast.GroupImages,
	"inline":           ast.GroupInline,
	"list":             ast.GroupLists,
	"lists":            ast.GroupLists,
	"logical":          ast.GroupLogical,
	"mask":             ast.GroupMasking,
	"masking":          ast.GroupMasking,
	"multicol":         ast.GroupMulticol,
	"overflow":         ast.GroupOverflow,
	"overscroll":       ast.GroupOverscroll,
	"page":             ast.GroupPage,
	"position":         ast.GroupPosition,
	"ruby":             ast.GroupRuby,
	"scroll-snap":      ast.GroupScrollSnap,
	"scrollbar":        ast.GroupScrollbars,
	"scrollbars":       ast.GroupScrollbars,
	"shape":            ast.GroupShapes,
	"shapes":           ast.GroupShapes,
	"sizing":           ast.GroupSizing,
	"speech":           ast.GroupSpeech,
	"table":            ast.GroupTables,
	"tables":           ast.GroupTables,
	"text":             ast.GroupText,
	"text-decor":       ast.GroupTextDecor,
	"text-decoration":  ast.GroupTextDecor,
	"transform":        ast.GroupTransforms,
	"transforms":       ast.GroupTransforms,
	"transition":       ast.GroupTransitions,
	"transitions":      ast.GroupTransitions,
	"ui":               ast.GroupUI,
	"variables":        ast.GroupVariables,
	"view-transitions": ast.GroupViewTransitions,
	"will-change":      ast.GroupWillChange,
	"writing-modes":    ast.GroupWritingModes,
}

// Group resolves a :property-type() argument.
func Group(name string) (ast.PropertyGroup, bool) {
	g, ok := groupNames[strings.ToLower(name)]
	return g, ok
}

var computedFunctions = []string{"calc(", "var(", "env(", "min(", "max(", "clamp(", "attr("}

// IsComputedValue reports whether a declaration value is resolved at
// computed-value time.
func IsComputedValue(value string) bool {
	lower := strings.ToLower(value)
	for _, fn := range computedFunctions {
		for offset := 0; offset < len(lower); {
			i := strings.Index(lower[offset:], fn)
			if i < 0 {
				break
			}
			at := offset + i
			if at == 0 || !isNameByte(lower[at-1]) {
				return true
			}
			offset = at + len(fn)
		}
	}
	return false
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')
}
