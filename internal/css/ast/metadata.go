package ast

import "strings"

// DeclarationKind flags what kind of declarations a subtree holds.
type DeclarationKind uint8

const (
	Important DeclarationKind = 1 << iota
	Custom
	Computed
	Shorthand
	Longhand
	UnknownProperty
)

func (k DeclarationKind) Has(flags DeclarationKind) bool { return k&flags == flags }

// NodeKind flags coarse node categories present in a subtree.
type NodeKind uint8

const (
	KindStyleRule NodeKind = 1 << iota
	KindAtRule
	KindFunction
	KindUnknown
	KindEmptyBlock
)

func (k NodeKind) Has(flags NodeKind) bool { return k&flags == flags }

// VendorPrefix is a set of vendor prefixes.
type VendorPrefix uint8

const (
	Webkit VendorPrefix = 1 << iota
	Moz
	Ms
	O
)

var vendorNames = map[string]VendorPrefix{
	"webkit": Webkit,
	"moz":    Moz,
	"ms":     Ms,
	"o":      O,
}

// ParseVendor resolves a vendor name such as "webkit", with or without dashes.
func ParseVendor(name string) (VendorPrefix, bool) {
	v, ok := vendorNames[strings.ToLower(strings.Trim(name, "-"))]
	return v, ok
}

func (v VendorPrefix) Has(flags VendorPrefix) bool { return v&flags == flags }

func (v VendorPrefix) String() string {
	var parts []string
	for _, name := range []string{"webkit", "moz", "ms", "o"} {
		if v.Has(vendorNames[name]) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// PropertyKind names the queryable properties a node exposes.
type PropertyKind uint8

const (
	PropertyName PropertyKind = 1 << iota
	PropertyValue
)

func (k PropertyKind) Has(flags PropertyKind) bool { return k&flags == flags }

// ParsePropertyKind resolves an attribute name used in [attr] tests.
func ParsePropertyKind(name string) (PropertyKind, bool) {
	switch strings.ToLower(name) {
	case "name":
		return PropertyName, true
	case "value":
		return PropertyValue, true
	}
	return 0, false
}

// PropertyGroup is a set of CSS modules a property belongs to.
type PropertyGroup uint64

const (
	GroupAlign PropertyGroup = 1 << iota
	GroupAnchorPosition
	GroupAnimations
	GroupBackgrounds
	GroupBorders
	GroupBox
	GroupBreak
	GroupCascade
	GroupColor
	GroupColorAdjust
	GroupConditional
	GroupContain
	GroupContent
	GroupDisplay
	GroupFlexbox
	GroupFonts
	GroupGaps
	GroupGrid
	GroupImages
	GroupInline
	GroupLists
	GroupLogical
	GroupMasking
	GroupMulticol
	GroupOverflow
	GroupOverscroll
	GroupPage
	GroupPosition
	GroupRuby
	GroupScrollSnap
	GroupScrollbars
	GroupShapes
	GroupSizing
	GroupSpeech
	GroupTables
	GroupText
	GroupTextDecor
	GroupTransforms
	GroupTransitions
	GroupUI
	GroupVariables
	GroupViewTransitions
	GroupWillChange
	GroupWritingModes
)

func (g PropertyGroup) Has(flags PropertyGroup) bool { return g&flags == flags }

// AtRuleID is a set of at-rules used in a subtree.
type AtRuleID uint32

const (
	AtMedia AtRuleID = 1 << iota
	AtSupports
	AtContainer
	AtLayer
	AtScope
	AtStartingStyle
	AtFontFace
	AtPage
	AtProperty
	AtCounterStyle
	AtFontFeatureValues
	AtImport
	AtCharset
	AtNamespace
	AtKeyframes
	AtUnknown
)

func (a AtRuleID) Has(flags AtRuleID) bool { return a&flags == flags }

// Metadata summarises a node. Own holds what the node contributes itself;
// Meta additionally merges every descendant. Size is never merged.
type Metadata struct {
	Declarations DeclarationKind
	Nodes        NodeKind
	Vendors      VendorPrefix
	Groups       PropertyGroup
	Properties   PropertyKind
	AtRules      AtRuleID
	Size         int
}

// Merge ORs every bitset of other into m, keeping m's size.
func (m Metadata) Merge(other Metadata) Metadata {
	m.Declarations |= other.Declarations
	m.Nodes |= other.Nodes
	m.Vendors |= other.Vendors
	m.Groups |= other.Groups
	m.Properties |= other.Properties
	m.AtRules |= other.AtRules
	return m
}

// HasUnknown reports unknown properties or unknown node kinds.
func (m Metadata) HasUnknown() bool {
	return m.Declarations.Has(UnknownProperty) || m.Nodes.Has(KindUnknown)
}
