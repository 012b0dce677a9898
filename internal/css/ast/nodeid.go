package ast

import "strings"

// NodeID identifies the kind of a typed node. Declarations are not typed
// nodes and carry NoNode.
type NodeID uint8

const (
	NoNode NodeID = iota
	StyleSheet
	StyleRule
	SelectorList
	MediaRule
	SupportsRule
	ContainerRule
	LayerRule
	ScopeRule
	StartingStyleRule
	FontFaceRule
	PageRule
	PropertyRule
	CounterStyleRule
	FontFeatureValuesRule
	ImportRule
	CharsetRule
	NamespaceRule
	KeyframesRule
	WebkitKeyframesRule
	MozKeyframesRule
	OKeyframesRule
	Keyframe
	UnknownAtRule
	ColorFunction
	LinearGradientFunction
	RadialGradientFunction
	ConicGradientFunction
	RepeatingLinearGradientFunction
	RepeatingRadialGradientFunction
	RepeatingConicGradientFunction
	CalcFunction
	MinFunction
	MaxFunction
	ClampFunction
	VarFunction
	EnvFunction
	AttrFunction
	TransformFunction
	UnknownFunction
	URL

	numNodeIDs
)

var tagNames = [numNodeIDs]string{
	NoNode:                          "declaration",
	StyleSheet:                      "style-sheet",
	StyleRule:                       "style-rule",
	SelectorList:                    "selector-list",
	MediaRule:                       "media-rule",
	SupportsRule:                    "supports-rule",
	ContainerRule:                   "container-rule",
	LayerRule:                       "layer-rule",
	ScopeRule:                       "scope-rule",
	StartingStyleRule:               "starting-style-rule",
	FontFaceRule:                    "font-face-rule",
	PageRule:                        "page-rule",
	PropertyRule:                    "property-rule",
	CounterStyleRule:                "counter-style-rule",
	FontFeatureValuesRule:           "font-feature-values-rule",
	ImportRule:                      "import-rule",
	CharsetRule:                     "charset-rule",
	NamespaceRule:                   "namespace-rule",
	KeyframesRule:                   "keyframes-rule",
	WebkitKeyframesRule:             "webkit-keyframes-rule",
	MozKeyframesRule:                "moz-keyframes-rule",
	OKeyframesRule:                  "o-keyframes-rule",
	Keyframe:                        "keyframe",
	UnknownAtRule:                   "unknown-at-rule",
	ColorFunction:                   "color-function",
	LinearGradientFunction:          "linear-gradient-function",
	RadialGradientFunction:          "radial-gradient-function",
	ConicGradientFunction:           "conic-gradient-function",
	RepeatingLinearGradientFunction: "repeating-linear-gradient-function",
	RepeatingRadialGradientFunction: "repeating-radial-gradient-function",
	RepeatingConicGradientFunction:  "repeating-conic-gradient-function",
	CalcFunction:                    "calc-function",
	MinFunction:                     "min-function",
	MaxFunction:                     "max-function",
	ClampFunction:                   "clamp-function",
	VarFunction:                     "var-function",
	EnvFunction:                     "env-function",
	AttrFunction:                    "attr-function",
	TransformFunction:               "transform-function",
	UnknownFunction:                 "unknown-function",
	URL:                             "url",
}

var tagLookup = func() map[string]NodeID {
	m := make(map[string]NodeID, numNodeIDs)
	for id := StyleSheet; id < numNodeIDs; id++ {
		m[tagNames[id]] = id
	}
	return m
}()

var atRuleIDs = map[NodeID]AtRuleID{
	MediaRule:             AtMedia,
	SupportsRule:          AtSupports,
	ContainerRule:         AtContainer,
	LayerRule:             AtLayer,
	ScopeRule:             AtScope,
	StartingStyleRule:     AtStartingStyle,
	FontFaceRule:          AtFontFace,
	PageRule:              AtPage,
	PropertyRule:          AtProperty,
	CounterStyleRule:      AtCounterStyle,
	FontFeatureValuesRule: AtFontFeatureValues,
	ImportRule:            AtImport,
	CharsetRule:           AtCharset,
	NamespaceRule:         AtNamespace,
	KeyframesRule:         AtKeyframes,
	WebkitKeyframesRule:   AtKeyframes,
	MozKeyframesRule:      AtKeyframes,
	OKeyframesRule:        AtKeyframes,
	UnknownAtRule:         AtUnknown,
}

// Lookup resolves a tag name, ignoring ASCII case. Declarations have no tag.
func Lookup(tag string) (NodeID, bool) {
	id, ok := tagLookup[strings.ToLower(tag)]
	return id, ok
}

// String returns the tag name.
func (id NodeID) String() string {
	if id >= numNodeIDs {
		return "invalid"
	}
	return tagNames[id]
}

// IsRule reports whether the tag names a rule, style or at-rule.
func (id NodeID) IsRule() bool {
	return id != NoNode && strings.HasSuffix(id.String(), "-rule")
}

func (id NodeID) IsAtRule() bool {
	return id.IsRule() && id != StyleRule
}

func (id NodeID) IsFunction() bool {
	return strings.HasSuffix(id.String(), "-function")
}

func (id NodeID) IsUnknown() bool {
	return strings.Contains(id.String(), "unknown")
}

// Vendor returns the prefix carried by the node kind itself.
func (id NodeID) Vendor() VendorPrefix {
	switch id {
	case WebkitKeyframesRule:
		return Webkit
	case MozKeyframesRule:
		return Moz
	case OKeyframesRule:
		return O
	}
	return 0
}

// AtRule returns the at-rule identifier for at-rule kinds.
func (id NodeID) AtRule() AtRuleID {
	return atRuleIDs[id]
}

// Kinds returns the node-kind bits a node of this identity contributes.
func (id NodeID) Kinds() NodeKind {
	var k NodeKind
	switch {
	case id == StyleRule:
		k |= KindStyleRule
	case id.IsAtRule():
		k |= KindAtRule
	case id.IsFunction():
		k |= KindFunction
	}
	if id != NoNode && id.IsUnknown() {
		k |= KindUnknown
	}
	return k
}
