package parse

import (
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/css/properties"
)

var functionKinds = map[string]ast.NodeID{
	"rgb":                       ast.ColorFunction,
	"rgba":                      ast.ColorFunction,
	"hsl":                       ast.ColorFunction,
	"hsla":                      ast.ColorFunction,
	"hwb":                       ast.ColorFunction,
	"lab":                       ast.ColorFunction,
	"lch":                       ast.ColorFunction,
	"oklab":                     ast.ColorFunction,
	"oklch":                     ast.ColorFunction,
	"color":                     ast.ColorFunction,
	"color-mix":                 ast.ColorFunction,
	"light-dark":                ast.ColorFunction,
	"linear-gradient":           ast.LinearGradientFunction,
	"radial-gradient":           ast.RadialGradientFunction,
	"conic-gradient":            ast.ConicGradientFunction,
	"repeating-linear-gradient": ast.RepeatingLinearGradientFunction,
	"repeating-radial-gradient": ast.RepeatingRadialGradientFunction,
	"repeating-conic-gradient":  ast.RepeatingConicGradientFunction,
	"calc":                      ast.CalcFunction,
	"min":                       ast.MinFunction,
	"max":                       ast.MaxFunction,
	"clamp":                     ast.ClampFunction,
	"var":                       ast.VarFunction,
	"env":                       ast.EnvFunction,
	"attr":                      ast.AttrFunction,
	"url":                       ast.URL,
	"matrix":                    ast.TransformFunction,
	"matrix3d":                  ast.TransformFunction,
	"translate":                 ast.TransformFunction,
	"translate3d":               ast.TransformFunction,
	"translatex":                ast.TransformFunction,
	"translatey":                ast.TransformFunction,
	"translatez":                ast.TransformFunction,
	"scale":                     ast.TransformFunction,
	"scale3d":                   ast.TransformFunction,
	"scalex":                    ast.TransformFunction,
	"scaley":                    ast.TransformFunction,
	"scalez":                    ast.TransformFunction,
	"rotate":                    ast.TransformFunction,
	"rotate3d":                  ast.TransformFunction,
	"rotatex":                   ast.TransformFunction,
	"rotatey":                   ast.TransformFunction,
	"rotatez":                   ast.TransformFunction,
	"skew":                      ast.TransformFunction,
	"skewx":                     ast.TransformFunction,
	"skewy":                     ast.TransformFunction,
	"perspective":               ast.TransformFunction,
}

// classifyFunction maps a function name to its node kind. Vendor-prefixed
// names such as -webkit-linear-gradient classify as their base name and
// report the prefix.
func classifyFunction(name string) (ast.NodeID, ast.VendorPrefix) {
	lower := strings.ToLower(name)
	if id, ok := functionKinds[lower]; ok {
		return id, 0
	}
	prefix, base, ok := properties.SplitVendor(lower)
	if !ok {
		return ast.UnknownFunction, 0
	}
	vendor, known := ast.ParseVendor(prefix)
	id, ok := functionKinds[base]
	if !ok || !known {
		return ast.UnknownFunction, vendor
	}
	return id, vendor
}

// Declaration builds a declaration node classified against the property
// catalog. It is used by the parser and by tests that assemble trees by hand.
func Declaration(name, value string, important bool) *ast.Node {
	info, known := properties.Lookup(name)

	own := ast.Metadata{
		Groups:  info.Groups,
		Vendors: info.Vendor,
	}
	switch {
	case info.Custom:
		own.Declarations |= ast.Custom
	case !known:
		own.Declarations |= ast.UnknownProperty
	case info.Shorthand:
		own.Declarations |= ast.Shorthand
	default:
		own.Declarations |= ast.Longhand
	}
	if important {
		own.Declarations |= ast.Important
	}
	if properties.IsComputedValue(value) {
		own.Declarations |= ast.Computed
	}

	return &ast.Node{
		ID:    ast.NoNode,
		Name:  name,
		Value: value,
		Own:   own,
	}
}
