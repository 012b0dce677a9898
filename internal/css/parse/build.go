package parse

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jacoelho/cssq/internal/css/ast"
)

// tree-sitter-css node types.
const (
	cstStylesheet         = "stylesheet"
	cstRuleSet            = "rule_set"
	cstSelectors          = "selectors"
	cstBlock              = "block"
	cstDeclaration        = "declaration"
	cstPropertyName       = "property_name"
	cstImportant          = "important"
	cstMediaStatement     = "media_statement"
	cstSupportsStatement  = "supports_statement"
	cstKeyframesStatement = "keyframes_statement"
	cstKeyframesName      = "keyframes_name"
	cstKeyframeBlockList  = "keyframe_block_list"
	cstKeyframeBlock      = "keyframe_block"
	cstImportStatement    = "import_statement"
	cstCharsetStatement   = "charset_statement"
	cstNamespaceStatement = "namespace_statement"
	cstAtRule             = "at_rule"
	cstAtKeyword          = "at_keyword"
	cstKeywordQuery       = "keyword_query"
	cstCallExpression     = "call_expression"
	cstFunctionName       = "function_name"
	cstComment            = "comment"
	cstError              = "ERROR"
)

var atKeywords = map[string]ast.NodeID{
	"container":           ast.ContainerRule,
	"layer":               ast.LayerRule,
	"scope":               ast.ScopeRule,
	"starting-style":      ast.StartingStyleRule,
	"font-face":           ast.FontFaceRule,
	"page":                ast.PageRule,
	"property":            ast.PropertyRule,
	"counter-style":       ast.CounterStyleRule,
	"font-feature-values": ast.FontFeatureValuesRule,
	"media":               ast.MediaRule,
	"supports":            ast.SupportsRule,
	"import":              ast.ImportRule,
	"charset":             ast.CharsetRule,
	"namespace":           ast.NamespaceRule,
}

// named at-rules take their name from a leading identifier prelude.
var namedAtRules = map[ast.NodeID]bool{
	ast.ContainerRule:         true,
	ast.LayerRule:             true,
	ast.PropertyRule:          true,
	ast.CounterStyleRule:      true,
	ast.FontFeatureValuesRule: true,
}

var keyframesKinds = map[string]ast.NodeID{
	"keyframes":         ast.KeyframesRule,
	"-webkit-keyframes": ast.WebkitKeyframesRule,
	"-moz-keyframes":    ast.MozKeyframesRule,
	"-o-keyframes":      ast.OKeyframesRule,
}

type builder struct {
	src []byte
}

func (b *builder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

func (b *builder) span(n *sitter.Node) ast.Span {
	p := n.StartPoint()
	return ast.Span{
		Start:  int(n.StartByte()),
		End:    int(n.EndByte()),
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
	}
}

func (b *builder) stylesheet(n *sitter.Node) *ast.Node {
	sheet := &ast.Node{ID: ast.StyleSheet, Span: b.span(n)}
	b.items(sheet, n)
	return sheet
}

// items appends the statements found directly under n.
func (b *builder) items(parent *ast.Node, n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		if item := b.item(n.Child(i)); item != nil {
			parent.Append(item)
		}
	}
}

func (b *builder) item(n *sitter.Node) *ast.Node {
	switch n.Type() {
	case cstRuleSet:
		return b.ruleSet(n)
	case cstDeclaration:
		return b.declaration(n)
	case cstMediaStatement:
		return b.blockRule(ast.MediaRule, n)
	case cstSupportsStatement:
		return b.blockRule(ast.SupportsRule, n)
	case cstKeyframesStatement:
		return b.keyframes(n)
	case cstImportStatement:
		return b.statement(ast.ImportRule, n)
	case cstCharsetStatement:
		return b.statement(ast.CharsetRule, n)
	case cstNamespaceStatement:
		return b.statement(ast.NamespaceRule, n)
	case cstAtRule:
		return b.atRule(n)
	}
	return nil
}

func (b *builder) ruleSet(n *sitter.Node) *ast.Node {
	rule := &ast.Node{ID: ast.StyleRule, Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case cstSelectors:
			rule.Append(&ast.Node{
				ID:    ast.SelectorList,
				Span:  b.span(child),
				Value: strings.TrimSpace(b.text(child)),
				Own:   ast.Metadata{Size: selectorCount(child)},
			})
		case cstBlock:
			b.items(rule, child)
		}
	}
	return rule
}

// selectorCount counts the comma separated selectors of a selector list.
func selectorCount(n *sitter.Node) int {
	count := 0
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if n.NamedChild(i).Type() != cstComment {
			count++
		}
	}
	return count
}

func (b *builder) blockRule(id ast.NodeID, n *sitter.Node) *ast.Node {
	rule := &ast.Node{ID: id, Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child.Type() == cstBlock {
			b.items(rule, child)
		}
	}
	return rule
}

// statement maps block-less at-rules; functions in the prelude, such as
// url(), become children.
func (b *builder) statement(id ast.NodeID, n *sitter.Node) *ast.Node {
	rule := &ast.Node{ID: id, Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		b.functions(rule, n.Child(i))
	}
	return rule
}

func (b *builder) keyframes(n *sitter.Node) *ast.Node {
	rule := &ast.Node{ID: ast.KeyframesRule, Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case cstAtKeyword:
			keyword := strings.ToLower(strings.TrimPrefix(b.text(child), "@"))
			if id, ok := keyframesKinds[keyword]; ok {
				rule.ID = id
			}
		case cstKeyframesName:
			rule.Name = b.text(child)
		case cstKeyframeBlockList:
			for j := 0; j < int(child.ChildCount()); j++ {
				if block := child.Child(j); block.Type() == cstKeyframeBlock {
					rule.Append(b.keyframe(block))
				}
			}
		}
	}
	return rule
}

func (b *builder) keyframe(n *sitter.Node) *ast.Node {
	frame := &ast.Node{ID: ast.Keyframe, Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == cstBlock {
			b.items(frame, child)
			continue
		}
		if frame.Name == "" && child.IsNamed() && child.Type() != cstComment {
			frame.Name = b.text(child)
		}
	}
	return frame
}

func (b *builder) atRule(n *sitter.Node) *ast.Node {
	rule := &ast.Node{ID: ast.UnknownAtRule, Span: b.span(n)}
	prelude := true
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case cstAtKeyword:
			keyword := strings.ToLower(strings.TrimPrefix(b.text(child), "@"))
			if id, ok := atKeywords[keyword]; ok {
				rule.ID = id
			} else if id, ok := keyframesKinds[keyword]; ok {
				rule.ID = id
			} else {
				rule.Name = keyword
			}
		case cstKeywordQuery:
			if prelude && namedAtRules[rule.ID] {
				rule.Name = b.text(child)
			}
			prelude = false
		case cstBlock:
			b.items(rule, child)
		default:
			if child.IsNamed() {
				prelude = false
			}
		}
	}
	return rule
}

func (b *builder) declaration(n *sitter.Node) *ast.Node {
	var (
		name      string
		important bool
		start     = -1
		end       = int(n.EndByte())
	)
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch {
		case child.Type() == cstPropertyName:
			name = b.text(child)
		case child.Type() == ":" && start < 0:
			start = int(child.EndByte())
		case child.Type() == cstImportant:
			important = true
			end = min(end, int(child.StartByte()))
		case child.Type() == ";":
			end = min(end, int(child.StartByte()))
		}
	}

	value := ""
	if start >= 0 && start <= end {
		value = strings.TrimSpace(string(b.src[start:end]))
	}

	decl := Declaration(name, value, important)
	decl.Span = b.span(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		b.functions(decl, n.Child(i))
	}
	return decl
}

// functions appends the outermost call expressions found under n to parent.
func (b *builder) functions(parent *ast.Node, n *sitter.Node) {
	if n.Type() == cstCallExpression {
		parent.Append(b.function(n))
		return
	}
	if n.Type() == cstComment || n.Type() == cstError {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		b.functions(parent, n.Child(i))
	}
}

func (b *builder) function(n *sitter.Node) *ast.Node {
	fn := &ast.Node{Span: b.span(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() == cstFunctionName {
			fn.Name = b.text(child)
			continue
		}
		b.functions(fn, child)
	}
	fn.ID, fn.Own.Vendors = classifyFunction(fn.Name)
	return fn
}
