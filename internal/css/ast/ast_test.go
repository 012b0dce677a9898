package ast

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		tag  string
		want NodeID
		ok   bool
	}{
		{tag: "style-rule", want: StyleRule, ok: true},
		{tag: "STYLE-SHEET", want: StyleSheet, ok: true},
		{tag: "webkit-keyframes-rule", want: WebkitKeyframesRule, ok: true},
		{tag: "url", want: URL, ok: true},
		{tag: "declaration", ok: false},
		{tag: "div", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := Lookup(tt.tag)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Lookup(%q) = %v, %t, want %v, %t", tt.tag, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNodeIDPredicates(t *testing.T) {
	tests := []struct {
		id       NodeID
		rule     bool
		atRule   bool
		function bool
		unknown  bool
	}{
		{id: StyleRule, rule: true},
		{id: MediaRule, rule: true, atRule: true},
		{id: UnknownAtRule, rule: true, atRule: true, unknown: true},
		{id: ColorFunction, function: true},
		{id: UnknownFunction, function: true, unknown: true},
		{id: URL},
		{id: Keyframe},
		{id: NoNode},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if got := tt.id.IsRule(); got != tt.rule {
				t.Errorf("IsRule() = %t, want %t", got, tt.rule)
			}
			if got := tt.id.IsAtRule(); got != tt.atRule {
				t.Errorf("IsAtRule() = %t, want %t", got, tt.atRule)
			}
			if got := tt.id.IsFunction(); got != tt.function {
				t.Errorf("IsFunction() = %t, want %t", got, tt.function)
			}
			if got := tt.id.Kinds().Has(KindUnknown); got != tt.unknown {
				t.Errorf("Kinds().Has(KindUnknown) = %t, want %t", got, tt.unknown)
			}
		})
	}
}

func TestParseVendor(t *testing.T) {
	for _, name := range []string{"webkit", "-webkit-", "WEBKIT"} {
		if v, ok := ParseVendor(name); !ok || v != Webkit {
			t.Errorf("ParseVendor(%q) = %v, %t, want webkit, true", name, v, ok)
		}
	}
	if _, ok := ParseVendor("khtml"); ok {
		t.Error("ParseVendor(\"khtml\") should fail")
	}
	if got := (Webkit | O).String(); got != "webkit|o" {
		t.Errorf("String() = %q, want %q", got, "webkit|o")
	}
}

func sampleTree() *Node {
	decl := &Node{Name: "color", Value: "red", Own: Metadata{Declarations: Important | Longhand, Groups: GroupColor}}
	rule := (&Node{ID: StyleRule}).Append(&Node{ID: SelectorList, Own: Metadata{Size: 2}}, decl)
	media := (&Node{ID: MediaRule}).Append((&Node{ID: StyleRule}).Append(&Node{ID: SelectorList, Own: Metadata{Size: 1}}))
	frames := &Node{ID: WebkitKeyframesRule, Name: "spin"}
	root := (&Node{ID: StyleSheet}).Append(rule, media, frames)
	Finalize(root)
	return root
}

func TestFinalize(t *testing.T) {
	root := sampleTree()
	rule := root.Children[0]
	decl := rule.Children[1]
	frames := root.Children[2]

	if decl.Parent != rule || decl.Index != 1 {
		t.Errorf("declaration parent/index = %p/%d, want %p/1", decl.Parent, decl.Index, rule)
	}
	if rule.Own.Size != 1 {
		t.Errorf("style-rule size = %d, want 1", rule.Own.Size)
	}
	if rule.Children[0].Own.Size != 2 {
		t.Errorf("selector-list size = %d, want 2 (builder value kept)", rule.Children[0].Own.Size)
	}
	if !rule.Meta.Declarations.Has(Important) || rule.Own.Declarations.Has(Important) {
		t.Error("important should be aggregated into Meta but not Own of the rule")
	}
	if !decl.Own.Properties.Has(PropertyName | PropertyValue) {
		t.Errorf("declaration properties = %b, want name|value", decl.Own.Properties)
	}
	if !frames.Own.Vendors.Has(Webkit) || !frames.Own.Nodes.Has(KindAtRule|KindEmptyBlock) {
		t.Errorf("keyframes own = %+v, want webkit, at-rule, empty", frames.Own)
	}

	summary := root.Meta
	if !summary.AtRules.Has(AtMedia|AtKeyframes) || !summary.Groups.Has(GroupColor) || !summary.Nodes.Has(KindStyleRule) {
		t.Errorf("document summary = %+v, missing merged bits", summary)
	}
	if summary.Size != 3 {
		t.Errorf("style-sheet size = %d, want 3", summary.Size)
	}
	if summary.HasUnknown() {
		t.Error("HasUnknown() = true, want false")
	}
}

type recorder struct{ events []string }

func (r *recorder) Enter(n *Node)            { r.events = append(r.events, "+"+n.ID.String()) }
func (r *recorder) Exit(n *Node)             { r.events = append(r.events, "-"+n.ID.String()) }
func (r *recorder) EnterDeclaration(n *Node) { r.events = append(r.events, "+"+n.Name) }
func (r *recorder) ExitDeclaration(n *Node)  { r.events = append(r.events, "-"+n.Name) }

func TestWalk(t *testing.T) {
	r := &recorder{}
	Walk(sampleTree(), r)

	want := "+style-sheet +style-rule +selector-list -selector-list +color -color -style-rule " +
		"+media-rule +style-rule +selector-list -selector-list -style-rule -media-rule " +
		"+webkit-keyframes-rule -webkit-keyframes-rule -style-sheet"
	if got := strings.Join(r.events, " "); got != want {
		t.Errorf("Walk() events =\n%s\nwant\n%s", got, want)
	}

	Walk(nil, r)
}

func TestPreorderStops(t *testing.T) {
	count := 0
	for range sampleTree().Preorder() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("Preorder() yielded %d before break, want 3", count)
	}
}

func TestSpanText(t *testing.T) {
	src := []byte("a { color: red; }")
	if got := (Span{Start: 4, End: 14}).Text(src); got != "color: red" {
		t.Errorf("Text() = %q, want %q", got, "color: red")
	}
	if got := (Span{Start: 4, End: 99}).Text(src); got != "" {
		t.Errorf("Text() out of range = %q, want empty", got)
	}
}
