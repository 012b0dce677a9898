package stdout

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jacoelho/cssq/internal/css/ast"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/results"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/suite"
)

func summary() *results.Summary {
	decl := &ast.Node{ID: ast.NoNode, Name: "color", Value: "red", Span: ast.Span{Line: 1, Column: 5, Start: 4, End: 14}}
	rule := &ast.Node{ID: ast.StyleRule, Span: ast.Span{Line: 1, Column: 1, Start: 0, End: 16}}

	s := results.NewSummary("run", results.ModeQuery, 4)
	s.Add(results.NewDocumentResultBuilder("a.css").WithMatches([]match.Output{
		{Node: rule.ID, Span: rule.Span, Ref: rule},
		{Node: decl.ID, Span: decl.Span, Ref: decl},
	}))
	s.Add(results.NewDocumentResultBuilder("b.css").WithError(errors.New("parse error: syntax")))
	s.Add(results.NewDocumentResultBuilder("c.css").WithReport(&sheet.Report{
		Stats:       []sheet.Stat{{Name: "rules", Type: sheet.Counter, Value: 2}},
		Diagnostics: []sheet.Diagnostic{{Level: sheet.Warning, Message: "too deep", Line: 3, Column: 2}},
	}))
	s.Add(results.NewDocumentResultBuilder("d.css").WithCases([]suite.Result{
		{Name: "ok", Matches: 1},
		{Name: "bad", Matches: 0, Failures: []string{"count 0: expected greater_than 0"}},
	}))
	s.SetTotalDuration(500 * time.Millisecond)
	return s
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWithWriter(&buf, false).Format(summary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := []string{
		"a.css:1:1 style-rule",
		"a.css:1:5 declaration color",
		"b.css: error: parse error: syntax",
		"c.css:3:2: warning: too deep",
		"c.css: rules = 2 (counter)",
		"d.css: PASS ok (1 match(es))",
		"d.css: FAIL bad (0 match(es))",
		"    count 0: expected greater_than 0",
		"Documents:         4 (8.00/s)",
		"Matches:           3",
		"Failed documents:  2",
		"Duration:          500 ms",
	}
	got := buf.String()
	for _, line := range want {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("output missing %q:\n%s", line, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("output contains colour codes with colour disabled")
	}
}

func TestFormatColor(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWithWriter(&buf, true).Format(summary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), cyan+"style-rule"+reset) {
		t.Errorf("tag not coloured:\n%q", buf.String())
	}
}
