package sheet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jacoelho/cssq/internal/css/parse"
)

const css = `a { color: red; margin: 0 }
b {
  color: blue;
}
@media screen { c { color: green !important } }
`

func collect(t *testing.T, sheet string) *Report {
	t.Helper()
	s, err := Load(strings.NewReader(sheet))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	root, err := parse.Parse(context.Background(), []byte(css))
	if err != nil {
		t.Fatal(err)
	}
	rep, err := s.Collect(context.Background(), root, []byte(css))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	return rep
}

func stats(rep *Report) map[string]int {
	out := make(map[string]int)
	for _, s := range rep.Stats {
		out[s.Name] = s.Value
	}
	return out
}

func TestCollectStats(t *testing.T) {
	rep := collect(t, `
stats:
  - name: rules
    type: counter
  - name: rule-bytes
    type: bytes
  - name: rule-lines
    type: lines
rules:
  - query: style-rule
    collect: [rules, rule-bytes, rule-lines]
  - query: "[name=color]"
    collect: [colors]
`)

	got := stats(rep)
	want := map[string]int{"rules": 3, "colors": 3, "rule-lines": 5}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("stat %s = %d, want %d", name, got[name], v)
		}
	}
	if got["rule-bytes"] <= 0 {
		t.Errorf("stat rule-bytes = %d, want > 0", got["rule-bytes"])
	}
	if len(rep.Stats) != 4 || rep.Stats[3].Name != "colors" || rep.Stats[3].Type != Counter {
		t.Errorf("Stats = %+v, want declared stats then collected counters", rep.Stats)
	}
}

func TestCollectDiagnostics(t *testing.T) {
	rep := collect(t, `
rules:
  - query: "*:important"
    collect: [important]
    diagnostic:
      level: error
      message: "avoid !important on {{name}} ({{stat:important}} before)"
  - query: style-rule:size(>=2)
    diagnostic:
      level: warning
      message: "{{node}} at line {{line}} has {{size}} declarations"
`)

	want := []Diagnostic{
		{Level: Error, Message: "avoid !important on color (0 before)", Node: "declaration", Line: 5},
		{Level: Warning, Message: "style-rule at line 1 has 2 declarations", Node: "style-rule", Line: 1},
	}
	if len(rep.Diagnostics) != len(want) {
		t.Fatalf("Diagnostics = %+v, want %d", rep.Diagnostics, len(want))
	}
	for i, w := range want {
		got := rep.Diagnostics[i]
		if got.Level != w.Level || got.Message != w.Message || got.Node != w.Node || got.Line != w.Line {
			t.Errorf("Diagnostics[%d] = %+v, want %+v", i, got, w)
		}
	}
	if rep.Count(Error) != 1 || rep.Count(Advice) != 0 {
		t.Errorf("Count() = %d errors, %d advice", rep.Count(Error), rep.Count(Advice))
	}
}

func TestCollectConditionRounds(t *testing.T) {
	rep := collect(t, `
rules:
  - query: style-rule
    collect: [rules]
  - when:
      stat: rules
      op: ">="
      value: 3
    collect: [many]
    diagnostic:
      level: advice
      message: "{{stat:rules}} rules in {{node}}"
  - when:
      all:
        - stat: many
          op: "=="
          value: 1
        - not:
            stat: rules
            op: "<"
            value: 1
    query: "[name=color]"
    collect: [late-colors]
  - when:
      stat: late-colors
      op: ">"
      value: 0
    rules:
      - query: media-rule
        collect: [media]
  - when:
      any:
        - stat: rules
          op: ">"
          value: 10
        - stat: media
          op: ">"
          value: 5
    collect: [never]
`)

	got := stats(rep)
	want := map[string]int{"rules": 3, "many": 1, "late-colors": 3, "media": 1, "never": 0}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("stat %s = %d, want %d", name, got[name], v)
		}
	}
	if len(rep.Diagnostics) != 1 || rep.Diagnostics[0].Message != "3 rules in style-sheet" {
		t.Errorf("Diagnostics = %+v", rep.Diagnostics)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "not yaml", input: "stats: [", want: ErrSheet},
		{name: "bad stat type", input: "stats:\n  - name: x\n    type: unique\n", want: ErrSheet},
		{name: "duplicate stat", input: "stats:\n  - name: x\n  - name: x\n", want: ErrSheet},
		{name: "no query or condition", input: "rules:\n  - collect: [x]\n", want: ErrRule},
		{name: "bad query", input: "rules:\n  - query: '#id'\n", want: ErrRule},
		{name: "bad level", input: "rules:\n  - query: '*'\n    diagnostic:\n      level: fatal\n", want: ErrRule},
		{name: "bad placeholder", input: "rules:\n  - query: '*'\n    diagnostic:\n      message: '{{colour}}'\n", want: ErrRule},
		{name: "unknown message stat", input: "rules:\n  - query: '*'\n    diagnostic:\n      message: '{{stat:x}}'\n", want: ErrRule},
		{name: "unknown condition stat", input: "rules:\n  - when: {stat: x, op: '>', value: 1}\n    collect: [y]\n", want: ErrRule},
		{name: "bad comparison", input: "rules:\n  - when: {stat: x, op: '!=', value: 1}\n    collect: [x]\n", want: ErrRule},
		{name: "two forms", input: "rules:\n  - when: {stat: x, op: '>', value: 1, not: {stat: x, op: '>', value: 2}}\n    collect: [x]\n", want: ErrRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "a", want: 1},
		{text: "a\nb", want: 2},
		{text: "a\n", want: 1},
		{text: "a\n\nb\n", want: 3},
	}
	for _, tt := range tests {
		if got := lines([]byte(tt.text)); got != tt.want {
			t.Errorf("lines(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
