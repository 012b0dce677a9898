package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "a.css")
	if err := os.WriteFile(css, []byte("a { color: red !important }"), 0o644); err != nil {
		t.Fatal(err)
	}
	suite := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(suite, []byte("- query: '*:important'\n  count:\n    - op: equals\n      value: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "help", args: []string{"cssq", "--help"}, want: 0},
		{name: "match", args: []string{"cssq", "--format", "json", "-q", "style-rule", css}, want: 0},
		{name: "no matches", args: []string{"cssq", "-q", "media-rule", css}, want: 0},
		{name: "failing suite", args: []string{"cssq", "--suite", suite, css}, want: 1},
		{name: "missing query", args: []string{"cssq", css}, want: 2},
		{name: "invalid query", args: []string{"cssq", "-q", "a >", css}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args[1:], got, tt.want)
			}
		})
	}
}
