package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/results"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/suite"
)

func TestRecorderWriteFile(t *testing.T) {
	s := results.NewSummary("id", results.ModeQuery, 2)
	s.Add(results.NewDocumentResultBuilder("a.css").
		WithMatches(make([]match.Output, 3)).
		WithDuration(2 * time.Millisecond))
	s.Add(results.NewDocumentResultBuilder("b.css").WithError(errors.New("boom")))
	s.SetTotalDuration(1500 * time.Millisecond)

	r := New()
	r.Observe(s, "style-rule")

	path := filepath.Join(t.TempDir(), "cssq.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	for _, want := range []string{
		`cssq_matches_total{query="style-rule"} 3`,
		`cssq_documents_total{status="ok"} 1`,
		`cssq_documents_total{status="failed"} 1`,
		`cssq_parse_errors_total 1`,
		`cssq_runs_total 1`,
		`cssq_last_run_duration_seconds 1.5`,
		`cssq_document_duration_seconds_count 2`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q\n%s", want, text)
		}
	}
}

func TestRecorderSuiteAndSheet(t *testing.T) {
	s := results.NewSummary("id", results.ModeSuite, 1)
	s.Add(results.NewDocumentResultBuilder("a.css").
		WithCases([]suite.Result{{Name: "colors", Matches: 4}}).
		WithReport(&sheet.Report{Diagnostics: []sheet.Diagnostic{{Level: sheet.Warning}, {Level: sheet.Warning}}}))

	r := New()
	r.Observe(s, "")
	r.Observe(s, "")

	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	got := map[string]float64{}
	for _, f := range families {
		for _, m := range f.GetMetric() {
			key := f.GetName()
			for _, l := range m.GetLabel() {
				key += "/" + l.GetValue()
			}
			if c := m.GetCounter(); c != nil {
				got[key] = c.GetValue()
			}
		}
	}

	want := map[string]float64{
		"cssq_matches_total/colors":      8,
		"cssq_diagnostics_total/warning": 4,
		"cssq_runs_total":                2,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}
