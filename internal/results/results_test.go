package results

import (
	"errors"
	"testing"
	"time"

	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/suite"
)

func TestSummaryAdd(t *testing.T) {
	s := NewSummary("run-1", ModeQuery, 4)

	s.Add(NewDocumentResultBuilder("a.css").WithMatches(make([]match.Output, 3)).WithDuration(time.Millisecond))
	s.Add(NewDocumentResultBuilder("b.css").WithError(errors.New("boom")))
	s.Add(NewDocumentResultBuilder("c.css").WithCases([]suite.Result{
		{Name: "ok", Matches: 2},
		{Name: "bad", Matches: 1, Failures: []string{"count"}},
	}))
	s.Add(NewDocumentResultBuilder("d.css").WithReport(&sheet.Report{
		Diagnostics: []sheet.Diagnostic{{Level: sheet.Warning}},
	}))
	s.SetTotalDuration(2 * time.Second)

	if s.ProcessedDocuments != 4 || s.FailedDocuments != 2 || s.ParseErrors != 1 || s.TotalMatches != 6 {
		t.Errorf("Summary = %+v", s)
	}
	if !s.Failed() {
		t.Error("Failed() = false, want true")
	}
	if got := s.DocumentsPerSecond(); got != 2 {
		t.Errorf("DocumentsPerSecond() = %v, want 2", got)
	}
}

func TestDocumentResultFailed(t *testing.T) {
	tests := []struct {
		name   string
		result DocumentResult
		want   bool
	}{
		{name: "clean", result: DocumentResult{Matches: make([]match.Output, 1)}},
		{name: "error", result: DocumentResult{Error: errors.New("x")}, want: true},
		{name: "error diagnostic", result: DocumentResult{Report: &sheet.Report{Diagnostics: []sheet.Diagnostic{{Level: sheet.Error}}}}, want: true},
		{name: "advice only", result: DocumentResult{Report: &sheet.Report{Diagnostics: []sheet.Diagnostic{{Level: sheet.Advice}}}}},
		{name: "failed case", result: DocumentResult{Cases: []suite.Result{{Failures: []string{"x"}}}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Failed(); got != tt.want {
				t.Errorf("Failed() = %v, want %v", got, tt.want)
			}
		})
	}
}
