// Package results aggregates per-document outcomes of a run.
package results

import (
	"time"

	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/suite"
)

// Mode is what a run evaluated against each document.
type Mode uint8

const (
	ModeQuery Mode = iota
	ModeSheet
	ModeSuite
)

type DocumentResult struct {
	Name     string
	Matches  []match.Output
	Report   *sheet.Report
	Cases    []suite.Result
	Duration time.Duration
	Error    error
}

// Failed reports a load or parse error, a failed case or an error
// diagnostic.
func (r DocumentResult) Failed() bool {
	if r.Error != nil {
		return true
	}
	for _, c := range r.Cases {
		if !c.Passed() {
			return true
		}
	}
	return r.Report != nil && r.Report.Count(sheet.Error) > 0
}

type DocumentResultBuilder struct {
	result DocumentResult
}

func NewDocumentResultBuilder(name string) *DocumentResultBuilder {
	return &DocumentResultBuilder{result: DocumentResult{Name: name}}
}

func (b *DocumentResultBuilder) WithMatches(outs []match.Output) *DocumentResultBuilder {
	b.result.Matches = outs
	return b
}

func (b *DocumentResultBuilder) WithReport(rep *sheet.Report) *DocumentResultBuilder {
	b.result.Report = rep
	return b
}

func (b *DocumentResultBuilder) WithCases(cases []suite.Result) *DocumentResultBuilder {
	b.result.Cases = cases
	return b
}

func (b *DocumentResultBuilder) WithDuration(d time.Duration) *DocumentResultBuilder {
	b.result.Duration = d
	return b
}

func (b *DocumentResultBuilder) WithError(err error) *DocumentResultBuilder {
	b.result.Error = err
	return b
}

func (b *DocumentResultBuilder) Build() DocumentResult {
	return b.result
}

type Summary struct {
	RunID     string
	Mode      Mode
	Documents []DocumentResult

	ProcessedDocuments int
	FailedDocuments    int
	ParseErrors        int
	TotalMatches       int
	TotalDuration      time.Duration
}

func NewSummary(runID string, mode Mode, expected int) *Summary {
	return &Summary{
		RunID:     runID,
		Mode:      mode,
		Documents: make([]DocumentResult, 0, expected),
	}
}

func (s *Summary) Add(builder *DocumentResultBuilder) {
	r := builder.Build()
	s.Documents = append(s.Documents, r)
	s.ProcessedDocuments++
	s.TotalMatches += len(r.Matches)
	for _, c := range r.Cases {
		s.TotalMatches += c.Matches
	}
	if r.Error != nil {
		s.ParseErrors++
	}
	if r.Failed() {
		s.FailedDocuments++
	}
}

func (s *Summary) SetTotalDuration(d time.Duration) {
	s.TotalDuration = d
}

// Failed reports whether any document failed.
func (s *Summary) Failed() bool {
	return s.FailedDocuments > 0
}

// DocumentsPerSecond is the processing rate over the whole run.
func (s *Summary) DocumentsPerSecond() float64 {
	if s.TotalDuration == 0 {
		return 0
	}
	return float64(s.ProcessedDocuments) / s.TotalDuration.Seconds()
}
