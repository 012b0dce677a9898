// Package structured encodes run summaries as JSON or YAML documents.
package structured

import (
	"encoding/json"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/cssq/internal/formatter"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/results"
	"github.com/jacoelho/cssq/internal/sheet"
	"github.com/jacoelho/cssq/internal/suite"
)

type document struct {
	Name        string             `json:"name" yaml:"name"`
	Matches     []match.Record     `json:"matches,omitempty" yaml:"matches,omitempty"`
	Stats       []sheet.Stat       `json:"stats,omitempty" yaml:"stats,omitempty"`
	Diagnostics []sheet.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Cases       []suite.Result     `json:"cases,omitempty" yaml:"cases,omitempty"`
	Error       string             `json:"error,omitempty" yaml:"error,omitempty"`
	DurationMS  int64              `json:"duration_ms" yaml:"duration_ms"`
}

type totals struct {
	Documents  int   `json:"documents" yaml:"documents"`
	Matches    int   `json:"matches" yaml:"matches"`
	Failed     int   `json:"failed" yaml:"failed"`
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`
}

type view struct {
	RunID     string     `json:"run_id" yaml:"run_id"`
	Documents []document `json:"documents" yaml:"documents"`
	Totals    totals     `json:"totals" yaml:"totals"`
}

func newView(s *results.Summary) view {
	v := view{
		RunID:     s.RunID,
		Documents: make([]document, 0, len(s.Documents)),
		Totals: totals{
			Documents:  s.ProcessedDocuments,
			Matches:    s.TotalMatches,
			Failed:     s.FailedDocuments,
			DurationMS: s.TotalDuration.Milliseconds(),
		},
	}
	for _, r := range s.Documents {
		d := document{
			Name:       r.Name,
			Matches:    match.Records(r.Matches),
			Cases:      r.Cases,
			DurationMS: r.Duration.Milliseconds(),
		}
		if len(d.Matches) == 0 {
			d.Matches = nil
		}
		if r.Report != nil {
			d.Stats, d.Diagnostics = r.Report.Stats, r.Report.Diagnostics
		}
		if r.Error != nil {
			d.Error = r.Error.Error()
		}
		v.Documents = append(v.Documents, d)
	}
	return v
}

type jsonFormatter struct {
	writer io.Writer
}

func NewJSON() formatter.Formatter {
	return NewJSONWithWriter(os.Stdout)
}

func NewJSONWithWriter(w io.Writer) formatter.Formatter {
	return &jsonFormatter{writer: w}
}

func (f *jsonFormatter) Format(s *results.Summary) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(newView(s))
}

type yamlFormatter struct {
	writer io.Writer
}

func NewYAML() formatter.Formatter {
	return NewYAMLWithWriter(os.Stdout)
}

func NewYAMLWithWriter(w io.Writer) formatter.Formatter {
	return &yamlFormatter{writer: w}
}

func (f *yamlFormatter) Format(s *results.Summary) error {
	return yaml.NewEncoder(f.writer).Encode(newView(s))
}
