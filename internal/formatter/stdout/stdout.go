package stdout

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/cssq/internal/formatter"
	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/results"
	"github.com/jacoelho/cssq/internal/sheet"
)

const (
	reset  = "\x1b[0m"
	red    = "\x1b[31m"
	green  = "\x1b[32m"
	yellow = "\x1b[33m"
	blue   = "\x1b[34m"
	cyan   = "\x1b[36m"
)

// Formatter writes one line per match, diagnostic or case, then totals.
type Formatter struct {
	writer io.Writer
	color  bool
}

func New(color bool) formatter.Formatter {
	return NewWithWriter(os.Stdout, color)
}

func NewWithWriter(writer io.Writer, color bool) formatter.Formatter {
	return &Formatter{writer: writer, color: color}
}

func (f *Formatter) paint(color, s string) string {
	if !f.color {
		return s
	}
	return color + s + reset
}

func (f *Formatter) Format(s *results.Summary) error {
	for _, doc := range s.Documents {
		if err := f.document(doc); err != nil {
			return err
		}
	}
	return f.totals(s)
}

func (f *Formatter) document(doc results.DocumentResult) error {
	if doc.Error != nil {
		_, err := fmt.Fprintf(f.writer, "%s: %s %v\n", doc.Name, f.paint(red, "error:"), doc.Error)
		return err
	}

	for _, o := range doc.Matches {
		if err := f.match(doc.Name, o); err != nil {
			return err
		}
	}

	if doc.Report != nil {
		for _, d := range doc.Report.Diagnostics {
			_, err := fmt.Fprintf(f.writer, "%s:%d:%d: %s %s\n", doc.Name, d.Line, d.Column, f.level(d.Level), d.Message)
			if err != nil {
				return err
			}
		}
		for _, st := range doc.Report.Stats {
			if _, err := fmt.Fprintf(f.writer, "%s: %s = %d (%s)\n", doc.Name, st.Name, st.Value, st.Type); err != nil {
				return err
			}
		}
	}

	for _, c := range doc.Cases {
		status := f.paint(green, "PASS")
		if !c.Passed() {
			status = f.paint(red, "FAIL")
		}
		if _, err := fmt.Fprintf(f.writer, "%s: %s %s (%d match(es))\n", doc.Name, status, c.Name, c.Matches); err != nil {
			return err
		}
		for _, failure := range c.Failures {
			if _, err := fmt.Fprintf(f.writer, "    %s\n", failure); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Formatter) match(name string, o match.Output) error {
	r := o.Record()
	line := fmt.Sprintf("%s:%d:%d %s", name, r.Line, r.Column, f.paint(cyan, r.Node))
	if r.Name != "" {
		line += " " + r.Name
	}
	_, err := fmt.Fprintln(f.writer, line)
	return err
}

func (f *Formatter) level(l sheet.Level) string {
	switch l {
	case sheet.Error:
		return f.paint(red, "error:")
	case sheet.Warning:
		return f.paint(yellow, "warning:")
	}
	return f.paint(blue, "advice:")
}

func (f *Formatter) totals(s *results.Summary) error {
	if _, err := fmt.Fprintln(f.writer, "--------------------------------------------------------------------------------"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Documents:         %d (%.2f/s)\n", s.ProcessedDocuments, s.DocumentsPerSecond()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Matches:           %d\n", s.TotalMatches); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Failed documents:  %d\n", s.FailedDocuments); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f.writer, "Duration:          %d ms\n", s.TotalDuration.Milliseconds()); err != nil {
		return err
	}
	return nil
}
