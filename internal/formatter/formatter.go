package formatter

import (
	"fmt"
	"strings"

	"github.com/jacoelho/cssq/internal/results"
)

// Formatter writes a run summary. Implementations own their destination.
type Formatter interface {
	Format(summary *results.Summary) error
}

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q: use text, json or yaml", s)
}
