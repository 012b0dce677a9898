package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jacoelho/cssq/internal/css/ast"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

const statPrefix = "stat:"

// message is a diagnostic template split into literal text and
// placeholders: {{size}}, {{name}}, {{value}}, {{node}}, {{line}} and
// {{stat:NAME}}.
type message struct {
	parts []part
}

type part struct {
	literal string
	field   string
	stat    string
}

func compileMessage(input string) (*message, error) {
	m := &message{}
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(input, -1) {
		if loc[0] > last {
			m.parts = append(m.parts, part{literal: input[last:loc[0]]})
		}
		inner := input[loc[2]:loc[3]]
		switch {
		case strings.HasPrefix(inner, statPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(inner, statPrefix))
			if name == "" {
				return nil, fmt.Errorf("empty stat placeholder in %q", input)
			}
			m.parts = append(m.parts, part{stat: name})
		case inner == "size" || inner == "name" || inner == "value" || inner == "node" || inner == "line":
			m.parts = append(m.parts, part{field: inner})
		default:
			return nil, fmt.Errorf("unsupported placeholder %q", input[loc[0]:loc[1]])
		}
		last = loc[1]
	}
	if last < len(input) {
		m.parts = append(m.parts, part{literal: input[last:]})
	}
	return m, nil
}

// stats lists the statistics the message reads.
func (m *message) stats() []string {
	if m == nil {
		return nil
	}
	var names []string
	for _, p := range m.parts {
		if p.stat != "" {
			names = append(names, p.stat)
		}
	}
	return names
}

// render expands the template for n. snapshot holds the stat totals taken
// when n was matched.
func (m *message) render(n *ast.Node, snapshot map[string]int) string {
	var b strings.Builder
	for _, p := range m.parts {
		switch {
		case p.stat != "":
			b.WriteString(strconv.Itoa(snapshot[p.stat]))
		case p.field != "":
			b.WriteString(field(n, p.field))
		default:
			b.WriteString(p.literal)
		}
	}
	return b.String()
}

func field(n *ast.Node, name string) string {
	switch name {
	case "size":
		return strconv.Itoa(n.Own.Size)
	case "name":
		return n.Name
	case "value":
		return n.Value
	case "node":
		return n.ID.String()
	case "line":
		return strconv.Itoa(n.Span.Line)
	}
	return ""
}
