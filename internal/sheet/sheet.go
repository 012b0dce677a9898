// Package sheet runs rule sheets: named statistics collected from query
// matches, and diagnostics reported for matches, optionally gated on the
// collected statistics.
//
//	stats:
//	  - name: rules
//	    type: counter
//	rules:
//	  - query: style-rule
//	    collect: [rules]
//	  - when:
//	      stat: rules
//	      op: ">"
//	      value: 100
//	    diagnostic:
//	      level: warning
//	      message: "{{stat:rules}} style rules"
package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/cssq/internal/selector"
)

var (
	ErrSheet = errors.New("sheet error")
	ErrRule  = errors.New("invalid rule")
)

// StatType selects how a statistic accumulates per match.
type StatType uint8

const (
	// Counter adds one.
	Counter StatType = iota
	// Bytes adds the length of the match's source span.
	Bytes
	// Lines adds the number of source lines the match spans.
	Lines
)

var statTypes = map[string]StatType{"counter": Counter, "bytes": Bytes, "lines": Lines}

func (t StatType) String() string {
	for name, v := range statTypes {
		if v == t {
			return name
		}
	}
	return "unknown"
}

func (t StatType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Level is a diagnostic severity.
type Level uint8

const (
	Advice Level = iota
	Warning
	Error
)

var levels = map[string]Level{"advice": Advice, "warning": Warning, "error": Error}

func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return "advice"
}

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

type file struct {
	Stats []statDef `yaml:"stats"`
	Rules []ruleDef `yaml:"rules"`
}

type statDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type ruleDef struct {
	Query      string         `yaml:"query"`
	Collect    []string       `yaml:"collect"`
	Diagnostic *diagnosticDef `yaml:"diagnostic"`
	When       *Condition     `yaml:"when"`
	Rules      []ruleDef      `yaml:"rules"`
}

type diagnosticDef struct {
	Level   string `yaml:"level"`
	Message string `yaml:"message"`
}

type stat struct {
	name string
	typ  StatType
}

// rule is a flattened, compiled rule. Nested rules inherit the conditions
// of every enclosing rule.
type rule struct {
	list    *selector.List
	collect []string
	level   Level
	message *message
	when    []*Condition
}

// Sheet is a compiled rule sheet. It holds no per-document state and can
// be shared between concurrent collections.
type Sheet struct {
	stats []stat
	index map[string]int
	rules []*rule
}

// Load decodes and compiles a rule sheet.
func Load(r io.Reader) (*Sheet, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrSheet, err)
	}

	s := &Sheet{index: make(map[string]int)}
	for _, def := range f.Stats {
		typ, ok := statTypes[strings.ToLower(def.Type)]
		if def.Type == "" {
			typ, ok = Counter, true
		}
		if !ok {
			return nil, fmt.Errorf("%w: stat %s: unknown type %q", ErrSheet, def.Name, def.Type)
		}
		if err := s.declare(def.Name, typ); err != nil {
			return nil, err
		}
	}

	for i, def := range f.Rules {
		if err := s.flatten(def, nil, fmt.Sprintf("rule %d", i)); err != nil {
			return nil, err
		}
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sheet) declare(name string, typ StatType) error {
	if name == "" {
		return fmt.Errorf("%w: stat without a name", ErrSheet)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: stat %s declared twice", ErrSheet, name)
	}
	s.index[name] = len(s.stats)
	s.stats = append(s.stats, stat{name: name, typ: typ})
	return nil
}

func (s *Sheet) flatten(def ruleDef, when []*Condition, where string) error {
	if def.When != nil {
		if err := def.When.validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRule, where, err)
		}
		when = append(when[:len(when):len(when)], def.When)
	}

	r := &rule{collect: def.Collect, when: when}
	if def.Query != "" {
		list, err := selector.Parse(def.Query)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRule, where, err)
		}
		r.list = list
	}
	if d := def.Diagnostic; d != nil {
		level, ok := levels[strings.ToLower(d.Level)]
		if d.Level == "" {
			level, ok = Advice, true
		}
		if !ok {
			return fmt.Errorf("%w: %s: unknown level %q", ErrRule, where, d.Level)
		}
		msg, err := compileMessage(d.Message)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRule, where, err)
		}
		r.level, r.message = level, msg
	}

	switch {
	case r.list == nil && len(when) == 0:
		return fmt.Errorf("%w: %s: needs a query or a when condition", ErrRule, where)
	case r.list != nil || len(r.collect) > 0 || r.message != nil:
		s.rules = append(s.rules, r)
	}

	for i, child := range def.Rules {
		if err := s.flatten(child, when, fmt.Sprintf("%s.%d", where, i)); err != nil {
			return err
		}
	}
	return nil
}

// resolve declares stats that are only collected as counters and rejects
// references to stats nothing defines.
func (s *Sheet) resolve() error {
	for _, r := range s.rules {
		for _, name := range r.collect {
			if _, ok := s.index[name]; !ok {
				if err := s.declare(name, Counter); err != nil {
					return err
				}
			}
		}
	}
	for _, r := range s.rules {
		for _, name := range r.message.stats() {
			if _, ok := s.index[name]; !ok {
				return fmt.Errorf("%w: message references unknown stat %s", ErrRule, name)
			}
		}
		for _, c := range r.when {
			for name := range c.stats() {
				if _, ok := s.index[name]; !ok {
					return fmt.Errorf("%w: condition references unknown stat %s", ErrRule, name)
				}
			}
		}
	}
	return nil
}
