// Package suite checks match results against expectations declared in YAML.
//
// A suite file is a list of cases, each naming a query and the checks its
// results must satisfy:
//
//	# checks.yaml
//	- name: no important declarations
//	  query: "*:important"
//	  count:
//	    - op: equals
//	      value: 0
//	- name: brand colour is a custom property
//	  query: "[name^=--brand]"
//	  jsonpath:
//	    - path: $[0].node
//	      op: equals
//	      value: declaration
package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/theory/jsonpath"

	"github.com/jacoelho/cssq/internal/match"
	"github.com/jacoelho/cssq/internal/predicate"
	"github.com/jacoelho/cssq/internal/selector"
)

var (
	ErrSuite = errors.New("suite error")
	ErrCase  = errors.New("invalid case")
)

// Case is one named query with its expectations.
type Case struct {
	Name     string           `yaml:"name"`
	Query    string           `yaml:"query"`
	Count    []predicate.Expr `yaml:"count,omitempty"`
	JSONPath []PathCheck      `yaml:"jsonpath,omitempty"`

	list *selector.List
}

// PathCheck applies a predicate to the first value path selects from the
// JSON form of the matches. With no selection the actual value is nil.
type PathCheck struct {
	Path      string
	Predicate predicate.Expr

	path *jsonpath.Path
}

func (p *PathCheck) UnmarshalYAML(node ast.Node) error {
	return predicate.DecodeWith(node, "path", &p.Path, &p.Predicate)
}

// Suite is a compiled list of cases.
type Suite struct {
	Cases []*Case

	eval *predicate.Evaluator
}

// Load decodes and compiles a suite. Every query, path and predicate is
// checked before any document is read.
func Load(r io.Reader) (*Suite, error) {
	var cases []*Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrSuite, err)
	}

	s := &Suite{Cases: cases, eval: predicate.NewEvaluator()}
	for i, c := range cases {
		if err := s.compile(c); err != nil {
			return nil, fmt.Errorf("%w: case %d (%s): %w", ErrCase, i, c.Name, err)
		}
	}
	return s, nil
}

func (s *Suite) compile(c *Case) error {
	if c.Query == "" {
		return errors.New("query is required")
	}
	if c.Name == "" {
		c.Name = c.Query
	}
	list, err := selector.Parse(c.Query)
	if err != nil {
		return err
	}
	c.list = list

	for _, expr := range c.Count {
		if err := s.eval.Validate(expr); err != nil {
			return fmt.Errorf("count: %w", err)
		}
	}
	for i := range c.JSONPath {
		check := &c.JSONPath[i]
		path, err := jsonpath.Parse(check.Path)
		if err != nil {
			return fmt.Errorf("invalid JSONPath %s: %v", check.Path, err)
		}
		check.path = path
		if err := s.eval.Validate(check.Predicate); err != nil {
			return fmt.Errorf("jsonpath %s: %w", check.Path, err)
		}
	}
	return nil
}

// Lists returns the compiled query of every case, in order.
func (s *Suite) Lists() []*selector.List {
	lists := make([]*selector.List, len(s.Cases))
	for i, c := range s.Cases {
		lists[i] = c.list
	}
	return lists
}

// Result is the outcome of one case against one document.
type Result struct {
	Name     string   `json:"name" yaml:"name"`
	Matches  int      `json:"matches" yaml:"matches"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

// Check evaluates every case given outputs[i] as the matches of case i.
func (s *Suite) Check(outputs [][]match.Output) ([]Result, error) {
	if len(outputs) != len(s.Cases) {
		return nil, fmt.Errorf("%w: %d match lists for %d cases", ErrSuite, len(outputs), len(s.Cases))
	}
	results := make([]Result, len(s.Cases))
	for i, c := range s.Cases {
		r, err := s.check(c, outputs[i])
		if err != nil {
			return nil, fmt.Errorf("%w: case %s: %w", ErrSuite, c.Name, err)
		}
		results[i] = r
	}
	return results, nil
}

func (s *Suite) check(c *Case, outs []match.Output) (Result, error) {
	r := Result{Name: c.Name, Matches: len(outs)}

	for _, expr := range c.Count {
		ok, err := s.eval.Evaluate(expr, len(outs))
		if err != nil {
			return r, err
		}
		if !ok {
			r.Failures = append(r.Failures, fmt.Sprintf("count %d: expected %s", len(outs), expr))
		}
	}

	if len(c.JSONPath) == 0 {
		return r, nil
	}
	doc, err := document(outs)
	if err != nil {
		return r, err
	}
	for _, check := range c.JSONPath {
		var actual any
		if found := check.path.Select(doc); len(found) > 0 {
			actual = found[0]
		}
		ok, err := s.eval.Evaluate(check.Predicate, actual)
		if err != nil {
			r.Failures = append(r.Failures, fmt.Sprintf("%s: %v", check.Path, err))
			continue
		}
		if !ok {
			r.Failures = append(r.Failures, fmt.Sprintf("%s = %v: expected %s", check.Path, actual, check.Predicate))
		}
	}
	return r, nil
}

// document is the generic JSON value of the match records, the shape
// JSONPath selects over.
func document(outs []match.Output) (any, error) {
	raw, err := json.Marshal(match.Records(outs))
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
