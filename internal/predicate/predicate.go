// Package predicate evaluates the assertion operators used by suites against
// match counts and values selected from match records.
package predicate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
)

var (
	ErrInvalidInput = errors.New("invalid predicate input")
	ErrUnsupported  = errors.New("unsupported predicate operation")
)

type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "not_equals"
	OpGreaterThan        Operator = "greater_than"
	OpLessThan           Operator = "less_than"
	OpGreaterThanOrEqual Operator = "greater_than_or_equal"
	OpLessThanOrEqual    Operator = "less_than_or_equal"
	OpIn                 Operator = "in"
	OpExists             Operator = "exists"
	OpContains           Operator = "contains"
	OpStartsWith         Operator = "starts_with"
	OpEndsWith           Operator = "ends_with"
	OpRegex              Operator = "regex"
	OpLength             Operator = "length"
)

// Expr is one operator with its expected value. HasValue separates an
// explicit null from a missing value.
type Expr struct {
	Op       Operator
	Value    any
	HasValue bool
}

func (e Expr) String() string {
	if !e.HasValue {
		return string(e.Op)
	}
	return fmt.Sprintf("%s %v", e.Op, e.Value)
}

type operation func(actual, expected any) (bool, error)

// Evaluator caches compiled regular expressions across evaluations and is
// safe for concurrent use.
type Evaluator struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
	ops      map[Operator]operation
}

func NewEvaluator() *Evaluator {
	e := &Evaluator{patterns: make(map[string]*regexp.Regexp)}
	e.ops = map[Operator]operation{
		OpEquals: func(actual, expected any) (bool, error) {
			return equalValues(actual, expected), nil
		},
		OpNotEquals: func(actual, expected any) (bool, error) {
			return !equalValues(actual, expected), nil
		},
		OpGreaterThan:        numeric(OpGreaterThan, func(a, b float64) bool { return a > b }),
		OpLessThan:           numeric(OpLessThan, func(a, b float64) bool { return a < b }),
		OpGreaterThanOrEqual: numeric(OpGreaterThanOrEqual, func(a, b float64) bool { return a >= b }),
		OpLessThanOrEqual:    numeric(OpLessThanOrEqual, func(a, b float64) bool { return a <= b }),
		OpIn:                 evaluateIn,
		OpExists: func(actual, _ any) (bool, error) {
			return exists(actual), nil
		},
		OpContains:   text(OpContains, strings.Contains),
		OpStartsWith: text(OpStartsWith, strings.HasPrefix),
		OpEndsWith:   text(OpEndsWith, strings.HasSuffix),
		OpRegex:      e.evaluateRegex,
		OpLength:     evaluateLength,
	}
	return e
}

var shared = NewEvaluator()

// Evaluate uses a package-level Evaluator.
func Evaluate(expr Expr, actual any) (bool, error) {
	return shared.Evaluate(expr, actual)
}

// Validate checks the operator exists and that a value is present exactly
// when the operator takes one.
func (e *Evaluator) Validate(expr Expr) error {
	if _, ok := e.ops[expr.Op]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupported, expr.Op)
	}
	if expr.Op == OpExists {
		if expr.HasValue {
			return fmt.Errorf("%w: operation %q does not accept a value", ErrInvalidInput, expr.Op)
		}
		return nil
	}
	if !expr.HasValue {
		return fmt.Errorf("%w: operation %q requires a value", ErrInvalidInput, expr.Op)
	}
	if expr.Op == OpRegex {
		pattern, ok := expr.Value.(string)
		if !ok {
			return fmt.Errorf("%w: %q requires string expected value, got %T", ErrInvalidInput, OpRegex, expr.Value)
		}
		if _, err := e.compile(pattern); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) Evaluate(expr Expr, actual any) (bool, error) {
	if err := e.Validate(expr); err != nil {
		return false, err
	}
	return e.ops[expr.Op](actual, expr.Value)
}

func (e *Evaluator) compile(pattern string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.patterns[pattern]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInvalidInput, pattern, err)
	}
	e.mu.Lock()
	e.patterns[pattern] = re
	e.mu.Unlock()
	return re, nil
}

func (e *Evaluator) evaluateRegex(actual, expected any) (bool, error) {
	s, pattern, err := stringPair(OpRegex, actual, expected)
	if err != nil {
		return false, err
	}
	re, err := e.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func equalValues(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	a, aok := ToFloat64(actual)
	b, bok := ToFloat64(expected)
	return aok && bok && a == b
}

func numeric(op Operator, compare func(a, b float64) bool) operation {
	return func(actual, expected any) (bool, error) {
		a, aok := ToFloat64(actual)
		b, bok := ToFloat64(expected)
		if !aok || !bok {
			return false, fmt.Errorf("%w: %q requires numeric values, got %T and %T", ErrInvalidInput, op, actual, expected)
		}
		return compare(a, b), nil
	}
}

func text(op Operator, compare func(s, sub string) bool) operation {
	return func(actual, expected any) (bool, error) {
		s, sub, err := stringPair(op, actual, expected)
		if err != nil {
			return false, err
		}
		return compare(s, sub), nil
	}
}

func stringPair(op Operator, actual, expected any) (string, string, error) {
	s, ok := actual.(string)
	if !ok {
		return "", "", fmt.Errorf("%w: %q requires string actual value, got %T", ErrInvalidInput, op, actual)
	}
	sub, ok := expected.(string)
	if !ok {
		return "", "", fmt.Errorf("%w: %q requires string expected value, got %T", ErrInvalidInput, op, expected)
	}
	return s, sub, nil
}

func evaluateIn(actual, expected any) (bool, error) {
	v := reflect.ValueOf(expected)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false, fmt.Errorf("%w: %q requires array expected value, got %T", ErrInvalidInput, OpIn, expected)
	}
	for i := range v.Len() {
		if equalValues(actual, v.Index(i).Interface()) {
			return true, nil
		}
	}
	return false, nil
}

func exists(actual any) bool {
	if actual == nil {
		return false
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !v.IsNil()
	}
	return true
}

func evaluateLength(actual, expected any) (bool, error) {
	want, err := ToStrictInt(expected)
	if err != nil {
		return false, fmt.Errorf("%w: %q requires integer expected value: %v", ErrInvalidInput, OpLength, err)
	}
	if actual == nil {
		return false, fmt.Errorf("%w: %q requires string or array actual value, got nil", ErrInvalidInput, OpLength)
	}
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == want, nil
	}
	return false, fmt.Errorf("%w: %q requires string or array actual value, got %T", ErrInvalidInput, OpLength, actual)
}
