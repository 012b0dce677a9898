package sheet

import (
	"errors"
	"fmt"
	"iter"
)

// Condition gates a rule on collected statistics. A leaf compares one
// statistic with a threshold; All, Any and Not combine other conditions.
// Exactly one form is set.
type Condition struct {
	Stat  string `yaml:"stat"`
	Op    string `yaml:"op"`
	Value int    `yaml:"value"`

	All []*Condition `yaml:"all"`
	Any []*Condition `yaml:"any"`
	Not *Condition   `yaml:"not"`
}

var comparisons = map[string]func(a, b int) bool{
	">":  func(a, b int) bool { return a > b },
	"<":  func(a, b int) bool { return a < b },
	">=": func(a, b int) bool { return a >= b },
	"<=": func(a, b int) bool { return a <= b },
	"==": func(a, b int) bool { return a == b },
}

func (c *Condition) forms() int {
	n := 0
	if c.Stat != "" {
		n++
	}
	if len(c.All) > 0 {
		n++
	}
	if len(c.Any) > 0 {
		n++
	}
	if c.Not != nil {
		n++
	}
	return n
}

func (c *Condition) validate() error {
	if c == nil {
		return errors.New("empty condition")
	}
	if c.forms() != 1 {
		return errors.New("condition needs exactly one of stat, all, any or not")
	}
	if c.Stat != "" {
		if _, ok := comparisons[c.Op]; !ok {
			return fmt.Errorf("unknown comparison %q", c.Op)
		}
		return nil
	}
	for _, sub := range append(c.All, c.Any...) {
		if err := sub.validate(); err != nil {
			return err
		}
	}
	if c.Not != nil {
		return c.Not.validate()
	}
	return nil
}

// Holds evaluates the condition with value returning each statistic's
// current total.
func (c *Condition) Holds(value func(stat string) int) bool {
	switch {
	case c.Stat != "":
		return comparisons[c.Op](value(c.Stat), c.Value)
	case c.Not != nil:
		return !c.Not.Holds(value)
	case len(c.All) > 0:
		for _, sub := range c.All {
			if !sub.Holds(value) {
				return false
			}
		}
		return true
	}
	for _, sub := range c.Any {
		if sub.Holds(value) {
			return true
		}
	}
	return false
}

// stats yields every statistic the condition reads.
func (c *Condition) stats() iter.Seq[string] {
	return func(yield func(string) bool) {
		c.walk(yield)
	}
}

func (c *Condition) walk(yield func(string) bool) bool {
	if c.Stat != "" {
		return yield(c.Stat)
	}
	for _, sub := range append(c.All, c.Any...) {
		if !sub.walk(yield) {
			return false
		}
	}
	if c.Not != nil {
		return c.Not.walk(yield)
	}
	return true
}
