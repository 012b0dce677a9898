package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Nth is an An+B formula.
type Nth struct {
	A int
	B int
}

// Matches reports whether index (1-based) equals A*n+B for some n >= 0.
func (f Nth) Matches(index int) bool {
	if f.A == 0 {
		return index == f.B
	}
	diff := index - f.B
	if diff%f.A != 0 {
		return false
	}
	return diff/f.A >= 0
}

func (f Nth) String() string {
	switch {
	case f.A == 0:
		return strconv.Itoa(f.B)
	case f.B == 0:
		return fmt.Sprintf("%dn", f.A)
	case f.B > 0:
		return fmt.Sprintf("%dn+%d", f.A, f.B)
	}
	return fmt.Sprintf("%dn%d", f.A, f.B)
}

// ParseNth parses odd, even, N, An, An+B and their signed variants.
func ParseNth(expr string) (Nth, error) {
	s := strings.ToLower(strings.Join(strings.Fields(expr), ""))
	switch s {
	case "":
		return Nth{}, fmt.Errorf("%w: empty expression", ErrNth)
	case "odd":
		return Nth{A: 2, B: 1}, nil
	case "even":
		return Nth{A: 2, B: 0}, nil
	}

	n := strings.IndexByte(s, 'n')
	if n < 0 {
		b, err := parseSigned(s)
		if err != nil {
			return Nth{}, fmt.Errorf("%w: %q", ErrNth, expr)
		}
		return Nth{B: b}, nil
	}

	var f Nth
	switch coeff := s[:n]; coeff {
	case "", "+":
		f.A = 1
	case "-":
		f.A = -1
	default:
		a, err := parseSigned(coeff)
		if err != nil {
			return Nth{}, fmt.Errorf("%w: %q", ErrNth, expr)
		}
		f.A = a
	}

	rest := s[n+1:]
	if rest == "" {
		return f, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return Nth{}, fmt.Errorf("%w: %q", ErrNth, expr)
	}
	b, err := parseSigned(rest)
	if err != nil {
		return Nth{}, fmt.Errorf("%w: %q", ErrNth, expr)
	}
	f.B = b
	return f, nil
}

// parseSigned accepts an optional sign followed by decimal digits only.
func parseSigned(s string) (int, error) {
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// CompareOp is a :size() comparison operator.
type CompareOp uint8

const (
	OpEq CompareOp = iota
	OpGt
	OpGe
	OpLt
	OpLe
)

// Comparison is a parsed :size() argument.
type Comparison struct {
	Op CompareOp
	N  int
}

func (c Comparison) Matches(size int) bool {
	switch c.Op {
	case OpGt:
		return size > c.N
	case OpGe:
		return size >= c.N
	case OpLt:
		return size < c.N
	case OpLe:
		return size <= c.N
	}
	return size == c.N
}

// ParseComparison parses ">N", ">=N", "<N", "<=N", "=N" or a bare "N".
func ParseComparison(expr string) (Comparison, error) {
	s := strings.TrimSpace(expr)
	var c Comparison
	for _, op := range []struct {
		token string
		op    CompareOp
	}{
		{">=", OpGe},
		{"<=", OpLe},
		{">", OpGt},
		{"<", OpLt},
		{"=", OpEq},
	} {
		if rest, ok := strings.CutPrefix(s, op.token); ok {
			c.Op = op.op
			s = strings.TrimSpace(rest)
			break
		}
	}
	if s == "" || strings.ContainsAny(s, "+-") {
		return Comparison{}, fmt.Errorf("%w: %q", ErrSize, expr)
	}
	n, err := parseSigned(s)
	if err != nil {
		return Comparison{}, fmt.Errorf("%w: %q", ErrSize, expr)
	}
	c.N = n
	return c, nil
}
