package selector

import (
	"errors"
	"testing"
)

func TestParseNth(t *testing.T) {
	tests := []struct {
		expr string
		want Nth
	}{
		{expr: "odd", want: Nth{A: 2, B: 1}},
		{expr: "EVEN", want: Nth{A: 2}},
		{expr: "3", want: Nth{B: 3}},
		{expr: "+3", want: Nth{B: 3}},
		{expr: "n", want: Nth{A: 1}},
		{expr: "-n+3", want: Nth{A: -1, B: 3}},
		{expr: "2n+1", want: Nth{A: 2, B: 1}},
		{expr: " 2n + 1 ", want: Nth{A: 2, B: 1}},
		{expr: "3n-2", want: Nth{A: 3, B: -2}},
		{expr: "+n-1", want: Nth{A: 1, B: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseNth(tt.expr)
			if err != nil {
				t.Fatalf("ParseNth(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseNth(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "x", "2n+", "n2", "2n+-1", "1.5n", "nn", "--n"} {
		if _, err := ParseNth(bad); !errors.Is(err, ErrNth) {
			t.Errorf("ParseNth(%q) error = %v, want ErrNth", bad, err)
		}
	}
}

func TestNthMatches(t *testing.T) {
	tests := []struct {
		nth  Nth
		want []int
	}{
		{nth: Nth{A: 2, B: 1}, want: []int{1, 3, 5}},
		{nth: Nth{A: 2}, want: []int{2, 4, 6}},
		{nth: Nth{B: 4}, want: []int{4}},
		{nth: Nth{A: -1, B: 3}, want: []int{1, 2, 3}},
		{nth: Nth{A: 3, B: -2}, want: []int{1, 4}},
		{nth: Nth{A: 1, B: 5}, want: []int{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.nth.String(), func(t *testing.T) {
			var got []int
			for i := 1; i <= 6; i++ {
				if tt.nth.Matches(i) {
					got = append(got, i)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("matches = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("matches = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestParseComparison(t *testing.T) {
	tests := []struct {
		expr string
		want Comparison
		in   int
		out  int
	}{
		{expr: "3", want: Comparison{Op: OpEq, N: 3}, in: 3, out: 4},
		{expr: "=0", want: Comparison{Op: OpEq}, in: 0, out: 1},
		{expr: "> 2", want: Comparison{Op: OpGt, N: 2}, in: 3, out: 2},
		{expr: ">=2", want: Comparison{Op: OpGe, N: 2}, in: 2, out: 1},
		{expr: "<5", want: Comparison{Op: OpLt, N: 5}, in: 4, out: 5},
		{expr: "<= 5", want: Comparison{Op: OpLe, N: 5}, in: 5, out: 6},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseComparison(tt.expr)
			if err != nil {
				t.Fatalf("ParseComparison(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParseComparison(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
			if !got.Matches(tt.in) || got.Matches(tt.out) {
				t.Errorf("Matches(%d) / Matches(%d) = %t / %t, want true / false", tt.in, tt.out, got.Matches(tt.in), got.Matches(tt.out))
			}
		})
	}

	for _, bad := range []string{"", ">", "big", "=>3", "<-1", "1.5"} {
		if _, err := ParseComparison(bad); !errors.Is(err, ErrSize) {
			t.Errorf("ParseComparison(%q) error = %v, want ErrSize", bad, err)
		}
	}
}
