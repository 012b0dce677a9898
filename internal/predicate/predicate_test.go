package predicate

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expr
		actual  any
		want    bool
		wantErr error
	}{
		{name: "equals count", expr: Expr{Op: OpEquals, Value: int64(3), HasValue: true}, actual: 3, want: true},
		{name: "equals float and int", expr: Expr{Op: OpEquals, Value: 2.0, HasValue: true}, actual: int64(2), want: true},
		{name: "not equals", expr: Expr{Op: OpNotEquals, Value: "red", HasValue: true}, actual: "blue", want: true},
		{name: "greater than", expr: Expr{Op: OpGreaterThan, Value: int64(0), HasValue: true}, actual: 1, want: true},
		{name: "less than or equal", expr: Expr{Op: OpLessThanOrEqual, Value: int64(2), HasValue: true}, actual: 3},
		{name: "in", expr: Expr{Op: OpIn, Value: []any{"color", "margin"}, HasValue: true}, actual: "margin", want: true},
		{name: "exists", expr: Expr{Op: OpExists}, actual: "x", want: true},
		{name: "exists empty", expr: Expr{Op: OpExists}, actual: []any{}},
		{name: "contains", expr: Expr{Op: OpContains, Value: "grad", HasValue: true}, actual: "linear-gradient", want: true},
		{name: "starts with", expr: Expr{Op: OpStartsWith, Value: "-webkit-", HasValue: true}, actual: "-webkit-transform", want: true},
		{name: "ends with", expr: Expr{Op: OpEndsWith, Value: "rule", HasValue: true}, actual: "style-rule", want: true},
		{name: "regex", expr: Expr{Op: OpRegex, Value: `^--[a-z]+$`, HasValue: true}, actual: "--brand", want: true},
		{name: "length", expr: Expr{Op: OpLength, Value: int64(2), HasValue: true}, actual: []any{1, 2}, want: true},
		{name: "numeric on string", expr: Expr{Op: OpGreaterThan, Value: int64(1), HasValue: true}, actual: "a", wantErr: ErrInvalidInput},
		{name: "missing value", expr: Expr{Op: OpEquals}, actual: 1, wantErr: ErrInvalidInput},
		{name: "exists with value", expr: Expr{Op: OpExists, Value: true, HasValue: true}, actual: 1, wantErr: ErrInvalidInput},
		{name: "bad regex", expr: Expr{Op: OpRegex, Value: "(", HasValue: true}, actual: "x", wantErr: ErrInvalidInput},
		{name: "unknown", expr: Expr{Op: "near", Value: 1, HasValue: true}, actual: 1, wantErr: ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, tt.actual)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Expr
		wantErr bool
	}{
		{name: "op and value", input: "op: equals\nvalue: 3\n", want: Expr{Op: OpEquals, Value: int64(3), HasValue: true}},
		{name: "null value", input: "op: equals\nvalue: null\n", want: Expr{Op: OpEquals, HasValue: true}},
		{name: "exists", input: "op: exists\n", want: Expr{Op: OpExists}},
		{name: "missing op", input: "value: 3\n", wantErr: true},
		{name: "unknown key", input: "op: equals\nexpected: 3\n", wantErr: true},
		{name: "scalar", input: "equals\n", wantErr: true},
		{name: "unknown op left to Validate", input: "op: near\nvalue: 1\n", want: Expr{Op: "near", Value: int64(1), HasValue: true}},
		{name: "integer above int64", input: "op: equals\nvalue: 18446744073709551615\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Expr
			err := yaml.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want.String() {
				t.Errorf("Unmarshal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToStrictInt(t *testing.T) {
	if _, err := ToStrictInt(2.0); err == nil {
		t.Error("ToStrictInt(2.0) should fail")
	}
	if got, err := ToStrictInt(int64(7)); err != nil || got != 7 {
		t.Errorf("ToStrictInt(7) = %d, %v", got, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expr
		wantErr error
	}{
		{name: "equals", expr: Expr{Op: OpEquals, Value: int64(1), HasValue: true}},
		{name: "exists", expr: Expr{Op: OpExists}},
		{name: "unknown", expr: Expr{Op: "near", Value: int64(1), HasValue: true}, wantErr: ErrUnsupported},
		{name: "missing value", expr: Expr{Op: OpEquals}, wantErr: ErrInvalidInput},
		{name: "exists with value", expr: Expr{Op: OpExists, Value: 1, HasValue: true}, wantErr: ErrInvalidInput},
		{name: "bad regex", expr: Expr{Op: OpRegex, Value: "(", HasValue: true}, wantErr: ErrInvalidInput},
	}

	e := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Validate(tt.expr)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
