package selector

import "testing"

func TestAttributeMatch(t *testing.T) {
	tests := []struct {
		op     AttrOp
		value  string
		actual string
		want   bool
	}{
		{op: AttrExists, actual: "", want: true},
		{op: AttrEquals, value: "color", actual: "COLOR", want: true},
		{op: AttrEquals, value: "color", actual: "background-color", want: false},
		{op: AttrIncludes, value: "solid", actual: "1px SOLID red", want: true},
		{op: AttrIncludes, value: "sol", actual: "1px solid red", want: false},
		{op: AttrIncludes, value: "", actual: "1px solid red", want: false},
		{op: AttrDash, value: "border", actual: "border-top", want: true},
		{op: AttrDash, value: "border", actual: "border", want: true},
		{op: AttrDash, value: "border", actual: "borders", want: false},
		{op: AttrDash, value: "", actual: "anything", want: true},
		{op: AttrPrefix, value: "Back", actual: "background-image", want: true},
		{op: AttrPrefix, value: "background-image", actual: "back", want: false},
		{op: AttrPrefix, value: "", actual: "x", want: true},
		{op: AttrSuffix, value: "-COLOR", actual: "background-color", want: true},
		{op: AttrSuffix, value: "color", actual: "colour", want: false},
		{op: AttrContains, value: "GROUND", actual: "background", want: true},
		{op: AttrContains, value: "x", actual: "background", want: false},
	}

	for _, tt := range tests {
		a := Attribute{Name: "name", Op: tt.op, Value: tt.value}
		if got := a.Match(tt.actual); got != tt.want {
			t.Errorf("op %d Match(%q) with %q = %t, want %t", tt.op, tt.actual, tt.value, got, tt.want)
		}
	}
}
