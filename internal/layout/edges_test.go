package layout

import "testing"

func TestParseEdges(t *testing.T) {
	type tc struct {
		in   string
		want Edges
	}

	tests := map[string]tc{
		"empty":        {in: "", want: Edges{}},
		"one value":    {in: "4", want: EdgeAll(4)},
		"two values":   {in: "1 2", want: EdgeTRBL(1, 2, 1, 2)},
		"three values": {in: "1 2 3", want: EdgeTRBL(1, 2, 3, 2)},
		"four values":  {in: "1 2 3 4", want: EdgeTRBL(1, 2, 3, 4)},
		"commas":       {in: "1,2, 3 ,4", want: EdgeTRBL(1, 2, 3, 4)},
		"pixels":       {in: "5px 6px", want: EdgeTRBL(5, 6, 5, 6)},
		"negative":     {in: "-3 2", want: EdgeTRBL(0, 2, 0, 2)},
		"five values":  {in: "1 2 3 4 5", want: Edges{}},
		"malformed":    {in: "1 wide", want: Edges{}},
		"fraction":     {in: "100/4", want: EdgeAll(25)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ParseEdges(tt.in); got != tt.want {
				t.Errorf("ParseEdges(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEdges_Sums(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %g, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %g, want 4", got)
	}
	if got := e.Add(EdgeAll(1)); got != EdgeTRBL(2, 3, 4, 5) {
		t.Errorf("Add() = %v", got)
	}
	if e.IsZero() || !(Edges{}).IsZero() {
		t.Error("IsZero() mismatch")
	}
	if got := e.String(); got != "1 2 3 4" {
		t.Errorf("String() = %q", got)
	}
}
