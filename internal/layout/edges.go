package layout

import (
	"strings"
)

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the side-by-side sum of two Edges.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// ParseEdges parses CSS shorthand notation for four-sided values.
//
//	"a"       all sides
//	"a b"     top/bottom a, left/right b
//	"a b c"   top a, left/right b, bottom c
//	"a b c d" top, right, bottom, left
//
// Values may be separated by whitespace or commas. Negative values clamp to
// zero. Anything else, including an empty string, yields zero on every side.
func ParseEdges(s string) Edges {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, ok := ParseNumber(f)
		if !ok {
			return Edges{}
		}
		values = append(values, max(0, v))
	}

	switch len(values) {
	case 1:
		return EdgeAll(values[0])
	case 2:
		return EdgeSymmetric(values[0], values[1])
	case 3:
		return EdgeTRBL(values[0], values[1], values[2], values[1])
	case 4:
		return EdgeTRBL(values[0], values[1], values[2], values[3])
	default:
		return Edges{}
	}
}

// String formats the edges as four-value shorthand.
func (e Edges) String() string {
	return FormatNumber(e.Top) + " " + FormatNumber(e.Right) + " " +
		FormatNumber(e.Bottom) + " " + FormatNumber(e.Left)
}
