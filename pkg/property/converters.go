package property

import (
	"strings"

	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/document"
)

// Converter translates between document values and T.
type Converter[T comparable] struct {
	// Parse converts a stored value. Returning false selects the binding's
	// default.
	Parse func(document.Var) (T, bool)
	// Format renders a value for storage.
	Format func(T) document.Var
}

var (
	// Float reads any number, including "12px" and "100/3".
	Float = Converter[float64]{Parse: parseFloat, Format: document.Number}

	// Size reads a number and clamps negatives to zero.
	Size = Converter[float64]{
		Parse: func(v document.Var) (float64, bool) {
			f, ok := parseFloat(v)
			return max(0, f), ok
		},
		Format: document.Number,
	}

	// Int reads a number truncated toward zero.
	Int = Converter[int]{
		Parse: func(v document.Var) (int, bool) {
			f, ok := parseFloat(v)
			return int(f), ok
		},
		Format: document.Int,
	}

	Bool = Converter[bool]{
		Parse:  func(v document.Var) (bool, bool) { return v.Bool() },
		Format: document.Bool,
	}

	String = Converter[string]{
		Parse:  func(v document.Var) (string, bool) { return v.String(), true },
		Format: document.String,
	}

	// Length reads "auto", pixels or a percentage.
	Length = Converter[layout.Length]{
		Parse: func(v document.Var) (layout.Length, bool) {
			if v.Kind() == document.KindNumber {
				f, _ := v.Float()
				return layout.Pixels(max(0, f)), true
			}
			return layout.ParseLength(v.String())
		},
		Format: func(l layout.Length) document.Var {
			if l.Unit == layout.UnitPixels {
				return document.Number(l.Amount)
			}
			return document.String(l.String())
		},
	}

	// Edges reads 1-4 value shorthand. Malformed text yields zero edges.
	Edges = Converter[layout.Edges]{
		Parse: func(v document.Var) (layout.Edges, bool) {
			if v.Kind() == document.KindNumber {
				f, _ := v.Float()
				return layout.EdgeAll(max(0, f)), true
			}
			return layout.ParseEdges(v.String()), true
		},
		Format: func(e layout.Edges) document.Var {
			if e.Top == e.Right && e.Top == e.Bottom && e.Top == e.Left {
				return document.Number(e.Top)
			}
			return document.String(e.String())
		},
	}

	// GridPlacement reads "<start> [/ <end>]".
	GridPlacement = Converter[layout.GridPlacement]{
		Parse: func(v document.Var) (layout.GridPlacement, bool) {
			return layout.ParseGridPlacement(v.String()), true
		},
		Format: func(p layout.GridPlacement) document.Var {
			if p.End.IsAuto() && p.Start.Number != 0 {
				return document.Int(p.Start.Number)
			}
			return document.String(p.String())
		},
	}
)

// Enum builds a converter from a parse function and the type's String
// method. Unknown names select the binding's default.
func Enum[T interface {
	comparable
	String() string
}](parse func(string) (T, bool)) Converter[T] {
	return Converter[T]{
		Parse: func(v document.Var) (T, bool) {
			return parse(v.String())
		},
		Format: func(t T) document.Var {
			return document.String(t.String())
		},
	}
}

func parseFloat(v document.Var) (float64, bool) {
	switch v.Kind() {
	case document.KindNumber, document.KindBool:
		return v.Float()
	case document.KindString:
		if strings.EqualFold(strings.TrimSpace(v.String()), "auto") {
			return 0, false
		}
		return layout.ParseNumber(v.String())
	default:
		return 0, false
	}
}
