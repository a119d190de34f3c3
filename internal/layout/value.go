package layout

import (
	"math"
	"strconv"
	"strings"
)

// NotAssigned marks a numeric bound the container should decide.
const NotAssigned = -1.0

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/padding/border
	UnitPixels              // Absolute pixels
	UnitPercent             // Percentage of the parent's content box
)

// Length represents a dimension that can be fixed, percentage, or auto.
type Length struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Length that should be computed from content.
func Auto() Length {
	return Length{Unit: UnitAuto}
}

// Pixels returns a Length representing an absolute number of pixels.
func Pixels(n float64) Length {
	return Length{Amount: n, Unit: UnitPixels}
}

// Percent returns a Length representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Length {
	return Length{Amount: p, Unit: UnitPercent}
}

// IsAuto returns true if this value should be computed from content.
func (l Length) IsAuto() bool {
	return l.Unit == UnitAuto
}

// IsPercent returns true if this value depends on the parent's size.
func (l Length) IsPercent() bool {
	return l.Unit == UnitPercent
}

// Resolve computes the pixel value given the available space.
// For UnitAuto, returns the fallback value.
func (l Length) Resolve(available, fallback float64) float64 {
	switch l.Unit {
	case UnitPixels:
		return l.Amount
	case UnitPercent:
		return available * l.Amount / 100.0
	default:
		return fallback
	}
}

func (l Length) String() string {
	switch l.Unit {
	case UnitPixels:
		return FormatNumber(l.Amount)
	case UnitPercent:
		return FormatNumber(l.Amount) + "%"
	default:
		return "auto"
	}
}

// ParseLength parses "auto", a pixel number ("12", "12px") or a percentage
// ("50%", "100/3%"). Negative amounts clamp to zero. The second result is
// false when s matches none of these forms.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Auto(), s != ""
	}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, ok := ParseNumber(rest)
		if !ok {
			return Auto(), false
		}
		return Percent(max(0, v)), true
	}
	v, ok := ParseNumber(s)
	if !ok {
		return Auto(), false
	}
	return Pixels(max(0, v)), true
}

// ParseNumber parses a decimal number with an optional "px" suffix. A single
// quotient such as "100/3" is evaluated.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return finite(n / d)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(v)
}

// FormatNumber renders v with the shortest representation that round-trips.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
