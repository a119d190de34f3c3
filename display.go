package boxflow

import "strings"

// Display selects how an item lays out its children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox (default)
	DisplayGrid                 // CSS-style grid
	DisplayBlock                // Children placed at their x/y properties
)

// ParseDisplay parses a display keyword.
func ParseDisplay(s string) (Display, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flex":
		return DisplayFlex, true
	case "grid":
		return DisplayGrid, true
	case "block":
		return DisplayBlock, true
	default:
		return DisplayFlex, false
	}
}

func (d Display) String() string {
	switch d {
	case DisplayGrid:
		return "grid"
	case DisplayBlock:
		return "block"
	default:
		return "flex"
	}
}
