package layout

import (
	"strconv"
	"strings"
)

// TrackUnit specifies how a grid Track is sized.
type TrackUnit uint8

const (
	TrackAuto     TrackUnit = iota // Sized from item contributions
	TrackPixels                    // Absolute pixels
	TrackPercent                   // Percentage of the container's content box
	TrackFraction                  // Share of leftover space (fr)
)

// Track is a single row or column definition.
type Track struct {
	Size float64
	Unit TrackUnit
}

// AutoTrack returns a content-sized track.
func AutoTrack() Track { return Track{Unit: TrackAuto} }

// PixelTrack returns a fixed track.
func PixelTrack(px float64) Track { return Track{Size: px, Unit: TrackPixels} }

// FractionTrack returns a flexible track.
func FractionTrack(fr float64) Track { return Track{Size: fr, Unit: TrackFraction} }

// TrackList is an explicit track template. LineNames has one entry per grid
// line, so len(LineNames) == len(Tracks)+1 whenever Tracks is non-empty.
type TrackList struct {
	Tracks    []Track
	LineNames [][]string
}

// lineIndex returns the first grid line carrying name.
func (l TrackList) lineIndex(name string) (int, bool) {
	for i, names := range l.LineNames {
		for _, n := range names {
			if n == name {
				return i, true
			}
		}
	}
	return 0, false
}

// ParseTracks parses a track template such as "[a] 100 1fr [b] auto" or
// "repeat(3, 1fr)". Unrecognized tokens are skipped.
func ParseTracks(s string) TrackList {
	var list TrackList
	pending := []string{}

	emit := func(t Track) {
		list.LineNames = append(list.LineNames, pending)
		list.Tracks = append(list.Tracks, t)
		pending = []string{}
	}

	var walk func(tokens []string)
	walk = func(tokens []string) {
		for i := 0; i < len(tokens); i++ {
			tok := tokens[i]
			switch {
			case strings.HasPrefix(tok, "["):
				pending = append(pending, strings.Fields(strings.Trim(tok, "[]"))...)
			case strings.HasPrefix(tok, "repeat("):
				inner := strings.TrimSuffix(strings.TrimPrefix(tok, "repeat("), ")")
				countText, body, ok := strings.Cut(inner, ",")
				if !ok {
					continue
				}
				count, err := strconv.Atoi(strings.TrimSpace(countText))
				if err != nil || count < 1 {
					continue
				}
				repeated := tokenizeTracks(body)
				for range count {
					walk(repeated)
				}
			default:
				if t, ok := parseTrack(tok); ok {
					emit(t)
				}
			}
		}
	}
	walk(tokenizeTracks(s))

	if len(list.Tracks) > 0 || len(pending) > 0 {
		list.LineNames = append(list.LineNames, pending)
	}
	return list
}

// tokenizeTracks splits a template on whitespace while keeping bracketed
// name lists and repeat(...) groups intact.
func tokenizeTracks(s string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '[' || r == '(':
			depth++
			current.WriteRune(r)
		case r == ']' || r == ')':
			depth--
			current.WriteRune(r)
			if depth == 0 && r == ']' {
				flush()
			}
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func parseTrack(tok string) (Track, bool) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	switch {
	case tok == "auto":
		return AutoTrack(), true
	case strings.HasSuffix(tok, "fr"):
		v, ok := ParseNumber(strings.TrimSuffix(tok, "fr"))
		if !ok {
			return Track{}, false
		}
		return FractionTrack(max(0, v)), true
	case strings.HasSuffix(tok, "%"):
		v, ok := ParseNumber(strings.TrimSuffix(tok, "%"))
		if !ok {
			return Track{}, false
		}
		return Track{Size: max(0, v), Unit: TrackPercent}, true
	default:
		v, ok := ParseNumber(tok)
		if !ok {
			return Track{}, false
		}
		return PixelTrack(max(0, v)), true
	}
}

// Area is a named rectangle of grid cells. Start lines are inclusive and
// end lines exclusive, both zero-based.
type Area struct {
	RowStart, RowEnd       int
	ColumnStart, ColumnEnd int
}

// Areas maps area names to their cells.
type Areas struct {
	Rows    int
	Columns int
	Named   map[string]Area
}

// ParseAreas parses a template-areas value. Rows are given either as quoted
// strings ("a a b" "c c b") or separated by commas or slashes. A "." marks
// an unnamed cell. Areas that are not rectangular are dropped.
func ParseAreas(s string) Areas {
	var rows []string
	if strings.ContainsAny(s, `"'`) {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '"' || r == '\'' }) {
			if strings.TrimSpace(part) != "" {
				rows = append(rows, part)
			}
		}
	} else {
		rows = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' })
	}

	areas := Areas{Named: make(map[string]Area)}
	counts := make(map[string]int)
	for r, row := range rows {
		cells := strings.Fields(row)
		if len(cells) == 0 {
			continue
		}
		areas.Rows = r + 1
		areas.Columns = max(areas.Columns, len(cells))
		for c, name := range cells {
			if name == "." {
				continue
			}
			counts[name]++
			a, ok := areas.Named[name]
			if !ok {
				areas.Named[name] = Area{RowStart: r, RowEnd: r + 1, ColumnStart: c, ColumnEnd: c + 1}
				continue
			}
			a.RowStart, a.RowEnd = min(a.RowStart, r), max(a.RowEnd, r+1)
			a.ColumnStart, a.ColumnEnd = min(a.ColumnStart, c), max(a.ColumnEnd, c+1)
			areas.Named[name] = a
		}
	}

	for name, a := range areas.Named {
		if (a.RowEnd-a.RowStart)*(a.ColumnEnd-a.ColumnStart) != counts[name] {
			delete(areas.Named, name)
		}
	}
	return areas
}

// GridLine refers to a grid line by number, by name, or as a span.
// The zero value is "auto".
type GridLine struct {
	Number int
	Name   string
	Span   int
}

// IsAuto reports whether the line leaves placement to the container.
func (l GridLine) IsAuto() bool {
	return l.Number == 0 && l.Name == "" && l.Span == 0
}

func (l GridLine) String() string {
	switch {
	case l.Span > 0:
		return "span " + strconv.Itoa(l.Span)
	case l.Name != "":
		return l.Name
	case l.Number != 0:
		return strconv.Itoa(l.Number)
	default:
		return "auto"
	}
}

// GridPlacement is a start/end pair for one axis.
type GridPlacement struct {
	Start GridLine
	End   GridLine
}

// IsAuto reports whether neither line is set.
func (p GridPlacement) IsAuto() bool {
	return p.Start.IsAuto() && p.End.IsAuto()
}

func (p GridPlacement) String() string {
	if p.End.IsAuto() {
		return p.Start.String()
	}
	return p.Start.String() + " / " + p.End.String()
}

// ParseGridPlacement parses "<start> [/ <end>]" where each side is a line
// number, a line name, "span N" or "auto". Malformed sides become auto.
func ParseGridPlacement(s string) GridPlacement {
	startText, endText, _ := strings.Cut(s, "/")
	return GridPlacement{Start: parseGridLine(startText), End: parseGridLine(endText)}
}

func parseGridLine(s string) GridLine {
	fields := strings.Fields(s)
	switch {
	case len(fields) == 0:
		return GridLine{}
	case len(fields) == 2 && strings.EqualFold(fields[0], "span"):
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return GridLine{}
		}
		return GridLine{Span: n}
	case len(fields) == 1:
		if strings.EqualFold(fields[0], "auto") {
			return GridLine{}
		}
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return GridLine{Number: n}
		}
		return GridLine{Name: fields[0]}
	default:
		return GridLine{}
	}
}
