package layout

import (
	"slices"
)

// GridItem is the per-child input to the grid algorithm.
// Sizes are content-box pixels; NotAssigned leaves the choice to the container.
type GridItem struct {
	Order int

	Column GridPlacement
	Row    GridPlacement
	Area   string

	JustifySelf Align
	AlignSelf   Align

	Width, Height       float64
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64

	Margin Edges
}

// NewGridItem returns a GridItem with every bound left to the container.
func NewGridItem() GridItem {
	return GridItem{
		Width:     NotAssigned,
		Height:    NotAssigned,
		MaxWidth:  NotAssigned,
		MaxHeight: NotAssigned,
	}
}

// GridBox is a grid container configuration plus its items.
type GridBox struct {
	TemplateColumns TrackList
	TemplateRows    TrackList
	TemplateAreas   Areas

	AutoFlow    AutoFlow
	AutoColumns Track
	AutoRows    Track

	ColumnGap float64
	RowGap    float64

	JustifyItems   Align
	AlignItems     Align
	JustifyContent Justify
	AlignContent   Justify

	Items []GridItem
}

// NewGridBox returns a GridBox with CSS initial values.
func NewGridBox() GridBox {
	return GridBox{
		JustifyItems:   AlignStretch,
		AlignItems:     AlignStretch,
		JustifyContent: JustifyStretch,
		AlignContent:   JustifyStretch,
	}
}

// cellSpan is a resolved [start, end) range of tracks on one axis.
type cellSpan struct {
	start, end int
	definite   bool
}

func (s cellSpan) size() int { return s.end - s.start }

type gridState struct {
	index int
	item  *GridItem
	col   cellSpan
	row   cellSpan
}

// PerformLayout places the items into cells and returns one rectangle per
// item, in the same order as Items. Rectangles exclude margins and are
// positioned in the coordinate space of bounds.
func (g GridBox) PerformLayout(bounds Rect) []Rect {
	if len(g.Items) == 0 {
		return nil
	}

	states, columns, rows := g.place()

	colSizes := g.sizeTracks(columns, states, true, bounds.Width)
	rowSizes := g.sizeTracks(rows, states, false, bounds.Height)
	colPos := distributeTracks(colSizes, g.ColumnGap, bounds.Width, g.JustifyContent)
	rowPos := distributeTracks(rowSizes, g.RowGap, bounds.Height, g.AlignContent)

	rects := make([]Rect, len(g.Items))
	for _, s := range states {
		areaX := colPos[s.col.start]
		areaW := colPos[s.col.end-1] + colSizes[s.col.end-1] - areaX
		areaY := rowPos[s.row.start]
		areaH := rowPos[s.row.end-1] + rowSizes[s.row.end-1] - areaY

		justify := resolveSelf(s.item.JustifySelf, g.JustifyItems)
		align := resolveSelf(s.item.AlignSelf, g.AlignItems)

		x, w := alignInArea(justify, areaW, s.item.Width, s.item.MinWidth, s.item.MaxWidth,
			s.item.Margin.Left, s.item.Margin.Right)
		y, h := alignInArea(align, areaH, s.item.Height, s.item.MinHeight, s.item.MaxHeight,
			s.item.Margin.Top, s.item.Margin.Bottom)

		rects[s.index] = NewRect(bounds.X+areaX+x, bounds.Y+areaY+y, w, h)
	}
	return rects
}

// MinimumContentSize returns the size of the grid when every flexible and
// auto track shrinks to its content contribution.
func (g GridBox) MinimumContentSize() (width, height float64) {
	if len(g.Items) == 0 && len(g.TemplateColumns.Tracks) == 0 && len(g.TemplateRows.Tracks) == 0 {
		return 0, 0
	}
	states, columns, rows := g.place()
	measure := g
	measure.JustifyContent = JustifyStart
	measure.AlignContent = JustifyStart
	for _, size := range measure.sizeTracks(columns, states, true, 0) {
		width += size
	}
	for _, size := range measure.sizeTracks(rows, states, false, 0) {
		height += size
	}
	if len(columns) > 1 {
		width += g.ColumnGap * float64(len(columns)-1)
	}
	if len(rows) > 1 {
		height += g.RowGap * float64(len(rows)-1)
	}
	return width, height
}

func resolveSelf(self, container Align) Align {
	if self == AlignAuto {
		self = container
	}
	if self == AlignAuto {
		return AlignStretch
	}
	return self
}

// alignInArea returns the offset and size of an item inside a grid area
// along one axis.
func alignInArea(align Align, area, size, minSize, maxSize, marginStart, marginEnd float64) (float64, float64) {
	maxSize = unbounded(maxSize)
	switch {
	case size != NotAssigned:
		size = clampSize(size, minSize, maxSize)
	case align == AlignStretch:
		size = clampSize(area-marginStart-marginEnd, minSize, maxSize)
	default:
		size = clampSize(minSize, minSize, maxSize)
	}

	space := area - size - marginStart - marginEnd
	switch align {
	case AlignEnd:
		return marginStart + space, size
	case AlignCenter:
		return marginStart + space/2, size
	default:
		return marginStart, size
	}
}

// place resolves every item to a cell range and returns the full (explicit
// plus implicit) track lists for both axes.
func (g GridBox) place() ([]*gridState, []Track, []Track) {
	states := make([]*gridState, len(g.Items))
	for i := range g.Items {
		states[i] = &gridState{index: i, item: &g.Items[i]}
	}
	slices.SortStableFunc(states, func(a, b *gridState) int {
		return a.item.Order - b.item.Order
	})

	explicitCols := max(len(g.TemplateColumns.Tracks), g.TemplateAreas.Columns)
	explicitRows := max(len(g.TemplateRows.Tracks), g.TemplateAreas.Rows)

	for _, s := range states {
		if area, ok := g.TemplateAreas.Named[s.item.Area]; s.item.Area != "" && ok {
			s.col = cellSpan{start: area.ColumnStart, end: area.ColumnEnd, definite: true}
			s.row = cellSpan{start: area.RowStart, end: area.RowEnd, definite: true}
			continue
		}
		s.col = g.resolveAxis(s.item.Column, g.TemplateColumns, explicitCols, true)
		s.row = g.resolveAxis(s.item.Row, g.TemplateRows, explicitRows, false)
	}

	// Auto-placement works in flow coordinates: "major" is the axis the
	// cursor advances along when a line is full.
	major := func(s *gridState) *cellSpan { return &s.row }
	minor := func(s *gridState) *cellSpan { return &s.col }
	minorCount := explicitCols
	if g.AutoFlow.IsColumn() {
		major, minor = minor, major
		minorCount = explicitRows
	}

	grid := newOccupancy()
	for _, s := range states {
		minorCount = max(minorCount, minor(s).end, minor(s).size())
		if s.col.definite && s.row.definite {
			grid.mark(*major(s), *minor(s))
		}
	}
	minorCount = max(minorCount, 1)

	// Items locked to a major line.
	lineCursor := make(map[int]int)
	for _, s := range states {
		mj, mn := major(s), minor(s)
		if !mj.definite || mn.definite {
			continue
		}
		size := mn.size()
		start := 0
		if !g.AutoFlow.IsDense() {
			start = lineCursor[mj.start]
		}
		for !grid.free(*mj, cellSpan{start: start, end: start + size}) {
			start++
		}
		*mn = cellSpan{start: start, end: start + size, definite: true}
		lineCursor[mj.start] = mn.end
		minorCount = max(minorCount, mn.end)
		grid.mark(*mj, *mn)
	}

	// Everything else follows the cursor.
	cursorMajor, cursorMinor := 0, 0
	for _, s := range states {
		mj, mn := major(s), minor(s)
		if mj.definite {
			continue
		}
		if g.AutoFlow.IsDense() {
			cursorMajor, cursorMinor = 0, 0
		}
		majorSize := mj.size()

		if mn.definite {
			if mn.start < cursorMinor {
				cursorMajor++
			}
			for !grid.free(cellSpan{start: cursorMajor, end: cursorMajor + majorSize}, *mn) {
				cursorMajor++
			}
		} else {
			size := mn.size()
			for {
				if cursorMinor+size > minorCount {
					cursorMajor++
					cursorMinor = 0
					continue
				}
				if grid.free(cellSpan{start: cursorMajor, end: cursorMajor + majorSize},
					cellSpan{start: cursorMinor, end: cursorMinor + size}) {
					break
				}
				cursorMinor++
			}
			*mn = cellSpan{start: cursorMinor, end: cursorMinor + size, definite: true}
		}
		*mj = cellSpan{start: cursorMajor, end: cursorMajor + majorSize, definite: true}
		cursorMinor = mn.end
		grid.mark(*mj, *mn)
	}

	colCount, rowCount := explicitCols, explicitRows
	for _, s := range states {
		colCount = max(colCount, s.col.end)
		rowCount = max(rowCount, s.row.end)
	}
	return states,
		expandTracks(g.TemplateColumns.Tracks, colCount, g.AutoColumns),
		expandTracks(g.TemplateRows.Tracks, rowCount, g.AutoRows)
}

// resolveAxis turns a placement into a cell range. Definite ranges have
// both ends fixed; otherwise only the span size is meaningful.
func (g GridBox) resolveAxis(p GridPlacement, tracks TrackList, explicit int, isColumn bool) cellSpan {
	start, startOK := g.resolveLine(p.Start, tracks, explicit, isColumn, true)
	end, endOK := g.resolveLine(p.End, tracks, explicit, isColumn, false)

	switch {
	case startOK && endOK:
		if end < start {
			start, end = end, start
		}
		if end == start {
			end = start + 1
		}
	case startOK:
		end = start + max(1, p.End.Span)
	case endOK:
		start = max(0, end-max(1, p.Start.Span))
		if end <= start {
			end = start + 1
		}
	default:
		return cellSpan{start: 0, end: max(1, p.Start.Span, p.End.Span)}
	}
	return cellSpan{start: start, end: end, definite: true}
}

// resolveLine maps a GridLine onto a zero-based line index.
func (g GridBox) resolveLine(l GridLine, tracks TrackList, explicit int, isColumn, isStart bool) (int, bool) {
	switch {
	case l.Span > 0:
		return 0, false
	case l.Number > 0:
		return l.Number - 1, true
	case l.Number < 0:
		return max(0, explicit+1+l.Number), true
	case l.Name != "":
		if i, ok := tracks.lineIndex(l.Name); ok {
			return i, true
		}
		return g.areaLine(l.Name, isColumn, isStart)
	default:
		return 0, false
	}
}

// areaLine resolves the implicit "<area>-start" and "<area>-end" line names
// created by template-areas. A bare area name refers to the side being placed.
func (g GridBox) areaLine(name string, isColumn, isStart bool) (int, bool) {
	areaName := name
	switch {
	case len(name) > 6 && name[len(name)-6:] == "-start":
		areaName, isStart = name[:len(name)-6], true
	case len(name) > 4 && name[len(name)-4:] == "-end":
		areaName, isStart = name[:len(name)-4], false
	}
	area, ok := g.TemplateAreas.Named[areaName]
	if !ok {
		return 0, false
	}
	switch {
	case isColumn && isStart:
		return area.ColumnStart, true
	case isColumn:
		return area.ColumnEnd, true
	case isStart:
		return area.RowStart, true
	default:
		return area.RowEnd, true
	}
}

func expandTracks(explicit []Track, count int, auto Track) []Track {
	tracks := make([]Track, 0, max(count, len(explicit)))
	tracks = append(tracks, explicit...)
	for len(tracks) < count {
		tracks = append(tracks, auto)
	}
	return tracks
}

// sizeTracks resolves track sizes on one axis. available <= 0 measures the
// minimum: flexible tracks collapse to their content contribution.
func (g GridBox) sizeTracks(tracks []Track, states []*gridState, isColumn bool, available float64) []float64 {
	sizes := make([]float64, len(tracks))
	contribution := make([]float64, len(tracks))
	gap := g.RowGap
	if isColumn {
		gap = g.ColumnGap
	}

	for _, s := range states {
		span, size := s.row, outerContribution(s.item.Height, s.item.MinHeight, s.item.Margin.Vertical())
		if isColumn {
			span, size = s.col, outerContribution(s.item.Width, s.item.MinWidth, s.item.Margin.Horizontal())
		}
		if span.size() == 1 {
			contribution[span.start] = max(contribution[span.start], size)
		}
	}

	fixed, totalFr := 0.0, 0.0
	for i, t := range tracks {
		switch t.Unit {
		case TrackPixels:
			sizes[i] = t.Size
		case TrackPercent:
			sizes[i] = max(0, available) * t.Size / 100
		case TrackAuto:
			sizes[i] = contribution[i]
		case TrackFraction:
			totalFr += t.Size
			sizes[i] = contribution[i]
			continue
		}
		fixed += sizes[i]
	}

	// Items spanning several tracks grow the auto tracks they cross.
	for _, s := range states {
		span, size := s.row, outerContribution(s.item.Height, s.item.MinHeight, s.item.Margin.Vertical())
		if isColumn {
			span, size = s.col, outerContribution(s.item.Width, s.item.MinWidth, s.item.Margin.Horizontal())
		}
		if span.size() < 2 {
			continue
		}
		covered := gap * float64(span.size()-1)
		var autos []int
		for i := span.start; i < span.end; i++ {
			covered += sizes[i]
			if tracks[i].Unit == TrackAuto {
				autos = append(autos, i)
			}
		}
		if excess := size - covered; excess > 0 && len(autos) > 0 {
			for _, i := range autos {
				sizes[i] += excess / float64(len(autos))
				fixed += excess / float64(len(autos))
			}
		}
	}

	gaps := 0.0
	if len(tracks) > 1 {
		gaps = gap * float64(len(tracks)-1)
	}
	leftover := available - fixed - gaps

	if totalFr > 0 {
		if leftover > 0 {
			unit := leftover / max(1, totalFr)
			for i, t := range tracks {
				if t.Unit == TrackFraction {
					sizes[i] = max(sizes[i], unit*t.Size)
				}
			}
		}
		return sizes
	}

	content := g.AlignContent
	if isColumn {
		content = g.JustifyContent
	}
	if content == JustifyStretch && leftover > 0 {
		var autos []int
		for i, t := range tracks {
			if t.Unit == TrackAuto {
				autos = append(autos, i)
			}
		}
		for _, i := range autos {
			sizes[i] += leftover / float64(len(autos))
		}
	}
	return sizes
}

func outerContribution(size, minSize, margins float64) float64 {
	if size != NotAssigned {
		return max(size, minSize) + margins
	}
	return minSize + margins
}

// distributeTracks returns the start offset of every track after applying
// the content distribution.
func distributeTracks(sizes []float64, gap, available float64, justify Justify) []float64 {
	used := 0.0
	for _, s := range sizes {
		used += s
	}
	n := float64(len(sizes))
	if len(sizes) > 1 {
		used += gap * (n - 1)
	}
	free := available - used

	offset, extra := 0.0, 0.0
	switch justify {
	case JustifyEnd:
		offset = free
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if free > 0 && len(sizes) > 1 {
			extra = free / (n - 1)
		}
	case JustifySpaceAround:
		if free > 0 {
			extra = free / n
			offset = extra / 2
		}
	case JustifySpaceEvenly:
		if free > 0 {
			extra = free / (n + 1)
			offset = extra
		}
	}

	positions := make([]float64, len(sizes))
	for i, s := range sizes {
		positions[i] = offset
		offset += s + gap + extra
	}
	return positions
}

// occupancy tracks which cells are taken, in flow coordinates.
type occupancy struct {
	cells map[[2]int]bool
}

func newOccupancy() *occupancy {
	return &occupancy{cells: make(map[[2]int]bool)}
}

func (o *occupancy) free(major, minor cellSpan) bool {
	for a := major.start; a < major.end; a++ {
		for b := minor.start; b < minor.end; b++ {
			if o.cells[[2]int{a, b}] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) mark(major, minor cellSpan) {
	for a := major.start; a < major.end; a++ {
		for b := minor.start; b < minor.end; b++ {
			o.cells[[2]int{a, b}] = true
		}
	}
}
