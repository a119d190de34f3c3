package layout

import (
	"math"
	"slices"
)

// FlexItem is the per-child input to the flexbox algorithm.
// Sizes are content-box pixels; NotAssigned leaves the choice to the container.
type FlexItem struct {
	Order  int
	Grow   float64
	Shrink float64
	Basis  float64

	Width, Height       float64
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64

	Margin    Edges
	AlignSelf Align
}

// NewFlexItem returns a FlexItem with CSS initial values.
func NewFlexItem() FlexItem {
	return FlexItem{
		Shrink:    1,
		Basis:     NotAssigned,
		Width:     NotAssigned,
		Height:    NotAssigned,
		MaxWidth:  NotAssigned,
		MaxHeight: NotAssigned,
	}
}

// FlexBox is a flex container configuration plus its items.
type FlexBox struct {
	Direction      FlexDirection
	Wrap           FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Items          []FlexItem
}

// flexState holds intermediate calculation state for one item.
// It lives only for the duration of a PerformLayout call.
type flexState struct {
	index int
	item  *FlexItem

	base      float64
	hypo      float64
	mainSize  float64
	crossSize float64
	frozen    bool

	minMain, maxMain   float64
	minCross, maxCross float64
	crossDim           float64

	marginMainStart, marginMainEnd   float64
	marginCrossStart, marginCrossEnd float64

	mainPos  float64
	crossPos float64
	align    Align
}

func (s *flexState) outerHypo() float64 {
	return s.hypo + s.marginMainStart + s.marginMainEnd
}

func (s *flexState) outerMain() float64 {
	return s.mainSize + s.marginMainStart + s.marginMainEnd
}

func (s *flexState) outerCross() float64 {
	return s.crossSize + s.marginCrossStart + s.marginCrossEnd
}

type flexLine struct {
	items     []*flexState
	crossSize float64
	crossPos  float64
}

// PerformLayout arranges the items inside bounds and returns one rectangle
// per item, in the same order as Items. Rectangles exclude
// margins and are positioned in the coordinate space of bounds.
func (fb FlexBox) PerformLayout(bounds Rect) []Rect {
	if len(fb.Items) == 0 {
		return nil
	}

	isRow := fb.Direction.IsRow()
	availMain, availCross := bounds.Width, bounds.Height
	if !isRow {
		availMain, availCross = availCross, availMain
	}

	// Phase 1: order items and compute hypothetical main sizes
	states := fb.orderedStates(isRow)

	// Phase 2: collect lines
	lines := collectFlexLines(states, fb.Wrap, availMain)

	// Phase 3: resolve flexible lengths per line
	for _, line := range lines {
		resolveFlexibleLengths(line, availMain)
	}

	// Phase 4: cross sizes of items and lines
	for _, line := range lines {
		for _, s := range line.items {
			s.align = s.item.AlignSelf
			if s.align == AlignAuto {
				s.align = fb.AlignItems
			}
			if s.align == AlignAuto {
				s.align = AlignStretch
			}
			s.crossSize = hypotheticalCross(s)
		}
	}
	if fb.Wrap == NoWrap && len(lines) == 1 {
		lines[0].crossSize = availCross
	} else {
		for _, line := range lines {
			for _, s := range line.items {
				line.crossSize = max(line.crossSize, s.outerCross())
			}
		}
		alignFlexLines(lines, fb.AlignContent, availCross)
	}

	// Phase 5: stretch, then position along both axes
	for _, line := range lines {
		for _, s := range line.items {
			if s.align == AlignStretch && s.crossDim == NotAssigned {
				inner := line.crossSize - s.marginCrossStart - s.marginCrossEnd
				s.crossSize = clampSize(inner, s.minCross, s.maxCross)
			}
		}
		justifyMainAxis(line, fb.JustifyContent, availMain)
		alignCrossAxis(line)
	}

	// Phase 6: convert to rects in input order
	rects := make([]Rect, len(fb.Items))
	for _, s := range states {
		mainPos, crossPos := s.mainPos, s.crossPos
		if fb.Direction.IsReversed() {
			mainPos = availMain - mainPos - s.mainSize
		}
		if fb.Wrap == WrapReverse {
			crossPos = availCross - crossPos - s.crossSize
		}
		if isRow {
			rects[s.index] = NewRect(bounds.X+mainPos, bounds.Y+crossPos, s.mainSize, s.crossSize)
		} else {
			rects[s.index] = NewRect(bounds.X+crossPos, bounds.Y+mainPos, s.crossSize, s.mainSize)
		}
	}
	return rects
}

// MinimumContentSize returns the smallest content box that holds every item
// at its hypothetical size: the main axis sums items on a single line and
// takes the widest item when wrapping; the cross axis does the opposite.
func (fb FlexBox) MinimumContentSize() (width, height float64) {
	isRow := fb.Direction.IsRow()
	var sumMain, maxMain, sumCross, maxCross float64
	for _, s := range fb.orderedStates(isRow) {
		s.crossSize = hypotheticalCross(s)
		sumMain += s.outerHypo()
		maxMain = max(maxMain, s.outerHypo())
		sumCross += s.outerCross()
		maxCross = max(maxCross, s.outerCross())
	}

	main, cross := sumMain, maxCross
	if fb.Wrap != NoWrap {
		main, cross = maxMain, sumCross
	}
	if isRow {
		return main, cross
	}
	return cross, main
}

// orderedStates builds calculation state sorted by ascending order,
// keeping document order for ties.
func (fb FlexBox) orderedStates(isRow bool) []*flexState {
	states := make([]*flexState, len(fb.Items))
	for i := range fb.Items {
		item := &fb.Items[i]
		s := &flexState{index: i, item: item}

		mainDim, crossDim := item.Width, item.Height
		s.minMain, s.minCross = item.MinWidth, item.MinHeight
		s.maxMain, s.maxCross = unbounded(item.MaxWidth), unbounded(item.MaxHeight)
		s.marginMainStart, s.marginMainEnd = item.Margin.Left, item.Margin.Right
		s.marginCrossStart, s.marginCrossEnd = item.Margin.Top, item.Margin.Bottom
		if !isRow {
			mainDim, crossDim = crossDim, mainDim
			s.minMain, s.minCross = s.minCross, s.minMain
			s.maxMain, s.maxCross = s.maxCross, s.maxMain
			s.marginMainStart, s.marginMainEnd = item.Margin.Top, item.Margin.Bottom
			s.marginCrossStart, s.marginCrossEnd = item.Margin.Left, item.Margin.Right
		}
		s.crossDim = crossDim

		switch {
		case item.Basis != NotAssigned:
			s.base = item.Basis
		case mainDim != NotAssigned:
			s.base = mainDim
		default:
			s.base = s.minMain
		}
		s.hypo = clampSize(s.base, s.minMain, s.maxMain)
		states[i] = s
	}

	slices.SortStableFunc(states, func(a, b *flexState) int {
		return a.item.Order - b.item.Order
	})
	return states
}

func hypotheticalCross(s *flexState) float64 {
	if s.crossDim != NotAssigned {
		return clampSize(s.crossDim, s.minCross, s.maxCross)
	}
	return clampSize(s.minCross, s.minCross, s.maxCross)
}

// collectFlexLines breaks items into lines. A line always holds at least
// one item, even when that item alone overflows.
func collectFlexLines(states []*flexState, wrap FlexWrap, availMain float64) []*flexLine {
	if wrap == NoWrap {
		return []*flexLine{{items: states}}
	}

	var lines []*flexLine
	current := &flexLine{}
	used := 0.0
	for _, s := range states {
		outer := s.outerHypo()
		if len(current.items) > 0 && used+outer > availMain+epsilon {
			lines = append(lines, current)
			current = &flexLine{}
			used = 0
		}
		current.items = append(current.items, s)
		used += outer
	}
	if len(current.items) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// resolveFlexibleLengths grows or shrinks the items of a line so that they
// fill availMain, freezing items that hit their min or max bound and
// redistributing until every item is frozen.
func resolveFlexibleLengths(line *flexLine, availMain float64) {
	used := 0.0
	for _, s := range line.items {
		used += s.outerHypo()
	}
	growing := used < availMain

	for _, s := range line.items {
		s.mainSize = s.hypo
		s.frozen = false
		factor := s.item.Shrink
		if growing {
			factor = s.item.Grow
		}
		if factor == 0 || (growing && s.base > s.hypo) || (!growing && s.base < s.hypo) {
			s.frozen = true
		}
	}

	initialFree := freeSpace(line, availMain)
	for iteration := 0; iteration <= len(line.items); iteration++ {
		free := freeSpace(line, availMain)

		var sumGrow, sumScaled float64
		unfrozen := 0
		for _, s := range line.items {
			if s.frozen {
				continue
			}
			unfrozen++
			sumGrow += s.item.Grow
			sumScaled += s.item.Shrink * s.base
		}
		if unfrozen == 0 {
			return
		}

		if growing && sumGrow < 1 {
			if partial := initialFree * sumGrow; math.Abs(partial) < math.Abs(free) {
				free = partial
			}
		}

		totalViolation := 0.0
		targets := make(map[*flexState]float64, unfrozen)
		for _, s := range line.items {
			if s.frozen {
				continue
			}
			target := s.base
			switch {
			case growing && sumGrow > 0:
				target = s.base + free*s.item.Grow/sumGrow
			case !growing && sumScaled > 0:
				target = s.base + free*(s.item.Shrink*s.base)/sumScaled
			}
			clamped := clampSize(target, s.minMain, s.maxMain)
			totalViolation += clamped - target
			targets[s] = target
			s.mainSize = clamped
		}

		for _, s := range line.items {
			target, ok := targets[s]
			if !ok {
				continue
			}
			switch {
			case math.Abs(totalViolation) < epsilon:
				s.frozen = true
			case totalViolation > 0 && s.mainSize > target:
				s.frozen = true
			case totalViolation < 0 && s.mainSize < target:
				s.frozen = true
			}
		}
	}
}

// freeSpace returns the space left on the line using the target size of
// frozen items and the base size of the rest.
func freeSpace(line *flexLine, availMain float64) float64 {
	free := availMain
	for _, s := range line.items {
		size := s.base
		if s.frozen {
			size = s.mainSize
		}
		free -= size + s.marginMainStart + s.marginMainEnd
	}
	return free
}

// alignFlexLines sizes and positions lines along the cross axis.
func alignFlexLines(lines []*flexLine, align AlignContent, availCross float64) {
	total := 0.0
	for _, line := range lines {
		total += line.crossSize
	}
	free := availCross - total
	n := float64(len(lines))

	offset, gap := 0.0, 0.0
	switch align {
	case AlignContentStretch:
		if free > 0 {
			for _, line := range lines {
				line.crossSize += free / n
			}
		}
	case AlignContentEnd:
		offset = free
	case AlignContentCenter:
		offset = free / 2
	case AlignContentSpaceBetween:
		if free > 0 && len(lines) > 1 {
			gap = free / (n - 1)
		}
	case AlignContentSpaceAround:
		if free > 0 {
			gap = free / n
			offset = gap / 2
		} else {
			offset = free / 2
		}
	}

	for _, line := range lines {
		line.crossPos = offset
		offset += line.crossSize + gap
	}
}

// justifyMainAxis positions the items of a line along the main axis.
func justifyMainAxis(line *flexLine, justify Justify, availMain float64) {
	used := 0.0
	for _, s := range line.items {
		used += s.outerMain()
	}
	free := availMain - used
	n := float64(len(line.items))

	offset, gap := 0.0, 0.0
	switch justify {
	case JustifyEnd:
		offset = free
	case JustifyCenter:
		offset = free / 2
	case JustifySpaceBetween:
		if free > 0 && len(line.items) > 1 {
			gap = free / (n - 1)
		}
	case JustifySpaceAround:
		if free > 0 {
			gap = free / n
			offset = gap / 2
		} else {
			offset = free / 2
		}
	case JustifySpaceEvenly:
		if free > 0 {
			gap = free / (n + 1)
			offset = gap
		} else {
			offset = free / 2
		}
	}

	for _, s := range line.items {
		s.mainPos = offset + s.marginMainStart
		offset += s.outerMain() + gap
	}
}

// alignCrossAxis positions each item within its line.
func alignCrossAxis(line *flexLine) {
	for _, s := range line.items {
		space := line.crossSize - s.outerCross()
		offset := 0.0
		switch s.align {
		case AlignEnd:
			offset = space
		case AlignCenter:
			offset = space / 2
		}
		s.crossPos = line.crossPos + s.marginCrossStart + offset
	}
}

const epsilon = 1e-6

func unbounded(v float64) float64 {
	if v == NotAssigned {
		return math.Inf(1)
	}
	return v
}

// clampSize restricts v to [minVal, maxVal] and never returns a negative size.
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clampSize(v, minVal, maxVal float64) float64 {
	if maxVal >= minVal && v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return max(0, v)
}
