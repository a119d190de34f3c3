// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxflow

import "github.com/grindlemire/boxflow/internal/layout"

// Rect is a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Length is a dimension that can be fixed, a percentage or auto.
type Length = layout.Length

// NotAssigned marks a numeric bound the container should decide.
const NotAssigned = layout.NotAssigned

// FlexDirection specifies the main axis of a flex container.
type FlexDirection = layout.FlexDirection

const (
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
	Row           = layout.Row
	RowReverse    = layout.RowReverse
)

// FlexWrap controls whether flex items break onto several lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Justify specifies how items or tracks are distributed along an axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
	JustifyStretch      = layout.JustifyStretch
)

// Align specifies how an item is aligned on the cross axis or in its grid
// area.
type Align = layout.Align

const (
	AlignAuto    = layout.AlignAuto
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how flex lines share the cross axis.
type AlignContent = layout.AlignContent

const (
	AlignContentStretch      = layout.AlignContentStretch
	AlignContentStart        = layout.AlignContentStart
	AlignContentEnd          = layout.AlignContentEnd
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
)

// AutoFlow controls grid auto-placement.
type AutoFlow = layout.AutoFlow

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// GridPlacement is a start/end pair of grid lines on one axis.
type GridPlacement = layout.GridPlacement

// GridLine names a grid line by number, by name or as a span.
type GridLine = layout.GridLine

// FlexItemDescriptor is the per-child input to the flexbox algorithm.
type FlexItemDescriptor = layout.FlexItem

// GridItemDescriptor is the per-child input to the grid algorithm.
type GridItemDescriptor = layout.GridItem

// NewRect creates a rectangle.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeTRBL returns Edges from top, right, bottom and left values.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return layout.EdgeTRBL(top, right, bottom, left)
}

// ParseEdges parses 1-4 value shorthand.
func ParseEdges(s string) Edges {
	return layout.ParseEdges(s)
}
