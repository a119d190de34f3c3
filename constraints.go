package boxflow

import (
	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/document"
	"github.com/grindlemire/boxflow/pkg/property"
)

// Strategy selects how a child's properties are translated for its
// container's layout engine.
type Strategy uint8

const (
	// StrategyReal resolves percentages against the container's content box
	// for an actual layout pass.
	StrategyReal Strategy = iota
	// StrategyMeasure treats percentage sizes as unassigned, so a
	// container's minimum content size never depends on its own size.
	StrategyMeasure
)

func (s Strategy) String() string {
	if s == StrategyMeasure {
		return "measure"
	}
	return "real"
}

// Orientation is the main axis of a flex container.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Per-child keys read by container layouts.
const (
	keyOrder       = "order"
	keyFlexGrow    = "flex-grow"
	keyFlexShrink  = "flex-shrink"
	keyFlexBasis   = "flex-basis"
	keyAlignSelf   = "align-self"
	keyJustifySelf = "justify-self"
	keyColumn      = "column"
	keyRow         = "row"
	keyArea        = "area"
	keyX           = "x"
	keyY           = "y"
)

// childProps are the bindings an item exposes to its parent's layout.
type childProps struct {
	order       *property.Binding[int]
	grow        *property.Binding[float64]
	shrink      *property.Binding[float64]
	basis       *property.Binding[layout.Length]
	alignSelf   *property.Binding[layout.Align]
	justifySelf *property.Binding[layout.Align]
	column      *property.Binding[layout.GridPlacement]
	row         *property.Binding[layout.GridPlacement]
	area        *property.Binding[string]
	x, y        *property.Binding[float64]
}

func newChildProps(doc *document.Document, h document.Handle) childProps {
	align := property.Enum(layout.ParseAlign)
	return childProps{
		order:       property.New(doc, h, keyOrder, 0, property.Int),
		grow:        property.New(doc, h, keyFlexGrow, 0.0, property.Size),
		shrink:      property.New(doc, h, keyFlexShrink, 1.0, property.Size),
		basis:       property.New(doc, h, keyFlexBasis, layout.Auto(), property.Length),
		alignSelf:   property.New(doc, h, keyAlignSelf, layout.AlignAuto, align),
		justifySelf: property.New(doc, h, keyJustifySelf, layout.AlignAuto, align),
		column:      property.New(doc, h, keyColumn, layout.GridPlacement{}, property.GridPlacement),
		row:         property.New(doc, h, keyRow, layout.GridPlacement{}, property.GridPlacement),
		area:        property.New(doc, h, keyArea, "", property.String),
		x:           property.New(doc, h, keyX, 0.0, property.Float),
		y:           property.New(doc, h, keyY, 0.0, property.Float),
	}
}

func (p childProps) close() {
	p.order.Close()
	p.grow.Close()
	p.shrink.Close()
	p.basis.Close()
	p.alignSelf.Close()
	p.justifySelf.Close()
	p.column.Close()
	p.row.Close()
	p.area.Close()
	p.x.Close()
	p.y.Close()
}

// constraintKey identifies a cached translation.
type constraintKey struct {
	bounds   Rect
	strategy Strategy
}

// constraintCache holds the descriptors built for one child. It is dropped
// whenever any property of the child changes.
type constraintCache struct {
	flex     map[constraintKey]layout.FlexItem
	grid     map[constraintKey]layout.GridItem
	lastFlex *layout.FlexItem
	lastGrid *layout.GridItem
}

func (c *constraintCache) clear() {
	*c = constraintCache{}
}

// resolveLength converts a declared size to pixels for a descriptor.
func resolveLength(l layout.Length, available float64, s Strategy) float64 {
	switch {
	case l.IsAuto():
		return layout.NotAssigned
	case l.IsPercent() && s == StrategyMeasure:
		return layout.NotAssigned
	default:
		return l.Resolve(available, layout.NotAssigned)
	}
}

// applyFlexConstraints builds the flex descriptor for the item inside a
// parent whose content box is content.
func (it *Item) applyFlexConstraints(content Rect, o Orientation, s Strategy) layout.FlexItem {
	key := constraintKey{bounds: content, strategy: s}
	if d, ok := it.constraints.flex[key]; ok {
		return d
	}

	d := layout.NewFlexItem()
	d.Order = it.props.order.Get()
	d.Grow = it.props.grow.Get()
	d.Shrink = it.props.shrink.Get()
	mainAvailable := content.Width
	if o == Vertical {
		mainAvailable = content.Height
	}
	d.Basis = resolveLength(it.props.basis.Get(), mainAvailable, s)
	d.Width = resolveLength(it.box.WidthSpec(), content.Width, s)
	d.Height = resolveLength(it.box.HeightSpec(), content.Height, s)

	minimum, maximum := it.box.MinimumBounds(), it.box.MaximumBounds()
	d.MinWidth, d.MinHeight = minimum.Width, minimum.Height
	d.MaxWidth, d.MaxHeight = maximum.Width, maximum.Height
	d.Margin = it.box.Margin()
	d.AlignSelf = it.props.alignSelf.Get()

	if it.constraints.flex == nil {
		it.constraints.flex = make(map[constraintKey]layout.FlexItem)
	}
	it.constraints.flex[key] = d
	if s == StrategyReal {
		it.constraints.lastFlex = &d
	}
	return d
}

// applyGridConstraints builds the grid descriptor for the item inside a
// parent whose content box is content.
func (it *Item) applyGridConstraints(content Rect, s Strategy) layout.GridItem {
	key := constraintKey{bounds: content, strategy: s}
	if d, ok := it.constraints.grid[key]; ok {
		return d
	}

	d := layout.NewGridItem()
	d.Order = it.props.order.Get()
	d.Column = it.props.column.Get()
	d.Row = it.props.row.Get()
	d.Area = it.props.area.Get()
	d.JustifySelf = it.props.justifySelf.Get()
	d.AlignSelf = it.props.alignSelf.Get()
	d.Width = resolveLength(it.box.WidthSpec(), content.Width, s)
	d.Height = resolveLength(it.box.HeightSpec(), content.Height, s)

	minimum, maximum := it.box.MinimumBounds(), it.box.MaximumBounds()
	d.MinWidth, d.MinHeight = minimum.Width, minimum.Height
	d.MaxWidth, d.MaxHeight = maximum.Width, maximum.Height
	d.Margin = it.box.Margin()

	if it.constraints.grid == nil {
		it.constraints.grid = make(map[constraintKey]layout.GridItem)
	}
	it.constraints.grid[key] = d
	if s == StrategyReal {
		it.constraints.lastGrid = &d
	}
	return d
}
