package boxflow

import "github.com/grindlemire/boxflow/internal/layout"

// Container is the capability of an item that lays out children.
type Container struct {
	*Item
}

// FlexContainer is a Container using the flexbox algorithm.
type FlexContainer struct {
	Container
}

// GridContainer is a Container using the grid algorithm.
type GridContainer struct {
	Container
}

// FlexItem is the capability of an item whose parent is a flex container.
type FlexItem struct {
	*Item
}

// GridItem is the capability of an item whose parent is a grid container.
type GridItem struct {
	*Item
}

// AsContainer returns the item's container capability. ok is false for
// items without children.
func (it *Item) AsContainer() (Container, bool) {
	return Container{it}, it.IsContainer()
}

// AsFlexContainer returns the flex container capability.
func (it *Item) AsFlexContainer() (FlexContainer, bool) {
	c, ok := it.AsContainer()
	return FlexContainer{c}, ok && it.Display() == DisplayFlex
}

// AsGridContainer returns the grid container capability.
func (it *Item) AsGridContainer() (GridContainer, bool) {
	c, ok := it.AsContainer()
	return GridContainer{c}, ok && it.Display() == DisplayGrid
}

// AsFlexItem returns the flex item capability. ok is false unless the
// parent lays out with flexbox.
func (it *Item) AsFlexItem() (FlexItem, bool) {
	p := it.Parent()
	return FlexItem{it}, p != nil && p.Display() == DisplayFlex
}

// AsGridItem returns the grid item capability. ok is false unless the
// parent lays out with a grid.
func (it *Item) AsGridItem() (GridItem, bool) {
	p := it.Parent()
	return GridItem{it}, p != nil && p.Display() == DisplayGrid
}

// MinimumContentSize returns the smallest content box that fits the
// children, excluding the container's own padding and border.
func (c Container) MinimumContentSize() (width, height float64) {
	return c.engine.minimumContentSize(c.Children())
}

// IdealSize returns the container's natural size including its padding and
// border.
func (c Container) IdealSize() (width, height float64) {
	ideal := c.box.IdealBounds()
	return ideal.Width, ideal.Height
}

// Layout lays the container out again immediately.
func (c Container) Layout() {
	t := c.tree
	t.begin()
	defer t.end()
	t.markDirty(c.Item)
}

// Direction returns the main axis.
func (c FlexContainer) Direction() FlexDirection {
	if e, ok := c.engine.(*flexEngine); ok {
		return e.direction.Get()
	}
	return layout.Column
}

// FlexBox returns the configuration the flex algorithm runs with for the
// container's current content box.
func (c FlexContainer) FlexBox() layout.FlexBox {
	e, ok := c.engine.(*flexEngine)
	if !ok {
		return layout.FlexBox{}
	}
	return e.flexBox(c.ContentBounds(), c.Children(), StrategyReal)
}

// GridBox returns the configuration the grid algorithm runs with for the
// container's current content box.
func (c GridContainer) GridBox() layout.GridBox {
	e, ok := c.engine.(*gridEngine)
	if !ok {
		return layout.NewGridBox()
	}
	return e.gridBox(c.ContentBounds(), c.Children(), StrategyReal)
}

// Descriptor returns the item's last translation for its parent's flex
// layout, building one against the parent's current content box if the
// parent has not laid it out yet.
func (f FlexItem) Descriptor() layout.FlexItem {
	if f.constraints.lastFlex != nil {
		return *f.constraints.lastFlex
	}
	p := f.Parent()
	if p == nil {
		return layout.NewFlexItem()
	}
	o := Vertical
	if e, ok := p.engine.(*flexEngine); ok {
		o = e.orientation()
	}
	return f.applyFlexConstraints(p.ContentBounds(), o, StrategyReal)
}

// Descriptor returns the item's last translation for its parent's grid
// layout.
func (g GridItem) Descriptor() layout.GridItem {
	if g.constraints.lastGrid != nil {
		return *g.constraints.lastGrid
	}
	p := g.Parent()
	if p == nil {
		return layout.NewGridItem()
	}
	return g.applyGridConstraints(p.ContentBounds(), StrategyReal)
}
