package boxflow

import (
	"github.com/grindlemire/boxflow/pkg/document"
)

// engine is the layout algorithm behind an item's display mode.
type engine interface {
	// layout returns one rectangle per child, positioned in the item's own
	// coordinate space.
	layout(content Rect, children []*Item) []Rect
	// minimumContentSize is the smallest content box that fits the children.
	minimumContentSize(children []*Item) (width, height float64)
	// idealContentSize is the content box the children would like.
	idealContentSize(children []*Item) (width, height float64)
	close()
}

func newEngine(d Display, doc *document.Document, h document.Handle) engine {
	switch d {
	case DisplayGrid:
		return newGridEngine(doc, h)
	case DisplayBlock:
		return blockEngine{}
	default:
		return newFlexEngine(doc, h)
	}
}

// blockEngine places each child at its x/y properties with its natural size.
type blockEngine struct{}

func (blockEngine) layout(content Rect, children []*Item) []Rect {
	rects := make([]Rect, len(children))
	for i, c := range children {
		m := c.box.Margin()
		rects[i] = NewRect(
			content.X+c.props.x.Get()+m.Left,
			content.Y+c.props.y.Get()+m.Top,
			c.box.NaturalWidth(),
			c.box.NaturalHeight(),
		)
	}
	return rects
}

func (blockEngine) minimumContentSize(children []*Item) (float64, float64) {
	var w, h float64
	for _, c := range children {
		m := c.box.Margin()
		minimum := c.box.MinimumBounds()
		w = max(w, c.props.x.Get()+m.Horizontal()+max(minimum.Width, c.box.NaturalWidth()))
		h = max(h, c.props.y.Get()+m.Vertical()+max(minimum.Height, c.box.NaturalHeight()))
	}
	return w, h
}

func (e blockEngine) idealContentSize(children []*Item) (float64, float64) {
	return e.minimumContentSize(children)
}

func (blockEngine) close() {}
