package boxflow

import (
	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/document"
	"github.com/grindlemire/boxflow/pkg/property"
)

// Flex container keys.
const (
	keyFlexDirection  = "flex-direction"
	keyFlexWrap       = "flex-wrap"
	keyJustifyContent = "justify-content"
	keyAlignItems     = "align-items"
	keyAlignContent   = "align-content"
)

type flexEngine struct {
	direction      *property.Binding[layout.FlexDirection]
	wrap           *property.Binding[layout.FlexWrap]
	justifyContent *property.Binding[layout.Justify]
	alignItems     *property.Binding[layout.Align]
	alignContent   *property.Binding[layout.AlignContent]
}

func newFlexEngine(doc *document.Document, h document.Handle) *flexEngine {
	return &flexEngine{
		direction:      property.New(doc, h, keyFlexDirection, layout.Column, property.Enum(layout.ParseFlexDirection)),
		wrap:           property.New(doc, h, keyFlexWrap, layout.NoWrap, property.Enum(layout.ParseFlexWrap)),
		justifyContent: property.New(doc, h, keyJustifyContent, layout.JustifyStart, property.Enum(layout.ParseJustify)),
		alignItems:     property.New(doc, h, keyAlignItems, layout.AlignStretch, property.Enum(layout.ParseAlign)),
		alignContent:   property.New(doc, h, keyAlignContent, layout.AlignContentStretch, property.Enum(layout.ParseAlignContent)),
	}
}

func (e *flexEngine) orientation() Orientation {
	if e.direction.Get().IsRow() {
		return Horizontal
	}
	return Vertical
}

// flexBox builds the flex configuration for children inside content.
func (e *flexEngine) flexBox(content Rect, children []*Item, s Strategy) layout.FlexBox {
	fb := layout.FlexBox{
		Direction:      e.direction.Get(),
		Wrap:           e.wrap.Get(),
		JustifyContent: e.justifyContent.Get(),
		AlignItems:     e.alignItems.Get(),
		AlignContent:   e.alignContent.Get(),
		Items:          make([]layout.FlexItem, len(children)),
	}
	o := e.orientation()
	for i, c := range children {
		fb.Items[i] = c.applyFlexConstraints(content, o, s)
	}
	return fb
}

func (e *flexEngine) layout(content Rect, children []*Item) []Rect {
	return e.flexBox(content, children, StrategyReal).PerformLayout(content)
}

func (e *flexEngine) minimumContentSize(children []*Item) (float64, float64) {
	return e.flexBox(Rect{}, children, StrategyMeasure).MinimumContentSize()
}

// idealContentSize lays every child out on a single line.
func (e *flexEngine) idealContentSize(children []*Item) (float64, float64) {
	fb := e.flexBox(Rect{}, children, StrategyMeasure)
	fb.Wrap = layout.NoWrap
	return fb.MinimumContentSize()
}

func (e *flexEngine) close() {
	e.direction.Close()
	e.wrap.Close()
	e.justifyContent.Close()
	e.alignItems.Close()
	e.alignContent.Close()
}
