package boxflow

import (
	"strings"

	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/document"
	"github.com/grindlemire/boxflow/pkg/property"
)

// Grid container keys.
const (
	keyTemplateColumns = "template-columns"
	keyTemplateRows    = "template-rows"
	keyTemplateAreas   = "template-areas"
	keyAutoFlow        = "auto-flow"
	keyAutoColumns     = "auto-columns"
	keyAutoRows        = "auto-rows"
	keyGap             = "gap"
	keyJustifyItems    = "justify-items"
)

type gridEngine struct {
	templateColumns *property.Binding[string]
	templateRows    *property.Binding[string]
	templateAreas   *property.Binding[string]
	autoFlow        *property.Binding[layout.AutoFlow]
	autoColumns     *property.Binding[string]
	autoRows        *property.Binding[string]
	gap             *property.Binding[string]
	justifyItems    *property.Binding[layout.Align]
	alignItems      *property.Binding[layout.Align]
	justifyContent  *property.Binding[layout.Justify]
	alignContent    *property.Binding[layout.Justify]
}

func newGridEngine(doc *document.Document, h document.Handle) *gridEngine {
	align := property.Enum(layout.ParseAlign)
	justify := property.Enum(layout.ParseJustify)
	return &gridEngine{
		templateColumns: property.New(doc, h, keyTemplateColumns, "", property.String),
		templateRows:    property.New(doc, h, keyTemplateRows, "", property.String),
		templateAreas:   property.New(doc, h, keyTemplateAreas, "", property.String),
		autoFlow:        property.New(doc, h, keyAutoFlow, layout.FlowRow, property.Enum(layout.ParseAutoFlow)),
		autoColumns:     property.New(doc, h, keyAutoColumns, "auto", property.String),
		autoRows:        property.New(doc, h, keyAutoRows, "auto", property.String),
		gap:             property.New(doc, h, keyGap, "", property.String),
		justifyItems:    property.New(doc, h, keyJustifyItems, layout.AlignStretch, align),
		alignItems:      property.New(doc, h, keyAlignItems, layout.AlignStretch, align),
		justifyContent:  property.New(doc, h, keyJustifyContent, layout.JustifyStretch, justify),
		alignContent:    property.New(doc, h, keyAlignContent, layout.JustifyStretch, justify),
	}
}

// gridBox builds the grid configuration for children inside content.
func (e *gridEngine) gridBox(content Rect, children []*Item, s Strategy) layout.GridBox {
	g := layout.NewGridBox()
	g.TemplateColumns = layout.ParseTracks(e.templateColumns.Get())
	g.TemplateRows = layout.ParseTracks(e.templateRows.Get())
	g.TemplateAreas = layout.ParseAreas(e.templateAreas.Get())
	g.AutoFlow = e.autoFlow.Get()
	g.AutoColumns = parseSingleTrack(e.autoColumns.Get())
	g.AutoRows = parseSingleTrack(e.autoRows.Get())
	g.RowGap, g.ColumnGap = parseGap(e.gap.Get())
	g.JustifyItems = e.justifyItems.Get()
	g.AlignItems = e.alignItems.Get()
	g.JustifyContent = e.justifyContent.Get()
	g.AlignContent = e.alignContent.Get()

	g.Items = make([]layout.GridItem, len(children))
	for i, c := range children {
		g.Items[i] = c.applyGridConstraints(content, s)
	}
	return g
}

func (e *gridEngine) layout(content Rect, children []*Item) []Rect {
	return e.gridBox(content, children, StrategyReal).PerformLayout(content)
}

func (e *gridEngine) minimumContentSize(children []*Item) (float64, float64) {
	return e.gridBox(Rect{}, children, StrategyMeasure).MinimumContentSize()
}

func (e *gridEngine) idealContentSize(children []*Item) (float64, float64) {
	return e.minimumContentSize(children)
}

func (e *gridEngine) close() {
	e.templateColumns.Close()
	e.templateRows.Close()
	e.templateAreas.Close()
	e.autoFlow.Close()
	e.autoColumns.Close()
	e.autoRows.Close()
	e.gap.Close()
	e.justifyItems.Close()
	e.alignItems.Close()
	e.justifyContent.Close()
	e.alignContent.Close()
}

// parseSingleTrack reads an auto-rows/auto-columns size. Anything but a
// single valid track is auto.
func parseSingleTrack(s string) layout.Track {
	tracks := layout.ParseTracks(s).Tracks
	if len(tracks) != 1 {
		return layout.AutoTrack()
	}
	return tracks[0]
}

// parseGap reads "row column" or a single value for both. Malformed or
// negative values are zero.
func parseGap(s string) (row, column float64) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	values := make([]float64, 0, 2)
	for _, f := range fields {
		v, ok := layout.ParseNumber(f)
		if !ok {
			return 0, 0
		}
		values = append(values, max(0, v))
	}
	switch len(values) {
	case 1:
		return values[0], values[0]
	case 2:
		return values[0], values[1]
	default:
		return 0, 0
	}
}
