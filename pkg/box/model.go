// Package box implements the per-item box model: the resolved size, padding,
// border, margin and minimum/ideal bounds of one document node.
//
// A Model reads its inputs through property bindings and recomputes
// synchronously whenever one of them changes. Every recompute marks the
// model valid and notifies BoxModelChanged listeners. Invalidate marks it
// stale and notifies BoxModelInvalidated listeners once per transition;
// whoever owns the layout for the model reacts by laying it out again and
// calling Validate. Validate never notifies, so an owner that revalidates
// from inside its own listener does not schedule itself again.
//
// Percentage sizes resolve against the parent model's content box at the
// time of resolution, and are recomputed whenever the parent changes.
package box

import (
	"github.com/grindlemire/boxflow/internal/layout"
	"github.com/grindlemire/boxflow/pkg/debug"
	"github.com/grindlemire/boxflow/pkg/document"
	"github.com/grindlemire/boxflow/pkg/property"
)

// Property keys read by a Model.
const (
	KeyWidth         = "width"
	KeyHeight        = "height"
	KeyMinWidth      = "min-width"
	KeyMinHeight     = "min-height"
	KeyMaxWidth      = "max-width"
	KeyMaxHeight     = "max-height"
	KeyAutoMinWidth  = "auto-min-width"
	KeyAutoMinHeight = "auto-min-height"
	KeyIdealWidth    = "ideal-width"
	KeyIdealHeight   = "ideal-height"
	KeyPadding       = "padding"
	KeyBorder        = "border-width"
	KeyMargin        = "margin"
)

// Model is the box model of one node.
type Model struct {
	doc    *document.Document
	node   document.Handle
	parent *Model

	width, height               *property.Binding[layout.Length]
	minWidth, minHeight         *property.Binding[layout.Length]
	maxWidth, maxHeight         *property.Binding[layout.Length]
	autoMinWidth, autoMinHeight *property.Binding[float64]
	idealWidth, idealHeight     *property.Binding[float64]
	padding, border, margin     *property.Binding[layout.Edges]

	componentWidth  float64
	componentHeight float64
	widthSet        bool
	heightSet       bool
	valid           bool

	// batching defers recalculation while a pair of bindings is written.
	batching bool
	pending  bool

	listeners      []*registration
	parentListener *ListenerFuncs
	closers        []func()
}

// New creates the box model for node h. parent is the model percentages
// resolve against; nil for top-level nodes.
func New(doc *document.Document, h document.Handle, parent *Model) *Model {
	m := &Model{doc: doc, node: h, parent: parent, valid: true}

	m.width = property.New(doc, h, KeyWidth, layout.Auto(), property.Length)
	m.height = property.New(doc, h, KeyHeight, layout.Auto(), property.Length)
	m.minWidth = property.New(doc, h, KeyMinWidth, layout.Auto(), property.Length)
	m.minHeight = property.New(doc, h, KeyMinHeight, layout.Auto(), property.Length)
	m.maxWidth = property.New(doc, h, KeyMaxWidth, layout.Auto(), property.Length)
	m.maxHeight = property.New(doc, h, KeyMaxHeight, layout.Auto(), property.Length)
	m.autoMinWidth = property.New(doc, h, KeyAutoMinWidth, 0.0, property.Size)
	m.autoMinHeight = property.New(doc, h, KeyAutoMinHeight, 0.0, property.Size)
	m.idealWidth = property.New(doc, h, KeyIdealWidth, 0.0, property.Size)
	m.idealHeight = property.New(doc, h, KeyIdealHeight, 0.0, property.Size)
	m.padding = property.New(doc, h, KeyPadding, layout.Edges{}, property.Edges)
	m.border = property.New(doc, h, KeyBorder, layout.Edges{}, property.Edges)
	m.margin = property.New(doc, h, KeyMargin, layout.Edges{}, property.Edges)

	recalculate := func() {
		if m.batching {
			m.pending = true
			return
		}
		m.recalculate()
		m.changed()
	}
	m.track(m.width, m.width.OnChange(func(layout.Length) {
		m.widthSet = false
		recalculate()
	}))
	m.track(m.height, m.height.OnChange(func(layout.Length) {
		m.heightSet = false
		recalculate()
	}))
	for _, b := range []*property.Binding[layout.Edges]{m.padding, m.border, m.margin} {
		m.track(b, b.OnChange(func(layout.Edges) { recalculate() }))
	}
	// Ideal size feeds auto sizing, so it recalculates too.
	for _, b := range []*property.Binding[float64]{m.idealWidth, m.idealHeight} {
		m.track(b, b.OnChange(func(float64) { recalculate() }))
	}
	for _, b := range []*property.Binding[layout.Length]{m.minWidth, m.minHeight, m.maxWidth, m.maxHeight} {
		m.track(b, b.OnChange(func(layout.Length) { m.changed() }))
	}
	for _, b := range []*property.Binding[float64]{m.autoMinWidth, m.autoMinHeight} {
		m.track(b, b.OnChange(func(float64) {
			if m.batching {
				m.pending = true
				return
			}
			m.changed()
		}))
	}

	if parent != nil {
		m.parentListener = &ListenerFuncs{Changed: func(*Model) { m.parentChanged() }}
		parent.AddListener(m.parentListener)
	}

	m.recalculate()
	return m
}

type closer interface{ Close() }

func (m *Model) track(b closer, unbind property.Unbind) {
	m.closers = append(m.closers, func() {
		unbind()
		b.Close()
	})
}

// Close releases the model's bindings and detaches it from its parent.
func (m *Model) Close() {
	for _, c := range m.closers {
		c()
	}
	m.closers = nil
	if m.parent != nil && m.parentListener != nil {
		m.parent.RemoveListener(m.parentListener)
		m.parentListener = nil
	}
	m.listeners = nil
}

// Node returns the document node the model reads.
func (m *Model) Node() document.Handle { return m.node }

// Parent returns the parent model, or nil.
func (m *Model) Parent() *Model { return m.parent }

// Width returns the resolved width.
func (m *Model) Width() float64 { return m.componentWidth }

// Height returns the resolved height.
func (m *Model) Height() float64 { return m.componentHeight }

// SetWidth overrides the resolved width, regardless of how width is
// specified. Containers call it after layout. The override holds until the
// width property itself changes.
func (m *Model) SetWidth(w float64) {
	m.widthSet = true
	m.resize(w, m.componentHeight)
}

// SetHeight overrides the resolved height.
func (m *Model) SetHeight(h float64) {
	m.heightSet = true
	m.resize(m.componentWidth, h)
}

// SetSize overrides both resolved dimensions, notifying once.
func (m *Model) SetSize(w, h float64) {
	m.widthSet, m.heightSet = true, true
	m.resize(w, h)
}

func (m *Model) resize(w, h float64) {
	w, h = max(0, w), max(0, h)
	if w == m.componentWidth && h == m.componentHeight {
		return
	}
	m.componentWidth, m.componentHeight = w, h
	m.changed()
}

// HasAutoWidth reports whether width is "auto".
func (m *Model) HasAutoWidth() bool { return m.width.IsAuto() }

// HasAutoHeight reports whether height is "auto".
func (m *Model) HasAutoHeight() bool { return m.height.IsAuto() }

// WidthSpec returns the width as specified.
func (m *Model) WidthSpec() layout.Length { return m.width.Get() }

// HeightSpec returns the height as specified.
func (m *Model) HeightSpec() layout.Length { return m.height.Get() }

// NaturalWidth resolves the width specification, ignoring any override.
func (m *Model) NaturalWidth() float64 {
	return m.resolve(m.width.Get(), m.padding.Get().Horizontal()+m.border.Get().Horizontal(),
		m.idealWidth.Get(), m.ParentBounds().Width)
}

// NaturalHeight resolves the height specification, ignoring any override.
func (m *Model) NaturalHeight() float64 {
	return m.resolve(m.height.Get(), m.padding.Get().Vertical()+m.border.Get().Vertical(),
		m.idealHeight.Get(), m.ParentBounds().Height)
}

func (m *Model) resolve(spec layout.Length, chrome, ideal, available float64) float64 {
	if spec.IsAuto() {
		return max(chrome, ideal)
	}
	return max(0, spec.Resolve(available, 0))
}

// Padding returns the padding edges.
func (m *Model) Padding() layout.Edges { return m.padding.Get() }

// Border returns the border edges.
func (m *Model) Border() layout.Edges { return m.border.Get() }

// Margin returns the margin edges.
func (m *Model) Margin() layout.Edges { return m.margin.Get() }

// Bounds returns the resolved size at the origin.
func (m *Model) Bounds() layout.Rect {
	return layout.NewRect(0, 0, m.componentWidth, m.componentHeight)
}

// ContentBounds returns the bounds with the border and then the padding
// removed.
func (m *Model) ContentBounds() layout.Rect {
	return m.Bounds().Inset(m.border.Get()).Inset(m.padding.Get())
}

// ParentBounds returns the parent's content box, or an empty rect for
// top-level models.
func (m *Model) ParentBounds() layout.Rect {
	if m.parent == nil {
		return layout.Rect{}
	}
	return m.parent.ContentBounds()
}

// MinimumBounds returns the explicit min-width/min-height where set, and the
// container-computed automatic minimum otherwise.
func (m *Model) MinimumBounds() layout.Rect {
	parent := m.ParentBounds()
	w := m.autoMinWidth.Get()
	if spec := m.minWidth.Get(); !spec.IsAuto() {
		w = spec.Resolve(parent.Width, 0)
	}
	h := m.autoMinHeight.Get()
	if spec := m.minHeight.Get(); !spec.IsAuto() {
		h = spec.Resolve(parent.Height, 0)
	}
	return layout.NewRect(0, 0, w, h)
}

// MaximumBounds returns max-width/max-height, using layout.NotAssigned for
// unset axes.
func (m *Model) MaximumBounds() layout.Rect {
	parent := m.ParentBounds()
	return layout.NewRect(0, 0,
		m.maxWidth.Get().Resolve(parent.Width, layout.NotAssigned),
		m.maxHeight.Get().Resolve(parent.Height, layout.NotAssigned))
}

// IdealBounds returns the container-computed natural size.
func (m *Model) IdealBounds() layout.Rect {
	return layout.NewRect(0, 0, m.idealWidth.Get(), m.idealHeight.Get())
}

// SetIdealSize records the natural size computed by the node's container
// logic. The values are written back into the document.
func (m *Model) SetIdealSize(w, h float64) {
	m.batch(func() {
		m.logSetError(m.idealWidth.Set(max(0, w)))
		m.logSetError(m.idealHeight.Set(max(0, h)))
	})
}

// SetAutoMinimumSize records the minimum size computed from content. It is
// used wherever min-width/min-height are not given explicitly.
func (m *Model) SetAutoMinimumSize(w, h float64) {
	m.batch(func() {
		m.logSetError(m.autoMinWidth.Set(max(0, w)))
		m.logSetError(m.autoMinHeight.Set(max(0, h)))
	})
}

// batch runs fn with notifications held back, then recomputes and notifies
// at most once for everything fn wrote.
func (m *Model) batch(fn func()) {
	if m.batching {
		fn()
		return
	}
	m.batching = true
	fn()
	m.batching = false
	if !m.pending {
		return
	}
	m.pending = false
	m.recalculate()
	m.changed()
}

func (m *Model) logSetError(err error) {
	if err != nil {
		debug.Log("box: node %d: %v", m.node, err)
	}
}

// IsValid reports whether the model's geometry is current.
func (m *Model) IsValid() bool { return m.valid }

// Invalidate marks the model stale. Listeners are told once per transition
// from valid to invalid.
func (m *Model) Invalidate() {
	if !m.valid {
		return
	}
	m.valid = false
	debug.Log("box: node %d invalidated", m.node)
	m.notifyInvalidated()
}

// Validate marks the model current without notifying anyone. Owners call it
// at the end of a layout pass, often from inside a BoxModelChanged handler,
// where a notification would start the pass over.
func (m *Model) Validate() {
	m.valid = true
}

func (m *Model) recalculate() {
	if !m.widthSet {
		m.componentWidth = m.NaturalWidth()
	}
	if !m.heightSet {
		m.componentHeight = m.NaturalHeight()
	}
}

func (m *Model) changed() {
	m.valid = true
	debug.Log("box: node %d changed to %gx%g", m.node, m.componentWidth, m.componentHeight)
	m.notifyChanged()
}

// parentChanged re-resolves percentage axes that no container has
// overridden.
func (m *Model) parentChanged() {
	w, h := m.componentWidth, m.componentHeight
	if !m.widthSet && m.width.Get().IsPercent() {
		w = m.NaturalWidth()
	}
	if !m.heightSet && m.height.Get().IsPercent() {
		h = m.NaturalHeight()
	}
	m.resize(w, h)
}
