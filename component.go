package boxflow

import "github.com/grindlemire/boxflow/pkg/document"

// Component is the render target an Item positions. Bounds are relative to
// the parent item's component.
type Component interface {
	Bounds() Rect
	SetBounds(r Rect)
	// OnMoveOrResize registers fn to run after the bounds change. The
	// returned function removes it.
	OnMoveOrResize(fn func(moved, resized bool)) (remove func())
}

// ComponentFactory creates the component for a document node.
type ComponentFactory func(kind string, h document.Handle) Component

// Surface is the default Component: a rectangle that reports its own moves
// and resizes.
type Surface struct {
	kind      string
	bounds    Rect
	listeners []*surfaceListener
}

type surfaceListener struct {
	fn     func(moved, resized bool)
	active bool
}

// NewSurface is the default ComponentFactory.
func NewSurface(kind string, _ document.Handle) Component {
	return &Surface{kind: kind}
}

// Kind returns the node kind the surface was created for.
func (s *Surface) Kind() string { return s.kind }

// Bounds returns the surface's bounds.
func (s *Surface) Bounds() Rect { return s.bounds }

// SetBounds moves and resizes the surface.
func (s *Surface) SetBounds(r Rect) {
	old := s.bounds
	if old == r {
		return
	}
	s.bounds = r

	moved := old.X != r.X || old.Y != r.Y
	resized := old.Width != r.Width || old.Height != r.Height

	active := s.listeners[:0]
	for _, l := range s.listeners {
		if l.active {
			active = append(active, l)
		}
	}
	s.listeners = active
	for _, l := range append([]*surfaceListener(nil), active...) {
		if l.active {
			l.fn(moved, resized)
		}
	}
}

// OnMoveOrResize implements Component.
func (s *Surface) OnMoveOrResize(fn func(moved, resized bool)) func() {
	l := &surfaceListener{fn: fn, active: true}
	s.listeners = append(s.listeners, l)
	return func() { l.active = false }
}
