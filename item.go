package boxflow

import (
	"go.uber.org/zap"

	"github.com/grindlemire/boxflow/pkg/box"
	"github.com/grindlemire/boxflow/pkg/document"
	"github.com/grindlemire/boxflow/pkg/property"
)

const keyDisplay = "display"

// boxKeys are handled by the box model; the item reacts to them through
// BoxModelChanged instead of the raw document event.
var boxKeys = map[string]bool{
	box.KeyWidth:         true,
	box.KeyHeight:        true,
	box.KeyMinWidth:      true,
	box.KeyMinHeight:     true,
	box.KeyMaxWidth:      true,
	box.KeyMaxHeight:     true,
	box.KeyAutoMinWidth:  true,
	box.KeyAutoMinHeight: true,
	box.KeyIdealWidth:    true,
	box.KeyIdealHeight:   true,
	box.KeyPadding:       true,
	box.KeyBorder:        true,
	box.KeyMargin:        true,
}

// Item is one node of a laid-out tree.
type Item struct {
	tree      *Tree
	node      document.Handle
	component Component
	box       *box.Model

	display     *property.Binding[Display]
	props       childProps
	engine      engine
	constraints constraintCache

	layingOut bool
	syncing   bool
	outer     outerGeometry

	listener     *box.ListenerFuncs
	unwatch      document.Unwatch
	removeResize func()
}

// outerGeometry is what a parent's layout depends on.
type outerGeometry struct {
	widthSpec, heightSpec Length
	width, height         float64
	margin                Edges
	minimum, maximum      Rect
	ideal                 Rect
}

func newItem(t *Tree, h document.Handle, parent *Item) *Item {
	var parentBox *box.Model
	if parent != nil {
		parentBox = parent.box
	}

	it := &Item{tree: t, node: h}
	it.component = t.factory(t.doc.Kind(h), h)
	it.box = box.New(t.doc, h, parentBox)
	it.display = property.New(t.doc, h, keyDisplay, DisplayFlex, property.Enum(ParseDisplay))
	it.props = newChildProps(t.doc, h)
	it.engine = newEngine(it.display.Get(), t.doc, h)
	it.outer = it.outerGeometry()

	it.component.SetBounds(it.component.Bounds().WithSize(it.box.Width(), it.box.Height()))

	it.listener = &box.ListenerFuncs{
		Changed:     it.boxModelChanged,
		Invalidated: it.boxModelInvalidated,
	}
	it.box.AddListener(it.listener)
	it.unwatch = t.doc.Watch(h, it.documentChanged)
	it.removeResize = it.component.OnMoveOrResize(it.componentMovedOrResized)
	return it
}

func (it *Item) close() {
	it.removeResize()
	it.unwatch()
	it.box.RemoveListener(it.listener)
	it.box.Close()
	it.display.Close()
	it.props.close()
	it.engine.close()
}

// Handle returns the document node the item mirrors.
func (it *Item) Handle() document.Handle { return it.node }

// ID returns the node's "id" property, or an identifier derived from its
// handle.
func (it *Item) ID() string { return it.tree.doc.ID(it.node) }

// Kind returns the node kind.
func (it *Item) Kind() string { return it.tree.doc.Kind(it.node) }

// Display returns how the item lays out its children.
func (it *Item) Display() Display { return it.display.Get() }

// Component returns the item's render target.
func (it *Item) Component() Component { return it.component }

// BoxModel returns the item's box model.
func (it *Item) BoxModel() *box.Model { return it.box }

// Width returns the resolved width.
func (it *Item) Width() float64 { return it.box.Width() }

// Height returns the resolved height.
func (it *Item) Height() float64 { return it.box.Height() }

// Bounds returns the component's bounds, relative to the parent item.
func (it *Item) Bounds() Rect { return it.component.Bounds() }

// ContentBounds returns the content box in the item's own coordinates.
func (it *Item) ContentBounds() Rect { return it.box.ContentBounds() }

// Padding returns the padding edges.
func (it *Item) Padding() Edges { return it.box.Padding() }

// Border returns the border edges.
func (it *Item) Border() Edges { return it.box.Border() }

// Margin returns the margin edges.
func (it *Item) Margin() Edges { return it.box.Margin() }

// Parent returns the parent item, or nil for the top-level item.
func (it *Item) Parent() *Item {
	return it.tree.items[it.tree.doc.Parent(it.node)]
}

// IsTopLevel reports whether the item has no parent in its tree.
func (it *Item) IsTopLevel() bool { return it.Parent() == nil }

// Children returns the child items in document order.
func (it *Item) Children() []*Item {
	handles := it.tree.doc.Children(it.node)
	children := make([]*Item, 0, len(handles))
	for _, h := range handles {
		if c, ok := it.tree.items[h]; ok {
			children = append(children, c)
		}
	}
	return children
}

// NumChildren returns the number of child items.
func (it *Item) NumChildren() int { return len(it.Children()) }

// Child returns the i-th child, or nil when out of range.
func (it *Item) Child(i int) *Item {
	children := it.Children()
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

// IsContainer reports whether the item has children to lay out.
func (it *Item) IsContainer() bool { return it.NumChildren() > 0 }

// SetSize resizes the item's component and box model. For a top-level item
// this is how the viewport is applied; a container overrides the size of its
// children on its next layout.
func (it *Item) SetSize(width, height float64) {
	it.component.SetBounds(it.component.Bounds().WithSize(width, height))
	it.box.SetSize(width, height)
}

func (it *Item) outerGeometry() outerGeometry {
	return outerGeometry{
		widthSpec:  it.box.WidthSpec(),
		heightSpec: it.box.HeightSpec(),
		width:      it.box.Width(),
		height:     it.box.Height(),
		margin:     it.box.Margin(),
		minimum:    it.box.MinimumBounds(),
		maximum:    it.box.MaximumBounds(),
		ideal:      it.box.IdealBounds(),
	}
}

func (it *Item) boxModelChanged(*box.Model) {
	t := it.tree
	t.begin()
	defer t.end()

	it.constraints.clear()
	t.markDirty(it)

	// Padding and border feed the item's own minimum and ideal size. Refresh
	// them now so the parent is queued before this item is swept; laid out
	// afterwards, the parent would find the item already done.
	if !it.layingOut {
		it.refreshMinimum()
	}

	outer := it.outerGeometry()
	if outer == it.outer {
		return
	}
	it.outer = outer
	if p := it.Parent(); p != nil {
		p.childGeometryChanged()
	}
}

func (it *Item) boxModelInvalidated(*box.Model) {
	t := it.tree
	t.begin()
	defer t.end()

	t.markDirty(it)
}

// childGeometryChanged is the parent's reaction to a child whose outer
// geometry changed. A parent laying the child out ignores it.
func (it *Item) childGeometryChanged() {
	if it.layingOut {
		return
	}
	it.refreshMinimum()
	it.box.Invalidate()
	it.tree.markDirty(it)
}

func (it *Item) documentChanged(e document.Event) {
	t := it.tree
	t.begin()
	defer t.end()

	switch e := e.(type) {
	case document.PropertyChanged:
		if boxKeys[e.Key] {
			return
		}
		it.constraints.clear()
		if e.Key == keyDisplay {
			it.engine.close()
			it.engine = newEngine(it.display.Get(), t.doc, it.node)
			// The item must hear about a property after the engine's
			// bindings have refreshed, so it watches again behind them.
			it.unwatch()
			it.unwatch = t.doc.Watch(it.node, it.documentChanged)
			for _, c := range it.Children() {
				c.constraints.clear()
			}
		}
		it.refreshMinimum()
		t.markDirty(it)
		if p := it.Parent(); p != nil {
			p.childGeometryChanged()
		}
	case document.ChildAdded:
		if _, ok := t.items[e.Child]; !ok {
			t.attach(e.Child, it)
		}
		it.childGeometryChanged()
	case document.ChildRemoved:
		t.detach(e.Child)
		it.childGeometryChanged()
	}
}

func (it *Item) componentMovedOrResized(_, resized bool) {
	if !resized || it.syncing || !it.IsTopLevel() {
		return
	}
	b := it.component.Bounds()
	it.box.SetSize(b.Width, b.Height)
}

// refreshMinimum records the minimum and ideal sizes of the item's content,
// including its padding and border, on the box model.
func (it *Item) refreshMinimum() {
	children := it.Children()
	minWidth, minHeight := it.engine.minimumContentSize(children)
	idealWidth, idealHeight := it.engine.idealContentSize(children)
	chrome := it.box.Padding().Add(it.box.Border())

	it.box.SetAutoMinimumSize(minWidth+chrome.Horizontal(), minHeight+chrome.Vertical())
	it.box.SetIdealSize(idealWidth+chrome.Horizontal(), idealHeight+chrome.Vertical())
}

// relayout runs the item's layout engine and applies the result to its
// children.
func (it *Item) relayout() {
	it.layingOut = true
	defer func() { it.layingOut = false }()

	it.refreshMinimum()

	children := it.Children()
	content := it.box.ContentBounds()
	rects := it.engine.layout(content, children)
	for i, c := range children {
		if i < len(rects) {
			c.applyBounds(rects[i])
		}
	}

	if it.IsTopLevel() {
		it.syncing = true
		it.component.SetBounds(it.component.Bounds().WithSize(it.box.Width(), it.box.Height()))
		it.syncing = false
	}
	it.box.Validate()

	it.tree.logger.Debug("relayout",
		zap.String("id", it.ID()),
		zap.Stringer("display", it.Display()),
		zap.Int("children", len(children)),
		zap.Stringer("content", content),
	)
	if it.tree.onRelayout != nil {
		it.tree.onRelayout(it)
	}
}

// applyBounds positions the item inside its parent.
func (it *Item) applyBounds(r Rect) {
	it.component.SetBounds(r)
	it.box.SetSize(r.Width, r.Height)
}
