package boxflow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/boxflow/pkg/debug"
	"github.com/grindlemire/boxflow/pkg/document"
)

// Tree mirrors a document subtree as items and keeps it laid out.
//
// A Tree is not safe for concurrent use. It must be driven from the
// goroutine that mutates its document.
type Tree struct {
	doc        *document.Document
	root       *Item
	items      map[document.Handle]*Item
	logger     *zap.Logger
	factory    ComponentFactory
	onRelayout func(*Item)

	depth    int
	sweeping bool
	cascades int
	dirty    map[*Item]struct{}
	done     map[*Item]struct{}
}

// NewTree builds items for root and its descendants and lays them out.
func NewTree(doc *document.Document, root document.Handle, opts ...TreeOption) (*Tree, error) {
	if !doc.Valid(root) {
		return nil, fmt.Errorf("new tree: node %d: %w", root, document.ErrUnknownNode)
	}

	t := &Tree{
		doc:     doc,
		items:   make(map[document.Handle]*Item),
		logger:  debug.L().Named("tree"),
		factory: NewSurface,
		dirty:   make(map[*Item]struct{}),
		done:    make(map[*Item]struct{}),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	t.begin()
	t.root = t.attach(root, nil)
	t.end()

	t.logger.Debug("tree built", zap.String("root", t.root.ID()), zap.Int("items", len(t.items)))
	return t, nil
}

// Document returns the document the tree mirrors.
func (t *Tree) Document() *document.Document { return t.doc }

// Root returns the top-level item.
func (t *Tree) Root() *Item { return t.root }

// Item returns the item for node h.
func (t *Tree) Item(h document.Handle) (*Item, bool) {
	it, ok := t.items[h]
	return it, ok
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int { return len(t.items) }

// Cascades returns how many layout sweeps have run.
func (t *Tree) Cascades() int { return t.cascades }

// Walk visits every item depth-first, parents before children. Returning
// false from fn skips the item's subtree.
func (t *Tree) Walk(fn func(*Item) bool) {
	if t.root == nil {
		return
	}
	var walk func(*Item)
	walk = func(it *Item) {
		if !fn(it) {
			return
		}
		for _, c := range it.Children() {
			walk(c)
		}
	}
	walk(t.root)
}

// Relayout lays out every item again.
func (t *Tree) Relayout() {
	t.begin()
	defer t.end()
	t.Walk(func(it *Item) bool {
		t.markDirty(it)
		return true
	})
}

// Close releases every item and stops watching the document.
func (t *Tree) Close() {
	if t.root == nil {
		return
	}
	t.detach(t.root.node)
	t.root = nil
}

// attach creates items for h and its descendants, computes their minimum
// sizes deepest first and queues them for layout.
func (t *Tree) attach(h document.Handle, parent *Item) *Item {
	var created []*Item
	var build func(document.Handle, *Item) *Item
	build = func(h document.Handle, parent *Item) *Item {
		it := newItem(t, h, parent)
		t.items[h] = it
		created = append(created, it)
		for _, c := range t.doc.Children(h) {
			build(c, it)
		}
		return it
	}
	it := build(h, parent)

	for i := len(created) - 1; i >= 0; i-- {
		created[i].refreshMinimum()
		t.markDirty(created[i])
	}
	return it
}

// detach releases the items for h and its descendants.
func (t *Tree) detach(h document.Handle) {
	it, ok := t.items[h]
	if !ok {
		return
	}
	for _, c := range it.Children() {
		t.detach(c.node)
	}
	delete(t.items, h)
	delete(t.dirty, it)
	delete(t.done, it)
	it.close()
}
