// Package document is the property document consumed by the layout engine:
// a tree of nodes, each with an ordered map of named scalar properties and an
// ordered list of children.
//
// Nodes live in an arena owned by a Document and are addressed by stable
// Handles. Parent/child relationships are stored as handles, so a detached or
// destroyed node never leaves a dangling pointer behind.
//
// A Document is not safe for concurrent use. All mutation is expected to
// happen on one goroutine, and every notification is delivered synchronously
// before the mutating call returns.
package document

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/grindlemire/boxflow/pkg/debug"
)

// Handle addresses a node within its Document.
type Handle uint32

// NoHandle is the zero Handle; it never names a node.
const NoHandle Handle = 0

var (
	// ErrUnknownNode is returned for handles that do not name a live node.
	ErrUnknownNode = errors.New("unknown node")
	// ErrCycle is returned when a node would become its own ancestor.
	ErrCycle = errors.New("node would become its own ancestor")
)

type property struct {
	key   string
	value Var
}

type node struct {
	kind     string
	props    []property
	children []Handle
	parent   Handle
	watchers []*watcher
}

// Document is an arena of property nodes.
type Document struct {
	nodes map[Handle]*node
	next  Handle
}

// New creates an empty document.
func New() *Document {
	return &Document{nodes: make(map[Handle]*node)}
}

// CreateNode allocates a detached node of the given kind.
func (d *Document) CreateNode(kind string) Handle {
	d.next++
	d.nodes[d.next] = &node{kind: kind}
	return d.next
}

// Valid reports whether h names a live node.
func (d *Document) Valid(h Handle) bool {
	_, ok := d.nodes[h]
	return ok
}

// Kind returns the node's kind, or "" for unknown handles.
func (d *Document) Kind(h Handle) string {
	if n, ok := d.nodes[h]; ok {
		return n.kind
	}
	return ""
}

// Get returns the value stored under key.
func (d *Document) Get(h Handle, key string) (Var, bool) {
	n, ok := d.nodes[h]
	if !ok {
		return Var{}, false
	}
	for _, p := range n.props {
		if p.key == key {
			return p.value, true
		}
	}
	return Var{}, false
}

// Has reports whether key is set on the node.
func (d *Document) Has(h Handle, key string) bool {
	_, ok := d.Get(h, key)
	return ok
}

// Keys returns the node's property keys in insertion order.
func (d *Document) Keys(h Handle) []string {
	n, ok := d.nodes[h]
	if !ok {
		return nil
	}
	keys := make([]string, len(n.props))
	for i, p := range n.props {
		keys[i] = p.key
	}
	return keys
}

// Set stores value under key. Watchers are notified only when the stored
// value actually changes.
func (d *Document) Set(h Handle, key string, value Var) error {
	n, ok := d.nodes[h]
	if !ok {
		return fmt.Errorf("set %q on node %d: %w", key, h, ErrUnknownNode)
	}

	i := slices.IndexFunc(n.props, func(p property) bool { return p.key == key })
	switch {
	case i >= 0 && n.props[i].value.Equal(value):
		return nil
	case i >= 0:
		n.props[i].value = value
	default:
		n.props = append(n.props, property{key: key, value: value})
	}

	debug.Log("document: node %d %s = %q", h, key, value.String())
	d.notify(h, PropertyChanged{Node: h, Key: key})
	return nil
}

// Remove deletes key from the node. Removing an absent key is a no-op.
func (d *Document) Remove(h Handle, key string) error {
	n, ok := d.nodes[h]
	if !ok {
		return fmt.Errorf("remove %q on node %d: %w", key, h, ErrUnknownNode)
	}
	i := slices.IndexFunc(n.props, func(p property) bool { return p.key == key })
	if i < 0 {
		return nil
	}
	n.props = slices.Delete(n.props, i, i+1)
	d.notify(h, PropertyChanged{Node: h, Key: key})
	return nil
}

// Parent returns the parent handle, or NoHandle for top-level nodes.
func (d *Document) Parent(h Handle) Handle {
	if n, ok := d.nodes[h]; ok {
		return n.parent
	}
	return NoHandle
}

// Children returns a copy of the node's children in order.
func (d *Document) Children(h Handle) []Handle {
	if n, ok := d.nodes[h]; ok {
		return slices.Clone(n.children)
	}
	return nil
}

// NumChildren returns the number of children of the node.
func (d *Document) NumChildren(h Handle) int {
	if n, ok := d.nodes[h]; ok {
		return len(n.children)
	}
	return 0
}

// ChildIndex returns the node's position within its parent, or -1.
func (d *Document) ChildIndex(h Handle) int {
	n, ok := d.nodes[h]
	if !ok || n.parent == NoHandle {
		return -1
	}
	return slices.Index(d.nodes[n.parent].children, h)
}

// Depth returns the number of ancestors of the node.
func (d *Document) Depth(h Handle) int {
	depth := 0
	for p := d.Parent(h); p != NoHandle; p = d.Parent(p) {
		depth++
	}
	return depth
}

// Append adds child as the last child of parent.
func (d *Document) Append(parent, child Handle) error {
	return d.Insert(parent, child, -1)
}

// Insert adds child to parent at index. A negative or out-of-range index
// appends. A child that already has a parent is detached first.
func (d *Document) Insert(parent, child Handle, index int) error {
	p, ok := d.nodes[parent]
	if !ok {
		return fmt.Errorf("insert into node %d: %w", parent, ErrUnknownNode)
	}
	c, ok := d.nodes[child]
	if !ok {
		return fmt.Errorf("insert node %d: %w", child, ErrUnknownNode)
	}
	for a := parent; a != NoHandle; a = d.Parent(a) {
		if a == child {
			return fmt.Errorf("insert node %d into %d: %w", child, parent, ErrCycle)
		}
	}

	if c.parent != NoHandle {
		if err := d.Detach(child); err != nil {
			return err
		}
	}

	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent

	d.notify(parent, ChildAdded{Parent: parent, Child: child, Index: index})
	return nil
}

// Detach removes child from its parent, keeping the node alive.
func (d *Document) Detach(child Handle) error {
	c, ok := d.nodes[child]
	if !ok {
		return fmt.Errorf("detach node %d: %w", child, ErrUnknownNode)
	}
	if c.parent == NoHandle {
		return nil
	}
	parent := c.parent
	p := d.nodes[parent]
	index := slices.Index(p.children, child)
	p.children = slices.Delete(p.children, index, index+1)
	c.parent = NoHandle

	d.notify(parent, ChildRemoved{Parent: parent, Child: child, Index: index})
	return nil
}

// Destroy detaches the node and frees it along with its whole subtree.
func (d *Document) Destroy(h Handle) error {
	if !d.Valid(h) {
		return fmt.Errorf("destroy node %d: %w", h, ErrUnknownNode)
	}
	if err := d.Detach(h); err != nil {
		return err
	}
	var free func(Handle)
	free = func(x Handle) {
		for _, c := range d.nodes[x].children {
			free(c)
		}
		delete(d.nodes, x)
	}
	free(h)
	return nil
}

// Walk visits h and its descendants depth-first, parents before children.
// Returning false from fn skips the node's subtree.
func (d *Document) Walk(h Handle, fn func(Handle) bool) {
	if !d.Valid(h) || !fn(h) {
		return
	}
	for _, c := range d.Children(h) {
		d.Walk(c, fn)
	}
}

// ID returns the node's "id" property, or a handle-derived identifier.
func (d *Document) ID(h Handle) string {
	if v, ok := d.Get(h, "id"); ok && v.String() != "" {
		return v.String()
	}
	return "#" + strconv.FormatUint(uint64(h), 10)
}
