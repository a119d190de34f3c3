// Package property provides typed, cached accessors over single keys of a
// property document.
//
// A Binding[T] watches one key of one node, converts the stored value with a
// Converter and caches the result. Callbacks registered with OnChange fire
// synchronously, and only when the converted value actually changes:
//
//	width := property.New(doc, h, "width", layout.Auto(), property.Length)
//	width.OnChange(func(l layout.Length) {
//	    fmt.Println("width is now", l)
//	})
//	width.Set(layout.Pixels(120)) // callback runs before Set returns
//	width.Set(layout.Pixels(120)) // no-op, nothing fires
//
// Bindings are not safe for concurrent use; like the document they observe
// they belong to a single goroutine.
package property

import (
	"strings"

	"github.com/grindlemire/boxflow/pkg/debug"
	"github.com/grindlemire/boxflow/pkg/document"
)

// Unbind is a handle to remove a callback. Call it to prevent
// future callback invocations for the associated callback.
type Unbind func()

type callback[T comparable] struct {
	fn     func(T)
	active bool
}

// Binding is a typed view of one property of one document node.
type Binding[T comparable] struct {
	doc     *document.Document
	node    document.Handle
	key     string
	def     T
	conv    Converter[T]
	value   T
	exists  bool
	auto    bool
	cbs     []*callback[T]
	unwatch document.Unwatch
}

// New binds key on node h. def is used while the key is absent or holds a
// value conv cannot parse.
func New[T comparable](doc *document.Document, h document.Handle, key string, def T, conv Converter[T]) *Binding[T] {
	b := &Binding[T]{doc: doc, node: h, key: key, def: def, conv: conv}
	b.load()
	b.unwatch = doc.Watch(h, func(e document.Event) {
		if pc, ok := e.(document.PropertyChanged); ok && pc.Key == key {
			b.refresh()
		}
	})
	return b
}

// Key returns the bound property name.
func (b *Binding[T]) Key() string { return b.key }

// Node returns the bound node.
func (b *Binding[T]) Node() document.Handle { return b.node }

// Get returns the cached, converted value.
func (b *Binding[T]) Get() T { return b.value }

// Default returns the value used when the key is absent or malformed.
func (b *Binding[T]) Default() T { return b.def }

// Exists reports whether the key is present on the node.
func (b *Binding[T]) Exists() bool { return b.exists }

// IsAuto reports whether the stored text is "auto". An absent key counts as
// auto when the default renders as "auto".
func (b *Binding[T]) IsAuto() bool { return b.auto }

// Set writes v through to the document. Callbacks run before Set returns
// when the converted value differs from the cached one.
func (b *Binding[T]) Set(v T) error {
	return b.doc.Set(b.node, b.key, b.conv.Format(v))
}

// Clear removes the key, reverting the binding to its default.
func (b *Binding[T]) Clear() error {
	return b.doc.Remove(b.node, b.key)
}

// OnChange registers fn to receive every new converted value.
func (b *Binding[T]) OnChange(fn func(T)) Unbind {
	cb := &callback[T]{fn: fn, active: true}
	b.cbs = append(b.cbs, cb)
	return func() {
		cb.active = false
	}
}

// Close stops watching the document and drops every callback.
func (b *Binding[T]) Close() {
	if b.unwatch != nil {
		b.unwatch()
		b.unwatch = nil
	}
	b.cbs = nil
}

func (b *Binding[T]) load() {
	raw, ok := b.doc.Get(b.node, b.key)
	b.exists = ok
	if !ok {
		b.value = b.def
		b.auto = isAutoText(b.conv.Format(b.def).String())
		return
	}
	b.auto = isAutoText(raw.String())
	if v, ok := b.conv.Parse(raw); ok {
		b.value = v
	} else {
		b.value = b.def
	}
}

func (b *Binding[T]) refresh() {
	old := b.value
	b.load()
	if b.value == old {
		return
	}
	debug.Log("property: %s on node %d changed", b.key, b.node)

	active := make([]*callback[T], 0, len(b.cbs))
	for _, cb := range b.cbs {
		if cb.active {
			active = append(active, cb)
		}
	}
	b.cbs = active

	v := b.value
	for _, cb := range active {
		if cb.active {
			cb.fn(v)
		}
	}
}

func isAutoText(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "auto")
}
