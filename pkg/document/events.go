package document

// Event is delivered to watchers of a node.
type Event interface {
	isEvent()
}

// PropertyChanged reports that a key was set to a new value or removed.
type PropertyChanged struct {
	Node Handle
	Key  string
}

// ChildAdded reports that Child was inserted into Parent at Index.
type ChildAdded struct {
	Parent Handle
	Child  Handle
	Index  int
}

// ChildRemoved reports that Child was removed from Parent; Index is the
// position it held.
type ChildRemoved struct {
	Parent Handle
	Child  Handle
	Index  int
}

func (PropertyChanged) isEvent() {}
func (ChildAdded) isEvent()      {}
func (ChildRemoved) isEvent()    {}

// Unwatch is a handle to remove a watcher. Call it to prevent
// future callback invocations for the associated watcher.
type Unwatch func()

type watcher struct {
	fn     func(Event)
	active bool
}

// Watch registers fn to receive events about node h. Watchers run in
// registration order. Watching an unknown handle returns a no-op Unwatch.
func (d *Document) Watch(h Handle, fn func(Event)) Unwatch {
	n, ok := d.nodes[h]
	if !ok {
		return func() {}
	}
	w := &watcher{fn: fn, active: true}
	n.watchers = append(n.watchers, w)

	return func() {
		w.active = false
	}
}

// notify delivers e to the active watchers of h. The watcher list is
// snapshotted first so callbacks may add or remove watchers; a watcher
// removed during dispatch is not called afterwards.
func (d *Document) notify(h Handle, e Event) {
	n, ok := d.nodes[h]
	if !ok {
		return
	}

	active := make([]*watcher, 0, len(n.watchers))
	for _, w := range n.watchers {
		if w.active {
			active = append(active, w)
		}
	}
	n.watchers = active

	for _, w := range active {
		if w.active {
			w.fn(e)
		}
	}
}
