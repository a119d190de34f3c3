package box

// Listener receives box model notifications.
type Listener interface {
	// BoxModelChanged is called after the model recomputed its geometry.
	BoxModelChanged(m *Model)
	// BoxModelInvalidated is called once each time the model goes from
	// valid to invalid.
	BoxModelInvalidated(m *Model)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
// Register it by pointer so it can later be removed.
type ListenerFuncs struct {
	Changed     func(m *Model)
	Invalidated func(m *Model)
}

// BoxModelChanged implements Listener.
func (f *ListenerFuncs) BoxModelChanged(m *Model) {
	if f.Changed != nil {
		f.Changed(m)
	}
}

// BoxModelInvalidated implements Listener.
func (f *ListenerFuncs) BoxModelInvalidated(m *Model) {
	if f.Invalidated != nil {
		f.Invalidated(m)
	}
}

type registration struct {
	l      Listener
	active bool
}

// AddListener registers l. Listeners run in registration order.
func (m *Model) AddListener(l Listener) {
	m.listeners = append(m.listeners, &registration{l: l, active: true})
}

// RemoveListener unregisters l. A listener removed while a notification is
// being delivered is not called afterwards.
func (m *Model) RemoveListener(l Listener) {
	for _, r := range m.listeners {
		if r.active && r.l == l {
			r.active = false
		}
	}
}

func (m *Model) activeListeners() []*registration {
	active := make([]*registration, 0, len(m.listeners))
	for _, r := range m.listeners {
		if r.active {
			active = append(active, r)
		}
	}
	m.listeners = active
	return active
}

func (m *Model) notifyChanged() {
	for _, r := range m.activeListeners() {
		if r.active {
			r.l.BoxModelChanged(m)
		}
	}
}

func (m *Model) notifyInvalidated() {
	for _, r := range m.activeListeners() {
		if r.active {
			r.l.BoxModelInvalidated(m)
		}
	}
}
