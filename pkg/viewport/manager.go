package viewport

// Manager keeps a set of engines showing the same sequence in sync: when
// one engine emits a visible-range change, the manager re-applies that
// range to every other registered engine. The anti-feedback latch on the
// receiving engines prevents echoes; the manager's own broadcasting flag
// collapses re-entrant broadcasts.
//
// This is the explicit replacement for bubbling DOM events: one writer,
// many readers, no event system required.
type Manager struct {
	engines      []*Engine
	unsubs       map[*Engine]func()
	broadcasting bool
	last         RangeChange
	listeners    map[int]Listener
	nextID       int
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		unsubs:    make(map[*Engine]func()),
		listeners: make(map[int]Listener),
	}
}

// Register adds an engine to the synchronized set and returns a function
// that removes it again. If the manager already has a known range, the new
// engine is brought in line immediately.
func (m *Manager) Register(e *Engine) func() {
	m.engines = append(m.engines, e)
	m.unsubs[e] = e.OnRangeChange(func(rc RangeChange) {
		m.broadcast(e, rc)
	})
	if m.last != (RangeChange{}) {
		_ = e.SetFromVisibleRange(m.last.DisplayStart, m.last.DisplayEnd)
	}
	return func() { m.unregister(e) }
}

func (m *Manager) unregister(e *Engine) {
	if unsub, ok := m.unsubs[e]; ok {
		unsub()
		delete(m.unsubs, e)
	}
	for i, other := range m.engines {
		if other == e {
			m.engines = append(m.engines[:i], m.engines[i+1:]...)
			return
		}
	}
}

// SetRange applies a visible range to every registered engine, e.g. from a
// go-to box or an API request. The first engine's derived (clamped) range
// becomes the broadcast value.
func (m *Manager) SetRange(start, end float64) error {
	for _, e := range m.engines {
		if err := e.SetFromVisibleRange(start, end); err != nil {
			return err
		}
	}
	if len(m.engines) > 0 {
		v := m.engines[0].VisibleRange()
		m.last = RangeChange{DisplayStart: v.Start, DisplayEnd: v.End}
		m.notify(m.last)
	}
	return nil
}

// Range returns the last synchronized range, or the zero value if no
// engine has emitted yet.
func (m *Manager) Range() RangeChange { return m.last }

// OnRangeChange registers a listener for synchronized range changes (after
// rebroadcast). Returns an unsubscribe function. The server uses this to
// feed its event stream.
func (m *Manager) OnRangeChange(fn Listener) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// broadcast rebroadcasts src's change to every other engine.
func (m *Manager) broadcast(src *Engine, rc RangeChange) {
	if m.broadcasting {
		return
	}
	m.broadcasting = true
	defer func() { m.broadcasting = false }()

	for _, e := range m.engines {
		if e == src {
			continue
		}
		// Receiving engines hold their latch for this call, so the
		// rebroadcast cannot come back around.
		_ = e.SetFromVisibleRange(rc.DisplayStart, rc.DisplayEnd)
	}
	m.last = rc
	m.notify(rc)
}

func (m *Manager) notify(rc RangeChange) {
	fns := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(rc)
	}
}
