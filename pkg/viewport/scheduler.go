package viewport

// FrameScheduler abstracts the rendering frame clock so the debounce logic
// is testable without a real frame source. Implementations must run
// scheduled callbacks on the engine's own execution thread.
type FrameScheduler interface {
	// Schedule arranges for fn to run on the next frame. It is called at
	// most once per frame by the ApplyScheduler.
	Schedule(fn func())
}

// ImmediateFrames runs callbacks synchronously. It is the default frame
// clock: with it, every structural change settles immediately and no
// debouncing occurs.
type ImmediateFrames struct{}

// Schedule runs fn now.
func (ImmediateFrames) Schedule(fn func()) { fn() }

// ManualFrames queues callbacks until Fire is called. The TUI uses it with
// its tick loop as the frame source; tests use it to verify coalescing.
type ManualFrames struct {
	queue []func()
}

// Schedule queues fn for the next Fire.
func (m *ManualFrames) Schedule(fn func()) { m.queue = append(m.queue, fn) }

// Fire runs all queued callbacks, in order, and clears the queue.
// Callbacks scheduled during Fire run on the following Fire.
func (m *ManualFrames) Fire() {
	q := m.queue
	m.queue = nil
	for _, fn := range q {
		fn()
	}
}

// Pending reports whether any callback is queued.
func (m *ManualFrames) Pending() bool { return len(m.queue) > 0 }

// ApplyScheduler coalesces recompute requests into exactly one apply per
// frame. The first RequestApply in a frame schedules the flush and sets
// the pending flag; requests during the pending window are absorbed, not
// queued.
type ApplyScheduler struct {
	frames  FrameScheduler
	apply   func()
	pending bool
}

// NewApplyScheduler creates a scheduler that invokes apply at most once
// per frame of the given clock.
func NewApplyScheduler(frames FrameScheduler, apply func()) *ApplyScheduler {
	return &ApplyScheduler{frames: frames, apply: apply}
}

// RequestApply asks for a recomputation. Any number of calls within one
// frame result in exactly one apply before the next frame.
func (s *ApplyScheduler) RequestApply() {
	if s.pending {
		return
	}
	s.pending = true
	s.frames.Schedule(s.flush)
}

// Pending reports whether an apply is scheduled but has not yet run.
func (s *ApplyScheduler) Pending() bool { return s.pending }

func (s *ApplyScheduler) flush() {
	s.pending = false
	s.apply()
}
