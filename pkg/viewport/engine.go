package viewport

import (
	"math"

	charmlog "github.com/charmbracelet/log"

	"github.com/elena-krismer/nightingale/pkg/errors"
	"github.com/elena-krismer/nightingale/pkg/observability"
)

// RangeChange is the payload delivered to range listeners. Positions are
// 1-based; DisplayEnd is inclusive.
type RangeChange struct {
	DisplayStart float64
	DisplayEnd   float64
}

// Listener receives visible-range change notifications.
type Listener func(RangeChange)

// Gestures is the mutation surface exposed to a rendering surface. It is
// the only path by which user input changes the transform.
type Gestures interface {
	// Pan shifts the view by dx screen pixels.
	Pan(dx float64)

	// Zoom multiplies the scale factor by factor, keeping the sequence
	// position under anchor (a draw-area pixel offset) fixed on screen.
	Zoom(factor, anchor float64)
}

// Surface is a rendering surface that can deliver gestures. It may attach
// after the engine is constructed; see [Engine.AttachSurface].
type Surface interface {
	Bind(g Gestures)
}

// Engine owns the mapping from sequence position to pixel position for one
// widget. See the package documentation for the full protocol.
type Engine struct {
	dims   Dimensions
	length int

	// origin is the frozen scale snapshot taken at the last structural
	// change. All zoom math runs against it, never against the live
	// (already-transformed) view, so repeated relative transforms never
	// drift.
	origin    Scale
	transform Transform
	visible   Range

	// reapplying is the anti-feedback latch: true only during the
	// synchronous window of a programmatic SetFromVisibleRange. Nested
	// programmatic calls collapse instead of stacking.
	reapplying bool

	listeners map[int]Listener
	nextID    int

	surface Surface
	sched   *ApplyScheduler
	logger  *charmlog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFrames sets the frame clock used to debounce structural rebuilds.
// The default is [ImmediateFrames], which recomputes synchronously.
func WithFrames(f FrameScheduler) Option {
	return func(e *Engine) { e.sched = NewApplyScheduler(f, e.applyStructural) }
}

// WithLogger attaches a debug logger to the engine.
func WithLogger(l *charmlog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine for a sequence of length positions rendered into
// dims. The initial visible range is the full sequence with an identity
// transform. Degenerate inputs are accepted; the engine stays in the
// not-ready state until both length and draw width are positive.
func New(dims Dimensions, length int, opts ...Option) *Engine {
	if length < 0 {
		length = 0
	}
	e := &Engine{
		dims:      dims,
		length:    length,
		transform: Identity(),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched == nil {
		e.sched = NewApplyScheduler(ImmediateFrames{}, e.applyStructural)
	}
	e.rebuild()
	return e
}

// SequenceLength returns the current sequence length.
func (e *Engine) SequenceLength() int { return e.length }

// Dimensions returns the current widget dimensions.
func (e *Engine) Dimensions() Dimensions { return e.dims }

// VisibleRange returns the currently displayed window of sequence
// positions.
func (e *Engine) VisibleRange() Range { return e.visible }

// Transform returns the current zoom transform.
func (e *Engine) Transform() Transform { return e.transform }

// SetSequenceLength schedules a structural rebuild for a new sequence
// length. Negative lengths clamp to zero. The rebuild is debounced: width
// and length changing together settle in a single recomputation.
func (e *Engine) SetSequenceLength(n int) {
	if n < 0 {
		n = 0
	}
	if n == e.length {
		return
	}
	e.length = n
	e.sched.RequestApply()
}

// SetDimensions schedules a structural rebuild for new widget dimensions.
func (e *Engine) SetDimensions(d Dimensions) {
	if d == e.dims {
		return
	}
	e.dims = d
	e.sched.RequestApply()
}

// RequestApply schedules a structural rebuild without changing any
// attribute. Multiple requests within one frame coalesce.
func (e *Engine) RequestApply() { e.sched.RequestApply() }

// applyStructural runs the strictly ordered rebuild sequence: rebuild the
// scale, refresh the origin snapshot, re-apply the current visible range
// against the new origin, reconcile and notify. It is the scheduler's
// flush target.
func (e *Engine) applyStructural() {
	prev := e.visible
	e.rebuild()
	if !e.origin.Valid() {
		return
	}
	if prev.Span() <= 0 {
		// Coming out of the degenerate state there is no prior view to
		// preserve; rebuild() already chose the full sequence.
		prev = e.visible
	}
	// Re-derive against the new origin. The latch stays clear: dependent
	// widgets must learn about a rebuild (the range may have been
	// clamped), unlike an externally requested range which they already
	// know.
	e.applyRange(prev.Start, prev.End)
	if e.logger != nil {
		e.logger.Debug("viewport rebuilt",
			"length", e.length, "drawWidth", e.dims.DrawWidth(),
			"start", e.visible.Start, "end", e.visible.End)
	}
	observability.Viewport().OnRebuild(e.length, e.dims.DrawWidth())
}

// rebuild refreshes the origin scale snapshot from the current length and
// dimensions and resets degenerate state.
func (e *Engine) rebuild() {
	e.origin = NewScale(e.length, e.dims.DrawWidth())
	if !e.origin.Valid() {
		e.transform = Identity()
		e.visible = Range{}
		return
	}
	if e.visible.Span() <= 0 {
		// First usable rebuild: show the full sequence.
		e.visible = Range{Start: 1, End: float64(e.length)}
		e.transform = Identity()
	}
}

// SetFromVisibleRange programmatically shows the window [start, end]. The
// anti-feedback latch is held for the duration of the call, so no change
// notification is emitted: this call is usually itself triggered by a
// sibling widget's range change and must not be echoed back.
//
// Out-of-bounds values are clamped. Malformed (NaN or Inf) values are the
// one reported error, since they indicate a collaborator bug rather than a
// data edge.
func (e *Engine) SetFromVisibleRange(start, end float64) error {
	if malformed(start) || malformed(end) {
		return errors.New(errors.ErrCodeInvalidRange,
			"visible range must be finite, got [%v, %v]", start, end)
	}
	if e.reapplying {
		// Nested programmatic call: collapse.
		return nil
	}
	if !e.origin.Valid() {
		return nil
	}
	e.reapplying = true
	defer func() { e.reapplying = false }()
	e.applyRange(start, end)
	return nil
}

// applyRange clamps the requested window, derives the transform from the
// origin scale, and reconciles. Callers control notification through the
// latch.
func (e *Engine) applyRange(start, end float64) {
	n := float64(e.length)
	if start < 1 {
		start = 1
	}
	if end > n {
		end = n
	}
	if end < start+1 {
		// Never show fewer than two positions.
		end = start + 1
		if end > n {
			end = n
			start = math.Max(1, end-1)
		}
	}

	k := n / (1 + end - start)
	if k < 1 {
		k = 1
	}
	t := Transform{K: k, X: -k * e.origin.Pixel(start)}
	e.transform = clampTransform(t, e.dims.DrawWidth(), n)
	e.reconcile()
}

// Pan shifts the view by dx screen pixels. Part of the gesture path.
func (e *Engine) Pan(dx float64) {
	if !e.origin.Valid() || malformed(dx) {
		return
	}
	t := e.transform
	t.X += dx
	e.transform = clampTransform(t, e.dims.DrawWidth(), float64(e.length))
	e.reconcile()
}

// Zoom multiplies the scale factor by factor, keeping the sequence
// position under anchor fixed on screen. Part of the gesture path.
func (e *Engine) Zoom(factor, anchor float64) {
	if !e.origin.Valid() || malformed(factor) || malformed(anchor) || factor <= 0 {
		return
	}
	n := float64(e.length)
	dw := e.dims.DrawWidth()

	t := e.transform
	p := t.Invert(anchor)
	k := t.K * factor
	if k < 1 {
		k = 1
	}
	if m := maxZoom(n); k > m {
		k = m
	}
	e.transform = clampTransform(Transform{K: k, X: anchor - k*p}, dw, n)
	e.reconcile()
}

// reconcile recomputes the visible range by applying the transform to the
// origin scale and, unless the anti-feedback latch is set, notifies
// listeners.
func (e *Engine) reconcile() {
	n := float64(e.length)
	dw := e.dims.DrawWidth()

	start := e.origin.Position(e.transform.Invert(0))
	rawEnd := e.origin.Position(e.transform.Invert(dw)) - 1

	if start < 1 {
		start = 1
	}
	if start > n {
		start = n
	}
	end := rawEnd
	if end > n {
		end = n
	}
	// Intentional floor: at least two displayed positions.
	if end < start+1 {
		end = math.Min(n, start+1)
	}

	e.visible = Range{Start: start, End: end}
	if e.reapplying {
		return
	}
	e.emit()
}

func (e *Engine) emit() {
	rc := RangeChange{DisplayStart: e.visible.Start, DisplayEnd: e.visible.End}
	observability.Viewport().OnRangeChange(rc.DisplayStart, rc.DisplayEnd)
	for _, fn := range e.listenerSnapshot() {
		fn(rc)
	}
}

// listenerSnapshot copies the listener set so a listener may unsubscribe
// (or a Manager may rebroadcast) during delivery.
func (e *Engine) listenerSnapshot() []Listener {
	out := make([]Listener, 0, len(e.listeners))
	for _, fn := range e.listeners {
		out = append(out, fn)
	}
	return out
}

// OnRangeChange registers a listener for visible-range changes and returns
// an unsubscribe function.
func (e *Engine) OnRangeChange(fn Listener) func() {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

// AttachSurface binds a rendering surface to the engine. The surface may
// connect after construction; binding registers the engine as the
// surface's gesture target and immediately re-applies the current
// transform so visual state is never lost. Re-application is latched, so
// attaching does not notify listeners.
func (e *Engine) AttachSurface(s Surface) {
	e.surface = s
	if s == nil {
		return
	}
	s.Bind(e)
	if !e.origin.Valid() || e.reapplying {
		return
	}
	e.reapplying = true
	defer func() { e.reapplying = false }()
	e.applyRange(e.visible.Start, e.visible.End)
}

// PositionToPixel maps a 1-based sequence position to a widget pixel
// offset, including the left margin. Returns NotReady until the engine has
// a usable scale.
func (e *Engine) PositionToPixel(pos float64) float64 {
	if !e.origin.Valid() {
		return NotReady
	}
	return e.dims.MarginLeft + e.transform.Apply(e.origin.Pixel(pos))
}

// PixelToPosition maps a widget pixel offset back to a sequence position.
// Returns NotReady until the engine has a usable scale.
func (e *Engine) PixelToPosition(px float64) float64 {
	if !e.origin.Valid() {
		return NotReady
	}
	return e.origin.Position(e.transform.Invert(px - e.dims.MarginLeft))
}

// SingleUnitWidth returns the pixel width of one sequence position at the
// current zoom, or NotReady before initialization. Dependent widgets use
// it to size marks.
func (e *Engine) SingleUnitWidth() float64 {
	if !e.origin.Valid() {
		return NotReady
	}
	return e.origin.UnitWidth() * e.transform.K
}

func malformed(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
