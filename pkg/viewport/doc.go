// Package viewport implements the coordinate and zoom-synchronization
// engine shared by all nightingale track widgets.
//
// # Overview
//
// Every track in a nightingale view (sequence letters, contact arcs,
// variation plots) draws against the same horizontal axis: a mapping from
// 1-based sequence position to pixel offset. This package owns that
// mapping. It reacts to pan/zoom gestures, recomputes the mapping when the
// sequence length or widget size changes, and propagates the resulting
// visible range to sibling widgets without feedback loops.
//
// # Architecture
//
// The engine is explicit composition rather than layered inheritance:
//
//   - [Scale]: linear position→pixel map over domain [1, length+1]
//   - [Transform]: the current zoom {k ≥ 1, translate}, applied to a
//     frozen origin scale so repeated zooms never compound rounding error
//   - [Engine]: holds dimensions, sequence length, origin scale snapshot,
//     transform, and visible range; reconciles on every change
//   - [ApplyScheduler]: coalesces near-simultaneous structural changes
//     into one recomputation per frame
//   - [Manager]: rebroadcasts visible-range changes between registered
//     engines (one writer, many readers)
//
// # Reconciliation
//
// On every transform change the engine derives the visible sequence range
// by applying the transform to the origin scale, clamps it to
// [1, length] with a minimum span of one position (at least two displayed
// positions), and notifies listeners. A programmatic
// [Engine.SetFromVisibleRange] call sets an anti-feedback latch for its
// synchronous duration so the resulting change is not echoed back to the
// caller that requested it.
//
// # Structural changes
//
// Changing the sequence length or dimensions triggers the strictly ordered
// sequence: rebuild scale → refresh origin snapshot → re-apply the current
// visible range against the new origin → reconcile and notify. Multiple
// changes within one frame coalesce through the scheduler.
//
// # Error handling
//
// The engine has no fatal paths. Degenerate inputs (zero length, zero
// width, empty ranges) clamp to the nearest valid state; accessors on an
// engine that is not ready yet return the [NotReady] sentinel. The one
// reported error is a malformed (NaN/Inf) visible-range request, which
// indicates a collaborator bug.
//
// # Concurrency
//
// An Engine is single-threaded by design: all mutation happens on the
// caller's event loop (a bubbletea program, an HTTP handler guarded by its
// own lock). The engine itself takes no locks.
package viewport
