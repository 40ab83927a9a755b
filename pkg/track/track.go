// Package track implements the read-only track widgets: sequence, links,
// and variation. Tracks consume the viewport engine's coordinate accessors
// and produce renderer-agnostic draw lists; they never mutate the engine.
package track

import (
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// CoordinateSource is the coordinate mapping a track reads from. The
// viewport engine implements it; tests substitute fixed mappings.
type CoordinateSource interface {
	// PositionToPixel maps a 1-based sequence position to an absolute
	// x coordinate. Returns viewport.NotReady before the first layout.
	PositionToPixel(pos float64) float64

	// SingleUnitWidth is the current on-screen width of one position.
	// Returns viewport.NotReady before the first layout.
	SingleUnitWidth() float64

	// VisibleRange is the currently visible [start, end] in positions.
	VisibleRange() viewport.Range
}

// Engine satisfies CoordinateSource.
var _ CoordinateSource = (*viewport.Engine)(nil)

// Track produces a draw list for the current coordinate state.
type Track interface {
	// Name identifies the track in sessions and render output.
	Name() string

	// Height is the vertical space the track occupies, in pixels.
	Height() float64

	// Draw builds the track's marks against the given coordinates.
	// An unready coordinate source yields an empty list.
	Draw(coords CoordinateSource) DrawList
}

// DrawList is the renderer-agnostic output of a track. Coordinates are
// absolute pixels within the track's own row; the renderer applies the
// row's vertical offset.
type DrawList struct {
	Rects   []Rect
	Arcs    []Arc
	Circles []Circle
	Labels  []Label
}

// Empty reports whether the list contains no marks.
func (d DrawList) Empty() bool {
	return len(d.Rects) == 0 && len(d.Arcs) == 0 && len(d.Circles) == 0 && len(d.Labels) == 0
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// Arc is a half-ellipse connecting two x positions along a baseline.
type Arc struct {
	X1, X2 float64
	Y      float64 // baseline
	Height float64 // peak height above the baseline
	Stroke string
}

// Circle is a filled circle marker.
type Circle struct {
	X, Y, R float64
	Fill    string
}

// Label is a centered text mark.
type Label struct {
	X, Y float64
	Text string
	Fill string
}

// ready reports whether the coordinate source has produced a layout.
func ready(coords CoordinateSource) bool {
	return coords.SingleUnitWidth() != viewport.NotReady
}

// center returns the x pixel of the middle of position pos.
func center(coords CoordinateSource, pos float64) float64 {
	return coords.PositionToPixel(pos) + coords.SingleUnitWidth()/2
}
