package track

import (
	"math"
	"strings"
)

// letterThreshold is the minimum unit width, in pixels, at which residue
// letters are still readable. Below it the sequence track degrades to
// alternating background cells.
const letterThreshold = 8

// SequenceTrack draws the residue string. At high zoom each visible
// residue gets a background cell and a centered letter; zoomed out it
// shows only a baseline band.
type SequenceTrack struct {
	Residues string
	RowH     float64
}

// NewSequenceTrack creates a sequence track with the default row height.
func NewSequenceTrack(residues string) *SequenceTrack {
	return &SequenceTrack{Residues: strings.ToUpper(residues), RowH: 20}
}

func (t *SequenceTrack) Name() string    { return "sequence" }
func (t *SequenceTrack) Height() float64 { return t.RowH }

func (t *SequenceTrack) Draw(coords CoordinateSource) DrawList {
	var list DrawList
	if !ready(coords) || len(t.Residues) == 0 {
		return list
	}

	unit := coords.SingleUnitWidth()
	if unit < letterThreshold {
		// Too dense for letters; a single band marks the track extent.
		v := coords.VisibleRange()
		x0 := coords.PositionToPixel(v.Start)
		x1 := coords.PositionToPixel(v.End) + unit
		list.Rects = append(list.Rects, Rect{
			X: x0, Y: t.RowH / 4, W: x1 - x0, H: t.RowH / 2, Fill: "#d8d8d8",
		})
		return list
	}

	v := coords.VisibleRange()
	first := int(math.Floor(v.Start))
	last := int(math.Ceil(v.End))
	if first < 1 {
		first = 1
	}
	if last > len(t.Residues) {
		last = len(t.Residues)
	}

	for pos := first; pos <= last; pos++ {
		x := coords.PositionToPixel(float64(pos))
		fill := "#ffffff"
		if pos%2 == 0 {
			fill = "#f0f0f0"
		}
		list.Rects = append(list.Rects, Rect{X: x, Y: 0, W: unit, H: t.RowH, Fill: fill})
		list.Labels = append(list.Labels, Label{
			X:    x + unit/2,
			Y:    t.RowH / 2,
			Text: string(t.Residues[pos-1]),
			Fill: "#333333",
		})
	}
	return list
}

var _ Track = (*SequenceTrack)(nil)
