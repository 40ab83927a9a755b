package track

import (
	"github.com/elena-krismer/nightingale/pkg/data"
)

// LinksTrack draws contact arcs between residue pairs. Only contacts with
// both endpoints inside the visible range are drawn; arc height scales
// with the sequence distance the contact spans.
type LinksTrack struct {
	Map  *data.ContactMap
	RowH float64
}

// NewLinksTrack creates a links track with the default row height.
func NewLinksTrack(cm *data.ContactMap) *LinksTrack {
	return &LinksTrack{Map: cm, RowH: 60}
}

func (t *LinksTrack) Name() string    { return "links" }
func (t *LinksTrack) Height() float64 { return t.RowH }

func (t *LinksTrack) Draw(coords CoordinateSource) DrawList {
	var list DrawList
	if !ready(coords) || t.Map == nil || len(t.Map.Contacts) == 0 {
		return list
	}

	v := coords.VisibleRange()
	visible := t.Map.InRange(v.Start, v.End)
	if len(visible) == 0 {
		return list
	}

	span := v.Span()
	if span <= 0 {
		return list
	}
	for _, c := range visible {
		h := t.RowH * float64(c.To-c.From) / span
		if h > t.RowH {
			h = t.RowH
		}
		list.Arcs = append(list.Arcs, Arc{
			X1:     center(coords, float64(c.From)),
			X2:     center(coords, float64(c.To)),
			Y:      t.RowH,
			Height: h,
			Stroke: "#7a6fb0",
		})
	}
	return list
}

var _ Track = (*LinksTrack)(nil)
