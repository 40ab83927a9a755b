package track

import (
	"github.com/elena-krismer/nightingale/pkg/data"
)

// consequenceColors maps variant consequence types to marker fills.
// Unknown consequences fall back to grey.
var consequenceColors = map[string]string{
	"missense":    "#e6a23c",
	"stop gained": "#d9534f",
	"synonymous":  "#5cb85c",
}

// VariationTrack plots per-residue variant markers. An optional
// consequence filter narrows the plotted set.
type VariationTrack struct {
	Set         *data.VariantSet
	Consequence string
	RowH        float64
}

// NewVariationTrack creates a variation track with the default row height.
func NewVariationTrack(vs *data.VariantSet) *VariationTrack {
	return &VariationTrack{Set: vs, RowH: 40}
}

func (t *VariationTrack) Name() string    { return "variation" }
func (t *VariationTrack) Height() float64 { return t.RowH }

func (t *VariationTrack) Draw(coords CoordinateSource) DrawList {
	var list DrawList
	if !ready(coords) || t.Set == nil {
		return list
	}

	v := coords.VisibleRange()
	unit := coords.SingleUnitWidth()
	r := unit / 3
	if r < 2 {
		r = 2
	}
	if r > t.RowH/4 {
		r = t.RowH / 4
	}

	for _, variant := range t.Set.FilterConsequence(t.Consequence) {
		p := float64(variant.Position)
		if p < v.Start || p > v.End {
			continue
		}
		fill, ok := consequenceColors[variant.Consequence]
		if !ok {
			fill = "#999999"
		}
		list.Circles = append(list.Circles, Circle{
			X:    center(coords, p),
			Y:    t.RowH / 2,
			R:    r,
			Fill: fill,
		})
	}
	return list
}

var _ Track = (*VariationTrack)(nil)
