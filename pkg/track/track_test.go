package track

import (
	"strings"
	"testing"

	"github.com/elena-krismer/nightingale/pkg/data"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// fixedCoords is a CoordinateSource with a hardwired linear mapping,
// so track tests don't depend on engine behavior.
type fixedCoords struct {
	unit    float64
	visible viewport.Range
}

func (f fixedCoords) PositionToPixel(pos float64) float64 {
	if f.unit == viewport.NotReady {
		return viewport.NotReady
	}
	return (pos - f.visible.Start) * f.unit
}

func (f fixedCoords) SingleUnitWidth() float64     { return f.unit }
func (f fixedCoords) VisibleRange() viewport.Range { return f.visible }

var notReadyCoords = fixedCoords{unit: viewport.NotReady}

func TestEngineImplementsCoordinateSource(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 1000)
	var coords CoordinateSource = e
	if coords.SingleUnitWidth() == viewport.NotReady {
		t.Error("initialized engine should report a real unit width")
	}
}

func TestSequenceTrackLetters(t *testing.T) {
	tr := NewSequenceTrack("acdefghik")
	coords := fixedCoords{unit: 20, visible: viewport.Range{Start: 2, End: 5}}

	list := tr.Draw(coords)
	if len(list.Labels) != 4 {
		t.Fatalf("got %d labels, want 4 (positions 2..5)", len(list.Labels))
	}
	if list.Labels[0].Text != "C" {
		t.Errorf("first letter = %q, want C (uppercased)", list.Labels[0].Text)
	}
	if len(list.Rects) != 4 {
		t.Errorf("got %d cells, want 4", len(list.Rects))
	}
}

func TestSequenceTrackDense(t *testing.T) {
	tr := NewSequenceTrack(strings.Repeat("A", 1000))
	coords := fixedCoords{unit: 0.5, visible: viewport.Range{Start: 1, End: 1000}}

	list := tr.Draw(coords)
	if len(list.Labels) != 0 {
		t.Errorf("dense view should draw no letters, got %d", len(list.Labels))
	}
	if len(list.Rects) != 1 {
		t.Errorf("dense view should draw one band, got %d rects", len(list.Rects))
	}
}

func TestSequenceTrackNotReady(t *testing.T) {
	tr := NewSequenceTrack("ACDE")
	if list := tr.Draw(notReadyCoords); !list.Empty() {
		t.Error("unready coordinates should yield an empty draw list")
	}
}

func TestSequenceTrackClampsToResidues(t *testing.T) {
	tr := NewSequenceTrack("ACDE")
	coords := fixedCoords{unit: 20, visible: viewport.Range{Start: 3, End: 10}}

	list := tr.Draw(coords)
	// Only positions 3 and 4 exist.
	if len(list.Labels) != 2 {
		t.Errorf("got %d labels, want 2", len(list.Labels))
	}
}

func TestLinksTrackCullsOutOfView(t *testing.T) {
	cm := &data.ContactMap{Contacts: []data.Contact{{From: 2, To: 8}, {From: 50, To: 90}}}
	tr := NewLinksTrack(cm)
	coords := fixedCoords{unit: 10, visible: viewport.Range{Start: 1, End: 20}}

	list := tr.Draw(coords)
	if len(list.Arcs) != 1 {
		t.Fatalf("got %d arcs, want 1 (only the in-view contact)", len(list.Arcs))
	}
	arc := list.Arcs[0]
	if arc.X1 >= arc.X2 {
		t.Errorf("arc endpoints out of order: %v", arc)
	}
	if arc.Height <= 0 || arc.Height > tr.RowH {
		t.Errorf("arc height %v outside (0, %v]", arc.Height, tr.RowH)
	}
}

func TestLinksTrackNotReady(t *testing.T) {
	cm := &data.ContactMap{Contacts: []data.Contact{{From: 1, To: 2}}}
	if list := NewLinksTrack(cm).Draw(notReadyCoords); !list.Empty() {
		t.Error("unready coordinates should yield an empty draw list")
	}
}

func TestVariationTrackMarkers(t *testing.T) {
	vs := &data.VariantSet{Variants: []data.Variant{
		{Position: 5, Consequence: "missense"},
		{Position: 15, Consequence: "stop gained"},
		{Position: 200, Consequence: "missense"},
	}}
	tr := NewVariationTrack(vs)
	coords := fixedCoords{unit: 10, visible: viewport.Range{Start: 1, End: 100}}

	list := tr.Draw(coords)
	if len(list.Circles) != 2 {
		t.Fatalf("got %d markers, want 2 (position 200 out of view)", len(list.Circles))
	}
	if list.Circles[0].Fill == list.Circles[1].Fill {
		t.Error("different consequences should get different fills")
	}
}

func TestVariationTrackConsequenceFilter(t *testing.T) {
	vs := &data.VariantSet{Variants: []data.Variant{
		{Position: 5, Consequence: "missense"},
		{Position: 6, Consequence: "synonymous"},
	}}
	tr := NewVariationTrack(vs)
	tr.Consequence = "missense"
	coords := fixedCoords{unit: 10, visible: viewport.Range{Start: 1, End: 100}}

	if list := tr.Draw(coords); len(list.Circles) != 1 {
		t.Errorf("got %d markers, want 1 after filtering", len(list.Circles))
	}
}
