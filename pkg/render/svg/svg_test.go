package svg

import (
	"strings"
	"testing"

	"github.com/elena-krismer/nightingale/pkg/data"
	"github.com/elena-krismer/nightingale/pkg/track"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

func TestRender(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 10)
	tracks := []track.Track{
		track.NewSequenceTrack("ACDEFGHIKL"),
		track.NewVariationTrack(&data.VariantSet{Variants: []data.Variant{
			{Position: 3, Consequence: "missense"},
		}}),
	}

	var b strings.Builder
	if err := Render(&b, e, tracks, 500); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatal("output is not a complete SVG document")
	}
	for _, want := range []string{
		`data-track="sequence"`,
		`data-track="variation"`,
		`<text`,
		`<circle`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}
}

func TestRenderUnready(t *testing.T) {
	// Zero-length sequence: engine reports the sentinel, tracks skip.
	e := viewport.New(viewport.Dimensions{Width: 500}, 0)

	var b strings.Builder
	err := Render(&b, e, []track.Track{track.NewSequenceTrack("ACDE")}, 500)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()
	if strings.Contains(out, "<rect") || strings.Contains(out, "<text") {
		t.Error("unready engine should produce a document with no marks")
	}
}

func TestRenderArcs(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 100)
	cm := &data.ContactMap{Contacts: []data.Contact{{From: 10, To: 60}}}

	var b strings.Builder
	if err := Render(&b, e, []track.Track{track.NewLinksTrack(cm)}, 500); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(b.String(), "<path") {
		t.Error("links track should emit an arc path")
	}
}

func TestRenderEscapesLabels(t *testing.T) {
	if got := escape("a<b&c"); got != "a&lt;b&amp;c" {
		t.Errorf("escape = %q", got)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{2.25, "2.25"},
		{500, "500"},
		{0.125, "0.13"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
