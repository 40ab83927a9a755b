package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/elena-krismer/nightingale/pkg/data"
	"github.com/elena-krismer/nightingale/pkg/track"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

func TestRender(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 100)
	tracks := []track.Track{
		track.NewSequenceTrack("ACDEFGHIKL"),
		track.NewLinksTrack(&data.ContactMap{Contacts: []data.Contact{{From: 10, To: 60}}}),
	}

	var buf bytes.Buffer
	if err := Render(&buf, e, tracks, 500); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 500 {
		t.Errorf("image width = %d, want 500", bounds.Dx())
	}
	wantH := 0
	for _, tr := range tracks {
		wantH += int(tr.Height()) + rowGap
	}
	if bounds.Dy() != wantH {
		t.Errorf("image height = %d, want %d", bounds.Dy(), wantH)
	}
}

func TestRenderUnready(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 0)

	var buf bytes.Buffer
	err := Render(&buf, e, []track.Track{track.NewSequenceTrack("ACDE")}, 500)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("unready engine should still produce a valid blank PNG: %v", err)
	}
}

func TestRenderNoTracks(t *testing.T) {
	e := viewport.New(viewport.Dimensions{Width: 500}, 100)

	var buf bytes.Buffer
	if err := Render(&buf, e, nil, 500); err != nil {
		t.Fatalf("Render with no tracks: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("empty render should still be a valid PNG: %v", err)
	}
}
