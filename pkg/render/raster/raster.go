// Package raster rasterizes track draw lists to PNG using fogleman/gg.
// It draws the same mark vocabulary as the SVG renderer so snapshots are
// interchangeable between formats.
package raster

import (
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/elena-krismer/nightingale/pkg/track"
)

// rowGap is the vertical spacing between track rows, in pixels.
const rowGap = 4

// Render draws one row per track, stacked top to bottom, and encodes the
// result as PNG. An unready coordinate source produces a blank image.
func Render(w io.Writer, coords track.CoordinateSource, tracks []track.Track, width float64) error {
	height := 0.0
	for _, t := range tracks {
		height += t.Height() + rowGap
	}
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	dc := gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	dc.SetHexColor("#ffffff")
	dc.Clear()

	y := 0.0
	for _, t := range tracks {
		drawList(dc, t.Draw(coords), y)
		y += t.Height() + rowGap
	}
	return dc.EncodePNG(w)
}

func drawList(dc *gg.Context, list track.DrawList, yOff float64) {
	for _, r := range list.Rects {
		dc.SetHexColor(r.Fill)
		dc.DrawRectangle(r.X, yOff+r.Y, r.W, r.H)
		dc.Fill()
	}
	for _, a := range list.Arcs {
		cx := (a.X1 + a.X2) / 2
		rx := (a.X2 - a.X1) / 2
		dc.SetHexColor(a.Stroke)
		dc.SetLineWidth(1)
		dc.DrawEllipticalArc(cx, yOff+a.Y, rx, a.Height, math.Pi, 2*math.Pi)
		dc.Stroke()
	}
	for _, c := range list.Circles {
		dc.SetHexColor(c.Fill)
		dc.DrawCircle(c.X, yOff+c.Y, c.R)
		dc.Fill()
	}
	for _, l := range list.Labels {
		dc.SetHexColor(l.Fill)
		dc.DrawStringAnchored(l.Text, l.X, yOff+l.Y, 0.5, 0.5)
	}
}
