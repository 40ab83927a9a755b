// Package svg renders track draw lists into standalone SVG documents.
// The markup is built by hand; the mark vocabulary (rects, arcs, circles,
// centered labels) is small enough that a templating layer would add more
// surface than it removes.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/elena-krismer/nightingale/pkg/track"
)

// rowGap is the vertical spacing between track rows, in pixels.
const rowGap = 4

// Render writes an SVG document with one row per track, stacked top to
// bottom. An unready coordinate source produces a valid document with no
// marks.
func Render(w io.Writer, coords track.CoordinateSource, tracks []track.Track, width float64) error {
	var b strings.Builder

	height := 0.0
	for _, t := range tracks {
		height += t.Height() + rowGap
	}

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(width), num(height), num(width), num(height))
	b.WriteByte('\n')

	y := 0.0
	for _, t := range tracks {
		list := t.Draw(coords)
		fmt.Fprintf(&b, `<g data-track=%q transform="translate(0 %s)">`, t.Name(), num(y))
		b.WriteByte('\n')
		writeList(&b, list)
		b.WriteString("</g>\n")
		y += t.Height() + rowGap
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, list track.DrawList) {
	for _, r := range list.Rects {
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill=%q/>`,
			num(r.X), num(r.Y), num(r.W), num(r.H), r.Fill)
		b.WriteByte('\n')
	}
	for _, a := range list.Arcs {
		// Half-ellipse from X1 to X2 peaking Height above the baseline.
		rx := (a.X2 - a.X1) / 2
		fmt.Fprintf(b, `<path d="M %s %s A %s %s 0 0 1 %s %s" fill="none" stroke=%q/>`,
			num(a.X1), num(a.Y), num(rx), num(a.Height), num(a.X2), num(a.Y), a.Stroke)
		b.WriteByte('\n')
	}
	for _, c := range list.Circles {
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill=%q/>`,
			num(c.X), num(c.Y), num(c.R), c.Fill)
		b.WriteByte('\n')
	}
	for _, l := range list.Labels {
		fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="central" font-family="monospace" fill=%q>%s</text>`,
			num(l.X), num(l.Y), l.Fill, escape(l.Text))
		b.WriteByte('\n')
	}
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
