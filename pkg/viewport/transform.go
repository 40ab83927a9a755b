package viewport

// Transform is the current pan/zoom state: a scale factor K applied to
// origin-scale pixels followed by a translation X, i.e.
//
//	screen = K*px + X
//
// K is bounded below by 1 (no zoom-out past the full view) and X is
// bounded so the visible window never leaves [0, drawWidth] at the current
// scale.
type Transform struct {
	K float64
	X float64
}

// Identity returns the untransformed view (full sequence visible).
func Identity() Transform { return Transform{K: 1} }

// Apply maps an origin-scale pixel offset to a screen pixel offset.
func (t Transform) Apply(px float64) float64 { return t.K*px + t.X }

// Invert maps a screen pixel offset back to an origin-scale offset.
// K is never below 1, so the division is safe.
func (t Transform) Invert(sx float64) float64 { return (sx - t.X) / t.K }

// maxZoom is the largest usable scale factor for a sequence of n
// positions: zooming further would show fewer than two positions.
func maxZoom(n float64) float64 {
	if n < 2 {
		return 1
	}
	return n / 2
}

// clampTransform forces t into valid bounds for the given draw width and
// sequence length. Violating inputs are clamped, never rejected.
func clampTransform(t Transform, drawWidth, n float64) Transform {
	if t.K < 1 {
		t.K = 1
	}
	if m := maxZoom(n); t.K > m {
		t.K = m
	}
	// Translate extent: Invert(0) >= 0 and Invert(drawWidth) <= drawWidth.
	if t.X > 0 {
		t.X = 0
	}
	if lo := drawWidth * (1 - t.K); t.X < lo {
		t.X = lo
	}
	return t
}
