package viewport

// NotReady is the sentinel returned by coordinate accessors before the
// engine has a usable scale (zero sequence length or zero draw width).
// Dependent widgets run on every frame and must treat it as "skip drawing",
// not as an error.
const NotReady = -1

// Dimensions describes the drawable area of a track widget in pixels.
type Dimensions struct {
	Width       float64
	Height      float64
	MarginLeft  float64
	MarginRight float64
}

// DrawWidth returns the horizontal extent available for sequence content:
// the widget width minus both margins. Never negative.
func (d Dimensions) DrawWidth() float64 {
	w := d.Width - d.MarginLeft - d.MarginRight
	if w < 0 {
		return 0
	}
	return w
}

// Range is a window of 1-based sequence positions, inclusive on both ends.
type Range struct {
	Start float64
	End   float64
}

// Span returns End - Start.
func (r Range) Span() float64 { return r.End - r.Start }

// Scale is a linear, monotonic, invertible map from sequence position to
// pixel offset. The domain is [1, length+1] so the last position's full
// width is representable; the range is [0, drawWidth].
//
// Scale is a value type: copies are independent snapshots, which is what
// makes the origin-scale cache trivially immutable.
type Scale struct {
	length int
	width  float64
}

// NewScale builds the position→pixel map for a sequence of the given
// length rendered into drawWidth pixels. Degenerate inputs produce a valid
// but meaningless map that reports Valid() == false.
func NewScale(length int, drawWidth float64) Scale {
	if length < 0 {
		length = 0
	}
	if drawWidth < 0 {
		drawWidth = 0
	}
	return Scale{length: length, width: drawWidth}
}

// Valid reports whether the scale maps a non-empty domain onto a non-empty
// pixel range.
func (s Scale) Valid() bool { return s.length > 0 && s.width > 0 }

// UnitWidth returns the pixel width of a single sequence position, or
// NotReady for a degenerate scale.
func (s Scale) UnitWidth() float64 {
	if !s.Valid() {
		return NotReady
	}
	return s.width / float64(s.length)
}

// Pixel maps a 1-based sequence position to its pixel offset within the
// draw area. Position 1 maps to 0 and position length+1 maps to drawWidth.
func (s Scale) Pixel(pos float64) float64 {
	if !s.Valid() {
		return 0
	}
	return (pos - 1) * s.width / float64(s.length)
}

// Position is the inverse of Pixel.
func (s Scale) Position(px float64) float64 {
	if !s.Valid() {
		return 1
	}
	return 1 + px*float64(s.length)/s.width
}
