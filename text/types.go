package text

import "math"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Rect is an axis-aligned box given by its corners. Used for glyph bounds
// reported by the font parser.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// RectF is a floating point rectangle given by origin and size.
type RectF struct {
	X, Y, W, H float64
}

// Right returns X + W.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns Y + H.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing r and o. An empty
// rectangle does not contribute.
func (r RectF) Union(o RectF) RectF {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return RectF{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// RectI is an integer rectangle given by origin and size.
type RectI struct {
	X, Y, W, H int
}

// Float converts r to a RectF.
func (r RectI) Float() RectF {
	return RectF{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}
