package text

import (
	"fmt"
	"math"
	"strings"
)

// Style is a set of font style flags.
type Style uint8

const (
	// Bold selects a bold weight.
	Bold Style = 1 << iota
	// Italic selects an italic or oblique cut.
	Italic
	// Underlined requests an underline when painting.
	Underlined
)

// Plain is the empty style.
const Plain Style = 0

// String returns the flags joined by "|", or "Plain".
func (s Style) String() string {
	if s == Plain {
		return "Plain"
	}
	var parts []string
	if s&Bold != 0 {
		parts = append(parts, "Bold")
	}
	if s&Italic != 0 {
		parts = append(parts, "Italic")
	}
	if s&Underlined != 0 {
		parts = append(parts, "Underlined")
	}
	return strings.Join(parts, "|")
}

// Font describes how text should be set: which typeface, how big, with which
// style and horizontal squeeze. It is a small value type that is cheap to
// copy and compare.
//
// Style flags are part of the font's identity. The source is expected to be
// the matching cut already (a bold FontSource for Bold); layout never
// synthesizes styles.
type Font struct {
	// Source is the typeface. A nil source lays out nothing.
	Source *FontSource

	// Height is the font size in pixels per em.
	Height float64

	// Style holds the style flags.
	Style Style

	// HorizontalScale squeezes or stretches glyphs horizontally.
	// Zero means 1.
	HorizontalScale float64
}

// NewFont returns a plain Font with the given source and height.
func NewFont(source *FontSource, height float64) Font {
	return Font{Source: source, Height: height}
}

// WithHeight returns a copy of f with a new height.
func (f Font) WithHeight(height float64) Font {
	f.Height = height
	return f
}

// WithStyle returns a copy of f with new style flags.
func (f Font) WithStyle(style Style) Font {
	f.Style = style
	return f
}

// WithHorizontalScale returns a copy of f with a new horizontal scale.
func (f Font) WithHorizontalScale(scale float64) Font {
	f.HorizontalScale = scale
	return f
}

// Scale returns the effective horizontal scale.
func (f Font) Scale() float64 {
	if f.HorizontalScale == 0 {
		return 1
	}
	return f.HorizontalScale
}

// TypefaceName returns the family name of the source, or "".
func (f Font) TypefaceName() string {
	if f.Source == nil {
		return ""
	}
	return f.Source.Name()
}

// Face returns a Face for shaping at f.Height, or nil when f has no source.
func (f Font) Face(opts ...FaceOption) Face {
	if f.Source == nil {
		return nil
	}
	return f.Source.Face(f.Height, opts...)
}

// Metrics returns the vertical metrics at f.Height.
func (f Font) Metrics() Metrics {
	face := f.Face()
	if face == nil {
		return Metrics{}
	}
	return face.Metrics()
}

// LineHeight returns ascent + descent, the baseline-to-baseline distance of
// tightly stacked lines.
func (f Font) LineHeight() float64 {
	return f.Metrics().Height()
}

// String implements fmt.Stringer.
func (f Font) String() string {
	return fmt.Sprintf("%s %gpx %s x%g", f.TypefaceName(), f.Height, f.Style, f.Scale())
}

// FontKey is the comparable identity of a Font. Floats are stored as IEEE 754
// bit patterns so that keys compare exactly, including NaN payloads and the
// sign of zero.
type FontKey struct {
	source *FontSource
	name   string
	height uint64
	scale  uint64
	style  Style
}

// Key returns the identity of f.
func (f Font) Key() FontKey {
	return FontKey{
		source: f.Source,
		name:   f.TypefaceName(),
		height: math.Float64bits(f.Height),
		scale:  math.Float64bits(f.Scale()),
		style:  f.Style,
	}
}
