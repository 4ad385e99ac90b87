package cache

import (
	"math"

	"github.com/gogpu/glyphcache/text"
)

// SingleLineKey identifies a single-line layout: the pen start and the
// baseline, in whole pixels.
type SingleLineKey struct {
	StartX    int
	BaselineY int
}

// MultiLineKey identifies a word-wrapped layout.
type MultiLineKey struct {
	SingleLineKey

	// MaxLineWidth is the wrap width in pixels.
	MaxLineWidth int

	// Justification places each line inside the wrap width.
	Justification text.Justification

	// LeadingBits is the IEEE 754 bit pattern of the extra line spacing.
	LeadingBits uint64
}

// NewMultiLineKey creates a MultiLineKey from layout parameters.
func NewMultiLineKey(startX, baselineY, maxLineWidth int, j text.Justification, leading float64) MultiLineKey {
	return MultiLineKey{
		SingleLineKey: SingleLineKey{StartX: startX, BaselineY: baselineY},
		MaxLineWidth:  maxLineWidth,
		Justification: j,
		LeadingBits:   math.Float64bits(leading),
	}
}

// AreaKey identifies a single line curtailed to a floating point area.
type AreaKey struct {
	// Area holds the bit patterns of X, Y, W and H.
	Area [4]uint64

	Justification text.Justification
	UseEllipsis   bool
}

// NewAreaKey creates an AreaKey from layout parameters.
func NewAreaKey(area text.RectF, j text.Justification, useEllipsis bool) AreaKey {
	return AreaKey{
		Area: [4]uint64{
			math.Float64bits(area.X),
			math.Float64bits(area.Y),
			math.Float64bits(area.W),
			math.Float64bits(area.H),
		},
		Justification: j,
		UseEllipsis:   useEllipsis,
	}
}

// FittedAreaKey identifies text fitted into an integer rectangle.
type FittedAreaKey struct {
	Area          text.RectI
	Justification text.Justification
	MaxLines      int

	// MinHScaleBits is the IEEE 754 bit pattern of the minimum horizontal
	// scale.
	MinHScaleBits uint64
}

// NewFittedAreaKey creates a FittedAreaKey from layout parameters.
func NewFittedAreaKey(area text.RectI, j text.Justification, maxLines int, minHScale float64) FittedAreaKey {
	return FittedAreaKey{
		Area:          area,
		Justification: j,
		MaxLines:      maxLines,
		MinHScaleBits: math.Float64bits(minHScale),
	}
}
