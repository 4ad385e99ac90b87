package text

// GlyphID is a unique identifier for a glyph within a font.
type GlyphID uint16

// ShapedGlyph is a glyph produced by a Shaper, positioned relative to the
// start of the shaped string.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the rune index in the shaped string that produced this
	// glyph. Ligatures report the first rune of the cluster.
	Cluster int

	// X is the horizontal pen position relative to the text origin.
	X float64

	// Y is the vertical offset relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
