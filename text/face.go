package text

// Face represents a font face at a specific size.
// It is a lightweight object created from a FontSource and is safe for
// concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// without kerning.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Direction returns the text direction for this face.
	Direction() Direction

	// Language returns the language tag used for shaping.
	Language() string

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// Metrics holds font metrics scaled to a face size. All values are positive
// distances.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns ascent + descent, the height of one line without gap.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed := f.source.Parsed()
	if parsed == nil {
		return Metrics{}
	}
	fm := parsed.Metrics(f.size)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{Ascent: fm.Ascent, Descent: descent, LineGap: fm.LineGap}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed := f.source.Parsed()
	if parsed == nil {
		return 0
	}
	total := 0.0
	for _, r := range text {
		total += parsed.GlyphAdvance(parsed.GlyphIndex(r), f.size)
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	parsed := f.source.Parsed()
	return parsed != nil && parsed.GlyphIndex(r) != 0
}

func (f *sourceFace) Direction() Direction { return f.config.direction }
func (f *sourceFace) Language() string     { return f.config.language }
func (f *sourceFace) Source() *FontSource  { return f.source }
func (f *sourceFace) Size() float64        { return f.size }
func (f *sourceFace) private()             {}
