package text

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont on top of sfnt.Font. Layout uses
// unhinted outlines so that positions scale linearly with size.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) Name() string     { return f.name(sfnt.NameIDFamily) }
func (f *ximageParsedFont) FullName() string { return f.name(sfnt.NameIDFull) }

func (f *ximageParsedFont) name(id sfnt.NameID) string {
	s, err := f.font.Name(nil, id)
	if err != nil {
		return ""
	}
	return s
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(advance)
}

// GlyphKern implements ParsedFont.GlyphKern. Fonts without a kern table
// report zero.
func (f *ximageParsedFont) GlyphKern(left, right uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports Descent as a positive distance below the baseline.
	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	return FontMetrics{
		Ascent:  ascent,
		Descent: -descent,
		LineGap: math.Max(0, fromFixed(m.Height)-ascent-descent),
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
