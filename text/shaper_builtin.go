package text

// BuiltinShaper maps runes to glyphs one to one using the font's cmap,
// advances, and kern table. It covers Latin, Cyrillic, Greek, CJK and other
// scripts that need no contextual substitution.
//
// For ligatures, mark positioning, or Arabic and Indic scripts use
// GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct {
	// DisableKerning skips kern-table lookups.
	DisableKerning bool
}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	var prev uint16
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		if cluster > 0 && !s.DisableKerning {
			x += parsed.GlyphKern(prev, gid, size)
		}
		advance := parsed.GlyphAdvance(gid, size)
		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
		prev = gid
	}
	return result
}
