package text

import (
	"bytes"
	"sort"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphcache"
)

// GoTextShaper provides HarfBuzz-level shaping using go-text/typesetting:
// ligatures, GPOS kerning, mark positioning, right-to-left and complex
// scripts. Install it with SetShaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
//
// GoTextShaper is safe for concurrent use. Parsed font.Font objects are
// cached per FontSource; font.Face and HarfbuzzShaper are not concurrency
// safe, so a Face is created per call and shapers are pooled.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}
	source := face.Source()
	if source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(source)
	if err != nil {
		glyphcache.Logger().Warn("gotext: font parse failed",
			"font", source.Name(), "err", err)
		return nil
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(face.Direction()),
		Face:      font.NewFace(goTextFont),
		Size:      fixed.Int26_6(face.Size() * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertGlyphs(output.Glyphs)
}

// getOrCreateFont returns the cached go-text font for source, parsing it on
// first use.
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	f, ok := s.fontCache[source]
	s.mu.RUnlock()
	if ok {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	data := source.Data()
	if data == nil {
		return nil, ErrClosedSource
	}
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = parsed.Font
	return parsed.Font, nil
}

// RemoveSource drops the cached parsed font for source, e.g. after Close.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, source)
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs puts HarfBuzz output into logical order and lays the pen
// positions out along that order. Right-to-left output arrives in visual
// order, so sorting by cluster is required before positioning.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	ordered := make([]shaping.Glyph, len(glyphs))
	copy(ordered, glyphs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TextIndex() < ordered[j].TextIndex()
	})

	result := make([]ShapedGlyph, len(ordered))
	var x float64
	for i, g := range ordered {
		adv := fromFixed(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids fit in uint16
			Cluster:  g.TextIndex(),
			X:        x + fromFixed(g.XOffset),
			Y:        -fromFixed(g.YOffset),
			XAdvance: adv,
		}
		x += adv
	}
	return result
}
