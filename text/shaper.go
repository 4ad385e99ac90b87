package text

import "sync"

// Shaper converts text to positioned glyphs.
//   - BuiltinShaper: golang.org/x/image/font metrics plus kern-table pairs
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
//
// Shape returns glyphs in logical order (ascending Cluster), with X
// increasing along that order. Layout code reorders right-to-left runs.
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size().
	Shape(text string, face Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape and by every Arrangement
// layout operation. Pass nil to reset to the default BuiltinShaper.
//
// Arrangements already cached were produced by the previous shaper; clear
// any ArrangementCache after switching.
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape converts text to positioned glyphs with the global shaper.
func Shape(text string, face Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}
