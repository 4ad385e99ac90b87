package cache

import (
	"fmt"

	"github.com/gogpu/glyphcache/text"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	// Entry counts per family.
	SingleLineTexts int
	MultiLineTexts  int
	Texts           int
	FittedTexts     int

	// Fonts is the number of distinct fonts with at least one entry.
	Fonts int

	Hits   uint64
	Misses uint64

	// Clears counts wholesale clears, including timer-driven ones.
	Clears uint64

	// Armed reports whether the eviction timer is running.
	Armed bool
}

// Len returns the total number of entries.
func (s Stats) Len() int {
	return s.SingleLineTexts + s.MultiLineTexts + s.Texts + s.FittedTexts
}

// HitRate returns hits / (hits + misses), or 0 before the first query.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Status returns the entry count of every family in a single line:
//
//	GlyphArrangementCache status: singleLineTexts: 1. multiLineTexts: 0. texts: 0. fittedTexts: 0
func (c *ArrangementCache) Status() string {
	c.checkOwner()
	return fmt.Sprintf("GlyphArrangementCache status: singleLineTexts: %d. multiLineTexts: %d. texts: %d. fittedTexts: %d",
		c.singleLine.len(), c.multiLine.len(), c.texts.len(), c.fitted.len())
}

// Stats returns the current counters. Like Status it does not deliver
// pending timers.
func (c *ArrangementCache) Stats() Stats {
	c.checkOwner()

	fonts := make(map[text.FontKey]struct{})
	c.singleLine.addFonts(fonts)
	c.multiLine.addFonts(fonts)
	c.texts.addFonts(fonts)
	c.fitted.addFonts(fonts)

	return Stats{
		SingleLineTexts: c.singleLine.len(),
		MultiLineTexts:  c.multiLine.len(),
		Texts:           c.texts.len(),
		FittedTexts:     c.fitted.len(),
		Fonts:           len(fonts),
		Hits:            c.hits,
		Misses:          c.misses,
		Clears:          c.clears,
		Armed:           c.timer != nil,
	}
}
