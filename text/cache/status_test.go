package cache

import (
	"testing"

	"github.com/gogpu/glyphcache/text"
	"golang.org/x/image/font/gofont/gobold"
)

func TestArrangementCache_Status(t *testing.T) {
	c, _, _ := newManualCache(t)
	f := testFont(t)

	c.SingleLineText(f, "a", 0, 0)
	c.SingleLineText(f, "b", 0, 0)
	c.MultiLineText(f, "a", 0, 0, 10, text.Left, 0)
	c.FittedText(f, "a", text.RectI{W: 10, H: 10}, text.Left, 1, 0.7)
	c.FittedText(f, "a", text.RectI{W: 20, H: 10}, text.Left, 1, 0.7)
	c.FittedText(f, "a", text.RectI{W: 30, H: 10}, text.Left, 1, 0.7)

	want := "GlyphArrangementCache status: singleLineTexts: 2. multiLineTexts: 1. texts: 0. fittedTexts: 3"
	if got := c.Status(); got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}

func TestArrangementCache_Stats(t *testing.T) {
	c, _, clock := newManualCache(t)
	regular := testFont(t)
	bold := text.NewFont(loadSource(t, gobold.TTF), 16)

	if st := c.Stats(); st != (Stats{}) {
		t.Errorf("Stats() on new cache = %+v, want zero", st)
	}

	c.SingleLineText(regular, "a", 0, 0)
	c.SingleLineText(regular, "a", 0, 0)
	c.SingleLineText(regular, "a", 0, 0)
	c.Text(bold, "a", text.RectF{W: 10, H: 10}, text.Left, false)

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 2 {
		t.Errorf("hits/misses = %d/%d, want 2/2", st.Hits, st.Misses)
	}
	if st.Len() != 2 || st.Fonts != 2 {
		t.Errorf("Len()/Fonts = %d/%d, want 2/2", st.Len(), st.Fonts)
	}
	if got := st.HitRate(); got != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", got)
	}
	if !st.Armed {
		t.Error("Armed = false, want true")
	}

	clock.Advance(DefaultInterval)
	st = c.Stats()
	if st.Len() != 0 || st.Clears != 1 || st.Armed {
		t.Errorf("Stats() after eviction = %+v", st)
	}
	if st.Hits != 2 {
		t.Errorf("Hits reset by clear: %d", st.Hits)
	}
}

func TestStats_HitRate(t *testing.T) {
	tests := []struct {
		name string
		s    Stats
		want float64
	}{
		{"no queries", Stats{}, 0},
		{"all misses", Stats{Misses: 4}, 0},
		{"all hits", Stats{Hits: 3}, 1},
		{"quarter", Stats{Hits: 1, Misses: 3}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
