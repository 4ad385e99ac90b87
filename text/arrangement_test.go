package text

import (
	"math"
	"testing"
)

// fixedWidthFont installs a shaper that gives every rune an advance of 10
// pixels and returns a 16px font. Metrics come from Go Regular.
func fixedWidthFont(t *testing.T) Font {
	t.Helper()
	original := GetShaper()
	t.Cleanup(func() { SetShaper(original) })
	SetShaper(&mockShaper{width: 10})
	return NewFont(loadTestFont(t), 16)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func xs(a *Arrangement) []float64 {
	out := make([]float64, a.Len())
	for i := range out {
		out[i] = a.Glyph(i).X
	}
	return out
}

func baselines(a *Arrangement) []float64 {
	var out []float64
	for i := range a.Len() {
		y := a.Glyph(i).Y
		if len(out) == 0 || out[len(out)-1] != y {
			out = append(out, y)
		}
	}
	return out
}

func TestAddLineOfText(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "abc", 5, 100)

	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	m := font.Metrics()
	for i, want := range []float64{5, 15, 25} {
		g := a.Glyph(i)
		if g.X != want || g.Y != 100 || g.Width != 10 {
			t.Errorf("glyph %d at (%v, %v) width %v, want (%v, 100) width 10", i, g.X, g.Y, g.Width, want)
		}
		if g.Cluster != i || g.Rune != rune("abc"[i]) {
			t.Errorf("glyph %d: cluster %d rune %q", i, g.Cluster, g.Rune)
		}
		if g.Ascent != m.Ascent || g.Descent != m.Descent {
			t.Errorf("glyph %d: ascent/descent %v/%v, want %v/%v", i, g.Ascent, g.Descent, m.Ascent, m.Descent)
		}
		if g.Font != font {
			t.Errorf("glyph %d: font %v, want %v", i, g.Font, font)
		}
	}
	if a.String() != "abc" {
		t.Errorf("String() = %q, want abc", a.String())
	}
}

func TestAddLineOfTextHardBreaks(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "a\r\nb", 0, 0)

	if a.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", a.Len())
	}
	want := []float64{0, 10, 10, 10}
	for i, x := range xs(a) {
		if x != want[i] {
			t.Errorf("glyph %d: X = %v, want %v", i, x, want[i])
		}
	}
	for _, i := range []int{1, 2} {
		g := a.Glyph(i)
		if !g.Whitespace || g.Width != 0 {
			t.Errorf("break glyph %d: whitespace %v width %v", i, g.Whitespace, g.Width)
		}
	}
}

func TestAddLineOfTextHorizontalScale(t *testing.T) {
	font := fixedWidthFont(t).WithHorizontalScale(0.5)
	a := NewArrangement()
	a.AddLineOfText(font, "abc", 0, 0)

	for i, want := range []float64{0, 5, 10} {
		if g := a.Glyph(i); g.X != want || g.Width != 5 {
			t.Errorf("glyph %d: X %v width %v, want %v width 5", i, g.X, g.Width, want)
		}
	}
}

func TestAddLineOfTextRTLRun(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "ab אבג", 0, 0)

	if a.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", a.Len())
	}
	prev := -1.0
	for i, x := range xs(a) {
		if x <= prev {
			t.Errorf("glyph %d: X = %v not increasing", i, x)
		}
		prev = x
	}
	// The Hebrew run is stored left to right, so its last letter comes
	// first.
	if r := a.Glyph(a.Len() - 1).Rune; r != 'א' {
		t.Errorf("rightmost glyph = %q, want %q", r, 'א')
	}
}

func TestAddLineOfTextNoSource(t *testing.T) {
	a := NewArrangement()
	a.AddLineOfText(NewFont(nil, 12), "abc", 0, 0)
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestArrangementBounds(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, " a b ", 0, 50)

	m := font.Metrics()
	withWS := a.Bounds(0, -1, true)
	if withWS.X != 0 || withWS.W != 50 {
		t.Errorf("bounds with whitespace = %+v, want X 0 W 50", withWS)
	}
	if !near(withWS.Y, 50-m.Ascent) || !near(withWS.H, m.Ascent+m.Descent) {
		t.Errorf("bounds Y/H = %v/%v, want %v/%v", withWS.Y, withWS.H, 50-m.Ascent, m.Ascent+m.Descent)
	}

	noWS := a.Bounds(0, -1, false)
	if noWS.X != 10 || noWS.W != 30 {
		t.Errorf("bounds without whitespace = %+v, want X 10 W 30", noWS)
	}

	if got := a.Bounds(3, 1, true); got.X != 30 || got.W != 10 {
		t.Errorf("bounds of one glyph = %+v", got)
	}
	if got := a.Bounds(0, 1, false); got != (RectF{}) {
		t.Errorf("bounds of a lone space = %+v, want empty", got)
	}
}

func TestArrangementRangeHelpers(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "abcd", 0, 0)

	a.MoveRangeOfGlyphs(1, 2, 5, 7)
	want := []float64{0, 15, 25, 30}
	for i, x := range xs(a) {
		if x != want[i] {
			t.Errorf("after move: glyph %d X = %v, want %v", i, x, want[i])
		}
	}
	if a.Glyph(1).Y != 7 || a.Glyph(3).Y != 0 {
		t.Error("move touched glyphs outside the range")
	}

	a.StretchRangeOfGlyphs(1, -1, 0.5)
	want = []float64{0, 15, 20, 22.5}
	for i, x := range xs(a) {
		if !near(x, want[i]) {
			t.Errorf("after stretch: glyph %d X = %v, want %v", i, x, want[i])
		}
	}
	if a.Glyph(2).Width != 5 || a.Glyph(0).Width != 10 {
		t.Error("stretch did not scale widths of the range only")
	}

	a.RemoveRangeOfGlyphs(1, 2)
	if a.String() != "ad" {
		t.Errorf("after remove: %q, want ad", a.String())
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("after Clear: Len() = %d", a.Len())
	}
}

func TestArrangementEqualAndGlyphsCopy(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "ab", 0, 0)
	b := NewArrangement()
	b.AddLineOfText(font, "ab", 0, 0)

	if !a.Equal(b) {
		t.Error("identical arrangements are not Equal")
	}

	glyphs := a.Glyphs()
	glyphs[0].X = 99
	if a.Glyph(0).X == 99 {
		t.Error("Glyphs() returned the internal slice")
	}

	b.MoveRangeOfGlyphs(0, -1, 1, 0)
	if a.Equal(b) {
		t.Error("moved arrangement still Equal")
	}
	var nilA *Arrangement
	if !nilA.Equal(NewArrangement()) || nilA.Len() != 0 {
		t.Error("nil arrangement should equal an empty one")
	}
}

func TestJustifyGlyphs(t *testing.T) {
	font := fixedWidthFont(t)
	m := font.Metrics()
	lineH := m.Ascent + m.Descent

	tests := []struct {
		name        string
		j           Justification
		left, top   float64
	}{
		{"top left", TopLeft, 0, 0},
		{"top right", TopRight, 80, 0},
		{"centred", Centred, 40, (40 - lineH) / 2},
		{"bottom left", BottomLeft, 0, 40 - lineH},
		{"default", 0, 0, (40 - lineH) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArrangement()
			a.AddLineOfText(font, "ab", 300, 300)
			a.JustifyGlyphs(0, -1, 0, 0, 100, 40, tt.j)

			bb := a.Bounds(0, -1, true)
			if !near(bb.X, tt.left) || !near(bb.Y, tt.top) {
				t.Errorf("bounds origin = (%v, %v), want (%v, %v)", bb.X, bb.Y, tt.left, tt.top)
			}
		})
	}
}

func TestJustifyGlyphsIgnoresTrailingSpaceWhenCentring(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddLineOfText(font, "ab  ", 0, 0)
	a.JustifyGlyphs(0, -1, 0, 0, 100, 40, Centred)

	if bb := a.Bounds(0, -1, false); !near(bb.X, 40) {
		t.Errorf("visible glyphs start at %v, want 40", bb.X)
	}
}

func TestAddCurtailedLineOfText(t *testing.T) {
	font := fixedWidthFont(t)

	tests := []struct {
		name        string
		text        string
		maxWidth    float64
		useEllipsis bool
		want        string
	}{
		{"fits", "abc", 100, false, "abc"},
		{"cut", "abcdef", 35, false, "abc"},
		{"tolerance", "abcd", 39.5, false, "abcd"},
		{"ellipsis", "abcdefgh", 55, true, "ab..."},
		{"too short for ellipsis", "abcd", 25, true, "ab"},
		{"trailing space trimmed", "ab   ", 100, false, "ab"},
		{"empty", "", 100, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArrangement()
			a.AddCurtailedLineOfText(font, tt.text, 0, 0, tt.maxWidth, tt.useEllipsis)
			if a.String() != tt.want {
				t.Errorf("got %q, want %q", a.String(), tt.want)
			}
			if a.Len() > 0 {
				if right := a.Glyph(a.Len() - 1).Right(); right > tt.maxWidth+1 {
					t.Errorf("line ends at %v, past %v", right, tt.maxWidth)
				}
			}
		})
	}
}

func TestAddCurtailedLineOfTextOffset(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddCurtailedLineOfText(font, "abcdefgh", 100, 20, 55, true)

	want := []float64{100, 110, 120, 130, 140}
	if a.String() != "ab..." {
		t.Fatalf("got %q, want ab...", a.String())
	}
	for i, x := range xs(a) {
		if x != want[i] {
			t.Errorf("glyph %d: X = %v, want %v", i, x, want[i])
		}
		if a.Glyph(i).Y != 20 {
			t.Errorf("glyph %d: Y = %v, want 20", i, a.Glyph(i).Y)
		}
	}
}

func TestAddJustifiedText(t *testing.T) {
	font := fixedWidthFont(t)
	advance := font.LineHeight() + 2

	tests := []struct {
		name         string
		j            Justification
		line1, line2 float64
		bAt          float64
	}{
		{"left", Left, 0, 0, 40},
		{"right", Right, 5, 45, 45},
		{"centred", HorizontallyCentred, 2.5, 22.5, 42.5},
		{"justified", HorizontallyJustified, 0, 0, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArrangement()
			a.AddJustifiedText(font, "aaa bbb ccc", 0, 0, 75, tt.j, 2)

			if a.Len() != 11 {
				t.Fatalf("Len() = %d, want 11", a.Len())
			}
			if got := baselines(a); len(got) != 2 || got[0] != 0 || !near(got[1], advance) {
				t.Fatalf("baselines = %v, want [0 %v]", got, advance)
			}
			if a.Glyph(8).Y == 0 {
				t.Error("third word should be on the second line")
			}
			if !near(a.Glyph(0).X, tt.line1) {
				t.Errorf("line 1 starts at %v, want %v", a.Glyph(0).X, tt.line1)
			}
			if !near(a.Glyph(8).X, tt.line2) {
				t.Errorf("line 2 starts at %v, want %v", a.Glyph(8).X, tt.line2)
			}
			if !near(a.Glyph(4).X, tt.bAt) {
				t.Errorf("second word starts at %v, want %v", a.Glyph(4).X, tt.bAt)
			}
		})
	}
}

func TestAddJustifiedTextHardBreak(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddJustifiedText(font, "ab\ncd", 10, 20, 1000, Left, 0)

	if got := baselines(a); len(got) != 2 {
		t.Fatalf("baselines = %v, want 2 lines", got)
	}
	c := a.Glyph(3)
	if c.Rune != 'c' || c.X != 10 || !near(c.Y, 20+font.LineHeight()) {
		t.Errorf("first glyph of line 2 = %q at (%v, %v)", c.Rune, c.X, c.Y)
	}
}

func TestAddJustifiedTextLongWord(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddJustifiedText(font, "abcdefghij", 0, 0, 35, Left, 0)

	if got := baselines(a); len(got) != 4 {
		t.Errorf("baselines = %v, want 4 lines for a word cut every 3 glyphs", got)
	}
	for i := range a.Len() {
		if g := a.Glyph(i); g.Right() > 35+1e-9 {
			t.Errorf("glyph %d ends at %v, past 35", i, g.Right())
		}
	}
}

func TestAddJustifiedTextLeading(t *testing.T) {
	font := fixedWidthFont(t)
	a := NewArrangement()
	a.AddJustifiedText(font, "ab\ncd", 0, 0, 100, Left, 0)
	b := NewArrangement()
	b.AddJustifiedText(font, "ab\ncd", 0, 0, 100, Left, 10)

	if !near(b.Glyph(3).Y-a.Glyph(3).Y, 10) {
		t.Errorf("leading 10 moved line 2 by %v", b.Glyph(3).Y-a.Glyph(3).Y)
	}
}
