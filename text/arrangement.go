package text

// PositionedGlyph is one glyph of an Arrangement, placed on its baseline.
type PositionedGlyph struct {
	// Font is the font the glyph was shaped with.
	Font Font

	// GID is the glyph index in the font.
	GID GlyphID

	// Rune is the character the glyph came from. For ligatures it is the
	// first character of the cluster.
	Rune rune

	// Cluster is the rune index in the laid out string.
	Cluster int

	// X is the left edge of the glyph's advance box.
	X float64

	// Y is the baseline.
	Y float64

	// Width is the advance width after horizontal scaling.
	Width float64

	// Ascent and Descent are the font's distances above and below the
	// baseline, both positive.
	Ascent, Descent float64

	// Whitespace marks spaces, tabs and line breaks.
	Whitespace bool
}

// Left returns X.
func (g PositionedGlyph) Left() float64 { return g.X }

// Right returns the right edge of the advance box.
func (g PositionedGlyph) Right() float64 { return g.X + g.Width }

// Bounds returns the glyph's line box: its advance width by the font's
// ascent plus descent.
func (g PositionedGlyph) Bounds() RectF {
	return RectF{X: g.X, Y: g.Y - g.Ascent, W: g.Width, H: g.Ascent + g.Descent}
}

func (g *PositionedGlyph) moveBy(dx, dy float64) {
	g.X += dx
	g.Y += dy
}

// Arrangement is a list of positioned glyphs produced by the layout
// operations in this package.
//
// An Arrangement handed out by an ArrangementCache is shared: callers must
// treat it as read-only.
type Arrangement struct {
	glyphs []PositionedGlyph
}

// NewArrangement returns an empty Arrangement.
func NewArrangement() *Arrangement {
	return &Arrangement{}
}

// Len returns the number of glyphs.
func (a *Arrangement) Len() int {
	if a == nil {
		return 0
	}
	return len(a.glyphs)
}

// Glyph returns the glyph at index i.
func (a *Arrangement) Glyph(i int) PositionedGlyph {
	return a.glyphs[i]
}

// Glyphs returns a copy of all glyphs.
func (a *Arrangement) Glyphs() []PositionedGlyph {
	if a == nil {
		return nil
	}
	return append([]PositionedGlyph(nil), a.glyphs...)
}

// String returns the characters of the arrangement in glyph order.
func (a *Arrangement) String() string {
	if a == nil {
		return ""
	}
	runes := make([]rune, len(a.glyphs))
	for i, g := range a.glyphs {
		runes[i] = g.Rune
	}
	return string(runes)
}

// Clear removes all glyphs.
func (a *Arrangement) Clear() {
	a.glyphs = a.glyphs[:0]
}

// Equal reports whether a and b hold identical glyphs.
func (a *Arrangement) Equal(b *Arrangement) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if a.glyphs[i] != b.glyphs[i] {
			return false
		}
	}
	return true
}

// clampRange turns (start, n) into a valid half-open range. A negative n
// means "to the end".
func (a *Arrangement) clampRange(start, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > len(a.glyphs) {
		start = len(a.glyphs)
	}
	end := len(a.glyphs)
	if n >= 0 && start+n < end {
		end = start + n
	}
	return start, end
}

// Bounds returns the union of the line boxes of n glyphs starting at start
// (n < 0 means all remaining). With includeWhitespace false, whitespace
// glyphs are ignored.
func (a *Arrangement) Bounds(start, n int, includeWhitespace bool) RectF {
	start, end := a.clampRange(start, n)
	var r RectF
	for i := start; i < end; i++ {
		g := &a.glyphs[i]
		if !includeWhitespace && g.Whitespace {
			continue
		}
		r = r.Union(g.Bounds())
	}
	return r
}

// MoveRangeOfGlyphs offsets n glyphs starting at start.
func (a *Arrangement) MoveRangeOfGlyphs(start, n int, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	start, end := a.clampRange(start, n)
	for i := start; i < end; i++ {
		a.glyphs[i].moveBy(dx, dy)
	}
}

// StretchRangeOfGlyphs scales n glyphs horizontally around the left edge of
// the first one.
func (a *Arrangement) StretchRangeOfGlyphs(start, n int, scale float64) {
	start, end := a.clampRange(start, n)
	if start >= end || scale == 1 {
		return
	}
	anchor := a.glyphs[start].X
	for i := start; i < end; i++ {
		g := &a.glyphs[i]
		g.X = anchor + (g.X-anchor)*scale
		g.Width *= scale
	}
}

// RemoveRangeOfGlyphs deletes n glyphs starting at start.
func (a *Arrangement) RemoveRangeOfGlyphs(start, n int) {
	start, end := a.clampRange(start, n)
	a.glyphs = append(a.glyphs[:start], a.glyphs[end:]...)
}

// JustifyGlyphs moves n glyphs starting at start so that their bounding box
// sits in the rectangle (x, y, w, h) as described by j. With
// HorizontallyJustified, each line except the arrangement's final one is
// also spread to width w.
func (a *Arrangement) JustifyGlyphs(start, n int, x, y, w, h float64, j Justification) {
	start, end := a.clampRange(start, n)
	if start >= end {
		return
	}

	includeWS := !j.TestFlags(HorizontallyJustified | HorizontallyCentred)
	bb := a.Bounds(start, end-start, includeWS)

	dx := x - bb.X
	switch {
	case j.TestFlags(HorizontallyJustified):
	case j.TestFlags(HorizontallyCentred):
		dx += (w - bb.W) / 2
	case j.TestFlags(Right):
		dx += w - bb.W
	}

	var dy float64
	switch {
	case j.TestFlags(Top):
		dy = y - bb.Y
	case j.TestFlags(Bottom):
		dy = y + h - bb.Bottom()
	default:
		dy = y + (h-bb.H)/2 - bb.Y
	}

	a.MoveRangeOfGlyphs(start, end-start, dx, dy)

	if !j.TestFlags(HorizontallyJustified) {
		return
	}
	lineStart := start
	baseline := a.glyphs[start].Y
	for i := start; i < end; i++ {
		if a.glyphs[i].Y != baseline {
			a.spreadOutLine(lineStart, i-lineStart, w)
			lineStart = i
			baseline = a.glyphs[i].Y
		}
	}
	a.spreadOutLine(lineStart, end-lineStart, w)
}

// spreadOutLine widens the gaps between words of one line so that it spans
// targetWidth. The last line of the arrangement, lines ending in a hard
// break, and lines without inner spaces are left alone.
func (a *Arrangement) spreadOutLine(start, n int, targetWidth float64) {
	end := start + n
	if n <= 0 || end >= len(a.glyphs) {
		return
	}
	if r := a.glyphs[end-1].Rune; r == '\n' || r == '\r' {
		return
	}

	spaces, trailing := 0, 0
	for i := start; i < end; i++ {
		if a.glyphs[i].Whitespace {
			spaces++
			trailing++
		} else {
			trailing = 0
		}
	}
	spaces -= trailing
	if spaces <= 0 {
		return
	}

	lineWidth := a.glyphs[end-1-trailing].Right() - a.glyphs[start].Left()
	extra := (targetWidth - lineWidth) / float64(spaces)

	var dx float64
	for i := start; i < end; i++ {
		a.glyphs[i].moveBy(dx, 0)
		if a.glyphs[i].Whitespace {
			dx += extra
		}
	}
}

// lineWidth returns the distance from the left of glyph start to the right
// of glyph end-1.
func (a *Arrangement) lineWidth(start, end int) float64 {
	if start >= end {
		return 0
	}
	return a.glyphs[end-1].Right() - a.glyphs[start].Left()
}
