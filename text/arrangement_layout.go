package text

import (
	"slices"
	"strings"
)

// shapeLine lays out s as a single line with its origin at (0, 0). Hard
// line breaks become zero-width whitespace glyphs; the text between them is
// split into bidi runs, shaped run by run and placed in visual order.
func shapeLine(font Font, s string) []PositionedGlyph {
	face := font.Face()
	if face == nil || s == "" {
		return nil
	}
	runes := []rune(s)
	m := face.Metrics()
	scale := font.Scale()
	shaper := GetShaper()

	out := make([]PositionedGlyph, 0, len(runes))
	pen := 0.0
	emit := func(cluster int, gid GlyphID, x, width float64) {
		r := runes[cluster]
		out = append(out, PositionedGlyph{
			Font:       font,
			GID:        gid,
			Rune:       r,
			Cluster:    cluster,
			X:          x,
			Width:      width,
			Ascent:     m.Ascent,
			Descent:    m.Descent,
			Whitespace: isLayoutWhitespace(r),
		})
	}

	lineStart := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' && runes[i] != '\r' {
			continue
		}
		for _, seg := range segmentLine(runes[lineStart:i], face.Direction()) {
			runFace := face
			if seg.Direction != face.Direction() {
				runFace = font.Face(WithDirection(seg.Direction))
			}
			shaped := shaper.Shape(seg.Text, runFace)
			base := lineStart + seg.Start
			var advance float64
			if n := len(shaped); n > 0 {
				advance = shaped[n-1].X + shaped[n-1].XAdvance
			}
			if seg.Direction == DirectionRTL {
				for k := len(shaped) - 1; k >= 0; k-- {
					g := shaped[k]
					x := advance - (g.X + g.XAdvance)
					emit(base+g.Cluster, g.GID, pen+x*scale, g.XAdvance*scale)
				}
			} else {
				for _, g := range shaped {
					emit(base+g.Cluster, g.GID, pen+g.X*scale, g.XAdvance*scale)
				}
			}
			pen += advance * scale
		}
		if i < len(runes) {
			emit(i, 0, pen, 0)
		}
		lineStart = i + 1
	}
	return out
}

// AddLineOfText appends s as one line whose baseline starts at (x, y).
func (a *Arrangement) AddLineOfText(font Font, s string, x, y float64) {
	start := len(a.glyphs)
	a.glyphs = append(a.glyphs, shapeLine(font, s)...)
	a.MoveRangeOfGlyphs(start, -1, x, y)
}

// AddCurtailedLineOfText appends s as one line starting at (x, y), dropping
// the glyphs that would extend past x+maxWidth. With useEllipsis, the tail
// of a truncated line is replaced by up to three dots.
func (a *Arrangement) AddCurtailedLineOfText(font Font, s string, x, y, maxWidth float64, useEllipsis bool) {
	s = strings.TrimRightFunc(s, isLayoutWhitespace)
	shaped := shapeLine(font, s)
	if len(shaped) == 0 {
		return
	}

	start := len(a.glyphs)
	for _, g := range shaped {
		if g.Right() > maxWidth+1 {
			if useEllipsis && len(shaped) > 3 && len(a.glyphs)-start >= 3 {
				a.insertEllipsis(font, x+maxWidth, start, len(a.glyphs))
			}
			break
		}
		g.moveBy(x, y)
		a.glyphs = append(a.glyphs, g)
	}
}

// insertEllipsis removes glyphs from the end of [start, end) until three
// dots fit before maxX, then inserts the dots. It returns the net number of
// glyphs removed, which is negative when more dots went in than glyphs came
// out.
func (a *Arrangement) insertEllipsis(font Font, maxX float64, start, end int) int {
	dots := shapeLine(font, "...")
	if len(dots) == 0 {
		return 0
	}
	dot := dots[0]
	dotWidth := dot.Width

	removed := 0
	var x, y float64
	for end > start {
		end--
		g := a.glyphs[end]
		x, y = g.X, g.Y
		a.RemoveRangeOfGlyphs(end, 1)
		removed++
		if x+dotWidth*3 <= maxX {
			break
		}
	}

	for range 3 {
		g := dot
		g.Font = font
		g.Rune = '.'
		g.X, g.Y = x, y
		if end > start {
			g.Cluster = a.glyphs[end-1].Cluster + 1
		}
		a.glyphs = slices.Insert(a.glyphs, end, g)
		end++
		removed--

		x += dotWidth
		if x > maxX {
			break
		}
	}
	return removed
}

// AddJustifiedText appends s word-wrapped to maxLineWidth. The first
// baseline is at y; each further line goes font.LineHeight()+leading lower.
// Lines are placed inside [x, x+maxLineWidth] according to the horizontal
// flags of j. Hard line breaks always start a new line.
func (a *Arrangement) AddJustifiedText(font Font, s string, x, y, maxLineWidth float64, j Justification, leading float64) {
	lineStart := len(a.glyphs)
	a.AddLineOfText(font, s, x, y)
	breaks := breakOpportunities([]rune(s))
	originalY := y
	lineAdvance := font.LineHeight() + leading

	for lineStart < len(a.glyphs) {
		i := lineStart
		if r := a.glyphs[i].Rune; r != '\n' && r != '\r' {
			i++
		}
		lineMaxX := a.glyphs[lineStart].Left() + maxLineWidth
		lastBreak := -1

		for i < len(a.glyphs) {
			g := &a.glyphs[i]
			if g.Rune == '\r' || g.Rune == '\n' {
				i++
				if g.Rune == '\r' && i < len(a.glyphs) && a.glyphs[i].Rune == '\n' {
					i++
				}
				break
			}
			if g.Whitespace {
				lastBreak = i + 1
			} else if g.Cluster < len(breaks) && breaks[g.Cluster] && a.glyphs[i-1].Cluster != g.Cluster {
				lastBreak = i
			}
			if !g.Whitespace && g.Right()-0.0001 >= lineMaxX {
				if lastBreak > lineStart {
					i = lastBreak
				}
				break
			}
			i++
		}

		lineLeft := a.glyphs[lineStart].Left()
		lineRight := lineLeft
		for k := i - 1; k >= lineStart; k-- {
			if !a.glyphs[k].Whitespace {
				lineRight = a.glyphs[k].Right()
				break
			}
		}

		var dx float64
		switch {
		case j.TestFlags(HorizontallyJustified):
			a.spreadOutLine(lineStart, i-lineStart, maxLineWidth)
		case j.TestFlags(HorizontallyCentred):
			dx = (maxLineWidth - (lineRight - lineLeft)) / 2
		case j.TestFlags(Right):
			dx = maxLineWidth - (lineRight - lineLeft)
		}
		a.MoveRangeOfGlyphs(lineStart, i-lineStart, x+dx-lineLeft, y-originalY)

		lineStart = i
		y += lineAdvance
	}
}
