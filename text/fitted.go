package text

import (
	"math"
	"strings"
)

// DefaultMinimumHorizontalScale is the squeeze limit AddFittedText uses
// when called with a minimum horizontal scale of 0.
const DefaultMinimumHorizontalScale = 0.7

// minFittedLineHeight is the smallest line height AddFittedText shrinks a
// font to when splitting text over several lines.
const minFittedLineHeight = 8

// lineLengthUnevenness is the slack, in pixels, allowed for ragged line
// ends when estimating how many lines a text needs.
const lineLengthUnevenness = 80

// AddFittedText appends s fitted into the rectangle (x, y, w, h).
//
// Text that fits on one line (possibly squeezed horizontally down to
// minHScale) is placed according to j. Longer text is spread over at most
// maxLines lines, with a smaller font if the lines would not fit otherwise;
// whatever still does not fit is cut off with an ellipsis. Text containing
// hard line breaks is word-wrapped to w and only positioned vertically.
func (a *Arrangement) AddFittedText(font Font, s string, x, y, w, h float64, j Justification, maxLines int, minHScale float64) {
	if minHScale == 0 {
		minHScale = DefaultMinimumHorizontalScale
	}

	if strings.ContainsAny(s, "\r\n") {
		a.addLinesWithLineBreaks(font, s, x, y, w, h, j)
		return
	}

	start := len(a.glyphs)
	trimmed := strings.TrimFunc(s, isLayoutWhitespace)
	a.AddLineOfText(font, trimmed, x, y)
	n := len(a.glyphs) - start
	if n == 0 {
		return
	}
	lineWidth := a.lineWidth(start, len(a.glyphs))
	if lineWidth <= 0 {
		return
	}

	switch {
	case lineWidth*minHScale < w:
		if lineWidth > w {
			a.StretchRangeOfGlyphs(start, n, w/lineWidth)
		}
		a.JustifyGlyphs(start, n, x, y, w, h, j)
	case maxLines <= 1:
		a.fitLineIntoSpace(start, n, x, y, w, h, font, j, minHScale)
	default:
		a.splitLines(trimmed, font, start, x, y, w, h, maxLines, lineWidth, j, minHScale)
	}
}

// addLinesWithLineBreaks word-wraps s to w and moves the block vertically
// into [y, y+h].
func (a *Arrangement) addLinesWithLineBreaks(font Font, s string, x, y, w, h float64, j Justification) {
	var block Arrangement
	block.AddJustifiedText(font, s, x, y, w, j, 0)
	bb := block.Bounds(0, -1, false)

	dy := y - bb.Y
	switch {
	case j.TestFlags(VerticallyCentred):
		dy += (h - bb.H) / 2
	case j.TestFlags(Bottom):
		dy += h - bb.H
	}
	block.MoveRangeOfGlyphs(0, -1, 0, dy)
	a.glyphs = append(a.glyphs, block.glyphs...)
}

// fitLineIntoSpace squeezes the n glyphs at start into width w, no further
// than minHScale, truncates with an ellipsis if that is not enough, and
// justifies the result inside (x, y, w, h). It returns the net number of
// glyphs removed.
func (a *Arrangement) fitLineIntoSpace(start, n int, x, y, w, h float64, font Font, j Justification, minHScale float64) int {
	removed := 0
	lineLeft := a.glyphs[start].Left()
	lineWidth := a.glyphs[start+n-1].Right() - lineLeft

	if lineWidth > w {
		if minHScale < 1 {
			a.StretchRangeOfGlyphs(start, n, math.Max(minHScale, w/lineWidth))
			lineWidth = a.glyphs[start+n-1].Right() - lineLeft - 0.5
		}
		if lineWidth > w {
			removed = a.insertEllipsis(font, lineLeft+w, start, start+n)
			n -= removed
		}
	}

	a.JustifyGlyphs(start, n, x, y, w, h, j)
	return removed
}

// splitLines breaks the single line of glyphs at start (the layout of s)
// into several lines that fit the rectangle (x, y, w, h).
func (a *Arrangement) splitLines(s string, font Font, start int, x, y, w, h float64, maxLines int, lineWidth float64, j Justification, minHScale float64) {
	length := len([]rune(s))
	originalStart := start

	if length <= 12 && !strings.ContainsAny(s, " -\t\r\n") {
		maxLines = 1
	}
	maxLines = min(maxLines, length)

	numLines := 1
	for numLines < maxLines {
		numLines++
		target := h / float64(numLines)
		if target < font.LineHeight() {
			font = withLineHeight(font, math.Max(minFittedLineHeight, target))
			a.RemoveRangeOfGlyphs(start, -1)
			a.AddLineOfText(font, s, x, y)
			lineWidth = a.lineWidth(start, len(a.glyphs))
		}
		if float64(numLines) > (lineWidth+lineLengthUnevenness)/w || target < minFittedLineHeight {
			break
		}
	}

	lineHeight := font.LineHeight()
	lineIndex := 0
	lineY := y
	widthPerLine := math.Min(w/minHScale, lineWidth/float64(numLines))

	for lineY < y+h && start < len(a.glyphs) {
		end := start
		lineLeft := a.glyphs[start].Left()
		lineBottom := lineY + lineHeight

		lineIndex++
		if lineIndex >= numLines || lineBottom >= y+h {
			widthPerLine = w
			end = len(a.glyphs)
		} else {
			end = a.findLineEnd(start, lineLeft, widthPerLine, w, minHScale)

			wsStart, wsEnd := end, end
			for wsStart > 0 && a.glyphs[wsStart-1].Whitespace {
				wsStart--
			}
			for wsEnd < len(a.glyphs) && a.glyphs[wsEnd].Whitespace {
				wsEnd++
			}
			a.RemoveRangeOfGlyphs(wsStart, wsEnd-wsStart)
			end = max(wsStart, start+1)
		}

		lineJ := j.OnlyHorizontal() | VerticallyCentred
		end -= a.fitLineIntoSpace(start, end-start, x, lineY, w, lineHeight, font, lineJ, minHScale)
		start = end
		lineY += lineHeight
	}

	a.JustifyGlyphs(originalStart, -1, x, y, w, h, j&^HorizontallyJustified)
}

// findLineEnd returns the index one past the last glyph of the line that
// starts at glyph start. It prefers breaking after a space or hyphen
// beyond widthPerLine, as long as the line can still be squeezed into w.
func (a *Arrangement) findLineEnd(start int, lineLeft, widthPerLine, w, minHScale float64) int {
	end := start
	for end < len(a.glyphs) {
		if a.glyphs[end].Right()-lineLeft <= widthPerLine {
			end++
			continue
		}

		searchStart := end
		for end < len(a.glyphs) {
			g := &a.glyphs[end]
			if (g.Right()-lineLeft)*minHScale >= w {
				end = searchStart
				for back := 1; back < min(7, end-start-1); back++ {
					if c := &a.glyphs[end-back]; c.Whitespace || c.Rune == '-' {
						end -= back - 1
						break
					}
				}
				return end
			}
			if g.Whitespace || g.Rune == '-' {
				return end + 1
			}
			end++
		}
		return end
	}
	return end
}

// withLineHeight returns font resized so that its line height is about lh.
func withLineHeight(font Font, lh float64) Font {
	current := font.LineHeight()
	if current <= 0 {
		return font
	}
	return font.WithHeight(font.Height * lh / current)
}
