package text

// ArrangementLayouter builds fresh arrangements with the layout operations
// of this package. Its methods match the query families of an
// ArrangementCache, which uses it when no other layouter is given.
type ArrangementLayouter struct{}

// SingleLine lays s out on one line whose baseline starts at
// (startX, baselineY).
func (ArrangementLayouter) SingleLine(font Font, s string, startX, baselineY int) *Arrangement {
	a := NewArrangement()
	a.AddLineOfText(font, s, float64(startX), float64(baselineY))
	return a
}

// MultiLine word-wraps s to maxLineWidth with the first baseline at
// (startX, baselineY).
func (ArrangementLayouter) MultiLine(font Font, s string, startX, baselineY, maxLineWidth int, j Justification, leading float64) *Arrangement {
	a := NewArrangement()
	a.AddJustifiedText(font, s, float64(startX), float64(baselineY), float64(maxLineWidth), j, leading)
	return a
}

// Area lays s out on one line curtailed to the width of area and justified
// inside it.
func (ArrangementLayouter) Area(font Font, s string, area RectF, j Justification, useEllipsis bool) *Arrangement {
	a := NewArrangement()
	a.AddCurtailedLineOfText(font, s, 0, 0, area.W, useEllipsis)
	a.JustifyGlyphs(0, a.Len(), area.X, area.Y, area.W, area.H, j)
	return a
}

// Fitted fits s into area over at most maxLines lines.
func (ArrangementLayouter) Fitted(font Font, s string, area RectI, j Justification, maxLines int, minHScale float64) *Arrangement {
	a := NewArrangement()
	r := area.Float()
	a.AddFittedText(font, s, r.X, r.Y, r.W, r.H, j, maxLines, minHScale)
	return a
}
