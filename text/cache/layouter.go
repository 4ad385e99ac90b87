package cache

import "github.com/gogpu/glyphcache/text"

// Layouter produces arrangements on a cache miss. Each call must return a
// fresh arrangement that nothing else modifies afterwards; a nil result is
// stored as an empty arrangement.
type Layouter interface {
	SingleLine(font text.Font, s string, startX, baselineY int) *text.Arrangement
	MultiLine(font text.Font, s string, startX, baselineY, maxLineWidth int, j text.Justification, leading float64) *text.Arrangement
	Area(font text.Font, s string, area text.RectF, j text.Justification, useEllipsis bool) *text.Arrangement
	Fitted(font text.Font, s string, area text.RectI, j text.Justification, maxLines int, minHScale float64) *text.Arrangement
}

var _ Layouter = text.ArrangementLayouter{}

// LayouterFuncs adapts plain functions to Layouter. Nil fields fall back
// to text.ArrangementLayouter.
type LayouterFuncs struct {
	SingleLineFunc func(font text.Font, s string, startX, baselineY int) *text.Arrangement
	MultiLineFunc  func(font text.Font, s string, startX, baselineY, maxLineWidth int, j text.Justification, leading float64) *text.Arrangement
	AreaFunc       func(font text.Font, s string, area text.RectF, j text.Justification, useEllipsis bool) *text.Arrangement
	FittedFunc     func(font text.Font, s string, area text.RectI, j text.Justification, maxLines int, minHScale float64) *text.Arrangement
}

// SingleLine implements Layouter.
func (f LayouterFuncs) SingleLine(font text.Font, s string, startX, baselineY int) *text.Arrangement {
	if f.SingleLineFunc == nil {
		return text.ArrangementLayouter{}.SingleLine(font, s, startX, baselineY)
	}
	return f.SingleLineFunc(font, s, startX, baselineY)
}

// MultiLine implements Layouter.
func (f LayouterFuncs) MultiLine(font text.Font, s string, startX, baselineY, maxLineWidth int, j text.Justification, leading float64) *text.Arrangement {
	if f.MultiLineFunc == nil {
		return text.ArrangementLayouter{}.MultiLine(font, s, startX, baselineY, maxLineWidth, j, leading)
	}
	return f.MultiLineFunc(font, s, startX, baselineY, maxLineWidth, j, leading)
}

// Area implements Layouter.
func (f LayouterFuncs) Area(font text.Font, s string, area text.RectF, j text.Justification, useEllipsis bool) *text.Arrangement {
	if f.AreaFunc == nil {
		return text.ArrangementLayouter{}.Area(font, s, area, j, useEllipsis)
	}
	return f.AreaFunc(font, s, area, j, useEllipsis)
}

// Fitted implements Layouter.
func (f LayouterFuncs) Fitted(font text.Font, s string, area text.RectI, j text.Justification, maxLines int, minHScale float64) *text.Arrangement {
	if f.FittedFunc == nil {
		return text.ArrangementLayouter{}.Fitted(font, s, area, j, maxLines, minHScale)
	}
	return f.FittedFunc(font, s, area, j, maxLines, minHScale)
}
