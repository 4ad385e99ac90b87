package text

import "strings"

// Justification describes where content is placed inside a box.
// Horizontal and vertical flags combine with |.
type Justification uint16

const (
	// Left places content against the left edge.
	Left Justification = 1 << iota
	// Right places content against the right edge.
	Right
	// HorizontallyCentred centres content horizontally.
	HorizontallyCentred
	// Top places content against the top edge.
	Top
	// Bottom places content against the bottom edge.
	Bottom
	// VerticallyCentred centres content vertically.
	VerticallyCentred
	// HorizontallyJustified stretches the space between words so that
	// every line but the last fills the width.
	HorizontallyJustified
)

// Common combinations.
const (
	Centred       = HorizontallyCentred | VerticallyCentred
	CentredLeft   = Left | VerticallyCentred
	CentredRight  = Right | VerticallyCentred
	CentredTop    = HorizontallyCentred | Top
	CentredBottom = HorizontallyCentred | Bottom
	TopLeft       = Left | Top
	TopRight      = Right | Top
	BottomLeft    = Left | Bottom
	BottomRight   = Right | Bottom
)

const (
	horizontalFlags = Left | Right | HorizontallyCentred | HorizontallyJustified
	verticalFlags   = Top | Bottom | VerticallyCentred
)

// Flags returns the raw flag bits.
func (j Justification) Flags() uint16 {
	return uint16(j)
}

// TestFlags reports whether any of the given flags are set.
func (j Justification) TestFlags(flags Justification) bool {
	return j&flags != 0
}

// OnlyHorizontal returns the horizontal flags of j.
func (j Justification) OnlyHorizontal() Justification {
	return j & horizontalFlags
}

// OnlyVertical returns the vertical flags of j.
func (j Justification) OnlyVertical() Justification {
	return j & verticalFlags
}

// ApplyToRect returns the position of a w×h box placed inside area.
// Missing horizontal flags mean left, missing vertical flags mean centred.
func (j Justification) ApplyToRect(w, h float64, area RectF) (x, y float64) {
	switch {
	case j.TestFlags(HorizontallyCentred):
		x = area.X + (area.W-w)/2
	case j.TestFlags(Right):
		x = area.Right() - w
	default:
		x = area.X
	}

	switch {
	case j.TestFlags(Top):
		y = area.Y
	case j.TestFlags(Bottom):
		y = area.Bottom() - h
	default:
		y = area.Y + (area.H-h)/2
	}
	return x, y
}

var justificationNames = []struct {
	flag Justification
	name string
}{
	{Left, "Left"},
	{Right, "Right"},
	{HorizontallyCentred, "HorizontallyCentred"},
	{Top, "Top"},
	{Bottom, "Bottom"},
	{VerticallyCentred, "VerticallyCentred"},
	{HorizontallyJustified, "HorizontallyJustified"},
}

// String returns the set flags joined by "|".
func (j Justification) String() string {
	if j == 0 {
		return "None"
	}
	var parts []string
	for _, n := range justificationNames {
		if j&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return unknownStr
	}
	return strings.Join(parts, "|")
}
