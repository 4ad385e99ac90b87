package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrClosedSource is returned when a closed FontSource is used for parsing.
	ErrClosedSource = errors.New("text: font source is closed")
)
