package text

import (
	"strings"
	"unicode"
)

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
	breakNewline
)

func classifyRune(r rune) breakClass {
	switch r {
	case '\n', '\r':
		return breakNewline
	case ' ', '\t':
		return breakSpace
	case '\u200B':
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune reports whether r is a CJK character, which may break on
// either side.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// isLayoutWhitespace reports whether r is treated as whitespace when
// measuring and justifying lines.
func isLayoutWhitespace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200B'
}

// breakOpportunities returns, for every rune index i, whether a soft line
// break is allowed before rune i. Index 0 is always false.
func breakOpportunities(runes []rune) []bool {
	breaks := make([]bool, len(runes))
	if len(runes) < 2 {
		return breaks
	}

	classes := make([]breakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}
	for i := 1; i < len(runes); i++ {
		breaks[i] = canBreakBetween(runes[i-1], runes[i], classes[i-1], classes[i])
	}
	return breaks
}

func canBreakBetween(prev, curr rune, prevClass, currClass breakClass) bool {
	switch {
	case prevClass == breakNewline:
		return true
	case currClass == breakClose, prevClass == breakOpen:
		return false
	case prevClass == breakZero, prevClass == breakSpace:
		return true
	case currClass == breakHyphen:
		return false
	case prevClass == breakHyphen:
		return true
	case currClass == breakIdeographic, prevClass == breakIdeographic:
		return true
	}
	return isBreakBetweenCategories(prev, curr)
}

// isBreakBetweenCategories allows breaks around punctuation glued to words,
// e.g. "word/word". Apostrophes, sentence punctuation and number separators
// keep to their word.
func isBreakBetweenCategories(prev, curr rune) bool {
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) {
		return !strings.ContainsRune(gluedPunct, curr)
	}
	if unicode.IsPunct(prev) && unicode.IsLetter(curr) {
		return !strings.ContainsRune(gluedPunct, prev)
	}
	return false
}

// gluedPunct never starts or ends a break opportunity next to a letter.
const gluedPunct = "'.,!?:;"
