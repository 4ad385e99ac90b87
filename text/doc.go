// Package text lays out strings as arrangements of positioned glyphs.
//
// The pipeline separates shared resources from cheap per-use values:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//   - Font: value descriptor (source, height, style, horizontal scale)
//     with a comparable identity, Font.Key
//   - Shaper: turns a run of text into glyphs (BuiltinShaper or the
//     HarfBuzz-based GoTextShaper)
//   - Arrangement: the positioned glyphs produced by a layout operation
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	font := text.NewFont(source, 16)
//	a := text.NewArrangement()
//	a.AddFittedText(font, "Hello, World!", 0, 0, 120, 40, text.Centred, 2, 0)
//
// # Layout operations
//
// AddLineOfText places one line on a baseline. AddCurtailedLineOfText cuts a
// line at a maximum width, optionally ending it with an ellipsis.
// AddJustifiedText word-wraps at Unicode-style break opportunities.
// AddFittedText squeezes, wraps, shrinks and finally truncates text until it
// fits a rectangle. JustifyGlyphs places any glyph range inside a box.
//
// Lines are split into bidi runs with golang.org/x/text/unicode/bidi; glyphs
// of an Arrangement are always stored left to right.
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface. By default,
// golang.org/x/image/font/opentype is used. Custom parsers can be
// registered:
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
