// Package glyphcache memoizes text layout for interactive renderers.
//
// # Overview
//
// Laying out text (shaping, line breaking, justification, ellipsis fitting)
// is expensive relative to a frame budget, and UI code tends to lay out the
// same strings with the same geometry many times in a row. glyphcache keeps
// the resulting glyph arrangements around for a short window and then drops
// all of them at once.
//
// The module is split into:
//
//   - text: fonts, shaping and the arrangement layout operations
//   - text/cache: the ArrangementCache with its four query families
//   - loop: the single-goroutine event loop that delivers the cache's timer
//
// # Quick Start
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	font := text.NewFont(source, 16)
//
//	c := cache.New(text.ArrangementLayouter{})
//	defer c.Close()
//
//	arr := c.SingleLineText(font, "Hello", 0, 10)
//	fmt.Println(arr.Len(), c.Status())
//
// # Threading
//
// An ArrangementCache belongs to the goroutine that created it, in the same
// way widgets belong to a UI thread. Nothing is locked. Enable goroutine
// checks (cache.WithGoroutineCheck or the glyphcache_debug build tag) to
// catch calls from other goroutines during development.
//
// # Logging
//
// The module is silent by default. Call SetLogger to route diagnostics to a
// log/slog handler.
package glyphcache
