// Package cache memoizes text layout results.
//
// An ArrangementCache keeps the glyph arrangements produced for recently
// requested (font, text, geometry) combinations so that interactive
// rendering does not lay out the same labels again on every repaint. It
// serves four query families, one per layout operation:
//
//   - SingleLineText: one line on a baseline
//   - MultiLineText: word-wrapped, justified lines
//   - Text: one line curtailed to an area, optionally with an ellipsis
//   - FittedText: text squeezed, wrapped and truncated into a rectangle
//
// Each family has its own table keyed by the font identity, the exact text
// and the family's geometry parameters. Floating point parameters are
// compared by bit pattern. A miss runs the Layouter and stores the result;
// stored arrangements are never replaced.
//
// # Eviction
//
// There is no size bound. The first insertion into an empty cache arms a
// one-shot timer (DefaultInterval unless WithInterval says otherwise); when
// it fires, the whole cache is cleared. Clear can also be called directly.
//
// # Threading
//
// An ArrangementCache has no locks. It belongs to one goroutine, normally
// the one that renders, and timer callbacks must be delivered on that same
// goroutine. A loop.Loop provides exactly that:
//
//	l := loop.New()
//	go l.Run(ctx)
//	var c *cache.ArrangementCache
//	l.Do(ctx, func() {
//		c = cache.New(text.ArrangementLayouter{}, cache.WithScheduler(l))
//	})
//
// Without WithScheduler the cache runs its own private loop and delivers
// expired timers at the start of the next query.
//
// With WithGoroutineCheck(true), or when built with the glyphcache_debug
// tag, every call verifies that it runs on the goroutine that created the
// cache and panics with ErrWrongGoroutine otherwise.
//
// # Returned arrangements
//
// Returned arrangements are shared with the cache and must be treated as
// read-only. They are never modified after being stored, so holding one
// across later calls is safe; it is simply no longer reachable through the
// cache after the next Clear.
package cache
