package cache

import (
	"time"

	"github.com/gogpu/glyphcache"
	"github.com/gogpu/glyphcache/internal/gotrack"
	"github.com/gogpu/glyphcache/loop"
	"github.com/gogpu/glyphcache/text"
)

// ArrangementCache memoizes glyph arrangements for four query families.
// It is not safe for concurrent use; see the package documentation.
type ArrangementCache struct {
	layouter Layouter
	sched    Scheduler
	own      *loop.Loop // private scheduler, nil with WithScheduler
	interval time.Duration
	name     string

	checks bool
	owner  gotrack.Owner

	singleLine table[SingleLineKey]
	multiLine  table[MultiLineKey]
	texts      table[AreaKey]
	fitted     table[FittedAreaKey]

	timer  Timer
	gen    uint64 // bumped by every clear; stale timer callbacks compare it
	closed bool

	hits   uint64
	misses uint64
	clears uint64
}

// New creates an empty cache that lays out misses with layouter (nil means
// text.ArrangementLayouter). The calling goroutine becomes the owner.
func New(layouter Layouter, opts ...Option) *ArrangementCache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if layouter == nil {
		layouter = text.ArrangementLayouter{}
	}

	c := &ArrangementCache{
		layouter:   layouter,
		sched:      cfg.scheduler,
		interval:   cfg.interval,
		name:       cfg.name,
		checks:     cfg.checks,
		singleLine: newTable[SingleLineKey](),
		multiLine:  newTable[MultiLineKey](),
		texts:      newTable[AreaKey](),
		fitted:     newTable[FittedAreaKey](),
	}
	if c.sched == nil {
		c.own = loop.New()
		c.sched = c.own
	}
	if c.checks {
		c.owner = gotrack.NewOwner()
	}
	return c
}

// SingleLineText returns s laid out on one line with the baseline starting
// at (startX, baselineY).
func (c *ArrangementCache) SingleLineText(font text.Font, s string, startX, baselineY int) *text.Arrangement {
	params := SingleLineKey{StartX: startX, BaselineY: baselineY}
	return lookup(c, &c.singleLine, font, s, params, func() *text.Arrangement {
		return c.layouter.SingleLine(font, s, startX, baselineY)
	})
}

// MultiLineText returns s word-wrapped to maxLineWidth, each line justified
// within it, with leading extra pixels between lines.
//
// leading is part of the cache key and is passed on to the layouter, so
// two calls that differ only in leading never share an entry.
func (c *ArrangementCache) MultiLineText(font text.Font, s string, startX, baselineY, maxLineWidth int, j text.Justification, leading float64) *text.Arrangement {
	params := NewMultiLineKey(startX, baselineY, maxLineWidth, j, leading)
	return lookup(c, &c.multiLine, font, s, params, func() *text.Arrangement {
		return c.layouter.MultiLine(font, s, startX, baselineY, maxLineWidth, j, leading)
	})
}

// Text returns s laid out on one line, curtailed to the width of area and
// justified inside it.
func (c *ArrangementCache) Text(font text.Font, s string, area text.RectF, j text.Justification, useEllipsisIfTooBig bool) *text.Arrangement {
	params := NewAreaKey(area, j, useEllipsisIfTooBig)
	return lookup(c, &c.texts, font, s, params, func() *text.Arrangement {
		return c.layouter.Area(font, s, area, j, useEllipsisIfTooBig)
	})
}

// FittedText returns s fitted into area over at most maxLines lines,
// squeezed horizontally no further than minHorizontalScale.
func (c *ArrangementCache) FittedText(font text.Font, s string, area text.RectI, j text.Justification, maxLines int, minHorizontalScale float64) *text.Arrangement {
	params := NewFittedAreaKey(area, j, maxLines, minHorizontalScale)
	return lookup(c, &c.fitted, font, s, params, func() *text.Arrangement {
		return c.layouter.Fitted(font, s, area, j, maxLines, minHorizontalScale)
	})
}

// lookup returns the entry for (font, s, params) in t, laying it out and
// storing it on a miss.
func lookup[K comparable](c *ArrangementCache, t *table[K], font text.Font, s string, params K, layout func() *text.Arrangement) *text.Arrangement {
	c.enter()

	fk := font.Key()
	if a, ok := t.get(fk, s, params); ok {
		c.hits++
		return a
	}
	c.misses++

	a := layout()
	if a == nil {
		a = text.NewArrangement()
	}
	a = t.put(fk, s, params, a)
	c.arm()
	return a
}

// enter runs the checks common to every query and delivers expired timers
// of the private loop.
func (c *ArrangementCache) enter() {
	c.checkOwner()
	if c.closed {
		panic(ErrClosed)
	}
	if c.own != nil {
		c.own.Drain()
	}
}

func (c *ArrangementCache) checkOwner() {
	if c.checks && !c.owner.IsCurrent() {
		panic(ErrWrongGoroutine)
	}
}

// arm starts the eviction timer unless it is already running.
func (c *ArrangementCache) arm() {
	if c.timer != nil {
		return
	}
	gen := c.gen
	t := c.sched.AfterFunc(c.interval, func() { c.expire(gen) })
	if t == nil {
		glyphcache.Logger().Warn("cache: scheduler returned no timer", "cache", c.name)
		return
	}
	c.timer = t
	glyphcache.Logger().Debug("cache: eviction timer armed", "cache", c.name, "interval", c.interval)
}

// expire is the timer callback. Callbacks from a timer that a clear has
// already cancelled are ignored.
func (c *ArrangementCache) expire(gen uint64) {
	if c.closed || gen != c.gen {
		return
	}
	glyphcache.Logger().Debug("cache: eviction timer fired", "cache", c.name)
	c.Clear()
}

// Clear removes every entry of every family and stops the eviction timer.
func (c *ArrangementCache) Clear() {
	c.checkOwner()
	c.clear()
}

func (c *ArrangementCache) clear() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++

	n := c.Len()
	c.singleLine.clear()
	c.multiLine.clear()
	c.texts.clear()
	c.fitted.clear()
	c.clears++
	glyphcache.Logger().Debug("cache: cleared", "cache", c.name, "entries", n)
}

// Len returns the number of entries across all families.
func (c *ArrangementCache) Len() int {
	c.checkOwner()
	return c.singleLine.len() + c.multiLine.len() + c.texts.len() + c.fitted.len()
}

// Close clears the cache and releases its private loop. Queries on a
// closed cache panic with ErrClosed; Clear, Status and Stats keep working.
func (c *ArrangementCache) Close() {
	c.checkOwner()
	if c.closed {
		return
	}
	c.clear()
	c.closed = true
	if c.own != nil {
		c.own.Close()
	}
	glyphcache.Logger().Debug("cache: closed", "cache", c.name)
}
