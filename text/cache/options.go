package cache

import "time"

// DefaultInterval is how long cached arrangements live after the first
// insertion into an empty cache.
const DefaultInterval = 5000 * time.Millisecond

// Option configures an ArrangementCache.
type Option func(*config)

type config struct {
	interval  time.Duration
	scheduler Scheduler
	checks    bool
	name      string
}

func defaultConfig() config {
	return config{
		interval: DefaultInterval,
		checks:   debugChecks,
		name:     "glyph-arrangements",
	}
}

// WithInterval sets the eviction interval. Non-positive values keep
// DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithScheduler delivers eviction timers through s instead of a private
// loop. s must run callbacks on the cache's owner goroutine.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		c.scheduler = s
	}
}

// WithGoroutineCheck enables the owner-goroutine assertion on every call.
// Builds with the glyphcache_debug tag always check.
func WithGoroutineCheck(enabled bool) Option {
	return func(c *config) {
		c.checks = enabled || debugChecks
	}
}

// WithName labels the cache in log records.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
