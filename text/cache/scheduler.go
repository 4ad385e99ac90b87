package cache

import "github.com/gogpu/glyphcache/loop"

// Scheduler arms the eviction timer. Callbacks must run on the cache's
// owner goroutine. *loop.Loop and *loop.Manual implement it.
type Scheduler = loop.Scheduler

// Timer is a pending eviction callback.
type Timer = loop.Timer
