package cache

import (
	"sync"

	"github.com/gogpu/glyphcache"
)

var (
	defaultMu       sync.Mutex
	defaultCache    *ArrangementCache
	defaultShutdown bool
)

// Default returns the process-wide cache, creating it on first use with the
// default layouter and options. The first caller becomes its owner.
//
// Default panics with ErrShutdown once Shutdown has run.
func Default() *ArrangementCache {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultShutdown {
		panic(ErrShutdown)
	}
	if defaultCache == nil {
		defaultCache = New(nil, WithName("default"))
	}
	return defaultCache
}

// Shutdown closes the process-wide cache. It must run on the cache's owner
// goroutine. Calling it more than once is a no-op.
func Shutdown() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultShutdown {
		return
	}
	defaultShutdown = true
	if defaultCache != nil {
		st := defaultCache.Stats()
		defaultCache.Close()
		defaultCache = nil
		glyphcache.Logger().Info("cache: default cache shut down",
			"hits", st.Hits, "misses", st.Misses, "clears", st.Clears)
	}
}

