//go:build glyphcache_debug

package cache

// debugChecks forces goroutine checks on for every cache.
const debugChecks = true
