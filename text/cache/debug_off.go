//go:build !glyphcache_debug

package cache

const debugChecks = false
