package cache

import "errors"

// Sentinel errors for the cache package. Contract violations panic with
// these values; recover and compare with errors.Is.
var (
	// ErrWrongGoroutine is the panic value when a cache with goroutine
	// checks enabled is used from a goroutine other than its owner.
	ErrWrongGoroutine = errors.New("cache: ArrangementCache used off its owner goroutine")

	// ErrClosed is the panic value when a closed cache is queried.
	ErrClosed = errors.New("cache: ArrangementCache is closed")

	// ErrShutdown is the panic value when Default is called after Shutdown.
	ErrShutdown = errors.New("cache: default ArrangementCache requested after Shutdown")
)
