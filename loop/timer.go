package loop

import "time"

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; false means the callback already ran or the timer
	// was already stopped.
	Stop() bool
}

// Scheduler arms one-shot callbacks. Implementations must invoke f on the
// goroutine that drains the scheduler, never on a background goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
