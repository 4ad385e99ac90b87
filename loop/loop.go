package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Default configuration constants.
const (
	// DefaultQueueSize is the work queue capacity.
	DefaultQueueSize = 64
)

// Option configures a Loop.
type Option func(*config)

type config struct {
	queueSize int
}

// WithQueueSize sets the capacity of the work queue. Posting to a full queue
// blocks until the loop goroutine makes room. Values <= 0 are ignored.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// Loop serializes work onto one goroutine.
//
// Post, Do and AfterFunc are safe to call from any goroutine. Run and Drain
// must only be called from the goroutine that owns the loop. Posting from the
// loop goroutine while the queue is full deadlocks.
type Loop struct {
	work      chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Loop. Nothing is executed until Run or Drain is called.
func New(opts ...Option) *Loop {
	cfg := config{queueSize: DefaultQueueSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loop{
		work: make(chan func(), cfg.queueSize),
		done: make(chan struct{}),
	}
}

// Post queues f. It reports false if the loop is closed.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.work <- f:
		return true
	case <-l.done:
		return false
	}
}

// Do runs f on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, f func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		f()
	}) {
		return ErrClosed
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}
}

// Run executes queued work until ctx is canceled or Close is called.
// It returns ctx.Err() on cancellation and nil after Close.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case f := <-l.work:
			f()
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		}
	}
}

// Drain executes everything currently queued without blocking and returns
// the number of functions run. Hosts with their own frame loop call Drain
// once per frame instead of running a dedicated goroutine.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case f := <-l.work:
			f()
			n++
		default:
			return n
		}
	}
}

// Close stops the loop. Queued work that has not run is dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}

// Timer states.
const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

// loopTimer is a time.Timer whose expiry is delivered through the loop.
type loopTimer struct {
	t     *time.Timer
	state atomic.Int32
}

// AfterFunc arms a one-shot timer. When d elapses f is posted to the loop
// and runs on the loop goroutine. A Stop that wins the race against the loop
// goroutine prevents f from running even if the underlying timer already
// expired and the callback is sitting in the queue.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.state.CompareAndSwap(timerPending, timerFired) {
				f()
			}
		})
	})
	return lt
}

// Stop implements Timer.
func (lt *loopTimer) Stop() bool {
	if !lt.state.CompareAndSwap(timerPending, timerStopped) {
		return false
	}
	lt.t.Stop()
	return true
}
