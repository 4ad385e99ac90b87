package loop

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by an explicit clock. Callbacks fire inside
// Advance, on the goroutine that calls it. Manual is not safe for concurrent
// use, which matches the single-goroutine hosts it stands in for.
type Manual struct {
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	m       *Manual
	when    time.Duration
	seq     uint64
	f       func()
	stopped bool
}

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, when: m.now + d, seq: m.seq, f: f}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the time elapsed on the manual clock.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.timers)
}

// Advance moves the clock forward by d and fires every timer that became due,
// in deadline order. Timers armed by a callback fire in the same call if they
// fall due before the new time. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		m.remove(t)
		m.now = t.when
		t.f()
		fired++
	}
	m.now = target
	return fired
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	if len(m.timers) == 0 {
		return nil
	}
	sort.Slice(m.timers, func(i, j int) bool {
		if m.timers[i].when != m.timers[j].when {
			return m.timers[i].when < m.timers[j].when
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	if m.timers[0].when > target {
		return nil
	}
	return m.timers[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, x := range m.timers {
		if x == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	for _, x := range t.m.timers {
		if x == t {
			t.stopped = true
			t.m.remove(t)
			return true
		}
	}
	return false
}
