package gotrack

import "testing"

func TestIDStableWithinGoroutine(t *testing.T) {
	a, b := ID(), ID()
	if a == 0 {
		t.Fatal("ID() returned 0")
	}
	if a != b {
		t.Errorf("ID() changed within one goroutine: %d then %d", a, b)
	}
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	mine := ID()
	ch := make(chan uint64)
	go func() { ch <- ID() }()
	if other := <-ch; other == mine {
		t.Errorf("two goroutines reported the same id %d", mine)
	}
}

func TestOwner(t *testing.T) {
	o := NewOwner()
	if !o.IsCurrent() {
		t.Fatal("owner should be current on the creating goroutine")
	}

	ch := make(chan bool)
	go func() { ch <- o.IsCurrent() }()
	if <-ch {
		t.Error("owner should not be current on another goroutine")
	}
}
