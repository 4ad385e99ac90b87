// Package gotrack identifies goroutines for ownership assertions.
//
// Go deliberately has no public goroutine id. The id is recovered from the
// header line of runtime.Stack ("goroutine 42 [running]:"), which costs about
// a microsecond, so callers should only use it behind a debug switch.
package gotrack

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync"
)

var goroutineSpace = []byte("goroutine ")

var stackBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 64)
		return &buf
	},
}

// ID returns the id of the calling goroutine.
func ID() uint64 {
	bp := stackBufPool.Get().(*[]byte)
	defer stackBufPool.Put(bp)

	b := *bp
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, goroutineSpace)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		panic(fmt.Sprintf("gotrack: no space found in %q", b))
	}
	n, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("gotrack: failed to parse goroutine id from %q: %v", b[:i], err))
	}
	return n
}

// Owner records the goroutine that created it.
type Owner uint64

// NewOwner returns an Owner bound to the calling goroutine.
func NewOwner() Owner {
	return Owner(ID())
}

// IsCurrent reports whether the calling goroutine is the owner.
func (o Owner) IsCurrent() bool {
	return ID() == uint64(o)
}
