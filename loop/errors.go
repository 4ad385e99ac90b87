package loop

import "errors"

// ErrClosed is returned when work is submitted to a closed Loop.
var ErrClosed = errors.New("loop: closed")
