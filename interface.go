package mockinstant

import (
	"time"
)

// See [time.Duration].
type Duration = time.Duration

// Duration constants.
const (
	Nanosecond  = time.Nanosecond
	Microsecond = time.Microsecond
	Millisecond = time.Millisecond
	Second      = time.Second
	Minute      = time.Minute
	Hour        = time.Hour
)

// Clock is the control surface shared by the global and threadlocal
// mock clocks. Both flavors expose the identical set of operations; only
// the storage discipline behind them differs. All readings are Durations
// measured from the clock's own zero point, and all operations are
// synchronous, non-blocking state accesses.
type Clock interface {
	// Control the monotonic reading
	SetTime(Duration)
	Advance(Duration)
	Time() Duration

	// Control the wall-clock reading
	SetSystemTime(Duration)
	AdvanceSystemTime(Duration)
	SystemTime() Duration

	// IsThreadLocal reports whether the clock's state is scoped to the
	// calling goroutine rather than shared by the whole process.
	IsThreadLocal() bool
}
