package global

import (
	"fmt"
	"sync"
	"time"

	mockinstant "github.com/museun/mock-instant"
	"github.com/museun/mock-instant/internal/clockstate"
)

// See [time.Duration].
type Duration = time.Duration

// The one state for the whole process, created up front and never torn
// down. Every access goes through the mutex so a read can never observe
// a half-applied write and concurrent advances never lose an update.
var (
	mu    sync.Mutex
	state = clockstate.New()
)

func with(f func(*clockstate.State)) {
	mu.Lock()
	defer mu.Unlock()
	f(state)
}

// MockClock is the control surface for the process-wide clock. It is
// stateless; the zero value (or the package-level [Clock] instance) is
// ready to use, and every value controls the same underlying state.
type MockClock struct{}

// Clock is a ready-made instance of [MockClock].
var Clock MockClock

var _ mockinstant.Clock = MockClock{}

// SetTime overwrites the monotonic reading. Setting it below its current
// value while Instants are outstanding breaks the monotonic contract
// those Instants rely on.
func (MockClock) SetTime(d Duration) {
	with(func(s *clockstate.State) { s.SetTime(d) })
}

// Advance moves the monotonic reading forward by d, saturating at the
// maximum representable reading. The whole read-modify-write is one
// critical section.
func (MockClock) Advance(d Duration) {
	with(func(s *clockstate.State) { s.Advance(d) })
}

// Time returns the current monotonic reading.
func (MockClock) Time() (d Duration) {
	with(func(s *clockstate.State) { d = s.Time() })
	return
}

// SetSystemTime overwrites the wall-clock reading. Rewinding it below a
// captured SystemTime is allowed; the capture's Elapsed will then report
// a SystemTimeError.
func (MockClock) SetSystemTime(d Duration) {
	with(func(s *clockstate.State) { s.SetSystemTime(d) })
}

// AdvanceSystemTime moves the wall-clock reading forward by d, saturating
// at the maximum representable reading.
func (MockClock) AdvanceSystemTime(d Duration) {
	with(func(s *clockstate.State) { s.AdvanceSystemTime(d) })
}

// SystemTime returns the current wall-clock reading.
func (MockClock) SystemTime() (d Duration) {
	with(func(s *clockstate.State) { d = s.SystemTime() })
	return
}

// IsThreadLocal reports false: this clock is shared by the whole process.
func (MockClock) IsThreadLocal() bool {
	return false
}

func (c MockClock) String() string {
	return fmt.Sprintf("MockClock(time=%s, system_time=%s)", c.Time(), c.SystemTime())
}
