package threadlocal

import (
	"fmt"
	"sync"
	"time"

	"github.com/petermattis/goid"

	mockinstant "github.com/museun/mock-instant"
	"github.com/museun/mock-instant/internal/clockstate"
)

// See [time.Duration].
type Duration = time.Duration

// One state per goroutine, created lazily on first touch and kept for
// the life of the process. Goroutine IDs are never reused within a
// process, so an entry can never alias a state belonging to a different
// goroutine. Each state is only ever touched by its owner; the registry
// itself is the only shared structure.
var states sync.Map // goroutine id -> *clockstate.State

func current() *clockstate.State {
	id := goid.Get()
	if s, ok := states.Load(id); ok {
		return s.(*clockstate.State)
	}
	s, _ := states.LoadOrStore(id, clockstate.New())
	return s.(*clockstate.State)
}

// MockClock is the control surface for the calling goroutine's clock. It
// is stateless; the zero value (or the package-level [Clock] instance)
// is ready to use, and every value controls the state belonging to
// whichever goroutine invokes it.
type MockClock struct{}

// Clock is a ready-made instance of [MockClock].
var Clock MockClock

var _ mockinstant.Clock = MockClock{}

// SetTime overwrites the calling goroutine's monotonic reading. Setting
// it below its current value while Instants are outstanding breaks the
// monotonic contract those Instants rely on.
func (MockClock) SetTime(d Duration) {
	current().SetTime(d)
}

// Advance moves the calling goroutine's monotonic reading forward by d,
// saturating at the maximum representable reading.
func (MockClock) Advance(d Duration) {
	current().Advance(d)
}

// Time returns the calling goroutine's monotonic reading.
func (MockClock) Time() Duration {
	return current().Time()
}

// SetSystemTime overwrites the calling goroutine's wall-clock reading.
// Rewinding it below a captured SystemTime is allowed; the capture's
// Elapsed will then report a SystemTimeError.
func (MockClock) SetSystemTime(d Duration) {
	current().SetSystemTime(d)
}

// AdvanceSystemTime moves the calling goroutine's wall-clock reading
// forward by d, saturating at the maximum representable reading.
func (MockClock) AdvanceSystemTime(d Duration) {
	current().AdvanceSystemTime(d)
}

// SystemTime returns the calling goroutine's wall-clock reading.
func (MockClock) SystemTime() Duration {
	return current().SystemTime()
}

// IsThreadLocal reports true: this clock's state is scoped to the
// calling goroutine.
func (MockClock) IsThreadLocal() bool {
	return true
}

func (c MockClock) String() string {
	return fmt.Sprintf("MockClock(time=%s, system_time=%s)", c.Time(), c.SystemTime())
}
