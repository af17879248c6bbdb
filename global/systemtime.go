package global

import (
	"time"

	"github.com/museun/mock-instant/internal/clockstate"
)

// SystemTime is a snapshot of the wall-clock reading, taken with
// [SystemNow]. Unlike an [Instant], the reading behind it may be rewound
// between capture and query, so measuring against a SystemTime can fail
// with a [SystemTimeError].
type SystemTime struct {
	d Duration
}

// UnixEpoch is the mocked epoch, the wall clock's zero reading. It sits
// at zero rather than at the real unix epoch date.
var UnixEpoch = SystemTime{}

// SystemNow captures the current wall-clock reading.
func SystemNow() SystemTime {
	return SystemTime{Clock.SystemTime()}
}

// SystemTimeError reports that a wall-clock measurement ran backward:
// the reference point was later than the time measured against it. It
// carries the magnitude of the gap.
type SystemTimeError struct {
	diff Duration
}

func (e *SystemTimeError) Error() string {
	return "second time provided was later than self"
}

// Duration returns how far in the opposite direction the reference
// point lay.
func (e *SystemTimeError) Duration() Duration {
	return e.diff
}

// DurationSince returns t - earlier, or a [SystemTimeError] carrying
// earlier - t when earlier is actually the later of the two.
func (t SystemTime) DurationSince(earlier SystemTime) (Duration, error) {
	if t.d < earlier.d {
		return 0, &SystemTimeError{diff: earlier.d - t.d}
	}
	return t.d - earlier.d, nil
}

// Elapsed returns how far the wall clock has moved since t was captured,
// or a [SystemTimeError] when the clock has been rewound below t in the
// meantime.
func (t SystemTime) Elapsed() (Duration, error) {
	return SystemNow().DurationSince(t)
}

// Add returns the time d after t, clamping negative d to zero and
// saturating at the maximum reading.
func (t SystemTime) Add(d Duration) SystemTime {
	return SystemTime{clockstate.SaturatingAdd(t.d, d)}
}

// Sub returns the duration t-u. It is shorthand for the forward case of
// DurationSince; when u is later than t the result is negative.
func (t SystemTime) Sub(u SystemTime) Duration {
	return t.d - u.d
}

// CheckedAdd returns the time d after t, reporting false if d is
// negative or the sum exceeds the maximum reading.
func (t SystemTime) CheckedAdd(d Duration) (SystemTime, bool) {
	if d < 0 || d > clockstate.Max-t.d {
		return SystemTime{}, false
	}
	return SystemTime{t.d + d}, true
}

// CheckedSub returns the time d before t, reporting false if d is
// negative or the result would land before [UnixEpoch].
func (t SystemTime) CheckedSub(d Duration) (SystemTime, bool) {
	if d < 0 || d > t.d {
		return SystemTime{}, false
	}
	return SystemTime{t.d - d}, true
}

// After reports whether the time t is after u.
func (t SystemTime) After(u SystemTime) bool {
	return t.d > u.d
}

// Before reports whether the time t is before u.
func (t SystemTime) Before(u SystemTime) bool {
	return t.d < u.d
}

// Compare compares the time t with u. If t is before u, it returns -1;
// if t is after u, it returns +1; if they're the same, it returns 0.
func (t SystemTime) Compare(u SystemTime) int {
	switch {
	case t.d < u.d:
		return -1
	case t.d > u.d:
		return 1
	}
	return 0
}

// Equal reports whether t and u capture the same reading.
func (t SystemTime) Equal(u SystemTime) bool {
	return t.d == u.d
}

// IsZero reports whether t is [UnixEpoch].
func (t SystemTime) IsZero() bool {
	return t.d == 0
}

// IsThreadLocal reports false: the reading behind this SystemTime is
// shared by the whole process.
func (SystemTime) IsThreadLocal() bool {
	return false
}

func (t SystemTime) String() string {
	return t.d.String()
}

// FromTime maps a real [time.Time] onto the mocked wall clock, measured
// from the real unix epoch. Times before the epoch cannot be represented
// and yield a [SystemTimeError] carrying the gap. FromTime only converts
// the value it is given; it never reads the real clock.
func FromTime(t time.Time) (SystemTime, error) {
	d := t.Sub(time.Unix(0, 0))
	if d < 0 {
		return SystemTime{}, &SystemTimeError{diff: -d}
	}
	return SystemTime{d}, nil
}

// Time maps t back onto the real timeline, as a [time.Time] measured
// from the real unix epoch in UTC.
func (t SystemTime) Time() time.Time {
	return time.Unix(0, 0).UTC().Add(t.d)
}
