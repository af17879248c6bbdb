package threadlocal

import (
	"github.com/museun/mock-instant/internal/clockstate"
)

// Instant is a snapshot of the calling goroutine's monotonic reading,
// taken with [Now]. Instants are immutable values; later changes to the
// clock affect only readings taken later, never an Instant already
// captured. An Instant may be handed to another goroutine, but its
// Elapsed there measures against that goroutine's own clock.
type Instant struct {
	d Duration
}

// Now captures the calling goroutine's current monotonic reading.
func Now() Instant {
	return Instant{Clock.Time()}
}

// Elapsed returns how far the calling goroutine's clock has moved since
// t was captured. The reading is assumed not to have been reset below t
// in the meantime; a test that does reset it backward gets a negative
// duration.
func (t Instant) Elapsed() Duration {
	return Clock.Time() - t.d
}

// DurationSince returns t - earlier. As with Elapsed, ordering is the
// caller's responsibility.
func (t Instant) DurationSince(earlier Instant) Duration {
	return t.d - earlier.d
}

// CheckedDurationSince returns t - earlier, reporting false instead of a
// negative duration when earlier is actually the later of the two.
func (t Instant) CheckedDurationSince(earlier Instant) (Duration, bool) {
	if t.d < earlier.d {
		return 0, false
	}
	return t.d - earlier.d, true
}

// SaturatingDurationSince returns t - earlier, or zero when earlier is
// actually the later of the two.
func (t Instant) SaturatingDurationSince(earlier Instant) Duration {
	d, _ := t.CheckedDurationSince(earlier)
	return d
}

// Add returns the instant d after t, clamping negative d to zero and
// saturating at the maximum reading.
func (t Instant) Add(d Duration) Instant {
	return Instant{clockstate.SaturatingAdd(t.d, d)}
}

// Sub returns the duration t-u.
func (t Instant) Sub(u Instant) Duration {
	return t.DurationSince(u)
}

// CheckedAdd returns the instant d after t, reporting false if d is
// negative or the sum exceeds the maximum reading.
func (t Instant) CheckedAdd(d Duration) (Instant, bool) {
	if d < 0 || d > clockstate.Max-t.d {
		return Instant{}, false
	}
	return Instant{t.d + d}, true
}

// CheckedSub returns the instant d before t, reporting false if d is
// negative or the result would land before the start of the clock.
func (t Instant) CheckedSub(d Duration) (Instant, bool) {
	if d < 0 || d > t.d {
		return Instant{}, false
	}
	return Instant{t.d - d}, true
}

// After reports whether the instant t is after u.
func (t Instant) After(u Instant) bool {
	return t.d > u.d
}

// Before reports whether the instant t is before u.
func (t Instant) Before(u Instant) bool {
	return t.d < u.d
}

// Compare compares the instant t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0.
func (t Instant) Compare(u Instant) int {
	switch {
	case t.d < u.d:
		return -1
	case t.d > u.d:
		return 1
	}
	return 0
}

// Equal reports whether t and u capture the same reading, regardless of
// which goroutine's clock produced them.
func (t Instant) Equal(u Instant) bool {
	return t.d == u.d
}

// IsZero reports whether t captures the start of the clock.
func (t Instant) IsZero() bool {
	return t.d == 0
}

// IsThreadLocal reports true: the reading behind this Instant came from
// a goroutine-scoped clock.
func (Instant) IsThreadLocal() bool {
	return true
}

func (t Instant) String() string {
	return t.d.String()
}
