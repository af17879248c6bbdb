// Package clockstate holds the raw mutable state behind a mock clock: a
// monotonic reading and a wall-clock reading, both starting at zero. A
// State performs no synchronization of its own; each clock flavor imposes
// its own isolation discipline around it.
package clockstate

import (
	"math"
	"time"
)

// Max is the largest representable reading. Advancing past it clamps
// rather than wrapping.
const Max = time.Duration(math.MaxInt64)

// State is the pair of readings behind one mock clock. The zero value is
// a clock at the start of time, ready to use.
type State struct {
	instant time.Duration
	system  time.Duration
}

func New() *State {
	return &State{}
}

// SetTime overwrites the monotonic reading. Negative values clamp to
// zero; readings are never negative.
func (s *State) SetTime(d time.Duration) {
	s.instant = clamp(d)
}

// Advance moves the monotonic reading forward by d, saturating at Max.
func (s *State) Advance(d time.Duration) {
	s.instant = SaturatingAdd(s.instant, d)
}

// Time returns the current monotonic reading.
func (s *State) Time() time.Duration {
	return s.instant
}

// SetSystemTime overwrites the wall-clock reading. Unlike the monotonic
// reading under normal use, the wall clock may be rewound to an earlier
// value. Negative values clamp to zero.
func (s *State) SetSystemTime(d time.Duration) {
	s.system = clamp(d)
}

// AdvanceSystemTime moves the wall-clock reading forward by d, saturating
// at Max.
func (s *State) AdvanceSystemTime(d time.Duration) {
	s.system = SaturatingAdd(s.system, d)
}

// SystemTime returns the current wall-clock reading.
func (s *State) SystemTime() time.Duration {
	return s.system
}

// SaturatingAdd adds d to the reading t, clamping negative d to zero and
// the sum to Max.
func SaturatingAdd(t, d time.Duration) time.Duration {
	d = clamp(d)
	if d > Max-t {
		return Max
	}
	return t + d
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
