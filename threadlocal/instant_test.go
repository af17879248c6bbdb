package threadlocal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museun/mock-instant/threadlocal"
)

func TestInstantElapsed(t *testing.T) {
	reset()

	now := threadlocal.Now()
	assert.Equal(t, time.Duration(0), now.Elapsed())

	for i := 1; i <= 3; i++ {
		threadlocal.Clock.Advance(100 * time.Millisecond)
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, now.Elapsed())
	}
	threadlocal.Clock.Advance(100 * time.Millisecond)

	next := threadlocal.Now()
	assert.Equal(t, 400*time.Millisecond, next.DurationSince(now))
}

func TestInstantElapsedEndToEnd(t *testing.T) {
	reset()

	now := threadlocal.Now()
	threadlocal.Clock.Advance(15 * time.Second)
	threadlocal.Clock.Advance(2 * time.Second)

	assert.Equal(t, 17*time.Second, now.Elapsed())
}

func TestInstantCheckedDurationSince(t *testing.T) {
	reset()

	earlier := threadlocal.Now()
	interval := 42 * time.Millisecond
	threadlocal.Clock.Advance(interval)
	later := threadlocal.Now()

	d, ok := later.CheckedDurationSince(earlier)
	require.True(t, ok)
	assert.Equal(t, interval, d)

	_, ok = earlier.CheckedDurationSince(later)
	assert.False(t, ok)

	assert.Equal(t, time.Duration(0), earlier.SaturatingDurationSince(later))
}

func TestInstantCheckedArithmetic(t *testing.T) {
	reset()

	start := threadlocal.Now()
	threadlocal.Clock.Advance(42 * time.Millisecond)

	got, ok := start.CheckedAdd(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, threadlocal.Instant{}.Add(time.Millisecond), got)

	_, ok = start.CheckedSub(time.Millisecond)
	assert.False(t, ok)

	got, ok = threadlocal.Now().CheckedSub(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, threadlocal.Instant{}.Add(41*time.Millisecond), got)
}

// An Instant is just a captured value; carried to another goroutine it
// compares equal to that goroutine's own capture of the same reading.
func TestInstantEqualityAcrossGoroutines(t *testing.T) {
	reset()

	threadlocal.Clock.SetTime(time.Second)
	mine := threadlocal.Now()

	done := make(chan struct{})
	go func() {
		defer close(done)
		threadlocal.Clock.SetTime(time.Second)
		assert.True(t, threadlocal.Now().Equal(mine))
	}()
	<-done
}
