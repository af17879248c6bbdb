package global_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/museun/mock-instant/global"
)

func TestSystemTimeElapsed(t *testing.T) {
	reset()

	now := global.SystemNow()
	for i := 1; i <= 3; i++ {
		global.Clock.AdvanceSystemTime(100 * time.Millisecond)
		d, err := now.Elapsed()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(i)*100*time.Millisecond, d)
	}
	global.Clock.AdvanceSystemTime(100 * time.Millisecond)

	next := global.SystemNow()
	d, err := next.DurationSince(now)
	require.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, d)
}

func TestSystemTimeBackwardDetection(t *testing.T) {
	reset()

	global.Clock.SetSystemTime(10 * time.Second)
	captured := global.SystemNow()

	global.Clock.SetSystemTime(5 * time.Second)

	_, err := captured.Elapsed()
	require.Error(t, err)

	var ste *global.SystemTimeError
	require.True(t, errors.As(err, &ste))
	assert.Equal(t, 5*time.Second, ste.Duration())
	assert.Equal(t, "second time provided was later than self", ste.Error())
}

func TestSystemTimeDurationSinceBackward(t *testing.T) {
	reset()

	earlier := global.SystemNow()
	global.Clock.AdvanceSystemTime(7 * time.Second)
	later := global.SystemNow()

	var ste *global.SystemTimeError
	_, err := earlier.DurationSince(later)
	require.True(t, errors.As(err, &ste))
	assert.Equal(t, 7*time.Second, ste.Duration())
}

func TestSystemTimeCheckedArithmetic(t *testing.T) {
	reset()

	start := global.SystemNow()
	interval := 42 * time.Millisecond
	global.Clock.AdvanceSystemTime(interval)

	// epoch + 1 = 1
	got, ok := start.CheckedAdd(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, global.UnixEpoch.Add(time.Millisecond), got)

	// now + 1 = diff + 1
	got, ok = global.SystemNow().CheckedAdd(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, global.UnixEpoch.Add(43*time.Millisecond), got)

	// epoch - 1 = no
	_, ok = start.CheckedSub(time.Millisecond)
	assert.False(t, ok)

	// now - 1 = diff - 1
	got, ok = global.SystemNow().CheckedSub(time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, global.UnixEpoch.Add(41*time.Millisecond), got)

	// now - (diff + 1) = no
	_, ok = global.SystemNow().CheckedSub(43 * time.Millisecond)
	assert.False(t, ok)
}

func TestSystemTimeOrdering(t *testing.T) {
	reset()

	a := global.SystemNow()
	global.Clock.AdvanceSystemTime(time.Second)
	b := global.SystemNow()

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, a.Equal(global.UnixEpoch))
	assert.True(t, a.IsZero())
	assert.Equal(t, time.Second, b.Sub(a))
	assert.Equal(t, -time.Second, a.Sub(b))
}

func TestSystemTimeRealTimeRoundtrip(t *testing.T) {
	at := time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC)

	mocked, err := global.FromTime(at)
	require.NoError(t, err)
	assert.Equal(t, global.UnixEpoch.Add(1708041600*time.Second), mocked)
	assert.True(t, at.Equal(mocked.Time()))

	// before the epoch is unrepresentable
	var ste *global.SystemTimeError
	_, err = global.FromTime(time.Date(1969, time.July, 20, 0, 0, 0, 0, time.UTC))
	require.True(t, errors.As(err, &ste))
	assert.Greater(t, ste.Duration(), time.Duration(0))
}
