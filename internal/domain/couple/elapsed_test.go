package couple

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeElapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second)

	elapsed := ComputeElapsed(start, now)

	assert.Equal(t, 3, elapsed.Days)
	assert.Equal(t, 4, elapsed.Hours)
	assert.Equal(t, 5, elapsed.Minutes)
	assert.Equal(t, 6, elapsed.Seconds)
	assert.Equal(t, int64(3*86400+4*3600+5*60+6), elapsed.TotalSeconds)
}

func TestComputeElapsedIdentity(t *testing.T) {
	start := time.Date(2020, 6, 15, 10, 30, 0, 0, time.UTC)

	for _, offset := range []time.Duration{
		time.Second,
		59 * time.Second,
		time.Hour,
		25 * time.Hour,
		100*24*time.Hour + 23*time.Hour + 59*time.Minute + 59*time.Second,
	} {
		elapsed := ComputeElapsed(start, start.Add(offset))

		total := int64(elapsed.Days)*86400 + int64(elapsed.Hours)*3600 + int64(elapsed.Minutes)*60 + int64(elapsed.Seconds)
		assert.Equal(t, elapsed.TotalSeconds, total, "offset %v", offset)
		assert.Less(t, elapsed.Hours, 24)
		assert.Less(t, elapsed.Minutes, 60)
		assert.Less(t, elapsed.Seconds, 60)
	}
}

func TestComputeElapsedFutureDateClampsToZero(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)

	elapsed := ComputeElapsed(start, now)

	assert.Equal(t, Elapsed{}, elapsed)
}

func TestComputeElapsedSubSecondTruncates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	elapsed := ComputeElapsed(start, start.Add(900*time.Millisecond))

	assert.Equal(t, int64(0), elapsed.TotalSeconds)
}

func TestCounterEmitsInitialSnapshot(t *testing.T) {
	var calls atomic.Int64
	counter := NewCounter(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), func(Elapsed) {
		calls.Add(1)
	})
	defer counter.Stop()

	require.GreaterOrEqual(t, calls.Load(), int64(1))
}

func TestCounterStopIsIdempotent(t *testing.T) {
	counter := NewCounter(time.Now(), func(Elapsed) {})

	counter.Stop()
	counter.Stop()
}
