package couple

import (
	"sync"
	"time"
)

// Elapsed is a snapshot of the time passed since the relationship start date.
// TotalSeconds always equals Days*86400 + Hours*3600 + Minutes*60 + Seconds.
type Elapsed struct {
	Days         int   `json:"days"`
	Hours        int   `json:"hours"`
	Minutes      int   `json:"minutes"`
	Seconds      int   `json:"seconds"`
	TotalSeconds int64 `json:"total_seconds"`
}

// ComputeElapsed derives the elapsed time between start and now. A start date
// in the future yields the zero snapshot rather than negative components.
func ComputeElapsed(start, now time.Time) Elapsed {
	totalSeconds := int64(now.Sub(start) / time.Second)
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	return Elapsed{
		Days:         int(totalSeconds / 86400),
		Hours:        int((totalSeconds % 86400) / 3600),
		Minutes:      int((totalSeconds % 3600) / 60),
		Seconds:      int(totalSeconds % 60),
		TotalSeconds: totalSeconds,
	}
}

// Counter recomputes the elapsed snapshot every second and hands it to a
// callback, without any server round-trip.
type Counter struct {
	start  time.Time
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewCounter starts a counter for the given start date. The callback receives
// an initial snapshot immediately and then one per second until Stop.
func NewCounter(start time.Time, fn func(Elapsed)) *Counter {
	c := &Counter{
		start:  start,
		ticker: time.NewTicker(time.Second),
		done:   make(chan struct{}),
	}

	fn(ComputeElapsed(start, time.Now()))

	go func() {
		for {
			select {
			case now := <-c.ticker.C:
				fn(ComputeElapsed(c.start, now))
			case <-c.done:
				return
			}
		}
	}()

	return c
}

// Stop releases the counter's ticker. Safe to call more than once.
func (c *Counter) Stop() {
	c.once.Do(func() {
		c.ticker.Stop()
		close(c.done)
	})
}
