package geocode

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/trunghoangnt2003/memory/internal/logger"
)

const (
	// DefaultDebounceInterval is the quiet window after the last keystroke
	DefaultDebounceInterval = 500 * time.Millisecond
	// MinQueryLength is the shortest query that dispatches a request
	MinQueryLength = 3
)

// Searcher is implemented by Client
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// Debouncer turns a stream of keystrokes into trailing-edge debounced
// searches: any input within the quiet window cancels and restarts the timer,
// queries under MinQueryLength clear the suggestions without dispatching, and
// each dispatched search carries a sequence number so a slow response that
// arrives after a newer one is dropped instead of winning.
type Debouncer struct {
	searcher  Searcher
	interval  time.Duration
	onResults func(query string, results []Result)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a debouncer delivering results to onResults. An
// interval of zero uses DefaultDebounceInterval.
func NewDebouncer(searcher Searcher, interval time.Duration, onResults func(string, []Result)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{
		searcher:  searcher,
		interval:  interval,
		onResults: onResults,
	}
}

// Input registers a keystroke's current query text
func (d *Debouncer) Input(ctx context.Context, query string) {
	d.mu.Lock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if utf8.RuneCountInString(query) < MinQueryLength {
		// Invalidate any in-flight search and clear the suggestions.
		d.seq++
		d.mu.Unlock()
		d.onResults(query, nil)
		return
	}

	d.timer = time.AfterFunc(d.interval, func() {
		d.dispatch(ctx, query)
	})
	d.mu.Unlock()
}

// Stop cancels a pending dispatch
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) dispatch(ctx context.Context, query string) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	results, err := d.searcher.Search(ctx, query)
	if err != nil {
		logger.Service("geocode").Warn("Location search failed", "query", query, "error", err)
		return
	}

	d.mu.Lock()
	latest := seq == d.seq
	d.mu.Unlock()

	if latest {
		d.onResults(query, results)
	}
}
