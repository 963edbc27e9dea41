// Package clock provides the periodic "now" that relative labels are
// computed against.
package clock

import (
	"context"
	"sync"
	"time"
)

const defaultInterval = 30 * time.Second

// Clock reports the current reference time.
type Clock interface {
	Now() time.Time
}

// Func adapts a function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// Ticker refreshes its reference time on an interval so labels move forward
// without reloading data. It owns its goroutine and releases it on Stop or
// when the start context is done.
type Ticker struct {
	interval time.Duration
	source   func() time.Time

	mu      sync.RWMutex
	current time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	onTick   func(time.Time)
}

// NewTicker constructs a Ticker. Non-positive intervals use 30s.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Ticker{
		interval: interval,
		source:   time.Now,
		done:     make(chan struct{}),
	}
}

// Interval returns the refresh period.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Start samples the time immediately and then on every interval. Calling
// Start more than once has no effect.
func (t *Ticker) Start(ctx context.Context) {
	t.startMu.Lock()
	if t.started {
		t.startMu.Unlock()
		return
	}
	t.started = true
	t.startMu.Unlock()

	t.tick()
	t.ticker = time.NewTicker(t.interval)
	go func() {
		defer t.ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.done:
				return
			case <-t.ticker.C:
				t.tick()
			}
		}
	}()
}

// Stop halts the refresh loop. It is safe to call multiple times.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}

// Now returns the last sampled time, or the live time before Start.
func (t *Ticker) Now() time.Time {
	t.mu.RLock()
	current := t.current
	t.mu.RUnlock()
	if current.IsZero() {
		return t.source()
	}
	return current
}

func (t *Ticker) tick() {
	now := t.source()
	t.mu.Lock()
	t.current = now
	t.mu.Unlock()
	if t.onTick != nil {
		t.onTick(now)
	}
}
