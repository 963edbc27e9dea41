package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
)

const (
	defaultInterval = 2 * time.Minute
	readyFailures   = 3
)

// Refresher reloads the match snapshot.
type Refresher interface {
	Refresh(ctx context.Context) appmatches.LoadResult
}

// Poller refreshes once on Start and then on every interval until Stop or
// until the start context ends.
type Poller struct {
	refresher Refresher
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration

	runMu  sync.Mutex
	cancel context.CancelFunc
	loop   conc.WaitGroup

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastSource          appmatches.Source
}

// IsReady reports whether a load has completed and the loop is not failing
// repeatedly. Serving local data because no credential is configured is not a
// failure; falling back after a remote error is.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero() && s.ConsecutiveFailures < readyFailures
}

func New(refresher Refresher, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
	}
}

// Start launches the loop. Calls after the first are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.loop.Go(func() { p.run(loopCtx) })
}

func (p *Poller) run(ctx context.Context) {
	logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
	defer logging.Info(p.logger, "poller stopped")

	p.fetchOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchOnce(ctx)
		}
	}
}

// Stop cancels the loop and waits for an in-flight refresh to return, bounded
// by ctx. It is safe to call more than once, and before Start.
func (p *Poller) Stop(ctx context.Context) error {
	p.runMu.Lock()
	cancel := p.cancel
	p.runMu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	exited := make(chan struct{})
	go func() {
		p.loop.Wait()
		close(exited)
	}()
	select {
	case <-exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Trigger runs one refresh outside the schedule and records it like a tick.
func (p *Poller) Trigger(ctx context.Context) appmatches.LoadResult {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) appmatches.LoadResult {
	began := time.Now()
	p.updateStatus(func(s *Status) { s.LastAttempt = began })

	res := p.refresher.Refresh(ctx)
	elapsed := time.Since(began)
	p.metrics.RecordPollerCycle(elapsed, res.Err)

	if res.Err != nil {
		logging.Error(p.logger, "poller refresh fell back to local data", res.Err,
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
		p.updateStatus(func(s *Status) {
			s.ConsecutiveFailures++
			s.LastError = res.Err.Error()
			s.LastSource = res.Source
		})
		return res
	}

	p.updateStatus(func(s *Status) {
		s.ConsecutiveFailures = 0
		s.LastError = ""
		s.LastSuccess = began
		s.LastSource = res.Source
	})
	logging.Info(p.logger, "poller refreshed matches",
		logging.FieldSource, res.Source,
		logging.FieldCount, len(res.Matches),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return res
}

func (p *Poller) updateStatus(fn func(*Status)) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	fn(&p.status)
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
