package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	Matches []matches.Match
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchMatches returns configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	s.Calls.Add(1)
	notify(s.Notify)
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]matches.Match, len(s.Matches))
	copy(out, s.Matches)
	return out, nil
}

// StubRefresher is a test double for poller.Refresher.
type StubRefresher struct {
	mu     sync.Mutex
	result appmatches.LoadResult
	Calls  atomic.Int32
	Notify chan struct{}
}

// SetResult changes what subsequent Refresh calls return.
func (s *StubRefresher) SetResult(res appmatches.LoadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = res
}

// Refresh returns the configured result while tracking calls.
func (s *StubRefresher) Refresh(ctx context.Context) appmatches.LoadResult {
	_ = ctx
	s.Calls.Add(1)
	notify(s.Notify)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// notify closes ch on first use so tests can wait for the first call.
func notify(ch chan struct{}) {
	if ch == nil {
		return
	}
	select {
	case <-ch:
	default:
		close(ch)
	}
}
