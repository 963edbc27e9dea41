package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/poller"
)

// StubPoller records lifecycle calls and returns canned values.
type StubPoller struct {
	StartCalls   atomic.Int32
	StopCalls    atomic.Int32
	TriggerCalls atomic.Int32
	Err          error
	StatusVal    poller.Status
	Result       appmatches.LoadResult
}

func (p *StubPoller) Start(context.Context) { p.StartCalls.Add(1) }

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls.Add(1)
	return p.Err
}

func (p *StubPoller) Status() poller.Status { return p.StatusVal }

func (p *StubPoller) Trigger(context.Context) appmatches.LoadResult {
	p.TriggerCalls.Add(1)
	return p.Result
}

// StubHTTPServer stands in for the API and metrics listeners.
//
// ListenAndServe returns ListenErr (use http.ErrServerClosed for a clean
// exit). When Block is non-nil, Shutdown waits for it to close or for the
// context to expire.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	ListenCalls   atomic.Int32
	ShutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.ShutdownCalls.Add(1)
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}
