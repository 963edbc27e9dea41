package providers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

type countingProvider struct {
	calls atomic.Int32
}

func (c *countingProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	c.calls.Add(1)
	return []matches.Match{}, nil
}

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &countingProvider{}
	rl := NewRateLimitedProvider(inner, 40*time.Millisecond, nil)

	start := time.Now()
	if _, err := rl.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 20*time.Millisecond {
		t.Fatalf("expected first call to pass immediately, elapsed %s", elapsed)
	}

	if _, err := rl.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second call to wait for the interval, elapsed %s", elapsed)
	}
	if inner.calls.Load() != 2 {
		t.Fatalf("expected inner provider called twice, got %d", inner.calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &countingProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchMatches(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderFailsFastPastDeadline(t *testing.T) {
	inner := &countingProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)
	if _, err := rl.FetchMatches(context.Background()); err != nil {
		t.Fatalf("expected first call to pass, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, err := rl.FetchMatches(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("expected limiter to fail fast")
	}
	if IsRetryable(context.DeadlineExceeded) {
		t.Fatalf("expected deadline errors to stop retries")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner MatchProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	_, err := rl.FetchMatches(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&countingProvider{}, 0, nil).(*rateLimitedProvider)
	if got := rl.limiter.Limit(); got <= 0 {
		t.Fatalf("expected a positive default limit, got %v", got)
	}
}
