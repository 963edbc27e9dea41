package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// rateLimitedProvider wraps a MatchProvider and spaces calls by a minimum interval.
type rateLimitedProvider struct {
	next    MatchProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that allows one call per
// interval. The first call passes immediately; later calls wait for the
// interval to elapse or for ctx to end.
func NewRateLimitedProvider(next MatchProvider, interval time.Duration, logger *slog.Logger) MatchProvider {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if p == nil || p.next == nil {
		p.logWarn(ctx, "provider unavailable")
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		p.logWarn(ctx, "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// Wait fails early when the deadline falls before the next slot.
		return nil, context.DeadlineExceeded
	}
	return p.next.FetchMatches(ctx)
}

func (p *rateLimitedProvider) logWarn(ctx context.Context, msg string, args ...any) {
	if p == nil {
		return
	}
	logProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", msg, args...)
}
