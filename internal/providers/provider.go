package providers

import (
	"context"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// MatchProvider defines how upstream match data is fetched and normalized.
// Implementations return a fresh slice on every call.
type MatchProvider interface {
	FetchMatches(ctx context.Context) ([]matches.Match, error)
}

// MatchProviderFunc adapts a function to MatchProvider.
type MatchProviderFunc func(ctx context.Context) ([]matches.Match, error)

func (f MatchProviderFunc) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return f(ctx)
}
