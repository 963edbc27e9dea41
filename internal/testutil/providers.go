package testutil

import (
	"context"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
)

// GoodProvider returns the provided matches with no error.
type GoodProvider struct {
	Matches []matches.Match
}

func (p GoodProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	out := make([]matches.Match, len(p.Matches))
	copy(out, p.Matches)
	return out, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return nil, p.Err
}

// EmptyProvider returns no matches, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return []matches.Match{}, nil
}

// MissingCredentialProvider behaves like a remote client without a token.
type MissingCredentialProvider struct{}

func (MissingCredentialProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	return nil, providers.ErrMissingCredential
}
