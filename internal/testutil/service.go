package testutil

import (
	"context"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/store"
)

// NewServiceWithMatches builds a match service serving list as local data.
// The service has already completed one refresh.
func NewServiceWithMatches(list []matches.Match) *appmatches.Service {
	svc := appmatches.NewService(store.NewMemoryStore(), nil, GoodProvider{Matches: list}, nil, nil)
	svc.Refresh(context.Background())
	return svc
}

// NewLoadingService builds a match service that has not refreshed yet.
func NewLoadingService() *appmatches.Service {
	return appmatches.NewService(store.NewMemoryStore(), nil, EmptyProvider{}, nil, nil)
}
