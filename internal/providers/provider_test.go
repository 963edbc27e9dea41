package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

type testProvider struct{}

func (t *testProvider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return nil, nil
}

func TestMatchProviderInterfaceImplemented(t *testing.T) {
	var _ MatchProvider = (*testProvider)(nil)
	var _ MatchProvider = MatchProviderFunc(nil)
}

func TestMatchProviderFuncDelegates(t *testing.T) {
	called := false
	p := MatchProviderFunc(func(ctx context.Context) ([]matches.Match, error) {
		called = true
		return []matches.Match{{ID: matches.StringID("x")}}, nil
	})

	list, err := p.FetchMatches(context.Background())
	if err != nil || len(list) != 1 || !called {
		t.Fatalf("expected delegated call, got %v err=%v", list, err)
	}
}
