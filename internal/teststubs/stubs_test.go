package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Matches: []matches.Match{{ID: matches.StringID("m1")}}, Err: err}
	if _, got := p.FetchMatches(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}

	p.Err = nil
	list, _ := p.FetchMatches(context.Background())
	list[0].TeamA = "mutated"
	if p.Matches[0].TeamA == "mutated" {
		t.Fatalf("expected stub to return a copy")
	}
}

func TestStubRefresherNotifiesOnce(t *testing.T) {
	r := &StubRefresher{Notify: make(chan struct{})}
	r.SetResult(appmatches.LoadResult{Source: appmatches.SourceRemote})

	res := r.Refresh(context.Background())
	r.Refresh(context.Background())

	select {
	case <-r.Notify:
	case <-time.After(time.Second):
		t.Fatalf("expected notify channel closed")
	}
	if res.Source != appmatches.SourceRemote || r.Calls.Load() != 2 {
		t.Fatalf("unexpected refresher state: %+v calls=%d", res, r.Calls.Load())
	}
}
