package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/config"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
	"github.com/preston-bernstein/esports-tracker/internal/providers/pandascore"
	"github.com/preston-bernstein/esports-tracker/internal/teststubs"
)

func TestProviderFactoryBuildsPandaScoreWithFallback(t *testing.T) {
	set := newProviderFactory(nil, nil).build(config.Config{Provider: config.ProviderPandaScore})
	if set.remote == nil || set.fallback == nil {
		t.Fatalf("expected remote and fallback, got %+v", set)
	}
	if _, err := set.remote.FetchMatches(context.Background()); !errors.Is(err, providers.ErrMissingCredential) {
		t.Fatalf("expected missing credential through retry wrapper, got %v", err)
	}
}

func TestProviderFactoryFixtureIsLocalOnly(t *testing.T) {
	set := newProviderFactory(nil, nil).build(config.Config{Provider: config.ProviderFixture})
	if set.remote != nil {
		t.Fatalf("expected no remote for fixture provider, got %T", set.remote)
	}
	if set.fallback == nil {
		t.Fatalf("expected fallback provider")
	}
}

func TestProviderFactoryWrapRetriesConfiguredAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	stub := &teststubs.StubProvider{Err: errors.New("flaky")}
	cfg := config.Config{
		Provider: config.ProviderPandaScore,
		PandaScore: config.PandaScoreConfig{
			RetryAttempts: 3,
			RetryBackoff:  time.Millisecond,
			MinInterval:   time.Millisecond,
		},
	}

	wrapped := newProviderFactory(nil, rec).wrap(cfg, stub)
	if _, err := wrapped.FetchMatches(context.Background()); err == nil {
		t.Fatalf("expected error after retries")
	}
	if got := stub.Calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	if got := rec.ProviderCalls("pandascore"); got != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", got)
	}
}

func TestProviderFactoryWrapDefaultsToSingleAttempt(t *testing.T) {
	stub := &teststubs.StubProvider{Err: errors.New("down")}
	wrapped := newProviderFactory(nil, nil).wrap(config.Config{}, stub)
	_, _ = wrapped.FetchMatches(context.Background())
	if got := stub.Calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt, got %d", got)
	}
	if newProviderFactory(nil, nil).wrap(config.Config{}, nil) != nil {
		t.Fatalf("expected nil remote to stay nil")
	}
}

func TestMetricsName(t *testing.T) {
	if got := metricsName(" PandaScore ", nil); got != "pandascore" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := metricsName("", &teststubs.StubProvider{}); got != "*teststubs.stubprovider" {
		t.Fatalf("expected type-derived name, got %q", got)
	}
	if got := metricsName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %q", got)
	}
}

func TestNewMatchServiceLoadsLocalData(t *testing.T) {
	svc := NewMatchService(config.Config{Provider: config.ProviderFixture}, nil, nil)
	if !svc.State().Loading {
		t.Fatalf("expected service to be loading before first refresh")
	}
	res := svc.Refresh(context.Background())
	if res.Source != appmatches.SourceLocal || len(res.Matches) == 0 {
		t.Fatalf("expected bundled matches, got %+v", res)
	}
}

func TestDisplayLocation(t *testing.T) {
	cfg := config.Config{Display: config.DisplayConfig{Timezone: "Not/AZone"}}
	if loc := DisplayLocation(cfg, nil); loc != time.UTC {
		t.Fatalf("expected UTC for invalid zone, got %v", loc)
	}
	cfg.Display.Timezone = "UTC"
	if loc := DisplayLocation(cfg, nil); loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestNewMatchServiceFallsBackWhenEveryGameQueryFails(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]int{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.URL.Query().Get("filter[videogame]")]++
		mu.Unlock()
		http.Error(w, `{"error":"upstream down"}`, http.StatusInternalServerError)
	}))
	defer upstream.Close()

	rec := metrics.NewRecorder()
	svc := NewMatchService(config.Config{
		Provider: config.ProviderPandaScore,
		PandaScore: config.PandaScoreConfig{
			BaseURL:       upstream.URL,
			Token:         "secret",
			Timeout:       time.Second,
			RetryAttempts: 1,
			MinInterval:   time.Millisecond,
			Placeholder:   true,
		},
	}, nil, rec)

	res := svc.Refresh(context.Background())

	if res.Source != appmatches.SourceLocal || res.Message != appmatches.MessageFetchFailed {
		t.Fatalf("expected fetch-failed local fallback, got source %q message %q", res.Source, res.Message)
	}
	var fetchErr *providers.FetchError
	if !errors.As(res.Err, &fetchErr) || len(fetchErr.Failures) != len(pandascore.DefaultRoster) {
		t.Fatalf("expected one failure per roster game, got %v", res.Err)
	}
	if len(res.Matches) == 0 || len(svc.Matches()) != len(res.Matches) {
		t.Fatalf("expected bundled dataset stored, got %d", len(res.Matches))
	}
	mu.Lock()
	defer mu.Unlock()
	for _, slug := range pandascore.DefaultRoster {
		if seen[slug] != 1 {
			t.Fatalf("expected one query for %s, got %d", slug, seen[slug])
		}
	}
	if rec.Fallbacks(appmatches.ReasonFetchFailed) != 1 {
		t.Fatalf("expected fetch_failed fallback recorded")
	}
}
