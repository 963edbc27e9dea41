package server

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/config"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
	"github.com/preston-bernstein/esports-tracker/internal/store"
)

// providerSet is the remote and local pair the match service loads from. A
// nil remote means local data only.
type providerSet struct {
	remote   providers.MatchProvider
	fallback providers.MatchProvider
}

// providerFactory assembles providers with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providerSet {
	return providerSet{
		remote:   f.wrap(cfg, selectRemote(cfg, f.logger, f.metrics)),
		fallback: selectFallback(cfg, f.logger),
	}
}

// wrap decorates a remote provider with a minimum call interval and retries.
// Nil stays nil so the service keeps its local-only mode.
func (f providerFactory) wrap(cfg config.Config, remote providers.MatchProvider) providers.MatchProvider {
	if remote == nil {
		return nil
	}
	attempts := cfg.PandaScore.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}
	limited := providers.NewRateLimitedProvider(remote, cfg.PandaScore.MinInterval, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, metricsName(cfg.Provider, remote), attempts, cfg.PandaScore.RetryBackoff)
}

// metricsName labels a wrapped provider in logs and metrics. The configured
// name wins; otherwise the concrete type is used.
func metricsName(configured string, p providers.MatchProvider) string {
	name := strings.ToLower(strings.TrimSpace(configured))
	switch {
	case name != "":
		return name
	case p == nil:
		return "provider"
	default:
		return strings.ToLower(fmt.Sprintf("%T", p))
	}
}

// NewMatchService builds a match service with the same providers the server
// uses, without starting the poller or any listener.
func NewMatchService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *appmatches.Service {
	set := newProviderFactory(logger, recorder).build(cfg)
	return appmatches.NewService(store.NewMemoryStore(), set.remote, set.fallback, logger, recorder)
}

// DisplayLocation resolves the configured display timezone, falling back to UTC.
func DisplayLocation(cfg config.Config, logger *slog.Logger) *time.Location {
	return resolveLocation(cfg.Display.Timezone, logger)
}
