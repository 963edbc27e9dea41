package server

import (
	"log/slog"

	"github.com/preston-bernstein/esports-tracker/internal/config"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
	"github.com/preston-bernstein/esports-tracker/internal/providers/fixture"
	"github.com/preston-bernstein/esports-tracker/internal/providers/pandascore"
)

// selectRemote returns the upstream provider for cfg, or nil when the
// service should serve bundled data only.
func selectRemote(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.MatchProvider {
	switch cfg.Provider {
	case config.ProviderPandaScore, "":
		ps := cfg.PandaScore
		return pandascore.NewClient(pandascore.Config{
			BaseURL:            ps.BaseURL,
			Token:              ps.Token,
			Timeout:            ps.Timeout,
			PerPage:            ps.PerPage,
			Roster:             ps.Games,
			DisablePlaceholder: !ps.Placeholder,
			Logger:             logger,
			Metrics:            recorder,
		})
	case config.ProviderFixture:
		return nil
	default:
		logging.Warn(logger, "unknown provider, serving local data only", slog.String(logging.FieldProvider, cfg.Provider))
		return nil
	}
}

// selectFallback loads the local dataset, preferring cfg.FixturePath when set.
// A bad file is logged and replaced by the bundled fixture.
func selectFallback(cfg config.Config, logger *slog.Logger) providers.MatchProvider {
	if cfg.FixturePath == "" {
		return fixture.New()
	}
	p, err := fixture.NewFromFile(cfg.FixturePath)
	if err != nil {
		logging.Error(logger, "fixture file unusable, using bundled data", err, slog.String("path", cfg.FixturePath))
		return fixture.New()
	}
	return p
}
