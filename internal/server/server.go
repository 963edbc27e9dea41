package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	appgames "github.com/preston-bernstein/esports-tracker/internal/app/games"
	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/clock"
	"github.com/preston-bernstein/esports-tracker/internal/config"
	httpserver "github.com/preston-bernstein/esports-tracker/internal/http"
	"github.com/preston-bernstein/esports-tracker/internal/http/handlers"
	"github.com/preston-bernstein/esports-tracker/internal/http/middleware"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/poller"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
	"github.com/preston-bernstein/esports-tracker/internal/store"
)

var metricsSetup = metrics.Setup

// Poller is the slice of the background refresher the server drives.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
	Trigger(ctx context.Context) appmatches.LoadResult
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	matches       *appmatches.Service
	catalog       *appgames.Service
	ticker        *clock.Ticker
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with providers selected from cfg.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, remote, fallback providers.MatchProvider) *Server {
	return newServerWithMetrics(cfg, logger, &providerSet{remote: remote, fallback: fallback}, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provs *providerSet, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var set providerSet
	if provs == nil {
		set = factory.build(cfg)
	} else {
		set = providerSet{remote: factory.wrap(cfg, provs.remote), fallback: provs.fallback}
		if set.fallback == nil {
			set.fallback = selectFallback(cfg, logger)
		}
	}

	memoryStore := store.NewMemoryStore()
	matchSvc := appmatches.NewService(memoryStore, set.remote, set.fallback, logger, recorder)
	catalog := appgames.NewService(matchSvc)
	ticker := clock.NewTicker(cfg.LabelTick)
	plr := poller.New(matchSvc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, matchSvc, catalog, ticker, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		matches:       matchSvc,
		catalog:       catalog,
		ticker:        ticker,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, matchSvc *appmatches.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		matches:    matchSvc,
		ticker:     clock.NewTicker(cfg.LabelTick),
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, matchSvc *appmatches.Service, catalog *appgames.Service, clk clock.Clock, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	var refresh handlers.RefreshFunc
	if plr != nil {
		statusFn = plr.Status
		refresh = plr.Trigger
	}

	handler := handlers.NewHandler(matchSvc, catalog, logger, statusFn, handlers.Options{
		Clock:          clk,
		Location:       resolveLocation(cfg.Display.Timezone, logger),
		AllowAllStatus: cfg.Display.AllowAllStatus,
	})
	admin := handlers.NewAdminHandler(refresh, cfg.AdminToken, logger)
	router := httpserver.WithCORS(cfg.CORSOrigins, httpserver.NewRouter(handler, admin))
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(cfg.Port, wrapped)
}

func resolveLocation(tz string, logger *slog.Logger) *time.Location {
	loc, err := providers.ResolveTimezone(tz)
	if err != nil {
		logging.Warn(logger, "invalid display timezone, using UTC", slog.String("timezone", tz), logging.Err(err))
		return time.UTC
	}
	return loc
}

// Run starts the poller, label ticker and HTTP server, then waits for
// context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.ticker.Start(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.Err(err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.Err(err))
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}
	s.ticker.Stop()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.Err(err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.Err(err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Matches exposes the match service (useful for tests and the CLI).
func (s *Server) Matches() *appmatches.Service {
	return s.matches
}
