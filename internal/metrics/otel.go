package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func noopShutdown(context.Context) error { return nil }

// Setup returns an in-memory Recorder when telemetry is disabled. Enabled, it
// builds a meter provider that always feeds a Prometheus registry (served by
// the returned handler) and, with an endpoint set, pushes OTLP over HTTP.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, noopShutdown, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	opts, scrape, err := readerOptions(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, err
	}
	provider := sdkmetric.NewMeterProvider(append(opts, sdkmetric.WithResource(res))...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), scrape, provider.Shutdown, nil
}

func readerOptions(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Option, http.Handler, error) {
	prom, scrape, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(prom)}
	if cfg.OtlpEndpoint == "" {
		return opts, scrape, nil
	}
	push, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, err
	}
	return append(opts, sdkmetric.WithReader(push)), scrape, nil
}

const otlpPushInterval = 15 * time.Second

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushInterval)), nil
}

// prometheusComponents uses a private registry so repeated Setup calls in
// one process do not collide on the global one.
func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

type otelInstruments struct {
	ctx               context.Context
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	pollerCycles      metric.Int64Counter
	pollerErrors      metric.Int64Counter
	pollerLatencyMs   metric.Float64Histogram
	gameQueries       metric.Int64Counter
	gameQueryErrors   metric.Int64Counter
	gameQueryMatches  metric.Int64Histogram
	fallbacks         metric.Int64Counter
}

type counterDef struct {
	name, desc string
	dst        *metric.Int64Counter
}

type latencyDef struct {
	name, desc string
	dst        *metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(DefaultServiceName)
	o := &otelInstruments{ctx: context.Background()}

	counters := []counterDef{
		{"http_requests_total", "HTTP requests served.", &o.requests},
		{"provider_attempts_total", "Upstream provider calls.", &o.providerAttempts},
		{"provider_errors_total", "Upstream provider calls that failed.", &o.providerErrors},
		{"provider_rate_limit_hits_total", "429 responses from the upstream.", &o.rateLimitHits},
		{"poller_cycles_total", "Refresh cycles run by the poller.", &o.pollerCycles},
		{"poller_errors_total", "Refresh cycles that fell back after a failure.", &o.pollerErrors},
		{"provider_game_queries_total", "Per-game upstream queries.", &o.gameQueries},
		{"provider_game_query_errors_total", "Per-game upstream queries that failed.", &o.gameQueryErrors},
		{"matches_fallback_total", "Loads served from local data, by reason.", &o.fallbacks},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, err
		}
		*c.dst = inst
	}

	latencies := []latencyDef{
		{"http_request_duration_ms", "HTTP request latency.", &o.requestLatencyMs},
		{"provider_duration_ms", "Upstream call latency.", &o.providerLatencyMs},
		{"provider_retry_after_ms", "Retry-After advertised on rate limits.", &o.retryAfterMs},
		{"poller_cycle_duration_ms", "Refresh cycle latency.", &o.pollerLatencyMs},
	}
	for _, l := range latencies {
		inst, err := meter.Float64Histogram(l.name, metric.WithDescription(l.desc))
		if err != nil {
			return nil, err
		}
		*l.dst = inst
	}

	matchesPerQuery, err := meter.Int64Histogram("provider_game_query_matches",
		metric.WithDescription("Matches returned by one per-game query."))
	if err != nil {
		return nil, err
	}
	o.gameQueryMatches = matchesPerQuery

	return o, nil
}

func ms(d time.Duration) float64 { return float64(d.Milliseconds()) }

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	set := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, set)
	o.requestLatencyMs.Record(o.ctx, ms(duration), set)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, set)
	o.providerLatencyMs.Record(o.ctx, ms(duration), set)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, set)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	set := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.rateLimitHits.Add(o.ctx, 1, set)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, ms(retryAfter), set)
	}
}

func (o *otelInstruments) recordPoller(duration time.Duration, err error) {
	o.pollerCycles.Add(o.ctx, 1)
	o.pollerLatencyMs.Record(o.ctx, ms(duration))
	if err != nil {
		o.pollerErrors.Add(o.ctx, 1)
	}
}

func (o *otelInstruments) recordGameQuery(provider, game string, count int, err error) {
	set := metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrGame, game),
	)
	o.gameQueries.Add(o.ctx, 1, set)
	if err != nil {
		o.gameQueryErrors.Add(o.ctx, 1, set)
		return
	}
	o.gameQueryMatches.Record(o.ctx, int64(count), set)
}

func (o *otelInstruments) recordFallback(reason string) {
	o.fallbacks.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrReason, reason)))
}
