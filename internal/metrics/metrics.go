package metrics

import (
	"maps"
	"sync"
	"time"
)

// Snapshot is a copy of the counters kept for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	GameQueries     map[string]int
	GameErrors      map[string]int
}

func (s Snapshot) clone() Snapshot {
	s.GameQueries = maps.Clone(s.GameQueries)
	s.GameErrors = maps.Clone(s.GameErrors)
	return s
}

// Recorder keeps in-process provider counters, which the tests and the
// readiness views read back, and mirrors every event to OpenTelemetry
// instruments when telemetry is enabled. A nil *Recorder drops everything.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*Snapshot
	fallbacks map[string]int
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*Snapshot),
		fallbacks: make(map[string]int),
		otel:      otel,
	}
}

// RecordProviderAttempt counts one upstream call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	r.withProvider(provider, func(s *Snapshot) {
		s.Calls++
		s.LastCallLatency = duration
		if err != nil {
			s.Errors++
		}
	})
	r.mirror(func(o *otelInstruments) { o.recordProviderAttempt(provider, duration, err) })
}

// RecordRateLimit counts a 429 and keeps the last positive Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	r.withProvider(provider, func(s *Snapshot) {
		s.RateLimitHits++
		if retryAfter > 0 {
			s.LastRetryAfter = retryAfter
		}
	})
	r.mirror(func(o *otelInstruments) { o.recordRateLimit(provider, retryAfter) })
}

// RecordGameQuery counts one per-game query and, on success, how many
// records it returned.
func (r *Recorder) RecordGameQuery(provider, game string, count int, err error) {
	r.withProvider(provider, func(s *Snapshot) {
		s.GameQueries[game]++
		if err != nil {
			s.GameErrors[game]++
		}
	})
	r.mirror(func(o *otelInstruments) { o.recordGameQuery(provider, game, count, err) })
}

// RecordFallback counts a load served from local data, keyed by reason.
func (r *Recorder) RecordFallback(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.fallbacks[reason]++
	r.mu.Unlock()
	r.mirror(func(o *otelInstruments) { o.recordFallback(reason) })
}

// RecordHTTPRequest is exported to OpenTelemetry only.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	r.mirror(func(o *otelInstruments) { o.recordHTTPRequest(method, path, status, duration) })
}

// RecordPollerCycle is exported to OpenTelemetry only.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	r.mirror(func(o *otelInstruments) { o.recordPoller(duration, err) })
}

func (r *Recorder) Fallbacks(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[reason]
}

func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

func (r *Recorder) GameQueries(provider, game string) int {
	return r.Snapshot(provider).GameQueries[game]
}

// Snapshot returns a copy of the counters for provider. Unknown providers
// and a nil Recorder yield the zero Snapshot.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.providers[provider]; ok {
		return s.clone()
	}
	return Snapshot{}
}

func (r *Recorder) withProvider(provider string, fn func(*Snapshot)) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.providers[provider]
	if !ok {
		s = &Snapshot{GameQueries: map[string]int{}, GameErrors: map[string]int{}}
		r.providers[provider] = s
	}
	fn(s)
}

func (r *Recorder) mirror(fn func(*otelInstruments)) {
	if r == nil || r.otel == nil {
		return
	}
	fn(r.otel)
}
