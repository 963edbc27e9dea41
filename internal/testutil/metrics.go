package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/esports-tracker/internal/metrics"
)

// NewTelemetryRecorder returns a recorder backed by real OpenTelemetry
// instruments plus the Prometheus handler that scrapes them. The meter
// provider shuts down with the test.
func NewTelemetryRecorder(t *testing.T) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "esports-tracker-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}
