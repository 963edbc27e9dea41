package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/http/requestutil"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
)

type requestIDKey struct{}

// fixedRoutes are reported to metrics as-is; anything else is collapsed.
var fixedRoutes = map[string]struct{}{
	"/matches/live": {},
	"/games":        {},
	"/dashboard":    {},
	"/health":       {},
	"/ready":        {},
	"/refresh":      {},
}

// LoggingMiddleware stamps each request with a sanitized X-Request-ID, puts a
// request-scoped logger in the context, and records one completion log line
// plus HTTP metrics once next returns.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		id := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, id)

		logger := requestLogger(baseLogger, r, id)
		ctx := withRequestID(logging.WithLogger(r.Context(), logger), id)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r.WithContext(ctx))

		elapsed := time.Since(began)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), sw.status, elapsed)
		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, sw.status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	})
}

func requestLogger(base *slog.Logger, r *http.Request, id string) *slog.Logger {
	return base.With(
		slog.String(logging.FieldRequestID, id),
		slog.String(logging.FieldMethod, r.Method),
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String(logging.FieldQuery, r.URL.RawQuery),
		slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
	)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RequestIDFromContext returns the id LoggingMiddleware stored, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// normalizePath maps a request path to a bounded metrics label.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	path, _, _ = strings.Cut(path, "?")
	if _, ok := fixedRoutes[path]; ok {
		return path
	}
	switch {
	case path == "/matches" || path == "/matches/":
		return "/matches"
	case strings.HasPrefix(path, "/matches/"):
		return "/matches/:id"
	default:
		return "other"
	}
}
