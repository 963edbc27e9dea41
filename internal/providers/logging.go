package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/esports-tracker/internal/logging"
)

// logProvider logs msg tagged with the provider name. A request logger on ctx
// wins over fallback; with neither nothing is logged.
func logProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil || !logger.Enabled(ctx, level) {
		return
	}
	logger.With(slog.String(logging.FieldProvider, provider)).Log(ctx, level, msg, args...)
}
