package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/http/requestutil"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
)

// RefreshFunc runs one manual refresh.
type RefreshFunc func(ctx context.Context) appmatches.LoadResult

// AdminHandler exposes the manual refresh endpoint.
type AdminHandler struct {
	refresh RefreshFunc
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token leaves the
// refresh endpoint open, matching the dashboard's manual reload button.
func NewAdminHandler(refresh RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh: refresh,
		token:   token,
		logger:  logger,
	}
}

type refreshResponse struct {
	Status  string `json:"status"`
	Source  string `json:"source"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
}

// RefreshMatches reloads matches now. Concurrent requests share one load.
func (h *AdminHandler) RefreshMatches(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldClientIP, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	res := h.refresh(r.Context())
	if res.Err != nil {
		logging.Warn(logger, "manual refresh fell back to local data", logging.Err(res.Err))
	}

	writeJSON(w, http.StatusOK, refreshResponse{
		Status:  "ok",
		Source:  string(res.Source),
		Message: res.Message,
		Count:   len(res.Matches),
	}, logger)
	logging.Info(logger, "manual refresh complete",
		slog.String(logging.FieldSource, string(res.Source)),
		slog.Int(logging.FieldCount, len(res.Matches)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return true
	}
	want := "Bearer " + h.token
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
