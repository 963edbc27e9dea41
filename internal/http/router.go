package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/esports-tracker/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. A nil admin handler leaves
// the refresh route unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches", handler.Matches)
	mux.HandleFunc("/matches/live", handler.LiveMatches)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/dashboard", handler.Dashboard)
	if admin != nil {
		mux.HandleFunc("/refresh", admin.RefreshMatches)
	}
	return mux
}
