package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appgames "github.com/preston-bernstein/esports-tracker/internal/app/games"
	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/clock"
	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	domainmatches "github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/poller"
)

// Options configures presentation details of the match endpoints.
type Options struct {
	Clock          clock.Clock
	Location       *time.Location
	AllowAllStatus bool
}

// Handler wires HTTP routes to the match and game services.
type Handler struct {
	svc      *appmatches.Service
	catalog  *appgames.Service
	logger   *slog.Logger
	clock    clock.Clock
	loc      *time.Location
	allowAll bool
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appmatches.Service, catalog *appgames.Service, logger *slog.Logger, statusFn func() poller.Status, opts Options) *Handler {
	c := opts.Clock
	if c == nil {
		c = clock.Func(time.Now)
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		svc:      svc,
		catalog:  catalog,
		logger:   logger,
		clock:    c,
		loc:      loc,
		allowAll: opts.AllowAllStatus,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

type filterResponse struct {
	Status string `json:"status"`
	Game   string `json:"game"`
}

type matchesResponse struct {
	Source     string               `json:"source"`
	Message    string               `json:"message,omitempty"`
	Loading    bool                 `json:"loading"`
	LastLoaded *time.Time           `json:"lastLoaded,omitempty"`
	Now        time.Time            `json:"now"`
	Filter     filterResponse       `json:"filter"`
	Count      int                  `json:"count"`
	Matches    []domainmatches.View `json:"matches"`
}

// Matches returns the sorted, filtered match list decorated with labels.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveList(w, r, false)
}

// LiveMatches returns the live subset for the requested game, ignoring status.
func (h *Handler) LiveMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveList(w, r, true)
}

func (h *Handler) serveList(w nethttp.ResponseWriter, r *nethttp.Request, live bool) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	filter, err := h.parseFilter(r.URL.Query(), live)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}

	var list []domainmatches.Match
	if live {
		list = h.svc.Live(filter)
	} else {
		list = h.svc.Filtered(filter)
	}

	now := h.clock.Now()
	state := h.svc.State()
	resp := matchesResponse{
		Source:     string(state.Source),
		Message:    state.Message,
		Loading:    state.Loading,
		Now:        now,
		Filter:     filterResponse{Status: string(filter.Status), Game: filter.Game},
		Count:      len(list),
		Matches:    domainmatches.Present(list, now, h.loc),
		LastLoaded: lastLoaded(state),
	}
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

func (h *Handler) parseFilter(q url.Values, live bool) (domainmatches.Filter, error) {
	filter := domainmatches.DefaultFilter(h.allowAll)

	game, err := games.ParseFilter(q.Get("game"))
	if err != nil {
		return filter, err
	}
	filter.Game = game

	if live {
		filter.Status = ""
		return filter, nil
	}
	status, err := domainmatches.ParseStatusFilter(q.Get("status"), h.allowAll)
	if err != nil {
		return filter, err
	}
	filter.Status = status
	return filter, nil
}

type dashboardResponse struct {
	Source     string               `json:"source"`
	Message    string               `json:"message,omitempty"`
	Loading    bool                 `json:"loading"`
	LastLoaded *time.Time           `json:"lastLoaded,omitempty"`
	Now        time.Time            `json:"now"`
	Filter     filterResponse       `json:"filter"`
	Matches    []domainmatches.View `json:"matches"`
	Live       []domainmatches.View `json:"live"`
	Counts     map[string]int       `json:"counts"`
}

// Dashboard returns the filtered list, the live sidebar and per-game counts
// labelled against one reference time.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	filter, err := h.parseFilter(r.URL.Query(), false)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}

	state := h.svc.State()
	d := domainmatches.BuildDashboard(h.svc.Matches(), filter, h.clock.Now(), h.loc)
	resp := dashboardResponse{
		Source:     string(state.Source),
		Message:    state.Message,
		Loading:    state.Loading,
		LastLoaded: lastLoaded(state),
		Now:        d.Now,
		Filter:     filterResponse{Status: string(filter.Status), Game: filter.Game},
		Matches:    d.Matches,
		Live:       d.Live,
		Counts:     d.Counts,
	}
	writeJSON(w, nethttp.StatusOK, resp, logger)
}

func lastLoaded(state appmatches.State) *time.Time {
	if state.LastLoaded.IsZero() {
		return nil
	}
	loaded := state.LastLoaded
	return &loaded
}

// MatchByID returns a specific match if present.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	// Expect path: /matches/{id}
	path := strings.TrimPrefix(r.URL.Path, "/matches")
	if path == "" || path == "/" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	id, err := url.PathUnescape(strings.TrimPrefix(path, "/"))
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	m, ok := h.svc.MatchByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "match not found", h.logger)
		return
	}

	views := domainmatches.Present([]domainmatches.Match{m}, h.clock.Now(), h.loc)
	writeJSON(w, nethttp.StatusOK, views[0], loggerFromContext(r, h.logger))
}

type gamesResponse struct {
	Games          []appgames.Option `json:"games"`
	StatusFilters  []string          `json:"statusFilters"`
	DefaultFilters filterResponse    `json:"defaultFilters"`
}

// Games lists the game filter options with per-game match counts.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	statuses := domainmatches.StatusFilters(h.allowAll)
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, string(s))
	}
	def := domainmatches.DefaultFilter(h.allowAll)

	writeJSON(w, nethttp.StatusOK, gamesResponse{
		Games:          h.catalog.Options(),
		StatusFilters:  names,
		DefaultFilters: filterResponse{Status: string(def.Status), Game: def.Game},
	}, loggerFromContext(r, h.logger))
}
