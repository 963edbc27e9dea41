package pandascore

import "time"

const (
	providerName       = "pandascore"
	defaultBaseURL     = "https://api.pandascore.co"
	defaultPerPage     = 40
	maxPerPage         = 100
	defaultHTTPTimeout = 10 * time.Second
	statusFilter       = "running,not_started,finished"
	errorBodyLimit     = 200
)

// DefaultRoster is the set of videogame slugs queried on every fetch, in
// the order their results are merged.
var DefaultRoster = []string{"league-of-legends", "valorant", "cs-go", "dota-2", "rocket-league"}
