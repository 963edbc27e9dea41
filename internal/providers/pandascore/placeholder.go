package pandascore

import (
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// PlaceholderID identifies the synthetic Rocket League entry.
const PlaceholderID = "rl-fallback"

// ensureRocketLeague appends a synthetic upcoming Rocket League match an
// hour from now when list has none, so that game filter is never empty.
func ensureRocketLeague(list []matches.Match, now time.Time) []matches.Match {
	for _, m := range list {
		if m.Game == games.RocketLeague {
			return list
		}
	}
	return append(list, matches.Match{
		ID:        matches.StringID(PlaceholderID),
		TeamA:     "Octane United",
		TeamAAbbr: "OU",
		TeamB:     "Dominus Crew",
		TeamBAbbr: "DC",
		Accent:    games.Accent(games.RocketLeague),
		Date:      now.Add(time.Hour),
		Status:    matches.StatusUpcoming,
		IsLive:    false,
		Game:      games.RocketLeague,
		Score:     nil,
	})
}
