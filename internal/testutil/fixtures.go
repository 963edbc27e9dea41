package testutil

import (
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// SampleMatch returns a minimal upcoming match two hours after MatchDay.
func SampleMatch(id string) matches.Match {
	return matches.Match{
		ID:        matches.StringID(id),
		TeamA:     "Team Alpha",
		TeamB:     "Team Bravo",
		TeamAAbbr: "TEA",
		TeamBAbbr: "TEB",
		Accent:    games.DefaultAccent,
		Date:      MatchDay.Add(2 * time.Hour),
		Status:    matches.StatusUpcoming,
		Game:      games.League,
	}
}

// SamplePlayedMatch returns a finished match with a score.
func SamplePlayedMatch(id string, game games.Key) matches.Match {
	m := SampleMatch(id)
	m.Game = game
	m.Status = matches.StatusPlayed
	m.Date = m.Date.Add(-24 * time.Hour)
	m.Score = matches.FormatScore(2, 1)
	return m
}

// SampleLiveMatch returns an in-progress match.
func SampleLiveMatch(id string, game games.Key) matches.Match {
	m := SampleMatch(id)
	m.Game = game
	m.IsLive = true
	m.Date = m.Date.Add(-30 * time.Minute)
	return m
}
