package pandascore

import (
	"strings"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

const (
	upstreamFinished = "finished"
	upstreamRunning  = "running"
)

// normalize maps a raw provider record to a Match. It never fails; missing
// fields fall back to defaults and now stands in for an absent start time.
func normalize(raw matchResponse, now time.Time) matches.Match {
	home := opponentAt(raw.Opponents, 0)
	away := opponentAt(raw.Opponents, 1)

	var slug, name string
	if raw.Videogame != nil {
		slug, name = raw.Videogame.Slug, raw.Videogame.Name
	}
	key := games.Resolve(slug, name)

	status := matches.StatusUpcoming
	if raw.Status == upstreamFinished {
		status = matches.StatusPlayed
	}

	return matches.Match{
		ID:        matches.NumericID(raw.ID),
		TeamA:     teamName(home),
		TeamAAbbr: teamAbbr(home),
		TeamB:     teamName(away),
		TeamBAbbr: teamAbbr(away),
		Accent:    games.Accent(key),
		Date:      resolveDate(raw, now),
		Status:    status,
		IsLive:    raw.Status == upstreamRunning,
		Game:      key,
		Score:     formatScore(home, away, raw.Results),
	}
}

func opponentAt(slots []opponentSlot, i int) opponentResponse {
	if i < len(slots) && slots[i].Opponent != nil {
		return *slots[i].Opponent
	}
	return opponentResponse{}
}

func teamName(o opponentResponse) string {
	if o.Name == "" {
		return matches.TBD
	}
	return o.Name
}

func teamAbbr(o opponentResponse) string {
	if o.Acronym != nil && *o.Acronym != "" {
		return *o.Acronym
	}
	if o.Name == "" {
		return matches.TBD
	}
	runes := []rune(o.Name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// resolveDate takes the first parseable of begin_at, scheduled_at, start_at.
func resolveDate(raw matchResponse, now time.Time) time.Time {
	for _, candidate := range []*string{raw.BeginAt, raw.ScheduledAt, raw.StartAt} {
		if candidate == nil || *candidate == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, *candidate); err == nil {
			return ts
		}
	}
	return now
}

// formatScore looks up each opponent's result by team id. Both scores must
// be present for a score string.
func formatScore(home, away opponentResponse, results []resultResponse) *string {
	homeScore, ok := scoreFor(home.ID, results)
	if !ok {
		return nil
	}
	awayScore, ok := scoreFor(away.ID, results)
	if !ok {
		return nil
	}
	return matches.FormatScore(homeScore, awayScore)
}

func scoreFor(teamID *int64, results []resultResponse) (int, bool) {
	if teamID == nil {
		return 0, false
	}
	for _, r := range results {
		if r.TeamID != nil && *r.TeamID == *teamID {
			if r.Score == nil {
				return 0, false
			}
			return *r.Score, true
		}
	}
	return 0, false
}
