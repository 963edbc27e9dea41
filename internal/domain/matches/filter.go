package matches

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
)

// StatusFilter selects matches by status. StatusAll hides played matches.
type StatusFilter string

const (
	StatusAll            StatusFilter = "all"
	StatusFilterUpcoming StatusFilter = StatusFilter(StatusUpcoming)
	StatusFilterPlayed   StatusFilter = StatusFilter(StatusPlayed)
)

// Filter is the view state consumed by Filtered and Live.
type Filter struct {
	Status StatusFilter
	Game   string
}

// DefaultFilter mirrors a fresh dashboard: everything not yet played, every game.
func DefaultFilter(allowAll bool) Filter {
	if !allowAll {
		return Filter{Status: StatusFilterUpcoming, Game: games.All}
	}
	return Filter{Status: StatusAll, Game: games.All}
}

// StatusFilters lists the exposed status options for the product variant.
func StatusFilters(allowAll bool) []StatusFilter {
	if !allowAll {
		return []StatusFilter{StatusFilterUpcoming, StatusFilterPlayed}
	}
	return []StatusFilter{StatusAll, StatusFilterUpcoming, StatusFilterPlayed}
}

// ParseStatusFilter validates a status filter value. Empty input yields the
// variant default. When allowAll is false the "all" option is rejected.
func ParseStatusFilter(raw string, allowAll bool) (StatusFilter, error) {
	value := StatusFilter(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return DefaultFilter(allowAll).Status, nil
	}
	for _, candidate := range StatusFilters(allowAll) {
		if candidate == value {
			return value, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q", raw)
}

func (f Filter) keepsStatus(m Match) bool {
	if f.Status == StatusAll || f.Status == "" {
		return m.Status != StatusPlayed
	}
	return Status(f.Status) == m.Status
}

func (f Filter) keepsGame(m Match) bool {
	if f.Game == "" || f.Game == games.All {
		return true
	}
	return string(m.Game) == f.Game
}
