package matches

import "time"

// Dashboard is one render of the screen: the filtered list, the live
// sidebar and per-game counts, all labelled against the same now.
type Dashboard struct {
	Filter  Filter
	Now     time.Time
	Matches []View
	Live    []View
	Counts  map[string]int
}

// BuildDashboard derives every view of list for f at now. Counts cover the
// whole collection so the game bar does not shrink while a filter is active.
func BuildDashboard(list []Match, f Filter, now time.Time, loc *time.Location) Dashboard {
	return Dashboard{
		Filter:  f,
		Now:     now,
		Matches: Present(Filtered(list, f), now, loc),
		Live:    Present(Live(list, f), now, loc),
		Counts:  CountByGame(list),
	}
}
