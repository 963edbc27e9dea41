package matches

import "sort"

// AllSorted returns a copy of list ordered by ascending date. Ties keep their
// original relative order.
func AllSorted(list []Match) []Match {
	out := make([]Match, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Filtered applies the status and game filters over the sorted collection.
func Filtered(list []Match, f Filter) []Match {
	sorted := AllSorted(list)
	out := make([]Match, 0, len(sorted))
	for _, m := range sorted {
		if f.keepsStatus(m) && f.keepsGame(m) {
			out = append(out, m)
		}
	}
	return out
}

// Live returns the in-progress matches for the filter's game. The status
// filter does not apply to the live subset.
func Live(list []Match, f Filter) []Match {
	sorted := AllSorted(list)
	out := make([]Match, 0)
	for _, m := range sorted {
		if m.IsLive && f.keepsGame(m) {
			out = append(out, m)
		}
	}
	return out
}

// CountByGame tallies matches per game key.
func CountByGame(list []Match) map[string]int {
	counts := make(map[string]int)
	for _, m := range list {
		counts[string(m.Game)]++
	}
	return counts
}
