package matches

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
)

const (
	dateLayout = "Jan 2, 3:04 PM"
	timeLayout = "3:04 PM"
)

// Label renders the countdown/status text shown next to a match.
func Label(date time.Time, status Status, isLive bool, now time.Time) string {
	if isLive && status == StatusUpcoming {
		return "Live now"
	}
	if status == StatusPlayed {
		return "Final"
	}

	diff := date.Sub(now)
	if diff <= 0 {
		return "Starting"
	}
	// Round up without adding first: Sub saturates at the max duration.
	minutes := int(diff / time.Minute)
	if diff%time.Minute != 0 {
		minutes++
	}
	if minutes < 60 {
		return fmt.Sprintf("Starts in %dm", minutes)
	}
	hours, rem := minutes/60, minutes%60
	if rem == 0 {
		return fmt.Sprintf("Starts in %dh", hours)
	}
	return fmt.Sprintf("Starts in %dh %dm", hours, rem)
}

// StatusBadge returns the short status chip for a match.
func StatusBadge(m Match) string {
	switch {
	case m.IsLive && m.Status == StatusUpcoming:
		return "Live"
	case m.Status == StatusUpcoming:
		return "Upcoming"
	default:
		return "Played"
	}
}

// FormatDate renders a date and time in loc (UTC when nil).
func FormatDate(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(dateLayout)
}

// FormatTime renders only the time of day in loc (UTC when nil).
func FormatTime(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(timeLayout)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

// View is a match decorated with the presentation fields clients render.
type View struct {
	Match
	Label       string `json:"label"`
	Badge       string `json:"badge"`
	GameLabel   string `json:"gameLabel"`
	DisplayDate string `json:"displayDate"`
	DisplayTime string `json:"displayTime"`
	ShowScore   bool   `json:"showScore"`
}

// Present decorates list for the given now and display location.
func Present(list []Match, now time.Time, loc *time.Location) []View {
	out := make([]View, 0, len(list))
	for _, m := range list {
		out = append(out, View{
			Match:       m,
			Label:       Label(m.Date, m.Status, m.IsLive, now),
			Badge:       StatusBadge(m),
			GameLabel:   games.Lookup(m.Game).Label,
			DisplayDate: FormatDate(m.Date, loc),
			DisplayTime: FormatTime(m.Date, loc),
			ShowScore:   m.Status == StatusPlayed && m.Score != nil,
		})
	}
	return out
}
