package testutil

import (
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/clock"
)

// MatchDay is the reference "now" the sample fixtures are laid out around.
var MatchDay = time.Date(2026, time.October, 14, 16, 0, 0, 0, time.UTC)

// FixedClock reports t forever.
func FixedClock(t time.Time) clock.Clock {
	return clock.Func(func() time.Time { return t })
}
