package providers

import (
	"fmt"
	"strings"
	"time"
)

// ResolveTimezone returns the display location for a tz name. Empty input
// and "UTC" resolve to time.UTC.
func ResolveTimezone(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, "utc") {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("resolve timezone %q: %w", tz, err)
	}
	return loc, nil
}
