package matches

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
)

// Status is the coarse lifecycle of a match. Live is tracked separately.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusPlayed   Status = "played"
)

// TBD is shown for teams the provider has not resolved yet.
const TBD = "TBD"

// ID identifies a match. Provider ids are numeric; synthetic entries use strings.
// It marshals back to the JSON kind it was built from.
type ID struct {
	value   string
	numeric bool
}

// NumericID wraps a numeric provider id.
func NumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// StringID wraps a string id.
func StringID(s string) ID {
	return ID{value: s}
}

func (id ID) String() string { return id.value }

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool { return id.value == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("match id: %w", err)
	}
	*id = NumericID(n)
	return nil
}

// Match is the canonical match shape used by every derived view.
type Match struct {
	ID        ID        `json:"id"`
	TeamA     string    `json:"teamA"`
	TeamAAbbr string    `json:"teamAAbbr,omitempty"`
	TeamB     string    `json:"teamB"`
	TeamBAbbr string    `json:"teamBAbbr,omitempty"`
	Accent    string    `json:"accent"`
	Date      time.Time `json:"date"`
	Status    Status    `json:"status"`
	IsLive    bool      `json:"isLive"`
	Game      games.Key `json:"game"`
	Score     *string   `json:"score"`
}

// ScoreText returns the formatted score or an empty string.
func (m Match) ScoreText() string {
	if m.Score == nil {
		return ""
	}
	return *m.Score
}

// FormatScore renders a "home - away" score string.
func FormatScore(home, away int) *string {
	s := fmt.Sprintf("%d - %d", home, away)
	return &s
}
