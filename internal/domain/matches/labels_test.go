package matches

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
)

func TestLabelBoundaries(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		diff time.Duration
		want string
	}{
		{0, "Starting"},
		{-time.Minute, "Starting"},
		{time.Millisecond, "Starts in 1m"},
		{59 * time.Second, "Starts in 1m"},
		{59 * time.Minute, "Starts in 59m"},
		{59*time.Minute + time.Second, "Starts in 1h"},
		{time.Hour, "Starts in 1h"},
		{65 * time.Minute, "Starts in 1h 5m"},
		{26*time.Hour + 30*time.Minute, "Starts in 26h 30m"},
	}

	for _, tc := range cases {
		if got := Label(now.Add(tc.diff), StatusUpcoming, false, now); got != tc.want {
			t.Fatalf("diff %s expected %q, got %q", tc.diff, tc.want, got)
		}
	}
}

func TestLabelFarFutureSaturates(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, date := range []time.Time{now.AddDate(400, 0, 0), time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)} {
		if got := Label(date, StatusUpcoming, false, now); got != "Starts in 2562047h 48m" {
			t.Fatalf("%s: expected saturated countdown, got %q", date, got)
		}
	}
}

func TestLabelLiveAndFinal(t *testing.T) {
	now := time.Now()
	if got := Label(now.Add(time.Hour), StatusUpcoming, true, now); got != "Live now" {
		t.Fatalf("expected live label, got %q", got)
	}
	if got := Label(now.Add(time.Hour), StatusPlayed, false, now); got != "Final" {
		t.Fatalf("expected final label, got %q", got)
	}
	// A played match that is still flagged live shows as final.
	if got := Label(now, StatusPlayed, true, now); got != "Final" {
		t.Fatalf("expected final label for played+live, got %q", got)
	}
}

func TestStatusBadge(t *testing.T) {
	cases := []struct {
		m    Match
		want string
	}{
		{Match{Status: StatusUpcoming, IsLive: true}, "Live"},
		{Match{Status: StatusUpcoming}, "Upcoming"},
		{Match{Status: StatusPlayed}, "Played"},
	}
	for _, tc := range cases {
		if got := StatusBadge(tc.m); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2024, 5, 4, 18, 7, 0, 0, time.UTC)
	if got := FormatDate(ts, nil); got != "May 4, 6:07 PM" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := FormatTime(ts, nil); got != "6:07 PM" {
		t.Fatalf("unexpected time %q", got)
	}
	loc := time.FixedZone("UTC+2", 2*60*60)
	if got := FormatTime(ts, loc); got != "8:07 PM" {
		t.Fatalf("unexpected zoned time %q", got)
	}
}

func TestPresentDecoratesMatches(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	played := Match{ID: NumericID(7), TeamA: "A", TeamB: "B", Date: now.Add(-time.Hour), Status: StatusPlayed, Game: games.Dota2, Score: FormatScore(2, 1)}
	upcoming := Match{ID: StringID("x"), TeamA: "C", TeamB: "D", Date: now.Add(90 * time.Minute), Status: StatusUpcoming, Game: games.Other}

	views := Present([]Match{played, upcoming}, now, nil)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Label != "Final" || !views[0].ShowScore || views[0].GameLabel != "Dota 2" {
		t.Fatalf("unexpected played view %+v", views[0])
	}
	if views[1].Label != "Starts in 1h 30m" || views[1].ShowScore || views[1].GameLabel != "Other" {
		t.Fatalf("unexpected upcoming view %+v", views[1])
	}
}

func TestIDMarshalsToOriginalKind(t *testing.T) {
	raw, err := json.Marshal([]ID{NumericID(42), StringID("rl-fallback")})
	if err != nil {
		t.Fatalf("marshal ids: %v", err)
	}
	if string(raw) != `[42,"rl-fallback"]` {
		t.Fatalf("unexpected encoding %s", raw)
	}

	var decoded []ID
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal ids: %v", err)
	}
	if decoded[0] != NumericID(42) || decoded[1] != StringID("rl-fallback") {
		t.Fatalf("unexpected decoded ids %+v", decoded)
	}

	var bad ID
	if err := json.Unmarshal([]byte(`4.5`), &bad); err == nil {
		t.Fatalf("expected error for fractional id")
	}
}

func TestMatchMarshalsNullScore(t *testing.T) {
	raw, err := json.Marshal(Match{ID: NumericID(1), Status: StatusUpcoming})
	if err != nil {
		t.Fatalf("marshal match: %v", err)
	}
	if !strings.Contains(string(raw), `"score":null`) {
		t.Fatalf("expected null score, got %s", raw)
	}
}
