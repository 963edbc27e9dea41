package pandascore

import (
	"testing"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

func strPtr(s string) *string { return &s }

func idPtr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

var mapperNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestNormalizeTransformsFields(t *testing.T) {
	raw := matchResponse{
		ID:      42,
		Status:  "running",
		BeginAt: strPtr("2024-06-01T12:00:00Z"),
		Opponents: []opponentSlot{
			{Opponent: &opponentResponse{ID: idPtr(1), Name: "Fnatic", Acronym: strPtr("FNC")}},
			{Opponent: &opponentResponse{ID: idPtr(2), Name: "G2 Esports", Acronym: strPtr("G2")}},
		},
		Videogame: &videogameResponse{Slug: "valorant", Name: "Valorant"},
		Results: []resultResponse{
			{TeamID: idPtr(2), Score: intPtr(0)},
			{TeamID: idPtr(1), Score: intPtr(1)},
		},
	}

	m := normalize(raw, mapperNow)

	if m.ID != matches.NumericID(42) {
		t.Fatalf("unexpected id %v", m.ID)
	}
	if m.TeamA != "Fnatic" || m.TeamAAbbr != "FNC" || m.TeamB != "G2 Esports" || m.TeamBAbbr != "G2" {
		t.Fatalf("unexpected teams %+v", m)
	}
	if m.Status != matches.StatusUpcoming || !m.IsLive {
		t.Fatalf("expected running to map to live upcoming, got %s live=%v", m.Status, m.IsLive)
	}
	if m.Game != games.Valorant || m.Accent != games.DefaultAccent {
		t.Fatalf("unexpected game/accent %s %s", m.Game, m.Accent)
	}
	if !m.Date.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %s", m.Date)
	}
	if m.ScoreText() != "1 - 0" {
		t.Fatalf("expected score looked up by team id, got %q", m.ScoreText())
	}
}

func TestNormalizeStatusVariants(t *testing.T) {
	cases := []struct {
		upstream string
		status   matches.Status
		live     bool
	}{
		{"finished", matches.StatusPlayed, false},
		{"not_started", matches.StatusUpcoming, false},
		{"running", matches.StatusUpcoming, true},
		{"canceled", matches.StatusUpcoming, false},
		{"", matches.StatusUpcoming, false},
	}
	for _, tc := range cases {
		m := normalize(matchResponse{Status: tc.upstream}, mapperNow)
		if m.Status != tc.status || m.IsLive != tc.live {
			t.Fatalf("status %q: expected %s live=%v, got %s live=%v", tc.upstream, tc.status, tc.live, m.Status, m.IsLive)
		}
	}
}

func TestNormalizeMissingOpponentsDefaultToTBD(t *testing.T) {
	m := normalize(matchResponse{ID: 1, Opponents: []opponentSlot{{Opponent: nil}}}, mapperNow)
	if m.TeamA != matches.TBD || m.TeamAAbbr != matches.TBD || m.TeamB != matches.TBD || m.TeamBAbbr != matches.TBD {
		t.Fatalf("expected TBD placeholders, got %+v", m)
	}
	if m.Score != nil {
		t.Fatalf("expected nil score, got %q", m.ScoreText())
	}
	if m.Game != games.Other {
		t.Fatalf("expected other game without videogame, got %s", m.Game)
	}
}

func TestTeamAbbrDerivesFromName(t *testing.T) {
	cases := []struct {
		o    opponentResponse
		want string
	}{
		{opponentResponse{Name: "Fnatic"}, "FNA"},
		{opponentResponse{Name: "Fnatic", Acronym: strPtr("")}, "FNA"},
		{opponentResponse{Name: "g2"}, "G2"},
		{opponentResponse{Name: "Ñandú Gaming"}, "ÑAN"},
		{opponentResponse{Acronym: strPtr("T1")}, "T1"},
		{opponentResponse{}, matches.TBD},
	}
	for _, tc := range cases {
		if got := teamAbbr(tc.o); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestResolveDateFallbackOrder(t *testing.T) {
	scheduled := "2024-06-02T08:30:00Z"
	start := "2024-06-03T08:30:00Z"

	cases := []struct {
		name string
		raw  matchResponse
		want time.Time
	}{
		{"scheduled when begin missing", matchResponse{ScheduledAt: &scheduled, StartAt: &start}, time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC)},
		{"start when others missing", matchResponse{StartAt: &start}, time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC)},
		{"skips unparseable begin", matchResponse{BeginAt: strPtr("soon"), ScheduledAt: &scheduled}, time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC)},
		{"skips empty begin", matchResponse{BeginAt: strPtr(""), StartAt: &start}, time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC)},
		{"now when all missing", matchResponse{}, mapperNow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveDate(tc.raw, mapperNow); !got.Equal(tc.want) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatScoreRequiresBothSides(t *testing.T) {
	home := opponentResponse{ID: idPtr(1)}
	away := opponentResponse{ID: idPtr(2)}

	if got := formatScore(home, away, []resultResponse{{TeamID: idPtr(1), Score: intPtr(2)}}); got != nil {
		t.Fatalf("expected nil score with one result, got %q", *got)
	}
	if got := formatScore(home, away, []resultResponse{{TeamID: idPtr(1), Score: intPtr(2)}, {TeamID: idPtr(2), Score: nil}}); got != nil {
		t.Fatalf("expected nil score with null away, got %q", *got)
	}
	if got := formatScore(opponentResponse{}, away, []resultResponse{{TeamID: nil, Score: intPtr(1)}, {TeamID: idPtr(2), Score: intPtr(1)}}); got != nil {
		t.Fatalf("expected nil score when home id missing, got %q", *got)
	}
	got := formatScore(home, away, []resultResponse{{TeamID: idPtr(1), Score: intPtr(0)}, {TeamID: idPtr(2), Score: intPtr(0)}})
	if got == nil || *got != "0 - 0" {
		t.Fatalf("expected zero-zero score, got %v", got)
	}
}
