package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	c := FixedClock(MatchDay)
	if !c.Now().Equal(MatchDay) || !c.Now().Equal(MatchDay) {
		t.Fatalf("expected fixed time, got %v", c.Now())
	}
	if got := SampleMatch("x").Date.Sub(MatchDay); got != 2*time.Hour {
		t.Fatalf("expected sample match two hours after match day, got %s", got)
	}
}

func TestFixturesHelper(t *testing.T) {
	m := SampleMatch("id-1")
	if m.ID.String() != "id-1" || m.TeamA == "" || m.TeamB == "" {
		t.Fatalf("unexpected match fixture %+v", m)
	}
	if m.Status != matches.StatusUpcoming || m.IsLive || m.Score != nil {
		t.Fatalf("expected plain upcoming match, got %+v", m)
	}

	played := SamplePlayedMatch("p", games.Dota2)
	if played.Status != matches.StatusPlayed || played.ScoreText() != "2 - 1" || played.Game != games.Dota2 {
		t.Fatalf("unexpected played fixture %+v", played)
	}
	live := SampleLiveMatch("l", games.CS2)
	if !live.IsLive || live.Game != games.CS2 {
		t.Fatalf("unexpected live fixture %+v", live)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	var again map[string]bool
	GetJSON(t, handler, "/test", http.StatusCreated, &again)
	if !again["ok"] {
		t.Fatalf("expected GetJSON to decode body")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	AssertStatus(t, ServeRequest(handler, req), http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop"), Result: appmatches.LoadResult{Source: appmatches.SourceLocal}}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if res := p.Trigger(context.Background()); res.Source != appmatches.SourceLocal {
		t.Fatalf("expected trigger passthrough, got %+v", res)
	}
	if p.StartCalls.Load() != 1 || p.StopCalls.Load() != 1 || p.TriggerCalls.Load() != 1 {
		t.Fatalf("unexpected call counts")
	}
	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: http.ErrServerClosed, ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected listen error passthrough, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); err == nil {
		t.Fatalf("expected shutdown error")
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected default addr and handler")
	}
	if sh.ListenCalls.Load() != 1 || sh.ShutdownCalls.Load() != 1 {
		t.Fatalf("expected one listen and one shutdown")
	}

	blocked := &StubHTTPServer{Block: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if err := blocked.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected blocked shutdown to time out, got %v", err)
	}
	close(blocked.Block)
	if err := blocked.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected unblocked shutdown, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	AssertLogged(t, buf, "level=DEBUG", "msg=hello", "k=v")

	rec, handler := NewTelemetryRecorder(t)
	if rec == nil || handler == nil {
		t.Fatalf("expected recorder and scrape handler")
	}
	rec.RecordFallback("empty")
	rr := Serve(handler, http.MethodGet, "/metrics", nil)
	AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "matches_fallback_total") {
		t.Fatalf("expected fallback counter exported, got %s", rr.Body.String())
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	list := []matches.Match{SampleMatch("m1")}

	p := GoodProvider{Matches: list}
	got, _ := p.FetchMatches(ctx)
	if len(got) != 1 {
		t.Fatalf("expected matches from GoodProvider")
	}
	got[0].TeamA = "mutated"
	if list[0].TeamA == "mutated" {
		t.Fatalf("expected GoodProvider to hand out copies")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchMatches(ctx); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	empty := EmptyProvider{}
	if got, err := empty.FetchMatches(ctx); err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	if _, err := (MissingCredentialProvider{}).FetchMatches(ctx); !errors.Is(err, providers.ErrMissingCredential) {
		t.Fatalf("expected missing credential, got %v", err)
	}
}

func TestServiceHelpers(t *testing.T) {
	svc := NewServiceWithMatches([]matches.Match{SampleMatch("a"), SampleMatch("b")})
	state := svc.State()
	if state.Loading || state.Source != appmatches.SourceLocal || state.Count != 2 {
		t.Fatalf("unexpected state %+v", state)
	}
	if _, ok := svc.MatchByID("a"); !ok {
		t.Fatalf("expected match a to be stored")
	}

	loading := NewLoadingService()
	if !loading.State().Loading {
		t.Fatalf("expected fresh service to report loading")
	}
}
