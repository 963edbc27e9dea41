package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("pandascore", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("pandascore", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("pandascore"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("pandascore"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("pandascore"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("pandascore")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("pandascore", 5*time.Second)
	rec.RecordRateLimit("pandascore", 0)

	if got := rec.RateLimitHits("pandascore"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("pandascore"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksGameQueries(t *testing.T) {
	rec := NewRecorder()
	rec.RecordGameQuery("pandascore", "valorant", 3, nil)
	rec.RecordGameQuery("pandascore", "valorant", 0, errors.New("down"))
	rec.RecordGameQuery("pandascore", "cs-go", 1, nil)

	snap := rec.Snapshot("pandascore")
	if snap.GameQueries["valorant"] != 2 || snap.GameErrors["valorant"] != 1 {
		t.Fatalf("unexpected valorant stats %+v", snap)
	}
	if got := rec.GameQueries("pandascore", "cs-go"); got != 1 {
		t.Fatalf("expected 1 cs-go query, got %d", got)
	}

	snap.GameQueries["valorant"] = 99
	if rec.GameQueries("pandascore", "valorant") != 2 {
		t.Fatalf("expected snapshot maps to be copies")
	}
}

func TestRecorderTracksFallbacks(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFallback("no_credential")
	rec.RecordFallback("no_credential")
	rec.RecordFallback("fetch_failed")

	if got := rec.Fallbacks("no_credential"); got != 2 {
		t.Fatalf("expected 2 no_credential fallbacks, got %d", got)
	}
	if got := rec.Fallbacks("empty"); got != 0 {
		t.Fatalf("expected 0 empty fallbacks, got %d", got)
	}
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("pandascore", time.Millisecond, nil)
			rec.RecordGameQuery("pandascore", "dota2", 1, nil)
		}()
	}
	wg.Wait()

	if got := rec.ProviderCalls("pandascore"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", time.Millisecond, nil)
	rec.RecordRateLimit("p", time.Second)
	rec.RecordGameQuery("p", "g", 1, nil)
	rec.RecordFallback("empty")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if rec.ProviderCalls("p") != 0 || rec.Fallbacks("empty") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
