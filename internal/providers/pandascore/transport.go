package pandascore

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolvePerPage(n int) int {
	switch {
	case n <= 0:
		return defaultPerPage
	case n > maxPerPage:
		return maxPerPage
	default:
		return n
	}
}

func resolveRoster(slugs []string) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultRoster...)
	}
	return out
}

// rateLimitFromResponse builds a RateLimitError from a 429 response.
func rateLimitFromResponse(resp *http.Response, body string) *providers.RateLimitError {
	rlErr := &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Remaining:  resp.Header.Get("X-Rate-Limit-Remaining"),
		Message:    "pandascore rate limited",
	}
	if body != "" {
		rlErr.Message += ": " + body
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("Retry-After"))); err == nil && secs > 0 {
		rlErr.RetryAfter = time.Duration(secs) * time.Second
	}
	return rlErr
}
