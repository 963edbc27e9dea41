package pandascore

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
)

// Config controls how the PandaScore client reaches the upstream API.
type Config struct {
	BaseURL            string
	Token              string
	HTTPClient         *http.Client
	Timeout            time.Duration
	PerPage            int
	Roster             []string
	DisablePlaceholder bool
	Logger             *slog.Logger
	Metrics            *metrics.Recorder
}

// Client fetches matches for a fixed roster of games from PandaScore and
// normalizes them.
type Client struct {
	baseURL     string
	token       string
	httpClient  httpDoer
	perPage     int
	roster      []string
	placeholder bool
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
}

// NewClient constructs a PandaScore client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		token:       strings.TrimSpace(cfg.Token),
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		perPage:     resolvePerPage(cfg.PerPage),
		roster:      resolveRoster(cfg.Roster),
		placeholder: !cfg.DisablePlaceholder,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		now:         time.Now,
	}
}

type gameResult struct {
	records []matchResponse
	err     error
}

// FetchMatches queries every roster game concurrently and merges the
// results in roster order, keeping the first record seen for each id. A
// failing game contributes nothing; only when every query fails is an error
// returned. The Rocket League placeholder is only added to a non-empty
// result: when every query succeeds with zero records the slice stays empty,
// even with the placeholder enabled, so the service serves local data with
// the "empty" message instead of a lone synthetic match.
func (c *Client) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	if c.token == "" {
		return nil, providers.ErrMissingCredential
	}

	results := c.fetchRoster(ctx)

	failures := make(map[string]error)
	merged := make([]matchResponse, 0)
	for i, res := range results {
		if res.err != nil {
			failures[c.roster[i]] = res.err
			continue
		}
		merged = append(merged, res.records...)
	}
	if len(failures) == len(c.roster) {
		return nil, &providers.FetchError{Provider: providerName, Failures: failures}
	}

	unique := dedupe(merged)
	if len(unique) == 0 {
		return []matches.Match{}, nil
	}

	now := c.now()
	out := make([]matches.Match, 0, len(unique)+1)
	for _, raw := range unique {
		out = append(out, normalize(raw, now))
	}
	if c.placeholder {
		out = ensureRocketLeague(out, now)
	}
	return out, nil
}

func (c *Client) fetchRoster(ctx context.Context) []gameResult {
	results := make([]gameResult, len(c.roster))
	p := pool.New().WithMaxGoroutines(len(c.roster))
	for i, slug := range c.roster {
		p.Go(func() {
			start := time.Now()
			records, err := c.fetchGame(ctx, slug)
			c.metrics.RecordGameQuery(providerName, slug, len(records), err)
			if err != nil {
				logging.Warn(logging.FromContext(ctx, c.logger), "pandascore game query failed",
					slog.String(logging.FieldProvider, providerName),
					slog.String(logging.FieldGame, slug),
					slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
					logging.Err(err),
				)
				if rlErr, ok := providers.AsRateLimitError(err); ok {
					c.metrics.RecordRateLimit(providerName, rlErr.RetryAfter)
				}
			}
			results[i] = gameResult{records: records, err: err}
		})
	}
	p.Wait()
	return results
}

func (c *Client) fetchGame(ctx context.Context, slug string) ([]matchResponse, error) {
	req, err := c.buildRequest(ctx, slug)
	if err != nil {
		return nil, crerr.Wrapf(err, "build %s request", slug)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, crerr.Wrapf(err, "pandascore %s", slug)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		text := strings.TrimSpace(string(body))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, rateLimitFromResponse(resp, text)
		}
		return nil, crerr.Newf("pandascore %s: unexpected status %d: %s", slug, resp.StatusCode, text)
	}

	var payload []matchResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, crerr.Wrapf(err, "decode %s payload", slug)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, slug string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/matches", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("filter[status]", statusFilter)
	q.Set("filter[videogame]", slug)
	q.Set("per_page", strconv.Itoa(c.perPage))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func dedupe(records []matchResponse) []matchResponse {
	seen := make(map[int64]struct{}, len(records))
	out := make([]matchResponse, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
