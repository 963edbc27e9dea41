package matches

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domainmatches "github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/metrics"
	"github.com/preston-bernstein/esports-tracker/internal/providers"
)

// Source identifies where the current snapshot came from.
type Source string

const (
	SourceNone   Source = ""
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// defaultLoadTimeout bounds a shared load once it is detached from the
// caller's context.
const defaultLoadTimeout = 30 * time.Second

// Status messages shown alongside locally sourced data.
const (
	MessageNoCredential = "No PandaScore token found; showing local data."
	MessageEmptyRemote  = "No remote matches received; showing local data."
	MessageFetchFailed  = "PandaScore fetch failed; showing local data."
)

// Fallback reasons recorded in metrics and logs.
const (
	ReasonNoCredential = "no_credential"
	ReasonEmptyRemote  = "empty"
	ReasonFetchFailed  = "fetch_failed"
	ReasonLocalOnly    = "local_only"
)

// Store defines the contract for persisting and retrieving the snapshot.
type Store interface {
	ListMatches() []domainmatches.Match
	GetMatch(id string) (domainmatches.Match, bool)
	SetMatches(list []domainmatches.Match)
}

// LoadResult describes the outcome of one refresh.
type LoadResult struct {
	Matches []domainmatches.Match
	Source  Source
	Message string
	// Err is the remote failure that caused a fallback, if any. A missing
	// credential or an empty remote result is not an error.
	Err error
}

// State is the observable loading state of the service.
type State struct {
	Loading    bool
	Message    string
	Source     Source
	LastLoaded time.Time
	Count      int
}

// Service loads matches from a remote provider, falls back to local data,
// and serves the current snapshot.
type Service struct {
	store    Store
	remote   providers.MatchProvider
	fallback providers.MatchProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	flight      singleflight.Group
	loadTimeout time.Duration

	mu    sync.RWMutex
	state State
}

// NewService wires a store with a remote provider and a local fallback. A
// nil remote serves local data only. The service reports loading until the
// first refresh completes.
func NewService(store Store, remote, fallback providers.MatchProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:       store,
		remote:      remote,
		fallback:    fallback,
		logger:      logger,
		metrics:     recorder,
		now:         time.Now,
		loadTimeout: defaultLoadTimeout,
		state:       State{Loading: true},
	}
}

// Refresh runs one load and replaces the snapshot. Concurrent callers share
// a single in-flight load and receive the same result. The shared load keeps
// the first caller's values but not its cancellation, so a caller that goes
// away cannot turn a good remote snapshot into a fetch-failed fallback; it
// is bounded by the load timeout instead.
func (s *Service) Refresh(ctx context.Context) LoadResult {
	v, _, _ := s.flight.Do("refresh", func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		return s.load(loadCtx), nil
	})
	res := v.(LoadResult)
	res.Matches = append([]domainmatches.Match(nil), res.Matches...)
	return res
}

func (s *Service) load(ctx context.Context) LoadResult {
	s.setLoading(true)
	logger := logging.FromContext(ctx, s.logger)

	if s.remote == nil {
		return s.useFallback(ctx, "", ReasonLocalOnly, nil)
	}

	list, err := s.remote.FetchMatches(ctx)
	switch {
	case errors.Is(err, providers.ErrMissingCredential):
		return s.useFallback(ctx, MessageNoCredential, ReasonNoCredential, nil)
	case err != nil:
		logging.Error(logger, "remote fetch failed", err)
		return s.useFallback(ctx, MessageFetchFailed, ReasonFetchFailed, err)
	case len(list) == 0:
		return s.useFallback(ctx, MessageEmptyRemote, ReasonEmptyRemote, nil)
	}

	s.store.SetMatches(list)
	s.finish(SourceRemote, "", len(list))
	logging.Info(logger, "matches loaded", logging.FieldSource, SourceRemote, logging.FieldCount, len(list))
	return LoadResult{Matches: list, Source: SourceRemote}
}

func (s *Service) useFallback(ctx context.Context, message, reason string, cause error) LoadResult {
	logger := logging.FromContext(ctx, s.logger)
	s.metrics.RecordFallback(reason)

	var list []domainmatches.Match
	if s.fallback != nil {
		local, err := s.fallback.FetchMatches(ctx)
		if err != nil {
			logging.Error(logger, "local fallback failed", err)
		}
		list = local
	}
	if list == nil {
		list = []domainmatches.Match{}
	}

	s.store.SetMatches(list)
	s.finish(SourceLocal, message, len(list))
	logging.Info(logger, "matches loaded",
		logging.FieldSource, SourceLocal,
		logging.FieldReason, reason,
		logging.FieldCount, len(list),
	)
	return LoadResult{Matches: list, Source: SourceLocal, Message: message, Err: cause}
}

func (s *Service) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = loading
}

func (s *Service) finish(source Source, message string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{
		Loading:    false,
		Message:    message,
		Source:     source,
		LastLoaded: s.now(),
		Count:      count,
	}
}

// State returns a copy of the current loading state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Matches returns the current snapshot in load order.
func (s *Service) Matches() []domainmatches.Match {
	return s.store.ListMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domainmatches.Match, bool) {
	return s.store.GetMatch(id)
}

// Filtered returns the sorted, filtered view of the snapshot.
func (s *Service) Filtered(f domainmatches.Filter) []domainmatches.Match {
	return domainmatches.Filtered(s.Matches(), f)
}

// Live returns the live subset of the snapshot for the filter's game.
func (s *Service) Live(f domainmatches.Filter) []domainmatches.Match {
	return domainmatches.Live(s.Matches(), f)
}
