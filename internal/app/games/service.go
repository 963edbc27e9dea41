package games

import (
	domaingames "github.com/preston-bernstein/esports-tracker/internal/domain/games"
	domainmatches "github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// MatchSource exposes the currently loaded collection.
type MatchSource interface {
	Matches() []domainmatches.Match
}

// Option is one entry of the game filter bar.
type Option struct {
	domaingames.Meta
	Accent string `json:"accent"`
	Count  int    `json:"count"`
}

// Service builds the game filter options from the catalog and live counts.
type Service struct {
	source MatchSource
}

// NewService constructs a Service over source. A nil source reports zero counts.
func NewService(source MatchSource) *Service {
	return &Service{source: source}
}

// Options returns the All option, carrying the collection size, followed by
// the catalog in display order.
func (s *Service) Options() []Option {
	var list []domainmatches.Match
	if s.source != nil {
		list = s.source.Matches()
	}
	counts := domainmatches.CountByGame(list)

	metas := domaingames.FilterOptions()
	out := make([]Option, 0, len(metas))
	for _, m := range metas {
		opt := Option{Meta: m, Accent: domaingames.Accent(m.Key)}
		if string(m.Key) == domaingames.All {
			opt.Count = len(list)
		} else {
			opt.Count = counts[string(m.Key)]
		}
		out = append(out, opt)
	}
	return out
}

// Lookup resolves a game key to its presentation metadata.
func (s *Service) Lookup(key string) Option {
	meta := domaingames.Lookup(domaingames.Key(key))
	var count int
	if s.source != nil {
		count = domainmatches.CountByGame(s.source.Matches())[string(meta.Key)]
	}
	return Option{Meta: meta, Accent: domaingames.Accent(meta.Key), Count: count}
}
