package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

// MemoryStore keeps a thread-safe, ordered snapshot of matches in memory.
// Order is the order the snapshot was set in; views need it for stable sorting.
type MemoryStore struct {
	mu        sync.RWMutex
	matches   []matches.Match
	byID      map[string]int
	updatedAt time.Time
	now       func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: []matches.Match{},
		byID:    make(map[string]int),
		now:     time.Now,
	}
}

// ListMatches returns a copy of the current snapshot.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]matches.Match, len(s.matches))
	copy(result, s.matches)
	return result
}

// GetMatch retrieves a match by the string form of its ID.
func (s *MemoryStore) GetMatch(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return matches.Match{}, false
	}
	return s.matches[i], true
}

// SetMatches replaces the existing snapshot. When two entries share an ID
// string, lookups resolve to the first.
func (s *MemoryStore) SetMatches(list []matches.Match) {
	snapshot := make([]matches.Match, len(list))
	copy(snapshot, list)

	byID := make(map[string]int, len(list))
	for i, m := range snapshot {
		key := m.ID.String()
		if _, exists := byID[key]; !exists {
			byID[key] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = snapshot
	s.byID = byID
	s.updatedAt = s.now()
}

// UpdatedAt reports when the snapshot was last replaced; zero before the first set.
func (s *MemoryStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Len returns the number of matches in the snapshot.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}
