package store

import (
	"context"
	"sync"
)

// InMemoryUserStore is a development-only in-memory implementation.
type InMemoryUserStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{profiles: make(map[string]Profile)}
}

// Put registers a profile. Used by tests and development seeding.
func (s *InMemoryUserStore) Put(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

func (s *InMemoryUserStore) ProfilesByID(_ context.Context, ids []string) (map[string]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Profile, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}
