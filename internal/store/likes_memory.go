package store

import (
	"context"
	"sync"
	"time"
)

// InMemoryLikeStore is a development-only in-memory implementation.
type InMemoryLikeStore struct {
	mu    sync.RWMutex
	likes map[string]map[string]time.Time // commentID -> userID -> liked at
}

func NewInMemoryLikeStore() *InMemoryLikeStore {
	return &InMemoryLikeStore{likes: make(map[string]map[string]time.Time)}
}

func (s *InMemoryLikeStore) Toggle(_ context.Context, userID, commentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.likes[commentID][userID]; ok {
		delete(s.likes[commentID], userID)
		return false, nil
	}
	if s.likes[commentID] == nil {
		s.likes[commentID] = make(map[string]time.Time)
	}
	s.likes[commentID][userID] = time.Now().UTC()
	return true, nil
}

func (s *InMemoryLikeStore) CountByComment(_ context.Context, commentIDs []string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int)
	for _, id := range commentIDs {
		if n := len(s.likes[id]); n > 0 {
			out[id] = n
		}
	}
	return out, nil
}

func (s *InMemoryLikeStore) LikedBy(_ context.Context, userID string, commentIDs []string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool)
	for _, id := range commentIDs {
		if _, ok := s.likes[id][userID]; ok {
			out[id] = true
		}
	}
	return out, nil
}
