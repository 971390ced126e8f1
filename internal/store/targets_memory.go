package store

import (
	"context"
	"sync"
)

// InMemoryVideoStore is a development-only in-memory implementation.
type InMemoryVideoStore struct {
	mu     sync.RWMutex
	videos map[string]Video
}

func NewInMemoryVideoStore() *InMemoryVideoStore {
	return &InMemoryVideoStore{videos: make(map[string]Video)}
}

// Put registers a video. Used by tests and development seeding.
func (s *InMemoryVideoStore) Put(v Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[v.ID] = v
}

func (s *InMemoryVideoStore) GetVideo(_ context.Context, id string) (Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return Video{}, ErrNotFound
	}
	return v, nil
}

// InMemoryCommunityStore is a development-only in-memory implementation.
type InMemoryCommunityStore struct {
	mu    sync.RWMutex
	posts map[string]Community
}

func NewInMemoryCommunityStore() *InMemoryCommunityStore {
	return &InMemoryCommunityStore{posts: make(map[string]Community)}
}

// Put registers a community post. Used by tests and development seeding.
func (s *InMemoryCommunityStore) Put(c Community) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[c.ID] = c
}

func (s *InMemoryCommunityStore) GetCommunity(_ context.Context, id string) (Community, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.posts[id]
	if !ok {
		return Community{}, ErrNotFound
	}
	return c, nil
}
