package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryCommentStore is a development-only in-memory implementation.
type InMemoryCommentStore struct {
	mu       sync.RWMutex
	comments map[string]Comment // id -> comment
	seq      map[string]int     // id -> insertion order
	nextSeq  int
}

func NewInMemoryCommentStore() *InMemoryCommentStore {
	return &InMemoryCommentStore{
		comments: make(map[string]Comment),
		seq:      make(map[string]int),
	}
}

func (s *InMemoryCommentStore) Create(_ context.Context, ownerID, text string, t Target) (Comment, error) {
	if len(text) < 1 {
		return Comment{}, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c := Comment{
		ID:        uuid.NewString(),
		OwnerID:   &ownerID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id := t.ID()
	switch t.Kind() {
	case TargetVideo:
		c.VideoID = &id
	case TargetCommunity:
		c.CommunityID = &id
	case TargetComment:
		c.ParentID = &id
	}

	s.comments[c.ID] = c
	s.seq[c.ID] = s.nextSeq
	s.nextSeq++
	return c, nil
}

func (s *InMemoryCommentStore) GetByID(_ context.Context, id string) (Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	if !ok {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

func (s *InMemoryCommentStore) ListByTarget(_ context.Context, t Target, offset, limit int) ([]Comment, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Comment
	for _, c := range s.comments {
		if matchesTarget(c, t) {
			matched = append(matched, c)
		}
	}
	// Creation order.
	sort.Slice(matched, func(i, j int) bool {
		return s.seq[matched[i].ID] < s.seq[matched[j].ID]
	})

	total := len(matched)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []Comment{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (s *InMemoryCommentStore) CountReplies(_ context.Context, parentIDs []string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(parentIDs))
	for _, id := range parentIDs {
		wanted[id] = true
	}

	out := make(map[string]int)
	for _, c := range s.comments {
		if c.ParentID != nil && wanted[*c.ParentID] {
			out[*c.ParentID]++
		}
	}
	return out, nil
}

func (s *InMemoryCommentStore) UpdateText(_ context.Context, commentID, callerID, text string) (Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return Comment{}, ErrNotFound
	}
	if c.OwnerID == nil || *c.OwnerID != callerID {
		return Comment{}, ErrForbidden
	}
	if len(text) < 1 {
		return Comment{}, ErrEmptyText
	}

	c.Text = text
	c.UpdatedAt = time.Now().UTC()
	s.comments[commentID] = c
	return c, nil
}

func (s *InMemoryCommentStore) Delete(_ context.Context, commentID, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[commentID]
	if !ok {
		return ErrNotFound
	}
	if c.OwnerID == nil || *c.OwnerID != callerID {
		return ErrForbidden
	}

	children := 0
	for _, other := range s.comments {
		if other.ParentID != nil && *other.ParentID == commentID {
			children++
		}
	}

	if children == 0 {
		delete(s.comments, commentID)
		delete(s.seq, commentID)
		return nil
	}

	// Keep the row so replies still resolve their parent.
	c.OwnerID = nil
	c.IsDeleted = true
	c.UpdatedAt = time.Now().UTC()
	s.comments[commentID] = c
	return nil
}

func matchesTarget(c Comment, t Target) bool {
	switch t.Kind() {
	case TargetVideo:
		return c.VideoID != nil && *c.VideoID == t.ID()
	case TargetCommunity:
		return c.CommunityID != nil && *c.CommunityID == t.ID()
	case TargetComment:
		return c.ParentID != nil && *c.ParentID == t.ID()
	}
	return false
}
