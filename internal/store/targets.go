package store

import (
	"context"
	"time"
)

// Video is a published video a comment can attach to. Video CRUD is
// handled elsewhere; the comment core only checks existence.
type Video struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

// Community is a community post a comment can attach to.
type Community struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type VideoStore interface {
	GetVideo(ctx context.Context, id string) (Video, error)
}

type CommunityStore interface {
	GetCommunity(ctx context.Context, id string) (Community, error)
}
