// Package resolver validates the attachment point of a new comment: the
// claimed target must have a well-formed id and exist in its store.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/video-platform/internal/store"
)

// ErrInvalidID marks an identifier that is not a valid UUID.
var ErrInvalidID = errors.New("malformed id")

// Resolver confirms target entities exist before a comment is attached to
// them. Read-only. The existence check and the subsequent insert are not
// transactional: a target deleted in between leaves an orphaned comment,
// which reads tolerate.
type Resolver struct {
	Videos      store.VideoStore
	Communities store.CommunityStore
	Comments    store.CommentStore
}

// ResolveVideo returns the video a comment wants to attach to.
func (r *Resolver) ResolveVideo(ctx context.Context, id string) (store.Video, error) {
	if err := checkID(id); err != nil {
		return store.Video{}, err
	}
	return r.Videos.GetVideo(ctx, id)
}

// ResolveCommunity returns the community post a comment wants to attach to.
func (r *Resolver) ResolveCommunity(ctx context.Context, id string) (store.Community, error) {
	if err := checkID(id); err != nil {
		return store.Community{}, err
	}
	return r.Communities.GetCommunity(ctx, id)
}

// ResolveParent returns the comment a reply wants to attach to. A
// soft-deleted comment is still a valid parent; it exists precisely so
// its thread keeps working.
func (r *Resolver) ResolveParent(ctx context.Context, id string) (store.Comment, error) {
	if err := checkID(id); err != nil {
		return store.Comment{}, err
	}
	return r.Comments.GetByID(ctx, id)
}

// Resolve dispatches on the target kind. It returns ErrInvalidID for a
// malformed id and store.ErrNotFound when the target entity is missing.
func (r *Resolver) Resolve(ctx context.Context, t store.Target) error {
	switch t.Kind() {
	case store.TargetVideo:
		_, err := r.ResolveVideo(ctx, t.ID())
		return err
	case store.TargetCommunity:
		_, err := r.ResolveCommunity(ctx, t.ID())
		return err
	case store.TargetComment:
		_, err := r.ResolveParent(ctx, t.ID())
		return err
	}
	return fmt.Errorf("unknown target kind %q", t.Kind())
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
