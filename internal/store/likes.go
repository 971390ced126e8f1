package store

import "context"

// LikeStore defines the contract for comment-like persistence. At most
// one like per (user, comment) pair.
type LikeStore interface {
	// Toggle inserts a like if absent and removes it if present,
	// returning whether the like exists afterwards.
	Toggle(ctx context.Context, userID, commentID string) (bool, error)

	// CountByComment reports the like count for each of the given
	// comments. IDs without likes are absent from the result.
	CountByComment(ctx context.Context, commentIDs []string) (map[string]int, error)

	// LikedBy reports which of the given comments userID has liked.
	LikedBy(ctx context.Context, userID string, commentIDs []string) (map[string]bool, error)
}
