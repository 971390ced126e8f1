package store

import "context"

// Profile is the public face of a comment owner: what read views project
// as the "channel". Never includes credentials or private fields.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// UserStore looks up public profiles. User CRUD belongs to the external
// identity service; this side only reads.
type UserStore interface {
	// ProfilesByID returns the profiles for the given user ids. Unknown
	// ids are absent from the result.
	ProfilesByID(ctx context.Context, ids []string) (map[string]Profile, error)
}
