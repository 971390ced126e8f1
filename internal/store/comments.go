package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by all stores. Handlers map these onto the
// response envelope.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("caller does not own this comment")
	ErrEmptyText = errors.New("text needs at least 1 character")
)

// TargetKind discriminates what a comment is attached to.
type TargetKind string

const (
	TargetVideo     TargetKind = "video"
	TargetCommunity TargetKind = "community"
	TargetComment   TargetKind = "comment"
)

// Target is the attachment point of a comment. The fields are unexported
// so exactly one kind/id pair is representable; build values with
// VideoTarget, CommunityTarget or ReplyTarget.
type Target struct {
	kind TargetKind
	id   string
}

func VideoTarget(id string) Target     { return Target{kind: TargetVideo, id: id} }
func CommunityTarget(id string) Target { return Target{kind: TargetCommunity, id: id} }
func ReplyTarget(id string) Target     { return Target{kind: TargetComment, id: id} }

func (t Target) Kind() TargetKind { return t.kind }
func (t Target) ID() string       { return t.id }

// State is a comment's lifecycle position. SoftDeleted is terminal: the
// owner reference is cleared on the way in, so owner-gated mutations can
// never pass again.
type State string

const (
	StateActive      State = "active"
	StateSoftDeleted State = "soft_deleted"
)

// Comment is a single comment row.
type Comment struct {
	ID          string    `json:"id"`
	OwnerID     *string   `json:"ownerId,omitempty"`
	Text        string    `json:"text"`
	VideoID     *string   `json:"videoId,omitempty"`
	CommunityID *string   `json:"communityId,omitempty"`
	ParentID    *string   `json:"parentCommentId,omitempty"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c Comment) State() State {
	if c.IsDeleted {
		return StateSoftDeleted
	}
	return StateActive
}

// Target reconstructs the attachment of c.
func (c Comment) Target() Target {
	switch {
	case c.VideoID != nil:
		return VideoTarget(*c.VideoID)
	case c.CommunityID != nil:
		return CommunityTarget(*c.CommunityID)
	case c.ParentID != nil:
		return ReplyTarget(*c.ParentID)
	}
	return Target{}
}

// CommentStore defines the contract for comment persistence.
type CommentStore interface {
	// Create inserts a comment owned by ownerID and attached to t. It
	// fails with ErrEmptyText when text is empty. It does not verify the
	// target exists; run the attachment resolver first. The gap between
	// that check and the insert is an accepted race: an orphaned comment
	// stays readable and is never cleaned up.
	Create(ctx context.Context, ownerID, text string, t Target) (Comment, error)

	GetByID(ctx context.Context, id string) (Comment, error)

	// ListByTarget returns one page of comments attached to t in creation
	// order, plus the total number of matches.
	ListByTarget(ctx context.Context, t Target, offset, limit int) ([]Comment, int, error)

	// CountReplies reports how many direct replies each of the given
	// comments has. IDs without replies are absent from the result.
	CountReplies(ctx context.Context, parentIDs []string) (map[string]int, error)

	// UpdateText replaces the text of the comment owned by callerID.
	// Fails ErrNotFound, then ErrForbidden, then ErrEmptyText, in that
	// order.
	UpdateText(ctx context.Context, commentID, callerID, text string) (Comment, error)

	// Delete removes the comment owned by callerID. A comment with
	// replies is kept as a soft-deleted placeholder (text retained,
	// owner cleared) so its children still resolve their parent; a
	// comment without replies is removed outright.
	Delete(ctx context.Context, commentID, callerID string) error
}
