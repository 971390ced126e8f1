// Package thread builds the paginated, permission-aware read views of a
// comment thread. One algorithm serves video comments, community comments
// and replies; only the match target differs.
package thread

import (
	"context"
	"time"

	"github.com/example/video-platform/internal/store"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Channel is the owner's public profile projected onto a comment view.
// Absent when the owner reference was cleared by a soft delete.
type Channel struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// View is one comment as seen by a particular viewer. Raw owner ids and
// internal keys are never projected.
type View struct {
	ID                string    `json:"id"`
	Text              string    `json:"text"`
	IsDeleted         bool      `json:"isDeleted"`
	ChildCommentCount *int      `json:"childCommentCount,omitempty"`
	LikeCount         int       `json:"likeCount"`
	IsLiked           bool      `json:"isLiked"`
	Channel           *Channel  `json:"channel,omitempty"`
	CanUpdate         bool      `json:"canUpdate"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Page is one page of views plus pagination metadata.
type Page struct {
	Docs       []View `json:"docs"`
	TotalDocs  int    `json:"totalDocs"`
	Limit      int    `json:"limit"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// Assembler joins the comment, like and user stores into read views.
type Assembler struct {
	Comments store.CommentStore
	Likes    store.LikeStore
	Users    store.UserStore
}

// Assemble returns the requested page of comments attached to t as seen
// by viewerID. viewerID may be empty for anonymous readers, who get
// isLiked=false and canUpdate=false on every row but are never denied.
// Reply counts are computed one level deep and only for video and
// community threads; reply pages omit the field entirely.
func (a *Assembler) Assemble(ctx context.Context, t store.Target, viewerID string, page, limit int) (Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	comments, total, err := a.Comments.ListByTarget(ctx, t, offset, limit)
	if err != nil {
		return Page{}, err
	}

	out := Page{
		Docs:       []View{},
		TotalDocs:  total,
		Limit:      limit,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}
	if len(comments) == 0 {
		return out, nil
	}

	ids := make([]string, len(comments))
	ownerSet := make(map[string]bool)
	for i, c := range comments {
		ids[i] = c.ID
		if c.OwnerID != nil {
			ownerSet[*c.OwnerID] = true
		}
	}
	ownerIDs := make([]string, 0, len(ownerSet))
	for id := range ownerSet {
		ownerIDs = append(ownerIDs, id)
	}

	// Three independent lookups, then a projection.
	withChildren := t.Kind() != store.TargetComment
	var childCounts map[string]int
	if withChildren {
		if childCounts, err = a.Comments.CountReplies(ctx, ids); err != nil {
			return Page{}, err
		}
	}

	likeCounts, err := a.Likes.CountByComment(ctx, ids)
	if err != nil {
		return Page{}, err
	}

	liked := map[string]bool{}
	if viewerID != "" {
		if liked, err = a.Likes.LikedBy(ctx, viewerID, ids); err != nil {
			return Page{}, err
		}
	}

	profiles, err := a.Users.ProfilesByID(ctx, ownerIDs)
	if err != nil {
		return Page{}, err
	}

	for _, c := range comments {
		v := View{
			ID:        c.ID,
			Text:      c.Text,
			IsDeleted: c.IsDeleted,
			LikeCount: likeCounts[c.ID],
			IsLiked:   liked[c.ID],
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		if withChildren {
			n := childCounts[c.ID]
			v.ChildCommentCount = &n
		}
		if c.OwnerID != nil {
			if p, ok := profiles[*c.OwnerID]; ok {
				v.Channel = &Channel{Username: p.Username, Avatar: p.Avatar}
			}
			v.CanUpdate = viewerID != "" && viewerID == *c.OwnerID
		}
		out.Docs = append(out.Docs, v)
	}
	return out, nil
}
