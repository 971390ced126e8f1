package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/example/video-platform/internal/events"
	"github.com/example/video-platform/internal/platform/api"
	"github.com/example/video-platform/internal/platform/auth"
	"github.com/example/video-platform/internal/store"
)

// ToggleCommentLike handles POST /like/comment. It flips the caller's
// like on the comment and reports the new state plus the total count,
// which is what the read views later join in.
func ToggleCommentLike(ls store.LikeStore, cs store.CommentStore, ev *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "Unauthorized request.")
			return
		}

		commentID := strings.TrimSpace(r.URL.Query().Get("commentId"))
		if err := checkUUID(commentID); err != nil {
			api.BadRequest(w, "CommentId not given properly.")
			return
		}

		if _, err := cs.GetByID(r.Context(), commentID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				api.NotFound(w, "Comment doesn't exist.")
				return
			}
			api.Internal(w, "")
			return
		}

		liked, err := ls.Toggle(r.Context(), uid, commentID)
		if err != nil {
			api.Internal(w, "An error occurred while toggling the like status.")
			return
		}

		counts, err := ls.CountByComment(r.Context(), []string{commentID})
		if err != nil {
			api.Internal(w, "An error occurred while toggling the like status.")
			return
		}

		ev.Publish(events.SubjectLikeToggled, "comment_like_toggled", uid, map[string]any{
			"comment_id": commentID,
			"liked":      liked,
		})
		api.OK(w, map[string]any{"isLiked": liked, "likeCount": counts[commentID]}, "Done")
	}
}
