package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/example/video-platform/internal/events"
	"github.com/example/video-platform/internal/platform/api"
	"github.com/example/video-platform/internal/platform/auth"
	"github.com/example/video-platform/internal/resolver"
	"github.com/example/video-platform/internal/store"
	"github.com/example/video-platform/internal/thread"
)

type postVideoCommentRequest struct {
	VideoID string `json:"videoId"`
	Text    string `json:"text"`
}

type postReplyRequest struct {
	ParentCommentID string `json:"parentCommentId"`
	Text            string `json:"text"`
}

type postCommunityCommentRequest struct {
	CommunityID string `json:"communityId"`
	Text        string `json:"text"`
}

type updateCommentRequest struct {
	CommentID string `json:"commentId"`
	NewText   string `json:"newText"`
}

// writeResolveError maps attachment-resolver failures for the given
// target name onto the envelope.
func writeResolveError(w http.ResponseWriter, err error, idName, entityName string) {
	switch {
	case errors.Is(err, resolver.ErrInvalidID):
		api.BadRequest(w, idName+" not given properly.")
	case errors.Is(err, store.ErrNotFound):
		api.NotFound(w, entityName+" not found.")
	default:
		api.Internal(w, "")
	}
}

// PostVideoComment handles POST /comment/post/video.
func PostVideoComment(cs store.CommentStore, res *resolver.Resolver, ev *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "Unauthorized request.")
			return
		}

		var req postVideoCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if _, err := res.ResolveVideo(r.Context(), strings.TrimSpace(req.VideoID)); err != nil {
			writeResolveError(w, err, "VideoId", "Video")
			return
		}

		// Empty text is a 401 on this route; existing clients depend on it.
		if len(req.Text) < 1 {
			api.Unauthorized(w, "Text needs at least 1 character.")
			return
		}

		c, err := cs.Create(r.Context(), uid, req.Text, store.VideoTarget(strings.TrimSpace(req.VideoID)))
		if err != nil {
			api.Internal(w, "Something went wrong while creating the comment.")
			return
		}

		ev.Publish(events.SubjectCommentCreated, "comment_created", uid, map[string]any{
			"comment_id": c.ID,
			"video_id":   req.VideoID,
		})
		api.OK(w, map[string]any{"newComment": c}, "Comment created successfully.")
	}
}

// PostReply handles POST /comment/post/comment.
func PostReply(cs store.CommentStore, res *resolver.Resolver, ev *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "Unauthorized request.")
			return
		}

		var req postReplyRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		parentID := strings.TrimSpace(req.ParentCommentID)
		if _, err := res.ResolveParent(r.Context(), parentID); err != nil {
			writeResolveError(w, err, "ParentCommentId", "Parent comment")
			return
		}

		if len(req.Text) < 1 {
			api.BadRequest(w, "Text needs at least 1 character.")
			return
		}

		c, err := cs.Create(r.Context(), uid, req.Text, store.ReplyTarget(parentID))
		if err != nil {
			api.Internal(w, "Something went wrong while creating the reply.")
			return
		}

		ev.Publish(events.SubjectCommentCreated, "comment_created", uid, map[string]any{
			"comment_id": c.ID,
			"parent_id":  parentID,
		})
		api.OK(w, map[string]any{"newReply": c}, "Reply created successfully.")
	}
}

// PostCommunityComment handles POST /comment/post/community.
func PostCommunityComment(cs store.CommentStore, res *resolver.Resolver, ev *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "Unauthorized request.")
			return
		}

		var req postCommunityCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		communityID := strings.TrimSpace(req.CommunityID)
		if _, err := res.ResolveCommunity(r.Context(), communityID); err != nil {
			writeResolveError(w, err, "CommunityId", "Community post")
			return
		}

		if len(req.Text) < 1 {
			api.BadRequest(w, "Text needs at least 1 character.")
			return
		}

		c, err := cs.Create(r.Context(), uid, req.Text, store.CommunityTarget(communityID))
		if err != nil {
			api.Internal(w, "Something went wrong while creating the community comment.")
			return
		}

		ev.Publish(events.SubjectCommentCreated, "comment_created", uid, map[string]any{
			"comment_id":   c.ID,
			"community_id": communityID,
		})
		api.OK(w, map[string]any{"newCommunityComment": c}, "Community comment created successfully.")
	}
}

// getThread is the shared read path: resolve the target, then assemble
// one page of views for the (possibly anonymous) caller.
func getThread(asm *thread.Assembler, res *resolver.Resolver, t store.Target, dataKey, idName, entityName, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := auth.UserIDFromContext(r.Context())

		if err := res.Resolve(r.Context(), t); err != nil {
			writeResolveError(w, err, idName, entityName)
			return
		}

		page, limit := pageParams(r)
		p, err := asm.Assemble(r.Context(), t, uid, page, limit)
		if err != nil {
			api.Internal(w, "")
			return
		}
		api.OK(w, map[string]any{dataKey: p}, message)
	}
}

// GetVideoComments handles GET /comment/get/video.
func GetVideoComments(asm *thread.Assembler, res *resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("videoId"))
		getThread(asm, res, store.VideoTarget(id), "comments", "VideoId", "Video",
			"Comments fetched successfully.")(w, r)
	}
}

// GetCommunityComments handles GET /comment/get/community.
func GetCommunityComments(asm *thread.Assembler, res *resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("communityId"))
		getThread(asm, res, store.CommunityTarget(id), "comments", "CommunityId", "Community post",
			"Community comments fetched successfully.")(w, r)
	}
}

// GetReplies handles GET /comment/get/comment.
func GetReplies(asm *thread.Assembler, res *resolver.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.URL.Query().Get("parentCommentId"))
		getThread(asm, res, store.ReplyTarget(id), "replies", "ParentCommentId", "Parent comment",
			"Replies fetched successfully.")(w, r)
	}
}

// UpdateComment handles POST /comment/update.
func UpdateComment(cs store.CommentStore, ev *events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok || uid == "" {
			api.Unauthorized(w, "Unauthorized request.")
			return
		}

		var req updateCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		commentID := strings.TrimSpace(req.CommentID)
		if err := checkUUID(commentID); err != nil {
			api.BadRequest(w, "CommentId not given properly.")
			return
		}

		c, err := cs.UpdateText(r.Context(), commentID, uid, req.NewText)
		switch {
		case errors.Is(err, store.ErrNotFound):
			api.NotFound(w, "Comment not found.")
			return
		case errors.Is(err, store.ErrForbidden):
			api.Forbidden(w, "You are not authorized to modify this comment.")
			return
		case errors.Is(err, store.ErrEmptyText):
			api.Unauthorized(w, "Text needs at least 1 character.")
			return
		case err != nil:
			api.Internal(w, "")
			return
		}

		ev.Publish(events.SubjectCommentUpdated, "comment_updated", uid, map[string]any{
			"comment_id": c.ID,
		})
		api.OK(w, map[string]any{"newComment": c}, "Comment updated successfully.")
	}
}

// DeleteComment handles DELETE /comment/delete.
func DeleteComment(cs store.CommentStore, ev *events.Publisher) http.HandlerFunc {
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

		err := cs.Delete(r.Context(), commentID, uid)
		switch {
		case errors.Is(err, store.ErrNotFound):
			api.NotFound(w, "Comment not found.")
			return
		case errors.Is(err, store.ErrForbidden):
			api.Forbidden(w, "You are not authorized to modify this comment.")
			return
		case err != nil:
			api.Internal(w, "")
			return
		}

		ev.Publish(events.SubjectCommentDeleted, "comment_deleted", uid, map[string]any{
			"comment_id": commentID,
		})
		api.OK(w, nil, "Comment deleted successfully.")
	}
}
