package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/example/video-platform/internal/store"
)

func TestToggleCommentLike(t *testing.T) {
	e := newEnv()
	c, _ := e.comments.Create(context.Background(), "user-a", "likeable", store.VideoTarget(uuid.NewString()))
	h := ToggleCommentLike(e.likes, e.comments, nil)

	type result struct {
		IsLiked   bool `json:"isLiked"`
		LikeCount int  `json:"likeCount"`
	}

	t.Run("toggle on and off", func(t *testing.T) {
		w, env := do(t, h, http.MethodPost, "/like/comment?commentId="+c.ID, "user-b", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, env.Message)
		}
		var res result
		if err := json.Unmarshal(env.Data, &res); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if !res.IsLiked || res.LikeCount != 1 {
			t.Fatalf("expected liked with count 1, got %+v", res)
		}

		_, env = do(t, h, http.MethodPost, "/like/comment?commentId="+c.ID, "user-b", "")
		if err := json.Unmarshal(env.Data, &res); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if res.IsLiked || res.LikeCount != 0 {
			t.Fatalf("expected unliked with count 0, got %+v", res)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		w, _ := do(t, h, http.MethodPost, "/like/comment?commentId="+c.ID, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		w, _ := do(t, h, http.MethodPost, "/like/comment?commentId=nope", "user-b", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing comment", func(t *testing.T) {
		w, env := do(t, h, http.MethodPost, "/like/comment?commentId="+uuid.NewString(), "user-b", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if env.Message != "Comment doesn't exist." {
			t.Fatalf("unexpected message %q", env.Message)
		}
	})
}
