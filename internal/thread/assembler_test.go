package thread

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/example/video-platform/internal/store"
)

type fixture struct {
	comments *store.InMemoryCommentStore
	likes    *store.InMemoryLikeStore
	users    *store.InMemoryUserStore
	asm      *Assembler
}

func newFixture() *fixture {
	f := &fixture{
		comments: store.NewInMemoryCommentStore(),
		likes:    store.NewInMemoryLikeStore(),
		users:    store.NewInMemoryUserStore(),
	}
	f.asm = &Assembler{Comments: f.comments, Likes: f.likes, Users: f.users}
	return f
}

func TestAssemble_PerViewerFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.Put(store.Profile{ID: "user-a", Username: "alice", Avatar: "a.png"})
	videoID := uuid.NewString()
	c, _ := f.comments.Create(ctx, "user-a", "first", store.VideoTarget(videoID))
	_, _ = f.likes.Toggle(ctx, "user-a", c.ID)

	// Owner sees their own like and may edit.
	pa, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "user-a", 1, 10)
	if err != nil {
		t.Fatalf("assemble as owner: %v", err)
	}
	if len(pa.Docs) != 1 {
		t.Fatalf("expected 1 doc, got %d", len(pa.Docs))
	}
	va := pa.Docs[0]
	if !va.IsLiked || !va.CanUpdate {
		t.Fatalf("owner view: isLiked=%v canUpdate=%v", va.IsLiked, va.CanUpdate)
	}
	if va.LikeCount != 1 {
		t.Fatalf("expected likeCount 1, got %d", va.LikeCount)
	}
	if va.Channel == nil || va.Channel.Username != "alice" {
		t.Fatalf("expected channel alice, got %v", va.Channel)
	}

	// Another viewer gets the same counts but neither flag.
	pb, _ := f.asm.Assemble(ctx, store.VideoTarget(videoID), "user-b", 1, 10)
	vb := pb.Docs[0]
	if vb.IsLiked || vb.CanUpdate {
		t.Fatalf("other view: isLiked=%v canUpdate=%v", vb.IsLiked, vb.CanUpdate)
	}
	if vb.LikeCount != 1 {
		t.Fatalf("expected likeCount 1, got %d", vb.LikeCount)
	}

	// Anonymous viewers are served, with both flags down.
	pn, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 1, 10)
	if err != nil {
		t.Fatalf("assemble anonymous: %v", err)
	}
	vn := pn.Docs[0]
	if vn.IsLiked || vn.CanUpdate {
		t.Fatalf("anonymous view: isLiked=%v canUpdate=%v", vn.IsLiked, vn.CanUpdate)
	}
}

func TestAssemble_ChildCountsOnlyForTopLevel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	videoID := uuid.NewString()
	parent, _ := f.comments.Create(ctx, "user-a", "root", store.VideoTarget(videoID))
	_, _ = f.comments.Create(ctx, "user-b", "r1", store.ReplyTarget(parent.ID))
	_, _ = f.comments.Create(ctx, "user-c", "r2", store.ReplyTarget(parent.ID))

	vp, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 1, 10)
	if err != nil {
		t.Fatalf("assemble video thread: %v", err)
	}
	v := vp.Docs[0]
	if v.ChildCommentCount == nil {
		t.Fatal("expected childCommentCount on a video thread")
	}
	if *v.ChildCommentCount != 2 {
		t.Fatalf("expected 2 children, got %d", *v.ChildCommentCount)
	}

	rp, err := f.asm.Assemble(ctx, store.ReplyTarget(parent.ID), "", 1, 10)
	if err != nil {
		t.Fatalf("assemble replies: %v", err)
	}
	if len(rp.Docs) != 2 {
		t.Fatalf("expected 2 replies, got %d", len(rp.Docs))
	}
	for _, doc := range rp.Docs {
		if doc.ChildCommentCount != nil {
			t.Fatal("reply views must omit childCommentCount")
		}
	}
}

func TestAssemble_SoftDeletedComment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.Put(store.Profile{ID: "user-a", Username: "alice", Avatar: "a.png"})
	videoID := uuid.NewString()
	parent, _ := f.comments.Create(ctx, "user-a", "root", store.VideoTarget(videoID))
	_, _ = f.comments.Create(ctx, "user-b", "reply", store.ReplyTarget(parent.ID))
	if err := f.comments.Delete(ctx, parent.ID, "user-a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	p, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "user-a", 1, 10)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(p.Docs) != 1 {
		t.Fatalf("expected soft-deleted comment in the thread, got %d docs", len(p.Docs))
	}
	v := p.Docs[0]
	if !v.IsDeleted {
		t.Fatal("expected isDeleted=true")
	}
	if v.Channel != nil {
		t.Fatal("expected channel absent after soft delete")
	}
	if v.CanUpdate {
		t.Fatal("expected canUpdate=false even for the former owner")
	}
	if v.ChildCommentCount == nil || *v.ChildCommentCount != 1 {
		t.Fatalf("expected childCommentCount 1, got %v", v.ChildCommentCount)
	}
}

func TestAssemble_Pagination(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	videoID := uuid.NewString()
	for i := 0; i < 15; i++ {
		if _, err := f.comments.Create(ctx, "user-a", "c", store.VideoTarget(videoID)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	p1, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 1, 10)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(p1.Docs) != 10 || p1.TotalDocs != 15 || p1.TotalPages != 2 || p1.Page != 1 {
		t.Fatalf("page 1: docs=%d total=%d pages=%d page=%d", len(p1.Docs), p1.TotalDocs, p1.TotalPages, p1.Page)
	}

	p2, _ := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 2, 10)
	if len(p2.Docs) != 5 {
		t.Fatalf("page 2: expected 5 docs, got %d", len(p2.Docs))
	}

	p3, _ := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 3, 10)
	if len(p3.Docs) != 0 {
		t.Fatalf("page 3: expected 0 docs, got %d", len(p3.Docs))
	}
	if p3.TotalDocs != 15 || p3.TotalPages != 2 {
		t.Fatalf("page 3 metadata: total=%d pages=%d", p3.TotalDocs, p3.TotalPages)
	}
}

func TestAssemble_DefaultsAndEmptyThread(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Out-of-range values fall back to the defaults.
	videoID := uuid.NewString()
	_, _ = f.comments.Create(ctx, "user-a", "only", store.VideoTarget(videoID))
	p, err := f.asm.Assemble(ctx, store.VideoTarget(videoID), "", 0, -3)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if p.Page != DefaultPage || p.Limit != DefaultLimit {
		t.Fatalf("expected defaults %d/%d, got %d/%d", DefaultPage, DefaultLimit, p.Page, p.Limit)
	}

	empty, err := f.asm.Assemble(ctx, store.VideoTarget(uuid.NewString()), "", 1, 10)
	if err != nil {
		t.Fatalf("assemble empty: %v", err)
	}
	if empty.Docs == nil {
		t.Fatal("expected empty docs slice, not nil")
	}
	if empty.TotalDocs != 0 || empty.TotalPages != 0 {
		t.Fatalf("empty thread metadata: total=%d pages=%d", empty.TotalDocs, empty.TotalPages)
	}
}
