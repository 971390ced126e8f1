package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCommentStore persists comments in Postgres.
type PostgresCommentStore struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentStore creates a store backed by Postgres.
func NewPostgresCommentStore(pool *pgxpool.Pool) *PostgresCommentStore {
	return &PostgresCommentStore{pool: pool}
}

const commentColumns = `id, owner_id, text, video_id, community_id, parent_id, is_deleted, created_at, updated_at`

func scanComment(row pgx.Row) (Comment, error) {
	var c Comment
	err := row.Scan(&c.ID, &c.OwnerID, &c.Text, &c.VideoID, &c.CommunityID,
		&c.ParentID, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *PostgresCommentStore) Create(ctx context.Context, ownerID, text string, t Target) (Comment, error) {
	if len(text) < 1 {
		return Comment{}, ErrEmptyText
	}

	var videoID, communityID, parentID *string
	id := t.ID()
	switch t.Kind() {
	case TargetVideo:
		videoID = &id
	case TargetCommunity:
		communityID = &id
	case TargetComment:
		parentID = &id
	default:
		return Comment{}, fmt.Errorf("unknown target kind %q", t.Kind())
	}

	q := `INSERT INTO comments (owner_id, text, video_id, community_id, parent_id)
	      VALUES ($1, $2, $3, $4, $5)
	      RETURNING ` + commentColumns
	return scanComment(s.pool.QueryRow(ctx, q, ownerID, text, videoID, communityID, parentID))
}

func (s *PostgresCommentStore) GetByID(ctx context.Context, id string) (Comment, error) {
	q := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	c, err := scanComment(s.pool.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Comment{}, ErrNotFound
	}
	return c, err
}

// targetPredicate maps a target onto its match column.
func targetPredicate(t Target) (string, error) {
	switch t.Kind() {
	case TargetVideo:
		return "video_id", nil
	case TargetCommunity:
		return "community_id", nil
	case TargetComment:
		return "parent_id", nil
	}
	return "", fmt.Errorf("unknown target kind %q", t.Kind())
}

func (s *PostgresCommentStore) ListByTarget(ctx context.Context, t Target, offset, limit int) ([]Comment, int, error) {
	col, err := targetPredicate(t)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQ := `SELECT COUNT(*) FROM comments WHERE ` + col + ` = $1`
	if err := s.pool.QueryRow(ctx, countQ, t.ID()).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + commentColumns + ` FROM comments
	      WHERE ` + col + ` = $1
	      ORDER BY created_at, id
	      LIMIT $2 OFFSET $3`
	rows, err := s.pool.Query(ctx, q, t.ID(), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (s *PostgresCommentStore) CountReplies(ctx context.Context, parentIDs []string) (map[string]int, error) {
	if len(parentIDs) == 0 {
		return map[string]int{}, nil
	}

	q := `SELECT parent_id, COUNT(*) FROM comments
	      WHERE parent_id = ANY($1)
	      GROUP BY parent_id`
	rows, err := s.pool.Query(ctx, q, parentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int, len(parentIDs))
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, rows.Err()
}

func (s *PostgresCommentStore) UpdateText(ctx context.Context, commentID, callerID, text string) (Comment, error) {
	current, err := s.GetByID(ctx, commentID)
	if err != nil {
		return Comment{}, err
	}
	if current.OwnerID == nil || *current.OwnerID != callerID {
		return Comment{}, ErrForbidden
	}
	if len(text) < 1 {
		return Comment{}, ErrEmptyText
	}

	q := `UPDATE comments SET text = $1, updated_at = now()
	      WHERE id = $2
	      RETURNING ` + commentColumns
	return scanComment(s.pool.QueryRow(ctx, q, text, commentID))
}

func (s *PostgresCommentStore) Delete(ctx context.Context, commentID, callerID string) error {
	current, err := s.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if current.OwnerID == nil || *current.OwnerID != callerID {
		return ErrForbidden
	}

	var children int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM comments WHERE parent_id = $1`, commentID).Scan(&children); err != nil {
		return err
	}

	if children == 0 {
		_, err := s.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
		return err
	}

	// Keep the row so replies still resolve their parent.
	_, err = s.pool.Exec(ctx,
		`UPDATE comments SET owner_id = NULL, is_deleted = TRUE, updated_at = now() WHERE id = $1`,
		commentID)
	return err
}
