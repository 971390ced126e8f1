package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLikeStore persists comment likes in Postgres.
type PostgresLikeStore struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeStore creates a store backed by Postgres.
func NewPostgresLikeStore(pool *pgxpool.Pool) *PostgresLikeStore {
	return &PostgresLikeStore{pool: pool}
}

func (s *PostgresLikeStore) Toggle(ctx context.Context, userID, commentID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM comment_likes WHERE user_id = $1 AND comment_id = $2`,
		userID, commentID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO comment_likes (user_id, comment_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, comment_id) DO NOTHING`,
		userID, commentID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresLikeStore) CountByComment(ctx context.Context, commentIDs []string) (map[string]int, error) {
	if len(commentIDs) == 0 {
		return map[string]int{}, nil
	}

	q := `SELECT comment_id, COUNT(*) FROM comment_likes
	      WHERE comment_id = ANY($1)
	      GROUP BY comment_id`
	rows, err := s.pool.Query(ctx, q, commentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int, len(commentIDs))
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

func (s *PostgresLikeStore) LikedBy(ctx context.Context, userID string, commentIDs []string) (map[string]bool, error) {
	if len(commentIDs) == 0 {
		return map[string]bool{}, nil
	}

	q := `SELECT comment_id FROM comment_likes
	      WHERE user_id = $1 AND comment_id = ANY($2)`
	rows, err := s.pool.Query(ctx, q, userID, commentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool, len(commentIDs))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
