package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresVideoStore reads videos from Postgres.
type PostgresVideoStore struct {
	pool *pgxpool.Pool
}

func NewPostgresVideoStore(pool *pgxpool.Pool) *PostgresVideoStore {
	return &PostgresVideoStore{pool: pool}
}

func (s *PostgresVideoStore) GetVideo(ctx context.Context, id string) (Video, error) {
	var v Video
	err := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, created_at FROM videos WHERE id = $1`, id).
		Scan(&v.ID, &v.OwnerID, &v.Title, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Video{}, ErrNotFound
	}
	return v, err
}

// PostgresCommunityStore reads community posts from Postgres.
type PostgresCommunityStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCommunityStore(pool *pgxpool.Pool) *PostgresCommunityStore {
	return &PostgresCommunityStore{pool: pool}
}

func (s *PostgresCommunityStore) GetCommunity(ctx context.Context, id string) (Community, error) {
	var c Community
	err := s.pool.QueryRow(ctx,
		`SELECT id, owner_id, text, created_at FROM community_posts WHERE id = $1`, id).
		Scan(&c.ID, &c.OwnerID, &c.Text, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Community{}, ErrNotFound
	}
	return c, err
}
