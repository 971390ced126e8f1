package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresUserStore reads public profiles from Postgres.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

func (s *PostgresUserStore) ProfilesByID(ctx context.Context, ids []string) (map[string]Profile, error) {
	if len(ids) == 0 {
		return map[string]Profile{}, nil
	}

	q := `SELECT id, username, avatar FROM users WHERE id = ANY($1)`
	rows, err := s.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]Profile, len(ids))
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.Avatar); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}
