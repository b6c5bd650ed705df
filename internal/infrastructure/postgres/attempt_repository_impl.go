package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
)

type AttemptRepository struct {
	pool *pgxpool.Pool
}

func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

func (r *AttemptRepository) Get(ctx context.Context, identifier string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count FROM login_attempts WHERE identifier = $1
	`, identifier).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

func (r *AttemptRepository) Increment(ctx context.Context, identifier string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO login_attempts (identifier, count) VALUES ($1, 1)
		ON CONFLICT (identifier) DO UPDATE SET count = login_attempts.count + 1
		RETURNING count
	`, identifier).Scan(&n)
	return n, err
}

func (r *AttemptRepository) Clear(ctx context.Context, identifier string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM login_attempts WHERE identifier = $1`, identifier)
	return err
}

var _ repository.LoginAttemptRepository = (*AttemptRepository)(nil)
