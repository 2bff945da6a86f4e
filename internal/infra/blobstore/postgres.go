package blobstore

import (
	"context"
	"errors"
	"log/slog"

	"seat-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createBlobTableSQL = `CREATE TABLE IF NOT EXISTS blob_store (
	name       TEXT PRIMARY KEY,
	content    TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	selectBlobSQL = `SELECT content FROM blob_store WHERE name = $1`
	upsertBlobSQL = `INSERT INTO blob_store (name, content, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at`
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore creates the blob table if it does not exist yet.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createBlobTableSQL); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to create blob_store table", err)
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var content string
	err := s.pool.QueryRow(ctx, selectBlobSQL, key).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to select blob", err)
	}
	return content, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, upsertBlobSQL, key, value); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to upsert blob", err)
	}
	return nil
}
