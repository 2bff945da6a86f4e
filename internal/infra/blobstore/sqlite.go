package blobstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"seat-reservation/internal/infra"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type blobRow struct {
	bun.BaseModel `bun:"table:blobs"`

	Name      string    `bun:"name,pk"`
	Content   string    `bun:"content,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type SQLiteStore struct {
	db     *bun.DB
	logger *slog.Logger
}

// OpenSQLite opens dsn (a file path or ":memory:") through the sqlite shim.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" databases alive.
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

func NewSQLiteStore(ctx context.Context, db *bun.DB, logger *slog.Logger) (*SQLiteStore, error) {
	_, err := db.NewCreateTable().
		Model((*blobRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to create blobs table", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var row blobRow
	err := s.db.NewSelect().
		Model(&row).
		Where("name = ?", key).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to select blob", err)
	}
	return row.Content, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	row := blobRow{Name: key, Content: value, UpdatedAt: time.Now().UTC()}
	_, err := s.db.NewInsert().
		Model(&row).
		On("CONFLICT (name) DO UPDATE").
		Set("content = EXCLUDED.content").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to upsert blob", err)
	}
	return nil
}
