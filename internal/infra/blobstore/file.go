package blobstore

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"seat-reservation/internal/infra"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileStore keeps each key in its own file under dir.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStorageFailed, "failed to create store directory", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".csv")
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to read blob", err)
	}
	return string(data), true, nil
}

// Set writes to a temp file and renames it over the old one, so a reader
// never sees a half-written table.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(s.dir, ".blob-*")
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to create temp file", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to write blob", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to sync blob", err)
	}
	if err := tmp.Close(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to close blob", err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStorageFailed, "failed to replace blob", err)
	}
	return nil
}
