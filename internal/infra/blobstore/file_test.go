//go:build unit

package blobstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"seat-reservation/internal/infra"
	"seat-reservation/internal/infra/blobstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	store, err := blobstore.NewFileStore(t.TempDir(), discardLogger())
	require.NoError(t, err)

	runStoreContract(t, store)
}

func TestFileStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := blobstore.NewFileStore(dir, discardLogger())
	require.NoError(t, err, "missing directories are created")

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "../escape/key", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, ".._escape_key.csv", entries[0].Name())

	v, found, err := store.Get(ctx, "../escape/key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", v)
}

func TestFileStoreUnreadable(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.NewFileStore(dir, discardLogger())
	require.NoError(t, err)

	// A directory where the blob file should be makes the read fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "broken.csv"), 0o755))

	_, _, err = store.Get(context.Background(), "broken")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindStorageFailed))
}
