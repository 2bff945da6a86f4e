//go:build unit || e2e

package blobstore_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blobStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runStoreContract exercises the behavior every driver must share.
func runStoreContract(t *testing.T, store blobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		v, found, err := store.Get(ctx, "never_written")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "seat_booking_csv_database", "id,userId\nB1,alice"))

		v, found, err := store.Get(ctx, "seat_booking_csv_database")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "id,userId\nB1,alice", v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "overwrite", "first"))
		require.NoError(t, store.Set(ctx, "overwrite", "second"))

		v, _, err := store.Get(ctx, "overwrite")
		require.NoError(t, err)
		assert.Equal(t, "second", v)
	})

	t.Run("empty value is still found", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "empty", ""))

		v, found, err := store.Get(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, v)
	})

	t.Run("large value survives", func(t *testing.T) {
		big := strings.Repeat("B1,alice,A1,2024-06-10,AM,2024-06-10T08:30:00.000Z,ACTIVE\n", 5000)
		require.NoError(t, store.Set(ctx, "big", big))

		v, _, err := store.Get(ctx, "big")
		require.NoError(t, err)
		assert.Equal(t, big, v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "key_a", "a"))
		require.NoError(t, store.Set(ctx, "key_b", "b"))

		a, _, err := store.Get(ctx, "key_a")
		require.NoError(t, err)
		b, _, err := store.Get(ctx, "key_b")
		require.NoError(t, err)
		assert.Equal(t, "a", a)
		assert.Equal(t, "b", b)
	})
}
