package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbalodis/localnotes/internal/repositories/blobs"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := blobs.NewSQLiteStore(db)
	require.NoError(t, store.Set(ctx, "app_users_v1", "[]"))

	value, ok, err := store.Get(ctx, "app_users_v1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "[]", value)
}

func TestOpen_IsIdempotentAcrossRestarts(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, blobs.NewSQLiteStore(db).Set(ctx, "k", "v"))
	require.NoError(t, db.Close())

	// Reopening must re-run migrations as a no-op and keep existing data.
	db, err = Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	value, ok, err := blobs.NewSQLiteStore(db).Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", value)
}
