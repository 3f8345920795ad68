package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/shellgrid/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_OpensOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())

	var tables int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'layout_state'").Scan(&tables))
	assert.Equal(t, 1, tables, "migrations must run on open")

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	require.NoError(t, lazy.Close())
}

func TestLazyDB_SharedAcrossGoroutines(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	first, err := lazy.DB(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			assert.Same(t, first, db)
		}()
	}
	wg.Wait()
}

func TestLazyDB_CloseBeforeOpen(t *testing.T) {
	lazy := sqlite.NewLazyDB("/nonexistent/layout.sqlite")

	assert.NoError(t, lazy.Close())
	assert.Equal(t, "/nonexistent/layout.sqlite", lazy.Path())
}

func TestLazyDB_ClosedRejectsUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	_, err := lazy.DB(ctx)
	require.NoError(t, err)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
	_, err = lazy.DB(ctx)
	assert.ErrorIs(t, err, sqlite.ErrClosed)
}

func TestLazyDB_EmptyPath(t *testing.T) {
	_, err := sqlite.NewLazyDB("").DB(testCtx())
	assert.Error(t, err)
}
