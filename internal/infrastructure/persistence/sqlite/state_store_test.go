package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func newStores(t *testing.T, workspaceIDs ...string) []*sqlite.StateStore {
	t.Helper()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "layout.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	stores := make([]*sqlite.StateStore, 0, len(workspaceIDs))
	for _, id := range workspaceIDs {
		stores = append(stores, sqlite.NewStateStore(lazy, id))
	}
	return stores
}

func TestStateStore_StoreAndGet(t *testing.T) {
	ctx := testCtx()
	store := newStores(t, "ws-a")[0]

	_, ok, err := store.Get(ctx, "workbench.sideBar.hidden", entity.ScopeWorkspace)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Store(ctx, "workbench.sideBar.hidden", "true", entity.ScopeWorkspace, entity.TargetMachine))

	value, ok, err := store.Get(ctx, "workbench.sideBar.hidden", entity.ScopeWorkspace)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	_, ok, err = store.Get(ctx, "workbench.sideBar.hidden", entity.ScopeProfile)
	require.NoError(t, err)
	assert.False(t, ok, "scopes are separate")
}

func TestStateStore_WorkspaceIsolation(t *testing.T) {
	ctx := testCtx()
	stores := newStores(t, "ws-a", "ws-b")

	require.NoError(t, stores[0].Store(ctx, "workbench.panel.hidden", "false", entity.ScopeWorkspace, entity.TargetMachine))
	require.NoError(t, stores[0].Store(ctx, "workbench.panel.position", "right", entity.ScopeProfile, entity.TargetUser))

	_, ok, err := stores[1].Get(ctx, "workbench.panel.hidden", entity.ScopeWorkspace)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err := stores[1].Get(ctx, "workbench.panel.position", entity.ScopeProfile)
	require.NoError(t, err)
	assert.True(t, ok, "profile rows are shared")
	assert.Equal(t, "right", value)
}

func TestStateStore_FiresOnlyOnChange(t *testing.T) {
	ctx := testCtx()
	store := newStores(t, "ws-a")[0]

	var events []port.StateChangeEvent
	store.OnDidChangeValue(entity.ScopeProfile, func(e port.StateChangeEvent) { events = append(events, e) })

	require.NoError(t, store.Store(ctx, "workbench.statusBar.hidden", "true", entity.ScopeProfile, entity.TargetUser))
	require.NoError(t, store.Store(ctx, "workbench.statusBar.hidden", "true", entity.ScopeProfile, entity.TargetUser))
	require.NoError(t, store.Store(ctx, "workbench.statusBar.hidden", "false", entity.ScopeProfile, entity.TargetUser))

	require.Len(t, events, 2)
	assert.Equal(t, port.StateChangeEvent{
		Key: "workbench.statusBar.hidden", Scope: entity.ScopeProfile, Target: entity.TargetUser,
	}, events[0])
}

func TestStateStore_RemoveAndKeys(t *testing.T) {
	ctx := testCtx()
	store := newStores(t, "ws-a")[0]

	require.NoError(t, store.Store(ctx, "b", "1", entity.ScopeWorkspace, entity.TargetMachine))
	require.NoError(t, store.Store(ctx, "a", "2", entity.ScopeWorkspace, entity.TargetMachine))

	keys, err := store.Keys(ctx, entity.ScopeWorkspace)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	removed := 0
	store.OnDidChangeValue(entity.ScopeWorkspace, func(port.StateChangeEvent) { removed++ })

	require.NoError(t, store.Remove(ctx, "a", entity.ScopeWorkspace))
	require.NoError(t, store.Remove(ctx, "missing", entity.ScopeWorkspace))
	assert.Equal(t, 1, removed)

	keys, err = store.Keys(ctx, entity.ScopeWorkspace)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)
}

func TestStateStore_SyncSeesOtherProcessWrites(t *testing.T) {
	ctx := testCtx()
	stores := newStores(t, "ws-a", "ws-b")
	watcher, writer := stores[0], stores[1]

	require.NoError(t, writer.Store(ctx, "workbench.activityBar.hidden", "false", entity.ScopeProfile, entity.TargetUser))
	require.NoError(t, watcher.Sync(ctx))

	var events []port.StateChangeEvent
	watcher.OnDidChangeValue(entity.ScopeProfile, func(e port.StateChangeEvent) { events = append(events, e) })

	require.NoError(t, writer.Store(ctx, "workbench.activityBar.hidden", "true", entity.ScopeProfile, entity.TargetUser))
	require.NoError(t, watcher.Sync(ctx))
	require.Len(t, events, 1)
	assert.Equal(t, "workbench.activityBar.hidden", events[0].Key)

	require.NoError(t, watcher.Sync(ctx))
	assert.Len(t, events, 1, "unchanged rows do not fire again")

	require.NoError(t, writer.Remove(ctx, "workbench.activityBar.hidden", entity.ScopeProfile))
	require.NoError(t, watcher.Sync(ctx))
	assert.Len(t, events, 2)
}

func TestStateStore_Workspaces(t *testing.T) {
	ctx := testCtx()
	store := newStores(t, "ws-a")[0]

	require.NoError(t, store.TouchWorkspace(ctx, "/home/me/project"))
	require.NoError(t, store.TouchWorkspace(ctx, "/home/me/project"))

	records, err := store.Workspaces(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ws-a", records[0].ID)
	assert.Equal(t, "/home/me/project", records[0].Folder)
	assert.False(t, records[0].LastUsed.IsZero())
}
