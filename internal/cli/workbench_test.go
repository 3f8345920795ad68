package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	t.Setenv("SHELLGRID_THEME", "dark")
	if opts.Workspace == "" {
		opts.Workspace = t.TempDir()
	}
	app, err := NewApp(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// persistentOptions share one config directory and database.
func persistentOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		ConfigDir:    filepath.Join(dir, "config"),
		DatabasePath: filepath.Join(dir, "layout.sqlite"),
	}
}

func openSession(t *testing.T, app *App, opts SessionOptions) *Session {
	t.Helper()
	s, err := app.OpenWorkbench(context.Background(), opts)
	require.NoError(t, err)
	return s
}

func partBox(t *testing.T, snap Snapshot, p entity.Part) PartBox {
	t.Helper()
	for _, b := range snap.Parts {
		if b.Part == p.ShortName() {
			return b
		}
	}
	t.Fatalf("no box for %s", p.ShortName())
	return PartBox{}
}

func TestOpenWorkbench_DefaultLayout(t *testing.T) {
	app := newTestApp(t, Options{Ephemeral: true})
	s := openSession(t, app, SessionOptions{})
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	snap := s.Snapshot()

	assert.Equal(t, entity.Dimension{Width: DefaultWidth, Height: DefaultHeight}, snap.Window)
	assert.Equal(t, entity.PositionLeft, snap.SideBarPosition)
	assert.Equal(t, entity.PositionBottom, snap.PanelPosition)
	assert.False(t, snap.ZenMode)

	visible := snap.VisibleParts()
	assert.Contains(t, visible, "editor")
	assert.Contains(t, visible, "sidebar")
	assert.Contains(t, visible, "statusbar")
	assert.NotContains(t, visible, "panel")
	assert.NotContains(t, visible, "auxiliarybar")

	editor := partBox(t, snap, entity.PartEditor)
	assert.Positive(t, editor.Width)
	assert.Positive(t, editor.Height)
	assert.Zero(t, partBox(t, snap, entity.PartPanel).Width)

	require.NotNil(t, snap.Grid)
	assert.NotNil(t, snap.Grid.Root.FindLeaf(entity.PartEditor))

	var names []string
	for _, m := range snap.Milestones {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"parts_registered", "state_loaded", "grid_created", "first_layout", "ready", "restored"}, names)
	assert.True(t, s.Layout.IsRestored())
}

func TestOpenWorkbench_OpensFiles(t *testing.T) {
	app := newTestApp(t, Options{Ephemeral: true})
	s := openSession(t, app, SessionOptions{Files: []string{"main.go", "go.mod"}})
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	opened := s.Editors.Opened()
	require.Len(t, opened, 2)
	assert.Equal(t, "main.go", opened[0].Resource)
	assert.Equal(t, "go.mod", opened[1].Resource)
}

func TestSession_Resize(t *testing.T) {
	app := newTestApp(t, Options{Ephemeral: true})
	s := openSession(t, app, SessionOptions{Width: 1000, Height: 600})
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	before := partBox(t, s.Snapshot(), entity.PartEditor)
	s.Resize(context.Background(), 1400, 900)
	after := partBox(t, s.Snapshot(), entity.PartEditor)

	assert.Equal(t, entity.Dimension{Width: 1400, Height: 900}, s.Snapshot().Window)
	assert.Greater(t, after.Width, before.Width)
	assert.Greater(t, after.Height, before.Height)
}

func TestOpenWorkbench_PersistsPerWorkspace(t *testing.T) {
	ctx := context.Background()
	opts := persistentOptions(t)
	opts.Workspace = t.TempDir()

	app := newTestApp(t, opts)
	s := openSession(t, app, SessionOptions{})
	require.NoError(t, s.Layout.SetPartHidden(ctx, true, entity.PartSideBar))
	require.NoError(t, s.Layout.SetPanelPosition(ctx, entity.PositionRight))
	require.NoError(t, s.Close(ctx))
	require.NoError(t, app.Close())

	again := newTestApp(t, opts)
	s = openSession(t, again, SessionOptions{})
	snap := s.Snapshot()
	require.NoError(t, s.Close(ctx))

	assert.Equal(t, app.Workspace.ID, again.Workspace.ID)
	assert.NotContains(t, snap.VisibleParts(), "sidebar")
	assert.Equal(t, entity.PositionRight, snap.PanelPosition)

	workspaces, err := again.States.Workspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, opts.Workspace, workspaces[0].Folder)

	// Side bar visibility is workspace state; another folder keeps the default.
	other := opts
	other.Workspace = t.TempDir()
	otherApp := newTestApp(t, other)
	s = openSession(t, otherApp, SessionOptions{})
	t.Cleanup(func() { _ = s.Close(ctx) })
	assert.Contains(t, s.Snapshot().VisibleParts(), "sidebar")
}

func TestOpenWorkbench_ResetLayoutIgnoresStoredState(t *testing.T) {
	ctx := context.Background()
	opts := persistentOptions(t)
	opts.Workspace = t.TempDir()

	app := newTestApp(t, opts)
	s := openSession(t, app, SessionOptions{})
	require.NoError(t, s.Layout.SetPanelPosition(ctx, entity.PositionTop))
	require.NoError(t, s.Close(ctx))

	s = openSession(t, app, SessionOptions{ResetLayout: true})
	t.Cleanup(func() { _ = s.Close(ctx) })
	assert.Equal(t, entity.PositionBottom, s.Snapshot().PanelPosition)
}

func TestResolveWorkspace(t *testing.T) {
	dir := t.TempDir()

	a, err := resolveWorkspace(dir)
	require.NoError(t, err)
	b, err := resolveWorkspace(filepath.Join(dir, "sub", ".."))
	require.NoError(t, err)
	c, err := resolveWorkspace(filepath.Join(dir, "sub"))
	require.NoError(t, err)

	assert.Equal(t, dir, a.Folder)
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Len(t, a.ID, 36)
}
