package workbench_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/application/port/mocks"
	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/memory"
)

func waitClosed(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s never signalled", what)
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestRestore_OpensEditorsAndViews(t *testing.T) {
	store := memory.NewStateStore()
	require.NoError(t, store.Store(t.Context(), "workbench.panel.hidden", "false", entity.ScopeWorkspace, entity.TargetMachine))

	h := newHarness(t, withStore(store), withOptions(workbench.Options{
		IsNative: true,
		EditorsToOpen: []port.EditorRequest{
			{Resource: "main.go", Group: 1},
			{Resource: "go.mod", Group: 2},
			{Resource: "README.md", Group: 1},
		},
		DefaultViews: []workbench.DefaultView{
			{ID: "workbench.panel.output", Location: port.LocationPanel},
		},
	}))

	require.NoError(t, h.layout.Restore(h.ctx))
	assert.False(t, isClosed(h.layout.WhenReady()), "editor groups are not ready yet")

	h.groups.MarkReady()
	waitClosed(t, h.layout.WhenReady(), "ready")

	assert.Equal(t, []port.EditorRequest{
		{Resource: "main.go", Group: 1},
		{Resource: "README.md", Group: 1},
		{Resource: "go.mod", Group: 2},
	}, h.editors.Opened())

	panel, _ := h.panes.ActivePaneCompositeID(port.LocationPanel)
	assert.Equal(t, "workbench.panel.output", panel, "a default view wins over the restored container")
	sideBar, _ := h.panes.ActivePaneCompositeID(port.LocationSidebar)
	assert.Equal(t, "workbench.view.explorer", sideBar)
	_, aux := h.panes.ActivePaneCompositeID(port.LocationAuxiliaryBar)
	assert.False(t, aux)

	assert.False(t, h.layout.IsRestored())
	h.groups.MarkRestored()
	waitClosed(t, h.layout.WhenRestored(), "restored")
	assert.True(t, h.layout.IsRestored())
}

func TestRestore_FailuresAreSwallowed(t *testing.T) {
	panes := mocks.NewMockPaneCompositeService(t)
	views := mocks.NewMockViewDescriptorService(t)
	editors := mocks.NewMockEditorService(t)

	panes.EXPECT().LastActivePaneCompositeID(mock.Anything).Return("").Maybe()
	panes.EXPECT().ActivePaneCompositeID(mock.Anything).Return("", false).Maybe()
	views.EXPECT().DefaultViewContainerID(port.LocationSidebar).Return("workbench.view.explorer", true).Maybe()
	panes.EXPECT().
		OpenPaneComposite(mock.Anything, "workbench.view.explorer", port.LocationSidebar, false).
		Return(errors.New("view crashed")).
		Once()
	editors.EXPECT().OpenEditors(mock.Anything, mock.Anything).Return(errors.New("disk full")).Times(2)

	h := newHarness(t, withServices(panes, views, editors), withOptions(workbench.Options{
		IsNative: true,
		EditorsToOpen: []port.EditorRequest{
			{Resource: "a.go", Group: 1},
			{Resource: "b.go", Group: 2},
		},
	}))
	h.groups.MarkReady()
	h.groups.MarkRestored()

	require.NoError(t, h.layout.Restore(h.ctx))

	waitClosed(t, h.layout.WhenRestored(), "restored")
	assert.True(t, h.layout.IsRestored())
}

func TestRestore_RequiresGrid(t *testing.T) {
	h := newHarness(t, withoutGrid())

	err := h.layout.Restore(h.ctx)

	assert.ErrorIs(t, err, workbench.ErrGridNotCreated)
}

func TestRestore_RunsOnce(t *testing.T) {
	h := newHarness(t, withOptions(workbench.Options{
		IsNative:      true,
		EditorsToOpen: []port.EditorRequest{{Resource: "main.go", Group: 1}},
	}))
	h.groups.MarkReady()
	h.groups.MarkRestored()

	require.NoError(t, h.layout.Restore(h.ctx))
	require.NoError(t, h.layout.Restore(h.ctx))
	waitClosed(t, h.layout.WhenRestored(), "restored")

	assert.Len(t, h.editors.Opened(), 1)
}

func TestRestore_ReentersZenMode(t *testing.T) {
	store := memory.NewStateStore()
	require.NoError(t, store.Store(t.Context(), "workbench.zenMode.active", "true", entity.ScopeWorkspace, entity.TargetMachine))

	h := newHarness(t, withStore(store))
	require.True(t, h.layout.IsZenModeActive())
	require.True(t, h.visible(entity.PartSideBar), "zen mode is applied on restore, not on load")

	require.NoError(t, h.layout.Restore(h.ctx))

	assert.True(t, h.layout.IsZenModeActive())
	assert.False(t, h.visible(entity.PartSideBar))
	assert.False(t, h.visible(entity.PartActivityBar))
	assert.True(t, h.host.IsFullScreen(entity.MainWindowID))
}

func TestRestore_ZenModeRestoreDisabled(t *testing.T) {
	store := memory.NewStateStore()
	require.NoError(t, store.Store(t.Context(), "workbench.zenMode.active", "true", entity.ScopeWorkspace, entity.TargetMachine))

	h := newHarness(t, withStore(store), withSettings(map[string]any{entity.SettingZenModeRestore: false}))

	require.NoError(t, h.layout.Restore(h.ctx))

	assert.False(t, h.layout.IsZenModeActive())
	assert.True(t, h.visible(entity.PartSideBar))
	assert.False(t, h.host.IsFullScreen(entity.MainWindowID))
}

func TestRestore_CentersEditor(t *testing.T) {
	store := memory.NewStateStore()
	require.NoError(t, store.Store(t.Context(), "workbench.editor.centered", "true", entity.ScopeWorkspace, entity.TargetMachine))

	h := newHarness(t, withStore(store))
	require.False(t, h.groups.IsLayoutCentered())

	require.NoError(t, h.layout.Restore(h.ctx))

	assert.True(t, h.groups.IsLayoutCentered())
}
