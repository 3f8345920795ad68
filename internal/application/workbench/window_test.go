package workbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/port/mocks"
	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/ui/theme"
)

var (
	activeBorder   = theme.DefaultDarkPalette().Accent
	inactiveBorder = theme.DefaultDarkPalette().Border
)

type borderCall struct {
	visible bool
	color   string
}

func borderedTheme() harnessOption {
	return withTheme(theme.NewServiceFromPalette(theme.DefaultDarkPalette(), true))
}

func TestWindowBorder_MainWindow(t *testing.T) {
	h := newHarness(t, borderedTheme())

	visible, color := h.window.Border()
	assert.True(t, visible)
	assert.Equal(t, activeBorder, color)
	assert.True(t, h.layout.HasMainWindowBorder())
	assert.Equal(t, entity.Dimension{Width: 1198, Height: 798}, h.layout.MainContainerDimension())

	h.layout.OnWindowFocusChanged(h.ctx, false)
	_, color = h.window.Border()
	assert.Equal(t, inactiveBorder, color)
}

func TestWindowBorder_MaximizedWindowHasNone(t *testing.T) {
	h := newHarness(t, borderedTheme())
	var changes []workbench.WindowChange
	h.layout.OnDidChangeWindowMaximized(func(c workbench.WindowChange) { changes = append(changes, c) })

	h.layout.UpdateWindowMaximizedState(h.ctx, entity.MainWindowID, true)

	visible, _ := h.window.Border()
	assert.False(t, visible)
	assert.True(t, h.layout.IsWindowMaximized(entity.MainWindowID))
	assert.Equal(t, entity.Dimension{Width: 1200, Height: 800}, h.layout.MainContainerDimension())

	h.layout.UpdateWindowMaximizedState(h.ctx, entity.MainWindowID, true)
	h.layout.UpdateWindowMaximizedState(h.ctx, entity.MainWindowID, false)

	visible, _ = h.window.Border()
	assert.True(t, visible)
	assert.Equal(t, []workbench.WindowChange{
		{Window: entity.MainWindowID, Active: true},
		{Window: entity.MainWindowID, Active: false},
	}, changes)
}

func TestWindowBorder_FullScreenHasNone(t *testing.T) {
	h := newHarness(t, borderedTheme())

	require.NoError(t, h.host.ToggleFullScreen(h.ctx, entity.MainWindowID))

	visible, _ := h.window.Border()
	assert.False(t, visible)
	assert.Equal(t, entity.Dimension{Width: 1200, Height: 800}, h.layout.MainContainerDimension())
}

func TestWindowBorder_ThemeWithoutColors(t *testing.T) {
	th := mocks.NewMockThemeService(t)
	th.EXPECT().WindowBorderColors().Return("", "")

	h := newHarness(t, withTheme(th))

	visible, _ := h.window.Border()
	assert.False(t, visible)
	assert.Equal(t, entity.Dimension{Width: 1200, Height: 800}, h.layout.MainContainerDimension())
}

func TestWindowBorder_NativeTitleBarSkipsBorders(t *testing.T) {
	th := mocks.NewMockThemeService(t)
	h := newHarness(t, withTheme(th), withSettings(map[string]any{entity.SettingTitleBarStyle: "native"}))

	visible, _ := h.window.Border()
	assert.False(t, visible)
	th.AssertNotCalled(t, "WindowBorderColors")
}

func TestAuxiliaryWindows(t *testing.T) {
	h := newHarness(t, borderedTheme())
	h.layout.UpdateWindowMaximizedState(h.ctx, entity.MainWindowID, true)

	var calls []borderCall
	aux := mocks.NewMockWindow(t)
	aux.EXPECT().ID().Return(entity.WindowID(2)).Maybe()
	aux.EXPECT().Dimension().Return(entity.Dimension{Width: 640, Height: 480}).Maybe()
	aux.EXPECT().SetBorder(mock.Anything, mock.Anything).Run(func(visible bool, color string) {
		calls = append(calls, borderCall{visible, color})
	})

	var added, removed, activated []entity.WindowID
	h.layout.OnDidAddContainer(func(id entity.WindowID) { added = append(added, id) })
	h.layout.OnDidRemoveContainer(func(id entity.WindowID) { removed = append(removed, id) })
	h.layout.OnDidChangeActiveContainer(func(id entity.WindowID) { activated = append(activated, id) })

	require.NoError(t, h.layout.RegisterWindow(h.ctx, aux))
	assert.Equal(t, []entity.WindowID{entity.MainWindowID, 2}, h.layout.Windows())
	dim, ok := h.layout.ContainerDimension(2)
	require.True(t, ok)
	assert.Equal(t, entity.Dimension{Width: 640, Height: 480}, dim)

	h.layout.OnActiveWindowChanged(h.ctx, 2)
	assert.Equal(t, entity.WindowID(2), h.layout.ActiveContainerID())

	h.layout.OnWindowFocusChanged(h.ctx, false)

	assert.Equal(t, []borderCall{
		{true, inactiveBorder},
		{true, activeBorder},
		{true, inactiveBorder},
	}, calls)
	mainVisible, _ := h.window.Border()
	assert.False(t, mainVisible, "the main window is still maximized")

	h.layout.UnregisterWindow(h.ctx, 2)
	assert.Equal(t, entity.MainWindowID, h.layout.ActiveContainerID())
	assert.Equal(t, []entity.WindowID{entity.MainWindowID}, h.layout.Windows())

	assert.Equal(t, []entity.WindowID{2}, added)
	assert.Equal(t, []entity.WindowID{2}, removed)
	assert.Equal(t, []entity.WindowID{2, entity.MainWindowID}, activated)
}

func TestRegisterWindow_Invalid(t *testing.T) {
	h := newHarness(t)

	assert.ErrorIs(t, h.layout.RegisterWindow(h.ctx, nil), workbench.ErrInvalidWindow)
	assert.ErrorIs(t, h.layout.RegisterWindow(h.ctx, h.window), workbench.ErrInvalidWindow)
}

func TestAuxiliaryWindow_TitleBarPolicy(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{
		entity.SettingCommandCenter:        false,
		entity.SettingLayoutControlEnabled: false,
	}), withOptions(workbench.Options{}))

	// Menus live in the main window only.
	assert.True(t, h.layout.IsVisible(entity.PartTitleBar, entity.MainWindowID))
	assert.False(t, h.layout.IsVisible(entity.PartTitleBar, 2))
}
