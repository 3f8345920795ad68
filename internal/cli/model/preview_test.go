package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

func newPreview(t *testing.T) (PreviewModel, *cli.Session) {
	t.Helper()
	t.Setenv("SHELLGRID_THEME", "dark")

	app, err := cli.NewApp(cli.Options{Ephemeral: true, Workspace: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx := context.Background()
	session, err := app.OpenWorkbench(ctx, cli.SessionOptions{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close(ctx) })

	return NewPreviewModel(ctx, app.Theme, session), session
}

func press(t *testing.T, m PreviewModel, keys string) PreviewModel {
	t.Helper()
	for _, r := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(PreviewModel)
	}
	return m
}

func visibleParts(m PreviewModel) []string {
	return m.Snapshot().VisibleParts()
}

func TestPreview_TogglesParts(t *testing.T) {
	m, session := newPreview(t)
	require.Contains(t, visibleParts(m), "sidebar")

	m = press(t, m, "s")
	assert.NotContains(t, visibleParts(m), "sidebar")
	assert.False(t, session.Layout.IsVisible(entity.PartSideBar, entity.MainWindowID))

	m = press(t, m, "p")
	assert.Contains(t, visibleParts(m), "panel")
	assert.NoError(t, m.Err())
}

func TestPreview_ZenMode(t *testing.T) {
	m, _ := newPreview(t)

	m = press(t, m, "z")
	assert.True(t, m.Snapshot().ZenMode)
	assert.NotContains(t, visibleParts(m), "statusbar")

	m = press(t, m, "z")
	assert.False(t, m.Snapshot().ZenMode)
	assert.Contains(t, visibleParts(m), "statusbar")
}

func TestPreview_MovesSideBarAndPanel(t *testing.T) {
	m, _ := newPreview(t)

	m = press(t, m, "r")
	assert.Equal(t, entity.PositionRight, m.Snapshot().SideBarPosition)

	m = press(t, m, "o")
	assert.Equal(t, entity.PositionRight, m.Snapshot().PanelPosition)

	m = press(t, m, "l")
	assert.Equal(t, entity.AlignmentJustify, m.Snapshot().PanelAlignment)
	// Aligning moves a vertical panel back to the bottom.
	assert.Equal(t, entity.PositionBottom, m.Snapshot().PanelPosition)
}

func TestPreview_WidensSideBar(t *testing.T) {
	m, _ := newPreview(t)

	before := m.Snapshot()
	m = press(t, m, "+")
	require.NoError(t, m.Err())
	assert.Greater(t, sideBarWidth(m.Snapshot()), sideBarWidth(before))
}

func sideBarWidth(snap cli.Snapshot) float64 {
	for _, p := range snap.Parts {
		if p.Part == entity.PartSideBar.ShortName() {
			return p.Width
		}
	}
	return 0
}

func TestPreview_ViewAndQuit(t *testing.T) {
	m, _ := newPreview(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(PreviewModel)
	view := m.View()
	assert.Contains(t, view, "editor")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(PreviewModel)
	assert.Contains(t, m.View(), "Visible")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNextPanelPosition(t *testing.T) {
	p := entity.PositionBottom
	var seen []entity.Position
	for range 4 {
		p = NextPanelPosition(p)
		seen = append(seen, p)
	}
	assert.Equal(t, []entity.Position{entity.PositionRight, entity.PositionLeft, entity.PositionTop, entity.PositionBottom}, seen)
}

func TestNextPanelAlignment(t *testing.T) {
	a := entity.AlignmentCenter
	var seen []entity.PanelAlignment
	for range 4 {
		a = NextPanelAlignment(a)
		seen = append(seen, a)
	}
	assert.Equal(t, []entity.PanelAlignment{entity.AlignmentJustify, entity.AlignmentLeft, entity.AlignmentRight, entity.AlignmentCenter}, seen)
}
