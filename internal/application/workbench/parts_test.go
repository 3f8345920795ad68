package workbench_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

func TestTogglePart_FiresVisibilityEvents(t *testing.T) {
	h := newHarness(t)
	var changes []workbench.PartVisibilityChange
	h.layout.OnDidChangePartVisibility(func(c workbench.PartVisibilityChange) { changes = append(changes, c) })

	require.NoError(t, h.layout.TogglePart(h.ctx, entity.PartSideBar))
	require.NoError(t, h.layout.TogglePart(h.ctx, entity.PartStatusBar))

	assert.False(t, h.visible(entity.PartSideBar))
	assert.False(t, h.visible(entity.PartStatusBar))
	assert.Equal(t, []workbench.PartVisibilityChange{
		{Part: entity.PartSideBar, Visible: false},
		{Part: entity.PartStatusBar, Visible: false},
	}, changes)
	assert.Equal(t, entity.Rect{X: 48, Y: 35, Width: 1152, Height: 765}, h.rect(t, entity.PartEditor))
}

func TestShowAuxiliaryBar_OpensDefaultContainer(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.layout.SetPartHidden(h.ctx, false, entity.PartAuxiliaryBar))

	id, ok := h.panes.ActivePaneCompositeID(port.LocationAuxiliaryBar)
	require.True(t, ok)
	assert.Equal(t, "workbench.panel.chat", id)
	aux := h.rect(t, entity.PartAuxiliaryBar)
	assert.Equal(t, 900.0, aux.X)
	assert.Equal(t, 300.0, aux.Width)
}

func TestShowSideBar_ReopensLastContainer(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.panes.OpenPaneComposite(h.ctx, "workbench.view.scm", port.LocationSidebar, false))

	require.NoError(t, h.layout.SetPartHidden(h.ctx, true, entity.PartSideBar))
	_, ok := h.panes.ActivePaneCompositeID(port.LocationSidebar)
	require.False(t, ok)

	require.NoError(t, h.layout.SetPartHidden(h.ctx, false, entity.PartSideBar))
	id, _ := h.panes.ActivePaneCompositeID(port.LocationSidebar)
	assert.Equal(t, "workbench.view.scm", id)
	assert.True(t, h.parts.Get(entity.PartSideBar).HasFocus())
}

func TestPartHidingItself_SyncsState(t *testing.T) {
	h := newHarness(t)

	h.parts.Get(entity.PartSideBar).SetVisible(false)

	assert.False(t, h.visible(entity.PartSideBar))
	assert.False(t, h.layout.Grid().IsViewVisible(entity.PartSideBar))
}

func TestTitleBarCannotBeToggled(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.layout.SetPartHidden(h.ctx, true, entity.PartTitleBar))

	assert.True(t, h.visible(entity.PartTitleBar))
}

func TestBannerVisibility(t *testing.T) {
	h := newHarness(t)
	require.False(t, h.visible(entity.PartBanner))

	require.NoError(t, h.layout.SetPartHidden(h.ctx, false, entity.PartBanner))

	assert.True(t, h.visible(entity.PartBanner))
	assert.Equal(t, entity.ContainerOffset{Top: 61, QuickPickTop: 6}, h.layout.MainContainerOffset())
}

func TestResizePart(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.layout.ResizePart(h.ctx, entity.PartSideBar, 50, 999))
	assert.Equal(t, entity.Dimension{Width: 350, Height: 743}, h.layout.Size(entity.PartSideBar))

	require.NoError(t, h.layout.ResizePart(h.ctx, entity.PartStatusBar, 0, 10))
	assert.Equal(t, 22.0, h.layout.Size(entity.PartStatusBar).Height)

	// Hidden parts are left alone.
	require.NoError(t, h.layout.ResizePart(h.ctx, entity.PartPanel, 0, 100))
	assert.False(t, h.visible(entity.PartPanel))
}

func TestSideBarRight_EdgePlacement(t *testing.T) {
	h := newHarness(t)
	h.showPanel(t)

	require.NoError(t, h.layout.SetSideBarPosition(h.ctx, entity.PositionRight))

	assert.Equal(t, entity.PositionRight, h.layout.SideBarPosition())
	assert.Equal(t, 1152.0, h.rect(t, entity.PartActivityBar).X)
	assert.Equal(t, entity.Rect{X: 852, Y: 35, Width: 300, Height: 743}, h.rect(t, entity.PartSideBar))
	assert.Equal(t, 0.0, h.rect(t, entity.PartEditor).X)
	assert.Equal(t, 852.0, h.rect(t, entity.PartPanel).Width)
	assert.Equal(t, 1, h.parts.Get(entity.PartSideBar).StyleUpdates())
	assert.True(t, h.parts.Get(entity.PartPanel).HasFocus(), "focus survives the move")

	// The legacy setting follows.
	assert.Equal(t, "right", h.cfg.GetValue(entity.SettingSideBarLocation))
}

func TestSideBarPosition_Invalid(t *testing.T) {
	h := newHarness(t)

	err := h.layout.SetSideBarPosition(h.ctx, entity.PositionBottom)
	assert.ErrorIs(t, err, entity.ErrInvalidPosition)
	assert.Equal(t, entity.PositionLeft, h.layout.SideBarPosition())
}

func TestPanelAlignment_EdgePlacement(t *testing.T) {
	cases := []struct {
		name      string
		sideBar   entity.Position
		alignment entity.PanelAlignment
		panelX    float64
		panelW    float64
	}{
		{"center left", entity.PositionLeft, entity.AlignmentCenter, 348, 852},
		{"left with side bar left", entity.PositionLeft, entity.AlignmentLeft, 48, 1152},
		{"right with side bar left", entity.PositionLeft, entity.AlignmentRight, 348, 852},
		{"justify with side bar left", entity.PositionLeft, entity.AlignmentJustify, 48, 1152},
		{"center right", entity.PositionRight, entity.AlignmentCenter, 0, 852},
		{"right with side bar right", entity.PositionRight, entity.AlignmentRight, 0, 1152},
		{"left with side bar right", entity.PositionRight, entity.AlignmentLeft, 0, 852},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.showPanel(t)
			require.NoError(t, h.layout.SetSideBarPosition(h.ctx, tc.sideBar))
			require.NoError(t, h.layout.SetPanelAlignment(h.ctx, tc.alignment))

			panel := h.rect(t, entity.PartPanel)
			assert.Equal(t, tc.panelX, panel.X)
			assert.Equal(t, tc.panelW, panel.Width)
			assert.Equal(t, 300.0, h.rect(t, entity.PartSideBar).Width)
			assert.Equal(t, 743.0, h.rect(t, entity.PartActivityBar).Height)
		})
	}
}

func TestVerticalPanel_EdgePlacement(t *testing.T) {
	h := newHarness(t)
	h.showPanel(t)
	require.NoError(t, h.layout.SetPanelPosition(h.ctx, entity.PositionRight))
	require.NoError(t, h.layout.SetPartHidden(h.ctx, false, entity.PartAuxiliaryBar))

	require.NoError(t, h.layout.SetSideBarPosition(h.ctx, entity.PositionRight))

	rects := h.parts.Rects()
	assert.Equal(t, 1152.0, rects[entity.PartActivityBar].X)
	assert.Equal(t, 852.0, rects[entity.PartSideBar].X)
	assert.Equal(t, 0.0, rects[entity.PartAuxiliaryBar].X)
	assert.Less(t, rects[entity.PartEditor].X, rects[entity.PartPanel].X)
	assert.Equal(t, 743.0, rects[entity.PartPanel].Height)
	assert.Equal(t, 300.0, rects[entity.PartPanel].Width)
}

// TestMutualExclusivity runs random operation sequences and checks that
// the editor and panel are never hidden together and that the grid
// agrees with the layout state.
func TestMutualExclusivity(t *testing.T) {
	positions := []entity.Position{entity.PositionBottom, entity.PositionTop, entity.PositionLeft, entity.PositionRight}
	alignments := []entity.PanelAlignment{entity.AlignmentLeft, entity.AlignmentCenter, entity.AlignmentRight, entity.AlignmentJustify}
	toggleable := []entity.Part{
		entity.PartActivityBar, entity.PartSideBar, entity.PartEditor,
		entity.PartPanel, entity.PartAuxiliaryBar, entity.PartStatusBar,
	}

	for seed := uint64(1); seed <= 8; seed++ {
		h := newHarness(t)
		rng := rand.New(rand.NewPCG(seed, seed*7919))

		for step := 0; step < 60; step++ {
			switch op := rng.IntN(7); op {
			case 0, 1:
				require.NoError(t, h.layout.TogglePart(h.ctx, toggleable[rng.IntN(len(toggleable))]))
			case 2:
				h.layout.ToggleMaximizedPanel(h.ctx)
			case 3:
				require.NoError(t, h.layout.SetPanelPosition(h.ctx, positions[rng.IntN(len(positions))]))
			case 4:
				require.NoError(t, h.layout.SetPanelAlignment(h.ctx, alignments[rng.IntN(len(alignments))]))
			case 5:
				side := entity.PositionLeft
				if rng.IntN(2) == 1 {
					side = entity.PositionRight
				}
				require.NoError(t, h.layout.SetSideBarPosition(h.ctx, side))
			case 6:
				h.layout.ToggleZenMode(h.ctx, false, false)
			}

			require.Truef(t, h.visible(entity.PartEditor) || h.visible(entity.PartPanel),
				"seed %d step %d: editor and panel both hidden", seed, step)
			if h.layout.IsPanelMaximized() {
				require.Falsef(t, h.visible(entity.PartEditor), "seed %d step %d: maximized panel beside editor", seed, step)
			}
			for _, p := range toggleable {
				require.Equalf(t, h.visible(p), h.layout.Grid().IsViewVisible(p),
					"seed %d step %d: %s grid and state disagree", seed, step, p.ShortName())
			}
		}
	}
}

func TestLegacySideBarLocation_MovesSideBar(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingSideBarLocation, "right"))

	assert.Equal(t, entity.PositionRight, h.layout.SideBarPosition())
	assert.Equal(t, 1152.0, h.rect(t, entity.PartActivityBar).X)
	assert.Equal(t, 852.0, h.rect(t, entity.PartSideBar).X)
}

func TestLegacyStatusBarVisible_HidesStatusBar(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingStatusBarVisible, false))

	assert.False(t, h.visible(entity.PartStatusBar))
	assert.Equal(t, 765.0, h.rect(t, entity.PartEditor).Height)
}
