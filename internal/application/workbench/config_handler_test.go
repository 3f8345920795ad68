package workbench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

func TestConfig_EditorActionsInTitleBarEnableCommandCenter(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{entity.SettingCommandCenter: false}))

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingEditorActionsLocation, "titleBar"))

	assert.Equal(t, true, h.cfg.GetValue(entity.SettingCommandCenter))
}

func TestConfig_LayoutControlEnablesCommandCenter(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{
		entity.SettingCommandCenter:        false,
		entity.SettingLayoutControlEnabled: false,
	}))

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingLayoutControlEnabled, true))

	assert.Equal(t, true, h.cfg.GetValue(entity.SettingCommandCenter))
}

func TestConfig_CommandCenterLeftAloneOtherwise(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{entity.SettingCommandCenter: false}))

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingEditorActionsLocation, "hidden"))

	assert.Equal(t, false, h.cfg.GetValue(entity.SettingCommandCenter))
}

func TestConfig_ActivityBarOnTopNeedsCustomTitleBar(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{entity.SettingCustomTitleBarVisibility: "never"}))

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingActivityBarLocation, "top"))

	assert.Equal(t, "auto", h.cfg.GetValue(entity.SettingCustomTitleBarVisibility))
	assert.False(t, h.visible(entity.PartActivityBar), "a top activity bar leaves the side column")
}

func TestConfig_TitleBarFollowsSettings(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{entity.SettingTitleBarStyle: "native"}))
	require.True(t, h.visible(entity.PartTitleBar))

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingCustomTitleBarVisibility, "never"))

	assert.False(t, h.visible(entity.PartTitleBar))
	assert.Equal(t, entity.Rect{X: 348, Y: 0, Width: 852, Height: 778}, h.rect(t, entity.PartEditor))
	assert.Equal(t, entity.ContainerOffset{}, h.layout.MainContainerOffset())

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingCustomTitleBarVisibility, "auto"))

	assert.True(t, h.visible(entity.PartTitleBar))
	assert.Equal(t, 35.0, h.rect(t, entity.PartEditor).Y)
}

func TestConfig_ContainerOffset(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, entity.ContainerOffset{Top: 35, QuickPickTop: 6}, h.layout.MainContainerOffset())

	require.NoError(t, h.cfg.UpdateValue(h.ctx, entity.SettingCommandCenter, false))

	assert.Equal(t, entity.ContainerOffset{Top: 35, QuickPickTop: 35}, h.layout.MainContainerOffset())
	assert.Equal(t, h.layout.MainContainerOffset(), h.layout.ActiveContainerOffset())
}

func TestCenteredLayout_AutoResize(t *testing.T) {
	h := newHarness(t)
	var centered []bool
	h.layout.OnDidChangeMainEditorCenteredLayout(func(c bool) { centered = append(centered, c) })

	h.groups.SetGroups(2, false)
	h.layout.CenterMainEditorLayout(h.ctx, true, false)

	assert.True(t, h.layout.IsMainEditorLayoutCentered())
	assert.False(t, h.groups.IsLayoutCentered(), "side by side groups are not centered")

	h.groups.SetGroups(2, true)
	h.layout.CenterMainEditorLayout(h.ctx, true, false)
	assert.True(t, h.groups.IsLayoutCentered())

	h.editors.SetActiveEditorComplex(true)
	h.layout.CenterMainEditorLayout(h.ctx, true, false)
	assert.False(t, h.groups.IsLayoutCentered(), "diff editors are not centered")

	assert.Equal(t, []bool{true, true, true}, centered)
}

func TestCenteredLayout_WithoutAutoResize(t *testing.T) {
	h := newHarness(t, withSettings(map[string]any{entity.SettingCenteredLayoutAutoResize: false}))
	h.groups.SetGroups(3, false)

	h.layout.CenterMainEditorLayout(h.ctx, true, false)

	assert.True(t, h.groups.IsLayoutCentered())
}
