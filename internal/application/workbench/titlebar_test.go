package workbench

import (
	"context"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/infrastructure/config"
	"github.com/bnema/shellgrid/internal/infrastructure/headless"
	"github.com/bnema/shellgrid/internal/infrastructure/persistence/memory"
)

func newPolicyLayout(opts Options, settings map[string]any) (*Layout, *config.MemoryConfiguration) {
	cfg := config.NewMemoryConfiguration(settings)
	return New(Deps{
		Store:  memory.NewStateStore(),
		Config: cfg,
		Host:   headless.NewHost(),
	}, opts), cfg
}

func TestShouldShowCustomTitleBar(t *testing.T) {
	bare := map[string]any{
		entity.SettingCommandCenter:        false,
		entity.SettingLayoutControlEnabled: false,
	}
	with := func(extra map[string]any) map[string]any {
		m := maps.Clone(bare)
		maps.Copy(m, extra)
		return m
	}

	cases := []struct {
		name       string
		opts       Options
		settings   map[string]any
		zen        bool
		fullscreen bool
		toggled    bool
		window     entity.WindowID
		want       bool
	}{
		{name: "command center", settings: nil, want: true},
		{name: "command center in full screen", settings: nil, fullscreen: true, want: true},
		{name: "zen mode in full screen", settings: nil, zen: true, want: false},
		{name: "zen mode windowed", settings: map[string]any{entity.SettingZenModeFullScreen: false}, zen: true, want: true},
		{name: "never with native title bar", settings: map[string]any{
			entity.SettingTitleBarStyle:            "native",
			entity.SettingCustomTitleBarVisibility: "never",
		}, want: false},
		{name: "never is ignored on the web", opts: Options{IsWeb: true}, settings: map[string]any{
			entity.SettingTitleBarStyle:            "native",
			entity.SettingCustomTitleBarVisibility: "never",
		}, want: true},
		{name: "windowed in full screen", settings: map[string]any{entity.SettingCustomTitleBarVisibility: "windowed"}, fullscreen: true, want: false},
		{name: "activity bar on top", settings: with(map[string]any{entity.SettingActivityBarLocation: "top"}), want: true},
		{name: "editor actions without tabs", settings: with(map[string]any{entity.SettingEditorShowTabs: "none"}), want: true},
		{name: "editor actions in title bar", settings: with(map[string]any{entity.SettingEditorActionsLocation: "titleBar"}), want: true},
		{name: "empty with native title bar", settings: with(map[string]any{entity.SettingTitleBarStyle: "native"}), want: false},
		{name: "empty native mac", opts: Options{IsNative: true, IsMacintosh: true}, settings: bare, want: true},
		{name: "empty native mac full screen", opts: Options{IsNative: true, IsMacintosh: true}, settings: bare, fullscreen: true, want: false},
		{name: "empty native", opts: Options{IsNative: true}, settings: bare, want: true},
		{name: "empty window controls overlay", opts: Options{WindowControlsOverlay: true}, settings: bare, want: true},
		{name: "classic menu", settings: bare, want: true},
		{name: "classic menu in full screen", settings: bare, fullscreen: true, want: false},
		{name: "classic menu revealed in full screen", settings: bare, fullscreen: true, toggled: true, want: true},
		{name: "compact menu", settings: with(map[string]any{entity.SettingMenuBarVisibility: "compact"}), want: false},
		{name: "hidden menu", settings: with(map[string]any{entity.SettingMenuBarVisibility: "hidden"}), want: false},
		{name: "toggle menu", settings: with(map[string]any{entity.SettingMenuBarVisibility: "toggle"}), want: false},
		{name: "toggle menu revealed", settings: with(map[string]any{entity.SettingMenuBarVisibility: "toggle"}), toggled: true, want: true},
		{name: "visible menu in full screen", settings: with(map[string]any{entity.SettingMenuBarVisibility: "visible"}), fullscreen: true, want: true},
		{name: "auxiliary window has no menu", settings: bare, window: 2, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, _ := newPolicyLayout(tc.opts, tc.settings)
			if tc.zen {
				l.model.SetRuntimeValue(context.Background(), layoutstate.ZenModeActive, true)
			}
			l.runtime.mainWindowFullscreen = tc.fullscreen
			l.runtime.menuBarToggled = tc.toggled

			window := tc.window
			if window == 0 {
				window = entity.MainWindowID
			}
			assert.Equal(t, tc.want, l.shouldShowCustomTitleBar(window))
		})
	}
}

func TestToggleMenuBar(t *testing.T) {
	cases := []struct {
		name    string
		native  bool
		current entity.MenuBarVisibility
		want    entity.MenuBarVisibility
	}{
		{"classic on the web", false, entity.MenuBarClassic, entity.MenuBarCompact},
		{"visible on the web", false, entity.MenuBarVisible, entity.MenuBarCompact},
		{"classic on desktop", true, entity.MenuBarClassic, entity.MenuBarToggle},
		{"compact", false, entity.MenuBarCompact, entity.MenuBarClassic},
		{"toggle", true, entity.MenuBarToggle, entity.MenuBarClassic},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, cfg := newPolicyLayout(Options{IsNative: tc.native}, map[string]any{
				entity.SettingMenuBarVisibility: string(tc.current),
			})

			require.NoError(t, l.ToggleMenuBar(context.Background()))

			assert.Equal(t, string(tc.want), cfg.GetValue(entity.SettingMenuBarVisibility))
		})
	}
}

func TestMaximizeSupported(t *testing.T) {
	assert.True(t, maximizeSupported(entity.AlignmentCenter, entity.PositionBottom))
	assert.False(t, maximizeSupported(entity.AlignmentJustify, entity.PositionBottom))
	assert.False(t, maximizeSupported(entity.AlignmentLeft, entity.PositionTop))
	assert.True(t, maximizeSupported(entity.AlignmentJustify, entity.PositionRight))
}
