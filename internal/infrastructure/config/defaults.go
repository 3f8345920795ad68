package config

import (
	"sort"
	"strings"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"

	defaultColorScheme = "system"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Workbench: WorkbenchConfig{
			ActivityBar: ActivityBarConfig{Location: string(entity.ActivityBarLocationDefault)},
			SideBar:     SideBarConfig{Location: string(entity.PositionLeft)},
			StatusBar:   StatusBarConfig{Visible: true},
			Panel: PanelConfig{
				DefaultLocation: string(entity.PositionBottom),
				OpensMaximized:  string(entity.PanelOpensMaximizedRememberLast),
			},
			Editor: EditorConfig{
				EditorActionsLocation:    string(entity.EditorActionsDefault),
				ShowTabs:                 string(entity.EditorTabsMultiple),
				CenteredLayoutAutoResize: true,
			},
			LayoutControl: LayoutControlConfig{Enabled: true},
		},
		Window: WindowConfig{
			CommandCenter:            true,
			MenuBarVisibility:        string(entity.MenuBarClassic),
			TitleBarStyle:            string(entity.TitleBarStyleCustom),
			CustomTitleBarVisibility: string(entity.CustomTitleBarAuto),
		},
		ZenMode: ZenModeConfig{
			FullScreen:          true,
			CenterLayout:        true,
			HideActivityBar:     true,
			HideStatusBar:       true,
			HideLineNumbers:     true,
			ShowTabs:            string(entity.EditorTabsMultiple),
			SilentNotifications: true,
			Restore:             true,
		},
		Appearance: AppearanceConfig{
			ColorScheme:  defaultColorScheme,
			WindowBorder: true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// DefaultSettings returns the defaults as dotted keys, the shape used by
// viper.SetDefault and the in-memory configuration.
func DefaultSettings() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		entity.SettingActivityBarLocation:      d.Workbench.ActivityBar.Location,
		entity.SettingSideBarLocation:          d.Workbench.SideBar.Location,
		entity.SettingStatusBarVisible:         d.Workbench.StatusBar.Visible,
		entity.SettingPanelDefaultLocation:     d.Workbench.Panel.DefaultLocation,
		entity.SettingPanelOpensMaximized:      d.Workbench.Panel.OpensMaximized,
		entity.SettingEditorActionsLocation:    d.Workbench.Editor.EditorActionsLocation,
		entity.SettingEditorShowTabs:           d.Workbench.Editor.ShowTabs,
		entity.SettingCenteredLayoutAutoResize: d.Workbench.Editor.CenteredLayoutAutoResize,
		entity.SettingLayoutControlEnabled:     d.Workbench.LayoutControl.Enabled,

		entity.SettingCommandCenter:            d.Window.CommandCenter,
		entity.SettingMenuBarVisibility:        d.Window.MenuBarVisibility,
		entity.SettingTitleBarStyle:            d.Window.TitleBarStyle,
		entity.SettingCustomTitleBarVisibility: d.Window.CustomTitleBarVisibility,

		entity.SettingZenModeFullScreen:          d.ZenMode.FullScreen,
		entity.SettingZenModeCenterLayout:        d.ZenMode.CenterLayout,
		entity.SettingZenModeHideActivityBar:     d.ZenMode.HideActivityBar,
		entity.SettingZenModeHideStatusBar:       d.ZenMode.HideStatusBar,
		entity.SettingZenModeHideLineNumbers:     d.ZenMode.HideLineNumbers,
		entity.SettingZenModeShowTabs:            d.ZenMode.ShowTabs,
		entity.SettingZenModeSilentNotifications: d.ZenMode.SilentNotifications,
		entity.SettingZenModeRestore:             d.ZenMode.Restore,

		"appearance.colorScheme":  d.Appearance.ColorScheme,
		"appearance.windowBorder": d.Appearance.WindowBorder,

		"logging.level":  d.Logging.Level,
		"logging.format": d.Logging.Format,
	}
}

// SettingKeys returns the dotted names of every known setting, sorted.
func SettingKeys() []string {
	defaults := DefaultSettings()
	keys := make([]string, 0, len(defaults)+1)
	for k := range defaults {
		keys = append(keys, k)
	}
	keys = append(keys, entity.SettingActivityBarVisible)
	sort.Slice(keys, func(i, j int) bool { return strings.ToLower(keys[i]) < strings.ToLower(keys[j]) })
	return keys
}
