package config

import (
	"fmt"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionWorkbench  = "Workbench"
	SectionWindow     = "Window"
	SectionZenMode    = "Zen Mode"
	SectionAppearance = "Appearance"
	SectionLogging    = "Logging"
	SectionDatabase   = "Database"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 32)
	keys = append(keys, p.getWorkbenchKeys(defaults)...)
	keys = append(keys, p.getWindowKeys(defaults)...)
	keys = append(keys, p.getZenModeKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	return keys
}

func boolString(b bool) string {
	return fmt.Sprintf("%t", b)
}

func (*SchemaProvider) getWorkbenchKeys(defaults *Config) []entity.ConfigKeyInfo {
	wb := defaults.Workbench
	return []entity.ConfigKeyInfo{
		{
			Key:         entity.SettingActivityBarLocation,
			Type:        "string",
			Default:     wb.ActivityBar.Location,
			Description: "Where the activity bar is shown; hidden removes it from the layout",
			Values:      []string{"default", "top", "bottom", "hidden"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingActivityBarVisible,
			Type:        "bool",
			Default:     "",
			Description: "Deprecated: use workbench.activityBar.location",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingSideBarLocation,
			Type:        "string",
			Default:     wb.SideBar.Location,
			Description: "Side of the window the primary side bar is docked to",
			Values:      []string{"left", "right"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingStatusBarVisible,
			Type:        "bool",
			Default:     boolString(wb.StatusBar.Visible),
			Description: "Show the status bar",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingPanelDefaultLocation,
			Type:        "string",
			Default:     wb.Panel.DefaultLocation,
			Description: "Panel position used until the user moves it",
			Values:      []string{"left", "bottom", "top", "right"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingPanelOpensMaximized,
			Type:        "string",
			Default:     wb.Panel.OpensMaximized,
			Description: "Whether the panel opens maximized; preserve remembers the last state",
			Values:      []string{"always", "never", "preserve"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingEditorActionsLocation,
			Type:        "string",
			Default:     wb.Editor.EditorActionsLocation,
			Description: "Where editor actions are shown",
			Values:      []string{"default", "titleBar", "hidden"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingEditorShowTabs,
			Type:        "string",
			Default:     wb.Editor.ShowTabs,
			Description: "Editor tab strip mode",
			Values:      []string{"multiple", "single", "none"},
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingCenteredLayoutAutoResize,
			Type:        "bool",
			Default:     boolString(wb.Editor.CenteredLayoutAutoResize),
			Description: "Leave centered layout while several editor groups are open",
			Section:     SectionWorkbench,
		},
		{
			Key:         entity.SettingLayoutControlEnabled,
			Type:        "bool",
			Default:     boolString(wb.LayoutControl.Enabled),
			Description: "Show layout controls in the title bar",
			Section:     SectionWorkbench,
		},
	}
}

func (*SchemaProvider) getWindowKeys(defaults *Config) []entity.ConfigKeyInfo {
	w := defaults.Window
	return []entity.ConfigKeyInfo{
		{
			Key:         entity.SettingCommandCenter,
			Type:        "bool",
			Default:     boolString(w.CommandCenter),
			Description: "Show the command center in the title bar",
			Section:     SectionWindow,
		},
		{
			Key:         entity.SettingMenuBarVisibility,
			Type:        "string",
			Default:     w.MenuBarVisibility,
			Description: "Menu bar visibility",
			Values:      []string{"classic", "visible", "toggle", "hidden", "compact"},
			Section:     SectionWindow,
		},
		{
			Key:         entity.SettingTitleBarStyle,
			Type:        "string",
			Default:     w.TitleBarStyle,
			Description: "Native or custom drawn title bar",
			Values:      []string{"native", "custom"},
			Section:     SectionWindow,
		},
		{
			Key:         entity.SettingCustomTitleBarVisibility,
			Type:        "string",
			Default:     w.CustomTitleBarVisibility,
			Description: "When the custom title bar is shown",
			Values:      []string{"auto", "windowed", "never"},
			Section:     SectionWindow,
		},
	}
}

func (*SchemaProvider) getZenModeKeys(defaults *Config) []entity.ConfigKeyInfo {
	z := defaults.ZenMode
	return []entity.ConfigKeyInfo{
		{Key: entity.SettingZenModeFullScreen, Type: "bool", Default: boolString(z.FullScreen),
			Description: "Enter full screen with zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeCenterLayout, Type: "bool", Default: boolString(z.CenterLayout),
			Description: "Center the editor layout in zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeHideActivityBar, Type: "bool", Default: boolString(z.HideActivityBar),
			Description: "Hide the activity bar in zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeHideStatusBar, Type: "bool", Default: boolString(z.HideStatusBar),
			Description: "Hide the status bar in zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeHideLineNumbers, Type: "bool", Default: boolString(z.HideLineNumbers),
			Description: "Hide editor line numbers in zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeShowTabs, Type: "string", Default: z.ShowTabs,
			Description: "Editor tab mode while in zen mode", Values: []string{"multiple", "single", "none"},
			Section: SectionZenMode},
		{Key: entity.SettingZenModeSilentNotifications, Type: "bool", Default: boolString(z.SilentNotifications),
			Description: "Only show error notifications in zen mode", Section: SectionZenMode},
		{Key: entity.SettingZenModeRestore, Type: "bool", Default: boolString(z.Restore),
			Description: "Re-enter zen mode on startup if it was active", Section: SectionZenMode},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.colorScheme",
			Type:        "string",
			Default:     defaults.Appearance.ColorScheme,
			Description: "Palette used for window borders and the preview",
			Values:      []string{"system", "dark", "light"},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.windowBorder",
			Type:        "bool",
			Default:     boolString(defaults.Appearance.WindowBorder),
			Description: "Draw an accent border around windows that are neither maximized nor full screen",
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "",
			Description: "Layout state database file (empty uses the XDG data directory)",
			Section:     SectionDatabase,
		},
	}
}
