package config

// Config represents the complete configuration for shellgrid. Section and
// key names follow the settings the layout engine observes, so
// [workbench.sideBar] location = "right" is workbench.sideBar.location.
type Config struct {
	Workbench  WorkbenchConfig  `mapstructure:"workbench" toml:"workbench" json:"workbench"`
	Window     WindowConfig     `mapstructure:"window" toml:"window" json:"window"`
	ZenMode    ZenModeConfig    `mapstructure:"zenmode" toml:"zenMode" json:"zenMode"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
}

// WorkbenchConfig groups the workbench.* settings.
type WorkbenchConfig struct {
	ActivityBar   ActivityBarConfig   `mapstructure:"activitybar" toml:"activityBar" json:"activityBar"`
	SideBar       SideBarConfig       `mapstructure:"sidebar" toml:"sideBar" json:"sideBar"`
	StatusBar     StatusBarConfig     `mapstructure:"statusbar" toml:"statusBar" json:"statusBar"`
	Panel         PanelConfig         `mapstructure:"panel" toml:"panel" json:"panel"`
	Editor        EditorConfig        `mapstructure:"editor" toml:"editor" json:"editor"`
	LayoutControl LayoutControlConfig `mapstructure:"layoutcontrol" toml:"layoutControl" json:"layoutControl"`
}

// ActivityBarConfig holds workbench.activityBar.*.
type ActivityBarConfig struct {
	// Location of the activity bar relative to the side bar.
	Location string `mapstructure:"location" toml:"location" json:"location" jsonschema:"enum=default,enum=top,enum=bottom,enum=hidden,default=default"`
	// Visible is the legacy visibility flag; unset unless the user wrote it.
	Visible *bool `mapstructure:"visible" toml:"visible,omitempty" json:"visible,omitempty"`
}

// SideBarConfig holds workbench.sideBar.*.
type SideBarConfig struct {
	Location string `mapstructure:"location" toml:"location" json:"location" jsonschema:"enum=left,enum=right,default=left"`
}

// StatusBarConfig holds workbench.statusBar.*.
type StatusBarConfig struct {
	Visible bool `mapstructure:"visible" toml:"visible" json:"visible" jsonschema:"default=true"`
}

// PanelConfig holds workbench.panel.*.
type PanelConfig struct {
	DefaultLocation string `mapstructure:"defaultlocation" toml:"defaultLocation" json:"defaultLocation" jsonschema:"enum=left,enum=bottom,enum=top,enum=right,default=bottom"`
	OpensMaximized  string `mapstructure:"opensmaximized" toml:"opensMaximized" json:"opensMaximized" jsonschema:"enum=always,enum=never,enum=preserve,default=preserve"`
}

// EditorConfig holds workbench.editor.*.
type EditorConfig struct {
	EditorActionsLocation    string `mapstructure:"editoractionslocation" toml:"editorActionsLocation" json:"editorActionsLocation" jsonschema:"enum=default,enum=titleBar,enum=hidden,default=default"`
	ShowTabs                 string `mapstructure:"showtabs" toml:"showTabs" json:"showTabs" jsonschema:"enum=multiple,enum=single,enum=none,default=multiple"`
	CenteredLayoutAutoResize bool   `mapstructure:"centeredlayoutautoresize" toml:"centeredLayoutAutoResize" json:"centeredLayoutAutoResize" jsonschema:"default=true"`
}

// LayoutControlConfig holds workbench.layoutControl.*.
type LayoutControlConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"default=true"`
}

// WindowConfig groups the window.* settings.
type WindowConfig struct {
	CommandCenter            bool   `mapstructure:"commandcenter" toml:"commandCenter" json:"commandCenter" jsonschema:"default=true"`
	MenuBarVisibility        string `mapstructure:"menubarvisibility" toml:"menuBarVisibility" json:"menuBarVisibility" jsonschema:"enum=classic,enum=visible,enum=toggle,enum=hidden,enum=compact,default=classic"`
	TitleBarStyle            string `mapstructure:"titlebarstyle" toml:"titleBarStyle" json:"titleBarStyle" jsonschema:"enum=native,enum=custom,default=custom"`
	CustomTitleBarVisibility string `mapstructure:"customtitlebarvisibility" toml:"customTitleBarVisibility" json:"customTitleBarVisibility" jsonschema:"enum=auto,enum=windowed,enum=never,default=auto"`
}

// ZenModeConfig groups the zenMode.* settings.
type ZenModeConfig struct {
	FullScreen          bool   `mapstructure:"fullscreen" toml:"fullScreen" json:"fullScreen" jsonschema:"default=true"`
	CenterLayout        bool   `mapstructure:"centerlayout" toml:"centerLayout" json:"centerLayout" jsonschema:"default=true"`
	HideActivityBar     bool   `mapstructure:"hideactivitybar" toml:"hideActivityBar" json:"hideActivityBar" jsonschema:"default=true"`
	HideStatusBar       bool   `mapstructure:"hidestatusbar" toml:"hideStatusBar" json:"hideStatusBar" jsonschema:"default=true"`
	HideLineNumbers     bool   `mapstructure:"hidelinenumbers" toml:"hideLineNumbers" json:"hideLineNumbers" jsonschema:"default=true"`
	ShowTabs            string `mapstructure:"showtabs" toml:"showTabs" json:"showTabs" jsonschema:"enum=multiple,enum=single,enum=none,default=multiple"`
	SilentNotifications bool   `mapstructure:"silentnotifications" toml:"silentNotifications" json:"silentNotifications" jsonschema:"default=true"`
	Restore             bool   `mapstructure:"restore" toml:"restore" json:"restore" jsonschema:"default=true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DatabaseConfig holds the layout state database location.
type DatabaseConfig struct {
	// Path overrides the default XDG data location when set.
	Path string `mapstructure:"path" toml:"path,omitempty" json:"path,omitempty"`
}

// AppearanceConfig holds the colors used for window borders and the
// terminal preview.
type AppearanceConfig struct {
	// ColorScheme picks the palette; system follows the terminal background.
	ColorScheme string `mapstructure:"colorscheme" toml:"colorScheme" json:"colorScheme" jsonschema:"enum=system,enum=dark,enum=light,default=system"`
	// WindowBorder draws the accent border around restored windows.
	WindowBorder bool         `mapstructure:"windowborder" toml:"windowBorder" json:"windowBorder" jsonschema:"default=true"`
	DarkPalette  ColorPalette `mapstructure:"darkpalette" toml:"darkPalette" json:"darkPalette"`
	LightPalette ColorPalette `mapstructure:"lightpalette" toml:"lightPalette" json:"lightPalette"`
}

// ColorPalette overrides palette colors; empty values keep the defaults.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background,omitempty" json:"background,omitempty"`
	Surface        string `mapstructure:"surface" toml:"surface,omitempty" json:"surface,omitempty"`
	SurfaceVariant string `mapstructure:"surfacevariant" toml:"surfaceVariant,omitempty" json:"surfaceVariant,omitempty"`
	Text           string `mapstructure:"text" toml:"text,omitempty" json:"text,omitempty"`
	Muted          string `mapstructure:"muted" toml:"muted,omitempty" json:"muted,omitempty"`
	Accent         string `mapstructure:"accent" toml:"accent,omitempty" json:"accent,omitempty"`
	Border         string `mapstructure:"border" toml:"border,omitempty" json:"border,omitempty"`
}
