package entity

// Configuration keys observed by the layout engine. The spellings are the
// wire contract with the configuration service.
const (
	SettingActivityBarLocation      = "workbench.activityBar.location"
	SettingActivityBarVisible       = "workbench.activityBar.visible"
	SettingCommandCenter            = "window.commandCenter"
	SettingEditorActionsLocation    = "workbench.editor.editorActionsLocation"
	SettingLayoutControlEnabled     = "workbench.layoutControl.enabled"
	SettingMenuBarVisibility        = "window.menuBarVisibility"
	SettingTitleBarStyle            = "window.titleBarStyle"
	SettingCustomTitleBarVisibility = "window.customTitleBarVisibility"
	SettingSideBarLocation          = "workbench.sideBar.location"
	SettingStatusBarVisible         = "workbench.statusBar.visible"
	SettingPanelDefaultLocation     = "workbench.panel.defaultLocation"
	SettingPanelOpensMaximized      = "workbench.panel.opensMaximized"
	SettingEditorShowTabs           = "workbench.editor.showTabs"
	SettingCenteredLayoutAutoResize = "workbench.editor.centeredLayoutAutoResize"

	SettingZenModeFullScreen          = "zenMode.fullScreen"
	SettingZenModeCenterLayout        = "zenMode.centerLayout"
	SettingZenModeHideActivityBar     = "zenMode.hideActivityBar"
	SettingZenModeHideStatusBar       = "zenMode.hideStatusBar"
	SettingZenModeHideLineNumbers     = "zenMode.hideLineNumbers"
	SettingZenModeShowTabs            = "zenMode.showTabs"
	SettingZenModeSilentNotifications = "zenMode.silentNotifications"
	SettingZenModeRestore             = "zenMode.restore"
)

// ActivityBarLocation is the value of workbench.activityBar.location.
type ActivityBarLocation string

const (
	ActivityBarLocationDefault ActivityBarLocation = "default"
	ActivityBarLocationTop     ActivityBarLocation = "top"
	ActivityBarLocationBottom  ActivityBarLocation = "bottom"
	ActivityBarLocationHidden  ActivityBarLocation = "hidden"
)

// PanelOpensMaximized is the value of workbench.panel.opensMaximized.
type PanelOpensMaximized string

const (
	PanelOpensMaximizedAlways       PanelOpensMaximized = "always"
	PanelOpensMaximizedNever        PanelOpensMaximized = "never"
	PanelOpensMaximizedRememberLast PanelOpensMaximized = "preserve"
)

// MenuBarVisibility is the value of window.menuBarVisibility.
type MenuBarVisibility string

const (
	MenuBarClassic MenuBarVisibility = "classic"
	MenuBarVisible MenuBarVisibility = "visible"
	MenuBarToggle  MenuBarVisibility = "toggle"
	MenuBarHidden  MenuBarVisibility = "hidden"
	MenuBarCompact MenuBarVisibility = "compact"
)

// TitleBarStyle is the value of window.titleBarStyle.
type TitleBarStyle string

const (
	TitleBarStyleNative TitleBarStyle = "native"
	TitleBarStyleCustom TitleBarStyle = "custom"
)

// CustomTitleBarVisibility is the value of window.customTitleBarVisibility.
type CustomTitleBarVisibility string

const (
	CustomTitleBarAuto     CustomTitleBarVisibility = "auto"
	CustomTitleBarWindowed CustomTitleBarVisibility = "windowed"
	CustomTitleBarNever    CustomTitleBarVisibility = "never"
)

// EditorActionsLocation is the value of workbench.editor.editorActionsLocation.
type EditorActionsLocation string

const (
	EditorActionsDefault  EditorActionsLocation = "default"
	EditorActionsTitleBar EditorActionsLocation = "titleBar"
	EditorActionsHidden   EditorActionsLocation = "hidden"
)

// EditorTabsMode is the value of workbench.editor.showTabs and zenMode.showTabs.
type EditorTabsMode string

const (
	EditorTabsMultiple EditorTabsMode = "multiple"
	EditorTabsSingle   EditorTabsMode = "single"
	EditorTabsNone     EditorTabsMode = "none"
)

// NotificationsFilter controls which notifications are shown.
type NotificationsFilter string

const (
	NotificationsFilterOff   NotificationsFilter = "off"
	NotificationsFilterError NotificationsFilter = "error"
)

// LineNumbersMode is the editor line numbers setting.
type LineNumbersMode string

const (
	LineNumbersOn  LineNumbersMode = "on"
	LineNumbersOff LineNumbersMode = "off"
)
