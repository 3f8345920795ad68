package workbench

import (
	"context"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

func (l *Layout) nativeTitleBar() bool {
	style := port.ConfigString(l.deps.Config, entity.SettingTitleBarStyle, string(entity.TitleBarStyleCustom))
	return entity.TitleBarStyle(style) == entity.TitleBarStyleNative
}

func (l *Layout) menuBarVisibility() entity.MenuBarVisibility {
	v := port.ConfigString(l.deps.Config, entity.SettingMenuBarVisibility, string(entity.MenuBarClassic))
	return entity.MenuBarVisibility(v)
}

func (l *Layout) isFullscreen(window entity.WindowID) bool {
	if window == entity.MainWindowID {
		return l.runtime.mainWindowFullscreen
	}
	return l.deps.Host.IsFullScreen(window)
}

// titleBarHasContent reports whether anything besides the menu lives in
// the custom title bar.
func (l *Layout) titleBarHasContent() bool {
	cfg := l.deps.Config
	if port.ConfigBool(cfg, entity.SettingCommandCenter, true) {
		return true
	}
	switch entity.ActivityBarLocation(port.ConfigString(cfg, entity.SettingActivityBarLocation, string(entity.ActivityBarLocationDefault))) {
	case entity.ActivityBarLocationTop, entity.ActivityBarLocationBottom:
		return true
	}
	actions := entity.EditorActionsLocation(port.ConfigString(cfg, entity.SettingEditorActionsLocation, string(entity.EditorActionsDefault)))
	tabs := entity.EditorTabsMode(port.ConfigString(cfg, entity.SettingEditorShowTabs, string(entity.EditorTabsMultiple)))
	if actions == entity.EditorActionsTitleBar || (actions == entity.EditorActionsDefault && tabs == entity.EditorTabsNone) {
		return true
	}
	return port.ConfigBool(cfg, entity.SettingLayoutControlEnabled, true)
}

// shouldShowCustomTitleBar is the title bar policy for a window.
func (l *Layout) shouldShowCustomTitleBar(window entity.WindowID) bool {
	cfg := l.deps.Config

	if l.IsZenModeActive() && port.ConfigBool(cfg, entity.SettingZenModeFullScreen, true) {
		return false
	}

	fullscreen := l.isFullscreen(window)
	native := l.nativeTitleBar()

	if !l.opts.IsWeb {
		visibility := entity.CustomTitleBarVisibility(port.ConfigString(cfg, entity.SettingCustomTitleBarVisibility, string(entity.CustomTitleBarAuto)))
		if (visibility == entity.CustomTitleBarNever && native) || (visibility == entity.CustomTitleBarWindowed && fullscreen) {
			return false
		}
	}

	if l.titleBarHasContent() {
		return true
	}
	if native {
		return false
	}

	switch {
	case l.opts.IsNative && l.opts.IsMacintosh:
		return !fullscreen
	case l.opts.IsNative && !fullscreen:
		return true
	case l.opts.WindowControlsOverlay && !fullscreen:
		return true
	}

	menu := l.menuBarVisibility()
	if window != entity.MainWindowID {
		menu = entity.MenuBarHidden
	}
	switch menu {
	case entity.MenuBarClassic:
		return !fullscreen || l.runtime.menuBarToggled
	case entity.MenuBarCompact, entity.MenuBarHidden:
		return false
	case entity.MenuBarToggle:
		return l.runtime.menuBarToggled
	case entity.MenuBarVisible:
		return true
	default:
		return !l.opts.IsWeb && (!fullscreen || l.runtime.menuBarToggled)
	}
}

// updateCustomTitleBarVisibility applies the title bar policy to the
// main window's grid and reports whether it changed.
func (l *Layout) updateCustomTitleBarVisibility() bool {
	if l.grid == nil {
		return false
	}
	show := l.shouldShowCustomTitleBar(entity.MainWindowID)
	if l.grid.IsViewVisible(entity.PartTitleBar) == show {
		return false
	}
	l.setGridViewVisible(entity.PartTitleBar, show)
	return true
}

// ToggleMenuBar cycles window.menuBarVisibility between the visible
// styles and their hidden counterpart.
func (l *Layout) ToggleMenuBar(ctx context.Context) error {
	next := entity.MenuBarClassic
	switch l.menuBarVisibility() {
	case entity.MenuBarVisible, entity.MenuBarClassic:
		if l.opts.IsNative {
			next = entity.MenuBarToggle
		} else {
			next = entity.MenuBarCompact
		}
	}
	logging.FromContext(ctx).Debug().Str("visibility", string(next)).Msg("toggling menu bar")
	return l.deps.Config.UpdateValue(ctx, entity.SettingMenuBarVisibility, string(next))
}

// OnMenubarToggled records a transient menu bar reveal, e.g. by Alt.
func (l *Layout) OnMenubarToggled(ctx context.Context, visible bool) {
	if l.runtime.menuBarToggled == visible {
		return
	}
	l.runtime.menuBarToggled = visible

	fullscreenClassic := l.runtime.mainWindowFullscreen && l.menuBarVisibility() == entity.MenuBarClassic
	if l.menuBarVisibility() == entity.MenuBarToggle || fullscreenClassic {
		if l.updateCustomTitleBarVisibility() {
			l.Layout(ctx)
		}
	}
}
