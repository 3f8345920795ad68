package workbench

import (
	"context"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// zenState holds what must be undone when zen mode ends.
type zenState struct {
	transitionDisposers []func()
	restoreTabs         func()

	// focused is the region that had focus when zen mode began.
	focused    entity.Part
	hadFocused bool
}

// zenFocusParts are the regions zen mode hides that can hold focus.
var zenFocusParts = []entity.Part{entity.PartSideBar, entity.PartPanel, entity.PartAuxiliaryBar}

// rememberFocus records which hidden-by-zen region has focus, if any.
func (l *Layout) rememberFocus() {
	l.zen.hadFocused = false
	for _, p := range zenFocusParts {
		if l.HasFocus(p) {
			l.zen.focused, l.zen.hadFocused = p, true
			return
		}
	}
}

// restoreFocus returns focus to the remembered region when it is visible
// again, otherwise to the editor.
func (l *Layout) restoreFocus(ctx context.Context) {
	p, ok := l.zen.focused, l.zen.hadFocused
	l.zen.hadFocused = false
	if ok && l.IsVisible(p, entity.MainWindowID) {
		l.FocusPart(ctx, p)
		return
	}
	l.Focus(ctx)
}

func (z *zenState) clear() {
	for _, d := range z.transitionDisposers {
		d()
	}
	z.transitionDisposers = nil
	z.clearTabs()
}

func (z *zenState) clearTabs() {
	if z.restoreTabs != nil {
		z.restoreTabs()
		z.restoreTabs = nil
	}
}

// zenConfig is a snapshot of the zenMode.* settings.
type zenConfig struct {
	fullScreen          bool
	centerLayout        bool
	hideActivityBar     bool
	hideStatusBar       bool
	hideLineNumbers     bool
	showTabs            entity.EditorTabsMode
	silentNotifications bool
	restore             bool
}

func readZenConfig(cfg port.Configuration) zenConfig {
	return zenConfig{
		fullScreen:          port.ConfigBool(cfg, entity.SettingZenModeFullScreen, true),
		centerLayout:        port.ConfigBool(cfg, entity.SettingZenModeCenterLayout, true),
		hideActivityBar:     port.ConfigBool(cfg, entity.SettingZenModeHideActivityBar, true),
		hideStatusBar:       port.ConfigBool(cfg, entity.SettingZenModeHideStatusBar, true),
		hideLineNumbers:     port.ConfigBool(cfg, entity.SettingZenModeHideLineNumbers, true),
		showTabs:            entity.EditorTabsMode(port.ConfigString(cfg, entity.SettingZenModeShowTabs, string(entity.EditorTabsMultiple))),
		silentNotifications: port.ConfigBool(cfg, entity.SettingZenModeSilentNotifications, true),
		restore:             port.ConfigBool(cfg, entity.SettingZenModeRestore, true),
	}
}

// IsZenModeActive reports whether zen mode is on.
func (l *Layout) IsZenModeActive() bool {
	return l.model.IsZenModeActive()
}

// ToggleZenMode enters or leaves zen mode. When restoring, the stored exit
// info is kept instead of being re-captured.
func (l *Layout) ToggleZenMode(ctx context.Context, skipLayout, restoring bool) {
	if !l.gridReady(ctx, "toggle zen mode") {
		return
	}
	log := logging.FromContext(ctx)

	if !l.IsZenModeActive() {
		l.rememberFocus()
	}
	l.model.SetRuntimeValue(ctx, layoutstate.ZenModeActive, !l.IsZenModeActive())
	l.zen.clear()

	cfg := readZenConfig(l.deps.Config)
	exitInfo := l.model.ZenExitInfo()
	active := l.IsZenModeActive()
	toggleFullScreen := false

	if active {
		toggleFullScreen = !l.runtime.mainWindowFullscreen && cfg.fullScreen
		if !restoring {
			exitInfo = entity.ZenModeExitInfo{
				TransitionedToFullScreen:            toggleFullScreen,
				TransitionedToCenteredEditorLayout:  !l.IsMainEditorLayoutCentered() && cfg.centerLayout,
				HandleNotificationsDoNotDisturbMode: l.deps.Notifications.Filter() == entity.NotificationsFilterOff,
				WasVisible: entity.ZenModeVisibility{
					SideBar:      l.IsVisible(entity.PartSideBar, entity.MainWindowID),
					Panel:        l.IsVisible(entity.PartPanel, entity.MainWindowID),
					AuxiliaryBar: l.IsVisible(entity.PartAuxiliaryBar, entity.MainWindowID),
				},
			}
			l.model.SetRuntimeValue(ctx, layoutstate.ZenModeExitInfo, exitInfo)
		}

		l.setPanelHidden(ctx, true, true)
		l.setAuxiliaryBarHidden(ctx, true, true)
		l.setSideBarHidden(ctx, true)
		if cfg.hideActivityBar {
			l.setActivityBarHidden(ctx, true)
		}
		if cfg.hideStatusBar {
			l.setStatusBarHidden(ctx, true)
		}
		if cfg.hideLineNumbers {
			l.deps.Editors.SetLineNumbers(entity.LineNumbersOff)
		}
		l.zen.restoreTabs = l.deps.EditorGroups.EnforceTabsMode(cfg.showTabs)
		if cfg.silentNotifications && exitInfo.HandleNotificationsDoNotDisturbMode {
			l.deps.Notifications.SetFilter(entity.NotificationsFilterError)
		}
		if cfg.centerLayout {
			l.CenterMainEditorLayout(ctx, true, true)
		}

		l.zen.transitionDisposers = append(l.zen.transitionDisposers,
			l.deps.Config.OnDidChangeConfiguration(func(e port.ConfigurationChangeEvent) {
				l.onZenConfigurationChanged(ctx, e, exitInfo)
			}))
	} else {
		if exitInfo.WasVisible.Panel {
			l.setPanelHidden(ctx, false, true)
		}
		if exitInfo.WasVisible.AuxiliaryBar {
			l.setAuxiliaryBarHidden(ctx, false, true)
		}
		if exitInfo.WasVisible.SideBar {
			l.setSideBarHidden(ctx, false)
		}
		if hidden, _ := l.model.RuntimeValueWithLegacyFallback(layoutstate.ActivityBarHidden).(bool); !hidden {
			l.setActivityBarHidden(ctx, false)
		}
		if hidden, _ := l.model.RuntimeValueWithLegacyFallback(layoutstate.StatusBarHidden).(bool); !hidden {
			l.setStatusBarHidden(ctx, false)
		}
		if exitInfo.TransitionedToCenteredEditorLayout {
			l.CenterMainEditorLayout(ctx, false, true)
		}
		if exitInfo.HandleNotificationsDoNotDisturbMode {
			l.deps.Notifications.SetFilter(entity.NotificationsFilterOff)
		}
		l.deps.Editors.ResetLineNumbers()
		l.restoreFocus(ctx)

		toggleFullScreen = exitInfo.TransitionedToFullScreen && l.runtime.mainWindowFullscreen
	}

	if !skipLayout {
		l.Layout(ctx)
	}

	if toggleFullScreen {
		if err := l.deps.Host.ToggleFullScreen(ctx, entity.MainWindowID); err != nil {
			log.Warn().Err(err).Msg("failed to toggle full screen for zen mode")
		}
	}

	log.Info().Bool("active", active).Bool("restoring", restoring).Msg("zen mode toggled")
	l.events.didChangeZenMode.Fire(active)
}

// onZenConfigurationChanged re-applies zenMode.* settings edited while
// zen mode is on.
func (l *Layout) onZenConfigurationChanged(ctx context.Context, e port.ConfigurationChangeEvent, exitInfo entity.ZenModeExitInfo) {
	cfg := readZenConfig(l.deps.Config)

	if e.AffectsConfiguration(entity.SettingZenModeHideActivityBar) {
		l.setActivityBarHidden(ctx, cfg.hideActivityBar)
	}
	if e.AffectsConfiguration(entity.SettingZenModeHideStatusBar) {
		l.setStatusBarHidden(ctx, cfg.hideStatusBar)
	}
	if e.AffectsConfiguration(entity.SettingZenModeCenterLayout) {
		l.CenterMainEditorLayout(ctx, cfg.centerLayout, true)
	}
	if e.AffectsConfiguration(entity.SettingZenModeShowTabs) {
		l.zen.clearTabs()
		l.zen.restoreTabs = l.deps.EditorGroups.EnforceTabsMode(cfg.showTabs)
	}
	if e.AffectsConfiguration(entity.SettingZenModeSilentNotifications) && exitInfo.HandleNotificationsDoNotDisturbMode {
		filter := entity.NotificationsFilterOff
		if cfg.silentNotifications {
			filter = entity.NotificationsFilterError
		}
		l.deps.Notifications.SetFilter(filter)
	}
	if e.AffectsConfiguration(entity.SettingZenModeHideLineNumbers) {
		if cfg.hideLineNumbers {
			l.deps.Editors.SetLineNumbers(entity.LineNumbersOff)
		} else {
			l.deps.Editors.ResetLineNumbers()
		}
	}
	l.Layout(ctx)
}

// restoreZenMode re-applies zen mode found active in the stored state,
// or leaves it cleanly when zenMode.restore is off.
func (l *Layout) restoreZenMode(ctx context.Context) {
	if !l.IsZenModeActive() {
		return
	}
	restore := readZenConfig(l.deps.Config).restore
	l.model.SetRuntimeValue(ctx, layoutstate.ZenModeActive, !restore)
	l.ToggleZenMode(ctx, false, true)
}
