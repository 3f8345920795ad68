package workbench

import (
	"context"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// layoutSettings are the settings whose change re-evaluates the layout.
var layoutSettings = []string{
	entity.SettingActivityBarLocation,
	entity.SettingCommandCenter,
	entity.SettingEditorActionsLocation,
	entity.SettingLayoutControlEnabled,
	entity.SettingMenuBarVisibility,
	entity.SettingTitleBarStyle,
	entity.SettingCustomTitleBarVisibility,
	entity.SettingEditorShowTabs,
	entity.SettingCenteredLayoutAutoResize,
}

// onConfigurationUpdated corrects setting combinations the title bar
// cannot render, then re-evaluates the layout. A correction writes the
// setting and returns; the write re-enters this handler.
func (l *Layout) onConfigurationUpdated(ctx context.Context, e port.ConfigurationChangeEvent) {
	log := logging.FromContext(ctx)
	cfg := l.deps.Config

	if e.AffectsConfiguration(entity.SettingEditorActionsLocation) || e.AffectsConfiguration(entity.SettingLayoutControlEnabled) {
		actions := entity.EditorActionsLocation(port.ConfigString(cfg, entity.SettingEditorActionsLocation, string(entity.EditorActionsDefault)))
		movedToTitleBar := e.AffectsConfiguration(entity.SettingEditorActionsLocation) && actions == entity.EditorActionsTitleBar
		layoutControl := e.AffectsConfiguration(entity.SettingLayoutControlEnabled) && port.ConfigBool(cfg, entity.SettingLayoutControlEnabled, true)

		if (movedToTitleBar || layoutControl) && !port.ConfigBool(cfg, entity.SettingCommandCenter, true) {
			log.Info().Msg("enabling command center for title bar actions")
			if err := cfg.UpdateValue(ctx, entity.SettingCommandCenter, true); err != nil {
				log.Warn().Err(err).Msg("failed to enable command center")
			}
			return
		}
	}

	if e.AffectsConfiguration(entity.SettingActivityBarLocation) {
		location := entity.ActivityBarLocation(port.ConfigString(cfg, entity.SettingActivityBarLocation, string(entity.ActivityBarLocationDefault)))
		visibility := entity.CustomTitleBarVisibility(port.ConfigString(cfg, entity.SettingCustomTitleBarVisibility, string(entity.CustomTitleBarAuto)))
		if (location == entity.ActivityBarLocationTop || location == entity.ActivityBarLocationBottom) && visibility == entity.CustomTitleBarNever {
			log.Info().Msg("showing custom title bar for activity bar location")
			if err := cfg.UpdateValue(ctx, entity.SettingCustomTitleBarVisibility, string(entity.CustomTitleBarAuto)); err != nil {
				log.Warn().Err(err).Msg("failed to update custom title bar visibility")
			}
			return
		}
	}

	for _, key := range layoutSettings {
		if e.AffectsConfiguration(key) {
			l.doUpdateLayoutConfiguration(ctx, false)
			return
		}
	}
}

// doUpdateLayoutConfiguration re-applies title bar visibility and the
// centered editor layout.
func (l *Layout) doUpdateLayoutConfiguration(ctx context.Context, skipLayout bool) {
	if l.grid == nil {
		return
	}
	changed := l.updateCustomTitleBarVisibility()

	if l.IsRestored() {
		l.CenterMainEditorLayout(ctx, l.IsMainEditorLayoutCentered(), true)
	}

	if changed && !skipLayout {
		l.Layout(ctx)
	}
}

// onStateChanged applies layout state edited outside the layout, through
// a legacy setting or another window sharing the profile.
func (l *Layout) onStateChanged(ctx context.Context, c layoutstate.StateChange) {
	if l.grid == nil {
		return
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("key", c.Key.Name()).Msg("layout state changed externally")

	switch c.Key {
	case layoutstate.ActivityBarHidden:
		l.setActivityBarHidden(ctx, l.model.Bool(layoutstate.ActivityBarHidden))
	case layoutstate.StatusBarHidden:
		l.setStatusBarHidden(ctx, l.model.Bool(layoutstate.StatusBarHidden))
	case layoutstate.SideBarPosition:
		l.setSideBarPosition(ctx, l.SideBarPosition())
	case layoutstate.PanelPosition:
		l.setPanelPosition(ctx, l.PanelPosition())
	case layoutstate.PanelAlignment:
		l.setPanelAlignment(ctx, l.PanelAlignment())
	case layoutstate.SideBarHidden, layoutstate.PanelHidden, layoutstate.AuxiliaryBarHidden, layoutstate.EditorHidden:
		for p, key := range hiddenKeys {
			if key == c.Key {
				_ = l.SetPartHidden(ctx, l.model.Bool(key), p)
			}
		}
	}

	l.doUpdateLayoutConfiguration(ctx, false)
}
