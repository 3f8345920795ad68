package layoutstate

import (
	"context"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// LegacyAdapter keeps three layout keys in step with the older settings
// that used to own them:
//
//	activityBar.hidden <-> workbench.activityBar.visible (inverted)
//	statusBar.hidden   <-> workbench.statusBar.visible (inverted)
//	sideBar.position   <-> workbench.sideBar.location
//
// It is the only place that knows about those settings.
type LegacyAdapter struct {
	cfg port.Configuration
}

// NewLegacyAdapter creates an adapter over cfg.
func NewLegacyAdapter(cfg port.Configuration) *LegacyAdapter {
	return &LegacyAdapter{cfg: cfg}
}

// Covers reports whether key is backed by a legacy setting.
func (a *LegacyAdapter) Covers(key *entity.StateKey) bool {
	return key == ActivityBarHidden || key == StatusBarHidden || key == SideBarPosition
}

// Read derives a key's value from its legacy setting.
func (a *LegacyAdapter) Read(key *entity.StateKey) (any, bool) {
	switch key {
	case ActivityBarHidden:
		return a.activityBarHidden(), true
	case StatusBarHidden:
		return !port.ConfigBool(a.cfg, entity.SettingStatusBarVisible, true), true
	case SideBarPosition:
		return a.sideBarPosition(), true
	}
	return nil, false
}

// Write mirrors a key's new value onto its legacy setting.
func (a *LegacyAdapter) Write(ctx context.Context, key *entity.StateKey, value any) {
	var (
		setting string
		legacy  any
	)
	switch key {
	case ActivityBarHidden:
		hidden, _ := value.(bool)
		setting, legacy = entity.SettingActivityBarVisible, !hidden
	case StatusBarHidden:
		hidden, _ := value.(bool)
		setting, legacy = entity.SettingStatusBarVisible, !hidden
	case SideBarPosition:
		pos, _ := value.(entity.Position)
		setting, legacy = entity.SettingSideBarLocation, string(pos)
	default:
		return
	}

	if err := a.cfg.UpdateValue(ctx, setting, legacy); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("setting", setting).
			Msg("failed to mirror layout state onto legacy setting")
	}
}

// Affected returns the keys whose legacy settings are touched by e.
func (a *LegacyAdapter) Affected(e port.ConfigurationChangeEvent) []*entity.StateKey {
	var keys []*entity.StateKey
	if e.AffectsConfiguration(entity.SettingActivityBarVisible) ||
		e.AffectsConfiguration(entity.SettingActivityBarLocation) {
		keys = append(keys, ActivityBarHidden)
	}
	if e.AffectsConfiguration(entity.SettingStatusBarVisible) {
		keys = append(keys, StatusBarHidden)
	}
	if e.AffectsConfiguration(entity.SettingSideBarLocation) {
		keys = append(keys, SideBarPosition)
	}
	return keys
}

// activityBarHidden prefers the explicit visible flag; otherwise any
// location but "default" hides the standalone activity bar.
func (a *LegacyAdapter) activityBarHidden() bool {
	if a.cfg.IsSet(entity.SettingActivityBarVisible) {
		return !port.ConfigBool(a.cfg, entity.SettingActivityBarVisible, true)
	}
	location := port.ConfigString(a.cfg, entity.SettingActivityBarLocation, string(entity.ActivityBarLocationDefault))
	return entity.ActivityBarLocation(location) != entity.ActivityBarLocationDefault
}

func (a *LegacyAdapter) sideBarPosition() entity.Position {
	location := port.ConfigString(a.cfg, entity.SettingSideBarLocation, string(entity.PositionLeft))
	if entity.Position(location) == entity.PositionRight {
		return entity.PositionRight
	}
	return entity.PositionLeft
}
