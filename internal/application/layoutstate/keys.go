// Package layoutstate holds the typed layout settings and their persisted,
// in-memory and legacy-setting representations.
package layoutstate

import (
	"fmt"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Layout state keys. Storage keys carry the "workbench." prefix.
var (
	EditorCentered = entity.NewRuntimeKey("editor.centered", entity.ScopeWorkspace, entity.TargetMachine, false)

	ZenModeActive   = entity.NewRuntimeKey("zenMode.active", entity.ScopeWorkspace, entity.TargetMachine, false)
	ZenModeExitInfo = entity.NewRuntimeKey("zenMode.exitInfo", entity.ScopeWorkspace, entity.TargetMachine, entity.ZenModeExitInfo{})

	SideBarSize      = entity.NewInitializationKey("sideBar.size", entity.ScopeProfile, entity.TargetMachine, 200.0)
	AuxiliaryBarSize = entity.NewInitializationKey("auxiliaryBar.size", entity.ScopeProfile, entity.TargetMachine, 200.0)
	PanelSize        = entity.NewInitializationKey("panel.size", entity.ScopeProfile, entity.TargetMachine, 300.0)

	PanelLastNonMaximizedHeight = entity.NewRuntimeKey("panel.lastNonMaximizedHeight", entity.ScopeProfile, entity.TargetMachine, 300.0)
	PanelLastNonMaximizedWidth  = entity.NewRuntimeKey("panel.lastNonMaximizedWidth", entity.ScopeProfile, entity.TargetMachine, 300.0)
	PanelWasLastMaximized       = entity.NewRuntimeKey("panel.wasLastMaximized", entity.ScopeWorkspace, entity.TargetMachine, false)

	SideBarPosition = entity.NewRuntimeKey("sideBar.position", entity.ScopeWorkspace, entity.TargetMachine, entity.PositionLeft)
	PanelPosition   = entity.NewRuntimeKey("panel.position", entity.ScopeWorkspace, entity.TargetMachine, entity.PositionBottom)
	PanelAlignment  = entity.NewRuntimeKey("panel.alignment", entity.ScopeProfile, entity.TargetUser, entity.AlignmentCenter)

	ActivityBarHidden  = entity.NewRuntimeKey("activityBar.hidden", entity.ScopeProfile, entity.TargetMachine, false, entity.WithZenModeIgnore())
	SideBarHidden      = entity.NewRuntimeKey("sideBar.hidden", entity.ScopeWorkspace, entity.TargetMachine, false)
	EditorHidden       = entity.NewRuntimeKey("editor.hidden", entity.ScopeWorkspace, entity.TargetMachine, false)
	PanelHidden        = entity.NewRuntimeKey("panel.hidden", entity.ScopeWorkspace, entity.TargetMachine, true)
	AuxiliaryBarHidden = entity.NewRuntimeKey("auxiliaryBar.hidden", entity.ScopeWorkspace, entity.TargetMachine, true)
	StatusBarHidden    = entity.NewRuntimeKey("statusBar.hidden", entity.ScopeProfile, entity.TargetMachine, false, entity.WithZenModeIgnore())
)

var registry = mustRegister(
	EditorCentered,
	ZenModeActive,
	ZenModeExitInfo,
	SideBarSize,
	AuxiliaryBarSize,
	PanelSize,
	PanelLastNonMaximizedHeight,
	PanelLastNonMaximizedWidth,
	PanelWasLastMaximized,
	SideBarPosition,
	PanelPosition,
	PanelAlignment,
	ActivityBarHidden,
	SideBarHidden,
	EditorHidden,
	PanelHidden,
	AuxiliaryBarHidden,
	StatusBarHidden,
)

type keyRegistry struct {
	ordered []*entity.StateKey
	byName  map[string]*entity.StateKey
}

// mustRegister panics on duplicate names; a duplicate is a wiring bug.
func mustRegister(keys ...*entity.StateKey) keyRegistry {
	r := keyRegistry{byName: make(map[string]*entity.StateKey, len(keys))}
	for _, k := range keys {
		if _, dup := r.byName[k.Name()]; dup {
			panic(fmt.Sprintf("layoutstate: duplicate state key %q", k.Name()))
		}
		r.byName[k.Name()] = k
		r.ordered = append(r.ordered, k)
	}
	return r
}

// Keys returns every layout state key in declaration order.
func Keys() []*entity.StateKey {
	out := make([]*entity.StateKey, len(registry.ordered))
	copy(out, registry.ordered)
	return out
}

// LookupKey finds a key by name, with or without the storage prefix.
func LookupKey(name string) (*entity.StateKey, bool) {
	if k, ok := registry.byName[name]; ok {
		return k, true
	}
	const prefix = "workbench."
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		k, ok := registry.byName[name[len(prefix):]]
		return k, ok
	}
	return nil, false
}
