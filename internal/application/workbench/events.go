package workbench

import (
	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

// PartVisibilityChange is raised when the grid shows or hides a part.
type PartVisibilityChange struct {
	Part    entity.Part
	Visible bool
}

// WindowChange carries a window-scoped boolean transition.
type WindowChange struct {
	Window entity.WindowID
	Active bool
}

type events struct {
	didChangeZenMode            event.Emitter[bool]
	didChangeMainEditorCentered event.Emitter[bool]
	didChangePanelPosition      event.Emitter[entity.Position]
	didChangePanelAlignment     event.Emitter[entity.PanelAlignment]
	didChangePartVisibility     event.Emitter[PartVisibilityChange]
	didChangeWindowMaximized    event.Emitter[WindowChange]
	didChangeActiveContainer    event.Emitter[entity.WindowID]
	didLayoutMainContainer      event.Emitter[entity.Dimension]
	didAddContainer             event.Emitter[entity.WindowID]
	didRemoveContainer          event.Emitter[entity.WindowID]
}

// OnDidChangeZenMode fires after zen mode is entered or left.
func (l *Layout) OnDidChangeZenMode(fn func(active bool)) (unsubscribe func()) {
	return l.events.didChangeZenMode.Subscribe(fn)
}

// OnDidChangeMainEditorCenteredLayout fires when centered editor layout toggles.
func (l *Layout) OnDidChangeMainEditorCenteredLayout(fn func(centered bool)) (unsubscribe func()) {
	return l.events.didChangeMainEditorCentered.Subscribe(fn)
}

// OnDidChangePanelPosition fires after the panel moves to a new side.
func (l *Layout) OnDidChangePanelPosition(fn func(entity.Position)) (unsubscribe func()) {
	return l.events.didChangePanelPosition.Subscribe(fn)
}

// OnDidChangePanelAlignment fires after the panel alignment changes.
func (l *Layout) OnDidChangePanelAlignment(fn func(entity.PanelAlignment)) (unsubscribe func()) {
	return l.events.didChangePanelAlignment.Subscribe(fn)
}

// OnDidChangePartVisibility fires when a part is shown or hidden.
func (l *Layout) OnDidChangePartVisibility(fn func(PartVisibilityChange)) (unsubscribe func()) {
	return l.events.didChangePartVisibility.Subscribe(fn)
}

// OnDidChangeWindowMaximized fires when a window enters or leaves the maximized state.
func (l *Layout) OnDidChangeWindowMaximized(fn func(WindowChange)) (unsubscribe func()) {
	return l.events.didChangeWindowMaximized.Subscribe(fn)
}

// OnDidChangeActiveContainer fires when focus moves to another window container.
func (l *Layout) OnDidChangeActiveContainer(fn func(entity.WindowID)) (unsubscribe func()) {
	return l.events.didChangeActiveContainer.Subscribe(fn)
}

// OnDidLayoutMainContainer fires after the main container is laid out with its new size.
func (l *Layout) OnDidLayoutMainContainer(fn func(entity.Dimension)) (unsubscribe func()) {
	return l.events.didLayoutMainContainer.Subscribe(fn)
}

// OnDidAddContainer fires when an auxiliary window container is registered.
func (l *Layout) OnDidAddContainer(fn func(entity.WindowID)) (unsubscribe func()) {
	return l.events.didAddContainer.Subscribe(fn)
}

// OnDidRemoveContainer fires when an auxiliary window container is disposed.
func (l *Layout) OnDidRemoveContainer(fn func(entity.WindowID)) (unsubscribe func()) {
	return l.events.didRemoveContainer.Subscribe(fn)
}
