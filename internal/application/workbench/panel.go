package workbench

import (
	"context"
	"fmt"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// PanelPosition returns where the panel sits relative to the editor.
func (l *Layout) PanelPosition() entity.Position {
	return l.model.Position(layoutstate.PanelPosition)
}

// PanelAlignment returns how a horizontal panel spans the side bars.
func (l *Layout) PanelAlignment() entity.PanelAlignment {
	return l.model.Alignment()
}

// maximizeSupported reports whether the panel can take the editor's place.
// A horizontal panel only can when it is centered.
func maximizeSupported(alignment entity.PanelAlignment, position entity.Position) bool {
	return alignment == entity.AlignmentCenter || !position.IsHorizontal()
}

// IsPanelMaximized reports whether the panel fills the editor area.
func (l *Layout) IsPanelMaximized() bool {
	return maximizeSupported(l.PanelAlignment(), l.PanelPosition()) &&
		!l.IsVisible(entity.PartEditor, entity.MainWindowID)
}

// panelOpensMaximized applies workbench.panel.opensMaximized.
func (l *Layout) panelOpensMaximized() bool {
	if !maximizeSupported(l.PanelAlignment(), l.PanelPosition()) {
		return false
	}
	setting := port.ConfigString(l.deps.Config, entity.SettingPanelOpensMaximized, string(entity.PanelOpensMaximizedRememberLast))
	switch entity.PanelOpensMaximized(setting) {
	case entity.PanelOpensMaximizedAlways:
		return true
	case entity.PanelOpensMaximizedRememberLast:
		return l.model.Bool(layoutstate.PanelWasLastMaximized)
	default:
		return false
	}
}

func (l *Layout) setPanelHidden(ctx context.Context, hidden, skipLayout bool) {
	log := logging.FromContext(ctx)

	wasHidden := !l.grid.IsViewVisible(entity.PartPanel)
	l.model.SetRuntimeValue(ctx, layoutstate.PanelHidden, hidden)

	isMaximized := l.IsPanelMaximized()
	opensMaximized := l.panelOpensMaximized()

	focusEditor := false
	_, active := l.deps.PaneComposites.ActivePaneCompositeID(port.LocationPanel)
	switch {
	case hidden && active:
		l.deps.PaneComposites.HideActivePaneComposite(port.LocationPanel)
		focusEditor = true
	case !hidden && !active:
		l.openPaneCompositeWithViews(ctx, port.LocationPanel, !skipLayout)
	}

	// The editor comes back before the panel goes away.
	if hidden && isMaximized {
		l.toggleMaximizedPanel(ctx)
	}
	if hidden && !l.IsVisible(entity.PartEditor, entity.MainWindowID) {
		l.setEditorHidden(ctx, false)
	}

	if wasHidden == hidden {
		log.Trace().Bool("hidden", hidden).Msg("panel visibility unchanged")
		if focusEditor {
			l.deps.EditorGroups.Focus()
		}
		return
	}

	l.setGridViewVisible(entity.PartPanel, !hidden)

	if hidden {
		l.model.SetRuntimeValue(ctx, layoutstate.PanelWasLastMaximized, isMaximized)
	} else if !skipLayout && isMaximized != opensMaximized {
		l.toggleMaximizedPanel(ctx)
	}

	if focusEditor {
		l.deps.EditorGroups.Focus()
	}
	log.Debug().Bool("hidden", hidden).Bool("maximized", l.IsPanelMaximized()).Msg("panel visibility changed")
}

// ToggleMaximizedPanel swaps between a maximized panel and the last
// non-maximized size along the panel's axis.
func (l *Layout) ToggleMaximizedPanel(ctx context.Context) {
	if !l.gridReady(ctx, "toggle maximized panel") {
		return
	}
	l.toggleMaximizedPanel(ctx)
}

func (l *Layout) toggleMaximizedPanel(ctx context.Context) {
	log := logging.FromContext(ctx)

	position := l.PanelPosition()
	if !maximizeSupported(l.PanelAlignment(), position) {
		log.Debug().
			Str("alignment", l.PanelAlignment().String()).
			Msg("panel cannot be maximized with this alignment")
		return
	}

	size := l.grid.GetViewSize(entity.PartPanel)
	maximized := l.IsPanelMaximized()
	if !maximized {
		if l.IsVisible(entity.PartPanel, entity.MainWindowID) {
			if position.IsHorizontal() {
				l.model.SetRuntimeValue(ctx, layoutstate.PanelLastNonMaximizedHeight, size.Height)
			} else {
				l.model.SetRuntimeValue(ctx, layoutstate.PanelLastNonMaximizedWidth, size.Width)
			}
		}
		l.setEditorHidden(ctx, true)
	} else {
		l.setEditorHidden(ctx, false)
		restored := size
		if position.IsHorizontal() {
			restored.Height = l.model.Number(layoutstate.PanelLastNonMaximizedHeight)
		} else {
			restored.Width = l.model.Number(layoutstate.PanelLastNonMaximizedWidth)
		}
		l.grid.ResizeView(entity.PartPanel, restored)
	}

	l.model.SetRuntimeValue(ctx, layoutstate.PanelWasLastMaximized, !maximized)
	log.Debug().Bool("maximized", !maximized).Msg("panel maximize toggled")
}

// setEditorHidden hides the editor area; the panel is shown so the
// workbench is never empty.
func (l *Layout) setEditorHidden(ctx context.Context, hidden bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.EditorHidden, hidden)
	l.setGridViewVisible(entity.PartEditor, !hidden)

	if hidden && !l.IsVisible(entity.PartPanel, entity.MainWindowID) {
		l.setPanelHidden(ctx, false, true)
	}
}

// SetPanelPosition moves the panel to another side of the editor.
func (l *Layout) SetPanelPosition(ctx context.Context, position entity.Position) error {
	if _, err := entity.ParsePosition(string(position)); err != nil {
		return fmt.Errorf("set panel position: %w", err)
	}
	if !l.gridReady(ctx, "set panel position") {
		return nil
	}
	l.setPanelPosition(ctx, position)
	return nil
}

func (l *Layout) setPanelPosition(ctx context.Context, position entity.Position) {
	log := logging.FromContext(ctx)

	if !l.grid.IsViewVisible(entity.PartPanel) {
		l.setPanelHidden(ctx, false, false)
	}

	old := l.runtime.gridPanelPosition
	size := l.grid.GetViewSize(entity.PartPanel)
	sideBarSize := l.grid.GetViewSize(entity.PartSideBar)
	auxiliaryBarSize := l.grid.GetViewSize(entity.PartAuxiliaryBar)
	editorHidden := !l.IsVisible(entity.PartEditor, entity.MainWindowID)

	// Cache the extent the panel gets back when it returns to the other
	// orientation.
	if old != position && !editorHidden {
		switch {
		case position.IsHorizontal():
			l.model.SetRuntimeValue(ctx, layoutstate.PanelLastNonMaximizedWidth, size.Width)
		case old.IsHorizontal():
			l.model.SetRuntimeValue(ctx, layoutstate.PanelLastNonMaximizedHeight, size.Height)
		}
	}

	// A non-centered horizontal panel cannot stay maximized.
	if position.IsHorizontal() && l.PanelAlignment() != entity.AlignmentCenter && editorHidden {
		l.toggleMaximizedPanel(ctx)
		editorHidden = false
	}

	l.model.SetRuntimeValue(ctx, layoutstate.PanelPosition, position)
	hadFocus := l.HasFocus(entity.PartPanel)

	if old != position {
		extent := size.Width
		switch {
		case position.IsHorizontal() && editorHidden:
			extent = size.Height
		case position.IsHorizontal():
			extent = l.model.Number(layoutstate.PanelLastNonMaximizedHeight)
		case !editorHidden:
			extent = l.model.Number(layoutstate.PanelLastNonMaximizedWidth)
		}
		l.grid.MoveView(entity.PartPanel, extent, entity.PartEditor, position.Direction())

		if hadFocus {
			l.FocusPart(ctx, entity.PartPanel)
		}
		if l.IsVisible(entity.PartSideBar, entity.MainWindowID) {
			l.grid.ResizeView(entity.PartSideBar, sideBarSize)
		}
		if l.IsVisible(entity.PartAuxiliaryBar, entity.MainWindowID) {
			l.grid.ResizeView(entity.PartAuxiliaryBar, auxiliaryBarSize)
		}
	}
	l.runtime.gridPanelPosition = position

	if position.IsHorizontal() {
		l.adjustPartPositions(ctx, l.SideBarPosition(), l.PanelAlignment(), position)
	}

	log.Debug().
		Str("from", old.String()).
		Str("to", position.String()).
		Msg("panel position changed")
	l.events.didChangePanelPosition.Fire(position)
}

// SetPanelAlignment changes how a bottom or top panel spans the side
// bars. A vertical panel is moved to the bottom first.
func (l *Layout) SetPanelAlignment(ctx context.Context, alignment entity.PanelAlignment) error {
	if _, err := entity.ParsePanelAlignment(string(alignment)); err != nil {
		return fmt.Errorf("set panel alignment: %w", err)
	}
	if !l.gridReady(ctx, "set panel alignment") {
		return nil
	}
	l.setPanelAlignment(ctx, alignment)
	return nil
}

func (l *Layout) setPanelAlignment(ctx context.Context, alignment entity.PanelAlignment) {
	if !l.PanelPosition().IsHorizontal() {
		l.setPanelPosition(ctx, entity.PositionBottom)
	}
	if alignment != entity.AlignmentCenter && l.IsPanelMaximized() {
		l.toggleMaximizedPanel(ctx)
	}

	l.model.SetRuntimeValue(ctx, layoutstate.PanelAlignment, alignment)
	l.adjustPartPositions(ctx, l.SideBarPosition(), alignment, l.PanelPosition())

	logging.FromContext(ctx).Debug().Str("alignment", alignment.String()).Msg("panel alignment changed")
	l.events.didChangePanelAlignment.Fire(alignment)
}
