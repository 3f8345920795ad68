package workbench

import (
	"context"
	"fmt"

	"github.com/bnema/shellgrid/internal/application/composition"
	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// SideBarPosition returns the side the primary side bar is on.
func (l *Layout) SideBarPosition() entity.Position {
	return l.model.Position(layoutstate.SideBarPosition)
}

// SetSideBarPosition moves the side bar, and the activity and auxiliary
// bars with it, to the left or right.
func (l *Layout) SetSideBarPosition(ctx context.Context, position entity.Position) error {
	if position != entity.PositionLeft && position != entity.PositionRight {
		return fmt.Errorf("set side bar position: %w: %q", entity.ErrInvalidPosition, position)
	}
	if !l.gridReady(ctx, "set side bar position") {
		return nil
	}
	l.setSideBarPosition(ctx, position)
	return nil
}

func (l *Layout) setSideBarPosition(ctx context.Context, position entity.Position) {
	l.model.SetRuntimeValue(ctx, layoutstate.SideBarPosition, position)

	for _, p := range []entity.Part{entity.PartActivityBar, entity.PartSideBar, entity.PartAuxiliaryBar} {
		l.parts[p].UpdateStyles()
	}

	l.adjustPartPositions(ctx, position, l.PanelAlignment(), l.PanelPosition())
	logging.FromContext(ctx).Debug().Str("position", position.String()).Msg("side bar position changed")
}

// preMoveSize is a part's width before it is moved: its cached size when
// hidden, its minimum when nothing was cached.
func (l *Layout) preMoveSize(p entity.Part, height bool) float64 {
	if !l.IsVisible(p, entity.MainWindowID) {
		if cached, ok := l.grid.GetViewCachedVisibleSize(p); ok {
			return cached
		}
		if height {
			return l.parts[p].MinimumHeight()
		}
		return l.parts[p].MinimumWidth()
	}
	size := l.grid.GetViewSize(p)
	if height {
		return size.Height
	}
	return size.Width
}

// adjustPartPositions re-arranges the middle row after the side bar
// position, panel alignment or panel position changed. It mirrors the
// arrangement composition builds at startup.
func (l *Layout) adjustPartPositions(ctx context.Context, sideBarPosition entity.Position, alignment entity.PanelAlignment, panelPosition entity.Position) {
	panelVertical := !panelPosition.IsHorizontal()
	sideBarNextToEditor := panelVertical || composition.SideBarNextToEditor(sideBarPosition, alignment)
	auxiliaryBarNextToEditor := panelVertical || composition.AuxiliaryBarNextToEditor(sideBarPosition, alignment)

	panelWidth := l.preMoveSize(entity.PartPanel, false)
	panelHeight := l.preMoveSize(entity.PartPanel, true)
	sideBarSize := l.preMoveSize(entity.PartSideBar, false)
	auxiliaryBarSize := l.preMoveSize(entity.PartAuxiliaryBar, false)

	focused := entity.Part(-1)
	for _, p := range []entity.Part{entity.PartPanel, entity.PartSideBar, entity.PartAuxiliaryBar} {
		if l.HasFocus(p) {
			focused = p
			break
		}
	}

	if sideBarPosition == entity.PositionLeft {
		l.grid.MoveViewTo(entity.PartActivityBar, []int{2, 0})
		if sideBarNextToEditor {
			l.grid.MoveView(entity.PartSideBar, sideBarSize, entity.PartEditor, entity.DirectionLeft)
		} else {
			l.grid.MoveView(entity.PartSideBar, sideBarSize, entity.PartActivityBar, entity.DirectionRight)
		}
		if auxiliaryBarNextToEditor {
			l.grid.MoveView(entity.PartAuxiliaryBar, auxiliaryBarSize, entity.PartEditor, entity.DirectionRight)
		} else {
			l.grid.MoveViewTo(entity.PartAuxiliaryBar, []int{2, -1})
		}
	} else {
		l.grid.MoveViewTo(entity.PartActivityBar, []int{2, -1})
		if sideBarNextToEditor {
			l.grid.MoveView(entity.PartSideBar, sideBarSize, entity.PartEditor, entity.DirectionRight)
		} else {
			l.grid.MoveView(entity.PartSideBar, sideBarSize, entity.PartActivityBar, entity.DirectionLeft)
		}
		if auxiliaryBarNextToEditor {
			l.grid.MoveView(entity.PartAuxiliaryBar, auxiliaryBarSize, entity.PartEditor, entity.DirectionLeft)
		} else {
			l.grid.MoveViewTo(entity.PartAuxiliaryBar, []int{2, 0})
		}
	}

	if focused >= 0 {
		l.parts[focused].Focus()
	}

	// Moving the side bars next to the editor splits a vertical panel away
	// from it; put it back.
	if panelVertical {
		l.grid.MoveView(entity.PartPanel, panelWidth, entity.PartEditor, panelPosition.Direction())
		l.grid.ResizeView(entity.PartPanel, entity.Dimension{Width: panelWidth, Height: panelHeight})
	}

	if l.IsVisible(entity.PartSideBar, entity.MainWindowID) {
		l.grid.ResizeView(entity.PartSideBar, entity.Dimension{
			Width:  sideBarSize,
			Height: l.grid.GetViewSize(entity.PartSideBar).Height,
		})
	}
	if l.IsVisible(entity.PartAuxiliaryBar, entity.MainWindowID) {
		l.grid.ResizeView(entity.PartAuxiliaryBar, entity.Dimension{
			Width:  auxiliaryBarSize,
			Height: l.grid.GetViewSize(entity.PartAuxiliaryBar).Height,
		})
	}
}
