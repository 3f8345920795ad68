package workbench

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// quickPickTopWithCommandCenter is where the quick pick opens when the
// command center sits in the title bar.
const quickPickTopWithCommandCenter = 6

// RegisterWindow starts tracking an auxiliary window.
func (l *Layout) RegisterWindow(ctx context.Context, w port.Window) error {
	if w == nil || w.ID() == entity.MainWindowID {
		return ErrInvalidWindow
	}
	l.runtime.windows[w.ID()] = w
	l.updateWindowBorder(ctx, true)

	logging.FromContext(logging.WithWindow(ctx, int(w.ID()))).Debug().Msg("window registered")
	l.events.didAddContainer.Fire(w.ID())
	return nil
}

// UnregisterWindow stops tracking an auxiliary window.
func (l *Layout) UnregisterWindow(ctx context.Context, id entity.WindowID) {
	if id == entity.MainWindowID {
		return
	}
	if _, ok := l.runtime.windows[id]; !ok {
		return
	}
	delete(l.runtime.windows, id)
	delete(l.runtime.maximized, id)
	if l.runtime.activeWindow == id {
		l.onActiveWindowChanged(ctx, entity.MainWindowID)
	}
	l.events.didRemoveContainer.Fire(id)
}

// Windows lists the tracked window ids, main window first.
func (l *Layout) Windows() []entity.WindowID {
	return slices.Sorted(maps.Keys(l.runtime.windows))
}

// ActiveContainerID is the window that last had focus.
func (l *Layout) ActiveContainerID() entity.WindowID {
	return l.runtime.activeWindow
}

// ContainerDimension is the size available to a window's content.
func (l *Layout) ContainerDimension(id entity.WindowID) (entity.Dimension, bool) {
	if id == entity.MainWindowID && l.initialized {
		return l.mainContainerDimension, true
	}
	w, ok := l.runtime.windows[id]
	if !ok {
		return entity.Dimension{}, false
	}
	return w.Dimension(), true
}

// ContainerOffset is how far below a window's top edge content starts:
// below the banner and title bar, with quick pick just under the command
// center when it shows.
func (l *Layout) ContainerOffset(id entity.WindowID) entity.ContainerOffset {
	var offset entity.ContainerOffset

	if id == entity.MainWindowID && l.IsVisible(entity.PartBanner, id) {
		if banner, ok := l.parts[entity.PartBanner]; ok {
			offset.Top = banner.MaximumHeight()
			offset.QuickPickTop = offset.Top
		}
	}

	titleBarVisible := l.IsVisible(entity.PartTitleBar, id)
	if titleBarVisible {
		if titleBar, ok := l.parts[entity.PartTitleBar]; ok {
			offset.Top += titleBar.MaximumHeight()
			offset.QuickPickTop = offset.Top
		}
	}
	if titleBarVisible && port.ConfigBool(l.deps.Config, entity.SettingCommandCenter, true) {
		offset.QuickPickTop = quickPickTopWithCommandCenter
	}
	return offset
}

// MainContainerOffset is the main window's content offset.
func (l *Layout) MainContainerOffset() entity.ContainerOffset {
	return l.ContainerOffset(entity.MainWindowID)
}

// ActiveContainerOffset is the active window's content offset.
func (l *Layout) ActiveContainerOffset() entity.ContainerOffset {
	return l.ContainerOffset(l.runtime.activeWindow)
}

// IsWindowMaximized reports the last maximized state seen for a window.
func (l *Layout) IsWindowMaximized(id entity.WindowID) bool {
	return l.runtime.maximized[id]
}

// OnWindowFocusChanged records whether the application has focus.
func (l *Layout) OnWindowFocusChanged(ctx context.Context, hasFocus bool) {
	if l.runtime.hasFocus == hasFocus {
		return
	}
	l.runtime.hasFocus = hasFocus
	l.updateWindowBorder(ctx, false)
}

// OnActiveWindowChanged records which window is active.
func (l *Layout) OnActiveWindowChanged(ctx context.Context, id entity.WindowID) {
	l.onActiveWindowChanged(ctx, id)
}

func (l *Layout) onActiveWindowChanged(ctx context.Context, id entity.WindowID) {
	if l.runtime.activeWindow == id {
		return
	}
	l.runtime.activeWindow = id
	l.updateWindowBorder(ctx, false)
	l.events.didChangeActiveContainer.Fire(id)
}

// UpdateWindowMaximizedState records a window's maximized state; a
// maximized window has no border.
func (l *Layout) UpdateWindowMaximizedState(ctx context.Context, id entity.WindowID, maximized bool) {
	if l.runtime.maximized[id] == maximized {
		return
	}
	if maximized {
		l.runtime.maximized[id] = true
	} else {
		delete(l.runtime.maximized, id)
	}
	l.updateWindowBorder(ctx, false)

	logging.FromContext(logging.WithWindow(ctx, int(id))).Debug().Bool("maximized", maximized).Msg("window maximized state changed")
	l.events.didChangeWindowMaximized.Fire(WindowChange{Window: id, Active: maximized})
}

// OnFullscreenChanged reacts to the main window entering or leaving full
// screen. Other windows are ignored.
func (l *Layout) OnFullscreenChanged(ctx context.Context, id entity.WindowID, fullscreen bool) {
	if id != entity.MainWindowID || l.runtime.mainWindowFullscreen == fullscreen {
		return
	}
	l.runtime.mainWindowFullscreen = fullscreen

	l.updateCustomTitleBarVisibility()
	l.updateWindowBorder(ctx, true)
	l.Layout(ctx)

	logging.FromContext(ctx).Debug().Bool("fullscreen", fullscreen).Msg("main window full screen changed")
}

// IsMainWindowFullscreen reports the main window's full screen state.
func (l *Layout) IsMainWindowFullscreen() bool {
	return l.runtime.mainWindowFullscreen
}

// HasMainWindowBorder reports whether the main window draws a border.
func (l *Layout) HasMainWindowBorder() bool {
	return l.runtime.mainWindowBorder
}

// updateWindowBorder decides, per window, whether the theme's border is
// drawn and in which color. A change on the main window relayouts unless
// skipLayout is set.
func (l *Layout) updateWindowBorder(ctx context.Context, skipLayout bool) {
	if l.opts.IsWeb || l.nativeTitleBar() || (l.opts.WindowControlsOverlay && l.opts.IsNative) {
		return
	}

	active, inactive := l.deps.Theme.WindowBorderColors()
	hadBorder := l.runtime.mainWindowBorder

	for _, id := range l.Windows() {
		w := l.runtime.windows[id]

		border := !l.runtime.mainWindowFullscreen &&
			!l.runtime.maximized[id] &&
			(active != "" || inactive != "")

		color := ""
		if border {
			if id == l.runtime.activeWindow && l.runtime.hasFocus {
				color = active
			} else {
				color = cmp.Or(inactive, active)
			}
		}

		if id == entity.MainWindowID {
			l.runtime.mainWindowBorder = border
		}
		w.SetBorder(border, color)
	}

	if !skipLayout && hadBorder != l.runtime.mainWindowBorder {
		l.Layout(ctx)
	}
}
