package workbench

import (
	"context"
	"fmt"

	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// hiddenKeys maps the hideable parts to their state key.
var hiddenKeys = map[entity.Part]*entity.StateKey{
	entity.PartActivityBar:  layoutstate.ActivityBarHidden,
	entity.PartSideBar:      layoutstate.SideBarHidden,
	entity.PartEditor:       layoutstate.EditorHidden,
	entity.PartPanel:        layoutstate.PanelHidden,
	entity.PartAuxiliaryBar: layoutstate.AuxiliaryBarHidden,
	entity.PartStatusBar:    layoutstate.StatusBarHidden,
}

// SetPartHidden shows or hides a part. The title bar follows settings and
// cannot be toggled directly.
func (l *Layout) SetPartHidden(ctx context.Context, hidden bool, p entity.Part) error {
	if !p.Valid() {
		return fmt.Errorf("set part hidden: %w", ErrUnknownPart)
	}
	if !l.gridReady(ctx, "set part hidden") {
		return nil
	}

	ctx = logging.WithPart(ctx, p.ShortName())
	switch p {
	case entity.PartActivityBar:
		l.setActivityBarHidden(ctx, hidden)
	case entity.PartSideBar:
		l.setSideBarHidden(ctx, hidden)
	case entity.PartEditor:
		l.setEditorHidden(ctx, hidden)
	case entity.PartPanel:
		l.setPanelHidden(ctx, hidden, false)
	case entity.PartAuxiliaryBar:
		l.setAuxiliaryBarHidden(ctx, hidden, false)
	case entity.PartStatusBar:
		l.setStatusBarHidden(ctx, hidden)
	case entity.PartBanner:
		l.setBannerHidden(hidden)
	default:
		logging.FromContext(ctx).Debug().Msg("part visibility is derived, ignoring")
	}
	return nil
}

// TogglePart flips a part's visibility in the main window.
func (l *Layout) TogglePart(ctx context.Context, p entity.Part) error {
	return l.SetPartHidden(ctx, l.IsVisible(p, entity.MainWindowID), p)
}

// IsVisible reports whether a part is showing. Only the title bar is
// tracked per window; every other part lives in the main window.
func (l *Layout) IsVisible(p entity.Part, window entity.WindowID) bool {
	switch p {
	case entity.PartTitleBar:
		if window == entity.MainWindowID && l.grid != nil {
			return l.grid.IsViewVisible(p)
		}
		return l.shouldShowCustomTitleBar(window)
	case entity.PartBanner:
		return l.grid != nil && l.grid.IsViewVisible(p)
	}
	if window != entity.MainWindowID {
		return false
	}
	if key, ok := hiddenKeys[p]; ok {
		return !l.model.Bool(key)
	}
	return false
}

// setGridViewVisible toggles the grid view and tells the part.
func (l *Layout) setGridViewVisible(p entity.Part, visible bool) {
	l.grid.SetViewVisible(p, visible)
	l.parts[p].SetVisible(visible)
}

func (l *Layout) onPartVisibilityChanged(ctx context.Context, p entity.Part, visible bool) {
	// A pane part may hide itself, e.g. when its last view container goes away.
	switch p {
	case entity.PartSideBar, entity.PartPanel, entity.PartAuxiliaryBar:
		if l.model.Bool(hiddenKeys[p]) == visible {
			_ = l.SetPartHidden(ctx, !visible, p)
		}
	}
	l.events.didChangePartVisibility.Fire(PartVisibilityChange{Part: p, Visible: visible})
}

func (l *Layout) setActivityBarHidden(ctx context.Context, hidden bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.ActivityBarHidden, hidden)
	l.setGridViewVisible(entity.PartActivityBar, !hidden)
}

func (l *Layout) setStatusBarHidden(ctx context.Context, hidden bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.StatusBarHidden, hidden)
	l.setGridViewVisible(entity.PartStatusBar, !hidden)
}

// setBannerHidden has no state key; the banner shows only for the session.
func (l *Layout) setBannerHidden(hidden bool) {
	l.setGridViewVisible(entity.PartBanner, !hidden)
}

func (l *Layout) setSideBarHidden(ctx context.Context, hidden bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.SideBarHidden, hidden)
	l.setGridViewVisible(entity.PartSideBar, !hidden)

	_, active := l.deps.PaneComposites.ActivePaneCompositeID(port.LocationSidebar)
	switch {
	case hidden && active:
		l.deps.PaneComposites.HideActivePaneComposite(port.LocationSidebar)
		l.focusPanelOrEditor(ctx)
	case !hidden && !active:
		l.openPaneCompositeWithViews(ctx, port.LocationSidebar, true)
	}
}

func (l *Layout) setAuxiliaryBarHidden(ctx context.Context, hidden, skipLayout bool) {
	l.model.SetRuntimeValue(ctx, layoutstate.AuxiliaryBarHidden, hidden)
	l.setGridViewVisible(entity.PartAuxiliaryBar, !hidden)

	_, active := l.deps.PaneComposites.ActivePaneCompositeID(port.LocationAuxiliaryBar)
	switch {
	case hidden && active:
		l.deps.PaneComposites.HideActivePaneComposite(port.LocationAuxiliaryBar)
		l.focusPanelOrEditor(ctx)
	case !hidden && !active:
		l.openPaneCompositeWithViews(ctx, port.LocationAuxiliaryBar, !skipLayout)
	}
}

// openPaneCompositeWithViews reveals the best container for loc: the last
// active one if it still has views, then the default, then the first
// container with views.
func (l *Layout) openPaneCompositeWithViews(ctx context.Context, loc port.ViewContainerLocation, focus bool) {
	log := logging.FromContext(ctx)

	id := l.deps.PaneComposites.LastActivePaneCompositeID(loc)
	if id == "" || !l.deps.ViewDescriptors.ViewContainerHasViews(id) {
		id, _ = l.deps.ViewDescriptors.DefaultViewContainerID(loc)
	}
	if id == "" || !l.deps.ViewDescriptors.ViewContainerHasViews(id) {
		id = ""
		for _, candidate := range l.deps.PaneComposites.PaneCompositeIDs(loc) {
			if l.deps.ViewDescriptors.ViewContainerHasViews(candidate) {
				id = candidate
				break
			}
		}
	}
	if id == "" {
		log.Debug().Str("location", loc.String()).Msg("no view container with views to reveal")
		return
	}
	if err := l.deps.PaneComposites.OpenPaneComposite(ctx, id, loc, focus); err != nil {
		log.Warn().Err(err).Str("container", id).Str("location", loc.String()).Msg("failed to open view container")
	}
}

// focusPanelOrEditor moves focus off a part that is going away.
func (l *Layout) focusPanelOrEditor(ctx context.Context) {
	if _, active := l.deps.PaneComposites.ActivePaneCompositeID(port.LocationPanel); active && l.IsVisible(entity.PartPanel, entity.MainWindowID) {
		l.parts[entity.PartPanel].Focus()
		return
	}
	l.FocusPart(ctx, entity.PartEditor)
}

// FocusPart moves keyboard focus into a part.
func (l *Layout) FocusPart(ctx context.Context, p entity.Part) {
	if p == entity.PartEditor {
		l.deps.EditorGroups.Focus()
		return
	}
	part, ok := l.parts[p]
	if !ok {
		logging.FromContext(ctx).Debug().Int("part", int(p)).Msg("focus on unregistered part")
		return
	}
	part.Focus()
}

// Focus focuses the editor area.
func (l *Layout) Focus(ctx context.Context) {
	l.FocusPart(ctx, entity.PartEditor)
}

// HasFocus reports whether keyboard focus is inside the part.
func (l *Layout) HasFocus(p entity.Part) bool {
	part, ok := l.parts[p]
	return ok && part.HasFocus()
}

// Container returns the part's host container.
func (l *Layout) Container(p entity.Part) (port.Container, error) {
	part, err := l.Part(p)
	if err != nil {
		return nil, err
	}
	return part.Container(), nil
}

// ResizePart grows or shrinks a part by a delta. Only the side bar,
// auxiliary bar, panel and editor are resizable.
func (l *Layout) ResizePart(ctx context.Context, p entity.Part, deltaWidth, deltaHeight float64) error {
	if !p.Valid() {
		return fmt.Errorf("resize part: %w", ErrUnknownPart)
	}
	if !l.gridReady(ctx, "resize part") {
		return nil
	}
	if !l.IsVisible(p, entity.MainWindowID) {
		return nil
	}

	size := l.grid.GetViewSize(p)
	switch p {
	case entity.PartSideBar, entity.PartAuxiliaryBar:
		l.grid.ResizeView(p, entity.Dimension{Width: size.Width + deltaWidth, Height: size.Height})
	case entity.PartPanel, entity.PartEditor:
		l.grid.ResizeView(p, entity.Dimension{Width: size.Width + deltaWidth, Height: size.Height + deltaHeight})
	default:
		logging.FromContext(ctx).Debug().Str("part", p.ShortName()).Msg("part is not resizable")
	}
	return nil
}

// Size returns a part's current size.
func (l *Layout) Size(p entity.Part) entity.Dimension {
	if l.grid == nil {
		return entity.Dimension{}
	}
	return l.grid.GetViewSize(p)
}

// SetSize resizes a part to an absolute size.
func (l *Layout) SetSize(ctx context.Context, p entity.Part, size entity.Dimension) {
	if !l.gridReady(ctx, "set size") {
		return
	}
	l.grid.ResizeView(p, size)
}
