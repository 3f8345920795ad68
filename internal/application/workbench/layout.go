// Package workbench is the layout engine: it owns the layout state model,
// builds the grid and keeps part visibility, sizes and positions in sync
// with settings, zen mode and the host windows.
//
// A Layout is not safe for concurrent use. Every call, including the
// listeners it registers, is expected to run on the main loop.
package workbench

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/shellgrid/internal/application/composition"
	"github.com/bnema/shellgrid/internal/application/layoutstate"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
)

// windowBorderSize is the total width of the left+right (or top+bottom)
// window border.
const windowBorderSize = 2

// Deps are the services the layout consults.
type Deps struct {
	Store           port.StateStore
	Config          port.Configuration
	Grids           port.GridFactory
	PaneComposites  port.PaneCompositeService
	ViewDescriptors port.ViewDescriptorService
	EditorGroups    port.EditorGroupService
	Editors         port.EditorService
	Host            port.HostService
	Notifications   port.NotificationService
	Theme           port.ThemeService
	MainWindow      port.Window
}

// DefaultView is a view container a fresh workspace opens at startup.
type DefaultView struct {
	ID       string
	Location port.ViewContainerLocation
}

// Options are the environment facts fixed for the process lifetime.
type Options struct {
	IsWeb       bool
	IsMacintosh bool
	// IsNative is a desktop build with a native window host.
	IsNative              bool
	WindowControlsOverlay bool

	EmptyWorkspace bool
	ResetLayout    bool

	EditorsToOpen []port.EditorRequest
	DefaultViews  []DefaultView
}

type containersToRestore struct {
	sideBar      string
	panel        string
	auxiliaryBar string
}

type runtimeState struct {
	windows      map[entity.WindowID]port.Window
	maximized    map[entity.WindowID]bool
	activeWindow entity.WindowID
	hasFocus     bool

	mainWindowFullscreen bool
	mainWindowBorder     bool
	menuBarToggled       bool

	// gridPanelPosition is the panel position the grid currently reflects;
	// the model may already hold a newer one when a state change fires.
	gridPanelPosition entity.Position
}

// Layout composes the workbench parts into a grid.
type Layout struct {
	deps  Deps
	opts  Options
	model *layoutstate.Model
	parts map[entity.Part]port.Part
	grid  port.GridWidget

	descriptor             entity.LayoutDescriptor
	mainContainerDimension entity.Dimension
	runtime                runtimeState
	toRestore              containersToRestore
	zen                    zenState

	initialized bool
	restore     *restoreState

	events    events
	disposers []func()
}

// New creates a layout. Parts are registered next, then Init, CreateGrid
// and Restore run in that order.
func New(deps Deps, opts Options) *Layout {
	return &Layout{
		deps:  deps,
		opts:  opts,
		model: layoutstate.NewModel(deps.Store, deps.Config),
		parts: make(map[entity.Part]port.Part),
		runtime: runtimeState{
			windows:      make(map[entity.WindowID]port.Window),
			maximized:    make(map[entity.WindowID]bool),
			activeWindow: entity.MainWindowID,
		},
		restore: newRestoreState(),
	}
}

// RegisterPart attaches the part rendering p.
func (l *Layout) RegisterPart(p entity.Part, part port.Part) error {
	if !p.Valid() || part == nil {
		return fmt.Errorf("register part %d: %w", int(p), ErrUnknownPart)
	}
	l.parts[p] = part
	return nil
}

// Part returns the registered part.
func (l *Layout) Part(p entity.Part) (port.Part, error) {
	part, ok := l.parts[p]
	if !ok {
		return nil, fmt.Errorf("part %s: %w", p, ErrUnknownPart)
	}
	return part, nil
}

// Model exposes the layout state model.
func (l *Layout) Model() *layoutstate.Model {
	return l.model
}

// Grid returns the live grid, nil before CreateGrid.
func (l *Layout) Grid() port.GridWidget {
	return l.grid
}

// LayoutDescriptor describes the arrangement the grid was created with.
func (l *Layout) LayoutDescriptor() entity.LayoutDescriptor {
	return l.descriptor
}

// Init loads the layout state and subscribes to state and settings
// changes. Parts must be registered first.
func (l *Layout) Init(ctx context.Context) {
	ctx = logging.WithComponent(ctx, "layout")
	log := logging.FromContext(ctx)

	l.model.Load(ctx, layoutstate.LoadOptions{
		ContainerDimension: l.deps.MainWindow.Dimension(),
		EmptyWorkspace:     l.opts.EmptyWorkspace,
		ResetLayout:        l.opts.ResetLayout,
	})

	// Both hidden would leave an empty workbench.
	if l.model.Bool(layoutstate.PanelHidden) && l.model.Bool(layoutstate.EditorHidden) {
		l.model.SetRuntimeValue(ctx, layoutstate.EditorHidden, false)
	}

	l.disposers = append(l.disposers,
		l.model.OnDidChangeState(func(c layoutstate.StateChange) {
			l.onStateChanged(ctx, c)
		}),
		l.deps.Config.OnDidChangeConfiguration(func(e port.ConfigurationChangeEvent) {
			l.onConfigurationUpdated(ctx, e)
		}),
	)

	l.runtime.windows[entity.MainWindowID] = l.deps.MainWindow
	if id := l.deps.Host.ActiveWindowID(); id != 0 {
		l.runtime.activeWindow = id
	}
	l.runtime.hasFocus = l.deps.Host.HasFocus()
	l.runtime.mainWindowFullscreen = l.deps.Host.IsFullScreen(entity.MainWindowID)

	l.toRestore = containersToRestore{
		sideBar:      l.containerToRestore(ctx, port.LocationSidebar, layoutstate.SideBarHidden),
		panel:        l.containerToRestore(ctx, port.LocationPanel, layoutstate.PanelHidden),
		auxiliaryBar: l.containerToRestore(ctx, port.LocationAuxiliaryBar, layoutstate.AuxiliaryBarHidden),
	}

	l.updateWindowBorder(ctx, true)

	log.Debug().
		Str("sidebar", l.toRestore.sideBar).
		Str("panel", l.toRestore.panel).
		Str("auxiliarybar", l.toRestore.auxiliaryBar).
		Bool("fullscreen", l.runtime.mainWindowFullscreen).
		Msg("layout initialized")
}

// containerToRestore picks the view container a visible location reopens.
// A location with nothing to show is hidden instead.
func (l *Layout) containerToRestore(ctx context.Context, loc port.ViewContainerLocation, hiddenKey *entity.StateKey) string {
	if l.model.Bool(hiddenKey) {
		return ""
	}
	id := l.deps.PaneComposites.LastActivePaneCompositeID(loc)
	if id == "" {
		id, _ = l.deps.ViewDescriptors.DefaultViewContainerID(loc)
	}
	if id == "" {
		l.model.SetRuntimeValue(ctx, hiddenKey, true)
	}
	return id
}

// CreateGrid builds the grid from the layout state. Every part must be
// registered.
func (l *Layout) CreateGrid(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "layout")

	views := make(map[entity.Part]port.View, len(l.parts))
	for _, p := range entity.AllParts() {
		part, ok := l.parts[p]
		if !ok {
			return fmt.Errorf("create grid: part %s: %w", p, ErrUnknownPart)
		}
		views[p] = part
	}

	in := composition.Input{
		Container: l.deps.MainWindow.Dimension(),

		TitleBarHeight:   l.parts[entity.PartTitleBar].MinimumHeight(),
		BannerHeight:     l.parts[entity.PartBanner].MinimumHeight(),
		StatusBarHeight:  l.parts[entity.PartStatusBar].MinimumHeight(),
		ActivityBarWidth: l.parts[entity.PartActivityBar].MinimumWidth(),

		SideBarSize:      l.model.Number(layoutstate.SideBarSize),
		AuxiliaryBarSize: l.model.Number(layoutstate.AuxiliaryBarSize),
		PanelSize:        l.model.Number(layoutstate.PanelSize),

		TitleBarVisible:     l.shouldShowCustomTitleBar(entity.MainWindowID),
		BannerVisible:       false,
		ActivityBarVisible:  !l.model.Bool(layoutstate.ActivityBarHidden),
		SideBarVisible:      !l.model.Bool(layoutstate.SideBarHidden),
		EditorVisible:       !l.model.Bool(layoutstate.EditorHidden),
		PanelVisible:        !l.model.Bool(layoutstate.PanelHidden),
		AuxiliaryBarVisible: !l.model.Bool(layoutstate.AuxiliaryBarHidden),
		StatusBarVisible:    !l.model.Bool(layoutstate.StatusBarHidden),

		SideBarPosition: l.SideBarPosition(),
		PanelPosition:   l.PanelPosition(),
		PanelAlignment:  l.PanelAlignment(),

		BannerFirst: l.opts.IsWeb && !l.opts.WindowControlsOverlay,
	}
	if l.runtime.mainWindowBorder {
		in.Container = in.Container.Shrink(windowBorderSize)
	}

	desc, descriptor := composition.CreateGridDescriptor(in)
	grid, err := l.deps.Grids.Deserialize(desc, views)
	if err != nil {
		return fmt.Errorf("create grid: %w", err)
	}
	l.grid = grid
	l.descriptor = descriptor
	l.runtime.gridPanelPosition = in.PanelPosition
	l.grid.SetEdgeSnapping(l.runtime.mainWindowFullscreen)

	for p, part := range l.parts {
		part.SetVisible(grid.IsViewVisible(p))
		l.disposers = append(l.disposers, part.OnDidVisibilityChange(func(visible bool) {
			l.onPartVisibilityChanged(ctx, p, visible)
		}))
	}

	logLayoutDescriptor(logging.FromContext(ctx), descriptor)
	return nil
}

func logLayoutDescriptor(log *zerolog.Logger, d entity.LayoutDescriptor) {
	log.Info().
		Bool("activitybar", d.ActivityBarVisible).
		Bool("sidebar", d.SideBarVisible).
		Bool("auxiliarybar", d.AuxiliaryBarVisible).
		Bool("panel", d.PanelVisible).
		Bool("statusbar", d.StatusBarVisible).
		Str("sidebar_position", d.SideBarPosition.String()).
		Str("panel_position", d.PanelPosition.String()).
		Msg("workbench grid created")
}

// Layout sizes the grid to the main window, less the window border.
func (l *Layout) Layout(ctx context.Context) {
	if !l.gridReady(ctx, "layout") {
		return
	}
	dim := l.deps.MainWindow.Dimension()
	if l.runtime.mainWindowBorder {
		dim = dim.Shrink(windowBorderSize)
	}
	l.mainContainerDimension = dim

	l.grid.SetEdgeSnapping(l.runtime.mainWindowFullscreen)
	l.grid.Layout(dim.Width, dim.Height)
	l.initialized = true

	logging.FromContext(ctx).Trace().
		Float64("width", dim.Width).
		Float64("height", dim.Height).
		Msg("main container laid out")
	l.events.didLayoutMainContainer.Fire(dim)
}

// MainContainerDimension is the size of the last main layout.
func (l *Layout) MainContainerDimension() entity.Dimension {
	return l.mainContainerDimension
}

// SaveState writes the current side bar, panel and auxiliary bar sizes
// into the initialization values and persists the model.
func (l *Layout) SaveState(ctx context.Context) error {
	if l.grid != nil {
		l.model.SetInitializationValue(layoutstate.SideBarSize, l.partSize(entity.PartSideBar, entity.OrientationHorizontal))
		l.model.SetInitializationValue(layoutstate.AuxiliaryBarSize, l.partSize(entity.PartAuxiliaryBar, entity.OrientationHorizontal))

		axis := entity.OrientationHorizontal
		if l.PanelPosition().IsHorizontal() {
			axis = entity.OrientationVertical
		}
		l.model.SetInitializationValue(layoutstate.PanelSize, l.partSize(entity.PartPanel, axis))
	}
	if err := l.model.Save(ctx, true, true); err != nil {
		return fmt.Errorf("save layout state: %w", err)
	}
	return nil
}

// partSize is the part's extent along axis, or its cached size when hidden.
func (l *Layout) partSize(p entity.Part, axis entity.Orientation) float64 {
	if cached, ok := l.grid.GetViewCachedVisibleSize(p); ok {
		return cached
	}
	size := l.grid.GetViewSize(p)
	if axis == entity.OrientationVertical {
		return size.Height
	}
	return size.Width
}

// Dispose drops every listener the layout registered.
func (l *Layout) Dispose() {
	for _, d := range l.disposers {
		d()
	}
	l.disposers = nil
	l.model.Dispose()
}

// gridReady reports whether the grid exists; mutations before that are
// ignored.
func (l *Layout) gridReady(ctx context.Context, op string) bool {
	if l.grid != nil {
		return true
	}
	logging.FromContext(ctx).Debug().Str("op", op).Msg("grid not created yet, ignoring")
	return false
}
