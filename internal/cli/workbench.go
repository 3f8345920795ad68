package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/infrastructure/headless"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/bnema/shellgrid/internal/ui/layout"
)

// Default window size in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// SessionOptions configure OpenWorkbench.
type SessionOptions struct {
	Width, Height float64
	ResetLayout   bool
	Files         []string
	DefaultViews  []workbench.DefaultView
}

// Session is a workbench laid out on headless parts. Commands open one,
// mutate the layout and close it to persist the state.
type Session struct {
	Layout        *workbench.Layout
	Parts         *headless.Parts
	Window        *headless.Window
	Host          *headless.Host
	Panes         *headless.PaneComposites
	Groups        *headless.EditorGroups
	Editors       *headless.Editors
	Notifications *headless.Notifications
	Trace         *logging.RestoreTrace

	app       *App
	disposers []func()
}

// OpenWorkbench builds the layout for the app's workspace and waits until
// it is restored.
func (a *App) OpenWorkbench(ctx context.Context, opts SessionOptions) (*Session, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	ctx = logging.WithComponent(ctx, "cli")
	log := logging.FromContext(ctx)

	parts := headless.NewParts()
	s := &Session{
		Parts:         parts,
		Window:        headless.NewWindow(entity.MainWindowID, opts.Width, opts.Height),
		Host:          headless.NewHost(),
		Panes:         headless.NewPaneComposites(parts, headless.DefaultViewContainers()...),
		Groups:        headless.NewEditorGroups(parts),
		Editors:       headless.NewEditors(),
		Notifications: headless.NewNotifications(),
		Trace:         logging.NewRestoreTrace(log),
		app:           a,
	}

	editors := make([]port.EditorRequest, 0, len(opts.Files))
	for _, f := range opts.Files {
		editors = append(editors, port.EditorRequest{Resource: f})
	}

	s.Layout = workbench.New(workbench.Deps{
		Store:           a.Store,
		Config:          a.Settings,
		Grids:           layout.NewFactory(ctx),
		PaneComposites:  s.Panes,
		ViewDescriptors: s.Panes,
		EditorGroups:    s.Groups,
		Editors:         s.Editors,
		Host:            s.Host,
		Notifications:   s.Notifications,
		Theme:           a.Palette,
		MainWindow:      s.Window,
	}, workbench.Options{
		ResetLayout:    opts.ResetLayout,
		EmptyWorkspace: a.Workspace.Folder == "",
		EditorsToOpen:  editors,
		DefaultViews:   opts.DefaultViews,
	})

	for _, p := range entity.AllParts() {
		if err := s.Layout.RegisterPart(p, parts.Get(p)); err != nil {
			s.Layout.Dispose()
			return nil, fmt.Errorf("register %s: %w", p.ShortName(), err)
		}
	}
	s.disposers = append(s.disposers, s.Host.OnDidChangeFullScreen(func(c headless.FullScreenChange) {
		s.Layout.OnFullscreenChanged(ctx, c.Window, c.FullScreen)
	}))
	s.Trace.Mark("parts_registered")

	s.Layout.Init(ctx)
	s.Trace.Mark("state_loaded")

	if err := s.Layout.CreateGrid(ctx); err != nil {
		s.dispose()
		return nil, fmt.Errorf("create grid: %w", err)
	}
	s.Trace.Mark("grid_created")

	s.Layout.Layout(ctx)
	s.Trace.Mark("first_layout")

	if err := s.Layout.Restore(ctx); err != nil {
		s.dispose()
		return nil, fmt.Errorf("restore layout: %w", err)
	}
	s.Groups.MarkReady()
	s.Groups.MarkRestored()

	select {
	case <-s.Layout.WhenReady():
		s.Trace.Mark("ready")
	case <-ctx.Done():
		s.dispose()
		return nil, ctx.Err()
	}
	select {
	case <-s.Layout.WhenRestored():
		s.Trace.Mark("restored")
	case <-ctx.Done():
		s.dispose()
		return nil, ctx.Err()
	}
	s.Trace.Finish()

	if a.States != nil {
		if err := a.States.TouchWorkspace(ctx, a.Workspace.Folder); err != nil {
			log.Warn().Err(err).Msg("failed to record workspace")
		}
	}
	return s, nil
}

// Resize lays the workbench out at a new window size.
func (s *Session) Resize(ctx context.Context, width, height float64) {
	s.Window.Resize(width, height)
	s.Layout.Layout(ctx)
}

// Close saves the layout state and releases the session's listeners.
func (s *Session) Close(ctx context.Context) error {
	err := s.Layout.SaveState(ctx)
	s.dispose()
	return err
}

// Discard releases the session without saving its layout state.
func (s *Session) Discard() {
	s.dispose()
}

func (s *Session) dispose() {
	for _, d := range s.disposers {
		d()
	}
	s.disposers = nil
	s.Layout.Dispose()
}

// PartBox is a part's visibility and box in the last layout.
type PartBox struct {
	Part    string  `json:"part" yaml:"part"`
	Visible bool    `json:"visible" yaml:"visible"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
}

// Snapshot is the serializable state of a session.
type Snapshot struct {
	Workspace       Workspace               `json:"workspace" yaml:"workspace"`
	Window          entity.Dimension        `json:"window" yaml:"window"`
	SideBarPosition entity.Position         `json:"sideBarPosition" yaml:"sideBarPosition"`
	PanelPosition   entity.Position         `json:"panelPosition" yaml:"panelPosition"`
	PanelAlignment  entity.PanelAlignment   `json:"panelAlignment" yaml:"panelAlignment"`
	PanelMaximized  bool                    `json:"panelMaximized" yaml:"panelMaximized"`
	ZenMode         bool                    `json:"zenMode" yaml:"zenMode"`
	EditorCentered  bool                    `json:"editorCentered" yaml:"editorCentered"`
	ContainerOffset entity.ContainerOffset  `json:"containerOffset" yaml:"containerOffset"`
	Startup         entity.LayoutDescriptor `json:"startup" yaml:"startup"`
	Parts           []PartBox               `json:"parts" yaml:"parts"`
	Grid            *entity.GridDescriptor  `json:"grid,omitempty" yaml:"grid,omitempty"`
	Milestones      []logging.Milestone     `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}

// Snapshot captures the current layout.
func (s *Session) Snapshot() Snapshot {
	l := s.Layout
	snap := Snapshot{
		Workspace:       s.app.Workspace,
		Window:          s.Window.Dimension(),
		SideBarPosition: l.SideBarPosition(),
		PanelPosition:   l.PanelPosition(),
		PanelAlignment:  l.PanelAlignment(),
		PanelMaximized:  l.IsPanelMaximized(),
		ZenMode:         l.IsZenModeActive(),
		EditorCentered:  l.IsMainEditorLayoutCentered(),
		ContainerOffset: l.MainContainerOffset(),
		Startup:         l.LayoutDescriptor(),
		Milestones:      s.Trace.Milestones(),
	}

	rects := s.Parts.Rects()
	if g, ok := l.Grid().(*layout.Grid); ok {
		rects = g.Rects()
		desc := g.Serialize()
		snap.Grid = &desc
	}
	for _, p := range entity.AllParts() {
		box := PartBox{Part: p.ShortName(), Visible: l.IsVisible(p, entity.MainWindowID)}
		if r, ok := rects[p]; ok && box.Visible {
			box.X, box.Y, box.Width, box.Height = r.X, r.Y, r.Width, r.Height
		}
		snap.Parts = append(snap.Parts, box)
	}
	return snap
}

// VisibleParts lists the short names of visible parts, sorted.
func (snap Snapshot) VisibleParts() []string {
	var names []string
	for _, b := range snap.Parts {
		if b.Visible {
			names = append(names, b.Part)
		}
	}
	sort.Strings(names)
	return names
}
