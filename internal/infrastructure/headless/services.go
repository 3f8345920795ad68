package headless

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

// ErrUnknownViewContainer is returned when opening a container that is
// not registered at the requested location.
var ErrUnknownViewContainer = errors.New("unknown view container")

// ViewContainer is a registered pane composite.
type ViewContainer struct {
	ID       string
	Location port.ViewContainerLocation
	HasViews bool
	Default  bool
}

// DefaultViewContainers mirrors a stock workbench: explorer, search and
// source control in the side bar, terminal, output and problems in the
// panel, chat in the auxiliary bar.
func DefaultViewContainers() []ViewContainer {
	return []ViewContainer{
		{ID: "workbench.view.explorer", Location: port.LocationSidebar, HasViews: true, Default: true},
		{ID: "workbench.view.search", Location: port.LocationSidebar, HasViews: true},
		{ID: "workbench.view.scm", Location: port.LocationSidebar, HasViews: true},
		{ID: "workbench.panel.terminal", Location: port.LocationPanel, HasViews: true, Default: true},
		{ID: "workbench.panel.output", Location: port.LocationPanel, HasViews: true},
		{ID: "workbench.panel.markers", Location: port.LocationPanel, HasViews: true},
		{ID: "workbench.panel.chat", Location: port.LocationAuxiliaryBar, HasViews: true, Default: true},
	}
}

// PaneComposites implements port.PaneCompositeService and
// port.ViewDescriptorService over a static registry.
type PaneComposites struct {
	parts *Parts

	mu         sync.Mutex
	containers []ViewContainer
	active     map[port.ViewContainerLocation]string
	lastActive map[port.ViewContainerLocation]string
}

var (
	_ port.PaneCompositeService  = (*PaneComposites)(nil)
	_ port.ViewDescriptorService = (*PaneComposites)(nil)
)

// NewPaneComposites registers containers in order. Opening with focus
// focuses the hosting part in parts.
func NewPaneComposites(parts *Parts, containers ...ViewContainer) *PaneComposites {
	return &PaneComposites{
		parts:      parts,
		containers: containers,
		active:     make(map[port.ViewContainerLocation]string),
		lastActive: make(map[port.ViewContainerLocation]string),
	}
}

func hostPart(loc port.ViewContainerLocation) entity.Part {
	switch loc {
	case port.LocationPanel:
		return entity.PartPanel
	case port.LocationAuxiliaryBar:
		return entity.PartAuxiliaryBar
	default:
		return entity.PartSideBar
	}
}

func (s *PaneComposites) lookupLocked(id string) (ViewContainer, bool) {
	for _, c := range s.containers {
		if c.ID == id {
			return c, true
		}
	}
	return ViewContainer{}, false
}

func (s *PaneComposites) ActivePaneCompositeID(loc port.ViewContainerLocation) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.active[loc]
	return id, ok
}

func (s *PaneComposites) LastActivePaneCompositeID(loc port.ViewContainerLocation) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive[loc]
}

func (s *PaneComposites) OpenPaneComposite(_ context.Context, id string, loc port.ViewContainerLocation, focus bool) error {
	s.mu.Lock()
	c, ok := s.lookupLocked(id)
	if !ok || c.Location != loc {
		s.mu.Unlock()
		return fmt.Errorf("open %s at %s: %w", id, loc, ErrUnknownViewContainer)
	}
	s.active[loc] = id
	s.lastActive[loc] = id
	s.mu.Unlock()

	if focus && s.parts != nil {
		s.parts.Get(hostPart(loc)).Focus()
	}
	return nil
}

func (s *PaneComposites) HideActivePaneComposite(loc port.ViewContainerLocation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, loc)
}

func (s *PaneComposites) PaneCompositeIDs(loc port.ViewContainerLocation) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for _, c := range s.containers {
		if c.Location == loc {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (s *PaneComposites) DefaultViewContainerID(loc port.ViewContainerLocation) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.containers {
		if c.Location == loc && c.Default {
			return c.ID, true
		}
	}
	return "", false
}

func (s *PaneComposites) ViewContainerHasViews(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.lookupLocked(id)
	return ok && c.HasViews
}

// EditorGroups is a headless port.EditorGroupService. The ready and
// restored signals stay pending until MarkReady and MarkRestored.
type EditorGroups struct {
	parts *Parts

	readyOnce    sync.Once
	restoredOnce sync.Once
	ready        chan struct{}
	restored     chan struct{}

	mu        sync.Mutex
	count     int
	maximized bool
	centered  bool
	tabs      entity.EditorTabsMode
}

var _ port.EditorGroupService = (*EditorGroups)(nil)

// NewEditorGroups creates a single editor group showing multiple tabs.
func NewEditorGroups(parts *Parts) *EditorGroups {
	return &EditorGroups{
		parts:    parts,
		ready:    make(chan struct{}),
		restored: make(chan struct{}),
		count:    1,
		tabs:     entity.EditorTabsMultiple,
	}
}

// MarkReady releases WhenReady.
func (g *EditorGroups) MarkReady() {
	g.readyOnce.Do(func() { close(g.ready) })
}

// MarkRestored releases WhenRestored.
func (g *EditorGroups) MarkRestored() {
	g.restoredOnce.Do(func() { close(g.restored) })
}

func (g *EditorGroups) WhenReady(ctx context.Context) error {
	select {
	case <-g.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *EditorGroups) WhenRestored(ctx context.Context) error {
	select {
	case <-g.restored:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *EditorGroups) GroupCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count
}

// SetGroups sets the group count and whether one of them is maximized.
func (g *EditorGroups) SetGroups(count int, maximized bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count = max(1, count)
	g.maximized = maximized
}

func (g *EditorGroups) HasMaximizedGroup() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.maximized
}

func (g *EditorGroups) IsLayoutCentered() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.centered
}

func (g *EditorGroups) CenterLayout(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.centered = active
}

// EnforceTabsMode overrides the tabs mode; the returned func restores the
// previous mode once.
func (g *EditorGroups) EnforceTabsMode(mode entity.EditorTabsMode) func() {
	g.mu.Lock()
	prev := g.tabs
	g.tabs = mode
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.tabs = prev
			g.mu.Unlock()
		})
	}
}

// TabsMode returns the effective tabs mode.
func (g *EditorGroups) TabsMode() entity.EditorTabsMode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tabs
}

func (g *EditorGroups) Focus() {
	if g.parts != nil {
		g.parts.Get(entity.PartEditor).Focus()
	}
}

// Editors is a headless port.EditorService that records what it was
// asked to open.
type Editors struct {
	mu          sync.Mutex
	opened      []port.EditorRequest
	complex     bool
	lineNumbers entity.LineNumbersMode
}

var _ port.EditorService = (*Editors)(nil)

// NewEditors creates an editor service with line numbers on.
func NewEditors() *Editors {
	return &Editors{lineNumbers: entity.LineNumbersOn}
}

func (e *Editors) OpenEditors(_ context.Context, requests []port.EditorRequest) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range requests {
		if r.Resource == "" {
			return fmt.Errorf("open editor in group %d: empty resource", r.Group)
		}
		e.opened = append(e.opened, r)
	}
	return nil
}

// Opened returns the editors opened so far, in order.
func (e *Editors) Opened() []port.EditorRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]port.EditorRequest(nil), e.opened...)
}

func (e *Editors) ActiveEditorIsComplex() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.complex
}

// SetActiveEditorComplex marks the active editor as a diff editor.
func (e *Editors) SetActiveEditorComplex(complex bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.complex = complex
}

func (e *Editors) SetLineNumbers(mode entity.LineNumbersMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lineNumbers = mode
}

func (e *Editors) ResetLineNumbers() {
	e.SetLineNumbers(entity.LineNumbersOn)
}

// LineNumbers returns the mode applied to visible editors.
func (e *Editors) LineNumbers() entity.LineNumbersMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lineNumbers
}

// Notifications is a headless port.NotificationService.
type Notifications struct {
	mu     sync.Mutex
	filter entity.NotificationsFilter
}

var _ port.NotificationService = (*Notifications)(nil)

// NewNotifications starts with every notification shown.
func NewNotifications() *Notifications {
	return &Notifications{filter: entity.NotificationsFilterOff}
}

func (n *Notifications) Filter() entity.NotificationsFilter {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.filter
}

func (n *Notifications) SetFilter(filter entity.NotificationsFilter) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.filter = filter
}
