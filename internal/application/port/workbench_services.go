package port

import (
	"context"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// ViewContainerLocation is where a pane composite is hosted.
type ViewContainerLocation int

const (
	LocationSidebar ViewContainerLocation = iota
	LocationPanel
	LocationAuxiliaryBar
)

// String returns a human-readable representation of the location.
func (l ViewContainerLocation) String() string {
	switch l {
	case LocationSidebar:
		return "sidebar"
	case LocationPanel:
		return "panel"
	case LocationAuxiliaryBar:
		return "auxiliarybar"
	default:
		return "unknown"
	}
}

// PaneCompositeService opens and hides the view containers shown inside
// the side bar, panel and auxiliary bar.
type PaneCompositeService interface {
	// ActivePaneCompositeID returns the open container at loc, if any.
	ActivePaneCompositeID(loc ViewContainerLocation) (string, bool)

	// LastActivePaneCompositeID returns the container that was last open at loc.
	LastActivePaneCompositeID(loc ViewContainerLocation) string

	OpenPaneComposite(ctx context.Context, id string, loc ViewContainerLocation, focus bool) error
	HideActivePaneComposite(loc ViewContainerLocation)

	// PaneCompositeIDs lists the pinned/visible containers at loc in order.
	PaneCompositeIDs(loc ViewContainerLocation) []string
}

// ViewDescriptorService answers questions about registered view containers.
type ViewDescriptorService interface {
	DefaultViewContainerID(loc ViewContainerLocation) (string, bool)
	ViewContainerHasViews(id string) bool
}

// EditorRequest is one editor to open during restoration.
type EditorRequest struct {
	Resource string
	Group    int
}

// EditorGroupService manages the editor area's groups.
type EditorGroupService interface {
	// WhenReady blocks until the groups exist.
	WhenReady(ctx context.Context) error
	// WhenRestored blocks until the groups have restored their editors.
	WhenRestored(ctx context.Context) error

	GroupCount() int
	HasMaximizedGroup() bool
	IsLayoutCentered() bool
	CenterLayout(active bool)

	// EnforceTabsMode overrides the tabs mode until the returned func runs.
	EnforceTabsMode(mode entity.EditorTabsMode) (restore func())

	Focus()
}

// EditorService opens editors and adjusts the visible ones.
type EditorService interface {
	OpenEditors(ctx context.Context, requests []EditorRequest) error
	// ActiveEditorIsComplex reports diff or side-by-side editors.
	ActiveEditorIsComplex() bool
	SetLineNumbers(mode entity.LineNumbersMode)
	// ResetLineNumbers restores each editor's configured mode.
	ResetLineNumbers()
}

// HostService is the native window host.
type HostService interface {
	ToggleFullScreen(ctx context.Context, window entity.WindowID) error
	IsFullScreen(window entity.WindowID) bool
	HasFocus() bool
	ActiveWindowID() entity.WindowID
	// ToggleMenuBar flips the native menu bar where the platform has one.
	ToggleMenuBar(ctx context.Context) error
}

// NotificationService exposes the do-not-disturb filter.
type NotificationService interface {
	Filter() entity.NotificationsFilter
	SetFilter(filter entity.NotificationsFilter)
}

// ThemeService provides window border colors.
type ThemeService interface {
	// WindowBorderColors returns the active and inactive border colors,
	// empty when the theme defines none.
	WindowBorderColors() (active, inactive string)
}

// Window is a top-level window observed by the layout engine.
type Window interface {
	ID() entity.WindowID
	Dimension() entity.Dimension
	Container() Container
	// SetBorder shows or hides the accent border around the window.
	SetBorder(visible bool, color string)
}
