package port

// Container is the host-side handle of a part's root element.
type Container interface {
	ID() string
}

// Part is a rendered chrome region. The layout engine only decides its
// presence, size and position; the part owns its content.
type Part interface {
	View

	Container() Container
	UpdateStyles()
	Focus()
	HasFocus() bool

	// SetVisible notifies the part that the grid shows or hides it.
	SetVisible(visible bool)

	// OnDidVisibilityChange registers a listener for visibility changes.
	OnDidVisibilityChange(fn func(visible bool)) (unsubscribe func())
}
