package headless

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Window is a headless top-level window with a fixed size.
type Window struct {
	id entity.WindowID

	mu          sync.Mutex
	dim         entity.Dimension
	border      bool
	borderColor string
}

var _ port.Window = (*Window)(nil)

// NewWindow creates a window of the given size.
func NewWindow(id entity.WindowID, width, height float64) *Window {
	return &Window{id: id, dim: entity.Dimension{Width: width, Height: height}}
}

func (w *Window) ID() entity.WindowID { return w.id }

func (w *Window) Container() port.Container {
	return container(fmt.Sprintf("window-%d", w.id))
}

func (w *Window) Dimension() entity.Dimension {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dim
}

// Resize changes the window size. Callers relayout afterwards.
func (w *Window) Resize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dim = entity.Dimension{Width: width, Height: height}
}

func (w *Window) SetBorder(visible bool, color string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.border = visible
	w.borderColor = color
}

// Border returns the border state last applied.
func (w *Window) Border() (visible bool, color string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.border, w.borderColor
}

// FullScreenChange is fired when the host toggles full screen.
type FullScreenChange struct {
	Window     entity.WindowID
	FullScreen bool
}

// Host is a headless port.HostService. Full screen toggles are reported
// through OnDidChangeFullScreen so the caller can forward them to the
// layout, as a real window manager would.
type Host struct {
	mu         sync.Mutex
	fullscreen map[entity.WindowID]bool
	focused    bool
	active     entity.WindowID
	menuBar    bool

	fullscreenChanges event.Emitter[FullScreenChange]
}

var _ port.HostService = (*Host)(nil)

// NewHost creates a focused host whose main window is active.
func NewHost() *Host {
	return &Host{
		fullscreen: make(map[entity.WindowID]bool),
		focused:    true,
		active:     entity.MainWindowID,
		menuBar:    true,
	}
}

func (h *Host) ToggleFullScreen(_ context.Context, window entity.WindowID) error {
	h.mu.Lock()
	fs := !h.fullscreen[window]
	h.fullscreen[window] = fs
	h.mu.Unlock()

	h.fullscreenChanges.Fire(FullScreenChange{Window: window, FullScreen: fs})
	return nil
}

// OnDidChangeFullScreen registers a listener for full screen toggles.
func (h *Host) OnDidChangeFullScreen(fn func(FullScreenChange)) func() {
	return h.fullscreenChanges.Subscribe(fn)
}

func (h *Host) IsFullScreen(window entity.WindowID) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fullscreen[window]
}

func (h *Host) HasFocus() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.focused
}

// SetFocus records whether the application has focus.
func (h *Host) SetFocus(focused bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focused = focused
}

func (h *Host) ActiveWindowID() entity.WindowID {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// SetActiveWindow records the active window.
func (h *Host) SetActiveWindow(id entity.WindowID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = id
}

func (h *Host) ToggleMenuBar(context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.menuBar = !h.menuBar
	return nil
}

// NativeMenuBarVisible reports the native menu bar state.
func (h *Host) NativeMenuBarVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.menuBar
}
