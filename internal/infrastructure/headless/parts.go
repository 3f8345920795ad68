// Package headless provides in-memory implementations of the parts and
// workbench services, used by the CLI and by tests. Nothing is rendered;
// each part records the box the grid gave it.
package headless

import (
	"math"
	"sync"

	"github.com/bnema/shellgrid/internal/application/event"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Default part constraints in pixels.
const (
	TitleBarHeight   = 35
	BannerHeight     = 26
	StatusBarHeight  = 22
	ActivityBarWidth = 48
	PaneMinWidth     = 170
	EditorMinWidth   = 220
	EditorMinHeight  = 70
	PanelMinWidth    = 300
	PanelMinHeight   = 77
)

type constraints struct {
	minW, maxW, minH, maxH float64
	priority               port.LayoutPriority
}

func defaultConstraints(p entity.Part) constraints {
	inf := math.Inf(1)
	switch p {
	case entity.PartTitleBar:
		return constraints{maxW: inf, minH: TitleBarHeight, maxH: TitleBarHeight}
	case entity.PartBanner:
		return constraints{maxW: inf, minH: BannerHeight, maxH: BannerHeight}
	case entity.PartStatusBar:
		return constraints{maxW: inf, minH: StatusBarHeight, maxH: StatusBarHeight}
	case entity.PartActivityBar:
		return constraints{minW: ActivityBarWidth, maxW: ActivityBarWidth, maxH: inf}
	case entity.PartSideBar, entity.PartAuxiliaryBar:
		return constraints{minW: PaneMinWidth, maxW: inf, maxH: inf, priority: port.PriorityLow}
	case entity.PartPanel:
		return constraints{minW: PanelMinWidth, maxW: inf, minH: PanelMinHeight, maxH: inf, priority: port.PriorityLow}
	default:
		return constraints{minW: EditorMinWidth, maxW: inf, minH: EditorMinHeight, maxH: inf, priority: port.PriorityHigh}
	}
}

type container string

func (c container) ID() string { return string(c) }

// Parts owns one Part per workbench region and tracks which one has focus.
type Parts struct {
	mu      sync.Mutex
	parts   map[entity.Part]*Part
	focused entity.Part
	hasFoc  bool
}

// NewParts creates every part with the default constraints.
func NewParts() *Parts {
	ps := &Parts{parts: make(map[entity.Part]*Part, len(entity.AllParts()))}
	for _, p := range entity.AllParts() {
		ps.parts[p] = &Part{id: p, owner: ps, c: defaultConstraints(p), visible: true}
	}
	return ps
}

// Get returns the part for p.
func (ps *Parts) Get(p entity.Part) *Part {
	return ps.parts[p]
}

// Focused returns the focused part, if any.
func (ps *Parts) Focused() (entity.Part, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.focused, ps.hasFoc
}

// Rects returns the last box of every visible part.
func (ps *Parts) Rects() map[entity.Part]entity.Rect {
	out := make(map[entity.Part]entity.Rect, len(ps.parts))
	for id, p := range ps.parts {
		if box, ok := p.Box(); ok {
			out[id] = box
		}
	}
	return out
}

func (ps *Parts) focus(p entity.Part) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.focused, ps.hasFoc = p, true
}

func (ps *Parts) blur(p entity.Part) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.hasFoc && ps.focused == p {
		ps.hasFoc = false
	}
}

func (ps *Parts) isFocused(p entity.Part) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.hasFoc && ps.focused == p
}

// Part is a headless port.Part.
type Part struct {
	id    entity.Part
	owner *Parts
	c     constraints

	mu         sync.Mutex
	box        entity.Rect
	laidOut    bool
	visible    bool
	styleCount int
	visibility event.Emitter[bool]
}

var _ port.Part = (*Part)(nil)

func (p *Part) MinimumWidth() float64         { return p.c.minW }
func (p *Part) MaximumWidth() float64         { return p.c.maxW }
func (p *Part) MinimumHeight() float64        { return p.c.minH }
func (p *Part) MaximumHeight() float64        { return p.c.maxH }
func (p *Part) Priority() port.LayoutPriority { return p.c.priority }
func (p *Part) Container() port.Container     { return container(p.id.String()) }
func (p *Part) HasFocus() bool                { return p.owner.isFocused(p.id) }
func (p *Part) Focus()                        { p.owner.focus(p.id) }

// Layout records the box assigned by the grid.
func (p *Part) Layout(width, height, top, left float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.box = entity.Rect{X: left, Y: top, Width: width, Height: height}
	p.laidOut = true
}

// Box returns the last assigned box; ok is false while hidden or before
// the first layout.
func (p *Part) Box() (entity.Rect, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.box, p.laidOut && p.visible
}

// UpdateStyles counts restyles, e.g. after the side bar moved.
func (p *Part) UpdateStyles() {
	p.mu.Lock()
	p.styleCount++
	p.mu.Unlock()
}

// StyleUpdates returns how often UpdateStyles ran.
func (p *Part) StyleUpdates() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.styleCount
}

// Visible reports the last visibility the grid applied.
func (p *Part) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// SetVisible updates visibility and notifies listeners on change. A part
// losing visibility also loses focus.
func (p *Part) SetVisible(visible bool) {
	p.mu.Lock()
	changed := p.visible != visible
	p.visible = visible
	p.mu.Unlock()

	if !visible {
		p.owner.blur(p.id)
	}
	if changed {
		p.visibility.Fire(visible)
	}
}

// OnDidVisibilityChange implements port.Part.
func (p *Part) OnDidVisibilityChange(fn func(visible bool)) func() {
	return p.visibility.Subscribe(fn)
}
