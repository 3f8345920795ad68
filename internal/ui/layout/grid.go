// Package layout provides the in-memory splitter grid the workbench lays
// its parts out with. A grid is a tree of branches whose orientation
// alternates by depth; leaves wrap one part's view.
package layout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/rs/zerolog"
)

// ErrNilRoot is returned when deserializing a descriptor without a root.
var ErrNilRoot = errors.New("root node is nil")

// ErrViewNotFound is returned when a part has no leaf in the grid.
var ErrViewNotFound = errors.New("view not found")

// ErrMissingView is returned when a descriptor leaf has no matching view.
var ErrMissingView = errors.New("missing view for leaf")

type node struct {
	parent   *node
	children []*node

	// orientation is the axis a branch lays its children along. Leaves
	// carry their parent's orientation.
	orientation entity.Orientation

	part entity.Part
	view port.View

	// size is the extent along the parent's axis. Hidden nodes keep it
	// untouched so it doubles as the cached visible size.
	size    float64
	visible bool

	box entity.Rect
}

func (n *node) isLeaf() bool {
	return n.view != nil
}

func (n *node) isVisible() bool {
	if n.isLeaf() {
		return n.visible
	}
	for _, c := range n.children {
		if c.isVisible() {
			return true
		}
	}
	return false
}

func (n *node) indexOf(child *node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Grid implements port.GridWidget.
type Grid struct {
	root   *node
	leaves map[entity.Part]*node

	width, height float64
	edgeSnapping  bool

	// pinned nodes are the last to absorb space during one relayout.
	pinned map[*node]bool

	logger zerolog.Logger
	mu     sync.RWMutex
}

var _ port.GridWidget = (*Grid)(nil)

// Factory implements port.GridFactory.
type Factory struct {
	logger zerolog.Logger
}

var _ port.GridFactory = (*Factory)(nil)

// NewFactory creates a grid factory logging through the context logger.
func NewFactory(ctx context.Context) *Factory {
	log := logging.FromContext(ctx)
	return &Factory{logger: log.With().Str("component", "grid").Logger()}
}

// Deserialize builds a live grid from a descriptor. Every leaf must have a
// view in views.
func (f *Factory) Deserialize(desc entity.GridDescriptor, views map[entity.Part]port.View) (port.GridWidget, error) {
	return Deserialize(desc, views, f.logger)
}

// Deserialize builds a Grid from desc.
func Deserialize(desc entity.GridDescriptor, views map[entity.Part]port.View, logger zerolog.Logger) (*Grid, error) {
	if desc.Root == nil {
		return nil, ErrNilRoot
	}
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid descriptor: %w", err)
	}

	g := &Grid{
		leaves: make(map[entity.Part]*node, len(views)),
		pinned: make(map[*node]bool),
		logger: logger,
	}
	root, err := g.build(desc.Root, nil, desc.Orientation, views)
	if err != nil {
		return nil, err
	}
	g.root = root

	g.logger.Debug().
		Int("leaves", len(g.leaves)).
		Str("orientation", desc.Orientation.String()).
		Msg("grid deserialized")

	if desc.Width > 0 && desc.Height > 0 {
		g.layoutLocked(desc.Width, desc.Height)
	}
	return g, nil
}

func (g *Grid) build(src *entity.GridNode, parent *node, orientation entity.Orientation, views map[entity.Part]port.View) (*node, error) {
	n := &node{parent: parent, orientation: orientation, size: src.Size}
	if src.IsLeaf() {
		view, ok := views[src.Part]
		if !ok || view == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingView, src.Part)
		}
		n.view = view
		n.part = src.Part
		n.visible = src.Visible
		g.leaves[src.Part] = n
		return n, nil
	}
	for _, child := range src.Children {
		c, err := g.build(child, n, orientation.Orthogonal(), views)
		if err != nil {
			return nil, err
		}
		if c.isLeaf() {
			c.orientation = orientation
		}
		n.children = append(n.children, c)
	}
	return n, nil
}

func (g *Grid) leaf(part entity.Part) *node {
	n, ok := g.leaves[part]
	if !ok {
		g.logger.Warn().Str("part", part.String()).Msg("grid has no view for part")
		return nil
	}
	return n
}

// Serialize returns the current tree as a descriptor. Hidden leaves carry
// their cached visible size.
func (g *Grid) Serialize() entity.GridDescriptor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var convert func(n *node) *entity.GridNode
	convert = func(n *node) *entity.GridNode {
		if n.isLeaf() {
			return entity.Leaf(n.part, n.size, n.visible)
		}
		children := make([]*entity.GridNode, 0, len(n.children))
		for _, c := range n.children {
			children = append(children, convert(c))
		}
		return entity.Branch(n.size, children...)
	}

	root := convert(g.root)
	root.Size = g.width
	if g.root.orientation == entity.OrientationHorizontal {
		root.Size = g.height
	}
	return entity.GridDescriptor{
		Root:        root,
		Orientation: g.root.orientation,
		Width:       g.width,
		Height:      g.height,
	}
}

// SetViewVisible shows or hides a view. A hidden view occupies no space
// and is restored at the size it had when hidden.
func (g *Grid) SetViewVisible(part entity.Part, visible bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.leaf(part)
	if n == nil || n.visible == visible {
		return
	}
	n.visible = visible
	if visible {
		g.pinned[n] = true
		if n.parent != nil && n.parent.parent != nil && !n.parent.isVisibleExcept(n) {
			// The whole branch reappears, so it must claim room in its parent too.
			g.pinned[n.parent] = true
		}
	}
	g.relayoutLocked()
}

func (n *node) isVisibleExcept(except *node) bool {
	for _, c := range n.children {
		if c != except && c.isVisible() {
			return true
		}
	}
	return false
}

func (g *Grid) IsViewVisible(part entity.Part) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.leaves[part]
	return ok && n.visible
}

// GetViewCachedVisibleSize returns the size a hidden view will be restored
// to. ok is false while the view is visible.
func (g *Grid) GetViewCachedVisibleSize(part entity.Part) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.leaves[part]
	if !ok || n.visible {
		return 0, false
	}
	return n.size, true
}

func (g *Grid) GetViewSize(part entity.Part) entity.Dimension {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.leaves[part]
	if !ok {
		return entity.Dimension{}
	}
	return entity.Dimension{Width: n.box.Width, Height: n.box.Height}
}

// ResizeView sets the view's extent along its parent's axis, and the
// parent's extent along the grandparent's axis. Siblings absorb the
// difference.
func (g *Grid) ResizeView(part entity.Part, size entity.Dimension) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.leaf(part)
	if n == nil || n.parent == nil {
		return
	}

	parent := n.parent
	n.size = g.clamp(n, parent.orientation, along(size, parent.orientation))
	g.pinned[n] = true

	if grand := parent.parent; grand != nil {
		parent.size = g.clamp(parent, grand.orientation, along(size, grand.orientation))
		g.pinned[parent] = true
	}
	g.relayoutLocked()
}

func (g *Grid) EdgeSnapping() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeSnapping
}

func (g *Grid) SetEdgeSnapping(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.edgeSnapping = enabled
}

func (g *Grid) Width() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.width
}

func (g *Grid) Height() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.height
}

// Rects returns the absolute box of every visible view.
func (g *Grid) Rects() map[entity.Part]entity.Rect {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rects := make(map[entity.Part]entity.Rect, len(g.leaves))
	for part, n := range g.leaves {
		if n.visible {
			rects[part] = n.box
		}
	}
	return rects
}

// along picks the component of size that lies on axis.
func along(size entity.Dimension, axis entity.Orientation) float64 {
	if axis == entity.OrientationHorizontal {
		return size.Width
	}
	return size.Height
}

func (g *Grid) clamp(n *node, axis entity.Orientation, size float64) float64 {
	return math.Max(minimumSize(n, axis), math.Min(maximumSize(n, axis), size))
}
