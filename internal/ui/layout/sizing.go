package layout

import (
	"math"
	"slices"

	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
)

// Layout sizes the grid to width × height and lays out every visible view.
func (g *Grid) Layout(width, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.layoutLocked(width, height)
}

func (g *Grid) layoutLocked(width, height float64) {
	g.width, g.height = width, height
	g.layoutNode(g.root, entity.Rect{Width: width, Height: height})
	clear(g.pinned)
}

// relayoutLocked re-applies the last layout after a structural change.
// Before the first Layout there is nothing to distribute.
func (g *Grid) relayoutLocked() {
	if g.width <= 0 && g.height <= 0 {
		clear(g.pinned)
		return
	}
	g.layoutLocked(g.width, g.height)
}

func (g *Grid) layoutNode(n *node, box entity.Rect) {
	n.box = box
	if n.isLeaf() {
		if n.visible {
			n.view.Layout(box.Width, box.Height, box.Y, box.X)
		}
		return
	}

	length := box.Height
	if n.orientation == entity.OrientationHorizontal {
		length = box.Width
	}
	g.distribute(n, length)

	offset := 0.0
	for _, c := range n.children {
		extent := 0.0
		if c.isVisible() {
			extent = c.size
		}
		child := entity.Rect{X: box.X, Y: box.Y + offset, Width: box.Width, Height: extent}
		if n.orientation == entity.OrientationHorizontal {
			child = entity.Rect{X: box.X + offset, Y: box.Y, Width: extent, Height: box.Height}
		}
		g.layoutNode(c, child)
		offset += extent
	}
}

// distribute makes the visible children of n fill length exactly. The
// difference goes first to high-priority children, then to normal ones
// from last to first, then to low-priority ones, each within its min/max.
// Pinned children are only touched when nothing else can absorb it.
func (g *Grid) distribute(n *node, length float64) {
	var visible []*node
	total := 0.0
	for _, c := range n.children {
		if c.isVisible() {
			visible = append(visible, c)
			total += c.size
		}
	}
	if len(visible) == 0 {
		return
	}

	delta := length - total
	if delta == 0 {
		return
	}

	order := distributionOrder(visible)
	var free, pinned []*node
	for _, c := range order {
		if g.pinned[c] {
			pinned = append(pinned, c)
		} else {
			free = append(free, c)
		}
	}

	delta = g.absorb(free, n.orientation, delta)
	delta = g.absorb(pinned, n.orientation, delta)
	if delta != 0 {
		// Constraints cannot be honoured; keep the boxes tiling.
		order[0].size = math.Max(0, order[0].size+delta)
	}
}

func (g *Grid) absorb(nodes []*node, axis entity.Orientation, delta float64) float64 {
	for _, c := range nodes {
		if delta == 0 {
			break
		}
		next := g.clamp(c, axis, c.size+delta)
		delta -= next - c.size
		c.size = next
	}
	return delta
}

func distributionOrder(visible []*node) []*node {
	var high, normal, low []*node
	for _, c := range visible {
		switch priority(c) {
		case port.PriorityHigh:
			high = append(high, c)
		case port.PriorityLow:
			low = append(low, c)
		default:
			normal = append(normal, c)
		}
	}
	slices.Reverse(normal)
	return slices.Concat(high, normal, low)
}

// priority of a branch is high if any visible leaf below it is high, low
// if every visible leaf is low.
func priority(n *node) port.LayoutPriority {
	if n.isLeaf() {
		return n.view.Priority()
	}
	allLow := true
	for _, c := range n.children {
		if !c.isVisible() {
			continue
		}
		switch priority(c) {
		case port.PriorityHigh:
			return port.PriorityHigh
		case port.PriorityLow:
		default:
			allLow = false
		}
	}
	if allLow {
		return port.PriorityLow
	}
	return port.PriorityNormal
}

func minimumSize(n *node, axis entity.Orientation) float64 {
	if n.isLeaf() {
		if !n.visible {
			return 0
		}
		if axis == entity.OrientationHorizontal {
			return n.view.MinimumWidth()
		}
		return n.view.MinimumHeight()
	}
	size := 0.0
	for _, c := range n.children {
		if !c.isVisible() {
			continue
		}
		if n.orientation == axis {
			size += minimumSize(c, axis)
		} else {
			size = math.Max(size, minimumSize(c, axis))
		}
	}
	return size
}

func maximumSize(n *node, axis entity.Orientation) float64 {
	if n.isLeaf() {
		if !n.visible {
			return math.Inf(1)
		}
		if axis == entity.OrientationHorizontal {
			return n.view.MaximumWidth()
		}
		return n.view.MaximumHeight()
	}
	if n.orientation == axis {
		size := 0.0
		for _, c := range n.children {
			if c.isVisible() {
				size += maximumSize(c, axis)
			}
		}
		return size
	}
	size := math.Inf(1)
	for _, c := range n.children {
		if c.isVisible() {
			size = math.Min(size, maximumSize(c, axis))
		}
	}
	return size
}
