package layout

import (
	"cmp"
	"math"
	"slices"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

const edgeEpsilon = 0.5

// MoveView detaches part and re-inserts it next to reference. When the
// reference's branch runs along the other axis, the reference is wrapped
// in a new branch holding both views. A hidden view stays hidden and size
// becomes its cached visible size.
func (g *Grid) MoveView(part entity.Part, size float64, reference entity.Part, direction entity.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ref := g.leaf(part), g.leaf(reference)
	if n == nil || ref == nil || n == ref {
		return
	}

	g.detach(n)
	n.size = size
	axis := direction.Orientation()
	parent := ref.parent

	if parent.orientation == axis {
		index := parent.indexOf(ref)
		if direction.IsAfter() {
			index++
		}
		g.insert(parent, n, index)
	} else {
		g.wrap(ref, n, axis, direction.IsAfter(), size)
	}

	if n.visible {
		g.pinned[n] = true
	}
	g.logger.Debug().
		Str("part", part.String()).
		Str("reference", reference.String()).
		Str("direction", direction.String()).
		Float64("size", size).
		Msg("moved view")
	g.relayoutLocked()
}

// MoveViewTo detaches part and inserts it at location: every index but
// the last selects a child branch from the root, the last is the insert
// position. Negative indexes count from the end. The view keeps its
// extent along the target branch's axis.
func (g *Grid) MoveViewTo(part entity.Part, location []int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.leaf(part)
	if n == nil || len(location) == 0 {
		return
	}

	target := g.root
	for _, idx := range location[:len(location)-1] {
		idx = resolveIndex(idx, len(target.children))
		if idx >= len(target.children) || target.children[idx].isLeaf() {
			g.logger.Warn().Ints("location", location).Msg("grid location does not address a branch")
			return
		}
		target = target.children[idx]
	}

	size := n.size
	if n.visible && n.parent != nil && n.parent.orientation != target.orientation {
		size = n.box.Height
		if target.orientation == entity.OrientationHorizontal {
			size = n.box.Width
		}
	}

	g.detach(n)
	n.size = size
	g.insert(target, n, resolveIndex(location[len(location)-1], len(target.children)+1))
	if n.visible {
		g.pinned[n] = true
	}
	g.relayoutLocked()
}

func resolveIndex(idx, n int) int {
	if idx < 0 {
		idx += n
	}
	return max(0, min(idx, n))
}

func (g *Grid) insert(parent, n *node, index int) {
	index = max(0, min(index, len(parent.children)))
	n.parent = parent
	n.orientation = parent.orientation
	parent.children = slices.Insert(parent.children, index, n)
}

// wrap replaces ref with a branch along axis holding ref and n.
func (g *Grid) wrap(ref, n *node, axis entity.Orientation, after bool, size float64) {
	parent := ref.parent
	branch := &node{parent: parent, orientation: axis, size: ref.size}

	extent := ref.box.Height
	if axis == entity.OrientationHorizontal {
		extent = ref.box.Width
	}
	ref.size = math.Max(0, extent-size)
	if !n.visible {
		ref.size = extent
	}

	ref.parent, ref.orientation = branch, axis
	n.parent, n.orientation = branch, axis
	if after {
		branch.children = []*node{ref, n}
	} else {
		branch.children = []*node{n, ref}
	}
	parent.children[parent.indexOf(ref)] = branch
}

// detach removes n from its branch. A branch left with one child is
// collapsed into its parent.
func (g *Grid) detach(n *node) {
	parent := n.parent
	if parent == nil {
		return
	}
	parent.children = slices.Delete(parent.children, parent.indexOf(n), parent.indexOf(n)+1)
	n.parent = nil

	if len(parent.children) != 1 || parent.parent == nil {
		return
	}

	grand := parent.parent
	only := parent.children[0]
	index := grand.indexOf(parent)

	if only.isLeaf() {
		only.parent, only.orientation, only.size = grand, grand.orientation, parent.size
		grand.children[index] = only
		return
	}
	// A lone branch runs along grand's axis: splice its children in.
	for _, c := range only.children {
		c.parent = grand
	}
	grand.children = slices.Concat(grand.children[:index], only.children, grand.children[index+1:])
}

// GetNeighborViews returns the visible views sharing the edge of part on
// the given side, ordered along that edge.
func (g *Grid) GetNeighborViews(part entity.Part, direction entity.Direction) []entity.Part {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.leaves[part]
	if !ok || !n.visible {
		return nil
	}
	box := n.box

	type neighbor struct {
		part entity.Part
		pos  float64
	}
	var found []neighbor
	for other, o := range g.leaves {
		if o == n || !o.visible || o.box.Width == 0 || o.box.Height == 0 {
			continue
		}
		b := o.box
		var touches, overlaps bool
		var pos float64
		switch direction {
		case entity.DirectionUp:
			touches = near(b.Y+b.Height, box.Y)
			overlaps, pos = overlap(b.X, b.Width, box.X, box.Width), b.X
		case entity.DirectionDown:
			touches = near(b.Y, box.Y+box.Height)
			overlaps, pos = overlap(b.X, b.Width, box.X, box.Width), b.X
		case entity.DirectionLeft:
			touches = near(b.X+b.Width, box.X)
			overlaps, pos = overlap(b.Y, b.Height, box.Y, box.Height), b.Y
		case entity.DirectionRight:
			touches = near(b.X, box.X+box.Width)
			overlaps, pos = overlap(b.Y, b.Height, box.Y, box.Height), b.Y
		}
		if touches && overlaps {
			found = append(found, neighbor{part: other, pos: pos})
		}
	}

	slices.SortFunc(found, func(a, b neighbor) int {
		return cmp.Or(cmp.Compare(a.pos, b.pos), cmp.Compare(a.part, b.part))
	})
	parts := make([]entity.Part, 0, len(found))
	for _, f := range found {
		parts = append(parts, f.part)
	}
	return parts
}

func near(a, b float64) bool {
	return math.Abs(a-b) < edgeEpsilon
}

func overlap(start, length, otherStart, otherLength float64) bool {
	return start < otherStart+otherLength-edgeEpsilon && otherStart < start+length-edgeEpsilon
}
