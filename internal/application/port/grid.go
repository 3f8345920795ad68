package port

import "github.com/bnema/shellgrid/internal/domain/entity"

// LayoutPriority orders which views absorb free space first.
type LayoutPriority int

const (
	PriorityNormal LayoutPriority = iota
	PriorityLow
	PriorityHigh
)

// View is the sizing contract a grid leaf needs from its part.
type View interface {
	MinimumWidth() float64
	MaximumWidth() float64
	MinimumHeight() float64
	MaximumHeight() float64
	Priority() LayoutPriority

	// Layout is called by the grid with the view's final box.
	Layout(width, height, top, left float64)
}

// GridWidget is the live splitter tree built from a grid descriptor.
// Views are addressed by the part they display.
type GridWidget interface {
	SetViewVisible(part entity.Part, visible bool)
	IsViewVisible(part entity.Part) bool

	// ResizeView sets the view size; Width applies along horizontal
	// branches and Height along vertical ones.
	ResizeView(part entity.Part, size entity.Dimension)

	// MoveView detaches part and re-inserts it next to reference.
	MoveView(part entity.Part, size float64, reference entity.Part, direction entity.Direction)

	// MoveViewTo detaches part and inserts it at a tree location. Negative
	// indexes count from the end of the branch.
	MoveViewTo(part entity.Part, location []int)

	GetViewSize(part entity.Part) entity.Dimension

	// GetViewCachedVisibleSize returns the size the view had before it
	// was hidden. ok is false while the view is visible.
	GetViewCachedVisibleSize(part entity.Part) (size float64, ok bool)

	GetNeighborViews(part entity.Part, direction entity.Direction) []entity.Part

	EdgeSnapping() bool
	SetEdgeSnapping(enabled bool)

	Layout(width, height float64)
	Width() float64
	Height() float64
}

// GridFactory builds live grids.
type GridFactory interface {
	Deserialize(desc entity.GridDescriptor, views map[entity.Part]View) (GridWidget, error)
}
