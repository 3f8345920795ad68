package entity

import (
	"encoding/json"
	"fmt"
)

// Orientation is the axis along which a branch lays out its children.
type Orientation int

const (
	// OrientationVertical stacks children top to bottom.
	OrientationVertical Orientation = iota
	// OrientationHorizontal places children left to right.
	OrientationHorizontal
)

// Orthogonal returns the other axis.
func (o Orientation) Orthogonal() Orientation {
	if o == OrientationVertical {
		return OrientationHorizontal
	}
	return OrientationVertical
}

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// GridNodeType distinguishes leaves from branches.
type GridNodeType string

const (
	GridNodeLeaf   GridNodeType = "leaf"
	GridNodeBranch GridNodeType = "branch"
)

// GridNode is one node of a grid descriptor. A leaf wraps exactly one part;
// a branch lays out its children along the axis orthogonal to its parent.
type GridNode struct {
	Type     GridNodeType
	Part     Part // leaves only
	Size     float64
	Visible  bool // leaves only
	Children []*GridNode
}

// Leaf creates a leaf node for a part.
func Leaf(part Part, size float64, visible bool) *GridNode {
	return &GridNode{Type: GridNodeLeaf, Part: part, Size: size, Visible: visible}
}

// Branch creates a branch node.
func Branch(size float64, children ...*GridNode) *GridNode {
	return &GridNode{Type: GridNodeBranch, Size: size, Children: children}
}

// IsLeaf returns true if the node wraps a part.
func (n *GridNode) IsLeaf() bool {
	return n.Type == GridNodeLeaf
}

// Walk visits the node and its descendants depth-first. depth is 0 for n.
// Returning false from fn stops the walk.
func (n *GridNode) Walk(fn func(node *GridNode, depth int) bool) bool {
	return n.walk(fn, 0)
}

func (n *GridNode) walk(fn func(node *GridNode, depth int) bool, depth int) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Leaves returns every leaf in document order.
func (n *GridNode) Leaves() []*GridNode {
	var leaves []*GridNode
	n.Walk(func(node *GridNode, _ int) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// FindLeaf returns the leaf wrapping part, or nil.
func (n *GridNode) FindLeaf(part Part) *GridNode {
	var found *GridNode
	n.Walk(func(node *GridNode, _ int) bool {
		if node.IsLeaf() && node.Part == part {
			found = node
			return false
		}
		return true
	})
	return found
}

type gridNodeWire struct {
	Type     GridNodeType `json:"type" yaml:"type"`
	Part     string       `json:"part,omitempty" yaml:"part,omitempty"`
	Size     float64      `json:"size" yaml:"size"`
	Visible  *bool        `json:"visible,omitempty" yaml:"visible,omitempty"`
	Children []*GridNode  `json:"children,omitempty" yaml:"children,omitempty"`
}

func (n *GridNode) wire() gridNodeWire {
	w := gridNodeWire{Type: n.Type, Size: n.Size, Children: n.Children}
	if n.IsLeaf() {
		visible := n.Visible
		w.Part = n.Part.String()
		w.Visible = &visible
	}
	return w
}

// MarshalJSON emits {"type":"leaf","part":...} or {"type":"branch","children":[...]}.
func (n *GridNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (n *GridNode) MarshalYAML() (any, error) {
	return n.wire(), nil
}

// UnmarshalJSON restores a node written by MarshalJSON.
func (n *GridNode) UnmarshalJSON(data []byte) error {
	var w gridNodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.Type = w.Type
	n.Size = w.Size
	n.Children = w.Children
	if w.Type == GridNodeLeaf {
		part, err := ParsePart(w.Part)
		if err != nil {
			return err
		}
		n.Part = part
		n.Visible = w.Visible == nil || *w.Visible
	}
	return nil
}

// GridDescriptor is the serialisable arrangement handed to the grid widget.
type GridDescriptor struct {
	Root        *GridNode   `json:"root" yaml:"root"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	Width       float64     `json:"width" yaml:"width"`
	Height      float64     `json:"height" yaml:"height"`
}

// Validate checks that every part appears in exactly one leaf.
func (d GridDescriptor) Validate() error {
	if d.Root == nil {
		return fmt.Errorf("grid descriptor has no root")
	}
	seen := make(map[Part]int, len(AllParts()))
	var structural error
	d.Root.Walk(func(node *GridNode, _ int) bool {
		switch node.Type {
		case GridNodeLeaf:
			if len(node.Children) > 0 {
				structural = fmt.Errorf("leaf %s has children", node.Part)
				return false
			}
			seen[node.Part]++
		case GridNodeBranch:
		default:
			structural = fmt.Errorf("unknown node type %q", node.Type)
			return false
		}
		return true
	})
	if structural != nil {
		return structural
	}
	for _, part := range AllParts() {
		if seen[part] != 1 {
			return fmt.Errorf("part %s appears %d times, want 1", part, seen[part])
		}
	}
	return nil
}

// Rect is an absolute rectangle inside the workbench container.
type Rect struct {
	X, Y          float64
	Width, Height float64
}
