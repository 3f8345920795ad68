package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidAlignment = errors.New("invalid panel alignment")
)

// Position is where a part sits relative to the editor area.
type Position string

const (
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionBottom Position = "bottom"
	PositionTop    Position = "top"
)

// IsHorizontal reports whether the position stacks the part above or below
// the editor (the panel then spans the editor's width).
func (p Position) IsHorizontal() bool {
	return p == PositionBottom || p == PositionTop
}

// Opposite mirrors left/right and top/bottom.
func (p Position) Opposite() Position {
	switch p {
	case PositionLeft:
		return PositionRight
	case PositionRight:
		return PositionLeft
	case PositionTop:
		return PositionBottom
	default:
		return PositionTop
	}
}

// Direction returns the grid direction used to move a view to this side.
func (p Position) Direction() Direction {
	switch p {
	case PositionLeft:
		return DirectionLeft
	case PositionRight:
		return DirectionRight
	case PositionTop:
		return DirectionUp
	default:
		return DirectionDown
	}
}

func (p Position) String() string { return string(p) }

// ParsePosition parses a position name, case-insensitively.
func ParsePosition(s string) (Position, error) {
	switch pos := Position(strings.ToLower(strings.TrimSpace(s))); pos {
	case PositionLeft, PositionRight, PositionBottom, PositionTop:
		return pos, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// PanelAlignment is a horizontal panel's relationship to the side bars.
type PanelAlignment string

const (
	AlignmentLeft    PanelAlignment = "left"
	AlignmentCenter  PanelAlignment = "center"
	AlignmentRight   PanelAlignment = "right"
	AlignmentJustify PanelAlignment = "justify"
)

func (a PanelAlignment) String() string { return string(a) }

// ParsePanelAlignment parses an alignment name, case-insensitively.
func ParsePanelAlignment(s string) (PanelAlignment, error) {
	switch a := PanelAlignment(strings.ToLower(strings.TrimSpace(s))); a {
	case AlignmentLeft, AlignmentCenter, AlignmentRight, AlignmentJustify:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
}

// Direction is a relative placement inside the grid.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

// Orientation returns the axis along which a move in this direction happens.
func (d Direction) Orientation() Orientation {
	if d == DirectionUp || d == DirectionDown {
		return OrientationVertical
	}
	return OrientationHorizontal
}

// IsAfter reports whether the direction inserts after the reference view.
func (d Direction) IsAfter() bool {
	return d == DirectionDown || d == DirectionRight
}
