// Package composition turns layout state into the grid descriptor the
// splitter widget is built from.
package composition

import "github.com/bnema/shellgrid/internal/domain/entity"

// Input is everything the descriptor depends on. The workbench assembles
// it from the state model and the parts' minimum sizes.
type Input struct {
	Container entity.Dimension

	// Fixed extents, taken from each part's minimum size.
	TitleBarHeight   float64
	BannerHeight     float64
	StatusBarHeight  float64
	ActivityBarWidth float64

	SideBarSize      float64
	AuxiliaryBarSize float64
	PanelSize        float64

	TitleBarVisible     bool
	BannerVisible       bool
	ActivityBarVisible  bool
	SideBarVisible      bool
	EditorVisible       bool
	PanelVisible        bool
	AuxiliaryBarVisible bool
	StatusBarVisible    bool

	SideBarPosition entity.Position
	PanelPosition   entity.Position
	PanelAlignment  entity.PanelAlignment

	// BannerFirst puts the banner above the title bar.
	BannerFirst bool
}

// SideBarNextToEditor reports whether, with a horizontal panel, the side
// bar shares the editor's column instead of spanning the panel too.
func SideBarNextToEditor(sideBar entity.Position, alignment entity.PanelAlignment) bool {
	return !(alignment == entity.AlignmentCenter ||
		(sideBar == entity.PositionLeft && alignment == entity.AlignmentRight) ||
		(sideBar == entity.PositionRight && alignment == entity.AlignmentLeft))
}

// AuxiliaryBarNextToEditor is SideBarNextToEditor for the auxiliary bar,
// which always sits opposite the side bar.
func AuxiliaryBarNextToEditor(sideBar entity.Position, alignment entity.PanelAlignment) bool {
	return !(alignment == entity.AlignmentCenter ||
		(sideBar == entity.PositionRight && alignment == entity.AlignmentRight) ||
		(sideBar == entity.PositionLeft && alignment == entity.AlignmentLeft))
}

type middleNodes struct {
	activityBar  *entity.GridNode
	sideBar      *entity.GridNode
	editor       *entity.GridNode
	panel        *entity.GridNode
	auxiliaryBar *entity.GridNode
}

// CreateGridDescriptor builds the full workbench tree: title bar and
// banner, the middle row, then the status bar, stacked vertically.
// Hidden parts keep their leaf with Visible false.
func CreateGridDescriptor(in Input) (entity.GridDescriptor, entity.LayoutDescriptor) {
	width, height := in.Container.Width, in.Container.Height
	middleHeight := height - in.TitleBarHeight - in.StatusBarHeight

	titleAndBanner := []*entity.GridNode{
		entity.Leaf(entity.PartTitleBar, in.TitleBarHeight, in.TitleBarVisible),
		entity.Leaf(entity.PartBanner, in.BannerHeight, in.BannerVisible),
	}
	if in.BannerFirst {
		titleAndBanner[0], titleAndBanner[1] = titleAndBanner[1], titleAndBanner[0]
	}

	nodes := middleNodes{
		activityBar:  entity.Leaf(entity.PartActivityBar, in.ActivityBarWidth, in.ActivityBarVisible),
		sideBar:      entity.Leaf(entity.PartSideBar, in.SideBarSize, in.SideBarVisible),
		editor:       entity.Leaf(entity.PartEditor, 0, in.EditorVisible),
		panel:        entity.Leaf(entity.PartPanel, in.PanelSize, in.PanelVisible),
		auxiliaryBar: entity.Leaf(entity.PartAuxiliaryBar, in.AuxiliaryBarSize, in.AuxiliaryBarVisible),
	}
	middle := arrangeMiddleSectionNodes(in, nodes, width, middleHeight)

	children := make([]*entity.GridNode, 0, 4)
	children = append(children, titleAndBanner...)
	children = append(children,
		entity.Branch(middleHeight, middle...),
		entity.Leaf(entity.PartStatusBar, in.StatusBarHeight, in.StatusBarVisible),
	)

	grid := entity.GridDescriptor{
		Root:        entity.Branch(width, children...),
		Orientation: entity.OrientationVertical,
		Width:       width,
		Height:      height,
	}
	layout := entity.LayoutDescriptor{
		ActivityBarVisible:  in.ActivityBarVisible,
		SideBarVisible:      in.SideBarVisible,
		AuxiliaryBarVisible: in.AuxiliaryBarVisible,
		PanelVisible:        in.PanelVisible,
		StatusBarVisible:    in.StatusBarVisible,
		SideBarPosition:     in.SideBarPosition,
		PanelPosition:       in.PanelPosition,
	}
	return grid, layout
}

func visibleSize(visible bool, size float64) float64 {
	if !visible {
		return 0
	}
	return size
}

func prepend(nodes []*entity.GridNode, n *entity.GridNode) []*entity.GridNode {
	return append([]*entity.GridNode{n}, nodes...)
}

// arrangeMiddleSectionNodes orders the row between the title and status
// bars.
func arrangeMiddleSectionNodes(in Input, nodes middleNodes, availableWidth, availableHeight float64) []*entity.GridNode {
	activityBarSize := visibleSize(in.ActivityBarVisible, nodes.activityBar.Size)
	sideBarSize := visibleSize(in.SideBarVisible, nodes.sideBar.Size)
	auxiliaryBarSize := visibleSize(in.AuxiliaryBarVisible, nodes.auxiliaryBar.Size)
	panelSize := visibleSize(in.PanelVisible, nodes.panel.Size)

	var result []*entity.GridNode

	if !in.PanelPosition.IsHorizontal() {
		nodes.editor.Size = availableWidth - activityBarSize - sideBarSize - panelSize - auxiliaryBarSize
		result = append(result, nodes.editor)
		if in.PanelPosition == entity.PositionRight {
			result = append(result, nodes.panel)
		} else {
			result = prepend(result, nodes.panel)
		}

		if in.SideBarPosition == entity.PositionLeft {
			result = append(result, nodes.auxiliaryBar)
			result = prepend(result, nodes.sideBar)
			result = prepend(result, nodes.activityBar)
		} else {
			result = prepend(result, nodes.auxiliaryBar)
			result = append(result, nodes.sideBar, nodes.activityBar)
		}
		return result
	}

	sideBarNext := SideBarNextToEditor(in.SideBarPosition, in.PanelAlignment)
	auxNext := AuxiliaryBarNextToEditor(in.SideBarPosition, in.PanelAlignment)

	editorSectionWidth := availableWidth - activityBarSize
	if !sideBarNext {
		editorSectionWidth -= sideBarSize
	}
	if !auxNext {
		editorSectionWidth -= auxiliaryBarSize
	}

	editorNodes := editorSection{editor: nodes.editor}
	if sideBarNext {
		editorNodes.sideBar = nodes.sideBar
	}
	if auxNext {
		editorNodes.auxiliaryBar = nodes.auxiliaryBar
	}
	editorColumn := arrangeEditorNodes(in, editorNodes, availableHeight-panelSize, editorSectionWidth)

	if in.PanelPosition == entity.PositionBottom {
		result = append(result, entity.Branch(editorSectionWidth, editorColumn, nodes.panel))
	} else {
		result = append(result, entity.Branch(editorSectionWidth, nodes.panel, editorColumn))
	}

	if !sideBarNext {
		if in.SideBarPosition == entity.PositionLeft {
			result = prepend(result, nodes.sideBar)
		} else {
			result = append(result, nodes.sideBar)
		}
	}
	if !auxNext {
		if in.SideBarPosition == entity.PositionRight {
			result = prepend(result, nodes.auxiliaryBar)
		} else {
			result = append(result, nodes.auxiliaryBar)
		}
	}

	if in.SideBarPosition == entity.PositionLeft {
		result = prepend(result, nodes.activityBar)
	} else {
		result = append(result, nodes.activityBar)
	}
	return result
}

type editorSection struct {
	editor       *entity.GridNode
	sideBar      *entity.GridNode
	auxiliaryBar *entity.GridNode
}

// arrangeEditorNodes groups the editor with whichever bars share its
// column. With no such bar the editor leaf itself is the column.
func arrangeEditorNodes(in Input, nodes editorSection, availableHeight, availableWidth float64) *entity.GridNode {
	if nodes.sideBar == nil && nodes.auxiliaryBar == nil {
		nodes.editor.Size = availableHeight
		return nodes.editor
	}

	result := []*entity.GridNode{nodes.editor}
	nodes.editor.Size = availableWidth

	if nodes.sideBar != nil {
		if in.SideBarPosition == entity.PositionLeft {
			result = prepend(result, nodes.sideBar)
		} else {
			result = append(result, nodes.sideBar)
		}
		nodes.editor.Size -= visibleSize(in.SideBarVisible, nodes.sideBar.Size)
	}

	if nodes.auxiliaryBar != nil {
		if in.SideBarPosition == entity.PositionRight {
			result = prepend(result, nodes.auxiliaryBar)
		} else {
			result = append(result, nodes.auxiliaryBar)
		}
		nodes.editor.Size -= visibleSize(in.AuxiliaryBarVisible, nodes.auxiliaryBar.Size)
	}

	return entity.Branch(availableHeight, result...)
}
