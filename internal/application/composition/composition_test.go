package composition

import (
	"strings"
	"testing"

	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		Container:           entity.Dimension{Width: 1200, Height: 800},
		TitleBarHeight:      30,
		BannerHeight:        26,
		StatusBarHeight:     22,
		ActivityBarWidth:    48,
		SideBarSize:         300,
		AuxiliaryBarSize:    300,
		PanelSize:           266,
		TitleBarVisible:     true,
		ActivityBarVisible:  true,
		SideBarVisible:      true,
		EditorVisible:       true,
		PanelVisible:        true,
		AuxiliaryBarVisible: false,
		StatusBarVisible:    true,
		SideBarPosition:     entity.PositionLeft,
		PanelPosition:       entity.PositionBottom,
		PanelAlignment:      entity.AlignmentCenter,
	}
}

// shape renders a subtree as nested brackets of short part names.
func shape(n *entity.GridNode) string {
	if n.IsLeaf() {
		return n.Part.ShortName()
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, shape(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func middleRow(t *testing.T, grid entity.GridDescriptor) *entity.GridNode {
	t.Helper()
	require.Len(t, grid.Root.Children, 4)
	middle := grid.Root.Children[2]
	require.False(t, middle.IsLeaf())
	return middle
}

func TestCreateGridDescriptor_MiddleRowShapes(t *testing.T) {
	tests := []struct {
		name      string
		sideBar   entity.Position
		panel     entity.Position
		alignment entity.PanelAlignment
		want      string
	}{
		{name: "panel right, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionRight,
			want: "[activitybar sidebar editor panel auxiliarybar]"},
		{name: "panel left, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionLeft,
			want: "[activitybar sidebar panel editor auxiliarybar]"},
		{name: "panel right, side bar right", sideBar: entity.PositionRight, panel: entity.PositionRight,
			want: "[auxiliarybar editor panel sidebar activitybar]"},
		{name: "bottom center, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionBottom, alignment: entity.AlignmentCenter,
			want: "[activitybar sidebar [editor panel] auxiliarybar]"},
		{name: "bottom left, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionBottom, alignment: entity.AlignmentLeft,
			want: "[activitybar [[sidebar editor] panel] auxiliarybar]"},
		{name: "bottom right, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionBottom, alignment: entity.AlignmentRight,
			want: "[activitybar sidebar [[editor auxiliarybar] panel]]"},
		{name: "bottom justify, side bar left", sideBar: entity.PositionLeft, panel: entity.PositionBottom, alignment: entity.AlignmentJustify,
			want: "[activitybar [[sidebar editor auxiliarybar] panel]]"},
		{name: "bottom left, side bar right", sideBar: entity.PositionRight, panel: entity.PositionBottom, alignment: entity.AlignmentLeft,
			want: "[[[auxiliarybar editor] panel] sidebar activitybar]"},
		{name: "top center, side bar right", sideBar: entity.PositionRight, panel: entity.PositionTop, alignment: entity.AlignmentCenter,
			want: "[auxiliarybar [panel editor] sidebar activitybar]"},
		{name: "top justify, side bar right", sideBar: entity.PositionRight, panel: entity.PositionTop, alignment: entity.AlignmentJustify,
			want: "[[panel [auxiliarybar editor sidebar]] activitybar]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.SideBarPosition = tt.sideBar
			in.PanelPosition = tt.panel
			in.PanelAlignment = tt.alignment
			if in.PanelAlignment == "" {
				in.PanelAlignment = entity.AlignmentCenter
			}

			grid, _ := CreateGridDescriptor(in)

			require.NoError(t, grid.Validate())
			assert.Equal(t, tt.want, shape(middleRow(t, grid)))
		})
	}
}

func TestCreateGridDescriptor_OuterStack(t *testing.T) {
	in := baseInput()
	grid, layout := CreateGridDescriptor(in)

	assert.Equal(t, entity.OrientationVertical, grid.Orientation)
	assert.Equal(t, 1200.0, grid.Width)
	assert.Equal(t, 800.0, grid.Height)
	assert.Equal(t, 1200.0, grid.Root.Size)

	children := grid.Root.Children
	assert.Equal(t, entity.PartTitleBar, children[0].Part)
	assert.Equal(t, entity.PartBanner, children[1].Part)
	assert.False(t, children[1].Visible)
	assert.Equal(t, 748.0, children[2].Size)
	assert.Equal(t, entity.PartStatusBar, children[3].Part)

	assert.Equal(t, entity.LayoutDescriptor{
		ActivityBarVisible: true,
		SideBarVisible:     true,
		PanelVisible:       true,
		StatusBarVisible:   true,
		SideBarPosition:    entity.PositionLeft,
		PanelPosition:      entity.PositionBottom,
	}, layout)
}

func TestCreateGridDescriptor_BannerFirst(t *testing.T) {
	in := baseInput()
	in.BannerFirst = true
	grid, _ := CreateGridDescriptor(in)

	assert.Equal(t, entity.PartBanner, grid.Root.Children[0].Part)
	assert.Equal(t, entity.PartTitleBar, grid.Root.Children[1].Part)
}

func TestCreateGridDescriptor_HiddenPartsKeepLeaves(t *testing.T) {
	in := baseInput()
	in.SideBarVisible = false
	in.PanelVisible = false
	in.StatusBarVisible = false
	grid, _ := CreateGridDescriptor(in)

	require.NoError(t, grid.Validate())
	for _, part := range []entity.Part{entity.PartSideBar, entity.PartPanel, entity.PartStatusBar} {
		leaf := grid.Root.FindLeaf(part)
		require.NotNil(t, leaf, part.String())
		assert.False(t, leaf.Visible, part.String())
	}
	assert.Equal(t, 300.0, grid.Root.FindLeaf(entity.PartSideBar).Size, "hidden leaves keep their size")
}

func TestCreateGridDescriptor_Sizes(t *testing.T) {
	t.Run("bottom center", func(t *testing.T) {
		grid, _ := CreateGridDescriptor(baseInput())
		middle := middleRow(t, grid)

		editorColumn := middle.Children[2]
		assert.Equal(t, 852.0, editorColumn.Size, "width minus activity bar and visible side bar")
		assert.Equal(t, 482.0, grid.Root.FindLeaf(entity.PartEditor).Size, "height minus panel")
	})

	t.Run("vertical panel", func(t *testing.T) {
		in := baseInput()
		in.PanelPosition = entity.PositionRight
		grid, _ := CreateGridDescriptor(in)

		assert.Equal(t, 586.0, grid.Root.FindLeaf(entity.PartEditor).Size)
	})

	t.Run("hidden panel does not shrink editor", func(t *testing.T) {
		in := baseInput()
		in.PanelVisible = false
		grid, _ := CreateGridDescriptor(in)

		assert.Equal(t, 748.0, grid.Root.FindLeaf(entity.PartEditor).Size)
	})

	t.Run("justify nests both bars", func(t *testing.T) {
		in := baseInput()
		in.PanelAlignment = entity.AlignmentJustify
		in.AuxiliaryBarVisible = true
		in.AuxiliaryBarSize = 200
		grid, _ := CreateGridDescriptor(in)

		middle := middleRow(t, grid)
		column := middle.Children[1]
		assert.Equal(t, 1152.0, column.Size)
		editorRow := column.Children[0]
		assert.Equal(t, 482.0, editorRow.Size)
		assert.Equal(t, 652.0, grid.Root.FindLeaf(entity.PartEditor).Size)
	})
}

func TestNextToEditorPredicates(t *testing.T) {
	tests := []struct {
		sideBar   entity.Position
		alignment entity.PanelAlignment
		side, aux bool
	}{
		{entity.PositionLeft, entity.AlignmentCenter, false, false},
		{entity.PositionLeft, entity.AlignmentLeft, true, false},
		{entity.PositionLeft, entity.AlignmentRight, false, true},
		{entity.PositionLeft, entity.AlignmentJustify, true, true},
		{entity.PositionRight, entity.AlignmentLeft, false, true},
		{entity.PositionRight, entity.AlignmentRight, true, false},
	}

	for _, tt := range tests {
		name := string(tt.sideBar) + "/" + string(tt.alignment)
		assert.Equal(t, tt.side, SideBarNextToEditor(tt.sideBar, tt.alignment), name)
		assert.Equal(t, tt.aux, AuxiliaryBarNextToEditor(tt.sideBar, tt.alignment), name)
	}
}
