package layout_test

import (
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/application/composition"
	"github.com/bnema/shellgrid/internal/application/port"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/ui/layout"
)

type testView struct {
	minW, maxW, minH, maxH float64
	priority               port.LayoutPriority

	box     entity.Rect
	layouts int
}

func (v *testView) MinimumWidth() float64         { return v.minW }
func (v *testView) MaximumWidth() float64         { return v.maxW }
func (v *testView) MinimumHeight() float64        { return v.minH }
func (v *testView) MaximumHeight() float64        { return v.maxH }
func (v *testView) Priority() port.LayoutPriority { return v.priority }
func (v *testView) Layout(w, h, top, left float64) {
	v.box = entity.Rect{X: left, Y: top, Width: w, Height: h}
	v.layouts++
}

func testViews() map[entity.Part]port.View {
	inf := math.Inf(1)
	return map[entity.Part]port.View{
		entity.PartTitleBar:     &testView{maxW: inf, minH: 30, maxH: 30},
		entity.PartBanner:       &testView{maxW: inf, minH: 26, maxH: 26},
		entity.PartStatusBar:    &testView{maxW: inf, minH: 22, maxH: 22},
		entity.PartActivityBar:  &testView{minW: 48, maxW: 48, maxH: inf},
		entity.PartSideBar:      &testView{minW: 170, maxW: inf, maxH: inf, priority: port.PriorityLow},
		entity.PartAuxiliaryBar: &testView{minW: 170, maxW: inf, maxH: inf, priority: port.PriorityLow},
		entity.PartPanel:        &testView{minW: 300, maxW: inf, minH: 77, maxH: inf, priority: port.PriorityLow},
		entity.PartEditor:       &testView{minW: 220, maxW: inf, minH: 70, maxH: inf, priority: port.PriorityHigh},
	}
}

func defaultInput() composition.Input {
	return composition.Input{
		Container:          entity.Dimension{Width: 1200, Height: 800},
		TitleBarHeight:     30,
		BannerHeight:       26,
		StatusBarHeight:    22,
		ActivityBarWidth:   48,
		SideBarSize:        300,
		AuxiliaryBarSize:   300,
		PanelSize:          266,
		TitleBarVisible:    true,
		ActivityBarVisible: true,
		SideBarVisible:     true,
		EditorVisible:      true,
		PanelVisible:       true,
		StatusBarVisible:   true,
		SideBarPosition:    entity.PositionLeft,
		PanelPosition:      entity.PositionBottom,
		PanelAlignment:     entity.AlignmentCenter,
	}
}

func newGrid(t *testing.T, in composition.Input) (*layout.Grid, map[entity.Part]port.View) {
	t.Helper()
	desc, _ := composition.CreateGridDescriptor(in)
	views := testViews()
	g, err := layout.Deserialize(desc, views, zerolog.Nop())
	require.NoError(t, err)
	return g, views
}

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

func middleShape(g *layout.Grid) string {
	return shape(g.Serialize().Root.Children[2])
}

func TestDeserialize_LaysOutDescriptor(t *testing.T) {
	g, views := newGrid(t, defaultInput())

	rects := g.Rects()
	assert.Equal(t, entity.Rect{X: 348, Y: 30, Width: 852, Height: 482}, rects[entity.PartEditor])
	assert.Equal(t, entity.Rect{X: 348, Y: 512, Width: 852, Height: 266}, rects[entity.PartPanel])
	assert.Equal(t, entity.Rect{X: 0, Y: 778, Width: 1200, Height: 22}, rects[entity.PartStatusBar])
	assert.NotContains(t, rects, entity.PartBanner)
	assert.NotContains(t, rects, entity.PartAuxiliaryBar)

	editor := views[entity.PartEditor].(*testView)
	assert.Equal(t, rects[entity.PartEditor], editor.box)
	assert.Equal(t, 0, views[entity.PartBanner].(*testView).layouts, "hidden views are not laid out")

	assert.Equal(t, 1200.0, g.Width())
	assert.Equal(t, 800.0, g.Height())
}

func TestDeserialize_Errors(t *testing.T) {
	_, err := layout.Deserialize(entity.GridDescriptor{}, testViews(), zerolog.Nop())
	assert.ErrorIs(t, err, layout.ErrNilRoot)

	desc, _ := composition.CreateGridDescriptor(defaultInput())
	views := testViews()
	delete(views, entity.PartPanel)
	_, err = layout.Deserialize(desc, views, zerolog.Nop())
	assert.ErrorIs(t, err, layout.ErrMissingView)
}

func TestSetViewVisible_CachesSize(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	_, ok := g.GetViewCachedVisibleSize(entity.PartSideBar)
	assert.False(t, ok, "no cached size while visible")

	g.SetViewVisible(entity.PartSideBar, false)

	assert.False(t, g.IsViewVisible(entity.PartSideBar))
	cached, ok := g.GetViewCachedVisibleSize(entity.PartSideBar)
	require.True(t, ok)
	assert.Equal(t, 300.0, cached)
	assert.Equal(t, 1152.0, g.GetViewSize(entity.PartEditor).Width, "editor absorbs the freed width")

	g.SetViewVisible(entity.PartSideBar, true)

	assert.Equal(t, 300.0, g.GetViewSize(entity.PartSideBar).Width)
	assert.Equal(t, 852.0, g.GetViewSize(entity.PartEditor).Width)
}

func TestSetViewVisible_HiddenPanelGivesEditorFullHeight(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	g.SetViewVisible(entity.PartPanel, false)

	assert.Equal(t, 748.0, g.GetViewSize(entity.PartEditor).Height)
	assert.Equal(t, entity.Dimension{Width: 852}, g.GetViewSize(entity.PartPanel))
}

func TestResizeView(t *testing.T) {
	t.Run("side bar width", func(t *testing.T) {
		g, _ := newGrid(t, defaultInput())

		g.ResizeView(entity.PartSideBar, entity.Dimension{Width: 400, Height: 748})

		assert.Equal(t, 400.0, g.GetViewSize(entity.PartSideBar).Width)
		assert.Equal(t, 752.0, g.GetViewSize(entity.PartEditor).Width)
	})

	t.Run("panel height", func(t *testing.T) {
		g, _ := newGrid(t, defaultInput())

		g.ResizeView(entity.PartPanel, entity.Dimension{Width: 852, Height: 300})

		assert.Equal(t, 300.0, g.GetViewSize(entity.PartPanel).Height)
		assert.Equal(t, 448.0, g.GetViewSize(entity.PartEditor).Height)
	})

	t.Run("clamped to minimum", func(t *testing.T) {
		g, _ := newGrid(t, defaultInput())

		g.ResizeView(entity.PartSideBar, entity.Dimension{Width: 10, Height: 748})

		assert.Equal(t, 170.0, g.GetViewSize(entity.PartSideBar).Width)
	})
}

func TestMoveView_AcrossAxes(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	g.MoveView(entity.PartPanel, 300, entity.PartEditor, entity.DirectionRight)

	assert.Equal(t, "[activitybar sidebar editor panel auxiliarybar]", middleShape(g))
	assert.Equal(t, entity.Rect{X: 900, Y: 30, Width: 300, Height: 748}, g.Rects()[entity.PartPanel])
	assert.Equal(t, 552.0, g.GetViewSize(entity.PartEditor).Width)

	g.MoveView(entity.PartPanel, 266, entity.PartEditor, entity.DirectionDown)

	assert.Equal(t, "[activitybar sidebar [editor panel] auxiliarybar]", middleShape(g))
	assert.Equal(t, entity.Rect{X: 348, Y: 30, Width: 852, Height: 482}, g.Rects()[entity.PartEditor])
	require.NoError(t, g.Serialize().Validate())
}

func TestMoveView_HiddenViewStaysHidden(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	g.MoveView(entity.PartAuxiliaryBar, 250, entity.PartEditor, entity.DirectionLeft)

	assert.False(t, g.IsViewVisible(entity.PartAuxiliaryBar))
	cached, ok := g.GetViewCachedVisibleSize(entity.PartAuxiliaryBar)
	require.True(t, ok)
	assert.Equal(t, 250.0, cached)
	assert.Equal(t, "[activitybar sidebar [[auxiliarybar editor] panel]]", middleShape(g))
	assert.Equal(t, 852.0, g.GetViewSize(entity.PartEditor).Width)
}

func TestMoveViewTo(t *testing.T) {
	t.Run("negative index appends", func(t *testing.T) {
		g, _ := newGrid(t, defaultInput())

		g.MoveViewTo(entity.PartActivityBar, []int{2, -1})

		assert.Equal(t, "[sidebar [editor panel] auxiliarybar activitybar]", middleShape(g))
		assert.Equal(t, 1152.0, g.Rects()[entity.PartActivityBar].X)
	})

	t.Run("collapses emptied branch", func(t *testing.T) {
		in := defaultInput()
		in.PanelAlignment = entity.AlignmentLeft
		g, _ := newGrid(t, in)
		require.Equal(t, "[activitybar [[sidebar editor] panel] auxiliarybar]", middleShape(g))

		g.MoveViewTo(entity.PartSideBar, []int{2, 1})

		assert.Equal(t, "[activitybar sidebar [editor panel] auxiliarybar]", middleShape(g))
		assert.Equal(t, 300.0, g.GetViewSize(entity.PartSideBar).Width)
		assert.Equal(t, 852.0, g.GetViewSize(entity.PartEditor).Width)
		require.NoError(t, g.Serialize().Validate())
	})

	t.Run("location through a leaf is ignored", func(t *testing.T) {
		g, _ := newGrid(t, defaultInput())

		g.MoveViewTo(entity.PartActivityBar, []int{0, 0})

		assert.Equal(t, "[activitybar sidebar [editor panel] auxiliarybar]", middleShape(g))
	})
}

func TestGetNeighborViews(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	assert.Equal(t, []entity.Part{entity.PartPanel}, g.GetNeighborViews(entity.PartEditor, entity.DirectionDown))
	assert.Equal(t, []entity.Part{entity.PartSideBar}, g.GetNeighborViews(entity.PartEditor, entity.DirectionLeft))
	assert.Empty(t, g.GetNeighborViews(entity.PartEditor, entity.DirectionRight))
	assert.Equal(t,
		[]entity.Part{entity.PartActivityBar, entity.PartSideBar, entity.PartPanel},
		g.GetNeighborViews(entity.PartStatusBar, entity.DirectionUp))
}

func TestEdgeSnapping(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	assert.False(t, g.EdgeSnapping())
	g.SetEdgeSnapping(true)
	assert.True(t, g.EdgeSnapping())
}

func TestLayout_Resize(t *testing.T) {
	g, _ := newGrid(t, defaultInput())

	g.Layout(1000, 600)

	assert.Equal(t, entity.Rect{X: 348, Y: 30, Width: 652, Height: 282}, g.Rects()[entity.PartEditor])
	assert.Equal(t, 300.0, g.GetViewSize(entity.PartSideBar).Width, "low priority views keep their size")
	assert.Equal(t, 266.0, g.GetViewSize(entity.PartPanel).Height)
}
