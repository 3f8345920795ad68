package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

func defaultBoxes() []MapBox {
	return []MapBox{
		{Part: entity.PartTitleBar, Rect: entity.Rect{Width: 1200, Height: 35}},
		{Part: entity.PartActivityBar, Rect: entity.Rect{Y: 35, Width: 48, Height: 743}},
		{Part: entity.PartSideBar, Rect: entity.Rect{X: 48, Y: 35, Width: 300, Height: 743}},
		{Part: entity.PartEditor, Rect: entity.Rect{X: 348, Y: 35, Width: 852, Height: 743}},
		{Part: entity.PartStatusBar, Rect: entity.Rect{Y: 778, Width: 1200, Height: 22}},
	}
}

func TestRenderMap_FillsEveryCell(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())

	out := r.RenderMap(defaultBoxes(), 1200, 800, 80, 24)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	for i, line := range lines {
		assert.Equal(t, 80, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "sidebar")
	assert.Contains(t, out, "titlebar")
}

func TestRenderMap_TruncatesLabels(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())

	// Three cells wide leaves room for two letters.
	out := r.RenderMap(defaultBoxes(), 1200, 800, 80, 24)

	assert.NotContains(t, out, "activitybar")
}

func TestRenderMap_EmptyArea(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())
	assert.Empty(t, r.RenderMap(defaultBoxes(), 0, 800, 80, 24))
	assert.Empty(t, r.RenderMap(defaultBoxes(), 1200, 800, 0, 24))
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name             string
		start, length    float64
		scale            float64
		limit            int
		wantFrom, wantTo int
	}{
		{"scaled", 48, 300, 0.1, 120, 5, 35},
		{"at least one cell", 0, 2, 0.1, 120, 0, 1},
		{"clamped to limit", 1150, 100, 0.1, 120, 115, 120},
		{"start past the end", 1300, 10, 0.1, 120, 119, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := span(tt.start, tt.length, tt.scale, tt.limit)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestRenderGridTree(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())
	desc := &entity.GridDescriptor{
		Orientation: entity.OrientationVertical,
		Root: entity.Branch(1200,
			entity.Leaf(entity.PartTitleBar, 35, true),
			entity.Branch(743,
				entity.Leaf(entity.PartSideBar, 300, false),
				entity.Leaf(entity.PartEditor, 900, true),
			),
		),
	}

	out := r.RenderGridTree(desc)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "vertical")
	assert.Contains(t, lines[1], "titlebar")
	assert.Contains(t, lines[2], "horizontal")
	assert.Contains(t, lines[3], "sidebar")
	assert.Contains(t, lines[3], "hidden")
	assert.True(t, strings.HasPrefix(lines[4], "    "))
	assert.NotContains(t, lines[4], "hidden")
}

func TestRenderGridTree_NoGrid(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())
	assert.Contains(t, r.RenderGridTree(nil), "no grid")
}

func TestPartRow(t *testing.T) {
	row := PartRow{Part: "sidebar", Visible: true, X: 48, Y: 35, Width: 300.5, Height: 743}
	assert.Equal(t, []string{"sidebar", "yes", "48", "35", "300.5", "743"}, []string(row.ToRow()))

	hidden := PartRow{Part: "panel"}
	assert.Equal(t, []string{"panel", "no", "-", "-", "-", "-"}, []string(hidden.ToRow()))
}

func TestRenderPartsTable(t *testing.T) {
	r := NewLayoutRenderer(DefaultTheme())
	out := r.RenderPartsTable([]PartRow{
		{Part: "editor", Visible: true, Width: 852, Height: 743},
		{Part: "panel"},
	})
	assert.Contains(t, out, "Part")
	assert.Contains(t, out, "852")
	assert.Contains(t, out, "panel")
}
