package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// MapBox is a visible part and its box in window pixels.
type MapBox struct {
	Part entity.Part
	Rect entity.Rect
}

// LayoutSummary is the header shown above a layout.
type LayoutSummary struct {
	Workspace      string
	Width, Height  float64
	SideBar        string
	Panel          string
	Alignment      string
	Zen            bool
	PanelMaximized bool
	Centered       bool
}

// LayoutRenderer draws workbench layouts in the terminal.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderSummary renders the workspace line and the layout flags.
func (r *LayoutRenderer) RenderSummary(s LayoutSummary) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	head := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconFolder),
		t.Title.Render(s.Workspace),
		t.Subtle.Render(fmt.Sprintf("%sx%s", FormatPixels(s.Width), FormatPixels(s.Height))),
	)
	positions := fmt.Sprintf("%s %s %s  %s %s  %s %s",
		iconStyle.Render(IconColumns),
		t.Subtle.Render("side bar"), t.Highlight.Render(s.SideBar),
		t.Subtle.Render("panel"), t.Highlight.Render(s.Panel),
		t.Subtle.Render("align"), t.Highlight.Render(s.Alignment),
	)
	flags := strings.Join([]string{
		t.FlagBadge("zen", s.Zen),
		t.FlagBadge("maximized", s.PanelMaximized),
		t.FlagBadge("centered", s.Centered),
	}, " ")
	return lipgloss.JoinVertical(lipgloss.Left, head, positions, flags)
}

// RenderMap draws the boxes scaled into cols x rows terminal cells. Each
// part is filled with its color and labeled with its short name when the
// label fits.
func (r *LayoutRenderer) RenderMap(boxes []MapBox, width, height float64, cols, rows int) string {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return ""
	}

	owner := make([][]int, rows)
	glyph := make([][]rune, rows)
	for y := range rows {
		owner[y] = make([]int, cols)
		glyph[y] = []rune(strings.Repeat(" ", cols))
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}

	sx := float64(cols) / width
	sy := float64(rows) / height
	for i, b := range boxes {
		c0, c1 := span(b.Rect.X, b.Rect.Width, sx, cols)
		r0, r1 := span(b.Rect.Y, b.Rect.Height, sy, rows)
		for y := r0; y < r1; y++ {
			for x := c0; x < c1; x++ {
				owner[y][x] = i
				switch {
				case x == c0 && c0 > 0:
					glyph[y][x] = '│'
				case y == r0 && r0 > 0 && r1-r0 > 1:
					glyph[y][x] = '─'
				}
			}
		}

		label := []rune(b.Part.ShortName())
		inner := c1 - c0 - 1
		if inner <= 0 {
			continue
		}
		if len(label) > inner {
			label = label[:inner]
		}
		ly := r0 + (r1-r0)/2
		lx := c0 + 1 + (inner-len(label))/2
		copy(glyph[ly][lx:], label)
	}

	lines := make([]string, rows)
	for y := range rows {
		var sb strings.Builder
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && owner[y][x] == owner[y][start] {
				continue
			}
			run := string(glyph[y][start:x])
			if i := owner[y][start]; i >= 0 {
				run = r.theme.PartStyle(boxes[i].Part).Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// span converts a pixel interval into a half-open cell interval of at
// least one cell.
func span(start, length, scale float64, limit int) (int, int) {
	from := int(math.Round(start * scale))
	to := int(math.Round((start + length) * scale))
	from = min(max(from, 0), limit-1)
	to = min(max(to, from+1), limit)
	return from, to
}

// RenderPartsTable renders the part boxes as a static table.
func (r *LayoutRenderer) RenderPartsTable(rows []PartRow) string {
	t := r.theme
	headers := make([]string, 0, len(PartsTableColumns()))
	for _, c := range PartsTableColumns() {
		headers = append(headers, c.Title)
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.Highlight.Padding(0, 1)
			case row >= 0 && row < len(rows) && !rows[row].Visible:
				return t.Subtle.Padding(0, 1)
			default:
				return t.Normal.Padding(0, 1)
			}
		})
	for _, row := range rows {
		tbl.Row(row.ToRow()...)
	}
	return tbl.Render()
}

// RenderGridTree renders the grid descriptor as an indented tree.
func (r *LayoutRenderer) RenderGridTree(desc *entity.GridDescriptor) string {
	if desc == nil || desc.Root == nil {
		return r.theme.Subtle.Render("no grid")
	}
	t := r.theme

	var sb strings.Builder
	var walk func(n *entity.GridNode, orientation entity.Orientation, depth int)
	walk = func(n *entity.GridNode, orientation entity.Orientation, depth int) {
		indent := strings.Repeat("  ", depth)
		if n.IsLeaf() {
			line := fmt.Sprintf("%s%s %s", indent, t.Highlight.Render(n.Part.ShortName()), t.Normal.Render(FormatPixels(n.Size)))
			if !n.Visible {
				line += " " + t.Subtle.Render("hidden")
			}
			sb.WriteString(line + "\n")
			return
		}
		fmt.Fprintf(&sb, "%s%s %s\n", indent, t.Subtitle.Render(orientation.String()), t.Subtle.Render(FormatPixels(n.Size)))
		for _, child := range n.Children {
			walk(child, orientation.Orthogonal(), depth+1)
		}
	}
	walk(desc.Root, desc.Orientation, 0)
	return strings.TrimRight(sb.String(), "\n")
}
