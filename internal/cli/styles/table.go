package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// PartsTableColumns returns columns for the part boxes table.
func PartsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Part", Width: 14},
		{Title: "Visible", Width: 8},
		{Title: "X", Width: 7},
		{Title: "Y", Width: 7},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
	}
}

// PartRow is one line of the parts table.
type PartRow struct {
	Part    string
	Visible bool
	X, Y    float64
	Width   float64
	Height  float64
}

// ToRow converts to table.Row. Hidden parts show no box.
func (r PartRow) ToRow() table.Row {
	if !r.Visible {
		return table.Row{r.Part, "no", "-", "-", "-", "-"}
	}
	return table.Row{
		r.Part, "yes",
		FormatPixels(r.X), FormatPixels(r.Y),
		FormatPixels(r.Width), FormatPixels(r.Height),
	}
}

// FormatPixels prints whole pixels without decimals and keeps one
// decimal otherwise.
func FormatPixels(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
