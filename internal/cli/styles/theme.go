// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/ui/theme"
)

// Fallbacks for palettes that leave the status colors empty.
const (
	fallbackError   = "#ef4444"
	fallbackWarning = "#f59e0b"
)

// Theme is the set of terminal styles for one resolved palette.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	// Buttons of the confirm dialog.
	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style
	Box            lipgloss.Style

	badges map[BadgeKind]lipgloss.Style
	parts  map[entity.Part]lipgloss.Style
}

// NewTheme derives every style from p.
func NewTheme(p theme.Palette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(theme.Coalesce(p.Destructive, fallbackError)),
		Warning:        lipgloss.Color(theme.Coalesce(p.Warning, fallbackWarning)),
		Success:        lipgloss.Color(theme.Coalesce(p.Success, p.Accent)),
	}
	t.initText()
	t.initDialog()
	t.initBadges()
	t.initParts()
	return t
}

// DefaultTheme is the theme of the default dark palette.
func DefaultTheme() *Theme {
	return NewTheme(theme.DefaultDarkPalette())
}

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func (t *Theme) initText() {
	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.SuccessStyle = fg(t.Success)
}

func (t *Theme) initDialog() {
	t.ActiveButton = fg(t.Background).Background(t.Accent).Bold(true).Padding(0, 2)
	t.InactiveButton = fg(t.Muted).Background(t.Surface).Padding(0, 2)
	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
}

func (t *Theme) initParts() {
	bar := fg(t.Muted).Background(t.Surface)
	pane := fg(t.Text).Background(t.SurfaceVariant)
	t.parts = map[entity.Part]lipgloss.Style{
		entity.PartTitleBar:     bar,
		entity.PartBanner:       fg(t.Background).Background(t.Warning),
		entity.PartStatusBar:    fg(t.Background).Background(t.Accent),
		entity.PartActivityBar:  bar.Foreground(t.Accent),
		entity.PartSideBar:      pane,
		entity.PartAuxiliaryBar: pane,
		entity.PartEditor:       fg(t.Text).Background(t.Background),
		entity.PartPanel:        bar.Foreground(t.Text),
	}
}

// PartStyle returns the fill style of a workbench part.
func (t *Theme) PartStyle(p entity.Part) lipgloss.Style {
	if s, ok := t.parts[p]; ok {
		return s
	}
	return t.Normal
}
