package styles

import "github.com/charmbracelet/lipgloss"

// BadgeKind selects the colors of a badge.
type BadgeKind int

const (
	BadgeAccent BadgeKind = iota
	BadgeMuted
	BadgeWarning
)

func (t *Theme) initBadges() {
	t.badges = map[BadgeKind]lipgloss.Style{
		BadgeAccent:  fg(t.Background).Background(t.Accent).Padding(0, 1),
		BadgeMuted:   fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1),
		BadgeWarning: fg(t.Background).Background(t.Warning).Padding(0, 1),
	}
}

// Badge renders text as a small colored pill.
func (t *Theme) Badge(kind BadgeKind, text string) string {
	return t.badges[kind].Render(text)
}

// VisibilityBadge renders "shown" or "hidden".
func (t *Theme) VisibilityBadge(visible bool) string {
	if visible {
		return t.Badge(BadgeAccent, "shown")
	}
	return t.Badge(BadgeMuted, "hidden")
}

// FlagBadge renders a mode name, lit when on.
func (t *Theme) FlagBadge(name string, on bool) string {
	if on {
		return t.Badge(BadgeWarning, name)
	}
	return t.Badge(BadgeMuted, name)
}
