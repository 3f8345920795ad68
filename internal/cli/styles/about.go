package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shellgrid/internal/domain/build"
)

// AboutFact is one extra labeled line under the build info.
type AboutFact struct {
	Icon  string
	Label string
	Value string
}

// AboutRenderer renders build info next to a small workbench logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// logo is a workbench: title bar, activity bar, side bar, editor over panel,
// status bar.
const logo = `▄▄▄▄▄▄▄▄▄▄▄
█▌▐▓▓▌░░░░░
█▌▐▓▓▌░░░░░
█▌▐▓▓▌▒▒▒▒▒
▀▀▀▀▀▀▀▀▀▀▀`

// Render lays the logo beside the build info and the facts.
func (r *AboutRenderer) Render(info build.Info, facts []AboutFact) string {
	t := r.theme
	left := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginTop(1).MarginLeft(2).Render(logo)

	all := []AboutFact{
		{IconVersion, "Version", orUnknown(info.Version)},
		{IconGitBranch, "Commit", orUnknown(info.Commit)},
		{IconCalendar, "Built", orUnknown(info.BuildDate)},
		{IconGo, "Go", orUnknown(info.GoVersion)},
	}
	all = append(all, facts...)

	width := 0
	for _, f := range all {
		width = max(width, lipgloss.Width(f.Label))
	}
	label := t.Subtle.Width(width)
	icon := lipgloss.NewStyle().Foreground(t.Accent)

	lines := []string{t.Title.Render(info.Short())}
	for _, f := range all {
		lines = append(lines, fmt.Sprintf("%s %s  %s", icon.Render(f.Icon), label.Render(f.Label), t.Highlight.Render(f.Value)))
	}
	lines = append(lines, "",
		fmt.Sprintf("%s %s", icon.Render(IconGithub), t.Subtle.Render(build.RepoURL())),
		fmt.Sprintf("%s %s", icon.Render(IconHeart), t.Subtle.Render(strings.Join(build.Contributors(), ", "))),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", strings.Join(lines, "\n"))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
