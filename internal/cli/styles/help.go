package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the interactive layout preview.
type PreviewKeyMap struct {
	SideBar      key.Binding
	Panel        key.Binding
	AuxiliaryBar key.Binding
	ActivityBar  key.Binding
	StatusBar    key.Binding
	Zen          key.Binding
	Maximize     key.Binding
	Center       key.Binding
	SideBarSide  key.Binding
	PanelSide    key.Binding
	Alignment    key.Binding
	Grow         key.Binding
	Shrink       key.Binding
	Parts        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SideBar, k.Panel, k.Zen, k.Parts, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SideBar, k.Panel, k.AuxiliaryBar, k.ActivityBar, k.StatusBar},
		{k.SideBarSide, k.PanelSide, k.Alignment, k.Maximize},
		{k.Zen, k.Center, k.Grow, k.Shrink},
		{k.Parts, k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		SideBar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "side bar"),
		),
		Panel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "panel"),
		),
		AuxiliaryBar: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "secondary side bar"),
		),
		ActivityBar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "activity bar"),
		),
		StatusBar: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "status bar"),
		),
		Zen: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zen mode"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "maximize panel"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center editor"),
		),
		SideBarSide: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "side bar left/right"),
		),
		PanelSide: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle panel position"),
		),
		Alignment: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "cycle panel alignment"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen side bar"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrow side bar"),
		),
		Parts: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "parts table"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
