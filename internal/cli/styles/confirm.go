package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmState int

const (
	confirmPending confirmState = iota
	confirmAccepted
	confirmRejected
	confirmCanceled
)

// confirmKeys are the bindings of the confirm dialog.
type confirmKeys struct {
	Yes, No, Toggle, Submit, Cancel key.Binding
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Submit, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var defaultConfirmKeys = confirmKeys{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "cancel")),
}

// ConfirmModel is a yes/no question. It starts on "No"; y and n answer
// immediately, enter answers with the highlighted choice.
type ConfirmModel struct {
	message string
	detail  string
	yes     bool
	state   confirmState
	theme   *Theme
	help    help.Model
}

// NewConfirm creates a dialog asking message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = theme.Subtle
	return ConfirmModel{message: message, theme: theme, help: h}
}

// WithDetail adds a muted line under the message, e.g. what will change.
func (m ConfirmModel) WithDetail(detail string) ConfirmModel {
	m.detail = detail
	return m
}

// Update handles key presses.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}
	switch {
	case key.Matches(k, defaultConfirmKeys.Yes):
		m.state = confirmAccepted
	case key.Matches(k, defaultConfirmKeys.No):
		m.state = confirmRejected
	case key.Matches(k, defaultConfirmKeys.Toggle):
		m.yes = !m.yes
	case key.Matches(k, defaultConfirmKeys.Submit):
		m.state = confirmRejected
		if m.yes {
			m.state = confirmAccepted
		}
	case key.Matches(k, defaultConfirmKeys.Cancel):
		m.state = confirmCanceled
	}
	return m, nil
}

// Cancel closes the dialog without an answer.
func (m *ConfirmModel) Cancel() {
	m.state = confirmCanceled
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme
	button := func(label string, active bool) string {
		if active {
			return t.ActiveButton.Render(label)
		}
		return t.InactiveButton.Render(label)
	}

	rows := []string{t.Title.Render(m.message)}
	if m.detail != "" {
		rows = append(rows, t.Subtle.Render(m.detail), "")
	}
	rows = append(rows,
		lipgloss.JoinHorizontal(lipgloss.Center, button(" No ", !m.yes), "  ", button(" Yes ", m.yes)),
		"",
		m.help.View(defaultConfirmKeys),
	)
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.state != confirmPending
}

// Result reports whether the answer was yes.
func (m ConfirmModel) Result() bool {
	return m.state == confirmAccepted
}
