package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m ConfirmModel, keys ...tea.KeyMsg) ConfirmModel {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		done     bool
		accepted bool
	}{
		{"enter keeps the default no", []tea.KeyMsg{{Type: tea.KeyEnter}}, true, false},
		{"y answers yes", []tea.KeyMsg{runeKey('y')}, true, true},
		{"n answers no", []tea.KeyMsg{runeKey('n')}, true, false},
		{"switch then enter", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, true, true},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEsc}}, true, false},
		{"switching alone does not answer", []tea.KeyMsg{{Type: tea.KeyLeft}}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewConfirm(DefaultTheme(), "Forget the stored layout?"), tt.keys...)
			assert.Equal(t, tt.done, m.Done())
			assert.Equal(t, tt.accepted, m.Result())
		})
	}
}

func TestConfirm_AnswerIsFinal(t *testing.T) {
	m := press(NewConfirm(DefaultTheme(), "Rewrite?"), runeKey('n'), runeKey('y'))
	assert.False(t, m.Result())
}

func TestConfirm_ViewShowsDetail(t *testing.T) {
	m := NewConfirm(DefaultTheme(), "Forget the stored layout?").WithDetail("/home/me/project")
	view := m.View()
	assert.Contains(t, view, "Forget the stored layout?")
	assert.Contains(t, view, "/home/me/project")
	assert.Contains(t, view, "Yes")
}
