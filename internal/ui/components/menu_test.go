package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type picked string

func testMenu() Menu {
	item := func(label, k string) MenuItem {
		return MenuItem{Label: label, Key: k, Action: func() tea.Cmd {
			return func() tea.Msg { return picked(label) }
		}}
	}
	return NewMenu([]MenuItem{item("Мої результати", "h"), item("Новий тест", "n"), item("Вийти", "q")})
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestMenuNavigationWraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	assert.Equal(t, 1, m.Selected)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, picked("Новий тест"), runCmd(t, cmd))
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		key  rune
		want picked
	}{
		{'q', "Вийти"},
		{'h', "Мої результати"},
		{'т', "Новий тест"},
		{'й', "Вийти"},
	}
	for _, tt := range tests {
		m, cmd := testMenu().Update(tea.KeyPressMsg{Code: tt.key, Text: string(tt.key)})
		assert.Equal(t, tt.want, runCmd(t, cmd), string(tt.key))
		assert.Equal(t, string(tt.want), m.Items[m.Selected].Label)
	}

	_, cmd := testMenu().Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}

func TestMenuView(t *testing.T) {
	v := testMenu().View()
	assert.Contains(t, v, "▸ [h] Мої результати")
	assert.Contains(t, v, "[q] Вийти")
}
