package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nmt/internal/ui/theme"
)

// MenuItem is one menu entry. Key is an optional single-letter shortcut;
// the letter in the same place on the Ukrainian layout works too.
type MenuItem struct {
	Label  string
	Key    string
	Action func() tea.Cmd
}

// Menu is a vertical list of actions. Moving past either end wraps.
type Menu struct {
	Items    []MenuItem
	Selected int
}

var menuKeys = struct {
	Up, Down, Run key.Binding
}{
	Up:   key.NewBinding(key.WithKeys("up", "k", "л")),
	Down: key.NewBinding(key.WithKeys("down", "j", "о")),
	Run:  key.NewBinding(key.WithKeys("enter", "space")),
}

// ukrainianKey maps QWERTY letters to the ЙЦУКЕН key in the same place.
var ukrainianKey = map[rune]rune{
	'q': 'й', 'w': 'ц', 'e': 'у', 'r': 'к', 't': 'е', 'y': 'н', 'u': 'г', 'i': 'ш', 'o': 'щ', 'p': 'з',
	'a': 'ф', 's': 'і', 'd': 'в', 'f': 'а', 'g': 'п', 'h': 'р', 'j': 'о', 'k': 'л', 'l': 'д',
	'z': 'я', 'x': 'ч', 'c': 'с', 'v': 'м', 'b': 'и', 'n': 'т', 'm': 'ь',
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}
	n := len(m.Items)
	switch {
	case key.Matches(kp, menuKeys.Up):
		m.Selected = (m.Selected - 1 + n) % n
		return m, nil
	case key.Matches(kp, menuKeys.Down):
		m.Selected = (m.Selected + 1) % n
		return m, nil
	case key.Matches(kp, menuKeys.Run):
		return m, m.run(m.Selected)
	}
	if i := m.shortcut(kp.String()); i >= 0 {
		m.Selected = i
		return m, m.run(i)
	}
	return m, nil
}

// shortcut finds the item bound to pressed, or -1.
func (m Menu) shortcut(pressed string) int {
	for i, it := range m.Items {
		if it.Key == "" {
			continue
		}
		if pressed == it.Key {
			return i
		}
		r := []rune(it.Key)
		if len(r) == 1 && pressed == string(ukrainianKey[r[0]]) {
			return i
		}
	}
	return -1
}

func (m Menu) run(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		label := it.Label
		if it.Key != "" {
			label = "[" + it.Key + "] " + label
		}
		if i == m.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + label))
		} else {
			b.WriteString(theme.Unselected.Render("    " + label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
