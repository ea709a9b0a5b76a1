package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// decimalRunes are the keys accepted by a decimal input.
const decimalRunes = "0123456789,.-"

// TextInput wraps bubbles/textinput. A decimal input only accepts digits,
// a decimal separator and a minus sign.
type TextInput struct {
	Model   textinput.Model
	Decimal bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, decimal bool, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti, Decimal: decimal}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Keys a decimal input rejects are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Decimal {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len([]rune(key)) == 1 && !strings.Contains(decimalRunes, key) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}
