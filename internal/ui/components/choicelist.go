package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nmt/internal/ui/theme"
)

// Choice is one labelled row of a ChoiceList.
type Choice struct {
	Label string
	Text  string
	// Marked rows are drawn as chosen, e.g. the stored answer.
	Marked bool
}

// ChoiceList renders labelled options with a cursor. It keeps no state of
// its own; the owning screen moves the cursor and decides what is marked.
type ChoiceList struct {
	Choices []Choice
	Cursor  int
	// Active is false when the list is shown for reference only.
	Active bool
}

// View renders the list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, ch := range c.Choices {
		prefix := "  "
		if c.Active && i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if ch.Marked {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, ch.Label, ch.Text)

		style := theme.Unselected
		switch {
		case ch.Marked:
			style = theme.Correct
		case c.Active && i == c.Cursor:
			style = theme.Selected
		case !c.Active:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
