package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/ui/components"
	"github.com/abhisek/nmt/internal/ui/theme"
)

// gridPerRow is the number of question cells per grid row.
const gridPerRow = 16

func (s *ExamScreen) View(width, height int) string {
	st := s.ctrl.State()
	if st == nil {
		return theme.Hint.Render("  " + s.errMsg)
	}
	contentWidth := min(width-4, 100)

	var b strings.Builder
	b.WriteString(renderGrid(st))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("Відповіді", st.AnsweredCount(), st.Len(), contentWidth).View())
	b.WriteString("\n\n")

	v := s.view()
	b.WriteString(s.renderQuestion(v, contentWidth))

	if s.confirm {
		b.WriteString("\n")
		b.WriteString(s.renderConfirm(st))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	}
	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render("  Не вдалося зберегти прогрес: " + s.saveErr.Error()))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// renderGrid draws one cell per question: the current one highlighted,
// flagged ones with ⚑ and answered ones in green.
func renderGrid(st *session.State) string {
	var rows []string
	var row []string
	for i, sl := range st.Slots() {
		label := fmt.Sprintf("%2d", i+1)
		style := theme.CellEmpty
		switch {
		case i == st.Current():
			style = theme.CellCurrent
		case sl.Flagged:
			style = theme.CellFlagged
		case sl.Answered():
			style = theme.CellAnswered
		}
		mark := " "
		if sl.Flagged {
			mark = "⚑"
		}
		row = append(row, style.Render(label)+mark)
		if len(row) == gridPerRow {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}

	legend := theme.CellAnswered.Render("■ з відповіддю") + "   " +
		theme.CellFlagged.Render("⚑ позначено") + "   " +
		theme.CellEmpty.Render("■ без відповіді")
	return strings.Join(rows, "\n") + "\n" + legend + "\n"
}

func (s *ExamScreen) renderQuestion(v View, width int) string {
	var b strings.Builder

	header := kindLabel(v.Kind)
	if v.Flagged {
		header += "  " + theme.CellFlagged.Render("⚑ позначено")
	}
	b.WriteString(theme.Hint.Render(header))
	b.WriteString("\n\n")

	if v.Text != "" {
		b.WriteString(theme.Body.Width(width).Render(v.Text))
		b.WriteString("\n")
	}
	if v.Latex != "" {
		b.WriteString(theme.Formula.Render("  " + v.Latex))
		b.WriteString("\n")
	}
	if v.Image != "" {
		b.WriteString(theme.Hint.Render("  [рисунок: " + v.Image + "]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch v.Kind {
	case question.KindSingle:
		b.WriteString(components.ChoiceList{
			Choices: choices(v.Options),
			Cursor:  s.cursor,
			Active:  true,
		}.View())

	case question.KindMatching:
		b.WriteString(s.renderMatching(v))

	case question.KindShort:
		b.WriteString("  Відповідь: ")
		b.WriteString(s.input.View())
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Десяткове число, наприклад -2,5"))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ExamScreen) renderMatching(v View) string {
	var b strings.Builder
	for i, stem := range v.Stems {
		prefix := "  "
		style := theme.Unselected
		if i == s.cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		chosen := "_"
		if stem.Chosen != "" {
			chosen = stem.Chosen
		}
		line := fmt.Sprintf("%s%s. %s  →  [%s]", prefix, stem.Key, stem.Text, chosen)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.ChoiceList{Choices: choices(v.Endings)}.View())
	return b.String()
}

func (s *ExamScreen) renderConfirm(st *session.State) string {
	msg := "Завершити тест і надіслати відповіді?"
	if left := st.Len() - st.AnsweredCount(); left > 0 {
		msg = fmt.Sprintf("Без відповіді залишилось %d з %d. %s", left, st.Len(), msg)
	}
	return theme.Card.Render(theme.Warning.Render(msg) + "\n\n" + theme.Hint.Render("Y: так   N: ні"))
}

func choices(opts []OptionView) []components.Choice {
	out := make([]components.Choice, len(opts))
	for i, o := range opts {
		out[i] = components.Choice{Label: o.Label, Text: o.Text, Marked: o.Chosen}
	}
	return out
}

func kindLabel(k question.Kind) string {
	switch k {
	case question.KindSingle:
		return "Виберіть одну правильну відповідь"
	case question.KindMatching:
		return "Установіть відповідність"
	case question.KindShort:
		return "Запишіть відповідь"
	}
	return ""
}
