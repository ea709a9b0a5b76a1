// Package result shows the scored attempt.
package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/ui/components"
	"github.com/abhisek/nmt/internal/ui/layout"
	"github.com/abhisek/nmt/internal/ui/theme"
)

// Actions wires the menu. A nil History hides the history entry.
type Actions struct {
	History func(email string) screen.Screen
	NewTest func() screen.Screen
}

type recordState int

const (
	recordPending recordState = iota
	recordOK
	recordFailed
)

// ResultScreen displays the score, the comment and every question that
// was not fully correct.
type ResultScreen struct {
	report   scoring.Report
	maxScore int
	menu     components.Menu

	offset    int // first visible incorrect entry
	record    recordState
	recordErr error
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen for report.
func New(report scoring.Report, maxScore int, actions Actions) *ResultScreen {
	if maxScore <= 0 {
		maxScore = scoring.MaxScore
	}
	var items []components.MenuItem
	if actions.History != nil {
		email := report.StudentEmail
		items = append(items, components.MenuItem{
			Label: "Мої результати",
			Key:   "h",
			Action: func() tea.Cmd {
				return router.Navigate(router.PushScreenMsg{Screen: actions.History(email)})
			},
		})
	}
	if actions.NewTest != nil {
		items = append(items, components.MenuItem{
			Label: "Новий тест",
			Key:   "n",
			Action: func() tea.Cmd {
				return router.Navigate(router.ReplaceScreenMsg{Screen: actions.NewTest()})
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Вийти",
		Key:    "q",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &ResultScreen{report: report, maxScore: maxScore, menu: components.NewMenu(items)}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Результат"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "PgUp/PgDn", Description: "Помилки"},
		{Key: "↑↓ Enter", Description: "Меню"},
		{Key: "Q", Description: "Вийти"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ctl.RecordedMsg:
		if msg.Err != nil {
			s.record, s.recordErr = recordFailed, msg.Err
		} else {
			s.record = recordOK
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "pgdown", "ctrl+d", "J":
			s.offset = min(s.offset+1, max(len(s.report.Incorrect)-1, 0))
			return s, nil
		case "pgup", "ctrl+u", "K":
			s.offset = max(s.offset-1, 0)
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.report
	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Title.Render("Тест завершено")))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d з %d балів  ·  %d%%", r.Score, s.maxScore, r.Percent)
	b.WriteString(center(lipgloss.NewStyle().Foreground(bandColor(r.Percent)).Bold(true).Render(score)))
	b.WriteString("\n")
	b.WriteString(center(theme.Body.Width(min(width-8, 80)).Align(lipgloss.Center).Render(r.Comment)))
	b.WriteString("\n")
	b.WriteString(center(s.recordLine()))
	b.WriteString("\n\n")

	menu := s.menu.View()
	// Header, score block and menu take the rest; every entry is three lines.
	room := height - strings.Count(b.String(), "\n") - strings.Count(menu, "\n") - 4
	b.WriteString(s.renderIncorrect(width, max(room/3, 1)))
	b.WriteString("\n")
	b.WriteString(menu)
	return b.String()
}

func (s *ResultScreen) recordLine() string {
	switch s.record {
	case recordOK:
		return theme.Correct.Render("Результат збережено")
	case recordFailed:
		return theme.Warning.Render("Не вдалося надіслати результат: " + s.recordErr.Error())
	}
	return theme.Hint.Render("Надсилаємо результат...")
}

func (s *ResultScreen) renderIncorrect(width, visible int) string {
	list := s.report.Incorrect
	if len(list) == 0 {
		return theme.Correct.Render("  Усі відповіді правильні!") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  Завдання з помилками (%d)", len(list))))
	b.WriteString("\n")

	end := min(s.offset+visible, len(list))
	for _, e := range list[s.offset:end] {
		title := fmt.Sprintf("  %d. %s", e.Index, truncate(e.QuestionText, width-8))
		b.WriteString(theme.Body.Render(title))
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("     Ваша відповідь: " + withLatex(e.YourText, e.YourLatex)))
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render("     Правильна відповідь: " + withLatex(e.CorrectText, e.CorrectLatex)))
		b.WriteString("\n")
	}
	if s.offset > 0 || end < len(list) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d–%d з %d", s.offset+1, end, len(list))))
		b.WriteString("\n")
	}
	return b.String()
}

func withLatex(text, latex string) string {
	if latex == "" || latex == text {
		return text
	}
	return text + "  (" + latex + ")"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func bandColor(percent int) color.Color {
	switch scoring.BandFor(percent) {
	case scoring.BandExcellent:
		return theme.Success
	case scoring.BandGood:
		return theme.Secondary
	default:
		return theme.Accent
	}
}
