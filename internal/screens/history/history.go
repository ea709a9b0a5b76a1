// Package history lists a student's recorded attempts.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/store"
	"github.com/abhisek/nmt/internal/ui/layout"
	"github.com/abhisek/nmt/internal/ui/theme"
)

// Lister loads attempts for an email, newest first.
type Lister func(ctx context.Context, email string) ([]store.Attempt, error)

const loadTimeout = 10 * time.Second

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen displays past attempts; Enter expands the mistakes of one.
type HistoryScreen struct {
	email    string
	list     Lister
	maxScore int

	attempts []store.Attempt
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for email.
func New(email string, list Lister, maxScore int) *HistoryScreen {
	if maxScore <= 0 {
		maxScore = scoring.MaxScore
	}
	return &HistoryScreen{
		email:    email,
		list:     list,
		maxScore: maxScore,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	list, email := s.list, s.email
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		attempts, err := list(ctx, email)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Мої результати"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Помилки"},
		{Key: "↑↓", Description: "Вибір"},
		{Key: "Esc", Description: "Назад"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Navigate(router.PopScreenMsg{})
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nПомилка: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Завантаження...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Ще немає жодної спроби.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(s.email)))
	b.WriteString("\n\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s   %2d з %d   %3d%%",
			prefix, a.CreatedAt.Local().Format("02.01.2006 15:04"), a.Score, s.maxScore, a.Percent)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderMistakes(a.Incorrect, width))
		}
	}
	return b.String()
}

func renderMistakes(raw json.RawMessage, width int) string {
	var list []scoring.Incorrect
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &list); err != nil {
			return lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Warning.Render("    Не вдалося прочитати відповіді")) + "\n"
		}
	}
	if len(list) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Без помилок")) + "\n"
	}

	var b strings.Builder
	for _, e := range list {
		line := fmt.Sprintf("    %d. %s → %s", e.Index, e.YourText, e.CorrectText)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Incorrect.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
