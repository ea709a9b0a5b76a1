// Package welcome is the first screen: it offers to resume a saved attempt
// and otherwise collects the student's name and email before assembling a
// new test.
package welcome

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/ui/components"
	"github.com/abhisek/nmt/internal/ui/layout"
	"github.com/abhisek/nmt/internal/ui/theme"
)

// prepareTimeout bounds fetching the pool and assembling the test.
const prepareTimeout = 30 * time.Second

type step int

const (
	stepChecking step = iota // looking for a saved attempt
	stepResume               // asking whether to resume it
	stepForm
	stepPreparing
	stepFailed // pool unavailable, Enter retries
)

type resumableMsg struct {
	st  *session.State
	err error
}

type preparedMsg struct {
	st  *session.State
	err error
}

// ExamFactory builds the exam screen for an attached session.
type ExamFactory func() screen.Screen

// WelcomeScreen shows the banner, the resume prompt and the student form.
type WelcomeScreen struct {
	ctrl *ctl.Controller
	exam ExamFactory

	step    step
	saved   *session.State
	name    components.TextInput
	email   components.TextInput
	focus   int // 0 name, 1 email
	formErr string
	failErr error
	started bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen. exam is called once a session has been
// attached to ctrl.
func New(ctrl *ctl.Controller, exam ExamFactory) *WelcomeScreen {
	w := &WelcomeScreen{
		ctrl:  ctrl,
		exam:  exam,
		name:  components.NewTextInput("Прізвище та ім'я", false, 80),
		email: components.NewTextInput("email@example.com", false, 120),
	}
	w.email.Blur()
	return w
}

func (w *WelcomeScreen) Title() string {
	return "Пробне тестування"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	ctrl := w.ctrl
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), prepareTimeout)
		defer cancel()
		st, err := ctrl.Resumable(ctx)
		return resumableMsg{st: st, err: err}
	}
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	switch w.step {
	case stepResume:
		return []layout.KeyHint{
			{Key: "Y", Description: "Продовжити"},
			{Key: "N", Description: "Почати новий"},
		}
	case stepForm:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Наступне поле"},
			{Key: "Enter", Description: "Почати тест"},
		}
	case stepFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Спробувати ще раз"},
			{Key: "Esc", Description: "Змінити дані"},
		}
	}
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resumableMsg:
		if msg.st != nil && msg.err == nil {
			w.saved = msg.st
			w.step = stepResume
			return w, nil
		}
		// A missing, finished or unreadable snapshot all mean a fresh start.
		w.step = stepForm
		return w, w.name.Focus()

	case preparedMsg:
		if msg.err != nil {
			w.failErr = msg.err
			w.step = stepFailed
			return w, nil
		}
		return w, w.start(msg.st, false)

	case tea.KeyPressMsg:
		return w, w.handleKey(msg)
	}
	return w, nil
}

func (w *WelcomeScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	switch w.step {
	case stepResume:
		switch key {
		case "y", "Y", "н", "Н", "enter":
			return w.start(w.saved, true)
		case "n", "N", "т", "Т", "esc":
			w.saved = nil
			w.step = stepForm
			return w.name.Focus()
		}
		return nil

	case stepFailed:
		switch key {
		case "enter", "r":
			return w.prepare()
		case "esc":
			w.step = stepForm
			return w.focusField(w.focus)
		}
		return nil

	case stepForm:
		return w.formKey(msg)
	}
	return nil
}

func (w *WelcomeScreen) formKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "down", "up":
		return w.focusField(1 - w.focus)
	case "enter":
		if w.focus == 0 {
			return w.focusField(1)
		}
		if err := w.validate(); err != "" {
			w.formErr = err
			return nil
		}
		w.formErr = ""
		return w.prepare()
	}

	var cmd tea.Cmd
	if w.focus == 0 {
		w.name, cmd = w.name.Update(msg)
	} else {
		w.email, cmd = w.email.Update(msg)
	}
	return cmd
}

func (w *WelcomeScreen) focusField(i int) tea.Cmd {
	w.focus = i
	if i == 0 {
		w.email.Blur()
		return w.name.Focus()
	}
	w.name.Blur()
	return w.email.Focus()
}

func (w *WelcomeScreen) validate() string {
	if strings.TrimSpace(w.name.Value()) == "" {
		return "Введіть прізвище та ім'я."
	}
	email := strings.TrimSpace(w.email.Value())
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "Введіть коректну адресу електронної пошти."
	}
	return ""
}

// prepare assembles a new test in the background.
func (w *WelcomeScreen) prepare() tea.Cmd {
	w.step = stepPreparing
	w.failErr = nil
	ctrl := w.ctrl
	name := strings.TrimSpace(w.name.Value())
	email := strings.ToLower(strings.TrimSpace(w.email.Value()))
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), prepareTimeout)
		defer cancel()
		st, err := ctrl.Prepare(ctx, name, email)
		return preparedMsg{st: st, err: err}
	}
}

// start attaches st and hands over to the exam screen. It runs at most once.
func (w *WelcomeScreen) start(st *session.State, resumed bool) tea.Cmd {
	if w.started || st == nil {
		return nil
	}
	w.started = true
	attach := w.ctrl.Attach(st, resumed)
	return tea.Batch(attach, router.Navigate(router.ReplaceScreenMsg{Screen: w.exam()}))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width, height), ""}

	sub := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Пробне НМТ з математики")
	sections = append(sections, sub, "")

	switch w.step {
	case stepChecking:
		sections = append(sections, theme.Hint.Render("Перевіряємо збережений тест..."))

	case stepResume:
		st := w.saved
		card := theme.Body.Render("Знайдено незавершений тест") + "\n\n" +
			theme.Hint.Render(st.StudentName+" · "+st.StudentEmail) + "\n" +
			theme.Hint.Render(progressLine(st)) + "\n\n" +
			theme.Selected.Render("Продовжити? (Y/N)")
		sections = append(sections, theme.Card.Render(card))

	case stepForm:
		form := theme.Body.Render("Прізвище та ім'я") + "\n" + w.name.View() + "\n\n" +
			theme.Body.Render("Електронна пошта") + "\n" + w.email.View()
		if w.formErr != "" {
			form += "\n\n" + theme.Incorrect.Render(w.formErr)
		}
		sections = append(sections, theme.Card.Width(min(width-4, 60)).Render(form))

	case stepPreparing:
		sections = append(sections, theme.Hint.Render("Формуємо варіант тесту..."))

	case stepFailed:
		sections = append(sections, theme.Incorrect.Render(failureText(w.failErr)),
			"", theme.Hint.Render("Натисніть Enter, щоб спробувати ще раз."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func progressLine(st *session.State) string {
	left := time.Until(st.EndTime).Round(time.Minute)
	line := fmt.Sprintf("Відповідей: %d з %d", st.AnsweredCount(), st.Len())
	if left > 0 {
		line += fmt.Sprintf(" · залишилось близько %d хв", int(left.Minutes()))
	} else {
		line += " · час вичерпано"
	}
	return line
}

func failureText(err error) string {
	switch {
	case errors.Is(err, ctl.ErrEmptyTest):
		return "У банку питань немає жодного завдання."
	case errors.Is(err, pool.ErrUnavailable):
		return "Не вдалося завантажити питання. Перевірте з'єднання."
	case err != nil:
		return "Не вдалося підготувати тест: " + err.Error()
	}
	return ""
}
