// Package exam is the question-answering screen of an attempt.
package exam

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/timer"
	"github.com/abhisek/nmt/internal/ui/components"
	"github.com/abhisek/nmt/internal/ui/layout"
)

// ResultFactory builds the screen shown once the attempt is scored.
type ResultFactory func(report scoring.Report) screen.Screen

// ExamScreen lets the student move between questions, answer them and
// finish the attempt. Time expiry finishes it automatically.
type ExamScreen struct {
	ctrl   *ctl.Controller
	clock  *timer.Countdown
	now    func() time.Time
	result ResultFactory

	cursor  int // option row (single) or stem row (matching)
	input   components.TextInput
	confirm bool
	saveErr error
	errMsg  string
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)

// New creates the screen for the session attached to ctrl. A nil now uses
// the wall clock.
func New(ctrl *ctl.Controller, result ResultFactory, now func() time.Time) *ExamScreen {
	if now == nil {
		now = time.Now
	}
	s := &ExamScreen{
		ctrl:   ctrl,
		now:    now,
		result: result,
		input:  components.NewTextInput("Ваша відповідь", true, 16),
	}
	if st := ctrl.State(); st != nil {
		s.clock = timer.Start(st.ID, st.EndTime)
	}
	return s
}

func (s *ExamScreen) Init() tea.Cmd {
	st := s.ctrl.State()
	if st == nil {
		s.errMsg = "Немає активного тесту."
		return nil
	}
	// The first tick fires immediately so a resumed session that is already
	// past its deadline finishes without waiting a full interval.
	id, now := s.clock.ID(), s.now()
	first := func() tea.Msg { return timer.TickMsg{ID: id, Time: now} }
	return tea.Batch(first, s.goTo(st.Current()), s.input.Init())
}

func (s *ExamScreen) Title() string {
	st := s.ctrl.State()
	if st == nil {
		return "Тест"
	}
	return fmt.Sprintf("Питання %d з %d", st.Current()+1, st.Len())
}

// Status shows the countdown in the header. It turns orange in the last
// ten minutes and red in the last one.
func (s *ExamScreen) Status() layout.Status {
	if s.clock == nil {
		return layout.Status{}
	}
	left := s.clock.Remaining(s.now())
	st := layout.Status{Text: timer.Format(left)}
	switch {
	case left <= time.Minute:
		st.Tone = layout.ToneAlert
	case left <= 10*time.Minute:
		st.Tone = layout.ToneWarn
	}
	return st
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if s.confirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Здати"},
			{Key: "N", Description: "Повернутися"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab/Shift+Tab", Description: "Далі/Назад"},
	}
	switch s.currentKind() {
	case question.KindSingle:
		hints = append(hints, layout.KeyHint{Key: "↑↓ Enter", Description: "Вибрати"})
	case question.KindMatching:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Рядок"},
			layout.KeyHint{Key: "1-5", Description: "Відповідь"},
			layout.KeyHint{Key: "Del", Description: "Очистити"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+F", Description: "Позначити"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Завершити"})
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		return s, s.handleTick(msg)

	case ctl.SavedMsg:
		s.saveErr = msg.Err
		return s, nil

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *ExamScreen) handleTick(msg timer.TickMsg) tea.Cmd {
	if s.clock == nil || !s.clock.Owns(msg) {
		return nil
	}
	if _, expired := s.clock.Observe(msg.Time); expired {
		return s.finish(ctl.ReasonTimeout)
	}
	return s.clock.Tick()
}

// finish scores the attempt and moves to the result screen. Only the first
// call has any effect.
func (s *ExamScreen) finish(reason string) tea.Cmd {
	report, cmd, ok := s.ctrl.Finish(reason)
	if s.clock != nil {
		s.clock.Stop()
	}
	if !ok {
		return nil
	}
	s.confirm = false
	return tea.Batch(cmd, router.Navigate(router.ReplaceScreenMsg{Screen: s.result(report)}))
}

func (s *ExamScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	st := s.ctrl.State()
	if st == nil || st.Finished() {
		return nil
	}
	key := msg.String()

	if s.confirm {
		switch key {
		case "y", "Y", "н", "Н", "enter":
			return s.finish(ctl.ReasonManual)
		case "n", "N", "т", "Т", "esc":
			s.confirm = false
		}
		return nil
	}

	switch key {
	case "tab", "pgdown":
		return s.goTo(st.Current() + 1)
	case "shift+tab", "pgup":
		return s.goTo(st.Current() - 1)
	case "home":
		return s.goTo(0)
	case "end":
		return s.goTo(st.Len() - 1)
	case "ctrl+f":
		return s.mutate(func(st *session.State) error { return st.ToggleFlag(st.Current()) })
	case "ctrl+s":
		s.confirm = true
		return nil
	}

	switch s.currentKind() {
	case question.KindSingle:
		return s.singleKey(key)
	case question.KindMatching:
		return s.matchingKey(key)
	case question.KindShort:
		return s.shortKey(msg)
	}
	return nil
}

func (s *ExamScreen) singleKey(key string) tea.Cmd {
	v := s.view()
	switch key {
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
		return nil
	case "down", "j":
		s.cursor = min(s.cursor+1, max(len(v.Options)-1, 0))
		return nil
	case "enter", "space":
		return s.choose(v.Options, s.cursor)
	}
	if i, ok := pick(key, v.Options); ok {
		s.cursor = i
		return s.choose(v.Options, i)
	}
	return nil
}

func (s *ExamScreen) choose(opts []OptionView, i int) tea.Cmd {
	if i < 0 || i >= len(opts) {
		return nil
	}
	label := opts[i].Label
	return s.mutate(func(st *session.State) error {
		return st.SetAnswer(st.Current(), session.SingleAnswer(label))
	})
}

func (s *ExamScreen) matchingKey(key string) tea.Cmd {
	v := s.view()
	switch key {
	case "up", "k":
		s.cursor = max(s.cursor-1, 0)
		return nil
	case "down", "j":
		s.cursor = min(s.cursor+1, max(len(v.Stems)-1, 0))
		return nil
	}
	if s.cursor >= len(v.Stems) {
		return nil
	}
	stem := v.Stems[s.cursor].Key

	if key == "backspace" || key == "delete" {
		return s.mutate(func(st *session.State) error { return st.SetPair(st.Current(), stem, "") })
	}
	if i, ok := pick(key, v.Endings); ok {
		label := v.Endings[i].Label
		if s.cursor < len(v.Stems)-1 {
			s.cursor++
		}
		return s.mutate(func(st *session.State) error { return st.SetPair(st.Current(), stem, label) })
	}
	return nil
}

func (s *ExamScreen) shortKey(msg tea.KeyPressMsg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	after := s.input.Value()
	if after == before {
		return cmd
	}
	return tea.Batch(cmd, s.mutate(func(st *session.State) error {
		return st.SetAnswer(st.Current(), session.ShortAnswer(after))
	}))
}

// pick resolves a key to a row: "1".."9" by position, otherwise by label
// (case-insensitive, so both А and а select the Cyrillic А).
func pick(key string, opts []OptionView) (int, bool) {
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(opts) {
		return n - 1, true
	}
	for i, o := range opts {
		if o.Label != "" && strings.EqualFold(o.Label, key) {
			return i, true
		}
	}
	return 0, false
}

// goTo navigates to slot i, clamped to the session, and loads its answer
// into the inputs.
func (s *ExamScreen) goTo(i int) tea.Cmd {
	st := s.ctrl.State()
	i = min(max(i, 0), st.Len()-1)
	cmd := s.mutate(func(st *session.State) error { return st.GoTo(i) })

	s.cursor = 0
	s.input.SetValue("")
	if sl, err := st.Slot(i); err == nil {
		v := BuildView(sl)
		s.input.SetValue(v.Short)
		for j, o := range v.Options {
			if o.Chosen {
				s.cursor = j
			}
		}
	}
	return cmd
}

func (s *ExamScreen) mutate(fn func(*session.State) error) tea.Cmd {
	cmd, err := s.ctrl.Mutate(fn)
	if err != nil && !errors.Is(err, session.ErrFinished) {
		s.errMsg = err.Error()
	}
	return cmd
}

func (s *ExamScreen) current() (session.Slot, bool) {
	st := s.ctrl.State()
	if st == nil {
		return session.Slot{}, false
	}
	sl, err := st.Slot(st.Current())
	return sl, err == nil
}

func (s *ExamScreen) currentKind() question.Kind {
	sl, ok := s.current()
	if !ok {
		return ""
	}
	return sl.Kind
}

func (s *ExamScreen) view() View {
	sl, _ := s.current()
	return BuildView(sl)
}
