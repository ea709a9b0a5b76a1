package result

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func testReport(incorrect int) scoring.Report {
	r := scoring.Report{
		StudentName:  "Олена",
		StudentEmail: "olena@example.com",
		Score:        20,
		Percent:      63,
		Comment:      scoring.Comment(63),
	}
	for i := range incorrect {
		r.Incorrect = append(r.Incorrect, scoring.Incorrect{
			Index:        i + 1,
			QuestionText: "Питання",
			YourText:     scoring.Placeholder,
			CorrectText:  "Б) 4",
		})
	}
	return r
}

func TestViewShowsScore(t *testing.T) {
	s := New(testReport(2), 32, Actions{})
	view := s.View(100, 40)

	for _, want := range []string{"20 з 32 балів", "63%", "Є над чим попрацювати", "Завдання з помилками (2)", "Правильна відповідь: Б) 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAllCorrect(t *testing.T) {
	r := testReport(0)
	r.Score, r.Percent, r.Comment = 32, 100, scoring.Comment(100)
	view := New(r, 0, Actions{}).View(100, 40)
	if !strings.Contains(view, "Усі відповіді правильні") {
		t.Error("expected the all-correct message")
	}
	if !strings.Contains(view, "32 з 32") {
		t.Error("max score should default to 32")
	}
}

func TestRecordedStatus(t *testing.T) {
	s := New(testReport(1), 32, Actions{})
	if !strings.Contains(s.View(100, 40), "Надсилаємо результат") {
		t.Error("expected pending status")
	}

	s.Update(ctl.RecordedMsg{Err: errors.New("offline")})
	if !strings.Contains(s.View(100, 40), "Не вдалося надіслати результат: offline") {
		t.Error("expected failure status")
	}

	s.Update(ctl.RecordedMsg{})
	if !strings.Contains(s.View(100, 40), "Результат збережено") {
		t.Error("expected saved status")
	}
}

func TestScrollIncorrect(t *testing.T) {
	s := New(testReport(5), 32, Actions{})

	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	}
	if s.offset != 4 {
		t.Errorf("offset = %d, want 4", s.offset)
	}
	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	}
	if s.offset != 0 {
		t.Errorf("offset = %d, want 0", s.offset)
	}

	// A short terminal shows a window with a position marker.
	if view := s.View(100, 20); !strings.Contains(view, "з 5") {
		t.Errorf("expected a range marker in:\n%s", view)
	}
}

func TestMenuActions(t *testing.T) {
	var historyFor string
	s := New(testReport(1), 32, Actions{
		History: func(email string) screen.Screen {
			historyFor = email
			return &stubScreen{name: "history"}
		},
		NewTest: func() screen.Screen { return &stubScreen{name: "welcome"} },
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if cmd == nil {
		t.Fatal("expected a command for history")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("history should push a screen")
	}
	if historyFor != "olena@example.com" {
		t.Errorf("history email = %q", historyFor)
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen.Title() != "welcome" {
		t.Errorf("new test should replace with welcome, got %#v", msg)
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestHistoryHiddenWithoutLister(t *testing.T) {
	s := New(testReport(0), 32, Actions{})
	if strings.Contains(s.View(100, 40), "Мої результати") {
		t.Error("history entry should be hidden")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"коротко", 20, "коротко"},
		{"довгий текст", 6, "довги…"},
		{"x", 0, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
