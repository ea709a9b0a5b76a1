package welcome

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/session"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "exam" }
func (s *stubScreen) Title() string                           { return "Exam" }

type identity struct{}

func (identity) Assemble(qs []question.Question) []question.Question { return qs }

// flakySource fails the first fails fetches.
type flakySource struct {
	mu    sync.Mutex
	fails int
	calls int
}

func (f *flakySource) Fetch(context.Context) ([]question.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.fails {
		return nil, fmt.Errorf("fetch: %w", pool.ErrUnavailable)
	}
	var r question.Record
	if err := json.Unmarshal([]byte(`{"id":1,"question":"x?","answer_format":"decimal","answer":"1"}`), &r); err != nil {
		panic(err)
	}
	return []question.Question{question.Decode(r)}, nil
}

type memSnapshots struct {
	snap *session.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, s session.Snapshot) error {
	m.snap = &s
	return nil
}
func (m *memSnapshots) Load(context.Context) (*session.Snapshot, error) { return m.snap, nil }
func (m *memSnapshots) Clear(context.Context) error                     { m.snap = nil; return nil }

func newWelcome(src pool.Source, snaps ctl.SnapshotStore) (*WelcomeScreen, *ctl.Controller, *int) {
	c := ctl.New(ctl.Options{Source: src, Assembler: identity{}, Snapshots: snaps})
	calls := 0
	w := New(c, func() screen.Screen {
		calls++
		return &stubScreen{}
	})
	return w, c, &calls
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(w *WelcomeScreen, s string) {
	for _, r := range s {
		w.Update(press(r))
	}
}

// run executes cmd and feeds its message back into the screen.
func run(w *WelcomeScreen, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	_, next := w.Update(cmd())
	return next
}

func replaced(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				if _, ok := c().(router.ReplaceScreenMsg); ok {
					return true
				}
			}
		}
		return false
	}
	_, ok := msg.(router.ReplaceScreenMsg)
	return ok
}

func TestFreshStartGoesToForm(t *testing.T) {
	w, _, _ := newWelcome(&flakySource{}, &memSnapshots{})
	if w.step != stepChecking {
		t.Fatalf("step = %v, want checking", w.step)
	}
	run(w, w.Init())
	if w.step != stepForm {
		t.Errorf("step = %v, want form", w.step)
	}
}

func TestFormStartsExam(t *testing.T) {
	w, c, calls := newWelcome(&flakySource{}, &memSnapshots{})
	run(w, w.Init())

	typeText(w, "Олена Коваль")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.focus != 1 {
		t.Fatalf("focus = %d, want email", w.focus)
	}
	typeText(w, "Olena@Example.com")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if w.step != stepPreparing {
		t.Fatalf("step = %v, want preparing", w.step)
	}
	next := run(w, cmd)
	if !replaced(t, next) {
		t.Fatal("expected a ReplaceScreenMsg after preparing")
	}
	if *calls != 1 {
		t.Errorf("exam factory calls = %d, want 1", *calls)
	}
	st := c.State()
	if st == nil {
		t.Fatal("no session attached")
	}
	if st.StudentName != "Олена Коваль" || st.StudentEmail != "olena@example.com" {
		t.Errorf("student = %q <%q>", st.StudentName, st.StudentEmail)
	}
}

func TestFormValidation(t *testing.T) {
	tests := []struct {
		name, email string
		want        string
	}{
		{"", "a@b.c", "прізвище"},
		{"Іван", "", "адресу"},
		{"Іван", "not-an-email", "адресу"},
		{"Іван", "Іван <a@b.c>", "адресу"},
	}
	for _, tt := range tests {
		w, _, _ := newWelcome(&flakySource{}, nil)
		run(w, w.Init())
		typeText(w, tt.name)
		w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
		typeText(w, tt.email)

		_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd != nil {
			t.Errorf("%q/%q: expected no command", tt.name, tt.email)
		}
		if w.step != stepForm {
			t.Errorf("%q/%q: step = %v, want form", tt.name, tt.email, w.step)
		}
		if !strings.Contains(w.formErr, tt.want) {
			t.Errorf("%q/%q: formErr = %q, want it to mention %q", tt.name, tt.email, w.formErr, tt.want)
		}
	}
}

func TestPoolUnavailableRetries(t *testing.T) {
	src := &flakySource{fails: 1}
	w, _, calls := newWelcome(src, nil)
	run(w, w.Init())
	typeText(w, "Іван")
	w.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(w, "ivan@example.com")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	run(w, cmd)
	if w.step != stepFailed {
		t.Fatalf("step = %v, want failed", w.step)
	}
	if !errors.Is(w.failErr, pool.ErrUnavailable) {
		t.Errorf("failErr = %v, want ErrUnavailable", w.failErr)
	}
	if v := w.View(100, 40); !strings.Contains(v, "спробувати ще раз") {
		t.Errorf("view lacks retry hint:\n%s", v)
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !replaced(t, run(w, cmd)) {
		t.Fatal("retry should start the exam")
	}
	if src.calls != 2 || *calls != 1 {
		t.Errorf("fetches = %d, factory calls = %d", src.calls, *calls)
	}
}

func savedSnapshot(t *testing.T) *memSnapshots {
	t.Helper()
	var r question.Record
	if err := json.Unmarshal([]byte(`{"id":7,"question":"y?","answer_format":"decimal","answer":"3"}`), &r); err != nil {
		t.Fatal(err)
	}
	st, err := session.New([]question.Question{question.Decode(r)}, "Петро", "petro@example.com", time.Now().Add(20*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SetAnswer(0, session.ShortAnswer("3")); err != nil {
		t.Fatal(err)
	}
	snap := st.Snapshot()
	return &memSnapshots{snap: &snap}
}

func TestResumePrompt(t *testing.T) {
	w, c, calls := newWelcome(&flakySource{}, savedSnapshot(t))
	run(w, w.Init())
	if w.step != stepResume {
		t.Fatalf("step = %v, want resume", w.step)
	}
	if v := w.View(100, 40); !strings.Contains(v, "Відповідей: 1 з 1") {
		t.Errorf("view lacks progress:\n%s", v)
	}

	_, cmd := w.Update(press('y'))
	if !replaced(t, cmd) {
		t.Fatal("expected a ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
	if st := c.State(); st == nil || st.StudentEmail != "petro@example.com" {
		t.Errorf("resumed session = %+v", st)
	}

	// A second confirmation does nothing.
	_, cmd = w.Update(press('y'))
	if cmd != nil || *calls != 1 {
		t.Error("start should run only once")
	}
}

func TestDeclineResume(t *testing.T) {
	w, c, _ := newWelcome(&flakySource{}, savedSnapshot(t))
	run(w, w.Init())

	w.Update(press('n'))
	if w.step != stepForm {
		t.Fatalf("step = %v, want form", w.step)
	}
	if c.State() != nil {
		t.Error("declining must not attach the saved session")
	}
}

func TestFinishedSnapshotIsNotOffered(t *testing.T) {
	snaps := savedSnapshot(t)
	snaps.snap.Finished = true
	w, _, _ := newWelcome(&flakySource{}, snaps)
	run(w, w.Init())
	if w.step != stepForm {
		t.Errorf("step = %v, want form", w.step)
	}
}

func TestFailureText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ctl.ErrEmptyTest, "немає жодного"},
		{fmt.Errorf("x: %w", pool.ErrUnavailable), "Не вдалося завантажити"},
		{errors.New("boom"), "boom"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := failureText(tt.err); !strings.Contains(got, tt.want) {
			t.Errorf("failureText(%v) = %q, want it to contain %q", tt.err, got, tt.want)
		}
	}
}

func TestRenderBanner(t *testing.T) {
	if got := RenderBanner(30, 40); !strings.Contains(got, "Н М Т") {
		t.Errorf("narrow banner = %q", got)
	}
	if got := RenderBanner(80, 24); !strings.Contains(got, "Н М Т") {
		t.Errorf("short banner = %q", got)
	}
	if got := RenderBanner(80, 40); !strings.Contains(got, "███") {
		t.Errorf("full banner = %q", got)
	}
}
