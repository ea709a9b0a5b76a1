package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nmt/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushPop(t *testing.T) {
	root := &stubScreen{title: "welcome"}
	r := New(root)

	pushed := &stubScreen{title: "history"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Depth() != 2 || r.Active() != pushed {
		t.Fatalf("after push: depth %d, active %q", r.Depth(), r.Active().Title())
	}
	if !pushed.initRan {
		t.Error("Init() did not run on pushed screen")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != root {
		t.Fatalf("after pop: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d after popping the root, want 1", r.Depth())
	}
}

func TestReplaceResetsStack(t *testing.T) {
	r := New(&stubScreen{title: "welcome"})
	r.Push(&stubScreen{title: "history"})

	exam := &stubScreen{title: "exam"}
	r.Update(ReplaceScreenMsg{Screen: exam})

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != exam || !exam.initRan {
		t.Errorf("active = %q, initRan = %v", r.Active().Title(), exam.initRan)
	}
	if got := r.View(80, 24); got != "exam" {
		t.Errorf("View() = %q, want exam", got)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "welcome"}
	r := New(root)
	top := &stubScreen{title: "history"}
	r.Push(top)

	r.Update("hello")
	if len(top.got) != 1 || len(root.got) != 0 {
		t.Errorf("messages: top %d, root %d; want 1, 0", len(top.got), len(root.got))
	}
}

func TestNavigate(t *testing.T) {
	msg := Navigate(PopScreenMsg{})()
	if _, ok := msg.(PopScreenMsg); !ok {
		t.Errorf("Navigate() produced %T", msg)
	}
}
