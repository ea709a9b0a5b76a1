package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/store"
)

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestListsAttempts(t *testing.T) {
	var gotEmail string
	s := New("olena@example.com", func(_ context.Context, email string) ([]store.Attempt, error) {
		gotEmail = email
		return []store.Attempt{
			{Score: 28, Percent: 88, CreatedAt: time.Date(2026, 5, 21, 10, 0, 0, 0, time.UTC),
				Incorrect: json.RawMessage(`[{"index":4,"yourText":"А) 1","correctText":"Б) 2"}]`)},
			{Score: 12, Percent: 38, CreatedAt: time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)},
		}, nil
	}, 0)

	if v := s.View(100, 30); !strings.Contains(v, "Завантаження") {
		t.Errorf("expected loading state, got:\n%s", v)
	}
	load(s)
	if gotEmail != "olena@example.com" {
		t.Errorf("email = %q", gotEmail)
	}

	view := s.View(100, 30)
	for _, want := range []string{"28 з 32", "88%", "12 з 32"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if v := s.View(100, 30); !strings.Contains(v, "4. А) 1 → Б) 2") {
		t.Errorf("expanded view missing mistake:\n%s", v)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if v := s.View(100, 30); !strings.Contains(v, "Без помилок") {
		t.Errorf("expected no-mistakes line:\n%s", v)
	}
}

func TestEmptyAndError(t *testing.T) {
	s := New("x@example.com", func(context.Context, string) ([]store.Attempt, error) { return nil, nil }, 32)
	load(s)
	if v := s.View(80, 24); !strings.Contains(v, "Ще немає жодної спроби") {
		t.Errorf("empty view:\n%s", v)
	}

	s = New("x@example.com", func(context.Context, string) ([]store.Attempt, error) {
		return nil, errors.New("db down")
	}, 32)
	load(s)
	if v := s.View(80, 24); !strings.Contains(v, "db down") {
		t.Errorf("error view:\n%s", v)
	}
}

func TestEscPops(t *testing.T) {
	s := New("x@example.com", nil, 32)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop")
	}
}
