package exam

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/question"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
	"github.com/abhisek/nmt/internal/session"
	"github.com/abhisek/nmt/internal/timer"
	"github.com/abhisek/nmt/internal/ui/layout"
)

var start = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

type identity struct{}

func (identity) Assemble(qs []question.Question) []question.Question { return qs }

func decode(t *testing.T, src string) question.Question {
	t.Helper()
	var r question.Record
	require.NoError(t, json.Unmarshal([]byte(src), &r))
	return question.Decode(r)
}

func testPool(t *testing.T) pool.Static {
	return pool.Static{
		decode(t, `{"id":1,"question":"2+2?",
			"options":[{"label":"А","text":"3"},{"label":"Б","text":"4"},{"label":"В","text":"5"}],
			"answer":[{"label":"Б","text":"4"}]}`),
		decode(t, `{"id":2,"question":"Match",
			"statements":[{"label":"1","text":"x^2"},{"label":"2","text":"x^3"}],
			"endings":{"А":"парна","Б":"непарна","В":"ні те, ні інше"},
			"answer":[{"statement":1,"label":"А"},{"statement":2,"label":"Б"}]}`),
		decode(t, `{"id":3,"question":"Solve 2x=5","answer_format":"decimal","answer":"2,5"}`),
	}
}

// stubResult records the report it was built with.
type stubResult struct {
	report scoring.Report
}

func (s *stubResult) Init() tea.Cmd                           { return nil }
func (s *stubResult) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubResult) View(int, int) string                    { return "result" }
func (s *stubResult) Title() string                           { return "Результат" }

func newScreen(t *testing.T, now *time.Time) *ExamScreen {
	t.Helper()
	clock := func() time.Time { return *now }
	c := ctl.New(ctl.Options{
		Source:    testPool(t),
		Assembler: identity{},
		Duration:  time.Hour,
		Now:       clock,
	})
	st, err := c.Prepare(context.Background(), "Олена", "olena@example.com")
	require.NoError(t, err)
	c.Attach(st, false)

	return New(c, func(r scoring.Report) screen.Screen { return &stubResult{report: r} }, clock)
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

// drain runs cmd and every command it batches. Tick commands must not be
// passed in, they sleep.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func slot(t *testing.T, s *ExamScreen, i int) session.Slot {
	t.Helper()
	sl, err := s.ctrl.State().Slot(i)
	require.NoError(t, err)
	return sl
}

func TestBuildView(t *testing.T) {
	p := testPool(t)

	single := BuildView(session.Slot{Question: p[0], Kind: question.KindSingle, Answer: ptr(session.SingleAnswer("Б"))})
	require.Len(t, single.Options, 3)
	assert.Equal(t, "2+2?", single.Text)
	assert.False(t, single.Options[0].Chosen)
	assert.True(t, single.Options[1].Chosen)

	matching := BuildView(session.Slot{
		Question: p[1],
		Kind:     question.KindMatching,
		Answer:   ptr(session.MatchingAnswer(map[string]string{"2": "В"})),
		Flagged:  true,
	})
	assert.True(t, matching.Flagged)
	require.Len(t, matching.Stems, 2)
	assert.Equal(t, "", matching.Stems[0].Chosen)
	assert.Equal(t, "В", matching.Stems[1].Chosen)
	require.Len(t, matching.Endings, 3)
	assert.True(t, matching.Endings[2].Chosen)
	assert.False(t, matching.Endings[0].Chosen)

	short := BuildView(session.Slot{Question: p[2], Kind: question.KindShort, Answer: ptr(session.ShortAnswer("2,5"))})
	assert.Equal(t, "2,5", short.Short)
}

func TestBuildView_Malformed(t *testing.T) {
	v := BuildView(session.Slot{Question: question.Question{Text: "?"}, Kind: question.KindMatching})
	assert.Empty(t, v.Stems)
	assert.Empty(t, v.Endings)

	v = BuildView(session.Slot{Question: question.Question{Latex: "x^2"}, Kind: question.KindSingle})
	assert.Empty(t, v.Options)
	assert.Equal(t, "x^2", v.Latex)
}

func TestDisplayTextFallsBackToLatex(t *testing.T) {
	assert.Equal(t, "a", displayText("a", "b"))
	assert.Equal(t, "b", displayText("", "b"))
}

func ptr(a session.Answer) *session.Answer { return &a }

func TestSingleChoice(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()

	s.Update(special(tea.KeyDown, 0))
	s.Update(special(tea.KeyEnter, 0))
	assert.Equal(t, "Б", slot(t, s, 0).Answer.Label)

	// Labels select directly, in either case.
	s.Update(press('в'))
	assert.Equal(t, "В", slot(t, s, 0).Answer.Label)

	s.Update(press('1'))
	assert.Equal(t, "А", slot(t, s, 0).Answer.Label)
	assert.Equal(t, 1, s.ctrl.State().AnsweredCount())
}

func TestMatchingPairs(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()
	s.Update(special(tea.KeyTab, 0))
	require.Equal(t, 1, s.ctrl.State().Current())

	// Pairing moves the cursor to the next stem.
	s.Update(press('А'))
	s.Update(press('2'))
	assert.Equal(t, map[string]string{"1": "А", "2": "Б"}, slot(t, s, 1).Answer.Pairs)

	s.Update(special(tea.KeyBackspace, 0))
	assert.Equal(t, map[string]string{"1": "А"}, slot(t, s, 1).Answer.Pairs)

	s.Update(special(tea.KeyUp, 0))
	s.Update(special(tea.KeyDelete, 0))
	assert.False(t, slot(t, s, 1).Answered())
}

func TestShortAnswerInput(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()
	s.Update(special(tea.KeyEnd, 0))
	require.Equal(t, 2, s.ctrl.State().Current())

	for _, r := range "2x,5" {
		s.Update(press(r))
	}
	assert.Equal(t, "2,5", slot(t, s, 2).Answer.Text)

	// Leaving and coming back restores the typed value.
	s.Update(special(tea.KeyHome, 0))
	assert.Equal(t, "", s.input.Value())
	s.Update(special(tea.KeyEnd, 0))
	assert.Equal(t, "2,5", s.input.Value())
}

func TestNavigationClamps(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()

	s.Update(special(tea.KeyTab, tea.ModShift))
	assert.Equal(t, 0, s.ctrl.State().Current())
	assert.Equal(t, "Питання 1 з 3", s.Title())

	for range 5 {
		s.Update(special(tea.KeyTab, 0))
	}
	assert.Equal(t, 2, s.ctrl.State().Current())
	assert.Equal(t, "Питання 3 з 3", s.Title())
}

func TestToggleFlag(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()

	s.Update(special('f', tea.ModCtrl))
	assert.True(t, slot(t, s, 0).Flagged)
	// Grid cell, question header and legend.
	assert.Equal(t, 3, strings.Count(s.View(100, 40), "⚑"))

	s.Update(special('f', tea.ModCtrl))
	assert.False(t, slot(t, s, 0).Flagged)
	assert.Equal(t, 1, strings.Count(s.View(100, 40), "⚑"))
}

func TestManualFinish(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()
	s.Update(press('2'))

	_, cmd := s.Update(special('s', tea.ModCtrl))
	assert.Nil(t, cmd)
	assert.True(t, s.confirm)
	assert.Contains(t, s.View(100, 40), "Без відповіді залишилось 2 з 3")

	// N cancels.
	s.Update(press('n'))
	assert.False(t, s.confirm)
	assert.False(t, s.ctrl.State().Finished())

	s.Update(special('s', tea.ModCtrl))
	_, cmd = s.Update(press('y'))
	require.NotNil(t, cmd)
	assert.True(t, s.ctrl.State().Finished())

	var replaced *router.ReplaceScreenMsg
	for _, msg := range drain(cmd) {
		if m, ok := msg.(router.ReplaceScreenMsg); ok {
			replaced = &m
		}
	}
	require.NotNil(t, replaced)
	res, ok := replaced.Screen.(*stubResult)
	require.True(t, ok)
	assert.Equal(t, 1, res.report.Score)
	assert.Equal(t, "olena@example.com", res.report.StudentEmail)

	// Keys after finishing are ignored.
	_, cmd = s.Update(press('1'))
	assert.Nil(t, cmd)
}

func TestTimeoutFinishesOnce(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()
	id := s.clock.ID()

	assert.Equal(t, "Залишилось: 60:00", s.Status().Text)

	now = start.Add(30 * time.Minute)
	assert.Equal(t, "Залишилось: 30:00", s.Status().Text)
	assert.Equal(t, layout.ToneNormal, s.Status().Tone)

	now = start.Add(55 * time.Minute)
	assert.Equal(t, layout.ToneWarn, s.Status().Tone)
	now = start.Add(59*time.Minute + 30*time.Second)
	assert.Equal(t, layout.ToneAlert, s.Status().Tone)

	now = start.Add(time.Hour + time.Second)
	_, cmd := s.Update(timer.TickMsg{ID: id, Time: now})
	require.NotNil(t, cmd)
	assert.True(t, s.ctrl.State().Finished())
	assert.NotNil(t, s.ctrl.Report())
	assert.Equal(t, "Час вичерпано", s.Status().Text)

	// A late tick and a manual finish after expiry do nothing.
	_, cmd = s.Update(timer.TickMsg{ID: id, Time: now.Add(time.Second)})
	assert.Nil(t, cmd)
	_, cmd = s.Update(special('s', tea.ModCtrl))
	assert.Nil(t, cmd)
}

func TestTickFromOtherSessionIgnored(t *testing.T) {
	now := start.Add(2 * time.Hour)
	s := newScreen(t, &now)

	_, cmd := s.Update(timer.TickMsg{ID: "someone-else", Time: now})
	assert.Nil(t, cmd)
	assert.False(t, s.ctrl.State().Finished())
}

func TestSaveErrorShown(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()

	s.Update(ctl.SavedMsg{Err: assert.AnError})
	assert.Contains(t, s.View(100, 40), "Не вдалося зберегти прогрес")

	s.Update(ctl.SavedMsg{})
	assert.NotContains(t, s.View(100, 40), "Не вдалося зберегти прогрес")
}

func TestKeyHintsFollowKind(t *testing.T) {
	now := start
	s := newScreen(t, &now)
	s.Init()

	keys := func() []string {
		var out []string
		for _, h := range s.KeyHints() {
			out = append(out, h.Key)
		}
		return out
	}
	assert.Contains(t, keys(), "↑↓ Enter")

	s.Update(special(tea.KeyTab, 0))
	assert.Contains(t, keys(), "Del")

	s.Update(special('s', tea.ModCtrl))
	assert.Equal(t, []layout.KeyHint{
		{Key: "Y", Description: "Здати"},
		{Key: "N", Description: "Повернутися"},
	}, s.KeyHints())
}

func TestNoSession(t *testing.T) {
	s := New(ctl.New(ctl.Options{}), nil, nil)
	assert.Nil(t, s.Init())
	assert.Equal(t, "Тест", s.Title())
	assert.Equal(t, "", s.Status().Text)
	assert.Contains(t, s.View(80, 24), "Немає активного тесту")
}
