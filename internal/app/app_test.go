package app

import (
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
	"github.com/abhisek/nmt/internal/screens/welcome"
)

type identity struct{}

func (identity) Assemble(qs []question.Question) []question.Question { return qs }

func testModel(t *testing.T) AppModel {
	t.Helper()
	var r question.Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"question":"x?","answer_format":"decimal","answer":"1"}`), &r))
	c := ctl.New(ctl.Options{Source: pool.Static{question.Decode(r)}, Assembler: identity{}})
	return newAppModel(Options{Controller: c, Now: time.Now})
}

func TestStartsAtWelcome(t *testing.T) {
	m := testModel(t)
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.NotNil(t, m.Init())
}

func TestTooSmall(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "замале")
}

func TestFrameHasBrandAndHints(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	content := updated.(AppModel).render()
	assert.Contains(t, content, "НМТ · Математика")
	assert.Contains(t, content, "Ctrl+C")
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEscAtRootDoesNotPop(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		_, isPop := cmd().(router.PopScreenMsg)
		assert.False(t, isPop)
	}
}

func TestRunNeedsController(t *testing.T) {
	err := Run(Options{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "controller"))
}

func TestFullFlowReachesExam(t *testing.T) {
	m := testModel(t)
	ws := m.router.Active().(*welcome.WelcomeScreen)

	// Resume check: no snapshot store, so the form opens.
	m.Update(ws.Init()())
	for _, r := range "Іван" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	for _, r := range "ivan@example.com" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	// Prepared, then Replace(exam).
	_, cmd = m.Update(cmd())
	replace, ok := findReplace(cmd)
	require.True(t, ok)
	m.Update(replace)
	assert.Equal(t, "Питання 1 з 1", m.router.Active().Title())

	m.width, m.height = 100, 40
	assert.Contains(t, m.render(), "Залишилось:")
}

func findReplace(cmd tea.Cmd) (router.ReplaceScreenMsg, bool) {
	if cmd == nil {
		return router.ReplaceScreenMsg{}, false
	}
	switch msg := cmd().(type) {
	case router.ReplaceScreenMsg:
		return msg, true
	case tea.BatchMsg:
		for _, c := range msg {
			if r, ok := findReplace(c); ok {
				return r, true
			}
		}
	}
	return router.ReplaceScreenMsg{}, false
}
