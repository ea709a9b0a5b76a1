// Package app wires the screens of the exam TUI into one Bubble Tea program.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	ctl "github.com/abhisek/nmt/internal/exam"
	"github.com/abhisek/nmt/internal/router"
	"github.com/abhisek/nmt/internal/scoring"
	"github.com/abhisek/nmt/internal/screen"
	examscreen "github.com/abhisek/nmt/internal/screens/exam"
	"github.com/abhisek/nmt/internal/screens/history"
	"github.com/abhisek/nmt/internal/screens/result"
	"github.com/abhisek/nmt/internal/screens/welcome"
	"github.com/abhisek/nmt/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Controller *ctl.Controller

	// History loads a student's past attempts. Nil hides the history
	// screen, as in remote mode where attempts live on the server.
	History history.Lister

	MaxScore int
	Now      func() time.Time
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the welcome screen.
func newAppModel(opts Options) AppModel {
	var (
		newWelcome func() screen.Screen
		newExam    func() screen.Screen
		newResult  func(scoring.Report) screen.Screen
	)
	var actions result.Actions
	if opts.History != nil {
		actions.History = func(email string) screen.Screen {
			return history.New(email, opts.History, opts.MaxScore)
		}
	}
	actions.NewTest = func() screen.Screen { return newWelcome() }

	newResult = func(r scoring.Report) screen.Screen { return result.New(r, opts.MaxScore, actions) }
	newExam = func() screen.Screen { return examscreen.New(opts.Controller, newResult, opts.Now) }
	newWelcome = func() screen.Screen { return welcome.New(opts.Controller, newExam) }

	return AppModel{router: router.New(newWelcome())}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Navigate(router.PopScreenMsg{})
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var f layout.Frame
	if active != nil {
		f.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			f.Status = sp.Status()
		}
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		f.Hints = append(f.Hints, hp.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		f.Hints = append(f.Hints, layout.KeyHint{Key: "Esc", Description: "Назад"})
	}
	f.Hints = append(f.Hints, layout.KeyHint{Key: "Ctrl+C", Description: "Вийти"})

	body := m.router.View(m.width, f.BodyHeight(m.width, m.height))
	return f.Render(body, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("app: no exam controller")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Помилка під час роботи програми:", err)
		return err
	}
	return nil
}
