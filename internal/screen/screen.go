// Package screen defines what the router needs from a screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/nmt/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws the body only; the app frames it.
	View(width, height int) string
	Title() string
}

// KeyHintProvider screens put their own keys in the footer, ahead of the
// global ones.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider screens show a status (the exam clock) at the right of
// the header.
type StatusProvider interface {
	Status() layout.Status
}
