// Package theme holds the colours and styles shared by every screen. The
// palette follows the blue and yellow of the NMT certificate.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#2563EB")
	Secondary = lipgloss.Color("#FACC15")
	Accent    = lipgloss.Color("#F97316")
	Success   = lipgloss.Color("#16A34A")
	Error     = lipgloss.Color("#E11D48")
	Text      = lipgloss.Color("#F1F5F9")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Body    = lipgloss.NewStyle().Foreground(Text)
	Formula = lipgloss.NewStyle().Foreground(Secondary)
	Hint    = lipgloss.NewStyle().Italic(true).Foreground(TextDim)
	Warning = lipgloss.NewStyle().Foreground(Accent)

	Card = lipgloss.NewStyle().
		Padding(1, 2).
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)

// Choice and answer states.
var (
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Bold(true).Foreground(Success)
	Incorrect  = lipgloss.NewStyle().Bold(true).Foreground(Error)
)

// Question navigator cells.
var (
	CellCurrent  = lipgloss.NewStyle().Bold(true).Foreground(Text).Background(Primary)
	CellAnswered = lipgloss.NewStyle().Foreground(Success)
	CellFlagged  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	CellEmpty    = lipgloss.NewStyle().Foreground(TextDim)

	ProgressFilled = lipgloss.NewStyle().Background(Primary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)

// Clock styles the header countdown; it turns orange and then red as the
// time runs out.
var (
	Clock      = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	ClockWarn  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	ClockAlert = lipgloss.NewStyle().Bold(true).Blink(true).Foreground(Error)
)
