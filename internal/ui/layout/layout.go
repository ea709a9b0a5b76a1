// Package layout draws the frame around every screen: a header with the
// brand, title and status, and a footer with key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nmt/internal/ui/theme"
)

// Smallest terminal the exam can be taken in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// compactBelow is the height under which screens drop decoration.
const compactBelow = 30

const Brand = "НМТ · Математика"

type KeyHint struct {
	Key         string
	Description string
}

// Tone picks the header status style.
type Tone int

const (
	ToneNormal Tone = iota
	ToneWarn
	ToneAlert
)

// Status is the text at the right of the header.
type Status struct {
	Text string
	Tone Tone
}

func (s Status) render() string {
	switch s.Tone {
	case ToneWarn:
		return theme.ClockWarn.Render(s.Text)
	case ToneAlert:
		return theme.ClockAlert.Render(s.Text)
	}
	return theme.Clock.Render(s.Text)
}

func IsCompactHeight(height int) bool { return height < compactBelow }

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Вікно термінала замале.\n\nПотрібно щонайменше %d x %d\n\nЗараз: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg)
}

// Frame is everything around the screen body.
type Frame struct {
	Title  string
	Status Status
	Hints  []KeyHint
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Header draws the brand left, the title centred and the status right.
func (f Frame) Header(width int) string {
	brand := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render("  " + Brand)
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	status := f.Status.render()

	inner := max(width-4, 0)
	bw, tw, sw := lipgloss.Width(brand), lipgloss.Width(title), lipgloss.Width(status)
	gapL := max((inner-tw)/2-bw, 1)
	gapR := max(inner-bw-gapL-tw-sw, 1)

	return bar.Width(width).Render(brand + strings.Repeat(" ", gapL) + title + strings.Repeat(" ", gapR) + status)
}

// Footer draws the key hints.
func (f Frame) Footer(width int) string {
	key := lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// BodyHeight is the room left for the screen between header and footer.
func (f Frame) BodyHeight(width, height int) int {
	return max(height-lipgloss.Height(f.Header(width))-lipgloss.Height(f.Footer(width)), 0)
}

// Render frames body, clipping it to the space between the bars.
func (f Frame) Render(body string, width, height int) string {
	header, footer := f.Header(width), f.Footer(width)
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(body)
	return header + "\n" + body + "\n" + footer
}
