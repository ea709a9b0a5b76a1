package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/nmt/internal/ui/layout"
	"github.com/abhisek/nmt/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ███╗   ███╗ ████████╗
 ██║  ██║ ████╗ ████║ ╚══██╔══╝
 ███████║ ██╔████╔██║    ██║
 ██╔══██║ ██║╚██╔╝██║    ██║
 ██║  ██║ ██║ ╚═╝ ██║    ██║
 ╚═╝  ╚═╝ ╚═╝     ╚═╝    ╚═╝`

const bannerCompact = "Н М Т"

// RenderBanner returns the НМТ banner in the primary color, or a compact
// one for terminals narrower than 40 columns or of compact height.
func RenderBanner(width, height int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 || layout.IsCompactHeight(height) {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
