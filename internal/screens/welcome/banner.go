package welcome

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

var bannerLines = []string{
	` ██████╗ ██╗   ██╗██╗███████╗ ██████╗ ███████╗███╗   ██╗`,
	`██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝ ██╔════╝████╗  ██║`,
	`██║   ██║██║   ██║██║  ███╔╝ ██║  ███╗█████╗  ██╔██╗ ██║`,
	`██║▄▄ ██║██║   ██║██║ ███╔╝  ██║   ██║██╔══╝  ██║╚██╗██║`,
	`╚██████╔╝╚██████╔╝██║███████╗╚██████╔╝███████╗██║ ╚████║`,
	` ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝`,
}

const bannerCompact = "Q U I Z G E N"

// bannerWidth is the column count of the full banner.
var bannerWidth = lipgloss.Width(bannerLines[0])

// RenderBanner draws the QUIZGEN logo, top half in the primary color and
// bottom half in the secondary one. Terminals too narrow for the block
// letters get a spaced-out one-liner.
func RenderBanner(width int) string {
	if width < bannerWidth+4 {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(bannerCompact)
	}
	out := make([]string, len(bannerLines))
	for i, line := range bannerLines {
		var c color.Color = theme.Primary
		if i >= len(bannerLines)/2 {
			c = theme.Secondary
		}
		out[i] = lipgloss.NewStyle().Foreground(c).Render(line)
	}
	return strings.Join(out, "\n")
}
