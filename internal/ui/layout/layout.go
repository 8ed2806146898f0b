// Package layout draws the frame around every screen: a header with the
// navigation trail and question source, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold = 100

	// Below this width the header drops the status text.
	statusMinWidth = 72

	crumbSeparator = " › "
	hintSeparator  = "   "
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Please enlarge the window.\n\nQuizGen needs %d x %d, the terminal is %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the header bar. crumbs is the screen trail, root
// first; only the last crumb is kept when the whole trail does not fit.
// status, usually the question source, sits on the right.
func RenderHeader(crumbs []string, status string, width int) string {
	inner := max(width-4, 0)

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  QuizGen")
	if width < statusMinWidth {
		status = ""
	}
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	room := inner - lipgloss.Width(brand) - lipgloss.Width(right) - 4
	trail := strings.Join(crumbs, crumbSeparator)
	if lipgloss.Width(trail) > room && len(crumbs) > 0 {
		trail = crumbs[len(crumbs)-1]
	}
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(trail)

	gap := max(inner-lipgloss.Width(brand)-lipgloss.Width(center)-lipgloss.Width(right), 2)
	leftGap := gap / 2
	content := brand + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", gap-leftGap) + right

	return barStyle.Width(width).Render(content)
}

// RenderFooter renders the key hints. When they do not fit, hints are
// dropped from the middle; the first and last always stay.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	room := max(width-6, 0)
	for len(parts) > 2 && lipgloss.Width(strings.Join(parts, hintSeparator)) > room {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return barStyle.Width(width).Render("  " + strings.Join(parts, hintSeparator))
}

// Frame is a rendered header and footer waiting for content.
type Frame struct {
	Header string
	Footer string
}

// ContentHeight is the number of rows left for the screen in a terminal of
// the given height.
func (f Frame) ContentHeight(height int) int {
	return max(height-lipgloss.Height(f.Header)-lipgloss.Height(f.Footer), 0)
}

// Render places content between header and footer, padded to fill the
// terminal.
func (f Frame) Render(content string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(f.ContentHeight(height)).
		Render(content)
	return f.Header + "\n" + body + "\n" + f.Footer
}
