// Package theme holds the palette and shared lipgloss styles of the TUI.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	Primary   = lipgloss.Color("#2563EB") // blue
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#FACC15")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Score bands, as a fraction of the questions answered correctly.
const (
	GoodScore = 0.8
	FairScore = 0.5
)

// ScoreColor maps a score fraction onto success, warning or error.
func ScoreColor(fraction float64) color.Color {
	switch {
	case fraction >= GoodScore:
		return Success
	case fraction >= FairScore:
		return Warning
	}
	return Error
}

// Text styles.
var (
	Title       = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle    = lipgloss.NewStyle().Foreground(TextDim)
	Body        = lipgloss.NewStyle().Foreground(Text)
	Hint        = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	WarningText = lipgloss.NewStyle().Bold(true).Foreground(Warning)
	ErrorText   = lipgloss.NewStyle().Bold(true).Foreground(Error)
	SuccessText = lipgloss.NewStyle().Bold(true).Foreground(Success)

	// Label is a fixed-width form caption so inputs line up.
	Label = lipgloss.NewStyle().Foreground(TextDim).Width(14)
)

var (
	Card        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
	FocusedCard = Card.BorderForeground(Primary)
)

// Option states while answering and reviewing.
var (
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Chosen     = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
)

var (
	ButtonActive   = lipgloss.NewStyle().Bold(true).Foreground(Text).Background(Primary).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
)
