package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Button fires OnPress on enter or space while it has focus.
type Button struct {
	Label    string
	Active   bool // focused
	Disabled bool
	OnPress  func() tea.Cmd

	// Hint is shown after a focused button, e.g. "enter".
	Hint string
}

func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{Label: label, Active: active, OnPress: onPress}
}

func (b Button) pressable() bool {
	return b.Active && !b.Disabled && b.OnPress != nil
}

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.pressable() {
		return b, nil
	}
	if s := k.String(); s == "enter" || s == "space" {
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	marker, style := "    ", theme.ButtonInactive
	switch {
	case b.Disabled:
		style = style.Foreground(theme.TextDim)
	case b.Active:
		marker, style = "  ▸ ", theme.ButtonActive
	}
	out := style.Render(marker + b.Label + " ")
	if b.Active && !b.Disabled && b.Hint != "" {
		out = lipgloss.JoinHorizontal(lipgloss.Center, out, theme.Hint.Render("  "+b.Hint))
	}
	return out
}
