// Package screen defines the contract between the router and the TUI
// screens, plus the services the quiz screens share.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/ui/layout"
)

// Screen is one page of the TUI. The app frame draws the header and
// footer; View only fills the space in between.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is the breadcrumb shown in the header. Empty hides it.
	Title() string
}

// KeyHintProvider lets a screen put its own keys in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer screens refresh when they are back on top of the stack, e.g.
// home after a finished quiz.
type Resumer interface {
	Resume() tea.Cmd
}
