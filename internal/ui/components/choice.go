package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Choice lets the user pick one option of a multiple-choice question.
// Options carry their own "A:" style labels.
type Choice struct {
	Question string
	Options  []string
	Cursor   int

	// Chosen is the index of the picked option, or -1.
	Chosen int
}

// NewChoice creates a Choice with nothing picked.
func NewChoice(question string, options []string) Choice {
	return Choice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// Update moves the cursor and picks options. Letter keys a-d pick directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space":
		c.Chosen = c.Cursor
	case "a", "b", "c", "d":
		if i := int(key[0] - 'a'); i < len(c.Options) {
			c.Cursor = i
			c.Chosen = i
		}
	}
	return c, nil
}

// View renders the question followed by its options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(c.Question))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := prefix + marker + " " + opt

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Answered reports whether an option has been picked.
func (c Choice) Answered() bool {
	return c.Chosen >= 0 && c.Chosen < len(c.Options)
}
