package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Selector cycles through a fixed list of values with the left and right
// keys, like a compact dropdown.
type Selector struct {
	Label   string
	Values  []string
	Index   int
	Focused bool
}

// NewSelector creates a Selector positioned on the first value.
func NewSelector(label string, values []string) Selector {
	return Selector{Label: label, Values: values}
}

// Update handles left/right while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.Focused || len(s.Values) == 0 {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index = (s.Index - 1 + len(s.Values)) % len(s.Values)
	case "right", "l", "space":
		s.Index = (s.Index + 1) % len(s.Values)
	}
	return s, nil
}

// Value returns the current value, or "" when the list is empty.
func (s Selector) Value() string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[s.Index]
}

// View renders "Label  ◂ value ▸".
func (s Selector) View() string {
	value := "◂ " + s.Value() + " ▸"
	if s.Focused {
		value = theme.Selected.Render(value)
	} else {
		value = theme.Unselected.Render(value)
	}
	return theme.Label.Render(s.Label) + value
}
