// Package setup implements the quiz form: participant details and quiz
// settings.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/attempt"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Field indexes, in focus order.
const (
	fieldName = iota
	fieldEmail
	fieldStudentID
	fieldSubject
	fieldLevel
	fieldDifficulty
	fieldGenerate
	fieldCount
)

// SetupScreen collects the participant's details and quiz settings.
type SetupScreen struct {
	svc        screen.Services
	inputs     [3]components.TextInput
	subject    components.Selector
	level      components.Selector
	difficulty components.Selector
	generate   components.Button
	focus      int
	warning    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen preset to svc.Defaults.
func New(svc screen.Services) *SetupScreen {
	d := svc.Defaults.Normalize()
	s := &SetupScreen{
		svc: svc,
		inputs: [3]components.TextInput{
			components.NewTextInput("Name", "Your name", 80),
			components.NewTextInput("Email", "you@example.com", 120),
			components.NewTextInput("ID", "Student ID", 40),
		},
		subject:    selectorAt("Subject", quiz.Subjects, d.Subject),
		level:      selectorAt("Level", quiz.Levels, d.Level),
		difficulty: selectorAt("Difficulty", quiz.Difficulties, d.Difficulty),
	}
	s.generate = components.NewButton("Generate Quiz", false, s.submit)
	s.generate.Hint = "enter"
	return s
}

func selectorAt(label string, values []string, current string) components.Selector {
	sel := components.NewSelector(label, values)
	for i, v := range values {
		if v == current {
			sel.Index = i
		}
	}
	return sel
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.setFocus(fieldName)
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Participant returns the details typed so far.
func (s *SetupScreen) Participant() quiz.Participant {
	return quiz.Participant{
		Name:      s.inputs[0].Value(),
		Email:     s.inputs[1].Value(),
		StudentID: s.inputs[2].Value(),
	}
}

// Settings returns the selected quiz settings.
func (s *SetupScreen) Settings() quiz.Settings {
	return quiz.Settings{
		Subject:      s.subject.Value(),
		Level:        s.level.Value(),
		Difficulty:   s.difficulty.Value(),
		NumQuestions: s.svc.Defaults.NumQuestions,
	}.Normalize()
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
		case "enter":
			if s.focus != fieldGenerate {
				return s, s.setFocus(s.focus + 1)
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName, fieldEmail, fieldStudentID:
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	case fieldSubject:
		s.subject, cmd = s.subject.Update(msg)
	case fieldLevel:
		s.level, cmd = s.level.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case fieldGenerate:
		s.generate, cmd = s.generate.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) setFocus(field int) tea.Cmd {
	s.focus = field
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == field {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	s.subject.Focused = field == fieldSubject
	s.level.Focused = field == fieldLevel
	s.difficulty.Focused = field == fieldDifficulty
	s.generate.Active = field == fieldGenerate
	return cmd
}

func (s *SetupScreen) submit() tea.Cmd {
	p := s.Participant()
	if err := p.Validate(); err != nil {
		s.warning = err.Error()
		return nil
	}
	s.warning = ""
	next := attempt.New(s.svc, p, s.Settings())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Enter Your Details"))
	b.WriteString("\n\n")
	for _, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Title.Render("Quiz Settings"))
	b.WriteString("\n\n")
	b.WriteString(s.subject.View() + "\n")
	b.WriteString(s.level.View() + "\n")
	b.WriteString(s.difficulty.View() + "\n\n")

	b.WriteString(s.generate.View())

	if s.warning != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.WarningText.Render("⚠ " + s.warning))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
