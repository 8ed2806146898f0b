// Package attempt shows a generated quiz and collects the answers.
package attempt

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/result"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// LoadingText is shown while the quiz is being generated.
const LoadingText = "AI is generating your quiz..."

// AttemptScreen generates a quiz, then walks through its questions one at
// a time. The page after the last question holds the submit button.
type AttemptScreen struct {
	svc         screen.Services
	participant quiz.Participant
	settings    quiz.Settings

	spinner spinner.Model
	quiz    *quiz.Quiz
	attempt *quiz.Attempt
	choices []components.Choice
	current int
	errMsg  string
}

var _ screen.Screen = (*AttemptScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptScreen)(nil)

// New creates an AttemptScreen. Generation starts on Init.
func New(svc screen.Services, p quiz.Participant, settings quiz.Settings) *AttemptScreen {
	return &AttemptScreen{
		svc:         svc,
		participant: p,
		settings:    settings,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (s *AttemptScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.generate())
}

func (s *AttemptScreen) generate() tea.Cmd {
	src := s.svc.Quizzes
	settings := s.settings
	return func() tea.Msg {
		q, err := src.Generate(context.Background(), settings)
		return quizReadyMsg{Quiz: q, Err: err}
	}
}

func (s *AttemptScreen) Title() string {
	if s.quiz != nil {
		return s.quiz.Settings.Title()
	}
	return s.settings.Title()
}

func (s *AttemptScreen) KeyHints() []layout.KeyHint {
	if s.quiz == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	if s.onSubmitPage() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// Quiz returns the generated quiz, or nil while generation is running.
func (s *AttemptScreen) Quiz() *quiz.Quiz {
	return s.quiz
}

func (s *AttemptScreen) onSubmitPage() bool {
	return s.quiz != nil && s.current == len(s.choices)
}

func (s *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case spinner.TickMsg:
		if s.quiz != nil || s.errMsg != "" {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.quiz == nil {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AttemptScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.quiz = msg.Quiz
	s.attempt = quiz.NewAttempt(msg.Quiz, s.participant)
	s.choices = make([]components.Choice, len(msg.Quiz.Questions))
	for i, q := range msg.Quiz.Questions {
		s.choices[i] = components.NewChoice(fmt.Sprintf("Q%d. %s", i+1, q.Text), q.Options)
	}
	return s, nil
}

func (s *AttemptScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "p":
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case "right", "n", "tab":
		if s.current < len(s.choices) {
			s.current++
		}
		return s, nil
	}

	if s.onSubmitPage() {
		if msg.String() == "enter" {
			return s, s.submit()
		}
		return s, nil
	}

	c, cmd := s.choices[s.current].Update(msg)
	wasAnswered := s.choices[s.current].Chosen
	s.choices[s.current] = c
	if c.Answered() {
		s.attempt.Choose(s.current+1, quiz.Labels[c.Chosen])
		if c.Chosen != wasAnswered || msg.String() == "enter" {
			s.current++
		}
	}
	return s, cmd
}

func (s *AttemptScreen) submit() tea.Cmd {
	res := s.svc.Scorer.Score(s.attempt)
	next := result.New(s.svc, s.attempt, res)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *AttemptScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to go back.", s.errMsg))
	}
	if s.quiz == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.spinner.View()+" "+theme.Subtitle.Render(LoadingText))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.quiz.Settings.Title()))
	b.WriteString("\n\n")

	answered := len(s.attempt.Answers)
	total := len(s.choices)
	barWidth := min(width-8, 60)
	progress := 0.0
	if total > 0 {
		progress = float64(answered) / float64(total)
	}
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("%d/%d answered", answered, total), progress, false, barWidth).View())
	b.WriteString("\n\n")

	if s.onSubmitPage() {
		if answered < total {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("%d question(s) left unanswered.", total-answered)))
			b.WriteString("\n\n")
		}
		b.WriteString(components.NewButton("Submit Answers", true, nil).View())
	} else {
		b.WriteString(s.choices[s.current].View())
	}

	cardWidth := min(width-4, 90)
	if layout.IsCompactWidth(width) {
		cardWidth = width - 2
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(cardWidth).Render(b.String()))
}
