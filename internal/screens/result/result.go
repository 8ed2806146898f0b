// Package result shows the score of a submitted quiz and saves it.
package result

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/scoring"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Menu labels, in display order.
const (
	LabelDownload = "Download Report"
	LabelHome     = "Back to Home"
)

type recordedMsg struct {
	Record results.Record
	Err    error
}

type reportWrittenMsg struct {
	Path string
	Err  error
}

// ResultScreen displays "Your Score: s/n", appends the result row on Init
// and offers the one-row report download.
type ResultScreen struct {
	svc     screen.Services
	attempt *quiz.Attempt
	result  scoring.Result
	record  results.Record
	saved   bool
	menu    components.Menu
	status  string
	errMsg  string
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a ResultScreen for a scored attempt.
func New(svc screen.Services, a *quiz.Attempt, res scoring.Result) *ResultScreen {
	s := &ResultScreen{
		svc:     svc,
		attempt: a,
		result:  res,
		record:  results.NewRecord(a.Participant, a.Quiz.Settings, res.Score),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: LabelDownload, Action: s.download},
		{Label: LabelHome, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	rec := s.svc.Recorder
	if rec == nil {
		return nil
	}
	a, res := s.attempt, s.result
	return func() tea.Msg {
		r, err := rec.Record(context.Background(), a, res)
		return recordedMsg{Record: r, Err: err}
	}
}

func (s *ResultScreen) download() tea.Cmd {
	path := s.svc.ReportFile
	if path == "" {
		path = results.ReportFile
	}
	r := s.record
	return func() tea.Msg {
		return reportWrittenMsg{Path: path, Err: results.WriteReportFile(path, r)}
	}
}

func (s *ResultScreen) Title() string {
	return "Results"
}

// Result returns the score being displayed.
func (s *ResultScreen) Result() scoring.Result {
	return s.result
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		if msg.Err != nil {
			s.errMsg = "Could not save result: " + msg.Err.Error()
			return s, nil
		}
		s.saved = true
		return s, nil

	case reportWrittenMsg:
		if msg.Err != nil {
			s.errMsg = "Could not write report: " + msg.Err.Error()
			return s, nil
		}
		s.status = "Report saved to " + msg.Path
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	score := theme.SuccessText.Render(fmt.Sprintf("Your Score: %d/%d", s.result.Score, s.result.Total))
	b.WriteString(score)
	b.WriteString("\n\n")

	b.WriteString(components.NewScoreBar(s.result.Score, s.result.Total, min(width-12, 50)).View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(s.attempt.Quiz.Settings.Title()))
	b.WriteString("\n")
	if s.saved && s.svc.Recorder != nil {
		b.WriteString(theme.Hint.Render("Saved to " + s.svc.Recorder.File()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(s.menu.View(), "\n"))

	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.SuccessText.Render(s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
