package history

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// pageSize caps how many past quizzes are listed.
const pageSize = 50

// entry is one listed attempt. Event-store rows carry more detail than
// CSV rows; total and when are zero for the latter.
type entry struct {
	record  results.Record
	total   int
	when    string
	answers string
	source  string
}

type historyLoadedMsg struct {
	Entries []entry
	Err     error
}

// HistoryScreen lists past quiz results, newest first.
type HistoryScreen struct {
	svc      screen.Services
	entries  []entry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc screen.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.svc.EventRepo
	var file string
	if s.svc.Recorder != nil {
		file = s.svc.Recorder.File()
	}
	return func() tea.Msg {
		if repo != nil {
			return loadFromStore(repo)
		}
		return loadFromCSV(file)
	}
}

func loadFromStore(repo store.EventRepo) historyLoadedMsg {
	events, err := repo.QueryQuizResults(context.Background(), store.QueryOpts{Limit: pageSize})
	if err != nil {
		return historyLoadedMsg{Err: err}
	}
	entries := make([]entry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, entry{
			record:  results.FromEvent(ev),
			total:   ev.Total,
			when:    ev.Timestamp.Local().Format("Jan 02, 2006 15:04"),
			answers: ev.Answers,
			source:  ev.Source,
		})
	}
	return historyLoadedMsg{Entries: entries}
}

func loadFromCSV(path string) historyLoadedMsg {
	if path == "" {
		return historyLoadedMsg{}
	}
	records, err := results.ReadAll(path)
	if err != nil {
		return historyLoadedMsg{Err: err}
	}
	entries := make([]entry, 0, len(records))
	for i := len(records) - 1; i >= 0 && len(entries) < pageSize; i-- {
		entries = append(entries, entry{record: records[i]})
	}
	return historyLoadedMsg{Entries: entries}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// status renders a centered one-line message in place of the list.
func status(width int, c color.Color, text string) string {
	return "\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(c).Render(text)
}

func (e entry) score() string {
	if e.total > 0 {
		return fmt.Sprintf("%d/%d", e.record.Score, e.total)
	}
	return strconv.Itoa(e.record.Score)
}

func (e entry) row(selected bool) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if e.total > 0 {
		style = style.Foreground(theme.ScoreColor(float64(e.record.Score) / float64(e.total)))
	}
	if selected {
		prefix = "> "
		style = style.Foreground(theme.Primary).Bold(true)
	}
	r := e.record
	return style.Render(fmt.Sprintf("%s%-18s %-13s %-12s %-7s %6s  %s",
		prefix, e.when, r.Subject, r.Level, r.Difficulty, e.score(), r.Name))
}

func (e entry) detail() string {
	parts := []string{fmt.Sprintf("    %s <%s>  ID %s", e.record.Name, e.record.Email, e.record.UserID)}
	if e.answers != "" {
		parts = append(parts, "answers "+e.answers)
	}
	if e.source != "" {
		parts = append(parts, "("+e.source+")")
	}
	return theme.Hint.Italic(true).Render(strings.Join(parts, "  "))
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return status(width, theme.Error, "Error: "+s.errMsg)
	case !s.loaded:
		return status(width, theme.TextDim, "Loading history...")
	case len(s.entries) == 0:
		return status(width, theme.TextDim, "No quizzes yet. Take one from the home screen!")
	}

	lines := []string{""}
	for i, e := range s.entries {
		lines = append(lines, e.row(i == s.selected))
		if s.expanded[i] {
			lines = append(lines, e.detail())
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, lines...))
}
