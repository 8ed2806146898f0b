package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/history"
	"github.com/abhisek/quizgen/internal/screens/setup"
	"github.com/abhisek/quizgen/internal/screens/welcome"
	"github.com/abhisek/quizgen/internal/store"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Menu labels, in display order.
const (
	LabelNewQuiz = "NEW QUIZ"
	LabelHistory = "HISTORY"
	LabelExit    = "EXIT"
)

type statsLoadedMsg struct {
	taken int
	last  *store.QuizResultEvent
}

// HomeScreen is the main menu.
type HomeScreen struct {
	svc    screen.Services
	menu   components.Menu
	taken  int
	last   *store.QuizResultEvent
	loaded bool
}

var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc screen.Services) *HomeScreen {
	items := []components.MenuItem{
		{Label: LabelNewQuiz, Shortcut: "n", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(svc)}
			}
		}},
		{Label: LabelHistory, Shortcut: "h", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(svc)}
			}
		}},
		{Label: LabelExit, Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:  svc,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the stats line after a quiz or the history screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.svc.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		events, err := repo.QueryQuizResults(context.Background(), store.QueryOpts{})
		if err != nil || len(events) == 0 {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{taken: len(events), last: &events[0]}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.taken = msg.taken
		h.last = msg.last
		h.loaded = true
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	sections := []string{
		welcome.RenderBanner(width),
		theme.Subtitle.Render(welcome.Tagline),
	}
	if stats := h.statsLine(); stats != "" {
		sections = append(sections, stats)
	}
	sections = append(sections, theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) statsLine() string {
	if !h.loaded || h.taken == 0 {
		return ""
	}
	line := fmt.Sprintf("%d quiz", h.taken)
	if h.taken != 1 {
		line += "zes"
	}
	line += " taken"
	if h.last != nil {
		line += fmt.Sprintf("  ·  last: %s %d/%d", h.last.Subject, h.last.Score, h.last.Total)
	}
	return lipgloss.NewStyle().Foreground(theme.Accent).Render(line)
}
