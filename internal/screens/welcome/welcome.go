// Package welcome implements the splash screen shown when the TUI starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// Tagline is shown under the banner.
const Tagline = "Generate a quiz on anything you're learning."

const (
	frameInterval = 80 * time.Millisecond

	// The card shuffles its highlighted answer until settleAt, the banner
	// appears at bannerAt and the tagline is typed out after that.
	settleAt    = 960 * time.Millisecond
	bannerAt    = 1200 * time.Millisecond
	typePerRune = 2 * frameInterval / 5
	autoAdvance = 6 * time.Second
)

// settledChoice is the option the sample card lands on.
const settledChoice = 1

var sampleOptions = []string{"a quiz", "a quiz, now", "a test", "homework"}

type frameMsg struct{}

// WelcomeScreen plays a short intro and then hands over to the home
// screen, either on the first key press or after autoAdvance.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frame   int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns a splash screen that replaces itself with next() when done.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return w.tick() }

func (w *WelcomeScreen) tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frame++
		w.elapsed += frameInterval
		if w.elapsed >= autoAdvance {
			return w, w.finish()
		}
		return w, w.tick()
	case tea.KeyPressMsg:
		return w, w.finish()
	}
	return w, nil
}

func (w *WelcomeScreen) finish() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

// highlighted is the option currently lit on the sample card.
func (w *WelcomeScreen) highlighted() int {
	if w.elapsed >= settleAt {
		return settledChoice
	}
	return w.frame % len(sampleOptions)
}

// typed returns the prefix of the tagline revealed so far.
func (w *WelcomeScreen) typed() string {
	if w.elapsed < bannerAt {
		return ""
	}
	runes := []rune(Tagline)
	n := int((w.elapsed-bannerAt)/typePerRune) + 1
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

func (w *WelcomeScreen) card() string {
	var b strings.Builder
	b.WriteString(theme.Label.Render("Q1. What does QuizGen make?"))
	b.WriteString("\n\n")
	hl := w.highlighted()
	for i, opt := range sampleOptions {
		line := quiz.Labels[i] + ": " + opt
		switch {
		case i != hl:
			b.WriteString(theme.Unselected.Render("  ( ) " + line))
		case w.elapsed >= settleAt:
			b.WriteString(theme.SuccessText.Render("  (•) " + line))
		default:
			b.WriteString(theme.Selected.Render("  (•) " + line))
		}
		if i < len(sampleOptions)-1 {
			b.WriteString("\n")
		}
	}
	return theme.Card.Render(b.String())
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.card()}

	if w.elapsed >= bannerAt {
		parts = append(parts, "", RenderBanner(width), "")
		line := w.typed()
		if len([]rune(line)) < len([]rune(Tagline)) {
			line += "▌"
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line))
		parts = append(parts, "", theme.Hint.Italic(true).Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}
