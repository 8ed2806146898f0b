// Package export renders quizzes for the terminal and for files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/abhisek/quizgen/internal/quiz"
)

// Format names accepted by Write.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatPretty   = "pretty"
	FormatJSON     = "json"
)

// Formats lists every supported format.
var Formats = []string{FormatText, FormatMarkdown, FormatPretty, FormatJSON}

// Options controls rendering.
type Options struct {
	// Answers includes the answer key.
	Answers bool

	// Width wraps pretty output. Zero means 80.
	Width int
}

// Write renders q to w in the named format.
func Write(w io.Writer, q *quiz.Quiz, format string, opts Options) error {
	switch format {
	case FormatText, "":
		_, err := io.WriteString(w, Text(q, opts))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(q, opts))
		return err
	case FormatPretty:
		out, err := Pretty(q, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view(q, opts))
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Text renders q in the same line format the LLM is asked to produce.
func Text(q *quiz.Quiz, opts Options) string {
	var b strings.Builder
	b.WriteString(q.Settings.Title())
	b.WriteString("\n\n")
	for i, qu := range q.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, qu.Text)
		for _, o := range qu.Options {
			b.WriteString(o)
			b.WriteString("\n")
		}
		if opts.Answers {
			fmt.Fprintf(&b, "Answer: %s\n", qu.Answer)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown renders q as a Markdown document.
func Markdown(q *quiz.Quiz, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", q.Settings.Title())
	for i, qu := range q.Questions {
		fmt.Fprintf(&b, "**%d. %s**\n\n", i+1, qu.Text)
		for _, o := range qu.Options {
			fmt.Fprintf(&b, "- %s\n", o)
		}
		if opts.Answers {
			fmt.Fprintf(&b, "\n_Answer: %s_\n", qu.Answer)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Pretty renders the Markdown form for a terminal.
func Pretty(q *quiz.Quiz, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(Markdown(q, opts))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// view hides answers from JSON output unless requested.
func view(q *quiz.Quiz, opts Options) *quiz.Quiz {
	if opts.Answers {
		return q
	}
	cp := *q
	cp.Questions = make([]quiz.Question, len(q.Questions))
	for i, qu := range q.Questions {
		qu.Answer = ""
		cp.Questions[i] = qu
	}
	return &cp
}
