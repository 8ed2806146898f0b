package cmd

import (
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// report is a bordered CLI table. Rows added with Total are set apart in
// bold below the body.
type report struct {
	t      *table.Table
	totals map[int]bool
	rows   int
}

func newReport(headers ...string) *report {
	r := &report{totals: map[int]bool{}}
	r.t = table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true).Foreground(theme.Primary)
			case r.totals[row]:
				return s.Bold(true)
			}
			return s
		})
	return r
}

func (r *report) Row(cells ...string) *report {
	r.t.Row(cells...)
	r.rows++
	return r
}

func (r *report) Total(cells ...string) *report {
	r.totals[r.rows] = true
	return r.Row(cells...)
}

// Print writes the table, dropping colors w cannot show.
func (r *report) Print(w io.Writer) error {
	_, err := lipgloss.Fprintln(w, r.t.String())
	return err
}

// truncate cuts s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
