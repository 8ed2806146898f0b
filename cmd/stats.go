package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/store"
)

type subjectStats struct {
	subject string
	quizzes int
	score   int
	total   int
	best    int
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics per subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{}
		if days, _ := cmd.Flags().GetInt("days"); days > 0 {
			opts.From = time.Now().AddDate(0, 0, -days)
		}
		events, err := s.EventRepo().QueryQuizResults(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No quizzes taken yet.")
			return nil
		}

		bySubject := map[string]*subjectStats{}
		for _, e := range events {
			st, ok := bySubject[e.Subject]
			if !ok {
				st = &subjectStats{subject: e.Subject}
				bySubject[e.Subject] = st
			}
			st.quizzes++
			st.score += e.Score
			st.total += e.Total
			st.best = max(st.best, e.Score)
		}

		rows := make([]*subjectStats, 0, len(bySubject))
		for _, st := range bySubject {
			rows = append(rows, st)
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].quizzes != rows[j].quizzes {
				return rows[i].quizzes > rows[j].quizzes
			}
			return rows[i].subject < rows[j].subject
		})

		r := newReport("Subject", "Quizzes", "Avg %", "Best")
		var quizzes, score, total int
		for _, st := range rows {
			r.Row(st.subject, strconv.Itoa(st.quizzes), percent(st.score, st.total), strconv.Itoa(st.best))
			quizzes += st.quizzes
			score += st.score
			total += st.total
		}
		r.Total("TOTAL", strconv.Itoa(quizzes), percent(score, total), "")
		return r.Print(out)
	},
}

func percent(score, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", 100*float64(score)/float64(total))
}

func init() {
	statsCmd.Flags().Int("days", 0, "Only count quizzes from the last N days")
}
