package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/export"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quiz"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz and print it",
	Example: `  quizgen generate --subject "Data Science" --level Advanced --difficulty Hard
  quizgen generate -n 5 --format json --answers > quiz.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		level, _ := cmd.Flags().GetString("level")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		num, _ := cmd.Flags().GetInt("num")
		format, _ := cmd.Flags().GetString("format")
		answers, _ := cmd.Flags().GetBool("answers")
		out, _ := cmd.Flags().GetString("output")

		d, err := buildDeps(cmd, logging.ModeCLI)
		if err != nil {
			return err
		}
		defer d.close()

		settings := d.cfg.Settings(subject, level, difficulty)
		if num > 0 {
			settings.NumQuestions = num
		}

		q, err := d.service.Generate(cmd.Context(), settings)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}
		if q.Source == quiz.SourceFallback {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using the built-in question bank (%s).\n", d.status)
		}

		opts := export.Options{Answers: answers}
		if out == "" {
			return export.Write(cmd.OutOrStdout(), q, format, opts)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		return writeAndClose(f, q, format, opts)
	},
}

// writeAndClose exports q into wc and closes it, reporting the close error
// when the write itself succeeded.
func writeAndClose(wc io.WriteCloser, q *quiz.Quiz, format string, opts export.Options) error {
	err := export.Write(wc, q, format, opts)
	if cerr := wc.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func init() {
	generateCmd.Flags().StringP("subject", "s", "", "Quiz subject ("+strings.Join(quiz.Subjects, ", ")+")")
	generateCmd.Flags().StringP("level", "l", "", "Level ("+strings.Join(quiz.Levels, ", ")+")")
	generateCmd.Flags().StringP("difficulty", "d", "", "Difficulty ("+strings.Join(quiz.Difficulties, ", ")+")")
	generateCmd.Flags().IntP("num", "n", 0, "Number of questions (default from config)")
	generateCmd.Flags().StringP("format", "f", export.FormatText, "Output format ("+strings.Join(export.Formats, ", ")+")")
	generateCmd.Flags().Bool("answers", false, "Include the answer key")
	generateCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
