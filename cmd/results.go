package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/results"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect the results CSV",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded scores, newest last",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := resultsFile(cmd)
		if err != nil {
			return err
		}
		records, err := results.ReadAll(file)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintf(out, "No results in %s.\n", file)
			return nil
		}

		r := newReport("Name", "Email", "UserID", "Subject", "Level", "Difficulty", "Score")
		for _, rec := range records {
			r.Row(truncate(rec.Name, 20), truncate(rec.Email, 28), truncate(rec.UserID, 12),
				rec.Subject, rec.Level, rec.Difficulty, strconv.Itoa(rec.Score))
		}
		return r.Print(out)
	},
}

var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every recorded score as a CSV report with a header row",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := resultsFile(cmd)
		if err != nil {
			return err
		}
		records, err := results.ReadAll(file)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create report: %w", err)
			}
			defer f.Close()
			w = f
		}
		return results.WriteReport(w, records...)
	},
}

// resultsFile returns --file or the configured results path.
func resultsFile(cmd *cobra.Command) (string, error) {
	if f, _ := cmd.Flags().GetString("file"); f != "" {
		return f, nil
	}
	cfg, err := config.Load(resolveConfigPath(cmd))
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return cfg.Results.File, nil
}

func init() {
	resultsCmd.PersistentFlags().String("file", "", "Results CSV (default from config, "+results.DefaultFile+")")
	resultsExportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsExportCmd)
}
