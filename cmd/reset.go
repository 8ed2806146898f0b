package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the quiz history database",
	Long: `Delete the quiz history database, including recorded LLM calls.
Pass --results to also remove the results CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		withResults, _ := cmd.Flags().GetBool("results")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		targets := store.Files(dbPath)
		if withResults {
			file, err := resultsFile(cmd)
			if err != nil {
				return err
			}
			targets = append(targets, file)
		}

		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprintln(out, "This would delete:")
			for _, t := range targets {
				fmt.Fprintf(out, "  %s\n", t)
			}
			fmt.Fprintln(out, "Re-run with --yes to confirm.")
			return nil
		}

		for _, t := range targets {
			if err := os.Remove(t); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", t, err)
			}
		}
		fmt.Fprintln(out, "Quiz history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Actually delete the files")
	resetCmd.Flags().Bool("results", false, "Also delete the results CSV")
}
