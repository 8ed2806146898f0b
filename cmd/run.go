package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/app"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/screen"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd, logging.ModeTUI)
	if err != nil {
		return err
	}
	defer d.close()

	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")

	return app.Run(app.Options{
		Services: screen.Services{
			Quizzes:    d.service,
			Scorer:     d.scorer,
			Recorder:   d.recorder,
			EventRepo:  d.store.EventRepo(),
			Defaults:   d.cfg.Settings("", "", ""),
			ReportFile: d.cfg.Results.ReportFile,
		},
		Status:      d.status,
		SkipWelcome: skipWelcome,
		Logger:      d.logger,
	})
}
