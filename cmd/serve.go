package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz form over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd, logging.ModeCLI)
		if err != nil {
			return err
		}
		defer d.close()

		addr := d.cfg.Server.Addr
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		srv, err := web.New(web.Options{
			Quizzes:       d.service,
			Scorer:        d.scorer,
			Recorder:      d.recorder,
			Defaults:      d.cfg.Settings("", "", ""),
			SessionSecret: []byte(d.cfg.Server.SessionSecret),
			Logger:        d.logger,
		})
		if err != nil {
			return err
		}

		d.logger.Info("starting web server",
			zap.String("addr", addr),
			zap.String("source", d.status),
			zap.String("results_file", d.recorder.File()),
		)
		return srv.Run(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, 127.0.0.1:8501)")
}
