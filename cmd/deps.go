package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizgen/internal/config"
	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/logging"
	"github.com/abhisek/quizgen/internal/quizgen"
	"github.com/abhisek/quizgen/internal/results"
	"github.com/abhisek/quizgen/internal/scoring"
	"github.com/abhisek/quizgen/internal/store"
)

// deps is everything a quiz-taking command needs.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *store.Store
	service  *quizgen.Service
	scorer   scoring.Scorer
	recorder *results.Recorder

	// status describes the question source for display.
	status string
}

// buildDeps loads configuration, opens the store and wires the quiz
// service. Callers must call close.
func buildDeps(cmd *cobra.Command, mode logging.Mode) (*deps, error) {
	cfg, err := config.Load(resolveConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging, mode)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	repo := st.EventRepo()

	d := &deps{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		scorer:   scoring.NewMockScorer(nil),
		recorder: results.NewRecorder(cfg.Results.File, repo, logger),
		status:   "Offline bank",
	}

	fallback := quizgen.NewFallbackGenerator(quizgen.WithExtendedBanks(cfg.Quiz.ExtendedBanks))
	var primary quizgen.Generator

	llmCfg := cfg.ApplyLLM(llm.ResolveConfig())
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, repo, logger)
	switch {
	case err == nil:
		genCfg := quizgen.DefaultConfig()
		genCfg.Structured = cfg.LLM.Structured
		primary = quizgen.NewLLMGenerator(provider, genCfg)
		d.status = fmt.Sprintf("LLM: %s (%s)", llmCfg.Provider, provider.ModelID())
		logger.Info("LLM provider ready", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))
	case errors.Is(err, llm.ErrNoProvider):
		logger.Info("no LLM provider configured, using the question bank")
	default:
		logger.Warn("LLM provider unavailable, using the question bank", zap.Error(err))
	}

	d.service = quizgen.NewService(primary, fallback, logger)
	return d, nil
}

func (d *deps) close() {
	d.store.Close()
	d.logger.Sync()
}

// openStore opens the event store without the rest of the quiz wiring.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
