// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizgen/internal/config"
)

// Mode selects where logs go when no file is configured.
type Mode int

const (
	// ModeCLI writes to stderr.
	ModeCLI Mode = iota

	// ModeTUI writes to a file so the terminal UI stays clean.
	ModeTUI
)

// DefaultLogPath returns $XDG_STATE_HOME/quizgen/quizgen.log, falling back
// to ~/.local/state.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "quizgen", "quizgen.log"), nil
}

// New builds a production zap logger from cfg.
func New(cfg config.LoggingConfig, mode Mode) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil && cfg.Level != "" {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if cfg.Level == "" {
		level = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	out := cfg.File
	if out == "" && mode == ModeTUI {
		if out, err = DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		zc.OutputPaths = []string{out}
		zc.ErrorOutputPaths = []string{out}
	} else {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.OutputPaths = []string{"stderr"}
		zc.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named("quizgen"), nil
}
