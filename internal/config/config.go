// Package config loads quizgen settings from a YAML file, a .env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/results"
)

// Config holds all quizgen configuration.
type Config struct {
	Quiz    QuizConfig    `yaml:"quiz"`
	LLM     LLMConfig     `yaml:"llm"`
	Results ResultsConfig `yaml:"results"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// QuizConfig configures quiz generation.
type QuizConfig struct {
	NumQuestions  int  `yaml:"num_questions"`
	ExtendedBanks bool `yaml:"extended_banks"` // per-subject fallback banks
}

// LLMConfig overrides the environment-derived provider settings. Empty
// fields leave the environment value in place.
type LLMConfig struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	Structured bool   `yaml:"structured"`
	Timeout    string `yaml:"timeout"`
}

// ResultsConfig configures the CSV outputs.
type ResultsConfig struct {
	File       string `yaml:"file"`
	ReportFile string `yaml:"report_file"`
}

// ServerConfig configures the web form server.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	SessionSecret string `yaml:"session_secret"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: stderr, or the state dir in TUI mode
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Quiz: QuizConfig{
			NumQuestions: quiz.DefaultNumQuestions,
		},
		Results: ResultsConfig{
			File:       results.DefaultFile,
			ReportFile: results.ReportFile,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8501",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quizgen/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".quizgen", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "quizgen", "config.yaml")
}

// Load reads configuration from path. A missing file yields defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files (".env" when none
// are named) without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if f := os.Getenv("QUIZGEN_RESULTS_FILE"); f != "" {
		c.Results.File = f
	}
	if a := os.Getenv("QUIZGEN_ADDR"); a != "" {
		c.Server.Addr = a
	}
	if s := os.Getenv("QUIZGEN_SESSION_SECRET"); s != "" {
		c.Server.SessionSecret = s
	}
	if l := os.Getenv("QUIZGEN_LOG_LEVEL"); l != "" {
		c.Logging.Level = l
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Quiz.NumQuestions < 1 || c.Quiz.NumQuestions > 50 {
		return fmt.Errorf("quiz.num_questions must be between 1 and 50, got %d", c.Quiz.NumQuestions)
	}
	if c.LLM.Timeout != "" {
		if _, err := time.ParseDuration(c.LLM.Timeout); err != nil {
			return fmt.Errorf("llm.timeout: %w", err)
		}
	}
	if c.Results.File == "" {
		return errors.New("results.file must not be empty")
	}
	return nil
}

// ApplyLLM layers the file's LLM overrides onto an environment-derived
// provider config.
func (c *Config) ApplyLLM(base llm.Config) llm.Config {
	if c.LLM.Provider != "" {
		base.Provider = c.LLM.Provider
	}
	base.SetModel(c.LLM.Model)
	if d, err := time.ParseDuration(c.LLM.Timeout); err == nil && c.LLM.Timeout != "" {
		base.Timeout = d
	}
	return base
}

// Settings returns quiz settings for the given form choices with the
// configured question count.
func (c *Config) Settings(subject, level, difficulty string) quiz.Settings {
	return quiz.Settings{
		Subject:      subject,
		Level:        level,
		Difficulty:   difficulty,
		NumQuestions: c.Quiz.NumQuestions,
	}.Normalize()
}
