// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Save backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Settings are the runtime knobs read from the environment (and an optional .env file).
type Settings struct {
	Width        int    `env:"NODEZERO_WIDTH" envDefault:"1280"`
	Height       int    `env:"NODEZERO_HEIGHT" envDefault:"720"`
	Seed         int64  `env:"NODEZERO_SEED" envDefault:"0"`
	SaveBackend  string `env:"NODEZERO_SAVE_BACKEND" envDefault:"json"`
	SaveDir      string `env:"NODEZERO_SAVE_DIR"`
	LogLevel     string `env:"NODEZERO_LOG_LEVEL" envDefault:"info"`
	PprofAddr    string `env:"NODEZERO_PPROF_ADDR"`
	StartScreen  string `env:"NODEZERO_START_SCREEN" envDefault:"menu"`
	UpgradesFile string `env:"NODEZERO_UPGRADES_FILE"` // empty uses the built-in catalog
}

// LoadSettings reads .env files (missing files are fine) and parses the environment.
func LoadSettings(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load env file: %w", err)
	}
	return ParseSettings()
}

// ParseSettings parses and validates Settings from the process environment only.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks values that env parsing cannot.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", s.Width, s.Height)
	}
	switch s.SaveBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown save backend %q", s.SaveBackend)
	}
	switch s.StartScreen {
	case "menu", "game":
	default:
		return fmt.Errorf("unknown start screen %q", s.StartScreen)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (s Settings) SlogLevel() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
