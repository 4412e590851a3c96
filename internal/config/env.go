// Package config loads webTools settings from the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/enziog/webTools/internal/db"
)

// MarkdownStyles are the accepted WEBTOOLS_MARKDOWN_STYLE values.
var MarkdownStyles = []string{"ascii", "auto", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// ErrMarkdownStyle is returned for a style glamour does not ship.
var ErrMarkdownStyle = errors.New("unknown markdown style")

// Config holds the runtime settings.
type Config struct {
	DBPath        string `env:"WEBTOOLS_DB_PATH"`
	LogPath       string `env:"WEBTOOLS_LOG_PATH"`
	Locale        string `env:"WEBTOOLS_LOCALE" envDefault:"zh-CN"`
	MarkdownStyle string `env:"WEBTOOLS_MARKDOWN_STYLE" envDefault:"dark"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and fills in default paths.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = db.DefaultDBPath()
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogPath()
	}
	if !slices.Contains(MarkdownStyles, cfg.MarkdownStyle) {
		return Config{}, fmt.Errorf("%w %q", ErrMarkdownStyle, cfg.MarkdownStyle)
	}
	return cfg, nil
}

// DefaultLogPath returns the log file next to the default database.
func DefaultLogPath() string {
	return filepath.Join(filepath.Dir(db.DefaultDBPath()), "webtools.log")
}
