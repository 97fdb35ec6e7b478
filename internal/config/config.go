// Package config defines the game's settings and how they are loaded.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	envPrefix = "WORDLE_"

	// configFileEnv points at a YAML file and overrides discovery.
	configFileEnv = "WORDLE_CONFIG"

	// xdgConfigFile is searched for under the XDG config directories.
	xdgConfigFile = "wordle/config.yaml"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: trace, debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// AnswersFile and AllowedFile override the embedded word lists.
	AnswersFile string `koanf:"answers_file"`
	AllowedFile string `koanf:"allowed_file"`

	// MaxTurns is the number of guesses per game.
	MaxTurns int `koanf:"max_turns"`

	// WordLength is the letter count of answers and guesses.
	WordLength int `koanf:"word_length"`

	// HardMode requires revealed letters to be reused.
	HardMode bool `koanf:"hard_mode"`

	// Answer fixes the first game's answer; it wins over Daily.
	Answer string `koanf:"answer"`

	// Daily makes the first game use the answer of the day.
	Daily     bool   `koanf:"daily"`
	DailySalt string `koanf:"daily_salt"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "warn",
		MaxTurns:   6,
		WordLength: 5,
		DailySalt:  "wordle",
	}
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. YAML file from WORDLE_CONFIG, or wordle/config.yaml in the XDG config dirs
//  3. env (prefix WORDLE_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	// WORDLE_MAX_TURNS -> max_turns (flat keys, underscores preserved).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that would make a game unplayable.
func (c *Config) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be at least 1, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.WordLength < 1 {
		return fmt.Errorf("%w: word_length must be at least 1, got %d", ErrInvalidConfig, c.WordLength)
	}
	return nil
}

// configPath returns the YAML file to read, or "" if there is none.
func configPath() string {
	if path := os.Getenv(configFileEnv); path != "" {
		return path
	}
	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}
	return ""
}
