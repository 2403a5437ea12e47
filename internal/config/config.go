// Package config carries the service facade's settings: built-in defaults
// under a YAML file, with FUZZY_* environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Simulate SimulateConfig `yaml:"simulate"`
}

type ServerConfig struct {
	Addr        string        `yaml:"addr" env:"FUZZY_ADDR"`
	ReadTimeout time.Duration `yaml:"read_timeout" env:"FUZZY_READ_TIMEOUT"`
}

type SimulateConfig struct {
	// Trials used when a request doesn't say.
	DefaultTrials int `yaml:"default_trials" env:"FUZZY_DEFAULT_TRIALS"`
	// Upper bound on trials per request.
	MaxTrials int `yaml:"max_trials" env:"FUZZY_MAX_TRIALS"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", ReadTimeout: 10 * time.Second},
		Simulate: SimulateConfig{DefaultTrials: 10000, MaxTrials: 200000},
	}
}

// Load merges default <- file <- env and validates the result.
// A missing file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(b, &cfg); uerr != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, uerr)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks semantic constraints of a Config.
func Validate(cfg Config) error {
	var errs []string

	if cfg.Server.Addr == "" {
		errs = append(errs, "server.addr must not be empty")
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, "server.read_timeout must be >= 0")
	}
	if cfg.Simulate.DefaultTrials < 1 {
		errs = append(errs, "simulate.default_trials must be >= 1")
	}
	if cfg.Simulate.MaxTrials < cfg.Simulate.DefaultTrials {
		errs = append(errs, "simulate.max_trials must be >= simulate.default_trials")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
