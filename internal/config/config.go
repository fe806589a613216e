// Package config loads evaluate-stage configuration from YAML files and
// the environment. Environment variables always win over file values.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/openimpact/impacteval/internal/model"
)

// Environment variables recognized as backend overrides.
const (
	EnvBackendType        = "EVALUATE_BACKEND_TYPE"
	EnvBackendModel       = "EVALUATE_BACKEND_MODEL"
	EnvBackendTemperature = "EVALUATE_BACKEND_TEMPERATURE"
	EnvBackendMaxTokens   = "EVALUATE_BACKEND_MAX_TOKENS"
)

// Load builds a Config from an optional YAML file path, applies environment
// overrides, and validates the result. An empty path yields defaults plus
// environment overrides.
func Load(path string) (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays EVALUATE_BACKEND_* environment variables onto cfg
func applyEnv(cfg *model.Config) error {
	if v := os.Getenv(EnvBackendType); v != "" {
		cfg.Backend.Type = v
	}
	if v := os.Getenv(EnvBackendModel); v != "" {
		cfg.Backend.Model = v
	}
	if v := os.Getenv(EnvBackendTemperature); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", EnvBackendTemperature, v, err)
		}
		cfg.Backend.Temperature = t
	}
	if v := os.Getenv(EnvBackendMaxTokens); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s=%q: %w", EnvBackendMaxTokens, v, err)
		}
		cfg.Backend.MaxTokens = n
	}
	return nil
}

// Validate rejects configurations no backend could accept
func Validate(cfg *model.Config) error {
	if cfg.Backend.Type == "" {
		return fmt.Errorf("backend type must not be empty")
	}
	if cfg.Backend.Temperature < 0 {
		return fmt.Errorf("backend temperature must be >= 0.0, got %g", cfg.Backend.Temperature)
	}
	if cfg.Backend.MaxTokens <= 0 {
		return fmt.Errorf("backend max_tokens must be > 0, got %d", cfg.Backend.MaxTokens)
	}
	return nil
}
