// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bank-reconciliation/internal/matcher"
)

// Config represents the entire application configuration.
type Config struct {
	Matching MatchingConfig `yaml:"matching"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// MatchingConfig mirrors the matching engine policy knobs.
type MatchingConfig struct {
	AmountTolerance        float64 `yaml:"amount_tolerance"`
	ExactDateToleranceDays int     `yaml:"exact_date_tolerance_days"`
	FuzzyDateToleranceDays int     `yaml:"fuzzy_date_tolerance_days"`
	ConfidenceExact        float64 `yaml:"confidence_exact"`
	ConfidenceFuzzyDate    float64 `yaml:"confidence_fuzzy_date"`
	ConfidenceDescription  float64 `yaml:"confidence_description"`
	MinDescriptionLength   int     `yaml:"min_description_length"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the standard configuration.
func Default() Config {
	m := matcher.DefaultConfig()
	return Config{
		Matching: MatchingConfig{
			AmountTolerance:        m.AmountTolerance,
			ExactDateToleranceDays: m.ExactDateToleranceDays,
			FuzzyDateToleranceDays: m.FuzzyDateToleranceDays,
			ConfidenceExact:        m.ConfidenceExact,
			ConfidenceFuzzyDate:    m.ConfidenceFuzzyDate,
			ConfidenceDescription:  m.ConfidenceDescription,
			MinDescriptionLength:   m.MinDescriptionLength,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file, with defaults filling any
// omitted fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrEnv loads config.yaml if present, falling back to defaults, then
// applies environment variable overrides.
func LoadOrEnv() Config {
	cfg, err := Load("config.yaml")
	if err != nil {
		cfg = Default()
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if port := os.Getenv("RECON_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if level := os.Getenv("RECON_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("RECON_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// MatcherConfig converts the YAML section into the engine's policy struct.
func (m MatchingConfig) MatcherConfig() matcher.Config {
	return matcher.Config{
		AmountTolerance:        m.AmountTolerance,
		ExactDateToleranceDays: m.ExactDateToleranceDays,
		FuzzyDateToleranceDays: m.FuzzyDateToleranceDays,
		ConfidenceExact:        m.ConfidenceExact,
		ConfidenceFuzzyDate:    m.ConfidenceFuzzyDate,
		ConfidenceDescription:  m.ConfidenceDescription,
		MinDescriptionLength:   m.MinDescriptionLength,
	}
}
