package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Analysis AnalysisConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string // empty disables persistence
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig holds defaults for analysis runs
type AnalysisConfig struct {
	Coverage  float64
	Resamples int
	Seed      int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Analysis: AnalysisConfig{
			Coverage:  0.95,
			Resamples: 1000,
			Seed:      42,
		},
	}

	if v := os.Getenv("ANALYSIS_COVERAGE"); v != "" {
		coverage, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_COVERAGE %q: %w", v, err)
		}
		cfg.Analysis.Coverage = coverage
	}
	if v := os.Getenv("ANALYSIS_RESAMPLES"); v != "" {
		resamples, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_RESAMPLES %q: %w", v, err)
		}
		cfg.Analysis.Resamples = resamples
	}
	if v := os.Getenv("ANALYSIS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ANALYSIS_SEED %q: %w", v, err)
		}
		cfg.Analysis.Seed = seed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
