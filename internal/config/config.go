// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and validates application configuration.
//
// Configuration is layered with Koanf v2: built-in defaults first, then
// an optional YAML config file, then environment variables with the
// highest priority. The resulting Config is immutable after Load and
// safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Shelter  ShelterConfig  `koanf:"shelter"`
	Ranking  RankingConfig  `koanf:"ranking"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8000)
//   - HTTP_TIMEOUT: Read/write timeout (default: 30s)
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// ShelterConfig points at the shelter registry.
//
// Environment Variables:
//   - SHELTER_CSV_PATH: Path to the registry CSV (default: data/shelters.csv)
type ShelterConfig struct {
	CSVPath string `koanf:"csv_path"`
}

// RankingConfig tunes candidate selection and the feature provider.
//
// Environment Variables:
//   - RANKING_NEAREST_K: Candidates kept per fresh search (default: 5)
//   - FEATURE_SEED: Seed for the synthetic feature provider; 0 seeds
//     from the clock (default: 0)
//   - FEATURE_BREAKER_ENABLED: Wrap the provider in a circuit breaker
//     (default: true)
//   - FEATURE_BREAKER_MAX_FAILURES: Consecutive failures before the
//     breaker opens (default: 5)
//   - FEATURE_BREAKER_TIMEOUT: Open-state duration before a probe
//     (default: 30s)
type RankingConfig struct {
	NearestK           int           `koanf:"nearest_k"`
	FeatureSeed        int64         `koanf:"feature_seed"`
	BreakerEnabled     bool          `koanf:"breaker_enabled"`
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQS: Requests per window per IP (default: 100)
//   - RATE_LIMIT_WINDOW: Window duration (default: 1m)
//   - RATE_LIMIT_DISABLED: Disable rate limiting (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would make the
// service misbehave at runtime.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Shelter.CSVPath == "" {
		return fmt.Errorf("shelter.csv_path must not be empty")
	}
	if c.Ranking.NearestK < 1 {
		return fmt.Errorf("ranking.nearest_k must be at least 1, got %d", c.Ranking.NearestK)
	}
	if c.Ranking.BreakerEnabled {
		if c.Ranking.BreakerMaxFailures < 1 {
			return fmt.Errorf("ranking.breaker_max_failures must be at least 1, got %d", c.Ranking.BreakerMaxFailures)
		}
		if c.Ranking.BreakerTimeout <= 0 {
			return fmt.Errorf("ranking.breaker_timeout must be positive, got %s", c.Ranking.BreakerTimeout)
		}
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
