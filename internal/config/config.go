// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and an optional config file.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML config file (config.yaml)
//  3. Environment Variables: override any setting
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Oracle   OracleConfig   `koanf:"oracle"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds DuckDB connection settings.
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`                  // Number of DuckDB threads (0 = use NumCPU)
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"` // Whether to preserve insertion order (default true)
	SkipIndexes            bool   `koanf:"skip_indexes"`             // Skip index creation (fast test setup)
}

// ServerConfig holds HTTP server settings for the session API.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// OracleConfig holds the content oracle client's resilience settings.
type OracleConfig struct {
	RequestTimeout        time.Duration `koanf:"request_timeout"`
	RateLimitCapacity     int           `koanf:"rate_limit_capacity"`
	RateLimitRefillPerSec float64       `koanf:"rate_limit_refill_per_sec"`
	NATSURL               string        `koanf:"nats_url"` // only consulted when built with -tags nats
}

// LoggingConfig holds log level and output format settings.
type LoggingConfig struct {
	Level  string `koanf:"level"` // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
}

// Validate checks the configuration for invalid combinations and returns
// an error describing the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("config: database.path must not be empty")
	}
	if c.Oracle.RequestTimeout <= 0 {
		return fmt.Errorf("config: oracle.request_timeout must be positive")
	}
	if c.Oracle.RateLimitCapacity <= 0 {
		return fmt.Errorf("config: oracle.rate_limit_capacity must be positive")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
