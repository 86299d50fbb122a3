// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where a config file is searched for,
// in priority order. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/logos/config.yaml",
	"/etc/logos/config.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path search.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix is the prefix every environment variable override must carry,
// e.g. LOGOS_SERVER_PORT maps to Server.Port.
const envPrefix = "LOGOS_"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:                   "logos.db",
			MaxMemory:              "4GB",
			Threads:                0,
			PreserveInsertionOrder: true,
			SkipIndexes:            false,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Oracle: OracleConfig{
			RequestTimeout:        30 * time.Second,
			RateLimitCapacity:     10,
			RateLimitRefillPerSec: 1,
			NATSURL:               "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, an optional YAML file, and
// environment variable overrides (highest priority wins), then validates
// the result.
//
// configPath, if non-empty, is read directly; otherwise CONFIG_PATH is
// consulted, then DefaultConfigPaths in order. A missing config file at
// any searched path is not an error — defaults and env vars still apply.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	path := resolveConfigPath(configPath)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load file %q: %w", path, err)
			}
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		// Only the first underscore separates the group from the key, so
		// LOGOS_ORACLE_REQUEST_TIMEOUT maps to oracle.request_timeout.
		return strings.Replace(strings.ToLower(s), "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(ConfigPathEnvVar); env != "" {
		return env
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
