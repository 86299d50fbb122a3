// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

/*
Package config provides centralized configuration management for the
LOGOS server.

This package handles loading, validation, and parsing of the four
configuration groups every deployment needs: database connection, the
session HTTP server, the content oracle's resilience knobs, and logging.

# Configuration Sources (Koanf v2)

	Priority: Environment variables > Config file (config.yaml) > Defaults

# Configuration Structure

  - DatabaseConfig: DuckDB connection and performance tuning
  - ServerConfig: HTTP server bind address, port, timeout
  - OracleConfig: content oracle request timeout, rate limit, NATS URL
  - LoggingConfig: log level and output format

# Environment Variables

Every field is overridable via an LOGOS_-prefixed, dot-path environment
variable, e.g.:

	LOGOS_DATABASE_PATH=/data/logos.db
	LOGOS_SERVER_PORT=8080
	LOGOS_ORACLE_REQUEST_TIMEOUT=30s
	LOGOS_LOGGING_LEVEL=debug

# Usage Example

	import "github.com/kerem-isiktasli/logos/internal/config"

	cfg, err := config.Load("")
	if err != nil {
	    log.Fatalf("failed to load config: %v", err)
	}
	fmt.Printf("listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

# Validation

Load calls Config.Validate before returning: it checks the server port
range, a non-empty database path, positive oracle timeout/rate-limit
values, and a recognized logging format.

# Thread Safety

The Config struct is immutable after Load returns, so it is safe for
concurrent access from multiple goroutines without synchronization.
*/
package config
