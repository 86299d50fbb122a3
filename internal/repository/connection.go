// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/kerem-isiktasli/logos/internal/config"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

// DB wraps a DuckDB connection and satisfies session.Repository once its
// query methods are attached (see queries.go).
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// Open creates the database file's parent directory if needed, opens a
// DuckDB connection tuned per cfg, and ensures the schema is current.
func Open(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	dbDir := filepath.Dir(cfg.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dbDir, err)
		}
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%s",
		cfg.Path, numThreads, cfg.MaxMemory, preserveOrder)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(numThreads)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	db := &DB{conn: conn, cfg: cfg}

	if err := db.migrate(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Msg("repository: database ready")
	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying *sql.DB, for packages that need to attach
// their own tables to the same connection (e.g. internal/stageaudit's
// DuckDBStore).
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping verifies the connection is reachable within ctx.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// HealthCheck pings the database and logs whether a failure looks like a
// transient connection loss (worth a caller retry) versus something else.
func (db *DB) HealthCheck(ctx context.Context) error {
	err := db.Ping(ctx)
	if err != nil && isConnectionError(err) {
		logging.Warn().Err(err).Msg("repository: connection appears lost")
	}
	return err
}

func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("repository: error closing database after failed setup")
	}
}

// isConnectionError reports whether err indicates the underlying
// connection was lost rather than a query-level failure.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"bad connection",
		"database is closed",
	} {
		if len(msg) >= len(s) && containsSubstring(msg, s) {
			return true
		}
	}
	return false
}

func containsSubstring(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
