// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package walqueue

import "time"

// Config controls the BadgerDB-backed offline queue.
type Config struct {
	// Path is the directory BadgerDB stores its files under.
	Path string

	// SyncWrites forces fsync after every write.
	SyncWrites bool

	// DefaultMaxRetries is used for items that don't set their own.
	DefaultMaxRetries int

	// RetryBackoff is the base backoff between retry attempts;
	// attempt N waits RetryBackoff * 2^(N-1), capped at RetryBackoffCap.
	RetryBackoff    time.Duration
	RetryBackoffCap time.Duration

	// EntryTTL is how long a completed or permanently failed item is kept
	// around for inspection before it is eligible for compaction.
	EntryTTL time.Duration

	MemTableSize     int64
	ValueLogFileSize int64
	NumCompactors    int
}

// DefaultConfig mirrors the durability-first defaults used elsewhere in
// this module's persistence layer.
func DefaultConfig() Config {
	return Config{
		Path:              "/data/walqueue",
		SyncWrites:        true,
		DefaultMaxRetries: 5,
		RetryBackoff:      5 * time.Second,
		RetryBackoffCap:   5 * time.Minute,
		EntryTTL:          168 * time.Hour,
		MemTableSize:      16 * 1024 * 1024,
		ValueLogFileSize:  64 * 1024 * 1024,
		NumCompactors:     2,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Path == "" {
		return &ConfigError{Field: "Path", Message: "is required"}
	}
	if c.DefaultMaxRetries < 1 {
		return &ConfigError{Field: "DefaultMaxRetries", Message: "must be at least 1"}
	}
	if c.RetryBackoff < time.Second {
		return &ConfigError{Field: "RetryBackoff", Message: "must be at least 1 second"}
	}
	if c.NumCompactors < 2 {
		return &ConfigError{Field: "NumCompactors", Message: "must be at least 2 (BadgerDB requirement)"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "walqueue config error: " + e.Field + ": " + e.Message
}

// Backoff returns the wait before retry attempt n (n >= 1), exponential in
// n and capped at RetryBackoffCap.
func (c Config) Backoff(attempt int) time.Duration {
	d := c.RetryBackoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= c.RetryBackoffCap {
			return c.RetryBackoffCap
		}
	}
	return d
}
