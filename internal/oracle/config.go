// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package oracle

import "time"

// CircuitBreakerConfig holds the gobreaker settings guarding oracle calls.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // allowed through in half-open state
	Interval         time.Duration // reset interval for failure counts
	Timeout          time.Duration // time spent open before probing again
	FailureThreshold uint32        // consecutive failures before opening
}

// Config controls the resilience wrapper around a Transport.
type Config struct {
	// RequestTimeout bounds a single Generate call.
	RequestTimeout time.Duration

	// RateLimitCapacity is the token-bucket burst size.
	RateLimitCapacity int
	// RateLimitRefillPerSec is the steady-state token refill rate.
	RateLimitRefillPerSec float64

	Breaker CircuitBreakerConfig
}

// DefaultConfig returns the documented defaults: a 30s request timeout and
// a 10-token bucket refilling at 1 token/s.
func DefaultConfig() Config {
	return Config{
		RequestTimeout:        30 * time.Second,
		RateLimitCapacity:     10,
		RateLimitRefillPerSec: 1,
		Breaker: CircuitBreakerConfig{
			Name:             "content-oracle",
			MaxRequests:      3,
			Interval:         30 * time.Second,
			Timeout:          10 * time.Second,
			FailureThreshold: 5,
		},
	}
}
