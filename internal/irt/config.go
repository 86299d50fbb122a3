// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package irt

// EstimatorConfig holds the tunables for MLE and EAP ability estimation.
type EstimatorConfig struct {
	// MaxIterations bounds the Newton-Raphson loop used by MLE.
	MaxIterations int

	// Tolerance is the convergence threshold on |delta theta|.
	Tolerance float64

	// HermiteNodes selects the precomputed Gauss-Hermite rule: 5, 11, 21,
	// or 41. 21 is the default for mid-session updates, 11 for low-latency
	// feedback, 41 for end-of-session scoring.
	HermiteNodes int

	// PriorMean and PriorSD parameterize the Normal prior used by EAP.
	PriorMean float64
	PriorSD   float64
}

// DefaultEstimatorConfig returns the mid-session-update defaults: 21-node
// quadrature, a standard normal prior, and a tight Newton tolerance.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		MaxIterations: 50,
		Tolerance:     1e-3,
		HermiteNodes:  21,
		PriorMean:     0,
		PriorSD:       1,
	}
}

// RealtimeEstimatorConfig is tuned for low-latency in-session feedback:
// 11-node quadrature trades accuracy for speed.
func RealtimeEstimatorConfig() EstimatorConfig {
	cfg := DefaultEstimatorConfig()
	cfg.HermiteNodes = 11
	return cfg
}

// EndOfSessionEstimatorConfig is tuned for the final per-session theta
// recompute: 41-node quadrature spends the extra precision budget there.
func EndOfSessionEstimatorConfig() EstimatorConfig {
	cfg := DefaultEstimatorConfig()
	cfg.HermiteNodes = 41
	return cfg
}

func (c EstimatorConfig) withDefaults() EstimatorConfig {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 50
	}
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-3
	}
	if c.HermiteNodes <= 0 {
		c.HermiteNodes = 21
	}
	if c.PriorSD <= 0 {
		c.PriorSD = 1
	}
	return c
}
