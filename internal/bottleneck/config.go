// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package bottleneck

// Config controls window size and the thresholds used to classify a
// component as a bottleneck and to attribute causality along the cascade.
type Config struct {
	// WindowSize is the number of most recent outcomes retained per
	// component.
	WindowSize int

	// ErrorRateThreshold is the minimum error rate (over the window) for
	// a component to qualify as a candidate bottleneck.
	ErrorRateThreshold float64

	// MinResponses is the minimum outcome count a component must have
	// accumulated before it can be classified at all.
	MinResponses int

	// JaccardThreshold is the minimum co-occurrence strength between an
	// upstream and downstream candidate for the upstream component to be
	// attributed as the causal bottleneck.
	JaccardThreshold float64

	// TopPatterns is how many error patterns are retained in the
	// evidence payload, ranked by frequency.
	TopPatterns int
}

// DefaultConfig matches the documented defaults: a 20-response window,
// 0.3 error-rate threshold, and Jaccard co-occurrence threshold of 0.5.
func DefaultConfig() Config {
	return Config{
		WindowSize:         20,
		ErrorRateThreshold: 0.3,
		MinResponses:       10,
		JaccardThreshold:   0.5,
		TopPatterns:        3,
	}
}
