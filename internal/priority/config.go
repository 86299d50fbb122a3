// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package priority

import "github.com/kerem-isiktasli/logos/internal/domain"

// Weights holds the three FRE score weights: frequency, relational
// density, engagement.
type Weights struct {
	F float64
	R float64
	E float64
}

// Config controls level-dependent weighting, the bottleneck boost
// factor, cost flooring, and urgency scaling.
type Config struct {
	// NoviceWeights applies below AdvancedStage; novice learners
	// benefit more from frequency-led ordering.
	NoviceWeights Weights

	// AdvancedWeights applies at or above AdvancedStage; advanced
	// learners benefit more from engagement-led ordering.
	AdvancedWeights Weights

	// AdvancedStage is the mastery stage at which AdvancedWeights take
	// over from NoviceWeights.
	AdvancedStage domain.Stage

	// BoostFactor multiplies score when an object's component is the
	// primary bottleneck. Must be in [1,2].
	BoostFactor float64

	// CostFloor is the minimum value Cost can take.
	CostFloor float64

	// DeadlineUrgencyScale controls how strongly an approaching
	// deadline raises Urgency.
	DeadlineUrgencyScale float64

	// StageGapUrgencyScale controls how strongly a wide gap to the
	// goal's target stage raises Urgency.
	StageGapUrgencyScale float64
}

// DefaultConfig matches the documented defaults: advanced weighting
// begins at StageProduction, bottleneck boost is 1.5x.
func DefaultConfig() Config {
	return Config{
		NoviceWeights:        Weights{F: 0.5, R: 0.25, E: 0.25},
		AdvancedWeights:      Weights{F: 0.2, R: 0.3, E: 0.5},
		AdvancedStage:        domain.StageProduction,
		BoostFactor:          1.5,
		CostFloor:            0.1,
		DeadlineUrgencyScale: 2.0,
		StageGapUrgencyScale: 0.5,
	}
}

// weightsFor returns the weight triple in effect at stage.
func (c Config) weightsFor(stage domain.Stage) Weights {
	if stage >= c.AdvancedStage {
		return c.AdvancedWeights
	}
	return c.NoviceWeights
}
