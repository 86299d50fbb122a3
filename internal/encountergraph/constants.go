// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import "github.com/kerem-isiktasli/logos/internal/domain"

const (
	// retrievalFluencyCenterMs is the avg_response_time_ms value mapped to
	// fluency 0.5.
	retrievalFluencyCenterMs = 2000.0

	// retrievalFluencyScaleMs controls how sharply fluency falls off around
	// the center; not named in the source text, chosen so a response a
	// second faster or slower than center moves fluency by roughly 0.38.
	retrievalFluencyScaleMs = 500.0

	// recencyHalfLifeDays is the half-life of the recency term: it halves
	// every 30 days without a further encounter.
	recencyHalfLifeDays = 30.0

	// stalledExposureCap is the exposure count at which the learning-cost
	// stalled-exposure penalty saturates.
	stalledExposureCap = 20.0

	learningCostFloor = 0.1
	learningCostCeil  = 1.0
)

// canonicalModalities fixes an iteration order for modality-balance entropy
// so repeated computations over the same counts are bit-for-bit stable.
var canonicalModalities = []domain.Modality{
	domain.ModalityReading,
	domain.ModalityListening,
	domain.ModalitySpeaking,
	domain.ModalityWriting,
}

// canonicalCategories fixes an iteration order for category-balance entropy.
var canonicalCategories = []domain.InteractionCategory{
	domain.InteractionInterpretation,
	domain.InteractionProduction,
}
