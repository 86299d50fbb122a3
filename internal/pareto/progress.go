// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import (
	"math"

	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// levelFactor diminishes as currentTheta rises: a learner already close
// to the top of the ability scale progresses more slowly per minute
// than a learner near the bottom.
func levelFactor(currentTheta float64) float64 {
	return 1 - numeric.Sigmoid(currentTheta)
}

// gapFactor is the remaining room to close between current and target
// ability; it naturally shrinks to 0 as the gap closes, which is what
// gives ProgressRate its diminishing-returns shape over repeated calls.
func gapFactor(currentTheta, targetTheta float64) float64 {
	gap := targetTheta - currentTheta
	if gap < 0 {
		return 0
	}
	return gap
}

// ProgressRate is the expected ability gain from allocating tMinutes to
// a goal currently at currentTheta with targetTheta, weighted by the
// goal's weight and boosted by k, the number of goals this session's
// objects jointly benefit (1 when no shared objects are in play).
func ProgressRate(k int, tMinutes, currentTheta, targetTheta, weight float64) float64 {
	if tMinutes <= 0 || k <= 0 {
		return 0
	}
	return float64(k) * math.Sqrt(tMinutes) * levelFactor(currentTheta) * gapFactor(currentTheta, targetTheta) * weight
}

// SynergyBonus is the shared-object synergy term (k-1)*c*mean(benefits)
// for an object benefiting k goals with the given per-goal relevance
// values and synergy constant c.
func SynergyBonus(k int, c float64, benefits []float64) float64 {
	if k <= 1 || len(benefits) == 0 {
		return 0
	}
	var sum float64
	for _, b := range benefits {
		sum += b
	}
	mean := sum / float64(len(benefits))
	return float64(k-1) * c * mean
}

// PriorityBoost is the multiplicative priority boost ln(1+k)/ln(5) for
// an object shared across k goals.
func PriorityBoost(k int) float64 {
	if k <= 0 {
		return 0
	}
	return math.Log(1+float64(k)) / math.Log(5)
}
