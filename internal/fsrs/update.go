// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package fsrs

import "math"

// InitialDifficulty returns D0(G), clamped to [DifficultyMin,DifficultyMax].
func InitialDifficulty(w Weights, g Rating) float64 {
	d := w[4] - (float64(g)-3)*w[5]
	return clampDifficulty(d)
}

// InitialStability returns S0(G), the first-review stability.
func InitialStability(w Weights, g Rating) float64 {
	return w[g-1]
}

// NextDifficulty updates difficulty after a review, applying the
// linear-damping update followed by mean reversion toward D0(Easy).
func NextDifficulty(w Weights, d float64, g Rating) float64 {
	delta := -w[6] * (float64(g) - 3)
	dPrime := d + delta*(10-d)/9
	easyD0 := InitialDifficulty(w, Easy)
	dReverted := w[7]*easyD0 + (1-w[7])*dPrime
	return clampDifficulty(dReverted)
}

func clampDifficulty(d float64) float64 {
	switch {
	case d < DifficultyMin:
		return DifficultyMin
	case d > DifficultyMax:
		return DifficultyMax
	default:
		return d
	}
}

// NextStabilityOnRecall updates stability after a non-Again (successful
// recall) rating, given the pre-review retrievability r.
func NextStabilityOnRecall(w Weights, d, s, r float64, g Rating) float64 {
	inc := math.Exp(w[8]) * (11 - d) * math.Pow(s, -w[9]) * (math.Exp((1-r)*w[10]) - 1)
	switch g {
	case Hard:
		inc *= w[15]
	case Easy:
		inc *= w[16]
	}
	return s * (inc + 1)
}

// NextStabilityOnLapse updates stability after an Again rating (a lapse),
// never exceeding the pre-lapse stability and never below MinStability.
func NextStabilityOnLapse(w Weights, d, s, r float64) float64 {
	sNew := w[11] * math.Pow(d, -w[12]) * (math.Pow(s+1, w[13]) - 1) * math.Exp((1-r)*w[14])
	if sNew > s {
		sNew = s
	}
	if sNew < MinStability {
		sNew = MinStability
	}
	return sNew
}

// ShortTermStability updates stability for a same-day re-review, where
// the elapsed-time-dependent recall/lapse equations do not apply.
func ShortTermStability(w Weights, s float64, g Rating) float64 {
	return s * math.Exp(w[17]*(float64(g)-3+w[18]))
}
