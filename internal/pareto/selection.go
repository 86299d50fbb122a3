// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import "github.com/kerem-isiktasli/logos/internal/domain"

// Select picks one solution from frontier per the chosen preference.
// PreferenceCustom, like any preference not listed below, is scored as
// balanced.
func Select(frontier []domain.ParetoSolution, preference domain.SelectionPreference) (domain.ParetoSolution, bool) {
	candidates := NonDominated(frontier)
	if len(candidates) == 0 {
		return domain.ParetoSolution{}, false
	}

	var scoreFn func(domain.ParetoSolution) float64
	switch preference {
	case domain.PreferenceDeadlineFocused:
		scoreFn = func(s domain.ParetoSolution) float64 { return -s.DeadlineRisk }
	case domain.PreferenceProgressFocused:
		scoreFn = sumProgress
	case domain.PreferenceSynergyFocused:
		scoreFn = func(s domain.ParetoSolution) float64 { return s.Efficiency }
	default: // balanced
		scoreFn = func(s domain.ParetoSolution) float64 { return -progressVariance(s) }
	}

	best := candidates[0]
	bestScore := scoreFn(best)
	for _, c := range candidates[1:] {
		if score := scoreFn(c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, true
}

func sumProgress(s domain.ParetoSolution) float64 {
	var sum float64
	for _, p := range s.ExpectedProgress {
		sum += p
	}
	return sum
}

func progressVariance(s domain.ParetoSolution) float64 {
	n := len(s.ExpectedProgress)
	if n == 0 {
		return 0
	}
	mean := sumProgress(s) / float64(n)
	var variance float64
	for _, p := range s.ExpectedProgress {
		d := p - mean
		variance += d * d
	}
	return variance / float64(n)
}

// Variance is exported for callers that want to report it alongside a
// selected solution.
func Variance(s domain.ParetoSolution) float64 { return progressVariance(s) }
