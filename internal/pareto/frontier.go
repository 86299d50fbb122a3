// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import "github.com/kerem-isiktasli/logos/internal/domain"

// Dominates reports whether a dominates b: a's per-goal progress is at
// least b's for every goal, and strictly greater for at least one.
func Dominates(a, b domain.ParetoSolution) bool {
	strictlyBetter := false
	for goalID, progressA := range a.ExpectedProgress {
		progressB := b.ExpectedProgress[goalID]
		if progressA < progressB {
			return false
		}
		if progressA > progressB {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// Frontier marks every solution dominated by another in the set and
// returns the full set with Dominated flags set (callers filter for
// non-dominated solutions as needed).
func Frontier(solutions []domain.ParetoSolution) []domain.ParetoSolution {
	out := make([]domain.ParetoSolution, len(solutions))
	copy(out, solutions)

	for i := range out {
		for j := range out {
			if i == j {
				continue
			}
			if Dominates(out[j], out[i]) {
				out[i].Dominated = true
				break
			}
		}
	}
	return out
}

// NonDominated filters a frontier down to the solutions with Dominated
// == false.
func NonDominated(solutions []domain.ParetoSolution) []domain.ParetoSolution {
	out := make([]domain.ParetoSolution, 0, len(solutions))
	for _, s := range solutions {
		if !s.Dominated {
			out = append(out, s)
		}
	}
	return out
}
