// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import (
	"fmt"
	"math/rand"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// Allocate runs the full pipeline: sample candidate allocations, score
// each, build the non-dominated frontier, and select one solution per
// preference.
func Allocate(goals []domain.CurriculumGoal, sharedObjects []domain.SharedObject, cfg Config, preference domain.SelectionPreference, rng *rand.Rand) (domain.ParetoSolution, error) {
	if len(goals) == 0 {
		return domain.ParetoSolution{}, fmt.Errorf("pareto: at least one goal is required")
	}

	candidates := GenerateCandidates(goals, cfg, rng)
	solutions := make([]domain.ParetoSolution, len(candidates))
	for i, c := range candidates {
		solutions[i] = Evaluate(goals, sharedObjects, c, cfg)
	}

	frontier := Frontier(solutions)
	chosen, ok := Select(frontier, preference)
	if !ok {
		return domain.ParetoSolution{}, fmt.Errorf("pareto: no non-dominated solution found")
	}
	return chosen, nil
}
