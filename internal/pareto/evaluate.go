// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import "github.com/kerem-isiktasli/logos/internal/domain"

// sharedObjectK returns, for each goal, the k (number of benefiting
// goals) and the per-goal benefit values of the shared object with the
// largest k that touches it, or (1, nil) if no shared object with more
// than one benefiting goal touches it.
func sharedObjectK(goalID string, sharedObjects []domain.SharedObject) (int, []float64) {
	best := 1
	var bestBenefits []float64
	for _, so := range sharedObjects {
		relevance, ok := so.BenefitingGoals[goalID]
		if !ok || relevance <= 0 {
			continue
		}
		k := so.GoalCount()
		if k > best {
			best = k
			benefits := make([]float64, 0, k)
			for _, v := range so.BenefitingGoals {
				benefits = append(benefits, v)
			}
			bestBenefits = benefits
		}
	}
	return best, bestBenefits
}

// Evaluate scores one allocation candidate, producing its ParetoSolution
// (sans ID and Dominated, set later by the frontier pass).
func Evaluate(goals []domain.CurriculumGoal, sharedObjects []domain.SharedObject, alloc Allocation, cfg Config) domain.ParetoSolution {
	progress := make(map[string]float64, len(goals))
	var totalProgress, totalSynergy, deadlineRisk float64

	for _, g := range goals {
		frac := alloc[g.GoalID]
		minutes := frac * cfg.SessionMinutes
		k, benefits := sharedObjectK(g.GoalID, sharedObjects)

		rate := ProgressRate(k, minutes, g.CurrentTheta, g.TargetTheta, g.Weight)
		progress[g.GoalID] = rate
		totalProgress += rate
		totalSynergy += SynergyBonus(k, cfg.SynergyConstant, benefits)

		if g.Deadline != nil {
			gap := g.TargetTheta - g.CurrentTheta
			if gap < 0 {
				gap = 0
			}
			remaining := gap - rate
			if remaining < 0 {
				remaining = 0
			}
			days := daysUntil(*g.Deadline)
			if days < 1 {
				days = 1
			}
			deadlineRisk += remaining / days
		}
	}

	return domain.ParetoSolution{
		Allocation:       alloc,
		ExpectedProgress: progress,
		Efficiency:       totalProgress + totalSynergy,
		DeadlineRisk:     deadlineRisk,
	}
}
