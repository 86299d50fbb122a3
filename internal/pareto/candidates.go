// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package pareto

import (
	"math/rand"
	"sort"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

func daysUntil(deadline time.Time) float64 {
	return time.Until(deadline).Hours() / 24
}

// Allocation maps goal ID to its fraction of the session time budget.
type Allocation map[string]float64

// GenerateCandidates produces the equal, deadline-weighted, and
// progress-weighted strategic seeds plus cfg.RandomSamples randomly
// seeded allocations, each respecting the per-goal floor/ceiling.
func GenerateCandidates(goals []domain.CurriculumGoal, cfg Config, rng *rand.Rand) []Allocation {
	if len(goals) == 0 {
		return nil
	}

	ids := goalIDs(goals)
	candidates := make([]Allocation, 0, cfg.RandomSamples+3)

	candidates = append(candidates, normalizeWithBounds(equalWeights(ids), cfg))
	candidates = append(candidates, normalizeWithBounds(deadlineWeights(goals), cfg))
	candidates = append(candidates, normalizeWithBounds(progressWeights(goals), cfg))

	for i := 0; i < cfg.RandomSamples; i++ {
		candidates = append(candidates, normalizeWithBounds(randomWeights(ids, rng), cfg))
	}

	return candidates
}

func goalIDs(goals []domain.CurriculumGoal) []string {
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.GoalID
	}
	sort.Strings(ids)
	return ids
}

func equalWeights(ids []string) Allocation {
	w := make(Allocation, len(ids))
	for _, id := range ids {
		w[id] = 1
	}
	return w
}

// noDeadlineAssumedDays is the implicit deadline distance used for
// goals without one, so they still receive some weight in this seed
// without drowning out genuinely time-pressured goals.
const noDeadlineAssumedDays = 365.0

// deadlineWeights favors goals with a sooner deadline; goals with no
// deadline are treated as if their deadline were a year out.
func deadlineWeights(goals []domain.CurriculumGoal) Allocation {
	w := make(Allocation, len(goals))
	for _, g := range goals {
		days := noDeadlineAssumedDays
		if g.Deadline != nil {
			days = daysUntil(*g.Deadline)
			if days < 1 {
				days = 1
			}
		}
		w[g.GoalID] = 1 / days
	}
	return w
}

// progressWeights favors goals with a wider remaining ability gap.
func progressWeights(goals []domain.CurriculumGoal) Allocation {
	w := make(Allocation, len(goals))
	for _, g := range goals {
		gap := g.TargetTheta - g.CurrentTheta
		if gap < 0 {
			gap = 0
		}
		w[g.GoalID] = gap + 0.01 // avoid an all-zero candidate when every goal is already at target
	}
	return w
}

func randomWeights(ids []string, rng *rand.Rand) Allocation {
	w := make(Allocation, len(ids))
	for _, id := range ids {
		w[id] = rng.Float64() + 0.01 // avoid zero weight collapsing a goal entirely
	}
	return w
}

// normalizeWithBounds rescales raw weights to sum to 1, then iteratively
// clamps entries into [floor,ceiling] and redistributes the resulting
// surplus/deficit among unclamped entries (water-filling), converging
// within a small fixed number of passes for any realistic goal count.
func normalizeWithBounds(raw Allocation, cfg Config) Allocation {
	alloc := make(Allocation, len(raw))
	var sum float64
	for _, v := range raw {
		sum += v
	}
	if sum <= 0 {
		for k := range raw {
			alloc[k] = 1 / float64(len(raw))
		}
	} else {
		for k, v := range raw {
			alloc[k] = v / sum
		}
	}

	for iter := 0; iter < 10; iter++ {
		fixed := make(map[string]bool, len(alloc))
		var deficit, surplus float64
		for k, v := range alloc {
			switch {
			case v < cfg.FloorPerGoal:
				deficit += cfg.FloorPerGoal - v
				alloc[k] = cfg.FloorPerGoal
				fixed[k] = true
			case v > cfg.CeilingPerGoal:
				surplus += v - cfg.CeilingPerGoal
				alloc[k] = cfg.CeilingPerGoal
				fixed[k] = true
			}
		}
		net := surplus - deficit
		if net == 0 {
			break
		}

		var unfixedSum float64
		for k, v := range alloc {
			if !fixed[k] {
				unfixedSum += v
			}
		}
		if unfixedSum <= 0 {
			// Every entry was clamped this pass; entries still short of
			// the bound in the direction of net absorb it instead.
			for k, v := range alloc {
				if (net > 0 && v < cfg.CeilingPerGoal) || (net < 0 && v > cfg.FloorPerGoal) {
					fixed[k] = false
					unfixedSum += v
				}
			}
			if unfixedSum <= 0 {
				break
			}
		}
		for k, v := range alloc {
			if !fixed[k] {
				alloc[k] = v + (v/unfixedSum)*net
			}
		}
	}

	var finalSum float64
	for _, v := range alloc {
		finalSum += v
	}
	if finalSum > 0 {
		for k, v := range alloc {
			alloc[k] = v / finalSum
		}
	}
	return alloc
}
