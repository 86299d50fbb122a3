// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import (
	"math"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// OverallSuccess reconstructs the all-category success rate from the
// per-category running means and counts, without needing a separate
// running total.
func OverallSuccess(stats *domain.RelationshipStats) float64 {
	var weightedSum float64
	var total int
	for cat, count := range stats.CountByCategory {
		weightedSum += stats.SuccessByCategory[cat] * float64(count)
		total += count
	}
	if total == 0 {
		return 0
	}
	return weightedSum / float64(total)
}

// Recency returns exp(-ln2 * days/halfLife): 1 at zero elapsed time,
// halving every recencyHalfLifeDays.
func Recency(lastEncounter, asOf time.Time) float64 {
	days := asOf.Sub(lastEncounter).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Exp(-math.Ln2 * days / recencyHalfLifeDays)
}

// KnowledgeStrength blends overall success, retrieval fluency, modality and
// category balance, and recency into a single [0,1]-ish mastery signal.
func KnowledgeStrength(stats *domain.RelationshipStats, asOf time.Time) float64 {
	success := OverallSuccess(stats)
	fluency := RetrievalFluency(stats.AvgResponseTimeMs)
	modalityBalance := ModalityBalance(stats.CountByModality)
	categoryBalance := CategoryBalance(stats.CountByCategory)
	recency := Recency(stats.LastEncounter, asOf)

	return 0.4*success + 0.2*fluency + 0.1*modalityBalance + 0.1*categoryBalance + 0.2*recency
}

// LearningCost estimates the cost of the next encounter with this object,
// combining normalized item difficulty, inverted success, and a
// stalled-exposure penalty that grows with exposure count while knowledge
// strength stays low. The result is floored and capped.
func LearningCost(stats *domain.RelationshipStats, difficulty, strength float64) float64 {
	success := OverallSuccess(stats)
	exposures := float64(totalCount(stats))
	stalled := math.Min(1, exposures/stalledExposureCap) * (1 - strength)

	cost := 0.3*numeric.Sigmoid(difficulty) + 0.4*(1-success) + 0.3*stalled
	if cost < learningCostFloor {
		cost = learningCostFloor
	}
	if cost > learningCostCeil {
		cost = learningCostCeil
	}
	return cost
}
