// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import "github.com/kerem-isiktasli/logos/internal/domain"

// Update folds one encounter into stats in place: category/modality counts,
// Welford-updated success rates and average response time, domain
// exposure, interpretation ratio, modality balance, retrieval fluency,
// knowledge strength, and learning cost. Callers should start from
// domain.NewRelationshipStats on the first encounter between a user and an
// object.
func Update(stats *domain.RelationshipStats, enc domain.ObjectEncounter) {
	n := totalCount(stats) + 1

	stats.CountByCategory[enc.Category]++
	stats.CountByModality[enc.Modality]++

	correct := 0.0
	if enc.Correct {
		correct = 1
	}
	stats.SuccessByCategory[enc.Category] = welfordMean(stats.SuccessByCategory[enc.Category], stats.CountByCategory[enc.Category], correct)
	stats.SuccessByModality[enc.Modality] = welfordMean(stats.SuccessByModality[enc.Modality], stats.CountByModality[enc.Modality], correct)

	stats.AvgResponseTimeMs = welfordMean(stats.AvgResponseTimeMs, n, float64(enc.ResponseTimeMs))
	updateDomainExposure(stats.DomainExposure, enc.Domain, n)

	stats.InterpretationRatio = float64(stats.CountByCategory[domain.InteractionInterpretation]) / float64(n)
	stats.ModalityBalance = ModalityBalance(stats.CountByModality)
	stats.RetrievalFluency = RetrievalFluency(stats.AvgResponseTimeMs)
	stats.LastEncounter = enc.OccurredAt

	stats.KnowledgeStrength = KnowledgeStrength(stats, enc.OccurredAt)
	stats.LearningCost = LearningCost(stats, enc.Difficulty, stats.KnowledgeStrength)
}
