// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "time"

// ObjectEncounter is derived from a Response plus context: one practice
// exposure to a LanguageObject.
type ObjectEncounter struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	ObjectID   string              `json:"object_id"`
	Category   InteractionCategory `json:"category"`
	Modality   Modality            `json:"modality"`
	Domain     Domain              `json:"domain"`
	Theta      float64             `json:"theta"`
	Difficulty float64             `json:"difficulty"`
	Correct    bool                `json:"correct"`
	ResponseTimeMs int64           `json:"response_time_ms"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// RelationshipStats aggregates ObjectEncounters per (user, object).
type RelationshipStats struct {
	UserID   string `json:"user_id"`
	ObjectID string `json:"object_id"`

	CountByCategory map[InteractionCategory]int `json:"count_by_category"`
	CountByModality map[Modality]int            `json:"count_by_modality"`

	SuccessByCategory map[InteractionCategory]float64 `json:"success_by_category"`
	SuccessByModality map[Modality]float64            `json:"success_by_modality"`

	InterpretationRatio float64 `json:"interpretation_ratio"`
	ModalityBalance     float64 `json:"modality_balance"` // [0,1]

	DomainExposure map[Domain]float64 `json:"domain_exposure"`

	AvgResponseTimeMs float64   `json:"avg_response_time_ms"`
	RetrievalFluency  float64   `json:"retrieval_fluency"` // [0,1]
	LearningCost      float64   `json:"learning_cost"`     // [0.1,1.0]
	KnowledgeStrength float64   `json:"knowledge_strength"`
	LastEncounter     time.Time `json:"last_encounter"`
}

// NewRelationshipStats returns a zero-valued stats record ready for
// incremental Welford-style updates.
func NewRelationshipStats(userID, objectID string) RelationshipStats {
	return RelationshipStats{
		UserID:            userID,
		ObjectID:          objectID,
		CountByCategory:   make(map[InteractionCategory]int),
		CountByModality:   make(map[Modality]int),
		SuccessByCategory: make(map[InteractionCategory]float64),
		SuccessByModality: make(map[Modality]float64),
		DomainExposure:    make(map[Domain]float64),
	}
}
