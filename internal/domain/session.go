// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "time"

// SessionMode is the practice mode of a Session.
type SessionMode string

const (
	SessionModeLearning   SessionMode = "learning"
	SessionModeTraining   SessionMode = "training"
	SessionModeEvaluation SessionMode = "evaluation"
)

// Session is one practice session for a user against a goal.
type Session struct {
	ID     string      `json:"id"`
	UserID string      `json:"user_id"`
	GoalID string      `json:"goal_id"`
	Mode   SessionMode `json:"mode"`

	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`

	ItemsPracticed   int `json:"items_practiced"`
	StageTransitions int `json:"stage_transitions"`
	FluencyTasks     int `json:"fluency_tasks"`
	VersatilityTasks int `json:"versatility_tasks"`
	ResponseCount    int `json:"response_count"`
	CorrectCount     int `json:"correct_count"`

	// ThetaSnapshot is taken at session close.
	ThetaSnapshot *ThetaProfile `json:"theta_snapshot,omitempty"`
}

// TaskCategory is the timing-category used by the response-time classifier.
// This is a separate axis from InteractionCategory (interpretation versus
// production): a task can be timed as recall while still counting as a
// production-mode encounter, so the two are kept as distinct types rather
// than merged.
type TaskCategory string

const (
	TaskCategoryRecognition TaskCategory = "recognition"
	TaskCategoryRecall      TaskCategory = "recall"
	TaskCategoryProduction  TaskCategory = "production"
)

// InteractionCategory is the interpretation/production axis used by the
// encounter graph, distinct from TaskCategory.
type InteractionCategory string

const (
	InteractionInterpretation InteractionCategory = "interpretation"
	InteractionProduction     InteractionCategory = "production"
)

// Response is an append-only record of one scored answer.
type Response struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	ObjectID  string `json:"object_id"`

	TaskType   string       `json:"task_type"`
	TaskFormat string       `json:"task_format"`
	Modality   Modality     `json:"modality"`
	Category   TaskCategory `json:"category"`

	Correct         bool  `json:"correct"`
	ResponseTimeMs  int64 `json:"response_time_ms"`
	CueLevel        int   `json:"cue_level"` // 0..3

	ResponseContent string  `json:"response_content,omitempty"`
	ExpectedContent string  `json:"expected_content,omitempty"`
	ThetaContribution *float64 `json:"theta_contribution,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Collocation is an undirected pair of distinct LanguageObjects within one
// goal, unique by unordered pair.
type Collocation struct {
	ID      string  `json:"id"`
	GoalID  string  `json:"goal_id"`
	ObjectA string  `json:"object_a"`
	ObjectB string  `json:"object_b"`
	PMI     float64 `json:"pmi"`
	NPMI    float64 `json:"npmi"` // [-1,1]

	CoOccurrenceCount int     `json:"co_occurrence_count"` // >=1
	Significance      float64 `json:"significance"`        // [0,1]
}

// CollocationKey returns the unordered-pair identity of a collocation: the two object
// IDs sorted, joined by a separator not expected in UUIDs.
func CollocationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
