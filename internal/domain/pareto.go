// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "time"

// CurriculumGoal is the multi-goal-layer view of a Goal: current/target
// ability plus allocator-relevant weight and modalities.
type CurriculumGoal struct {
	GoalID       string     `json:"goal_id"`
	CurrentTheta float64    `json:"current_theta"`
	TargetTheta  float64    `json:"target_theta"`
	Weight       float64    `json:"weight"`
	Modalities   []Modality `json:"modalities"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// SharedObject is a LanguageObject appearing in more than one goal, with
// per-goal relevance for the synergy bonus.
type SharedObject struct {
	ObjectID        string             `json:"object_id"`
	BenefitingGoals map[string]float64 `json:"benefiting_goals"` // goalID -> relevance
}

// GoalCount returns the number of goals this object benefits (k in the
// synergy formula).
func (s SharedObject) GoalCount() int { return len(s.BenefitingGoals) }

// ParetoSolution is a time-allocation vector across goals, summing to 1.
type ParetoSolution struct {
	ID               string             `json:"id"`
	Allocation       map[string]float64 `json:"allocation"` // goalID -> fraction of session minutes
	ExpectedProgress map[string]float64 `json:"expected_progress"`
	Efficiency       float64            `json:"efficiency"`
	DeadlineRisk     float64            `json:"deadline_risk"`
	Dominated        bool               `json:"dominated"`
}

// SelectionPreference chooses among the Pareto frontier.
type SelectionPreference string

const (
	PreferenceBalanced         SelectionPreference = "balanced"
	PreferenceDeadlineFocused  SelectionPreference = "deadline_focused"
	PreferenceProgressFocused  SelectionPreference = "progress_focused"
	PreferenceSynergyFocused   SelectionPreference = "synergy_focused"
	PreferenceCustom           SelectionPreference = "custom"
)

// OfflineQueueStatus is the lifecycle state of a pending oracle request.
type OfflineQueueStatus string

const (
	QueueStatusPending    OfflineQueueStatus = "pending"
	QueueStatusProcessing OfflineQueueStatus = "processing"
	QueueStatusCompleted  OfflineQueueStatus = "completed"
	QueueStatusFailed     OfflineQueueStatus = "failed"
)

// OfflineQueueItem represents a pending content-oracle request. Not part
// of the learning-science core; listed because core code must be robust to
// oracle unavailability.
type OfflineQueueItem struct {
	ID         string             `json:"id"`
	ObjectID   string             `json:"object_id"`
	Request    []byte             `json:"request"` // serialized oracle request
	Status     OfflineQueueStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// CanRetry reports whether the item may be retried again.
func (q OfflineQueueItem) CanRetry() bool {
	return q.Status == QueueStatusFailed && q.RetryCount < q.MaxRetries
}
