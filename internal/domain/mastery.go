// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "time"

// Stage is a mastery stage: 0 Unknown, 1 Recognition, 2 Recall,
// 3 Production, 4 Automatic.
type Stage int

const (
	StageUnknown Stage = iota
	StageRecognition
	StageRecall
	StageProduction
	StageAutomatic
)

// MaxStage is the highest valid Stage value.
const MaxStage = StageAutomatic

func (s Stage) String() string {
	switch s {
	case StageUnknown:
		return "unknown"
	case StageRecognition:
		return "recognition"
	case StageRecall:
		return "recall"
	case StageProduction:
		return "production"
	case StageAutomatic:
		return "automatic"
	default:
		return "invalid"
	}
}

// CardState is the FSRS lifecycle state of a card.
type CardState string

const (
	CardStateNew        CardState = "new"
	CardStateLearning   CardState = "learning"
	CardStateReview     CardState = "review"
	CardStateRelearning CardState = "relearning"
)

// Card is the FSRS memory-state record for one LanguageObject.
type Card struct {
	Difficulty float64    `json:"difficulty"` // [1,10]
	Stability  float64    `json:"stability"`  // >=0
	Reps       int        `json:"reps"`
	Lapses     int        `json:"lapses"`
	State      CardState  `json:"state"`
	LastReview *time.Time `json:"last_review,omitempty"`
	NextReview *time.Time `json:"next_review,omitempty"`
}

// NewCard returns a fresh, unreviewed card.
func NewCard() Card {
	return Card{Difficulty: 5.0, Stability: 0, State: CardStateNew}
}

// MasteryState is the exactly-one-per-LanguageObject mastery record.
//
// Invariant: cue_assisted_accuracy >= cue_free_accuracy - epsilon
// (violations tolerated but flagged); stage is non-decreasing except on
// catastrophic regression.
type MasteryState struct {
	ObjectID string `json:"object_id"`
	Stage    Stage  `json:"stage"`

	FSRS Card `json:"fsrs"`

	CueFreeAccuracy     float64 `json:"cue_free_accuracy"`
	CueAssistedAccuracy float64 `json:"cue_assisted_accuracy"`
	ExposureCount       int     `json:"exposure_count"`

	Priority float64 `json:"priority"`

	// AgainStreak counts consecutive Again ratings, reset on any non-Again
	// rating. Drives the catastrophic-regression rule.
	AgainStreak int `json:"again_streak"`
}

// ScaffoldingGap is cue_assisted_accuracy - cue_free_accuracy.
func (m MasteryState) ScaffoldingGap() float64 {
	return m.CueAssistedAccuracy - m.CueFreeAccuracy
}

// ScaffoldingGapTolerance is the epsilon below which a negative
// scaffolding gap is tolerated without being flagged InconsistentState.
const ScaffoldingGapTolerance = 1e-6

// StageTransition is an append-only audit record of a stage change.
type StageTransition struct {
	ID        string    `json:"id"`
	ObjectID  string    `json:"object_id"`
	FromStage Stage     `json:"from_stage"`
	ToStage   Stage     `json:"to_stage"`
	Trigger   string    `json:"trigger"`
	Timestamp time.Time `json:"timestamp"`

	// Metrics snapshot at the time of transition, serialized with stable
	// field names: cue_free, cue_assisted, stability, exposure, gap.
	CueFreeAccuracy     float64 `json:"cue_free"`
	CueAssistedAccuracy float64 `json:"cue_assisted"`
	Stability           float64 `json:"stability"`
	ExposureCount       int     `json:"exposure"`
	ScaffoldingGap      float64 `json:"gap"`
}

// IsRegression reports whether this transition drops the stage.
func (t StageTransition) IsRegression() bool { return t.ToStage < t.FromStage }
