// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/stage"
	"github.com/kerem-isiktasli/logos/internal/timing"
	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// StartSessionRequest opens a new session for a user against one of
// their goals.
type StartSessionRequest struct {
	UserID      string
	GoalID      string
	Mode        domain.SessionMode
	SessionSize int // 0 uses Config.SessionSize
}

// QueueItem is one scheduled task in the session queue, resolved to a
// concrete oracle.Response ready for presentation.
type QueueItem struct {
	ObjectID string
	Task     zvector.TaskType
	CueLevel stage.CueLevel
	Content  oracle.Response
}

// StartSessionResult is returned once a session is open and its initial
// queue has been built.
type StartSessionResult struct {
	Session domain.Session
	Queue   []QueueItem
}

// SubmitResponseRequest scores one learner response to a queued item.
type SubmitResponseRequest struct {
	ObjectID        string
	TaskType        zvector.TaskType
	Modality        domain.Modality
	Category        domain.TaskCategory
	InteractionKind domain.InteractionCategory

	Correct         bool
	ResponseTimeMs  int64
	CueLevel        int
	ResponseContent string
	ExpectedContent string
}

// SubmitResponseResult reports everything that changed as a result of
// scoring one response.
type SubmitResponseResult struct {
	Response         domain.Response
	NewStage         domain.Stage
	StageChanged     bool
	Regressed        bool
	SuspiciousFlags  []timing.Pattern
	PrimaryBottleneck domain.Component
	HasBottleneck    bool
	NextQueueItem    *QueueItem
}

// EndSessionResult is returned once a session has been drained and its
// closing θ snapshot persisted.
type EndSessionResult struct {
	Session domain.Session
}
