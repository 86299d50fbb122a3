// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import "github.com/kerem-isiktasli/logos/internal/domain"

// startSessionRequest is the wire shape of POST /sessions.
type startSessionRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	GoalID      string `json:"goal_id" validate:"required"`
	Mode        string `json:"mode" validate:"required,oneof=learning training evaluation"`
	SessionSize int    `json:"session_size" validate:"gte=0"`
}

func (r startSessionRequest) sessionMode() domain.SessionMode {
	return domain.SessionMode(r.Mode)
}

// submitResponseRequest is the wire shape of POST /sessions/{id}/responses.
type submitResponseRequest struct {
	ObjectID        string `json:"object_id" validate:"required"`
	TaskType        string `json:"task_type" validate:"required"`
	Modality        string `json:"modality" validate:"required,oneof=reading listening speaking writing"`
	Category        string `json:"category" validate:"required,oneof=recognition recall production"`
	InteractionKind string `json:"interaction_kind" validate:"required,oneof=interpretation production"`

	Correct         bool   `json:"correct"`
	ResponseTimeMs  int64  `json:"response_time_ms" validate:"gte=0"`
	CueLevel        int    `json:"cue_level" validate:"gte=0,lte=3"`
	ResponseContent string `json:"response_content"`
	ExpectedContent string `json:"expected_content"`
}

// progressResponse is the wire shape returned by get-progress.
type progressResponse struct {
	UserID           string                   `json:"user_id"`
	GoalID           string                   `json:"goal_id"`
	GlobalTheta      domain.Ability           `json:"global_theta"`
	ComponentThetas  map[string]domain.Ability `json:"component_thetas"`
	ObjectCount      int                      `json:"object_count"`
	StageCounts      map[string]int           `json:"stage_counts"`
	AverageExposures float64                  `json:"average_exposures"`
}

// bottleneckResponse is the wire shape returned by get-bottlenecks.
type bottleneckResponse struct {
	UserID           string             `json:"user_id"`
	GoalID           string             `json:"goal_id"`
	HasPrimary       bool               `json:"has_primary"`
	PrimaryComponent string             `json:"primary_component,omitempty"`
	ByComponent      map[string]evidenceView `json:"by_component"`
	ResponsesSampled int                `json:"responses_sampled"`
}

type evidenceView struct {
	ErrorRate        float64  `json:"error_rate"`
	ResponseCount    int      `json:"response_count"`
	ImprovementTrend float64  `json:"improvement_trend"`
	CoOccurring      []string `json:"co_occurring,omitempty"`
	IsPrimary        bool     `json:"is_primary"`
	Confidence       float64  `json:"confidence"`
}
