// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package zvector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

func TestIsAvailableAtStageGatesTaskPalette(t *testing.T) {
	assert.True(t, IsAvailableAtStage(TaskRecognition, domain.StageUnknown))
	assert.False(t, IsAvailableAtStage(TaskRegisterShift, domain.StageUnknown))
	assert.True(t, IsAvailableAtStage(TaskRegisterShift, domain.StageAutomatic))
}

func TestSuitabilityAppliesUnavailablePenaltyRatherThanExcluding(t *testing.T) {
	matrix := DefaultAffinityMatrix()
	z := domain.ZVector{PRAG: 1.0}

	atAutomatic := Suitability(matrix, TaskRegisterShift, z, domain.StageAutomatic)
	atUnknown := Suitability(matrix, TaskRegisterShift, z, domain.StageUnknown)

	require.Greater(t, atAutomatic, 0.0)
	assert.InDelta(t, atAutomatic*UnavailablePenalty, atUnknown, 1e-9)
}

func TestSelectModalityFollowsDominantComponent(t *testing.T) {
	assert.Equal(t, PresentationAuditory, SelectModality(domain.ZVector{P: 0.9}))
	assert.Equal(t, PresentationMixed, SelectModality(domain.ZVector{PRAG: 0.9}))
	assert.Equal(t, PresentationVisual, SelectModality(domain.ZVector{F: 0.9}))
}

func TestRankTasksOrdersByDescendingSuitability(t *testing.T) {
	matrix := DefaultAffinityMatrix()
	z := domain.ZVector{F: 0.9, D: 0.1}
	ranked := RankTasks(matrix, z, domain.StageAutomatic)
	require.NotEmpty(t, ranked)

	var prev float64 = 2
	for _, task := range ranked {
		s := Suitability(matrix, task, z, domain.StageAutomatic)
		assert.LessOrEqual(t, s, prev)
		prev = s
	}
}

func TestEnforceVarietyCapSubstitutesAfterRunLimit(t *testing.T) {
	candidates := []Candidate{
		{ObjectID: "a", Ranked: []TaskType{TaskRecognition, TaskDefinitionMatch}},
		{ObjectID: "b", Ranked: []TaskType{TaskRecognition, TaskDefinitionMatch}},
		{ObjectID: "c", Ranked: []TaskType{TaskRecognition, TaskDefinitionMatch}},
	}
	assignments := EnforceVarietyCap(candidates, 2)
	require.Len(t, assignments, 3)
	assert.Equal(t, TaskRecognition, assignments[0].Task)
	assert.Equal(t, TaskRecognition, assignments[1].Task)
	assert.Equal(t, TaskDefinitionMatch, assignments[2].Task)
}
