// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampTheta(t *testing.T) {
	assert.Equal(t, ThetaMax, ClampTheta(10))
	assert.Equal(t, ThetaMin, ClampTheta(-10))
	assert.Equal(t, 1.5, ClampTheta(1.5))
}

func TestZVectorNormalizeAndDominant(t *testing.T) {
	z := ZVector{F: 1.5, R: -0.2, D: 0.3, M: 0.9, P: 0.1, PRAG: 0, SYNT: 0.2}.Normalize()
	assert.Equal(t, 1.0, z.F)
	assert.Equal(t, 0.0, z.R)
	assert.Equal(t, 0.3, z.D)

	dominant := ZVector{F: 0.1, R: 0.2, D: 0.1, M: 0.1, P: 0.9, PRAG: 0.1, SYNT: 0.1}.Dominant()
	assert.Equal(t, 4, dominant) // P is index 4
}

func TestIRTParamsValidate(t *testing.T) {
	require.NoError(t, DefaultIRTParams().Validate())
	require.Error(t, IRTParams{A: 0.1, B: 0, C: 0}.Validate())
	require.Error(t, IRTParams{A: 1, B: 10, C: 0}.Validate())
	require.Error(t, IRTParams{A: 1, B: 0, C: 0.9}.Validate())
}

func TestGoalValidate(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	g := Goal{ID: "g1", Modalities: []Modality{ModalityReading}, Weight: 1, Deadline: &future}
	require.NoError(t, g.Validate(now))

	past := now.Add(-time.Hour)
	g2 := Goal{ID: "g2", Modalities: []Modality{ModalityReading}, Deadline: &past}
	require.Error(t, g2.Validate(now))

	g3 := Goal{ID: "g3"}
	require.Error(t, g3.Validate(now))
}

func TestCollocationKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, CollocationKey("a", "b"), CollocationKey("b", "a"))
}

func TestStageTransitionIsRegression(t *testing.T) {
	tr := StageTransition{FromStage: StageProduction, ToStage: StageRecall}
	assert.True(t, tr.IsRegression())
	tr2 := StageTransition{FromStage: StageRecall, ToStage: StageProduction}
	assert.False(t, tr2.IsRegression())
}

func TestMasteryStateScaffoldingGap(t *testing.T) {
	m := MasteryState{CueFreeAccuracy: 0.5, CueAssistedAccuracy: 0.8}
	assert.InDelta(t, 0.3, m.ScaffoldingGap(), 1e-9)
}
