// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package zvector

import (
	"sort"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// ZComponent indexes the seven components of a z(w) vector, in the fixed
// F,R,D,M,P,PRAG,SYNT order used throughout.
type ZComponent int

const (
	ZFrequency ZComponent = iota
	ZRelational
	ZDifficulty
	ZModality
	ZPhonetic
	ZPragmatic
	ZSyntactic
	zComponentCount
)

// AffinityMatrix maps each z-component to its affinity weight for each
// task type. A higher weight means that component contributes more to a
// task's suitability score.
type AffinityMatrix map[TaskType][zComponentCount]float64

// DefaultAffinityMatrix returns the built-in affinity weights. Weights
// are illustrative: recognition and definition-match lean on frequency
// and difficulty, phonologically-loaded tasks (dictation, listening) lean
// on the phonetic component, production tasks lean on syntactic and
// pragmatic components.
func DefaultAffinityMatrix() AffinityMatrix {
	return AffinityMatrix{
		TaskRecognition:         {ZFrequency: 0.5, ZDifficulty: 0.3, ZRelational: 0.2},
		TaskDefinitionMatch:     {ZFrequency: 0.4, ZDifficulty: 0.4, ZRelational: 0.2},
		TaskMultipleChoice:      {ZFrequency: 0.3, ZDifficulty: 0.4, ZRelational: 0.3},
		TaskFillInBlank:         {ZDifficulty: 0.3, ZSyntactic: 0.3, ZRelational: 0.4},
		TaskCloze:               {ZDifficulty: 0.3, ZSyntactic: 0.4, ZRelational: 0.3},
		TaskListeningComprehend: {ZPhonetic: 0.6, ZModality: 0.2, ZDifficulty: 0.2},
		TaskCollocationMatch:    {ZRelational: 0.7, ZFrequency: 0.3},
		TaskTranslationL1L2:     {ZDifficulty: 0.4, ZRelational: 0.3, ZSyntactic: 0.3},
		TaskTranslationL2L1:     {ZDifficulty: 0.4, ZRelational: 0.3, ZSyntactic: 0.3},
		TaskDictation:           {ZPhonetic: 0.7, ZModality: 0.3},
		TaskSentenceConstruct:   {ZSyntactic: 0.5, ZDifficulty: 0.3, ZPragmatic: 0.2},
		TaskParaphrase:          {ZSyntactic: 0.3, ZPragmatic: 0.3, ZRelational: 0.4},
		TaskSentenceCombining:   {ZSyntactic: 0.6, ZDifficulty: 0.4},
		TaskErrorCorrection:     {ZSyntactic: 0.4, ZDifficulty: 0.4, ZPragmatic: 0.2},
		TaskDialogueCompletion:  {ZPragmatic: 0.6, ZModality: 0.2, ZSyntactic: 0.2},
		TaskRegisterShift:       {ZPragmatic: 0.8, ZSyntactic: 0.2},
		TaskFreeProduction:      {ZPragmatic: 0.4, ZSyntactic: 0.3, ZDifficulty: 0.3},
	}
}

// Components returns the seven z-vector values indexed by ZComponent
// order, matching domain.ZVector.Components().
func components(z domain.ZVector) [7]float64 {
	return z.Components()
}

// Suitability returns task's suitability score for a LanguageObject's
// z(w) vector at the given mastery stage:
// Suitability = sum(affinity[c]*z[c]) / sum(affinity[c]), multiplied by
// UnavailablePenalty when task is not unlocked at stage.
func Suitability(matrix AffinityMatrix, task TaskType, z domain.ZVector, stage domain.Stage) float64 {
	weights, ok := matrix[task]
	if !ok {
		return 0
	}
	zc := components(z)

	var num, den float64
	for c := ZComponent(0); c < zComponentCount; c++ {
		w := weights[c]
		num += w * zc[c]
		den += w
	}
	if den == 0 {
		return 0
	}
	score := num / den
	if !IsAvailableAtStage(task, stage) {
		score *= UnavailablePenalty
	}
	return score
}

// RankTasks scores every task type in matrix against z/stage and returns
// them sorted by descending suitability.
func RankTasks(matrix AffinityMatrix, z domain.ZVector, stage domain.Stage) []TaskType {
	scores := make(map[TaskType]float64, len(matrix))
	tasks := make([]TaskType, 0, len(matrix))
	for t := range matrix {
		scores[t] = Suitability(matrix, t, z, stage)
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return scores[tasks[i]] > scores[tasks[j]] })
	return tasks
}
