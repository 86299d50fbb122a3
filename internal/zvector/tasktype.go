// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package zvector

import "github.com/kerem-isiktasli/logos/internal/domain"

// TaskType is one of the 17 task types in the full palette.
type TaskType string

const (
	TaskRecognition         TaskType = "recognition"
	TaskDefinitionMatch     TaskType = "definition_match"
	TaskMultipleChoice      TaskType = "multiple_choice"
	TaskFillInBlank         TaskType = "fill_in_blank"
	TaskCloze               TaskType = "cloze"
	TaskListeningComprehend TaskType = "listening_comprehension"
	TaskCollocationMatch    TaskType = "collocation_match"
	TaskTranslationL1L2     TaskType = "translation_l1_l2"
	TaskTranslationL2L1     TaskType = "translation_l2_l1"
	TaskDictation           TaskType = "dictation"
	TaskSentenceConstruct   TaskType = "sentence_construction"
	TaskParaphrase          TaskType = "paraphrase"
	TaskSentenceCombining   TaskType = "sentence_combining"
	TaskErrorCorrection     TaskType = "error_correction"
	TaskDialogueCompletion  TaskType = "dialogue_completion"
	TaskRegisterShift       TaskType = "register_shift"
	TaskFreeProduction      TaskType = "free_production"
)

// AllTaskTypes is the full 17-type palette, in a fixed order.
var AllTaskTypes = []TaskType{
	TaskRecognition, TaskDefinitionMatch, TaskMultipleChoice, TaskFillInBlank,
	TaskCloze, TaskListeningComprehend, TaskCollocationMatch,
	TaskTranslationL1L2, TaskTranslationL2L1, TaskDictation,
	TaskSentenceConstruct, TaskParaphrase, TaskSentenceCombining,
	TaskErrorCorrection, TaskDialogueCompletion, TaskRegisterShift,
	TaskFreeProduction,
}

// stageAvailability lists which task types are available (at full weight)
// at each mastery stage. Types not listed are still scored — at a 0.1
// penalty, per UnavailablePenalty — rather than excluded outright, so the
// suitability gradient stays informative even for not-yet-unlocked types.
var stageAvailability = map[domain.Stage][]TaskType{
	domain.StageUnknown: {
		TaskRecognition, TaskDefinitionMatch,
	},
	domain.StageRecognition: {
		TaskRecognition, TaskDefinitionMatch, TaskMultipleChoice,
		TaskFillInBlank, TaskCloze, TaskListeningComprehend, TaskCollocationMatch,
	},
	domain.StageRecall: {
		TaskRecognition, TaskDefinitionMatch, TaskMultipleChoice, TaskFillInBlank,
		TaskCloze, TaskListeningComprehend, TaskCollocationMatch,
		TaskTranslationL1L2, TaskTranslationL2L1, TaskDictation,
		TaskSentenceConstruct, TaskParaphrase,
	},
	domain.StageProduction: {
		TaskRecognition, TaskDefinitionMatch, TaskMultipleChoice, TaskFillInBlank,
		TaskCloze, TaskListeningComprehend, TaskCollocationMatch,
		TaskTranslationL1L2, TaskTranslationL2L1, TaskDictation,
		TaskSentenceConstruct, TaskParaphrase, TaskSentenceCombining,
		TaskErrorCorrection, TaskDialogueCompletion,
	},
	domain.StageAutomatic: AllTaskTypes,
}

// UnavailablePenalty multiplies a task's suitability score when it is not
// in the current stage's availability list.
const UnavailablePenalty = 0.1

// IsAvailableAtStage reports whether a task type is in the given stage's
// availability list.
func IsAvailableAtStage(task TaskType, stage domain.Stage) bool {
	for _, t := range stageAvailability[stage] {
		if t == task {
			return true
		}
	}
	return false
}
