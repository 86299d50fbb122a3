// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package oracle

import (
	"context"

	"github.com/kerem-isiktasli/logos/internal/stage"
	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// Request is a task-spec sent to the content oracle.
type Request struct {
	ObjectID         string                       `json:"object_id"`
	Type             zvector.TaskType             `json:"type"`
	Format           string                       `json:"format"`
	Modality         zvector.PresentationModality `json:"modality"`
	CueLevel         stage.CueLevel               `json:"cue_level"`
	TargetDifficulty float64                      `json:"target_difficulty"`
}

// Response is the oracle's answer to a Request. Options and Distractors are
// only populated for formats that use them; Hints holds zero to three
// progressively stronger hints.
type Response struct {
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options,omitempty"`
	Distractors    []string `json:"distractors,omitempty"`
	ExpectedAnswer string   `json:"expected_answer"`
	Hints          []string `json:"hints,omitempty"`
}

// Transport is the pluggable content generator. Implementations may call
// out over NATS, HTTP, or any other channel; Generate must respect ctx
// cancellation.
type Transport interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
