// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package zvector

import "github.com/kerem-isiktasli/logos/internal/domain"

// PresentationModality is the task-matcher's delivery channel, distinct
// from domain.Modality (the goal-level reading/listening/speaking/
// writing skill axis): a single reading-skill task can still be
// presented visually or with mixed audio/text support.
type PresentationModality string

const (
	PresentationAuditory PresentationModality = "auditory"
	PresentationVisual   PresentationModality = "visual"
	PresentationMixed    PresentationModality = "mixed"
)

// SelectModality chooses a presentation modality from the dominant
// z-vector component: the phonetic component implies auditory,
// pragmatics implies mixed, everything else implies visual.
func SelectModality(z domain.ZVector) PresentationModality {
	switch ZComponent(z.Dominant()) {
	case ZPhonetic:
		return PresentationAuditory
	case ZPragmatic:
		return PresentationMixed
	default:
		return PresentationVisual
	}
}
