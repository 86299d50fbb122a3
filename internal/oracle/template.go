// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package oracle

import (
	"fmt"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// Template produces a deterministic, content-free Response keyed on
// (type, format, stage) when the oracle is unavailable. It never
// references object content — it's a structural placeholder that keeps
// scoring moving, not a content substitute.
func Template(req Request, s domain.Stage) Response {
	return Response{
		Prompt:         fmt.Sprintf("[%s/%s @ %s] Respond to item %s", req.Type, req.Format, s, req.ObjectID),
		ExpectedAnswer: "",
		Hints:          templateHints(s),
	}
}

// templateHints scales the number of scaffolding hints offered down as
// stage rises, mirroring the cue-fade the live oracle is expected to apply.
func templateHints(s domain.Stage) []string {
	switch {
	case s <= domain.StageRecognition:
		return []string{"Consider the most common reading of this item.", "Check the surrounding context.", "Compare it to a known near-neighbor."}
	case s <= domain.StageRecall:
		return []string{"Consider the most common reading of this item.", "Check the surrounding context."}
	case s <= domain.StageProduction:
		return []string{"Check the surrounding context."}
	default:
		return nil
	}
}
