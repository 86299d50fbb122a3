// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/domain"
)

// ComponentForObjectType exposes the SessionActor's type-to-component
// mapping to read-only callers (e.g. internal/api's get-bottlenecks
// handler) that need to reconstruct a Tracker from persisted responses
// rather than from a live actor's in-memory window.
func ComponentForObjectType(t domain.ObjectType) domain.Component {
	return componentForObjectType(t)
}

// TrackerFromResponses rebuilds a bottleneck.Tracker from a goal's
// persisted response history, oldest first, so get-bottlenecks(user, goal)
// can call bottleneck.Detect outside of any active session. objectTypes
// maps each response's ObjectID to its LanguageObject.Type; responses for
// an object missing from the map are skipped.
func TrackerFromResponses(windowSize int, responses []domain.Response, objectTypes map[string]domain.ObjectType) *bottleneck.Tracker {
	t := bottleneck.NewTracker(windowSize)
	for i := len(responses) - 1; i >= 0; i-- {
		r := responses[i]
		objType, ok := objectTypes[r.ObjectID]
		if !ok {
			continue
		}
		pattern := ""
		if !r.Correct {
			pattern = r.TaskType
		}
		t.Record(bottleneck.Outcome{
			ResponseID:   r.ID,
			Component:    componentForObjectType(objType),
			Correct:      r.Correct,
			ErrorPattern: pattern,
		})
	}
	return t
}
