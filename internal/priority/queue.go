// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package priority

import (
	"time"

	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// QueueCandidate is one object eligible for inclusion in the session
// queue, already scored.
type QueueCandidate struct {
	ObjectID    string
	Score       float64
	NextReview  time.Time
	RankedTasks []zvector.TaskType
}

// drainByPriority pops every candidate from a fresh heap in
// score-descending, next-review-ascending order.
func drainByPriority(items []QueueCandidate) []QueueCandidate {
	h := NewHeap[QueueCandidate]()
	for _, c := range items {
		h.Push(c.ObjectID, c, c.Score, c.NextReview)
	}
	out := make([]QueueCandidate, 0, len(items))
	for {
		_, v, ok := h.Pop()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// BuildQueue assembles the ordered session queue: due items first (by
// priority), topped up with the highest-priority new items, then
// variety-capped and truncated to sessionSize.
func BuildQueue(due, newItems []QueueCandidate, sessionSize, varietyCap int) []zvector.Assignment {
	ordered := drainByPriority(due)
	if len(ordered) < sessionSize {
		ordered = append(ordered, drainByPriority(newItems)...)
	}
	if len(ordered) > sessionSize {
		ordered = ordered[:sessionSize]
	}

	candidates := make([]zvector.Candidate, len(ordered))
	for i, c := range ordered {
		candidates[i] = zvector.Candidate{ObjectID: c.ObjectID, Ranked: c.RankedTasks}
	}
	return zvector.EnforceVarietyCap(candidates, varietyCap)
}
