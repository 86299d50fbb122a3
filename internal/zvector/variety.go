// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package zvector

// DefaultMaxPerType is the default variety cap: no more than this many
// consecutive tasks of the same type.
const DefaultMaxPerType = 2

// Candidate is one object's ranked task-type choices, most suitable
// first, as produced by RankTasks.
type Candidate struct {
	ObjectID string
	Ranked   []TaskType
}

// Assignment is one scheduled task: an object paired with the task type
// chosen for it after variety-cap enforcement.
type Assignment struct {
	ObjectID string
	Task     TaskType
}

// EnforceVarietyCap walks candidates in order, assigning each object its
// most-suitable task type unless that would extend a same-type run past
// maxPerType, in which case it substitutes the next-best alternative
// whose running count is still under the cap.
func EnforceVarietyCap(candidates []Candidate, maxPerType int) []Assignment {
	if maxPerType <= 0 {
		maxPerType = DefaultMaxPerType
	}

	out := make([]Assignment, 0, len(candidates))
	var lastType TaskType
	runLength := 0

	for _, c := range candidates {
		chosen, ok := pickWithinCap(c.Ranked, lastType, runLength, maxPerType)
		if !ok {
			continue
		}
		if chosen == lastType {
			runLength++
		} else {
			lastType = chosen
			runLength = 1
		}
		out = append(out, Assignment{ObjectID: c.ObjectID, Task: chosen})
	}
	return out
}

// pickWithinCap returns the highest-ranked task type whose selection
// would not extend the current same-type run past maxPerType, falling
// back to the top choice if every alternative is capped.
func pickWithinCap(ranked []TaskType, lastType TaskType, runLength, maxPerType int) (TaskType, bool) {
	for _, t := range ranked {
		if t == lastType && runLength >= maxPerType {
			continue
		}
		return t, true
	}
	if len(ranked) > 0 {
		return ranked[0], true
	}
	return "", false
}
