// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stage

// CueLevel ranks how much support a learner is given before a response
// is scored, from 0 (no cue, full production) to 3 (heaviest cueing).
type CueLevel int

const (
	CueNone CueLevel = iota
	CueLight
	CueModerate
	CueHeavy
)

// RecommendCueLevel picks the cue level for the next presentation of an
// object from the gap between cue-assisted and cue-free accuracy and how
// many times the learner has already seen it. A small gap with enough
// exposure means cue-free performance is reliable, so cueing is dropped
// entirely; a wide gap or thin exposure history keeps cueing on.
func RecommendCueLevel(cueAssistedAccuracy, cueFreeAccuracy float64, exposureCount int) CueLevel {
	gap := cueAssistedAccuracy - cueFreeAccuracy
	if gap < 0 {
		gap = 0
	}
	switch {
	case gap < 0.1 && exposureCount > 5:
		return CueNone
	case gap < 0.2 && exposureCount > 3:
		return CueLight
	case gap < 0.3:
		return CueModerate
	default:
		return CueHeavy
	}
}
