// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stage

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// Arm is one named branch of an A/B test with its allocation proportion.
type Arm struct {
	Name     string
	Fraction float64
}

// AssignArm deterministically maps (userID, testID) to one of arms,
// weighted by each arm's Fraction. The mapping is stable: the same pair
// always yields the same arm name regardless of call order, and no
// randomness or state is involved. Fractions need not be pre-sorted but
// must sum to 1 within 1e-3; callers should validate that at config load
// time, not per-call.
func AssignArm(userID, testID string, arms []Arm) (string, error) {
	if len(arms) == 0 {
		return "", fmt.Errorf("stage: AssignArm requires at least one arm")
	}
	u := cohortUniform(userID, testID)

	ordered := make([]Arm, len(arms))
	copy(ordered, arms)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	var cursor float64
	for _, a := range ordered {
		cursor += a.Fraction
		if u < cursor {
			return a.Name, nil
		}
	}
	return ordered[len(ordered)-1].Name, nil
}

// cohortUniform hashes (userID, testID) into a canonical string with
// FNV-1a 64-bit, then folds the digest into a uniform float in [0,1).
// Same inputs always produce the same output.
func cohortUniform(userID, testID string) float64 {
	canonical := fmt.Sprintf("stage-cohort|user=%s|test=%s", userID, testID)
	h := fnv.New64a()
	h.Write([]byte(canonical))
	return float64(h.Sum64()) / float64(^uint64(0))
}
