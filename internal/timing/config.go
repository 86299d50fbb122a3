// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package timing

import "github.com/kerem-isiktasli/logos/internal/domain"

// Thresholds marks the upper bound, in milliseconds, of each speed
// bucket below very_slow: anything at or above SlowMaxMs classifies as
// very_slow.
type Thresholds struct {
	TooFastMaxMs int64
	FastMaxMs    int64
	GoodMaxMs    int64
	SlowMaxMs    int64
}

// Config holds the per-category base thresholds and the modifiers
// applied before classification.
type Config struct {
	// BaseThresholds are keyed by TaskCategory: recognition is fastest,
	// recall next, production slowest, matching the ordering a task
	// demanding free production naturally takes longer than one asking
	// only for recognition.
	BaseThresholds map[domain.TaskCategory]Thresholds

	// StageModifiers multiplies every threshold, indexed by stage: a
	// novice (StageUnknown) gets 2.0x more time before a response counts
	// as slow, an automatic-stage learner gets 0.8x.
	StageModifiers [5]float64

	// WordLengthBaseline is the content length (in runes) at which
	// WordLengthScale has no effect.
	WordLengthBaseline int

	// WordLengthScale is the fractional threshold adjustment per rune
	// above or below WordLengthBaseline.
	WordLengthScale float64

	// WordLengthFactorMin and WordLengthFactorMax bound the resulting
	// word-length multiplier.
	WordLengthFactorMin float64
	WordLengthFactorMax float64
}

// DefaultConfig returns the documented base thresholds (recognition <
// recall < production) and the two documented stage-modifier anchors
// (2.0x at stage 0, 0.8x at stage 4), linearly interpolated across the
// stages in between.
func DefaultConfig() Config {
	return Config{
		BaseThresholds: map[domain.TaskCategory]Thresholds{
			domain.TaskCategoryRecognition: {TooFastMaxMs: 800, FastMaxMs: 1500, GoodMaxMs: 3000, SlowMaxMs: 6000},
			domain.TaskCategoryRecall:      {TooFastMaxMs: 1200, FastMaxMs: 2500, GoodMaxMs: 5000, SlowMaxMs: 10000},
			domain.TaskCategoryProduction:  {TooFastMaxMs: 2000, FastMaxMs: 4000, GoodMaxMs: 8000, SlowMaxMs: 15000},
		},
		StageModifiers:      [5]float64{2.0, 1.7, 1.4, 1.1, 0.8},
		WordLengthBaseline:  5,
		WordLengthScale:     0.05,
		WordLengthFactorMin: 0.7,
		WordLengthFactorMax: 1.5,
	}
}

// stageModifier returns the threshold multiplier for stage, clamping to
// the table's bounds for any out-of-range stage value.
func (c Config) stageModifier(stage domain.Stage) float64 {
	idx := int(stage)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.StageModifiers) {
		idx = len(c.StageModifiers) - 1
	}
	return c.StageModifiers[idx]
}

// wordLengthFactor returns the multiplier contributed by content length.
func (c Config) wordLengthFactor(wordLength int) float64 {
	factor := 1 + c.WordLengthScale*float64(wordLength-c.WordLengthBaseline)
	if factor < c.WordLengthFactorMin {
		return c.WordLengthFactorMin
	}
	if factor > c.WordLengthFactorMax {
		return c.WordLengthFactorMax
	}
	return factor
}
