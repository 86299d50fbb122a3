// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package timing

import (
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/fsrs"
)

// Classification is the speed bucket a response time falls into.
type Classification string

const (
	TooFast  Classification = "too_fast"
	Fast     Classification = "fast"
	Good     Classification = "good"
	Slow     Classification = "slow"
	VerySlow Classification = "very_slow"
)

// Classify buckets responseTimeMs against category's thresholds, scaled
// by the mastery modifier for stage and the word-length factor for
// wordLength (content length in runes).
func Classify(cfg Config, responseTimeMs int64, category domain.TaskCategory, stage domain.Stage, wordLength int) Classification {
	base, ok := cfg.BaseThresholds[category]
	if !ok {
		base = cfg.BaseThresholds[domain.TaskCategoryRecall]
	}
	scale := cfg.stageModifier(stage) * cfg.wordLengthFactor(wordLength)

	switch {
	case responseTimeMs < scaled(base.TooFastMaxMs, scale):
		return TooFast
	case responseTimeMs < scaled(base.FastMaxMs, scale):
		return Fast
	case responseTimeMs < scaled(base.GoodMaxMs, scale):
		return Good
	case responseTimeMs < scaled(base.SlowMaxMs, scale):
		return Slow
	default:
		return VerySlow
	}
}

func scaled(ms int64, scale float64) int64 {
	return int64(float64(ms) * scale)
}

// RecommendRating maps a classification and correctness to a suggested
// FSRS rating, per the documented policy table. preAutomatic is true
// when the object has not yet reached StageAutomatic: a fast correct
// response is only rewarded with the top rating once fluency is no
// longer in question.
func RecommendRating(class Classification, correct bool, preAutomatic bool) fsrs.Rating {
	if !correct {
		if class == VerySlow {
			return fsrs.Again
		}
		return fsrs.Hard
	}

	switch class {
	case TooFast:
		return fsrs.Hard
	case Fast:
		if preAutomatic {
			return fsrs.Good
		}
		return fsrs.Easy
	case Good:
		return fsrs.Good
	default: // Slow, VerySlow
		return fsrs.Hard
	}
}
