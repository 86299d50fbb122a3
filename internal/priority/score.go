// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package priority

import "github.com/kerem-isiktasli/logos/internal/domain"

// Inputs carries every factor that feeds the FRE score for one
// LanguageObject. Frequency, RelationalDensity, and Engagement are
// expected pre-normalized to [0,1] by the caller (corpus statistics,
// collocation NPMI aggregation, and domain-relevance scoring
// respectively); priority itself is a pure scoring function over them.
type Inputs struct {
	Stage domain.Stage

	Frequency         float64 // F
	RelationalDensity float64 // R
	Engagement        float64 // E

	BaseIRTCost     float64 // derived from item difficulty
	TransferGain    float64 // from internal/transfer
	ExposurePenalty float64
	RecencyBonus    float64

	DaysToDeadline float64 // 0 or negative means no deadline pressure cap
	StageGap       float64 // distance from current stage to goal's target stage

	IsPrimaryBottleneck bool
}

// Cost is 1 + base_irt_cost - transfer_gain + exposure_penalty -
// recency_bonus, floored at cfg.CostFloor.
func Cost(cfg Config, in Inputs) float64 {
	cost := 1 + in.BaseIRTCost - in.TransferGain + in.ExposurePenalty - in.RecencyBonus
	if cost < cfg.CostFloor {
		return cfg.CostFloor
	}
	return cost
}

// Urgency is monotone non-decreasing as the deadline approaches or the
// stage gap widens. A non-positive DaysToDeadline (no deadline, or
// already past it) contributes no deadline pressure.
func Urgency(cfg Config, in Inputs) float64 {
	urgency := 1.0
	if in.DaysToDeadline > 0 {
		urgency += cfg.DeadlineUrgencyScale / in.DaysToDeadline
	}
	if in.StageGap > 0 {
		urgency += cfg.StageGapUrgencyScale * in.StageGap
	}
	return urgency
}

// Score computes the FRE priority score, applying level-dependent
// weights and the bottleneck boost.
func Score(cfg Config, in Inputs) float64 {
	w := cfg.weightsFor(in.Stage)
	numerator := w.F*in.Frequency + w.R*in.RelationalDensity + w.E*in.Engagement
	score := numerator / Cost(cfg, in) * Urgency(cfg, in)

	if in.IsPrimaryBottleneck {
		boost := cfg.BoostFactor
		if boost < 1 {
			boost = 1
		}
		if boost > 2 {
			boost = 2
		}
		score *= boost
	}
	return score
}
