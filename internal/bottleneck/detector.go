// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package bottleneck

import "github.com/kerem-isiktasli/logos/internal/domain"

// Evidence is the per-component payload surfaced by a bottleneck check:
// error rate, top error patterns, which other components co-occur with
// this one's errors above the Jaccard threshold, and the improvement
// trend.
type Evidence struct {
	Component         domain.Component
	ErrorRate         float64
	ErrorPatterns     []PatternCount
	CoOccurring       []domain.Component
	ImprovementTrend  float64
	ResponseCount     int
	IsPrimary         bool
	Confidence        float64
	CausalAttribution bool // true when flagged as primary via cascade causality rather than raw max error rate
}

// Report is the result of a bottleneck check across all components.
type Report struct {
	ByComponent      map[domain.Component]Evidence
	PrimaryComponent domain.Component
	HasPrimary       bool
}

// Detect evaluates the tracker's current windows against cfg and
// produces a full Report, including cascade-based causal reattribution.
func Detect(t *Tracker, cfg Config) Report {
	byComponent := make(map[domain.Component]Evidence, len(CascadeOrder))
	candidates := make(map[domain.Component]bool)

	for _, c := range CascadeOrder {
		count := t.Count(c)
		rate := t.ErrorRate(c)
		coOccurring := coOccurringComponents(t, c, cfg.JaccardThreshold)

		byComponent[c] = Evidence{
			Component:        c,
			ErrorRate:        rate,
			ErrorPatterns:    t.TopErrorPatterns(c, cfg.TopPatterns),
			CoOccurring:      coOccurring,
			ImprovementTrend: t.Trend(c),
			ResponseCount:    count,
		}

		if count >= cfg.MinResponses && rate >= cfg.ErrorRateThreshold {
			candidates[c] = true
		}
	}

	primary, causal, ok := selectPrimary(t, candidates, byComponent, cfg)
	if !ok {
		return Report{ByComponent: byComponent}
	}

	ev := byComponent[primary]
	ev.IsPrimary = true
	ev.CausalAttribution = causal
	ev.Confidence = confidence(ev, cfg)
	byComponent[primary] = ev

	return Report{
		ByComponent:      byComponent,
		PrimaryComponent: primary,
		HasPrimary:       true,
	}
}

// coOccurringComponents lists every other component whose error set has
// Jaccard co-occurrence with c's at or above threshold.
func coOccurringComponents(t *Tracker, c domain.Component, threshold float64) []domain.Component {
	var out []domain.Component
	for _, other := range CascadeOrder {
		if other == c {
			continue
		}
		if t.Jaccard(c, other) >= threshold {
			out = append(out, other)
		}
	}
	return out
}

// selectPrimary picks the primary bottleneck among candidates. If an
// upstream candidate strongly co-occurs with a downstream candidate
// (Jaccard >= cfg.JaccardThreshold), the upstream component is returned
// as the causal bottleneck even if its raw error rate is lower.
// Otherwise the candidate with the maximum error rate is returned.
func selectPrimary(t *Tracker, candidates map[domain.Component]bool, byComponent map[domain.Component]Evidence, cfg Config) (domain.Component, bool, bool) {
	if len(candidates) == 0 {
		return "", false, false
	}

	for _, upstream := range CascadeOrder {
		if !candidates[upstream] {
			continue
		}
		upstreamIdx := cascadeIndex(upstream)
		for _, downstream := range CascadeOrder {
			if cascadeIndex(downstream) <= upstreamIdx || !candidates[downstream] {
				continue
			}
			if t.Jaccard(upstream, downstream) >= cfg.JaccardThreshold {
				return upstream, true, true
			}
		}
	}

	var best domain.Component
	bestRate := -1.0
	for _, c := range CascadeOrder {
		if !candidates[c] {
			continue
		}
		rate := byComponent[c].ErrorRate
		if rate > bestRate {
			best, bestRate = c, rate
		}
	}
	return best, false, true
}

// confidence combines error-rate magnitude, sample-size adequacy, and
// co-occurrence strength into a single [0,1] score.
func confidence(ev Evidence, cfg Config) float64 {
	sampleConfidence := float64(ev.ResponseCount) / float64(2*cfg.MinResponses)
	if sampleConfidence > 1 {
		sampleConfidence = 1
	}

	coOccurrenceStrength := 0.0
	if len(ev.CoOccurring) > 0 {
		coOccurrenceStrength = 1
	}

	score := 0.5*ev.ErrorRate + 0.3*sampleConfidence + 0.2*coOccurrenceStrength
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
