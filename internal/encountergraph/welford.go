// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import "github.com/kerem-isiktasli/logos/internal/domain"

// welfordMean folds one new observation into a running mean given the
// observation count that now includes it (n >= 1).
func welfordMean(oldMean float64, n int, observation float64) float64 {
	if n <= 0 {
		return observation
	}
	return oldMean + (observation-oldMean)/float64(n)
}

func totalCount(stats *domain.RelationshipStats) int {
	total := 0
	for _, c := range stats.CountByModality {
		total += c
	}
	return total
}

// updateDomainExposure folds an indicator for the encountered domain into
// every domain's running exposure fraction, inserting d with an initial
// fraction of 0 if this is its first appearance.
func updateDomainExposure(m map[domain.Domain]float64, d domain.Domain, n int) {
	if _, ok := m[d]; !ok {
		m[d] = 0
	}
	for k, v := range m {
		indicator := 0.0
		if k == d {
			indicator = 1
		}
		m[k] = welfordMean(v, n, indicator)
	}
}
