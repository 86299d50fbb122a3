// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package fsrs

import "math"

// Retrievability returns R(t,S) = 0.9^(t/S) for a card at stability S
// reviewed after elapsedDays. A never-reviewed card (stability 0) has
// zero retrievability.
func Retrievability(elapsedDays float64, stability float64) float64 {
	if stability <= 0 {
		return 0
	}
	if elapsedDays <= 0 {
		return 1
	}
	return math.Pow(ForgettingCurveBase, elapsedDays/stability)
}

// IntervalForRetention inverts Retrievability for t: interval =
// S*ln(requestRetention)/ln(0.9), clamped to [1, maxIntervalDays].
func IntervalForRetention(stability, requestRetention float64, maxIntervalDays int) int {
	if stability <= 0 || requestRetention <= 0 || requestRetention >= 1 {
		return 1
	}
	t := stability * math.Log(requestRetention) / math.Log(ForgettingCurveBase)
	days := int(math.Round(t))
	if days < 1 {
		days = 1
	}
	if maxIntervalDays > 0 && days > maxIntervalDays {
		days = maxIntervalDays
	}
	return days
}
