// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package irt

import (
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// Prob1PL returns the 1PL (Rasch) probability of a correct response:
// sigma(theta - b).
func Prob1PL(theta, b float64) float64 {
	return numeric.SigmoidClamped(theta - b)
}

// Prob2PL returns the 2PL probability: sigma(a*(theta-b)).
func Prob2PL(theta, a, b float64) float64 {
	return numeric.SigmoidClamped(a * (theta - b))
}

// Prob3PL returns the 3PL probability: c + (1-c)*sigma(a*(theta-b)).
//
// 3PL reduces to 2PL when c=0, and to 1PL when additionally a=1 (spec
// §3, §8 invariant).
func Prob3PL(theta, a, b, c float64) float64 {
	p := c + (1-c)*Prob2PL(theta, a, b)
	return numeric.ClampProb(p)
}

// ProbItem is the general-purpose probability call for an item's IRT
// parameters, always evaluated as 3PL (1PL/2PL are the c=0,a=1 and c=0
// special cases).
func ProbItem(theta float64, item domain.IRTParams) float64 {
	return Prob3PL(theta, item.A, item.B, item.C)
}

// FisherInformation is I(theta; a, b) = a^2 * p * q for the 2PL model,
// used by item selection.
func FisherInformation(theta, a, b float64) float64 {
	p := Prob2PL(theta, a, b)
	q := 1 - p
	return a * a * p * q
}
