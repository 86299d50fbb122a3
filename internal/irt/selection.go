// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package irt

import (
	"math"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// SECutoverThreshold is the standard-error value above which item
// selection switches from Fisher information to the KL-divergence rule;
// a large SE means theta itself is uncertain, and Fisher information
// (which is sharp only near the point estimate) is a poor guide.
const SECutoverThreshold = 0.75

// SelectByFisherInformation returns the index into items of the candidate
// item maximizing I(theta; a, b) = a^2*p*q. items must be non-empty.
func SelectByFisherInformation(theta float64, items []domain.IRTParams) int {
	best := 0
	bestInfo := math.Inf(-1)
	for i, it := range items {
		info := FisherInformation(theta, it.A, it.B)
		if info > bestInfo {
			bestInfo = info
			best = i
		}
	}
	return best
}

// SelectByKLDivergence returns the index into items of the candidate item
// maximizing the posterior-weighted KL divergence between P(.|thetaHat)
// and P(.|theta), integrated over a Normal(thetaHat, se) posterior via
// Gauss-Hermite quadrature. Used when se is large and the Fisher
// information at the point estimate is not trustworthy.
func SelectByKLDivergence(thetaHat, se float64, items []domain.IRTParams, hermiteNodes int) int {
	if hermiteNodes <= 0 {
		hermiteNodes = 21
	}
	rule := numeric.GaussHermite(hermiteNodes)
	sd := se
	if sd <= 0 {
		sd = 1
	}

	best := 0
	bestKL := math.Inf(-1)
	for i, it := range items {
		kl := 0.0
		for j, x := range rule.Nodes {
			theta := thetaHat + sd*math.Sqrt2*x
			pHat := numeric.ClampProb(Prob2PL(thetaHat, it.A, it.B))
			p := numeric.ClampProb(Prob2PL(theta, it.A, it.B))
			term := pHat*math.Log(pHat/p) + (1-pHat)*math.Log((1-pHat)/(1-p))
			kl += rule.Weights[j] * term
		}
		if kl > bestKL {
			bestKL = kl
			best = i
		}
	}
	return best
}

// SelectNextItem dispatches to Fisher information when se is below
// SECutoverThreshold, and to KL divergence otherwise.
func SelectNextItem(thetaHat, se float64, items []domain.IRTParams, hermiteNodes int) int {
	if se < SECutoverThreshold {
		return SelectByFisherInformation(thetaHat, items)
	}
	return SelectByKLDivergence(thetaHat, se, items, hermiteNodes)
}
