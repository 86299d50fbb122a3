// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package irt

import (
	"math"

	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// EAPResult is the outcome of an expected-a-posteriori ability estimate.
type EAPResult struct {
	Theta float64
	SE    float64
	// FellBackToPrior is true when the observed likelihood summed to zero
	// everywhere the quadrature sampled it, in which case Theta/SE are the
	// prior mean/SD unchanged.
	FellBackToPrior bool
}

// EAP estimates theta by integrating the posterior over a
// Normal(cfg.PriorMean, cfg.PriorSD) prior via Gauss-Hermite quadrature,
// the estimator of choice whenever a response pattern is all-correct or
// all-incorrect and MLE has no interior maximum.
func EAP(obs []Observation, cfg EstimatorConfig) EAPResult {
	cfg = cfg.withDefaults()
	rule := numeric.GaussHermite(cfg.HermiteNodes)

	likelihood := func(theta float64) float64 {
		l := 1.0
		for _, o := range obs {
			p := ProbItem(theta, o.Item)
			if !o.Correct {
				p = 1 - p
			}
			l *= p
		}
		return l
	}

	mean, variance, ok := numeric.EAPIntegrate(rule, cfg.PriorMean, cfg.PriorSD, likelihood)
	if !ok {
		return EAPResult{Theta: cfg.PriorMean, SE: cfg.PriorSD, FellBackToPrior: true}
	}
	return EAPResult{Theta: mean, SE: math.Sqrt(variance)}
}
