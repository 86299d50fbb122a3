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

// Observation pairs an item's IRT parameters with whether the response to
// it was correct.
type Observation struct {
	Item    domain.IRTParams
	Correct bool
}

// MLEResult is the outcome of a maximum-likelihood ability estimate.
type MLEResult struct {
	Theta     float64
	SE        float64
	Converged bool
	// Diverged is true for an all-correct or all-incorrect response
	// pattern, where the likelihood has no interior maximum and the
	// caller should fall back to EAP.
	Diverged bool
}

// MLE estimates theta via Newton-Raphson on the 2PL log-likelihood,
// gradient sum_i a_i*(u_i - p_i), Hessian -sum_i a_i^2*p_i*q_i.
//
// A singular Hessian (the all-correct or all-incorrect pattern, where p_i
// saturates to 0 or 1 for every item) returns SE=+Inf at the last-valid
// theta and Diverged=true rather than iterating to a bogus extreme.
func MLE(theta0 float64, obs []Observation, cfg EstimatorConfig) MLEResult {
	cfg = cfg.withDefaults()
	theta := theta0

	gradFn := func(t float64) float64 {
		g := 0.0
		for _, o := range obs {
			p := Prob2PL(t, o.Item.A, o.Item.B)
			u := 0.0
			if o.Correct {
				u = 1.0
			}
			g += o.Item.A * (u - p)
		}
		return g
	}
	hessFn := func(t float64) float64 {
		h := 0.0
		for _, o := range obs {
			p := Prob2PL(t, o.Item.A, o.Item.B)
			q := 1 - p
			h -= o.Item.A * o.Item.A * p * q
		}
		return h
	}

	res := numeric.NewtonRaphson(theta, cfg.MaxIterations, cfg.Tolerance, gradFn, hessFn)
	theta = res.X

	if res.Singular {
		return MLEResult{Theta: theta, SE: math.Inf(1), Converged: false, Diverged: true}
	}

	info := 0.0
	for _, o := range obs {
		p := Prob2PL(theta, o.Item.A, o.Item.B)
		q := 1 - p
		info += o.Item.A * o.Item.A * p * q
	}
	se := math.Inf(1)
	if info > 0 {
		se = 1 / math.Sqrt(info)
	}

	return MLEResult{Theta: theta, SE: se, Converged: res.Converged, Diverged: !res.Converged}
}
