// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package numeric

import "math"

// ProbClampMin and ProbClampMax bound any probability before it is used in
// a log, so MLE and EAP never take log(0).
const (
	ProbClampMin = 1e-10
	ProbClampMax = 1 - 1e-10
)

// Sigmoid is the standard logistic function 1/(1+e^-x).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ClampProb clamps a probability into [ProbClampMin, ProbClampMax], the
// range safe for taking logs of p and 1-p.
func ClampProb(p float64) float64 {
	switch {
	case p < ProbClampMin:
		return ProbClampMin
	case p > ProbClampMax:
		return ProbClampMax
	default:
		return p
	}
}

// SigmoidClamped is Sigmoid followed by ClampProb.
func SigmoidClamped(x float64) float64 {
	return ClampProb(Sigmoid(x))
}
