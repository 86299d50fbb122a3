// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package numeric

import "math"

// NewtonResult carries the outcome of a scalar Newton-Raphson iteration,
// including whether it converged or hit a singular derivative. A singular
// derivative leaves X at the last valid iterate rather than diverging, so
// callers (MLE ability estimation in particular) can report SE=+Inf at
// that last-known theta instead of propagating a NaN.
type NewtonResult struct {
	X          float64
	Iterations int
	Converged  bool
	Singular   bool
}

// NewtonRaphson finds a root of f with derivative fprime, starting at x0,
// iterating until |delta| < tol or maxIter is reached. If fprime(x)
// underflows to (near) zero at any step, Singular is set and the last
// valid x is returned rather than diverging.
func NewtonRaphson(x0 float64, maxIter int, tol float64, f, fprime func(x float64) float64) NewtonResult {
	x := x0
	for i := 0; i < maxIter; i++ {
		d := fprime(x)
		if math.Abs(d) < 1e-12 {
			return NewtonResult{X: x, Iterations: i, Converged: false, Singular: true}
		}
		delta := f(x) / d
		x -= delta
		if math.Abs(delta) < tol {
			return NewtonResult{X: x, Iterations: i + 1, Converged: true}
		}
	}
	return NewtonResult{X: x, Iterations: maxIter, Converged: false}
}
