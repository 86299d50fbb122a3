// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package fsrs

// Rating is a review outcome on the four-point FSRS scale.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

// Weights is the 19-parameter weight vector that drives every FSRS update.
type Weights [19]float64

// DefaultWeights are the widely-deployed FSRS reference parameters,
// parameter-compatible with the canonical open-source scheduler.
var DefaultWeights = Weights{
	0.4072, 1.1829, 3.1262, 15.4722, 7.2102, 0.5316, 1.0651, 0.0234,
	1.616, 0.1544, 1.0824, 1.9813, 0.0953, 0.2975, 2.2042, 0.2407,
	2.9466, 0.5034, 0.6567,
}

// ForgettingCurveBase is the base of the exponential forgetting curve
// R(t,S) = ForgettingCurveBase^(t/S).
const ForgettingCurveBase = 0.9

// MinStability is the floor stability never goes below after a lapse.
const MinStability = 0.01

// DifficultyMin and DifficultyMax bound the Card.Difficulty field.
const (
	DifficultyMin = 1.0
	DifficultyMax = 10.0
)
