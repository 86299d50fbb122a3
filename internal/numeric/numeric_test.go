// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoidMonotoneAndBounds(t *testing.T) {
	assert.InDelta(t, 0.5, Sigmoid(0), 1e-9)
	assert.Less(t, Sigmoid(-5), Sigmoid(0))
	assert.Less(t, Sigmoid(0), Sigmoid(5))
	assert.True(t, Sigmoid(-1000) >= 0 && Sigmoid(-1000) < 1e-6)
}

func TestClampProb(t *testing.T) {
	assert.Equal(t, ProbClampMin, ClampProb(-1))
	assert.Equal(t, ProbClampMax, ClampProb(2))
	assert.Equal(t, 0.5, ClampProb(0.5))
}

func TestGaussHermiteNodeCountsAndSymmetry(t *testing.T) {
	for _, n := range []int{5, 11, 21, 41} {
		rule := GaussHermite(n)
		require.Len(t, rule.Nodes, n)
		require.Len(t, rule.Weights, n)

		// Weights must sum to sqrt(pi) (the zeroth moment of e^{-x^2}),
		// and the first/second moments must match the known Gaussian
		// integrals, confirming both nodes and weights are correct.
		var sum, firstMoment, secondMoment float64
		for i, w := range rule.Weights {
			require.Greater(t, w, 0.0)
			x := rule.Nodes[i]
			sum += w
			firstMoment += w * x
			secondMoment += w * x * x
		}
		assert.InDelta(t, math.Sqrt(math.Pi), sum, 1e-8, "n=%d", n)
		assert.InDelta(t, 0, firstMoment, 1e-8, "n=%d", n)
		assert.InDelta(t, math.Sqrt(math.Pi)/2, secondMoment, 1e-6, "n=%d", n)
	}
}

func TestEAPIntegrateUniformLikelihoodReturnsPrior(t *testing.T) {
	rule := GaussHermite(21)
	mean, variance, ok := EAPIntegrate(rule, 0.25, 1.5, func(theta float64) float64 { return 1.0 })
	require.True(t, ok)
	assert.InDelta(t, 0.25, mean, 1e-6)
	assert.InDelta(t, 1.5*1.5, variance, 1e-3)
}

func TestEAPIntegrateZeroLikelihoodFallsBackToPrior(t *testing.T) {
	rule := GaussHermite(11)
	mean, _, ok := EAPIntegrate(rule, 0.5, 1.0, func(theta float64) float64 { return 0.0 })
	assert.False(t, ok)
	assert.Equal(t, 0.5, mean)
}

func TestNewtonRaphsonConverges(t *testing.T) {
	// Root of x^2 - 2 = 0 is sqrt(2).
	res := NewtonRaphson(1.0, 50, 1e-9, func(x float64) float64 { return x*x - 2 }, func(x float64) float64 { return 2 * x })
	require.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.X, 1e-6)
}

func TestNewtonRaphsonSingularDerivative(t *testing.T) {
	res := NewtonRaphson(0.0, 10, 1e-9, func(x float64) float64 { return x }, func(x float64) float64 { return 0 })
	assert.True(t, res.Singular)
}

func TestShannonEntropyAndNormalized(t *testing.T) {
	assert.Equal(t, 0.0, ShannonEntropy(nil))
	equal := NormalizedEntropy([]float64{1, 1, 1, 1})
	assert.InDelta(t, 1.0, equal, 1e-9)
	single := NormalizedEntropy([]float64{5, 0, 0})
	assert.Equal(t, 0.0, single)
}
