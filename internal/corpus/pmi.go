// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package corpus

import "math"

// PMI returns the pointwise mutual information of a pair given their
// individual and joint occurrence counts out of totalTokens:
// log2(P(x,y) / (P(x)*P(y))). Returns 0 if any count is non-positive.
func PMI(countX, countY, countXY, totalTokens int64) float64 {
	if countX <= 0 || countY <= 0 || countXY <= 0 || totalTokens <= 0 {
		return 0
	}
	pX := float64(countX) / float64(totalTokens)
	pY := float64(countY) / float64(totalTokens)
	pXY := float64(countXY) / float64(totalTokens)
	return math.Log2(pXY / (pX * pY))
}

// NPMI normalizes PMI into [-1,+1] by dividing by -log2(P(x,y)).
func NPMI(countX, countY, countXY, totalTokens int64) float64 {
	if countXY <= 0 || totalTokens <= 0 {
		return 0
	}
	pmi := PMI(countX, countY, countXY, totalTokens)
	pXY := float64(countXY) / float64(totalTokens)
	denom := -math.Log2(pXY)
	if denom == 0 {
		return 0
	}
	npmi := pmi / denom
	return clampNPMI(npmi)
}

func clampNPMI(x float64) float64 {
	switch {
	case x < -1:
		return -1
	case x > 1:
		return 1
	default:
		return x
	}
}

// Significance maps a co-occurrence count and NPMI into a [0,1]
// confidence score, damping low-count pairs (sparse evidence) toward 0
// regardless of how extreme their NPMI looks.
func Significance(npmi float64, coOccurrenceCount int64, minReliableCount int64) float64 {
	if minReliableCount <= 0 {
		minReliableCount = 5
	}
	countWeight := float64(coOccurrenceCount) / float64(coOccurrenceCount+minReliableCount)
	magnitude := (npmi + 1) / 2 // map [-1,1] to [0,1]
	return countWeight * magnitude
}
