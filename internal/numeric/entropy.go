// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package numeric

import "math"

// ShannonEntropy returns H(p) = -sum p_i*log2(p_i) over a discrete
// distribution, skipping zero-probability bins. Used for modality balance
// and grapheme-to-phoneme entropy.
func ShannonEntropy(counts []float64) float64 {
	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := c / total
		h -= p * math.Log2(p)
	}
	return h
}

// NormalizedEntropy divides ShannonEntropy by log2(numNonZeroBins), giving
// a value in [0,1]: 1 when all non-zero bins are equal, 0 when a single
// bin holds all the mass. Used for modality balance scoring.
func NormalizedEntropy(counts []float64) float64 {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	if nonZero <= 1 {
		return 0
	}
	h := ShannonEntropy(counts)
	return h / math.Log2(float64(nonZero))
}
