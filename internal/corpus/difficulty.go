// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package corpus

import "math"

// FrequencyRankMapper converts a corpus frequency table into a rank-based
// difficulty score: rare words (low rank percentile) map to high
// difficulty, frequent words to low difficulty. Frequencies are bucketed
// by log-rank so the Fenwick tree's prefix sums give the fraction of the
// corpus mass at or below a given rank in O(log n).
type FrequencyRankMapper struct {
	buckets int
	tree    *FenwickTree
	total   int64
}

// NewFrequencyRankMapper creates a mapper with the given number of
// log-frequency buckets (typical: 1000).
func NewFrequencyRankMapper(buckets int) *FrequencyRankMapper {
	if buckets <= 0 {
		buckets = 1000
	}
	return &FrequencyRankMapper{buckets: buckets, tree: NewFenwickTree(buckets)}
}

// Observe records one occurrence of a token at the given raw frequency
// count (count of that token across the whole corpus).
func (m *FrequencyRankMapper) Observe(rawFrequency int64) {
	if rawFrequency <= 0 {
		return
	}
	b := m.bucketFor(rawFrequency)
	m.tree.Update(b, 1)
	m.total++
}

func (m *FrequencyRankMapper) bucketFor(rawFrequency int64) int {
	// log-scale bucketing: bucket 0 holds the rarest tokens, bucket
	// (buckets-1) the most frequent.
	logFreq := math.Log2(float64(rawFrequency) + 1)
	maxLog := math.Log2(1e7) // cap assumed corpus frequency scale
	frac := logFreq / maxLog
	b := int(frac * float64(m.buckets))
	if b < 0 {
		b = 0
	}
	if b >= m.buckets {
		b = m.buckets - 1
	}
	return b
}

// Percentile returns, for a raw frequency, the fraction of observed
// tokens at or below that frequency's bucket — i.e. how common the word
// is relative to everything seen so far, in [0,1].
func (m *FrequencyRankMapper) Percentile(rawFrequency int64) float64 {
	if m.total == 0 {
		return 0
	}
	b := m.bucketFor(rawFrequency)
	return float64(m.tree.PrefixSum(b)) / float64(m.total)
}

// Difficulty maps a raw frequency to a [0,1] difficulty score: 1 minus
// the frequency percentile, so the rarest tokens score near 1 and the
// most common near 0. This feeds the priority engine's frequency-derived
// F component after inversion (F = frequency, not difficulty).
func (m *FrequencyRankMapper) Difficulty(rawFrequency int64) float64 {
	return 1 - m.Percentile(rawFrequency)
}

// Frequency returns the log-normalized frequency score in [0,1] used
// directly as the priority engine's F component: the frequency
// percentile itself, common words scoring near 1.
func (m *FrequencyRankMapper) Frequency(rawFrequency int64) float64 {
	return m.Percentile(rawFrequency)
}
