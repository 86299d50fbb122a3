// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

import (
	"strings"

	"github.com/kerem-isiktasli/logos/internal/cache"
	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// graphemeData is the Data payload for an irregular grapheme pattern:
// the set of phonemes it can realize to, under the (deliberately
// simplified) assumption that each is equally likely absent corpus
// pronunciation statistics.
type graphemeData struct {
	phonemes []string
}

// defaultIrregularGraphemes is a small table of English grapheme
// clusters with multiple common realizations — the classic source of
// reading-aloud errors for L2 learners (compare "enough", "though",
// "through", "thought", "bough", "cough", all spelled with "ough").
var defaultIrregularGraphemes = map[string][]string{
	"ough": {"ʌf", "oʊ", "uː", "aʊ", "ɔː", "ɒf"},
	"eigh": {"eɪ", "aɪ"},
	"tion": {"ʃən"},
	"ei":   {"iː", "eɪ", "aɪ"},
	"ch":   {"tʃ", "k", "ʃ"},
	"gh":   {"", "f", "g"},
	"ea":   {"iː", "ɛ", "eɪ"},
	"oo":   {"uː", "ʊ", "ʌ"},
	"ie":   {"iː", "aɪ", "ɛ"},
	"ti":   {"ʃ", "ti"},
}

// G2PAnalysis is the result of scanning one token for irregular
// grapheme-to-phoneme correspondences.
type G2PAnalysis struct {
	Token              string
	IrregularPatterns  []string
	Entropy            float64 // average Shannon entropy (bits) across matched graphemes
	PhoneticComplexity float64 // Entropy normalized into [0,1]
}

// g2pEntropyCeiling is the highest per-grapheme entropy in
// defaultIrregularGraphemes (log2(6) for "ough"'s six realizations),
// used to normalize PhoneticComplexity into [0,1].
var g2pEntropyCeiling = numeric.ShannonEntropy(equalCounts(6))

func equalCounts(n int) []float64 {
	counts := make([]float64, n)
	for i := range counts {
		counts[i] = 1
	}
	return counts
}

// G2PAnalyzer scans tokens for irregular grapheme clusters using a
// multi-pattern Aho-Corasick search.
type G2PAnalyzer struct {
	matcher *cache.AhoCorasick
}

// NewG2PAnalyzer builds an analyzer over defaultIrregularGraphemes.
func NewG2PAnalyzer() *G2PAnalyzer {
	ac := cache.NewAhoCorasick()
	for grapheme, phonemes := range defaultIrregularGraphemes {
		ac.AddPattern(grapheme, graphemeData{phonemes: phonemes})
	}
	ac.Build()
	return &G2PAnalyzer{matcher: ac}
}

// Analyze scans token for irregular grapheme clusters and averages their
// per-grapheme Shannon entropy (treating each possible realization as
// equally likely, since no per-grapheme pronunciation frequency table is
// wired up yet — see DESIGN.md).
func (g *G2PAnalyzer) Analyze(token string) G2PAnalysis {
	lower := strings.ToLower(token)
	matches := g.matcher.Search(lower)

	var patterns []string
	var totalEntropy float64
	for _, match := range matches {
		data, ok := match.Data.(graphemeData)
		if !ok || len(data.phonemes) == 0 {
			continue
		}
		patterns = append(patterns, match.Pattern)
		totalEntropy += numeric.ShannonEntropy(equalCounts(len(data.phonemes)))
	}

	if len(patterns) == 0 {
		return G2PAnalysis{Token: token}
	}

	avgEntropy := totalEntropy / float64(len(patterns))
	complexity := avgEntropy / g2pEntropyCeiling
	if complexity > 1 {
		complexity = 1
	}

	return G2PAnalysis{
		Token:              token,
		IrregularPatterns:  patterns,
		Entropy:            avgEntropy,
		PhoneticComplexity: complexity,
	}
}
