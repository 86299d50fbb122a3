// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

import (
	"strings"

	"github.com/kerem-isiktasli/logos/internal/cache"
)

// defaultSubordinators are conjunctions and relative pronouns that
// introduce a subordinate clause, the standard proxy for syntactic
// embedding depth in readability research.
var defaultSubordinators = []string{
	"because", "although", "though", "since", "while", "if", "unless",
	"whereas", "who", "whom", "whose", "which", "that", "when", "where",
	"after", "before", "until", "so that", "even though", "as if",
}

// sentenceLengthCeiling is the sentence length (in words) past which
// AvgSentenceLength's contribution to ComplexityScore saturates.
const sentenceLengthCeiling = 30.0

// subordinatorCeiling is the subordinators-per-sentence ratio past
// which SubordinationIndex's contribution saturates.
const subordinatorCeiling = 2.0

// SyntacticAnalysis is the result of scoring one passage's structural
// complexity.
type SyntacticAnalysis struct {
	SentenceCount      int
	ClauseMarkerCount  int
	AvgSentenceLength  float64 // words per sentence
	SubordinationIndex float64 // clause markers per sentence
	ComplexityScore    float64 // normalized [0,1]
}

// SyntacticAnalyzer scores rule-based structural complexity: sentence
// length and subordinate-clause density. It does not parse a syntax
// tree; it approximates embedding depth from surface markers, which is
// sufficient to rank LanguageObjects relative to each other.
type SyntacticAnalyzer struct {
	subordinators *cache.AhoCorasick
}

// NewSyntacticAnalyzer builds an analyzer over defaultSubordinators.
func NewSyntacticAnalyzer() *SyntacticAnalyzer {
	ac := cache.NewAhoCorasick()
	ac.AddPatterns(defaultSubordinators, nil)
	ac.Build()
	return &SyntacticAnalyzer{subordinators: ac}
}

// Analyze scores text's syntactic complexity.
func (s *SyntacticAnalyzer) Analyze(text string) SyntacticAnalysis {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return SyntacticAnalysis{}
	}

	totalWords := 0
	markerCount := 0
	for _, sentence := range sentences {
		totalWords += len(strings.Fields(sentence))
		markerCount += s.subordinators.MatchCount(strings.ToLower(sentence))
	}

	avgLen := float64(totalWords) / float64(len(sentences))
	subordination := float64(markerCount) / float64(len(sentences))

	lengthScore := avgLen / sentenceLengthCeiling
	if lengthScore > 1 {
		lengthScore = 1
	}
	subordinationScore := subordination / subordinatorCeiling
	if subordinationScore > 1 {
		subordinationScore = 1
	}

	return SyntacticAnalysis{
		SentenceCount:      len(sentences),
		ClauseMarkerCount:  markerCount,
		AvgSentenceLength:  avgLen,
		SubordinationIndex: subordination,
		ComplexityScore:    0.5*lengthScore + 0.5*subordinationScore,
	}
}

// splitSentences breaks text on terminal punctuation, discarding empty
// fragments left by trailing whitespace or consecutive punctuation.
func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
