// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

import (
	"strings"

	"github.com/kerem-isiktasli/logos/internal/cache"
)

// AffixKind distinguishes a prefix from a suffix for boundary checking.
type AffixKind string

const (
	AffixPrefix AffixKind = "prefix"
	AffixSuffix AffixKind = "suffix"
)

// affixData is the Data payload attached to each Aho-Corasick pattern.
type affixData struct {
	kind  AffixKind
	bound bool // bound morphemes (e.g. -tion) cannot stand alone; a few, like -less, can
}

// defaultAffixes is a small, illustrative set of productive English
// bound morphemes. Production-scale coverage would load this table from
// a linguistic resource file; the analyzer's segmentation logic does not
// depend on the table's size.
var defaultAffixes = map[string]affixData{
	"un":    {kind: AffixPrefix, bound: true},
	"re":    {kind: AffixPrefix, bound: true},
	"dis":   {kind: AffixPrefix, bound: true},
	"pre":   {kind: AffixPrefix, bound: true},
	"mis":   {kind: AffixPrefix, bound: true},
	"over":  {kind: AffixPrefix, bound: true},
	"under": {kind: AffixPrefix, bound: true},
	"non":   {kind: AffixPrefix, bound: true},
	"ing":   {kind: AffixSuffix, bound: true},
	"ed":    {kind: AffixSuffix, bound: true},
	"s":     {kind: AffixSuffix, bound: true},
	"es":    {kind: AffixSuffix, bound: true},
	"tion":  {kind: AffixSuffix, bound: true},
	"sion":  {kind: AffixSuffix, bound: true},
	"ness":  {kind: AffixSuffix, bound: true},
	"ment":  {kind: AffixSuffix, bound: true},
	"ful":   {kind: AffixSuffix, bound: false},
	"less":  {kind: AffixSuffix, bound: false},
	"ly":    {kind: AffixSuffix, bound: true},
	"able":  {kind: AffixSuffix, bound: true},
	"ible":  {kind: AffixSuffix, bound: true},
	"er":    {kind: AffixSuffix, bound: true},
	"est":   {kind: AffixSuffix, bound: true},
	"ity":   {kind: AffixSuffix, bound: true},
	"al":    {kind: AffixSuffix, bound: true},
	"ive":   {kind: AffixSuffix, bound: true},
}

// morphemeCeiling is the morpheme count past which ComplexityScore
// saturates to 1.0.
const morphemeCeiling = 4.0

// Morpheme is one segment identified at a word boundary.
type Morpheme struct {
	Text string
	Kind AffixKind
}

// MorphologicalAnalysis is the result of segmenting one token.
type MorphologicalAnalysis struct {
	Token              string
	Morphemes          []Morpheme
	BoundMorphemeCount int
	ComplexityScore    float64 // normalized [0,1], saturates at morphemeCeiling
}

// MorphAnalyzer segments tokens into prefix/suffix morphemes using a
// multi-pattern Aho-Corasick search, restricted to matches that land on
// the token's boundary (true affixation, not an incidental substring
// match in the middle of the root).
type MorphAnalyzer struct {
	matcher *cache.AhoCorasick
}

// NewMorphAnalyzer builds an analyzer over defaultAffixes.
func NewMorphAnalyzer() *MorphAnalyzer {
	ac := cache.NewAhoCorasick()
	for affix, data := range defaultAffixes {
		ac.AddPattern(affix, data)
	}
	ac.Build()
	return &MorphAnalyzer{matcher: ac}
}

// Analyze segments token into its constituent morphemes. Overlapping
// boundary matches are resolved by preferring the longest affix at each
// boundary.
func (m *MorphAnalyzer) Analyze(token string) MorphologicalAnalysis {
	lower := strings.ToLower(token)
	matches := m.matcher.Search(lower)

	var bestPrefix, bestSuffix *cache.Match
	for i := range matches {
		match := &matches[i]
		data, ok := match.Data.(affixData)
		if !ok {
			continue
		}
		switch {
		case data.kind == AffixPrefix && match.Position == 0:
			if bestPrefix == nil || len(match.Pattern) > len(bestPrefix.Pattern) {
				bestPrefix = match
			}
		case data.kind == AffixSuffix && match.Position+len(match.Pattern) == len(lower):
			if bestSuffix == nil || len(match.Pattern) > len(bestSuffix.Pattern) {
				bestSuffix = match
			}
		}
	}

	var morphemes []Morpheme
	bound := 0
	if bestPrefix != nil {
		data := bestPrefix.Data.(affixData)
		morphemes = append(morphemes, Morpheme{Text: bestPrefix.Pattern, Kind: AffixPrefix})
		if data.bound {
			bound++
		}
	}
	if bestSuffix != nil && (bestPrefix == nil || bestSuffix.Position >= len(bestPrefix.Pattern)) {
		data := bestSuffix.Data.(affixData)
		morphemes = append(morphemes, Morpheme{Text: bestSuffix.Pattern, Kind: AffixSuffix})
		if data.bound {
			bound++
		}
	}

	complexity := float64(bound) / morphemeCeiling
	if complexity > 1 {
		complexity = 1
	}

	return MorphologicalAnalysis{
		Token:              token,
		Morphemes:          morphemes,
		BoundMorphemeCount: bound,
		ComplexityScore:    complexity,
	}
}
