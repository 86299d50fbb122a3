// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

import (
	"strings"

	"github.com/kerem-isiktasli/logos/internal/cache"
)

// TextType classifies a passage's register, the coarse category the
// pragmatics analyzer contributes beyond a raw formality score.
type TextType string

const (
	TextTypeFormal   TextType = "formal"
	TextTypeNeutral  TextType = "neutral"
	TextTypeInformal TextType = "informal"
)

type registerMarker struct {
	formal bool // true for a formal/discourse marker, false for an informal one
}

// defaultRegisterMarkers is a small illustrative set of discourse
// connectives and hedges (formal register) against contractions and
// colloquialisms (informal register). Production-scale coverage would
// load this from a resource file the way defaultAffixes is noted to.
var defaultRegisterMarkers = map[string]registerMarker{
	"furthermore":   {formal: true},
	"moreover":      {formal: true},
	"nevertheless":  {formal: true},
	"consequently":  {formal: true},
	"notwithstanding": {formal: true},
	"henceforth":    {formal: true},
	"thus":          {formal: true},
	"herein":        {formal: true},
	"gonna":         {formal: false},
	"wanna":         {formal: false},
	"kinda":         {formal: false},
	"yeah":          {formal: false},
	"gotta":         {formal: false},
	"stuff":         {formal: false},
	"like":          {formal: false},
	"ok":            {formal: false},
}

// formalityMarginCeiling is the marker-per-sentence margin
// (formal count minus informal count, divided by sentence count) past
// which FormalityScore saturates at the extremes.
const formalityMarginCeiling = 1.0

// PragmaticAnalysis is the result of scoring one passage's register.
type PragmaticAnalysis struct {
	FormalMarkerCount   int
	InformalMarkerCount int
	FormalityScore      float64 // [-1,1], negative leans informal
	Type                TextType
}

// PragmaticAnalyzer scores rule-based register: the balance of formal
// discourse connectives against informal contractions and fillers.
type PragmaticAnalyzer struct {
	matcher *cache.AhoCorasick
}

// NewPragmaticAnalyzer builds an analyzer over defaultRegisterMarkers.
func NewPragmaticAnalyzer() *PragmaticAnalyzer {
	ac := cache.NewAhoCorasick()
	for marker, data := range defaultRegisterMarkers {
		ac.AddPattern(marker, data)
	}
	ac.Build()
	return &PragmaticAnalyzer{matcher: ac}
}

// Analyze scores text's register.
func (p *PragmaticAnalyzer) Analyze(text string) PragmaticAnalysis {
	lower := strings.ToLower(text)
	matches := p.matcher.Search(lower)

	var formal, informal int
	for _, match := range matches {
		data, ok := match.Data.(registerMarker)
		if !ok {
			continue
		}
		if data.formal {
			formal++
		} else {
			informal++
		}
	}

	sentences := splitSentences(text)
	denom := float64(len(sentences))
	if denom == 0 {
		denom = 1
	}
	margin := float64(formal-informal) / denom

	score := margin / formalityMarginCeiling
	switch {
	case score > 1:
		score = 1
	case score < -1:
		score = -1
	}

	textType := TextTypeNeutral
	switch {
	case score > 0.2:
		textType = TextTypeFormal
	case score < -0.2:
		textType = TextTypeInformal
	}

	return PragmaticAnalysis{
		FormalMarkerCount:   formal,
		InformalMarkerCount: informal,
		FormalityScore:      score,
		Type:                textType,
	}
}
