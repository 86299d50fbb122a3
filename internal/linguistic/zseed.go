// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package linguistic

import "github.com/kerem-isiktasli/logos/internal/domain"

// Analyzers bundles the four L0 analyzers plus the semantic network
// SeedZVector draws on. Callers construct one per process and reuse it
// across every LanguageObject, the same way a single MorphAnalyzer
// amortizes its Aho-Corasick build across every token it scores.
type Analyzers struct {
	Morph     *MorphAnalyzer
	G2P       *G2PAnalyzer
	Syntactic *SyntacticAnalyzer
	Pragmatic *PragmaticAnalyzer
	Network   *SemanticNetwork
}

// NewAnalyzers builds the four stateless analyzers and an empty
// semantic network. The network is populated separately as relations
// between LanguageObjects are discovered (collocation, synonymy), since
// it is corpus-wide state rather than a per-token computation.
func NewAnalyzers() *Analyzers {
	return &Analyzers{
		Morph:     NewMorphAnalyzer(),
		G2P:       NewG2PAnalyzer(),
		Syntactic: NewSyntacticAnalyzer(),
		Pragmatic: NewPragmaticAnalyzer(),
		Network:   NewSemanticNetwork(),
	}
}

// SeedZVector folds every L0 signal into a normalized domain.ZVector for
// one LanguageObject. frequency is supplied by the caller (internal/corpus
// owns corpus-frequency statistics, not this package) and maps directly
// onto F; relational density is read from Network, which the caller is
// expected to have already populated with this object's edges.
//
// The mapping follows internal/zvector's ZComponent ordering: F from the
// caller-supplied frequency score, R from the network's relational
// density, D from a morphology/syntax blend, M and P from the G2P
// analysis, PRAG from the pragmatics analysis, and SYNT from the
// syntactic analysis.
func (a *Analyzers) SeedZVector(objectID, token, passage string, frequency float64) domain.ZVector {
	morph := a.Morph.Analyze(token)
	g2p := a.G2P.Analyze(token)
	synt := a.Syntactic.Analyze(passage)
	prag := a.Pragmatic.Analyze(passage)
	relational := a.Network.RelationalDensity(objectID)

	difficulty := 0.5*morph.ComplexityScore + 0.5*synt.ComplexityScore

	// FormalityScore is signed in [-1,1]; PRAG measures register
	// salience rather than direction, so fold it onto [0,1].
	pragSalience := (prag.FormalityScore + 1) / 2

	return domain.ZVector{
		F:    frequency,
		R:    relational,
		D:    difficulty,
		M:    g2p.PhoneticComplexity,
		P:    g2p.PhoneticComplexity,
		PRAG: pragSalience,
		SYNT: synt.ComplexityScore,
	}.Normalize()
}
