// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package transfer

// L1Family groups native languages by the linguistic family driving
// transfer effects into English.
type L1Family string

const (
	FamilyRomance     L1Family = "romance"
	FamilyGermanic    L1Family = "germanic"
	FamilySlavic      L1Family = "slavic"
	FamilySinoTibetan L1Family = "sino-tibetan"
	FamilySemitic     L1Family = "semitic"
	FamilyOther       L1Family = "other"
)

// Component is a transfer-relevant linguistic component. It extends the
// domain cascade components with an orthographic axis, since script/
// spelling transfer is a separate effect from phonology.
type Component string

const (
	ComponentPhonological Component = "phonological"
	ComponentOrthographic Component = "orthographic"
	ComponentMorphological Component = "morphological"
	ComponentLexical       Component = "lexical"
	ComponentSyntactic     Component = "syntactic"
	ComponentPragmatic     Component = "pragmatic"
)

var components = []Component{
	ComponentPhonological, ComponentOrthographic, ComponentMorphological,
	ComponentLexical, ComponentSyntactic, ComponentPragmatic,
}

// Coefficient is a transfer coefficient in [-1,+1]; negative indicates
// interference, positive indicates facilitation.
type Coefficient float64

// Table holds the per-(family, component) static coefficients.
type Table map[L1Family]map[Component]Coefficient

// DefaultTable returns the built-in transfer-coefficient table. Values
// are illustrative point estimates of well-documented L1-transfer
// effects (Romance/Germanic cognate facilitation in lexis, consonant-
// cluster interference for Sino-Tibetan L1 speakers in phonology, and so
// on) rather than corpus-fitted numbers.
func DefaultTable() Table {
	return Table{
		FamilyRomance: {
			ComponentPhonological:  -0.2,
			ComponentOrthographic:  0.3,
			ComponentMorphological: 0.1,
			ComponentLexical:       0.6,
			ComponentSyntactic:     0.2,
			ComponentPragmatic:     0.1,
		},
		FamilyGermanic: {
			ComponentPhonological:  0.3,
			ComponentOrthographic:  0.4,
			ComponentMorphological: 0.3,
			ComponentLexical:       0.4,
			ComponentSyntactic:     0.4,
			ComponentPragmatic:     0.2,
		},
		FamilySlavic: {
			ComponentPhonological:  -0.1,
			ComponentOrthographic:  -0.2,
			ComponentMorphological: -0.3,
			ComponentLexical:       0.0,
			ComponentSyntactic:     -0.2,
			ComponentPragmatic:     0.0,
		},
		FamilySinoTibetan: {
			ComponentPhonological:  -0.5,
			ComponentOrthographic:  -0.6,
			ComponentMorphological: -0.4,
			ComponentLexical:       -0.2,
			ComponentSyntactic:     -0.5,
			ComponentPragmatic:     -0.2,
		},
		FamilySemitic: {
			ComponentPhonological:  -0.3,
			ComponentOrthographic:  -0.5,
			ComponentMorphological: -0.3,
			ComponentLexical:       -0.1,
			ComponentSyntactic:     -0.3,
			ComponentPragmatic:     0.0,
		},
		FamilyOther: {
			ComponentPhonological:  0.0,
			ComponentOrthographic:  0.0,
			ComponentMorphological: 0.0,
			ComponentLexical:       0.0,
			ComponentSyntactic:     0.0,
			ComponentPragmatic:     0.0,
		},
	}
}

// Coefficient returns the table entry for (family, component), 0 if the
// family is unknown.
func (t Table) Coefficient(family L1Family, component Component) Coefficient {
	byComponent, ok := t[family]
	if !ok {
		return 0
	}
	return byComponent[component]
}

// DomainBonus is added to the base coefficient when the component is
// lexical and the object's domain matches a domain where cross-linguistic
// terminology overlap is especially strong (e.g. Romance L1 speakers on
// medical/legal vocabulary, both heavily Latinate).
func DomainBonus(family L1Family, component Component, domain string) Coefficient {
	if component != ComponentLexical {
		return 0
	}
	switch family {
	case FamilyRomance:
		if domain == "medical" || domain == "legal" || domain == "academic" {
			return 0.2
		}
	}
	return 0
}

// PriorityCostAdjustment converts a transfer coefficient into a priority
// cost delta, scaling linearly so a +1 coefficient lowers cost by 0.5
// logit. Negative (interfering) coefficients leave cost unchanged —
// interference is expressed as a difficulty adjustment instead, via
// PhonDifficultyAdjustment.
func PriorityCostAdjustment(coef Coefficient) float64 {
	c := float64(coef)
	if c <= 0 {
		return 0
	}
	return -0.5 * c
}

// PhonDifficultyAdjustment adds up to +0.5 to phonological difficulty
// when transfer is negative (interference), 0 otherwise.
func PhonDifficultyAdjustment(coef Coefficient) float64 {
	c := float64(coef)
	if c >= 0 {
		return 0
	}
	return -0.5 * c
}
