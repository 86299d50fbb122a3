// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "time"

// Component is a linguistic component tracked independently in a user's
// θ-profile and by the bottleneck detector.
type Component string

const (
	ComponentPhonology  Component = "PHON"
	ComponentMorphology Component = "MORPH"
	ComponentLexis      Component = "LEX"
	ComponentSyntax     Component = "SYNT"
	ComponentPragmatics Component = "PRAG"
)

// Components lists the cascade order PHON -> MORPH -> LEX -> SYNT -> PRAG.
var Components = []Component{ComponentPhonology, ComponentMorphology, ComponentLexis, ComponentSyntax, ComponentPragmatics}

// ThetaMin and ThetaMax bound the logit-scale ability dimensions. The
// commonly cited calibration range is [-3,+3]; this uses the wider
// [-4,+4] range to leave headroom for items at the tails pending
// empirical validation.
const (
	ThetaMin = -4.0
	ThetaMax = 4.0
)

// ClampTheta clamps a theta value to [ThetaMin, ThetaMax].
func ClampTheta(theta float64) float64 {
	switch {
	case theta < ThetaMin:
		return ThetaMin
	case theta > ThetaMax:
		return ThetaMax
	default:
		return theta
	}
}

// Ability is one dimension of a user's ability estimate: a logit-scale
// theta plus its standard error.
type Ability struct {
	Theta float64 `json:"theta"`
	SE    float64 `json:"se"`
}

// ThetaProfile holds a user's global ability plus one ability per
// linguistic component.
type ThetaProfile struct {
	Global     Ability              `json:"global"`
	ByComponent map[Component]Ability `json:"by_component"`
}

// NewThetaProfile returns a profile initialized at theta=0, se=1 for the
// global dimension and every component.
func NewThetaProfile() ThetaProfile {
	p := ThetaProfile{
		Global:      Ability{Theta: 0, SE: 1},
		ByComponent: make(map[Component]Ability, len(Components)),
	}
	for _, c := range Components {
		p.ByComponent[c] = Ability{Theta: 0, SE: 1}
	}
	return p
}

// User is the learner identity record.
type User struct {
	ID        string       `json:"id"`
	L1        string       `json:"l1"`
	L2        string       `json:"l2"`
	Theta     ThetaProfile `json:"theta"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ThetaLayer distinguishes the layer of a G2P-specific ability dimension.
type ThetaLayer string

const (
	ThetaLayerAlphabetic ThetaLayer = "alphabetic"
	ThetaLayerSyllable   ThetaLayer = "syllable"
	ThetaLayerWord       ThetaLayer = "word"
)

// Modality is a channel of language production or perception.
type Modality string

const (
	ModalityReading   Modality = "reading"
	ModalityListening Modality = "listening"
	ModalitySpeaking  Modality = "speaking"
	ModalityWriting   Modality = "writing"
)

// G2PThetaProfile is the multidimensional extension of a user's θ for
// grapheme-to-phoneme ability, with layer- and modality-specific
// dimensions, each carrying its own SE and response count.
type G2PThetaProfile struct {
	UserID string `json:"user_id"`

	ByLayer    map[ThetaLayer]AbilityCount `json:"by_layer"`
	ByModality map[Modality]AbilityCount   `json:"by_modality"`
}

// AbilityCount is an Ability plus the number of responses it was estimated
// from.
type AbilityCount struct {
	Ability       Ability `json:"ability"`
	ResponseCount int     `json:"response_count"`
}

// NewG2PThetaProfile returns a zero-valued profile for a user.
func NewG2PThetaProfile(userID string) G2PThetaProfile {
	p := G2PThetaProfile{
		UserID:     userID,
		ByLayer:    make(map[ThetaLayer]AbilityCount, 3),
		ByModality: make(map[Modality]AbilityCount, 4),
	}
	for _, l := range []ThetaLayer{ThetaLayerAlphabetic, ThetaLayerSyllable, ThetaLayerWord} {
		p.ByLayer[l] = AbilityCount{Ability: Ability{Theta: 0, SE: 1}}
	}
	for _, m := range []Modality{ModalityReading, ModalityListening, ModalitySpeaking, ModalityWriting} {
		p.ByModality[m] = AbilityCount{Ability: Ability{Theta: 0, SE: 1}}
	}
	return p
}
