// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import "fmt"

// ObjectType classifies a LanguageObject by linguistic level.
type ObjectType string

const (
	ObjectTypeLex    ObjectType = "LEX"
	ObjectTypeMorph  ObjectType = "MORPH"
	ObjectTypeG2P    ObjectType = "G2P"
	ObjectTypeSynt   ObjectType = "SYNT"
	ObjectTypePragma ObjectType = "PRAG"
)

// ZVector is the seven-component feature vector per LanguageObject, each
// component in [0,1], in F,R,D,M,P,PRAG,SYNT persisted order.
type ZVector struct {
	F    float64 `json:"f"`
	R    float64 `json:"r"`
	D    float64 `json:"d"`
	M    float64 `json:"m"`
	P    float64 `json:"p"`
	PRAG float64 `json:"prag"`
	SYNT float64 `json:"synt"`
}

// clamp01 clamps x to [0,1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Normalize clamps every component into [0,1]. Persisted z(w) values must be
// normalized before persistence.
func (z ZVector) Normalize() ZVector {
	return ZVector{
		F:    clamp01(z.F),
		R:    clamp01(z.R),
		D:    clamp01(z.D),
		M:    clamp01(z.M),
		P:    clamp01(z.P),
		PRAG: clamp01(z.PRAG),
		SYNT: clamp01(z.SYNT),
	}
}

// Components returns the seven components in F,R,D,M,P,PRAG,SYNT order,
// matching the persisted wire format.
func (z ZVector) Components() [7]float64 {
	return [7]float64{z.F, z.R, z.D, z.M, z.P, z.PRAG, z.SYNT}
}

// Dominant returns the index (0-based, F,R,D,M,P,PRAG,SYNT order) of the
// largest component, used by the task matcher's modality selection.
func (z ZVector) Dominant() int {
	c := z.Components()
	best := 0
	for i := 1; i < len(c); i++ {
		if c[i] > c[best] {
			best = i
		}
	}
	return best
}

// IRTParams are the item-response parameters for a LanguageObject.
//
// Invariant: a in [0.2,3.0], b in [-4,+4], c in [0,0.35]. 2PL and 3PL
// reduce to 1PL when a=1, c=0.
type IRTParams struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// DefaultIRTParams returns a=1, b=0, c=0 — the 1PL identity parameters.
func DefaultIRTParams() IRTParams { return IRTParams{A: 1, B: 0, C: 0} }

// Validate enforces the IRTParams invariant ranges.
func (p IRTParams) Validate() error {
	if p.A < 0.2 || p.A > 3.0 {
		return fmt.Errorf("irt param a=%f out of [0.2,3.0]", p.A)
	}
	if p.B < -4.0 || p.B > 4.0 {
		return fmt.Errorf("irt param b=%f out of [-4,4]", p.B)
	}
	if p.C < 0 || p.C > 0.35 {
		return fmt.Errorf("irt param c=%f out of [0,0.35]", p.C)
	}
	return nil
}

// LanguageObject is the atom of learning, owned by exactly one goal and
// unique by (goal, content).
type LanguageObject struct {
	ID      string     `json:"id"`
	GoalID  string     `json:"goal_id"`
	Type    ObjectType `json:"type"`
	Content string     `json:"content"`

	Z   ZVector   `json:"z"`
	IRT IRTParams `json:"irt"`

	// Priority is a cached score recomputed by internal/priority.
	Priority float64 `json:"priority"`

	// DomainDistribution maps domain -> weight in [0,1], summing to ~1,
	// serialized as a canonical JSON mapping with sorted keys.
	DomainDistribution map[Domain]float64 `json:"domain_distribution"`
}
