// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package domain

import (
	"fmt"
	"time"
)

// Domain is a professional use-case area a goal targets.
type Domain string

const (
	DomainMedical  Domain = "medical"
	DomainLegal    Domain = "legal"
	DomainBusiness Domain = "business"
	DomainAcademic Domain = "academic"
	DomainGeneral  Domain = "general"
)

// Goal is a learner's pursuit of proficiency in a domain, scoped to a set
// of modalities.
//
// Invariant: Modalities is non-empty. Deadline, if present, is strictly
// future at creation time. Weight defaults to 1 and lies in [0,1].
type Goal struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Domain     Domain     `json:"domain"`
	Modalities []Modality `json:"modalities"`
	Genre      string     `json:"genre"`
	Purpose    string     `json:"purpose"`
	Benchmark  string     `json:"benchmark,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Weight     float64    `json:"weight"`
	Progress   float64    `json:"progress"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Validate enforces the Goal invariants, returning an error describing the
// first violation found.
func (g Goal) Validate(now time.Time) error {
	if len(g.Modalities) == 0 {
		return fmt.Errorf("goal %s: modalities must be non-empty", g.ID)
	}
	if g.Deadline != nil && !g.Deadline.After(now) {
		return fmt.Errorf("goal %s: deadline must be strictly future at creation", g.ID)
	}
	if g.Weight < 0 || g.Weight > 1 {
		return fmt.Errorf("goal %s: weight %f out of [0,1]", g.ID, g.Weight)
	}
	if g.Progress < 0 || g.Progress > 1 {
		return fmt.Errorf("goal %s: progress %f out of [0,1]", g.ID, g.Progress)
	}
	return nil
}

// DaysToDeadline returns the number of days remaining until the deadline,
// or -1 if there is no deadline.
func (g Goal) DaysToDeadline(now time.Time) float64 {
	if g.Deadline == nil {
		return -1
	}
	return g.Deadline.Sub(now).Hours() / 24
}
