// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stage

import (
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/threshold"
)

// Metrics is the input to a transition check: the mastery evidence for
// one LanguageObject at one point in time.
type Metrics struct {
	CueFreeAccuracy     float64
	CueAssistedAccuracy float64
	Stability           float64
	ExposureCount       int
}

// Evaluate checks whether current advances to the next stage under cfg,
// returning the new stage and whether it changed. A state never skips
// more than one stage per call; callers re-evaluate after each update.
func Evaluate(cfg threshold.Config, current domain.Stage, m Metrics) (domain.Stage, bool) {
	switch current {
	case domain.StageUnknown:
		if m.CueAssistedAccuracy >= cfg.T1Assisted && m.ExposureCount >= 1 {
			return domain.StageRecognition, true
		}
	case domain.StageRecognition:
		if (m.CueFreeAccuracy >= cfg.T2Free || m.CueAssistedAccuracy >= cfg.T2Assisted) && m.ExposureCount >= 3 {
			return domain.StageRecall, true
		}
	case domain.StageRecall:
		if m.CueFreeAccuracy >= cfg.T3Free && m.Stability >= cfg.T3Stability {
			return domain.StageProduction, true
		}
	case domain.StageProduction:
		gap := m.CueAssistedAccuracy - m.CueFreeAccuracy
		if m.CueFreeAccuracy >= cfg.T4Free && m.Stability >= cfg.T4Stability && gap <= cfg.T4Gap {
			return domain.StageAutomatic, true
		}
	}
	return current, false
}

// EvaluateRegression checks whether a streak of consecutive Again ratings
// has reached cfg.RegressionStreak, dropping the stage by exactly one
// level (never below StageUnknown). Returns the new stage and whether a
// regression occurred.
func EvaluateRegression(cfg threshold.Config, current domain.Stage, againStreak int) (domain.Stage, bool) {
	if againStreak < cfg.RegressionStreak || current == domain.StageUnknown {
		return current, false
	}
	return current - 1, true
}
