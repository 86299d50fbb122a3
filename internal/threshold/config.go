// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package threshold

import "fmt"

// Config holds the stage-transition thresholds. Field names follow the
// transition table directly: T1Assisted gates 0->1, T2Free/T2Assisted
// gate 1->2, T3Free/T3Stability gate 2->3, T4Free/T4Stability/T4Gap gate
// 3->4.
type Config struct {
	Name string

	T1Assisted float64

	T2Free     float64
	T2Assisted float64

	T3Free      float64
	T3Stability float64

	T4Free      float64
	T4Stability float64
	T4Gap       float64

	// RegressionStreak is the consecutive-Again count that triggers
	// catastrophic regression.
	RegressionStreak int
}

// Default is the balanced threshold preset.
func Default() Config {
	return Config{
		Name:             "default",
		T1Assisted:       0.6,
		T2Free:           0.5,
		T2Assisted:       0.75,
		T3Free:           0.7,
		T3Stability:      7,
		T4Free:           0.85,
		T4Stability:      21,
		T4Gap:            0.15,
		RegressionStreak: 3,
	}
}

// Conservative requires higher mastery evidence before advancing,
// reducing false-positive stage promotion at the cost of slower progress.
func Conservative() Config {
	c := Default()
	c.Name = "conservative"
	c.T1Assisted = 0.7
	c.T2Free = 0.6
	c.T2Assisted = 0.85
	c.T3Free = 0.8
	c.T3Stability = 10
	c.T4Free = 0.9
	c.T4Stability = 28
	c.T4Gap = 0.1
	return c
}

// Aggressive advances learners sooner, trading mastery confidence for
// faster perceived progress.
func Aggressive() Config {
	c := Default()
	c.Name = "aggressive"
	c.T1Assisted = 0.5
	c.T2Free = 0.4
	c.T2Assisted = 0.65
	c.T3Free = 0.6
	c.T3Stability = 5
	c.T4Free = 0.75
	c.T4Stability = 14
	c.T4Gap = 0.2
	return c
}

// Research relaxes regression sensitivity and widens gap tolerance,
// intended for A/B test arms studying alternate progression curves.
func Research() Config {
	c := Default()
	c.Name = "research"
	c.T4Gap = 0.25
	c.RegressionStreak = 5
	return c
}

// Validate enforces the threshold hierarchy invariant: T4Free >= T3Free
// >= T2Free, all stabilities positive, and every accuracy/gap in [0,1].
// Configs failing validation must be rejected at registration rather than
// silently clamped.
func (c Config) Validate() error {
	if !(c.T4Free >= c.T3Free && c.T3Free >= c.T2Free) {
		return fmt.Errorf("threshold %q: hierarchy violated (T4Free=%.3f T3Free=%.3f T2Free=%.3f)", c.Name, c.T4Free, c.T3Free, c.T2Free)
	}
	if c.T3Stability <= 0 || c.T4Stability <= 0 {
		return fmt.Errorf("threshold %q: stabilities must be positive", c.Name)
	}
	for name, v := range map[string]float64{
		"T1Assisted": c.T1Assisted, "T2Free": c.T2Free, "T2Assisted": c.T2Assisted,
		"T3Free": c.T3Free, "T4Free": c.T4Free, "T4Gap": c.T4Gap,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %q: %s=%.3f out of [0,1]", c.Name, name, v)
		}
	}
	if c.RegressionStreak <= 0 {
		return fmt.Errorf("threshold %q: RegressionStreak must be positive", c.Name)
	}
	return nil
}
