// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package stage implements the five-stage mastery transition machine:
// threshold-gated advancement, catastrophic regression, deterministic
// A/B group assignment, and the cue-level recommender.
package stage
