// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package fsrs implements the 19-parameter free spaced-repetition
// scheduler: card-state transitions, stability/difficulty/retrievability
// updates, and review-interval computation.
package fsrs
