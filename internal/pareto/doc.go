// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package pareto allocates a session's time budget across a learner's
// active goals: it samples candidate allocation vectors, scores each on
// expected progress, efficiency, and deadline risk, builds the
// non-dominated frontier, and selects one solution per a chosen
// selection preference.
package pareto
