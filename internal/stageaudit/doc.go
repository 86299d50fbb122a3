// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package stageaudit is an append-only log of domain.StageTransition
// records: every advance, hold, or regression a user's mastery stage goes
// through, persisted for later forensic or analytics replay. Writes are
// buffered and flushed asynchronously so a slow store never blocks the
// scoring step that produced the transition.
package stageaudit
