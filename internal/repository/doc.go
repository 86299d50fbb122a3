// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package repository is the DuckDB-backed implementation of
// internal/session's Repository interface: users, goals, language
// objects, mastery states, append-only responses and stage transitions,
// object encounters and relationship stats, per-user thresholds, and
// θ-profile snapshots.
//
// Schema strategy is a pre-release consolidation: every column lives in the initial CREATE TABLE statement rather than an
// accreted migration chain, since this is a new project with no
// production databases to preserve. The migration table and runner are
// still wired up so post-release schema changes have somewhere to go.
package repository
