// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package domain defines the entity shapes shared across the LOGOS
// learning-science core: User, Goal, LanguageObject, Collocation,
// MasteryState, StageTransition, Session, Response, ObjectEncounter,
// RelationshipStats, G2PThetaProfile, CurriculumGoal, ParetoSolution,
// SharedObject, and OfflineQueueItem.
//
// These are persistence-agnostic data shapes; internal/repository maps them
// onto DuckDB tables using the persisted formats documented on each type.
package domain
