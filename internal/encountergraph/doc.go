// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package encountergraph maintains the per-(user, object) relationship
// aggregates derived from individual encounters: counts and success rates
// by interaction category and modality, modality/category balance,
// retrieval fluency, knowledge strength, and estimated learning cost.
//
// Aggregation is incremental: Update folds one domain.ObjectEncounter into
// an existing domain.RelationshipStats without re-scanning history, using
// Welford-style running-mean updates for every rate it tracks.
package encountergraph
