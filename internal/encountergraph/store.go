// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import (
	"sync"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

type pairKey struct {
	userID   string
	objectID string
}

// Store holds one domain.RelationshipStats per (user, object) pair behind a
// single mutex, recording each encounter as it arrives.
type Store struct {
	mu    sync.Mutex
	stats map[pairKey]domain.RelationshipStats
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{stats: make(map[pairKey]domain.RelationshipStats)}
}

// Record folds enc into the stored stats for (enc.UserID, enc.ObjectID),
// creating a fresh RelationshipStats on first encounter, and returns the
// updated value.
func (s *Store) Record(enc domain.ObjectEncounter) domain.RelationshipStats {
	key := pairKey{userID: enc.UserID, objectID: enc.ObjectID}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.stats[key]
	if !ok {
		stats = domain.NewRelationshipStats(enc.UserID, enc.ObjectID)
	}
	Update(&stats, enc)
	s.stats[key] = stats
	return stats
}

// Get returns the current stats for a pair, if any have been recorded.
func (s *Store) Get(userID, objectID string) (domain.RelationshipStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, ok := s.stats[pairKey{userID: userID, objectID: objectID}]
	return stats, ok
}

// Len returns the number of distinct (user, object) pairs tracked.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stats)
}
