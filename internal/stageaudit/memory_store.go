// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stageaudit

import (
	"context"
	"sync"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// MemoryStore implements Store in-memory. Suitable for tests and for
// development environments without a DuckDB handle wired up.
type MemoryStore struct {
	mu          sync.RWMutex
	transitions []domain.StageTransition
	maxLen      int
}

// NewMemoryStore creates a new in-memory stage transition store.
func NewMemoryStore(maxLen int) *MemoryStore {
	if maxLen <= 0 {
		maxLen = 10000
	}
	return &MemoryStore{transitions: make([]domain.StageTransition, 0, maxLen), maxLen: maxLen}
}

func (s *MemoryStore) Save(ctx context.Context, t domain.StageTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.transitions) >= s.maxLen {
		removeCount := s.maxLen / 10
		if removeCount == 0 {
			removeCount = 1
		}
		s.transitions = s.transitions[removeCount:]
	}
	s.transitions = append(s.transitions, t)
	return nil
}

func (s *MemoryStore) Query(ctx context.Context, filter QueryFilter) ([]domain.StageTransition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.StageTransition
	for i := len(s.transitions) - 1; i >= 0; i-- {
		t := s.transitions[i]
		if filter.ObjectID != "" && t.ObjectID != filter.ObjectID {
			continue
		}
		if filter.OnlyRegress && !t.IsRegression() {
			continue
		}
		if filter.StartTime != nil && t.Timestamp.Before(*filter.StartTime) {
			continue
		}
		if filter.EndTime != nil && t.Timestamp.After(*filter.EndTime) {
			continue
		}
		results = append(results, t)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

func (s *MemoryStore) Delete(ctx context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transitions[:0]
	var removed int64
	for _, t := range s.transitions {
		if t.Timestamp.Before(olderThan) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.transitions = kept
	return removed, nil
}

// Len reports the number of transitions currently stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transitions)
}
