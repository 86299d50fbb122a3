// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stageaudit

import (
	"context"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// Store persists StageTransition records.
type Store interface {
	// Save appends one transition.
	Save(ctx context.Context, t domain.StageTransition) error

	// Query retrieves transitions matching filter, newest first.
	Query(ctx context.Context, filter QueryFilter) ([]domain.StageTransition, error)

	// Delete removes transitions recorded before olderThan, returning the
	// count removed.
	Delete(ctx context.Context, olderThan time.Time) (int64, error)
}

// QueryFilter narrows a transition query.
type QueryFilter struct {
	ObjectID    string
	OnlyRegress bool
	StartTime   *time.Time
	EndTime     *time.Time
	Limit       int
}

// DefaultQueryFilter returns a sensible default filter.
func DefaultQueryFilter() QueryFilter {
	return QueryFilter{Limit: 100}
}
