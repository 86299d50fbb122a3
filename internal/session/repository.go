// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"context"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/threshold"
)

// Repository is the persistence surface a SessionActor needs. It is
// satisfied in production by internal/repository's DuckDB-backed
// implementation and by an in-memory fake in tests.
type Repository interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	ListObjects(ctx context.Context, goalID string) ([]domain.LanguageObject, error)

	GetMastery(ctx context.Context, objectID string) (domain.MasteryState, error)
	UpsertMastery(ctx context.Context, m domain.MasteryState) error

	AppendResponse(ctx context.Context, r domain.Response) error
	AppendStageTransition(ctx context.Context, t domain.StageTransition) error

	UpsertEncounter(ctx context.Context, enc domain.ObjectEncounter) error
	UpsertRelationshipStats(ctx context.Context, stats domain.RelationshipStats) error

	ReadThresholds(ctx context.Context, userID string) (threshold.Config, error)
	WriteThetaSnapshot(ctx context.Context, userID string, profile domain.ThetaProfile, asOf time.Time) error
}
