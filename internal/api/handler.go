// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"context"

	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/session"
)

// ProgressRepository is the read surface get-progress and get-bottlenecks
// need. It is satisfied by *internal/repository.DB; a SessionActor never
// needs these reads, so they live outside session.Repository.
type ProgressRepository interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
	ListObjects(ctx context.Context, goalID string) ([]domain.LanguageObject, error)
	GetMastery(ctx context.Context, objectID string) (domain.MasteryState, error)
	ListResponsesByGoal(ctx context.Context, goalID string, limit int) ([]domain.Response, error)
}

// Handler holds the dependencies every route needs: the session
// orchestrator for the three mutating operations, and a read-only
// repository for the two reporting operations.
type Handler struct {
	manager        *session.Manager
	repo           ProgressRepository
	bottleneckCfg  bottleneck.Config
	responseWindow int
	historyLimit   int
}

// NewHandler builds a Handler. bottleneckCfg controls the thresholds
// get-bottlenecks reconstructs its report with; historyLimit bounds how
// many of a goal's most recent responses are read to rebuild the tracker.
func NewHandler(manager *session.Manager, repo ProgressRepository, bottleneckCfg bottleneck.Config, historyLimit int) *Handler {
	if historyLimit <= 0 {
		historyLimit = 500
	}
	return &Handler{
		manager:        manager,
		repo:           repo,
		bottleneckCfg:  bottleneckCfg,
		responseWindow: bottleneckCfg.WindowSize,
		historyLimit:   historyLimit,
	}
}
