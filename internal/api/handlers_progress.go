// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logoserr"
	"github.com/kerem-isiktasli/logos/internal/session"
)

// GetProgress handles GET /users/{userID}/goals/{goalID}/progress.
//
// @Summary get-progress
// @Tags Progress
// @Produce json
// @Param userID path string true "user id"
// @Param goalID path string true "goal id"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /users/{userID}/goals/{goalID}/progress [get]
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	goalID := chi.URLParam(r, "goalID")
	if userID == "" || goalID == "" {
		badRequest(w, "userID and goalID are required")
		return
	}
	ctx := r.Context()

	user, err := h.repo.GetUser(ctx, userID)
	if err != nil {
		respondError(w, logoserr.Wrap(logoserr.InvalidInput, "api.GetProgress", "load user", err))
		return
	}
	objects, err := h.repo.ListObjects(ctx, goalID)
	if err != nil {
		respondError(w, logoserr.Wrap(logoserr.InvalidInput, "api.GetProgress", "list objects", err))
		return
	}

	stageCounts := make(map[string]int, int(domain.MaxStage)+1)
	var exposureSum float64
	for _, obj := range objects {
		m, err := h.repo.GetMastery(ctx, obj.ID)
		if err != nil {
			stageCounts[domain.StageUnknown.String()]++
			continue
		}
		stageCounts[m.Stage.String()]++
		exposureSum += float64(m.ExposureCount)
	}

	avgExposure := 0.0
	if len(objects) > 0 {
		avgExposure = exposureSum / float64(len(objects))
	}

	componentThetas := make(map[string]domain.Ability, len(user.Theta.ByComponent))
	for c, a := range user.Theta.ByComponent {
		componentThetas[string(c)] = a
	}

	respondJSON(w, http.StatusOK, progressResponse{
		UserID:           userID,
		GoalID:           goalID,
		GlobalTheta:      user.Theta.Global,
		ComponentThetas:  componentThetas,
		ObjectCount:      len(objects),
		StageCounts:      stageCounts,
		AverageExposures: avgExposure,
	})
}

// GetBottlenecks handles GET /users/{userID}/goals/{goalID}/bottlenecks.
//
// It reconstructs a bottleneck.Tracker from the goal's recent response
// history rather than reading a live session actor's window, since a
// bottleneck report is keyed on (user, goal) and may be requested between
// or across sessions.
//
// @Summary get-bottlenecks
// @Tags Progress
// @Produce json
// @Param userID path string true "user id"
// @Param goalID path string true "goal id"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Router /users/{userID}/goals/{goalID}/bottlenecks [get]
func (h *Handler) GetBottlenecks(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalID")
	userID := chi.URLParam(r, "userID")
	if userID == "" || goalID == "" {
		badRequest(w, "userID and goalID are required")
		return
	}
	ctx := r.Context()

	objects, err := h.repo.ListObjects(ctx, goalID)
	if err != nil {
		respondError(w, logoserr.Wrap(logoserr.InvalidInput, "api.GetBottlenecks", "list objects", err))
		return
	}
	objectTypes := make(map[string]domain.ObjectType, len(objects))
	for _, obj := range objects {
		objectTypes[obj.ID] = obj.Type
	}

	responses, err := h.repo.ListResponsesByGoal(ctx, goalID, h.historyLimit)
	if err != nil {
		respondError(w, logoserr.Wrap(logoserr.InvalidInput, "api.GetBottlenecks", "list responses", err))
		return
	}

	tracker := session.TrackerFromResponses(h.responseWindow, responses, objectTypes)
	report := bottleneck.Detect(tracker, h.bottleneckCfg)

	byComponent := make(map[string]evidenceView, len(report.ByComponent))
	for c, ev := range report.ByComponent {
		coOccurring := make([]string, len(ev.CoOccurring))
		for i, cc := range ev.CoOccurring {
			coOccurring[i] = string(cc)
		}
		byComponent[string(c)] = evidenceView{
			ErrorRate:        ev.ErrorRate,
			ResponseCount:    ev.ResponseCount,
			ImprovementTrend: ev.ImprovementTrend,
			CoOccurring:      coOccurring,
			IsPrimary:        ev.IsPrimary,
			Confidence:       ev.Confidence,
		}
	}

	respondJSON(w, http.StatusOK, bottleneckResponse{
		UserID:           userID,
		GoalID:           goalID,
		HasPrimary:       report.HasPrimary,
		PrimaryComponent: string(report.PrimaryComponent),
		ByComponent:      byComponent,
		ResponsesSampled: len(responses),
	})
}
