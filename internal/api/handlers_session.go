// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/session"
)

// StartSession handles POST /sessions.
//
// @Summary start-session
// @Tags Session
// @Accept json
// @Produce json
// @Param request body startSessionRequest true "user, goal, mode, duration"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /sessions [post]
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if err := validateStruct(req); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := h.manager.Start(r.Context(), session.StartSessionRequest{
		UserID:      req.UserID,
		GoalID:      req.GoalID,
		Mode:        req.sessionMode(),
		SessionSize: req.SessionSize,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// SubmitResponse handles POST /sessions/{id}/responses.
//
// @Summary submit-response
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param request body submitResponseRequest true "scored response"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Failure 502 {object} Envelope
// @Router /sessions/{id}/responses [post]
func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		badRequest(w, "session id is required")
		return
	}

	var req submitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if err := validateStruct(req); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := h.manager.Submit(r.Context(), sessionID, session.SubmitResponseRequest{
		ObjectID:        req.ObjectID,
		TaskType:        zvectorTaskType(req.TaskType),
		Modality:        domain.Modality(req.Modality),
		Category:        domain.TaskCategory(req.Category),
		InteractionKind: domain.InteractionCategory(req.InteractionKind),
		Correct:         req.Correct,
		ResponseTimeMs:  req.ResponseTimeMs,
		CueLevel:        req.CueLevel,
		ResponseContent: req.ResponseContent,
		ExpectedContent: req.ExpectedContent,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// EndSession handles DELETE /sessions/{id}.
//
// @Summary end-session
// @Tags Session
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /sessions/{id} [delete]
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if sessionID == "" {
		badRequest(w, "session id is required")
		return
	}

	result, err := h.manager.End(r.Context(), sessionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
