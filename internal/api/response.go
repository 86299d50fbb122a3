// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kerem-isiktasli/logos/internal/logging"
	"github.com/kerem-isiktasli/logos/internal/logoserr"
)

// Envelope is the response shape every handler replies with, success or
// failure.
type Envelope struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata carries response observability fields.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(Envelope{
		Status:   "ok",
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now()},
	})
	if err != nil {
		logging.Error().Err(err).Msg("api: marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Error().Err(err).Msg("api: write response")
	}
}

// respondError maps err to an HTTP status per the propagation policy
// (logoserr.Kind.Surfaces) and the exit-code semantics documented for the
// CLI surface: invalid input -> 400, persistence failure -> 500, oracle
// unavailable -> 502 (the request still completed; this just signals the
// caller that it ran on the template fallback), anything else -> 500.
func respondError(w http.ResponseWriter, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case logoserr.Is(err, logoserr.InvalidInput):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case logoserr.Is(err, logoserr.PersistenceFailure):
		status, code = http.StatusInternalServerError, "PERSISTENCE_FAILURE"
	case logoserr.Is(err, logoserr.OracleUnavailable):
		status, code = http.StatusBadGateway, "ORACLE_UNAVAILABLE"
	}

	logging.Error().Err(err).Str("code", code).Msg("api: request failed")

	body, merr := json.Marshal(Envelope{
		Status:   "error",
		Error:    &APIError{Code: code, Message: err.Error()},
		Metadata: Metadata{Timestamp: time.Now()},
	})
	w.Header().Set("Content-Type", "application/json")
	if merr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func badRequest(w http.ResponseWriter, message string) {
	respondError(w, logoserr.New(logoserr.InvalidInput, "api", message))
}
