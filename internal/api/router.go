// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/kerem-isiktasli/logos/docs"
)

// RouterConfig controls CORS and per-IP rate limiting for the router.
// RateLimit is distinct from the oracle client's own token bucket
// (internal/oracle.Config): this one bounds request volume per caller,
// the oracle's bounds request volume to the content provider.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

// DefaultRouterConfig returns permissive CORS (an empty origin list, which
// the cors middleware treats as allowing every origin) and a 100 req/min
// per-IP limit.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORSAllowedOrigins: []string{},
		RateLimitRequests:  100,
		RateLimitWindow:    time.Minute,
	}
}

// NewRouter builds the Chi router exposing the five canonical operations
// plus a health check and the generated swagger UI.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", h.StartSession)
		r.Post("/sessions/{id}/responses", h.SubmitResponse)
		r.Delete("/sessions/{id}", h.EndSession)
		r.Get("/users/{userID}/goals/{goalID}/progress", h.GetProgress)
		r.Get("/users/{userID}/goals/{goalID}/bottlenecks", h.GetBottlenecks)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
	))

	return r
}
