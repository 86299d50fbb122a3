// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package api exposes the five canonical session operations over HTTP
// using the Chi router.
//
// # Title LOGOS Session API
// @title LOGOS Session API
// @version 1.0
// @description Canonical start-session / submit-response / end-session /
// @description get-progress / get-bottlenecks operations over the
// @description language-learning core. Not part of the learning-science
// @description core itself — a deployment surface to exercise it.
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
//
// This shell is intentionally thin: every handler validates its request,
// calls straight into internal/session.Manager or a read-only repository
// query, and maps the result (or a *logoserr.Error) to an HTTP status.
// It carries no business logic of its own.
package api
