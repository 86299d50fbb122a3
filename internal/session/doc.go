// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package session orchestrates one active practice session: a
// SessionActor owns the session's queue and the in-flight mastery/theta
// working state, processing start/submit/end commands strictly in
// order over a buffered channel. A SessionManager spawns and retires
// actors, registering each with the supervision tree so a panicking
// actor is restarted without taking down the process.
//
// StartSession builds the queue: every object's priority is computed and
// each queued task is specified (variety-capped, pulled from the content
// oracle or its cache). Each submitted response is then scored, updating
// FSRS, θ, stage, the encounter graph, and that object's priority before
// the next command is accepted; the next item comes from the queue built
// at start, which is not rebuilt per response.
package session
