// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/thejerf/suture/v4"

	"github.com/kerem-isiktasli/logos/internal/logging"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/stageaudit"
)

// Tree is the subset of internal/supervisor.SupervisorTree a Manager
// needs: registering a session actor in the data layer, and retiring it
// once the session ends.
type Tree interface {
	AddDataService(svc suture.Service) suture.ServiceToken
	RemoveDataService(token suture.ServiceToken) error
}

// handle is everything the Manager keeps per live session.
type handle struct {
	actor *SessionActor
	token suture.ServiceToken
}

// Manager spawns one SessionActor per active session, registers it with
// the supervision tree so a panicking actor restarts instead of taking
// the process down, and retires the actor's registration once its
// session ends.
type Manager struct {
	cfg       Config
	repo      Repository
	oracle    *oracle.Client
	auditLog  *stageaudit.Logger
	tree      Tree

	mu       sync.Mutex
	sessions map[string]*handle
}

// NewManager builds a Manager. tree may be nil in tests that don't care
// about supervision (actors then run only for the lifetime of the
// context passed to Start).
func NewManager(cfg Config, repo Repository, oc *oracle.Client, auditLog *stageaudit.Logger, tree Tree) *Manager {
	return &Manager{
		cfg:      cfg,
		repo:     repo,
		oracle:   oc,
		auditLog: auditLog,
		tree:     tree,
		sessions: make(map[string]*handle),
	}
}

// Start spawns a new SessionActor for req, registers it with the
// supervision tree, and returns its initial queue.
func (m *Manager) Start(ctx context.Context, req StartSessionRequest) (StartSessionResult, error) {
	id := generateID()
	taskCache := NewTaskCache(m.cfg.TaskCacheSize, m.cfg.TaskCacheTTL)
	actor := NewSessionActor(id, m.cfg, m.repo, m.oracle, taskCache, m.auditLog, req)

	h := &handle{actor: actor}
	if m.tree != nil {
		h.token = m.tree.AddDataService(actor)
	} else {
		go func() {
			if err := actor.Serve(ctx); err != nil {
				logging.Error().Err(err).Str("session_id", id).Msg("session actor exited")
			}
		}()
	}

	m.mu.Lock()
	m.sessions[id] = h
	m.mu.Unlock()

	result, err := actor.StartSession(ctx)
	if err != nil {
		m.retire(id)
		return StartSessionResult{}, fmt.Errorf("start session: %w", err)
	}
	result.Session.ID = id
	return result, nil
}

// Submit routes a response to the named session's actor.
func (m *Manager) Submit(ctx context.Context, sessionID string, req SubmitResponseRequest) (SubmitResponseResult, error) {
	h, err := m.lookup(sessionID)
	if err != nil {
		return SubmitResponseResult{}, err
	}
	return h.actor.SubmitResponse(ctx, req)
}

// End closes the named session and retires its actor's registration.
func (m *Manager) End(ctx context.Context, sessionID string) (EndSessionResult, error) {
	h, err := m.lookup(sessionID)
	if err != nil {
		return EndSessionResult{}, err
	}
	result, err := h.actor.EndSession(ctx)
	m.retire(sessionID)
	if err != nil {
		return EndSessionResult{}, fmt.Errorf("end session: %w", err)
	}
	return result, nil
}

func (m *Manager) lookup(sessionID string) (*handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return h, nil
}

func (m *Manager) retire(sessionID string) {
	m.mu.Lock()
	h, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}
	if m.tree != nil {
		if err := m.tree.RemoveDataService(h.token); err != nil {
			logging.Warn().Err(err).Str("session_id", sessionID).Msg("failed to remove session actor from supervisor")
		}
	}
}

// Active reports the number of sessions currently tracked by the
// manager.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
