// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerem-isiktasli/logos/internal/logging"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/stageaudit"
)

// ErrActorStopped is returned to any command submitted after the actor's
// Serve loop has exited.
var ErrActorStopped = errors.New("session actor stopped")

// command is one unit of work submitted to a SessionActor's loop. Exactly
// one of the run functions is non-nil.
type command struct {
	start  func(*state) (StartSessionResult, error)
	submit func(*state) (SubmitResponseResult, error)
	end    func(*state) (EndSessionResult, error)
	reply  chan commandResult
}

type commandResult struct {
	start  StartSessionResult
	submit SubmitResponseResult
	end    EndSessionResult
	err    error
}

// SessionActor owns one active session's working state and processes
// start/submit/end commands strictly in arrival order over a single
// buffered channel, so no two commands for the same session ever race.
// It implements suture.Service so a panicking actor is restarted by the
// supervision tree rather than silently taking the session down.
type SessionActor struct {
	id       string
	cfg      Config
	repo     Repository
	oracle   *oracle.Client
	taskCache *TaskCache
	auditLog *stageaudit.Logger

	commands chan command
	done     chan struct{}

	req StartSessionRequest
	st  *state
}

// NewSessionActor builds an actor ready to be registered with a
// supervision tree. The session itself is not opened until Serve starts
// the loop and StartSession is called.
func NewSessionActor(id string, cfg Config, repo Repository, oc *oracle.Client, tc *TaskCache, auditLog *stageaudit.Logger, req StartSessionRequest) *SessionActor {
	return &SessionActor{
		id:        id,
		cfg:       cfg,
		repo:      repo,
		oracle:    oc,
		taskCache: tc,
		auditLog:  auditLog,
		commands:  make(chan command, cfg.CommandBufferSize),
		done:      make(chan struct{}),
		req:       req,
	}
}

// String identifies this actor in supervisor logs and reports.
func (a *SessionActor) String() string {
	return fmt.Sprintf("session-actor[%s]", a.id)
}

// Serve runs the actor's command loop until ctx is canceled. It opens the
// session on entry so the first queued command can be answered without a
// separate bootstrap round-trip.
func (a *SessionActor) Serve(ctx context.Context) error {
	defer close(a.done)

	st, err := loadState(ctx, a.repo, a.req)
	if err != nil {
		logging.Error().Err(err).Str("actor", a.id).Msg("session actor failed to load state")
		return err
	}
	st.session.ID = a.id
	a.st = st

	for {
		// Priority 1: shutdown always wins over queued work.
		select {
		case <-ctx.Done():
			return a.shutdown(ctx)
		default:
		}

		select {
		case <-ctx.Done():
			return a.shutdown(ctx)

		case cmd := <-a.commands:
			a.handle(ctx, cmd)
		}
	}
}

func (a *SessionActor) shutdown(ctx context.Context) error {
	logging.Info().Str("actor", a.id).Msg("session actor shutting down")
	// Drain any commands already queued so callers waiting on a reply
	// channel don't block forever past shutdown.
	for {
		select {
		case cmd := <-a.commands:
			cmd.reply <- commandResult{err: ErrActorStopped}
		default:
			return ctx.Err()
		}
	}
}

func (a *SessionActor) handle(ctx context.Context, cmd command) {
	var res commandResult
	switch {
	case cmd.start != nil:
		res.start, res.err = cmd.start(a.st)
	case cmd.submit != nil:
		res.submit, res.err = cmd.submit(a.st)
	case cmd.end != nil:
		res.end, res.err = cmd.end(a.st)
	}
	select {
	case cmd.reply <- res:
	case <-ctx.Done():
	}
}

// submitCommand enqueues cmd and blocks for its reply, respecting both the
// caller's ctx and the actor's own shutdown.
func (a *SessionActor) submitCommand(ctx context.Context, cmd command) (commandResult, error) {
	select {
	case a.commands <- cmd:
	case <-a.done:
		return commandResult{}, ErrActorStopped
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res, res.err
	case <-a.done:
		return commandResult{}, ErrActorStopped
	case <-ctx.Done():
		return commandResult{}, ctx.Err()
	}
}

// StartSession builds the initial queue for this actor's session. It is
// idempotent-in-order with SubmitResponse/EndSession: whichever command
// reaches the channel first runs first.
func (a *SessionActor) StartSession(ctx context.Context) (StartSessionResult, error) {
	cmd := command{reply: make(chan commandResult, 1)}
	cmd.start = func(st *state) (StartSessionResult, error) {
		size := a.req.SessionSize
		items, err := buildQueue(ctx, st, a.cfg, a.oracle, a.taskCache, size)
		if err != nil {
			return StartSessionResult{}, err
		}
		st.queue = items
		return StartSessionResult{Session: st.session, Queue: items}, nil
	}
	res, err := a.submitCommand(ctx, cmd)
	return res.start, err
}

// SubmitResponse scores one response, advancing FSRS/θ/stage state and
// returning the next queue item, if any.
func (a *SessionActor) SubmitResponse(ctx context.Context, req SubmitResponseRequest) (SubmitResponseResult, error) {
	cmd := command{reply: make(chan commandResult, 1)}
	cmd.submit = func(st *state) (SubmitResponseResult, error) {
		result, err := scoreResponse(ctx, st, a.cfg, a.repo, a.auditLog, req)
		if err != nil {
			return SubmitResponseResult{}, err
		}
		if len(st.queue) > 0 {
			st.queue = st.queue[1:]
		}
		if len(st.queue) > 0 {
			next := st.queue[0]
			result.NextQueueItem = &next
		}
		return result, nil
	}
	res, err := a.submitCommand(ctx, cmd)
	return res.submit, err
}

// EndSession closes the session, persists a closing θ snapshot, and
// signals the actor to stop accepting further commands.
func (a *SessionActor) EndSession(ctx context.Context) (EndSessionResult, error) {
	cmd := command{reply: make(chan commandResult, 1)}
	cmd.end = func(st *state) (EndSessionResult, error) {
		now := time.Now()
		st.session.EndedAt = &now
		st.session.ThetaSnapshot = &st.user.Theta
		if err := a.repo.WriteThetaSnapshot(ctx, st.user.ID, st.user.Theta, now); err != nil {
			return EndSessionResult{}, fmt.Errorf("write theta snapshot: %w", err)
		}
		return EndSessionResult{Session: st.session}, nil
	}
	res, err := a.submitCommand(ctx, cmd)
	return res.end, err
}
