// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logoserr"
	"github.com/kerem-isiktasli/logos/internal/session"
	"github.com/kerem-isiktasli/logos/internal/threshold"
)

// compile-time assertion that DB satisfies session.Repository.
var _ session.Repository = (*DB)(nil)

// errNotFound is the sentinel withTx callers return to request a
// not-found translation instead of PersistenceFailure; it never leaves
// this package.
var errNotFound = errors.New("repository: not found")

// withTx runs fn inside a single transaction, per call, and surfaces any
// failure to begin, execute, or commit as logoserr.PersistenceFailure. A
// fn that returns errNotFound unwraps to a plain "not found" error
// instead, since a missing row is an input-validation concern for the
// caller, not a durability failure.
func (db *DB) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return logoserr.Wrap(logoserr.PersistenceFailure, op, "begin transaction", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, errNotFound) {
			return err
		}
		return logoserr.Wrap(logoserr.PersistenceFailure, op, "transaction body failed", err)
	}

	if err := tx.Commit(); err != nil {
		return logoserr.Wrap(logoserr.PersistenceFailure, op, "commit transaction", err)
	}
	return nil
}

// GetUser loads a user by ID.
func (db *DB) GetUser(ctx context.Context, userID string) (domain.User, error) {
	var u domain.User
	err := db.withTx(ctx, "repository.GetUser", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT id, l1, l2, theta, created_at, updated_at FROM users WHERE id = ?`, userID)

		var theta string
		if err := row.Scan(&u.ID, &u.L1, &u.L2, &theta, &u.CreatedAt, &u.UpdatedAt); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errNotFound
			}
			return err
		}
		return json.Unmarshal([]byte(theta), &u.Theta)
	})
	if errors.Is(err, errNotFound) {
		return domain.User{}, logoserr.New(logoserr.InvalidInput, "repository.GetUser", "user "+userID+" not found")
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// UpsertUser creates or updates a user record.
func (db *DB) UpsertUser(ctx context.Context, u domain.User) error {
	return db.withTx(ctx, "repository.UpsertUser", func(tx *sql.Tx) error {
		theta, err := json.Marshal(u.Theta)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, l1, l2, theta, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET l1 = EXCLUDED.l1, l2 = EXCLUDED.l2,
				theta = EXCLUDED.theta, updated_at = EXCLUDED.updated_at`,
			u.ID, u.L1, u.L2, string(theta), u.CreatedAt, u.UpdatedAt)
		return err
	})
}

// ListGoals returns every goal owned by userID.
func (db *DB) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := db.withTx(ctx, "repository.ListGoals", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, user_id, domain, modalities, genre, purpose, benchmark, deadline, weight, progress, created_at
			FROM goals WHERE user_id = ?`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var g domain.Goal
			var modalities string
			var benchmark, genre, purpose sql.NullString
			var deadline sql.NullTime
			if err := rows.Scan(&g.ID, &g.UserID, &g.Domain, &modalities, &genre, &purpose, &benchmark, &deadline, &g.Weight, &g.Progress, &g.CreatedAt); err != nil {
				return err
			}
			if err := json.Unmarshal([]byte(modalities), &g.Modalities); err != nil {
				return err
			}
			g.Genre = genre.String
			g.Purpose = purpose.String
			g.Benchmark = benchmark.String
			if deadline.Valid {
				d := deadline.Time
				g.Deadline = &d
			}
			goals = append(goals, g)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// UpsertGoal creates or updates a goal.
func (db *DB) UpsertGoal(ctx context.Context, g domain.Goal) error {
	return db.withTx(ctx, "repository.UpsertGoal", func(tx *sql.Tx) error {
		modalities, err := json.Marshal(g.Modalities)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO goals (id, user_id, domain, modalities, genre, purpose, benchmark, deadline, weight, progress, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET domain = EXCLUDED.domain, modalities = EXCLUDED.modalities,
				genre = EXCLUDED.genre, purpose = EXCLUDED.purpose, benchmark = EXCLUDED.benchmark,
				deadline = EXCLUDED.deadline, weight = EXCLUDED.weight, progress = EXCLUDED.progress`,
			g.ID, g.UserID, string(g.Domain), string(modalities), g.Genre, g.Purpose, g.Benchmark, g.Deadline, g.Weight, g.Progress, g.CreatedAt)
		return err
	})
}

// ListObjects returns every LanguageObject owned by goalID.
func (db *DB) ListObjects(ctx context.Context, goalID string) ([]domain.LanguageObject, error) {
	var objects []domain.LanguageObject
	err := db.withTx(ctx, "repository.ListObjects", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT id, goal_id, type, content, z, irt, priority, domain_distribution
			FROM language_objects WHERE goal_id = ?`, goalID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var o domain.LanguageObject
			var z, irt string
			var domainDist sql.NullString
			if err := rows.Scan(&o.ID, &o.GoalID, &o.Type, &o.Content, &z, &irt, &o.Priority, &domainDist); err != nil {
				return err
			}
			if err := json.Unmarshal([]byte(z), &o.Z); err != nil {
				return err
			}
			if err := json.Unmarshal([]byte(irt), &o.IRT); err != nil {
				return err
			}
			if domainDist.Valid && domainDist.String != "" {
				if err := json.Unmarshal([]byte(domainDist.String), &o.DomainDistribution); err != nil {
					return err
				}
			}
			objects = append(objects, o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return objects, nil
}

// UpsertObject creates or updates a LanguageObject.
func (db *DB) UpsertObject(ctx context.Context, o domain.LanguageObject) error {
	return db.withTx(ctx, "repository.UpsertObject", func(tx *sql.Tx) error {
		z, err := json.Marshal(o.Z)
		if err != nil {
			return err
		}
		irt, err := json.Marshal(o.IRT)
		if err != nil {
			return err
		}
		domainDist, err := json.Marshal(o.DomainDistribution)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO language_objects (id, goal_id, type, content, z, irt, priority, domain_distribution)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, z = EXCLUDED.z,
				irt = EXCLUDED.irt, priority = EXCLUDED.priority, domain_distribution = EXCLUDED.domain_distribution`,
			o.ID, o.GoalID, string(o.Type), o.Content, string(z), string(irt), o.Priority, string(domainDist))
		return err
	})
}

// GetMastery loads the mastery record for one object.
func (db *DB) GetMastery(ctx context.Context, objectID string) (domain.MasteryState, error) {
	var m domain.MasteryState
	err := db.withTx(ctx, "repository.GetMastery", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT object_id, stage, fsrs, cue_free_accuracy, cue_assisted_accuracy, exposure_count, priority, again_streak
			FROM mastery_states WHERE object_id = ?`, objectID)

		var fsrs string
		if err := row.Scan(&m.ObjectID, &m.Stage, &fsrs, &m.CueFreeAccuracy, &m.CueAssistedAccuracy, &m.ExposureCount, &m.Priority, &m.AgainStreak); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errNotFound
			}
			return err
		}
		return json.Unmarshal([]byte(fsrs), &m.FSRS)
	})
	if errors.Is(err, errNotFound) {
		return domain.MasteryState{}, logoserr.New(logoserr.InvalidInput, "repository.GetMastery", "no mastery record for "+objectID)
	}
	if err != nil {
		return domain.MasteryState{}, err
	}
	return m, nil
}

// UpsertMastery creates or updates a mastery record.
func (db *DB) UpsertMastery(ctx context.Context, m domain.MasteryState) error {
	return db.withTx(ctx, "repository.UpsertMastery", func(tx *sql.Tx) error {
		fsrs, err := json.Marshal(m.FSRS)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO mastery_states (object_id, stage, fsrs, cue_free_accuracy, cue_assisted_accuracy, exposure_count, priority, again_streak)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (object_id) DO UPDATE SET stage = EXCLUDED.stage, fsrs = EXCLUDED.fsrs,
				cue_free_accuracy = EXCLUDED.cue_free_accuracy, cue_assisted_accuracy = EXCLUDED.cue_assisted_accuracy,
				exposure_count = EXCLUDED.exposure_count, priority = EXCLUDED.priority, again_streak = EXCLUDED.again_streak`,
			m.ObjectID, m.Stage, string(fsrs), m.CueFreeAccuracy, m.CueAssistedAccuracy, m.ExposureCount, m.Priority, m.AgainStreak)
		return err
	})
}

// AppendResponse records one scored response. Responses are append-only.
func (db *DB) AppendResponse(ctx context.Context, r domain.Response) error {
	return db.withTx(ctx, "repository.AppendResponse", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO responses (id, session_id, object_id, task_type, task_format, modality, category,
				correct, response_time_ms, cue_level, response_content, expected_content, theta_contribution, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.SessionID, r.ObjectID, r.TaskType, r.TaskFormat, string(r.Modality), string(r.Category),
			r.Correct, r.ResponseTimeMs, r.CueLevel, r.ResponseContent, r.ExpectedContent, r.ThetaContribution, r.CreatedAt)
		return err
	})
}

// ListResponsesByGoal returns the most recent responses against objects
// belonging to goalID, newest first, for reconstructing a bottleneck
// report outside the live session pipeline (see internal/api's
// get-bottlenecks handler). It is not part of session.Repository: a
// SessionActor tracks bottlenecks from its own in-memory window and never
// needs this read.
func (db *DB) ListResponsesByGoal(ctx context.Context, goalID string, limit int) ([]domain.Response, error) {
	var responses []domain.Response
	err := db.withTx(ctx, "repository.ListResponsesByGoal", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT r.id, r.session_id, r.object_id, r.task_type, r.task_format, r.modality, r.category,
				r.correct, r.response_time_ms, r.cue_level, r.response_content, r.expected_content,
				r.theta_contribution, r.created_at
			FROM responses r
			JOIN language_objects o ON o.id = r.object_id
			WHERE o.goal_id = ?
			ORDER BY r.created_at DESC
			LIMIT ?`, goalID, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var r domain.Response
			var modality, category string
			if err := rows.Scan(&r.ID, &r.SessionID, &r.ObjectID, &r.TaskType, &r.TaskFormat, &modality, &category,
				&r.Correct, &r.ResponseTimeMs, &r.CueLevel, &r.ResponseContent, &r.ExpectedContent,
				&r.ThetaContribution, &r.CreatedAt); err != nil {
				return err
			}
			r.Modality = domain.Modality(modality)
			r.Category = domain.TaskCategory(category)
			responses = append(responses, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// AppendStageTransition records one stage change. Transitions are
// append-only; the stage-audit log (internal/stageaudit) tails the same
// data asynchronously for fast recent-history queries, but this is the
// durable system of record.
func (db *DB) AppendStageTransition(ctx context.Context, t domain.StageTransition) error {
	return db.withTx(ctx, "repository.AppendStageTransition", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stage_transitions (id, object_id, from_stage, to_stage, trigger, occurred_at,
				cue_free, cue_assisted, stability, exposure, gap)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.ObjectID, t.FromStage, t.ToStage, t.Trigger, t.Timestamp,
			t.CueFreeAccuracy, t.CueAssistedAccuracy, t.Stability, t.ExposureCount, t.ScaffoldingGap)
		return err
	})
}

// UpsertEncounter records one ObjectEncounter. Encounters are append-only
// in spirit but exposed as an upsert so a retried write after a timeout
// is idempotent on the encounter's ID.
func (db *DB) UpsertEncounter(ctx context.Context, enc domain.ObjectEncounter) error {
	return db.withTx(ctx, "repository.UpsertEncounter", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO object_encounters (id, user_id, object_id, category, modality, domain, theta,
				difficulty, correct, response_time_ms, occurred_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`,
			enc.ID, enc.UserID, enc.ObjectID, string(enc.Category), string(enc.Modality), string(enc.Domain),
			enc.Theta, enc.Difficulty, enc.Correct, enc.ResponseTimeMs, enc.OccurredAt)
		return err
	})
}

// UpsertRelationshipStats writes the current aggregate for one
// (user, object) pair.
func (db *DB) UpsertRelationshipStats(ctx context.Context, stats domain.RelationshipStats) error {
	return db.withTx(ctx, "repository.UpsertRelationshipStats", func(tx *sql.Tx) error {
		countByCategory, err := json.Marshal(stats.CountByCategory)
		if err != nil {
			return err
		}
		countByModality, err := json.Marshal(stats.CountByModality)
		if err != nil {
			return err
		}
		successByCategory, err := json.Marshal(stats.SuccessByCategory)
		if err != nil {
			return err
		}
		successByModality, err := json.Marshal(stats.SuccessByModality)
		if err != nil {
			return err
		}
		domainExposure, err := json.Marshal(stats.DomainExposure)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO relationship_stats (user_id, object_id, count_by_category, count_by_modality,
				success_by_category, success_by_modality, interpretation_ratio, modality_balance,
				domain_exposure, avg_response_time_ms, retrieval_fluency, learning_cost, knowledge_strength, last_encounter)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_id, object_id) DO UPDATE SET
				count_by_category = EXCLUDED.count_by_category, count_by_modality = EXCLUDED.count_by_modality,
				success_by_category = EXCLUDED.success_by_category, success_by_modality = EXCLUDED.success_by_modality,
				interpretation_ratio = EXCLUDED.interpretation_ratio, modality_balance = EXCLUDED.modality_balance,
				domain_exposure = EXCLUDED.domain_exposure, avg_response_time_ms = EXCLUDED.avg_response_time_ms,
				retrieval_fluency = EXCLUDED.retrieval_fluency, learning_cost = EXCLUDED.learning_cost,
				knowledge_strength = EXCLUDED.knowledge_strength, last_encounter = EXCLUDED.last_encounter`,
			stats.UserID, stats.ObjectID, string(countByCategory), string(countByModality),
			string(successByCategory), string(successByModality), stats.InterpretationRatio, stats.ModalityBalance,
			string(domainExposure), stats.AvgResponseTimeMs, stats.RetrievalFluency, stats.LearningCost, stats.KnowledgeStrength, stats.LastEncounter)
		return err
	})
}

// ReadThresholds loads a user's stage-transition thresholds, falling back
// to the documented defaults when none have been customized.
func (db *DB) ReadThresholds(ctx context.Context, userID string) (threshold.Config, error) {
	var cfg threshold.Config
	found := false
	err := db.withTx(ctx, "repository.ReadThresholds", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT config FROM thresholds WHERE user_id = ?`, userID)

		var raw string
		if err := row.Scan(&raw); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}
		found = true
		return json.Unmarshal([]byte(raw), &cfg)
	})
	if err != nil {
		return threshold.Config{}, err
	}
	if !found {
		return threshold.Default(), nil
	}
	return cfg, nil
}

// WriteThresholds persists a custom threshold profile for a user.
func (db *DB) WriteThresholds(ctx context.Context, userID string, cfg threshold.Config) error {
	return db.withTx(ctx, "repository.WriteThresholds", func(tx *sql.Tx) error {
		raw, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO thresholds (user_id, config) VALUES (?, ?)
			ON CONFLICT (user_id) DO UPDATE SET config = EXCLUDED.config`,
			userID, string(raw))
		return err
	})
}

// WriteThetaSnapshot persists a user's θ profile as of a point in time,
// taken at session close.
func (db *DB) WriteThetaSnapshot(ctx context.Context, userID string, profile domain.ThetaProfile, asOf time.Time) error {
	return db.withTx(ctx, "repository.WriteThetaSnapshot", func(tx *sql.Tx) error {
		raw, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO theta_snapshots (user_id, profile, as_of) VALUES (?, ?, ?)
			ON CONFLICT (user_id, as_of) DO UPDATE SET profile = EXCLUDED.profile`,
			userID, string(raw), asOf)
		return err
	})
}
