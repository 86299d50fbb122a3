// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package repository

import "context"

// createTables creates every table this package needs, all in the
// initial schema per the pre-release consolidation strategy: single
// source of truth, no migration chain to replay on a fresh database.
func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range tableStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		l1 TEXT NOT NULL,
		l2 TEXT NOT NULL,
		theta TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		domain TEXT NOT NULL,
		modalities TEXT NOT NULL,
		genre TEXT,
		purpose TEXT,
		benchmark TEXT,
		deadline TIMESTAMPTZ,
		weight DOUBLE NOT NULL DEFAULT 1.0,
		progress DOUBLE NOT NULL DEFAULT 0.0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS language_objects (
		id TEXT PRIMARY KEY,
		goal_id TEXT NOT NULL,
		type TEXT NOT NULL,
		content TEXT NOT NULL,
		z TEXT NOT NULL,
		irt TEXT NOT NULL,
		priority DOUBLE NOT NULL DEFAULT 0.0,
		domain_distribution TEXT
	);`,

	`CREATE TABLE IF NOT EXISTS mastery_states (
		object_id TEXT PRIMARY KEY,
		stage INTEGER NOT NULL DEFAULT 0,
		fsrs TEXT NOT NULL,
		cue_free_accuracy DOUBLE NOT NULL DEFAULT 0.0,
		cue_assisted_accuracy DOUBLE NOT NULL DEFAULT 0.0,
		exposure_count INTEGER NOT NULL DEFAULT 0,
		priority DOUBLE NOT NULL DEFAULT 0.0,
		again_streak INTEGER NOT NULL DEFAULT 0
	);`,

	`CREATE TABLE IF NOT EXISTS responses (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		object_id TEXT NOT NULL,
		task_type TEXT NOT NULL,
		task_format TEXT,
		modality TEXT,
		category TEXT,
		correct BOOLEAN NOT NULL,
		response_time_ms BIGINT NOT NULL,
		cue_level INTEGER NOT NULL DEFAULT 0,
		response_content TEXT,
		expected_content TEXT,
		theta_contribution DOUBLE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,

	`CREATE TABLE IF NOT EXISTS stage_transitions (
		id TEXT PRIMARY KEY,
		object_id TEXT NOT NULL,
		from_stage INTEGER NOT NULL,
		to_stage INTEGER NOT NULL,
		trigger TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL,
		cue_free DOUBLE NOT NULL,
		cue_assisted DOUBLE NOT NULL,
		stability DOUBLE NOT NULL,
		exposure INTEGER NOT NULL,
		gap DOUBLE NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS object_encounters (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		object_id TEXT NOT NULL,
		category TEXT NOT NULL,
		modality TEXT NOT NULL,
		domain TEXT NOT NULL,
		theta DOUBLE NOT NULL,
		difficulty DOUBLE NOT NULL,
		correct BOOLEAN NOT NULL,
		response_time_ms BIGINT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS relationship_stats (
		user_id TEXT NOT NULL,
		object_id TEXT NOT NULL,
		count_by_category TEXT NOT NULL,
		count_by_modality TEXT NOT NULL,
		success_by_category TEXT NOT NULL,
		success_by_modality TEXT NOT NULL,
		interpretation_ratio DOUBLE NOT NULL DEFAULT 0.0,
		modality_balance DOUBLE NOT NULL DEFAULT 0.0,
		domain_exposure TEXT NOT NULL,
		avg_response_time_ms DOUBLE NOT NULL DEFAULT 0.0,
		retrieval_fluency DOUBLE NOT NULL DEFAULT 0.0,
		learning_cost DOUBLE NOT NULL DEFAULT 0.1,
		knowledge_strength DOUBLE NOT NULL DEFAULT 0.0,
		last_encounter TIMESTAMPTZ,
		PRIMARY KEY (user_id, object_id)
	);`,

	`CREATE TABLE IF NOT EXISTS thresholds (
		user_id TEXT PRIMARY KEY,
		config TEXT NOT NULL
	);`,

	`CREATE TABLE IF NOT EXISTS theta_snapshots (
		user_id TEXT NOT NULL,
		profile TEXT NOT NULL,
		as_of TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (user_id, as_of)
	);`,

	`CREATE INDEX IF NOT EXISTS idx_goals_user_id ON goals (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_language_objects_goal_id ON language_objects (goal_id);`,
	`CREATE INDEX IF NOT EXISTS idx_responses_session_id ON responses (session_id);`,
	`CREATE INDEX IF NOT EXISTS idx_responses_object_id ON responses (object_id);`,
	`CREATE INDEX IF NOT EXISTS idx_stage_transitions_object_id ON stage_transitions (object_id);`,
	`CREATE INDEX IF NOT EXISTS idx_object_encounters_user_id ON object_encounters (user_id);`,
}
