// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stageaudit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

// DuckDBStore implements Store using DuckDB for durable, queryable history
// of stage transitions.
type DuckDBStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewDuckDBStore wraps an already-open DuckDB handle. The caller must call
// CreateTable before first use.
func NewDuckDBStore(db *sql.DB) *DuckDBStore {
	return &DuckDBStore{db: db}
}

// CreateTable creates the stage_transitions table if it doesn't exist.
func (s *DuckDBStore) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS stage_transitions (
			id TEXT PRIMARY KEY,
			object_id TEXT NOT NULL,
			from_stage INTEGER NOT NULL,
			to_stage INTEGER NOT NULL,
			trigger TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			cue_free_accuracy DOUBLE NOT NULL,
			cue_assisted_accuracy DOUBLE NOT NULL,
			stability DOUBLE NOT NULL,
			exposure_count INTEGER NOT NULL,
			scaffolding_gap DOUBLE NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_stage_transitions_object_id ON stage_transitions(object_id);
		CREATE INDEX IF NOT EXISTS idx_stage_transitions_timestamp ON stage_transitions(timestamp DESC);
	`
	for _, stmt := range strings.Split(query, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("execute stage_transitions schema: %w", err)
		}
	}
	logging.Info().Msg("stage_transitions table created/verified")
	return nil
}

// Save persists a transition.
func (s *DuckDBStore) Save(ctx context.Context, t domain.StageTransition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	const query = `
		INSERT INTO stage_transitions (
			id, object_id, from_stage, to_stage, trigger, timestamp,
			cue_free_accuracy, cue_assisted_accuracy, stability,
			exposure_count, scaffolding_gap
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		t.ID, t.ObjectID, int(t.FromStage), int(t.ToStage), t.Trigger, t.Timestamp,
		t.CueFreeAccuracy, t.CueAssistedAccuracy, t.Stability,
		t.ExposureCount, t.ScaffoldingGap,
	)
	if err != nil {
		return fmt.Errorf("save stage transition: %w", err)
	}
	return nil
}

// Query retrieves transitions matching filter, newest first.
func (s *DuckDBStore) Query(ctx context.Context, filter QueryFilter) ([]domain.StageTransition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, object_id, from_stage, to_stage, trigger, timestamp,
		       cue_free_accuracy, cue_assisted_accuracy, stability,
		       exposure_count, scaffolding_gap
		FROM stage_transitions
	`
	var conditions []string
	var args []interface{}

	if filter.ObjectID != "" {
		conditions = append(conditions, "object_id = ?")
		args = append(args, filter.ObjectID)
	}
	if filter.OnlyRegress {
		conditions = append(conditions, "to_stage < from_stage")
	}
	if filter.StartTime != nil {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, *filter.StartTime)
	}
	if filter.EndTime != nil {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, *filter.EndTime)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stage transitions: %w", err)
	}
	defer rows.Close()

	var transitions []domain.StageTransition
	for rows.Next() {
		var t domain.StageTransition
		var fromStage, toStage int
		if err := rows.Scan(
			&t.ID, &t.ObjectID, &fromStage, &toStage, &t.Trigger, &t.Timestamp,
			&t.CueFreeAccuracy, &t.CueAssistedAccuracy, &t.Stability,
			&t.ExposureCount, &t.ScaffoldingGap,
		); err != nil {
			logging.Warn().Err(err).Msg("stageaudit: skipping malformed row")
			continue
		}
		t.FromStage = domain.Stage(fromStage)
		t.ToStage = domain.Stage(toStage)
		transitions = append(transitions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stage transitions: %w", err)
	}
	return transitions, nil
}

// Delete removes transitions recorded before olderThan.
func (s *DuckDBStore) Delete(ctx context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, "DELETE FROM stage_transitions WHERE timestamp < ?", olderThan)
	if err != nil {
		return 0, fmt.Errorf("delete old stage transitions: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get deleted count: %w", err)
	}
	return count, nil
}
