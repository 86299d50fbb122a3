// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package stageaudit

import (
	"context"
	"sync"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

// Config controls the audit logger's buffering and retention.
type Config struct {
	// BufferSize is the size of the async write channel.
	BufferSize int

	// RetentionDays is how long transitions are kept before cleanup.
	RetentionDays int

	// CleanupInterval is how often retention cleanup runs.
	CleanupInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:      1000,
		RetentionDays:   365,
		CleanupInterval: 24 * time.Hour,
	}
}

// Logger buffers StageTransition writes and flushes them to a Store
// asynchronously, so logging a transition never blocks the scoring step
// that produced it.
type Logger struct {
	store     Store
	cfg       Config
	eventChan chan domain.StageTransition
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// NewLogger starts a Logger writing to store.
func NewLogger(store Store, cfg Config) *Logger {
	l := &Logger{
		store:     store,
		cfg:       cfg,
		eventChan: make(chan domain.StageTransition, cfg.BufferSize),
		stopChan:  make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

func (l *Logger) run() {
	defer l.wg.Done()
	for {
		select {
		case <-l.stopChan:
			for {
				select {
				case t := <-l.eventChan:
					l.write(t)
				default:
					return
				}
			}
		case t := <-l.eventChan:
			l.write(t)
		}
	}
}

func (l *Logger) write(t domain.StageTransition) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.store.Save(ctx, t); err != nil {
		logging.Error().Err(err).Str("object_id", t.ObjectID).Msg("stageaudit: failed to save transition")
	}
}

// Record enqueues a transition for durable logging. If the buffer is full
// the transition is dropped and a warning is logged — stage history is
// best-effort, never on the critical path of scoring.
func (l *Logger) Record(t domain.StageTransition) {
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	select {
	case l.eventChan <- t:
	default:
		logging.Warn().Str("object_id", t.ObjectID).Msg("stageaudit: buffer full, dropping transition")
	}
}

// Query retrieves transitions matching filter.
func (l *Logger) Query(ctx context.Context, filter QueryFilter) ([]domain.StageTransition, error) {
	return l.store.Query(ctx, filter)
}

// StartCleanupRoutine runs retention cleanup on cfg.CleanupInterval until
// ctx is done.
func (l *Logger) StartCleanupRoutine(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(l.cfg.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -l.cfg.RetentionDays)
				count, err := l.store.Delete(ctx, cutoff)
				if err != nil {
					logging.Error().Err(err).Msg("stageaudit: cleanup failed")
				} else if count > 0 {
					logging.Info().Int64("count", count).Msg("stageaudit: cleaned up old transitions")
				}
			}
		}
	}()
}

// Close flushes the buffer and stops the writer goroutine.
func (l *Logger) Close() error {
	close(l.stopChan)
	l.wg.Wait()
	return nil
}
