// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

//go:build !wal

package walqueue

import (
	"context"
	"fmt"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

// NoOpQueue is used when the application is built without the 'wal' build
// tag: nothing is persisted, and failed oracle requests are not retried
// across a process restart.
type NoOpQueue struct{}

// Open returns a no-op queue.
func Open(cfg Config) (*NoOpQueue, error) {
	logging.Info().Msg("walqueue disabled (build without -tags wal); failed oracle requests are not durably retried")
	return &NoOpQueue{}, nil
}

func (q *NoOpQueue) Enqueue(ctx context.Context, objectID string, request []byte, maxRetries int) (string, error) {
	return "", nil
}

func (q *NoOpQueue) Complete(ctx context.Context, id string) error { return nil }

func (q *NoOpQueue) Fail(ctx context.Context, id string, cause string) error { return nil }

func (q *NoOpQueue) Pending(ctx context.Context) ([]domain.OfflineQueueItem, error) { return nil, nil }

func (q *NoOpQueue) Stats(ctx context.Context) (Stats, error) { return Stats{}, nil }

func (q *NoOpQueue) Close() error { return nil }

var (
	ErrClosed   = fmt.Errorf("walqueue: closed")
	ErrNotFound = fmt.Errorf("walqueue: item not found")
)
