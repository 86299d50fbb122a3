// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package walqueue

import (
	"context"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// Queue durably tracks content-oracle requests that need to be retried.
type Queue interface {
	// Enqueue persists a new pending item and returns its ID.
	Enqueue(ctx context.Context, objectID string, request []byte, maxRetries int) (string, error)

	// Complete marks an item as completed and removes it from the pending set.
	Complete(ctx context.Context, id string) error

	// Fail records a failed attempt. If the item has retries remaining it
	// stays pending for another attempt; otherwise it is marked failed
	// permanently.
	Fail(ctx context.Context, id string, cause string) error

	// Pending returns all items currently awaiting a retry attempt.
	Pending(ctx context.Context) ([]domain.OfflineQueueItem, error)

	// Stats reports queue depth by status.
	Stats(ctx context.Context) (Stats, error)

	Close() error
}

// Stats summarizes queue depth by status.
type Stats struct {
	Pending   int64
	Completed int64
	Failed    int64
}
