// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package walqueue

import (
	"context"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

// Redeliver attempts to resolve one pending item's content-oracle request.
// A non-nil error marks the item failed (and eligible for another retry,
// backoff permitting); nil marks it complete.
type Redeliver func(ctx context.Context, item domain.OfflineQueueItem) error

// RetryService periodically scans a Queue for pending items whose backoff
// has elapsed and redelivers them. It implements suture.Service so it can
// be registered in the data-layer supervisor alongside session actors.
type RetryService struct {
	queue     Queue
	cfg       Config
	redeliver Redeliver
	interval  time.Duration

	lastAttempt map[string]time.Time
}

// NewRetryService builds a RetryService that polls queue every interval
// (a zero interval defaults to cfg.RetryBackoff).
func NewRetryService(queue Queue, cfg Config, redeliver Redeliver, interval time.Duration) *RetryService {
	if interval <= 0 {
		interval = cfg.RetryBackoff
	}
	return &RetryService{
		queue:       queue,
		cfg:         cfg,
		redeliver:   redeliver,
		interval:    interval,
		lastAttempt: make(map[string]time.Time),
	}
}

// Serve runs the retry loop until ctx is canceled.
func (s *RetryService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.retryPending(ctx)
		}
	}
}

func (s *RetryService) retryPending(ctx context.Context) {
	items, err := s.queue.Pending(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("walqueue: list pending failed")
		return
	}

	for _, item := range items {
		if !s.readyForRetry(item) {
			continue
		}
		s.lastAttempt[item.ID] = time.Now()

		if err := s.redeliver(ctx, item); err != nil {
			if ferr := s.queue.Fail(ctx, item.ID, err.Error()); ferr != nil {
				logging.Warn().Err(ferr).Str("item_id", item.ID).Msg("walqueue: mark failed failed")
			}
			continue
		}
		if err := s.queue.Complete(ctx, item.ID); err != nil {
			logging.Warn().Err(err).Str("item_id", item.ID).Msg("walqueue: mark complete failed")
		}
		delete(s.lastAttempt, item.ID)
	}
}

func (s *RetryService) readyForRetry(item domain.OfflineQueueItem) bool {
	if item.Status == domain.QueueStatusFailed && !item.CanRetry() {
		return false
	}
	last, ok := s.lastAttempt[item.ID]
	if !ok {
		return true
	}
	return time.Since(last) >= s.cfg.Backoff(item.RetryCount+1)
}
