// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

//go:build wal

package walqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
)

func statusPrefix(s domain.OfflineQueueStatus) string { return string(s) + ":" }

// BadgerQueue implements Queue using BadgerDB, following the same
// ACID-before-retry durability pattern as this module's event WAL: an item
// is persisted before the caller is told it was queued, and a status
// change moves its key rather than mutating in place, so a crash mid-move
// leaves exactly one of the two keys behind.
type BadgerQueue struct {
	db     *badger.DB
	cfg    Config
	mu     sync.RWMutex
	closed bool
}

// Open creates or opens a BadgerQueue at cfg.Path.
func Open(cfg Config) (*BadgerQueue, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid walqueue config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	opts.MemTableSize = cfg.MemTableSize
	opts.ValueLogFileSize = cfg.ValueLogFileSize
	opts.NumCompactors = cfg.NumCompactors
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Msg("walqueue opened")
	return &BadgerQueue{db: db, cfg: cfg}, nil
}

func (q *BadgerQueue) Enqueue(ctx context.Context, objectID string, request []byte, maxRetries int) (string, error) {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return "", ErrClosed
	}
	q.mu.RUnlock()

	if maxRetries <= 0 {
		maxRetries = q.cfg.DefaultMaxRetries
	}

	now := time.Now().UTC()
	item := domain.OfflineQueueItem{
		ID:         uuid.New().String(),
		ObjectID:   objectID,
		Request:    request,
		Status:     domain.QueueStatusPending,
		MaxRetries: maxRetries,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := q.put(item); err != nil {
		return "", err
	}
	return item.ID, nil
}

func (q *BadgerQueue) Complete(ctx context.Context, id string) error {
	return q.transition(id, func(item *domain.OfflineQueueItem) error {
		item.Status = domain.QueueStatusCompleted
		return nil
	})
}

func (q *BadgerQueue) Fail(ctx context.Context, id string, cause string) error {
	return q.transition(id, func(item *domain.OfflineQueueItem) error {
		item.RetryCount++
		if item.RetryCount < item.MaxRetries {
			item.Status = domain.QueueStatusPending
		} else {
			item.Status = domain.QueueStatusFailed
		}
		return nil
	})
}

// transition loads the item wherever it currently lives, applies mutate,
// and rewrites it under its (possibly new) status key in one transaction.
func (q *BadgerQueue) transition(id string, mutate func(*domain.OfflineQueueItem) error) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrClosed
	}
	q.mu.RUnlock()

	item, oldKey, err := q.find(id)
	if err != nil {
		return err
	}
	if err := mutate(&item); err != nil {
		return err
	}
	item.UpdatedAt = time.Now().UTC()

	return q.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(oldKey); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete old key: %w", err)
		}
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		return txn.Set([]byte(statusPrefix(item.Status)+item.ID), data)
	})
}

func (q *BadgerQueue) find(id string) (domain.OfflineQueueItem, []byte, error) {
	statuses := []domain.OfflineQueueStatus{
		domain.QueueStatusPending, domain.QueueStatusProcessing,
		domain.QueueStatusCompleted, domain.QueueStatusFailed,
	}

	var item domain.OfflineQueueItem
	var key []byte
	err := q.db.View(func(txn *badger.Txn) error {
		for _, s := range statuses {
			k := []byte(statusPrefix(s) + id)
			dbItem, err := txn.Get(k)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get item: %w", err)
			}
			key = k
			return dbItem.Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			})
		}
		return ErrNotFound
	})
	return item, key, err
}

func (q *BadgerQueue) put(item domain.OfflineQueueItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	key := []byte(statusPrefix(item.Status) + item.ID)
	return q.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, data)
		if q.cfg.EntryTTL > 0 {
			e = e.WithTTL(q.cfg.EntryTTL)
		}
		return txn.SetEntry(e)
	})
}

func (q *BadgerQueue) Pending(ctx context.Context) ([]domain.OfflineQueueItem, error) {
	return q.list(ctx, domain.QueueStatusPending)
}

func (q *BadgerQueue) list(ctx context.Context, status domain.OfflineQueueStatus) ([]domain.OfflineQueueItem, error) {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return nil, ErrClosed
	}
	q.mu.RUnlock()

	var items []domain.OfflineQueueItem
	prefix := []byte(statusPrefix(status))
	err := q.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			var item domain.OfflineQueueItem
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &item)
			}); err != nil {
				logging.Warn().Err(err).Msg("walqueue: skipping malformed entry")
				continue
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate %s entries: %w", status, err)
	}
	return items, nil
}

func (q *BadgerQueue) Stats(ctx context.Context) (Stats, error) {
	pending, err := q.list(ctx, domain.QueueStatusPending)
	if err != nil {
		return Stats{}, err
	}
	completed, err := q.list(ctx, domain.QueueStatusCompleted)
	if err != nil {
		return Stats{}, err
	}
	failed, err := q.list(ctx, domain.QueueStatusFailed)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Pending:   int64(len(pending)),
		Completed: int64(len(completed)),
		Failed:    int64(len(failed)),
	}, nil
}

func (q *BadgerQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()
	return q.db.Close()
}

var (
	ErrClosed   = fmt.Errorf("walqueue: closed")
	ErrNotFound = fmt.Errorf("walqueue: item not found")
)
