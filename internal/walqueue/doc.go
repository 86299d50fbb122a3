// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package walqueue is the durable offline queue for content-oracle requests
// that could not be served live: a failed domain.OfflineQueueItem is
// persisted to BadgerDB before it is retried, so a process crash or oracle
// outage never silently drops a pending request. Build with -tags=wal to
// enable the BadgerDB-backed queue; without the tag, Queue is a no-op and
// items are only held in the caller's own retry loop.
package walqueue
