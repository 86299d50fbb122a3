// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"time"

	"github.com/kerem-isiktasli/logos/internal/cache"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// DefaultTaskCacheSize and DefaultTaskCacheTTL are the documented
// defaults for the task-spec cache: up to 1000 entries, 30 minutes
// before a cached oracle response is considered stale.
const (
	DefaultTaskCacheSize = 1000
	DefaultTaskCacheTTL  = 30 * time.Minute
)

// TaskCache caches oracle.Response values keyed by (object_id,
// task_type, task_format), so repeated queue items of the same shape
// skip a round-trip to the content oracle.
type TaskCache struct {
	inner *cache.LRUCache[oracle.Response]
}

// NewTaskCache builds a TaskCache with the given capacity and TTL.
func NewTaskCache(capacity int, ttl time.Duration) *TaskCache {
	return &TaskCache{inner: cache.NewLRUCache[oracle.Response](capacity, ttl)}
}

func taskCacheKey(objectID string, taskType zvector.TaskType, taskFormat string) string {
	return objectID + "|" + string(taskType) + "|" + taskFormat
}

// Get returns the cached response for the given key, if present and not
// expired.
func (c *TaskCache) Get(objectID string, taskType zvector.TaskType, taskFormat string) (oracle.Response, bool) {
	return c.inner.Get(taskCacheKey(objectID, taskType, taskFormat))
}

// Put stores resp under the given key, evicting the least recently used
// entry if the cache is at capacity.
func (c *TaskCache) Put(objectID string, taskType zvector.TaskType, taskFormat string, resp oracle.Response) {
	c.inner.Add(taskCacheKey(objectID, taskType, taskFormat), resp)
}

// Len reports the current number of cached entries.
func (c *TaskCache) Len() int { return c.inner.Len() }
