// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package priority

import "time"

// entry is one element of a Heap, keyed by priority score with an
// older-next-review tiebreak.
type entry[T any] struct {
	Key        string
	Value      T
	Score      float64
	NextReview time.Time
	index      int
}

// higherPriority reports whether a should be popped before b: higher
// score wins, ties go to the earlier NextReview.
func higherPriority[T any](a, b *entry[T]) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.NextReview.Before(b.NextReview)
}

// Heap is a max-heap ordered by priority score, with ties broken by
// older next-review time. Structurally this mirrors the teacher's
// internal/cache.MinHeap (parallel key map, bubble up/down, O(log n)
// operations) with the comparison inverted and keyed on a float score
// instead of a timestamp.
type Heap[T any] struct {
	items []*entry[T]
	byKey map[string]*entry[T]
}

// NewHeap creates an empty priority heap.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{byKey: make(map[string]*entry[T])}
}

// Push adds or updates an entry.
func (h *Heap[T]) Push(key string, value T, score float64, nextReview time.Time) {
	if existing, ok := h.byKey[key]; ok {
		existing.Value = value
		existing.Score = score
		existing.NextReview = nextReview
		h.fix(existing.index)
		return
	}

	e := &entry[T]{Key: key, Value: value, Score: score, NextReview: nextReview, index: len(h.items)}
	h.items = append(h.items, e)
	h.byKey[key] = e
	h.bubbleUp(e.index)
}

// Pop removes and returns the highest-priority entry's value and key.
// The second return is false if the heap is empty.
func (h *Heap[T]) Pop() (key string, value T, ok bool) {
	if len(h.items) == 0 {
		return "", value, false
	}
	e := h.removeAt(0)
	return e.Key, e.Value, true
}

// Len returns the number of entries.
func (h *Heap[T]) Len() int { return len(h.items) }

func (h *Heap[T]) removeAt(i int) *entry[T] {
	n := len(h.items) - 1
	e := h.items[i]
	delete(h.byKey, e.Key)

	if i == n {
		h.items = h.items[:n]
		return e
	}

	h.items[i] = h.items[n]
	h.items[i].index = i
	h.items = h.items[:n]
	h.fix(i)
	return e
}

func (h *Heap[T]) fix(i int) {
	if h.bubbleUp(i) {
		return
	}
	h.bubbleDown(i)
}

func (h *Heap[T]) bubbleUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !higherPriority(h.items[i], h.items[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

func (h *Heap[T]) bubbleDown(i int) {
	n := len(h.items)
	for {
		top := i
		left, right := 2*i+1, 2*i+2
		if left < n && higherPriority(h.items[left], h.items[top]) {
			top = left
		}
		if right < n && higherPriority(h.items[right], h.items[top]) {
			top = right
		}
		if top == i {
			break
		}
		h.swap(i, top)
		i = top
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}
