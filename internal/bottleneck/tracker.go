// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package bottleneck

import (
	"sync"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// CascadeOrder is the fixed upstream-to-downstream dependency chain:
// phonological errors can cause morphological errors, which can cause
// lexical errors, and so on.
var CascadeOrder = []domain.Component{
	domain.ComponentPhonology,
	domain.ComponentMorphology,
	domain.ComponentLexis,
	domain.ComponentSyntax,
	domain.ComponentPragmatics,
}

// cascadeIndex returns c's position in CascadeOrder, or -1 if absent.
func cascadeIndex(c domain.Component) int {
	for i, cc := range CascadeOrder {
		if cc == c {
			return i
		}
	}
	return -1
}

// Outcome is one scored response, attributed to a component. A single
// underlying response (ResponseID) may be scored against more than one
// component at once — e.g. a production task judged for both morphology
// and lexis — which is what makes cross-component co-occurrence
// meaningful.
type Outcome struct {
	ResponseID   string
	Component    domain.Component
	Correct      bool
	ErrorPattern string // empty when Correct is true
}

// Tracker maintains a rolling window of outcomes per component.
type Tracker struct {
	mu     sync.Mutex
	window int
	series map[domain.Component][]Outcome
}

// NewTracker creates a Tracker retaining the most recent windowSize
// outcomes per component.
func NewTracker(windowSize int) *Tracker {
	return &Tracker{
		window: windowSize,
		series: make(map[domain.Component][]Outcome),
	}
}

// Record appends an outcome to its component's window, trimming the
// oldest entry once the window is full.
func (t *Tracker) Record(o Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := append(t.series[o.Component], o)
	if len(s) > t.window {
		s = s[len(s)-t.window:]
	}
	t.series[o.Component] = s
}

// snapshot returns a copy of the outcome window for a component.
func (t *Tracker) snapshot(c domain.Component) []Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.series[c]
	out := make([]Outcome, len(s))
	copy(out, s)
	return out
}

// Count returns the number of recorded outcomes for a component.
func (t *Tracker) Count(c domain.Component) int {
	return len(t.snapshot(c))
}

// ErrorRate returns the fraction of incorrect outcomes for a component
// over its current window. Returns 0 if no outcomes are recorded.
func (t *Tracker) ErrorRate(c domain.Component) float64 {
	s := t.snapshot(c)
	if len(s) == 0 {
		return 0
	}
	errs := 0
	for _, o := range s {
		if !o.Correct {
			errs++
		}
	}
	return float64(errs) / float64(len(s))
}

// Trend returns the signed least-squares slope of the error indicator
// (1 for an incorrect outcome, 0 for correct) against position in the
// window. Positive means errors are increasing (worsening); negative
// means the component is improving. Returns 0 with fewer than two
// outcomes.
func (t *Tracker) Trend(c domain.Component) float64 {
	s := t.snapshot(c)
	n := len(s)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, o := range s {
		x := float64(i)
		y := 0.0
		if !o.Correct {
			y = 1.0
		}
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	nf := float64(n)
	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (nf*sumXY - sumX*sumY) / denom
}

// PatternCount is an error pattern and how often it occurred.
type PatternCount struct {
	Pattern string
	Count   int
}

// TopErrorPatterns returns up to k error patterns for a component,
// ranked by descending frequency, breaking ties by first occurrence.
func (t *Tracker) TopErrorPatterns(c domain.Component, k int) []PatternCount {
	s := t.snapshot(c)

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, o := range s {
		if o.Correct || o.ErrorPattern == "" {
			continue
		}
		if _, seen := counts[o.ErrorPattern]; !seen {
			order = append(order, o.ErrorPattern)
		}
		counts[o.ErrorPattern]++
	}

	patterns := make([]PatternCount, len(order))
	for i, p := range order {
		patterns[i] = PatternCount{Pattern: p, Count: counts[p]}
	}

	// stable sort by count descending, ties keep first-occurrence order
	for i := 1; i < len(patterns); i++ {
		for j := i; j > 0 && patterns[j].Count > patterns[j-1].Count; j-- {
			patterns[j], patterns[j-1] = patterns[j-1], patterns[j]
		}
	}

	if k >= 0 && len(patterns) > k {
		patterns = patterns[:k]
	}
	return patterns
}

// errorResponseSet returns the set of response IDs on which a component
// had an incorrect outcome.
func (t *Tracker) errorResponseSet(c domain.Component) map[string]struct{} {
	s := t.snapshot(c)
	set := make(map[string]struct{})
	for _, o := range s {
		if !o.Correct {
			set[o.ResponseID] = struct{}{}
		}
	}
	return set
}

// Jaccard returns the Jaccard index between the error-response sets of
// two components: |intersection| / |union|. Returns 0 when both sets
// are empty.
func (t *Tracker) Jaccard(a, b domain.Component) float64 {
	setA := t.errorResponseSet(a)
	setB := t.errorResponseSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for id := range setA {
		if _, ok := setB[id]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
