// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package fsrs

import (
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// SchedulerConfig holds the review-interval tunables.
type SchedulerConfig struct {
	Weights             Weights
	RequestRetention    float64
	MaximumIntervalDays int
}

// DefaultSchedulerConfig returns the canonical weights, a 0.9 retention
// target, and a 365-day interval cap.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Weights:             DefaultWeights,
		RequestRetention:    0.9,
		MaximumIntervalDays: 365,
	}
}

// ReviewResult is the outcome of scheduling one review.
type ReviewResult struct {
	Card         domain.Card
	IntervalDays int
}

// ReviewCard applies one rated review to a card, running the new ->
// learning -> review -> relearning state machine alongside the
// stability/difficulty update, and returns the updated card plus its next
// review interval in days.
//
// State transitions: new -> learning on the first rating; learning ->
// review once a Good or Easy rating is given with at least one prior
// rep; review -> relearning on Again; relearning -> review on Good or
// Easy. Lapses increment on any Again from review; reps count every
// non-Again rating.
func ReviewCard(cfg SchedulerConfig, card domain.Card, rating Rating, now time.Time) ReviewResult {
	w := cfg.Weights
	if w == (Weights{}) {
		w = DefaultWeights
	}

	sameDay := card.LastReview != nil && sameCalendarDay(*card.LastReview, now)
	elapsed := 0.0
	if card.LastReview != nil {
		elapsed = now.Sub(*card.LastReview).Hours() / 24
	}
	wasReview := card.State == domain.CardStateReview

	switch card.State {
	case domain.CardStateNew:
		card.Difficulty = InitialDifficulty(w, rating)
		card.Stability = InitialStability(w, rating)
		card.State = nextStateFromNew(rating)

	default:
		r := Retrievability(elapsed, card.Stability)
		card.Difficulty = NextDifficulty(w, card.Difficulty, rating)

		switch {
		case sameDay:
			card.Stability = ShortTermStability(w, card.Stability, rating)
		case rating == Again:
			card.Stability = NextStabilityOnLapse(w, card.Difficulty, card.Stability, r)
		default:
			card.Stability = NextStabilityOnRecall(w, card.Difficulty, card.Stability, r, rating)
		}

		card.State = nextState(card.State, rating, card.Reps)
	}

	if rating == Again {
		if wasReview {
			card.Lapses++
		}
	} else {
		card.Reps++
	}

	last := now
	card.LastReview = &last
	intervalDays := IntervalForRetention(card.Stability, cfg.RequestRetention, cfg.MaximumIntervalDays)
	next := now.AddDate(0, 0, intervalDays)
	card.NextReview = &next

	return ReviewResult{Card: card, IntervalDays: intervalDays}
}

func nextStateFromNew(rating Rating) domain.CardState {
	return domain.CardStateLearning
}

func nextState(current domain.CardState, rating Rating, priorReps int) domain.CardState {
	switch current {
	case domain.CardStateLearning:
		if rating >= Good && priorReps >= 1 {
			return domain.CardStateReview
		}
		return domain.CardStateLearning
	case domain.CardStateReview:
		if rating == Again {
			return domain.CardStateRelearning
		}
		return domain.CardStateReview
	case domain.CardStateRelearning:
		if rating >= Good {
			return domain.CardStateReview
		}
		return domain.CardStateRelearning
	default:
		return current
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
