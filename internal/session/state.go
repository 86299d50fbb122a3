// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/threshold"
	"github.com/kerem-isiktasli/logos/internal/timing"
)

// state is the mutable working memory a SessionActor holds for the
// lifetime of one session. Nothing here is shared across sessions; a
// User's ThetaProfile and MasteryStates are read once at session start;
// each MasteryState is written back through the Repository after every
// scored response and the ThetaProfile as a snapshot on close, never
// concurrently from more than one actor.
type state struct {
	session domain.Session
	goal    domain.Goal
	user    domain.User

	thresholds threshold.Config

	objects map[string]domain.LanguageObject
	mastery map[string]domain.MasteryState
	encounters map[string]domain.RelationshipStats

	bottleneck *bottleneck.Tracker
	recentSamples []timing.Sample

	queue []QueueItem
}

func componentForObjectType(t domain.ObjectType) domain.Component {
	switch t {
	case domain.ObjectTypeLex:
		return domain.ComponentLexis
	case domain.ObjectTypeMorph:
		return domain.ComponentMorphology
	case domain.ObjectTypeG2P:
		return domain.ComponentPhonology
	case domain.ObjectTypeSynt:
		return domain.ComponentSyntax
	case domain.ObjectTypePragma:
		return domain.ComponentPragmatics
	default:
		return domain.ComponentLexis
	}
}

// maxRecentSamples bounds the suspicious-pattern sample ring, keeping
// the check cheap without losing the recency window spec.md cares about.
const maxRecentSamples = 20

func (s *state) recordSample(sample timing.Sample) {
	s.recentSamples = append(s.recentSamples, sample)
	if len(s.recentSamples) > maxRecentSamples {
		s.recentSamples = s.recentSamples[len(s.recentSamples)-maxRecentSamples:]
	}
}

func (s *state) masteryFor(objectID string) domain.MasteryState {
	if m, ok := s.mastery[objectID]; ok {
		return m
	}
	m := domain.MasteryState{ObjectID: objectID, FSRS: domain.NewCard()}
	s.mastery[objectID] = m
	return m
}

func (s *state) encounterStatsFor(userID, objectID string) domain.RelationshipStats {
	if rs, ok := s.encounters[objectID]; ok {
		return rs
	}
	rs := domain.NewRelationshipStats(userID, objectID)
	s.encounters[objectID] = rs
	return rs
}
