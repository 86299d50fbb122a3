// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"context"
	"fmt"
	"time"

	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/encountergraph"
	"github.com/kerem-isiktasli/logos/internal/fsrs"
	"github.com/kerem-isiktasli/logos/internal/irt"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/priority"
	"github.com/kerem-isiktasli/logos/internal/stage"
	"github.com/kerem-isiktasli/logos/internal/stageaudit"
	"github.com/kerem-isiktasli/logos/internal/timing"
	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// loadState pulls everything a new session needs from the repository:
// the user, the goal, its objects, each object's current mastery record,
// and the user's stage-transition thresholds.
func loadState(ctx context.Context, repo Repository, req StartSessionRequest) (*state, error) {
	user, err := repo.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", req.UserID, err)
	}

	goals, err := repo.ListGoals(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("list goals for %s: %w", req.UserID, err)
	}
	var goal domain.Goal
	found := false
	for _, g := range goals {
		if g.ID == req.GoalID {
			goal, found = g, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("goal %s not found for user %s", req.GoalID, req.UserID)
	}

	objs, err := repo.ListObjects(ctx, req.GoalID)
	if err != nil {
		return nil, fmt.Errorf("list objects for goal %s: %w", req.GoalID, err)
	}

	thresholds, err := repo.ReadThresholds(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("read thresholds for %s: %w", req.UserID, err)
	}

	s := &state{
		user:       user,
		goal:       goal,
		thresholds: thresholds,
		objects:    make(map[string]domain.LanguageObject, len(objs)),
		mastery:    make(map[string]domain.MasteryState, len(objs)),
		encounters: make(map[string]domain.RelationshipStats, len(objs)),
		bottleneck: bottleneck.NewTracker(50),
		session: domain.Session{
			UserID:    req.UserID,
			GoalID:    req.GoalID,
			Mode:      req.Mode,
			StartedAt: time.Now(),
		},
	}

	for _, o := range objs {
		s.objects[o.ID] = o
		m, err := repo.GetMastery(ctx, o.ID)
		if err != nil {
			m = domain.MasteryState{ObjectID: o.ID, FSRS: domain.NewCard()}
		}
		s.mastery[o.ID] = m
	}

	return s, nil
}

// candidateScore computes a priority.QueueCandidate for one object,
// applying the bottleneck boost when the object's component is the
// session's current primary bottleneck.
func candidateScore(cfg Config, obj domain.LanguageObject, m domain.MasteryState, report bottleneck.Report, now time.Time) priority.QueueCandidate {
	in := priority.Inputs{
		Stage:           m.Stage,
		Frequency:       obj.Z.F,
		RelationalDensity: obj.Z.R,
		Engagement:      obj.Z.PRAG,
		BaseIRTCost:     (obj.IRT.B + 4) / 8,
		ExposurePenalty: 0,
		RecencyBonus:    0,
		IsPrimaryBottleneck: report.HasPrimary && report.PrimaryComponent == componentForObjectType(obj.Type),
	}

	nextReview := now
	if m.FSRS.NextReview != nil {
		nextReview = *m.FSRS.NextReview
	}

	return priority.QueueCandidate{
		ObjectID:    obj.ID,
		Score:       priority.Score(cfg.Priority, in),
		NextReview:  nextReview,
		RankedTasks: zvector.RankTasks(cfg.Affinity, obj.Z, m.Stage),
	}
}

// buildQueue recomputes every object's priority score (State->Priority
// layer), assembles the variety-capped assignment order, and resolves
// each assignment against the content oracle or its cache (Task spec
// layer).
func buildQueue(ctx context.Context, s *state, cfg Config, oc *oracle.Client, tc *TaskCache, size int) ([]QueueItem, error) {
	if size <= 0 {
		size = cfg.SessionSize
	}

	report := bottleneck.Detect(s.bottleneck, cfg.Bottleneck)
	now := time.Now()

	var due, fresh []priority.QueueCandidate
	for _, obj := range s.objects {
		m := s.mastery[obj.ID]
		c := candidateScore(cfg, obj, m, report, now)
		if m.FSRS.State == domain.CardStateNew {
			fresh = append(fresh, c)
		} else if !c.NextReview.After(now) {
			due = append(due, c)
		}
	}

	assignments := priority.BuildQueue(due, fresh, size, cfg.VarietyCap)

	items := make([]QueueItem, 0, len(assignments))
	for _, a := range assignments {
		obj := s.objects[a.ObjectID]
		m := s.mastery[a.ObjectID]
		cue := stage.RecommendCueLevel(m.CueAssistedAccuracy, m.CueFreeAccuracy, m.ExposureCount)

		resp, err := resolveTask(ctx, oc, tc, cfg, obj, a.Task, cue, m.Stage)
		if err != nil {
			return nil, fmt.Errorf("resolve task for %s: %w", a.ObjectID, err)
		}
		items = append(items, QueueItem{ObjectID: a.ObjectID, Task: a.Task, CueLevel: cue, Content: resp})
	}
	return items, nil
}

// resolveTask returns a cached oracle response if one is still fresh,
// otherwise queries the oracle (bounded by cfg.OracleTimeout) and caches
// the result.
func resolveTask(ctx context.Context, oc *oracle.Client, tc *TaskCache, cfg Config, obj domain.LanguageObject, task zvector.TaskType, cue stage.CueLevel, s domain.Stage) (oracle.Response, error) {
	format := string(zvector.SelectModality(obj.Z))
	if cached, ok := tc.Get(obj.ID, task, format); ok {
		return cached, nil
	}

	req := oracle.Request{
		ObjectID:         obj.ID,
		Type:             task,
		Format:           format,
		Modality:         zvector.SelectModality(obj.Z),
		CueLevel:         cue,
		TargetDifficulty: obj.IRT.B,
	}

	octx, cancel := context.WithTimeout(ctx, cfg.OracleTimeout)
	defer cancel()

	result := oc.Generate(octx, req, s)
	tc.Put(obj.ID, task, format, result.Response)
	return result.Response, nil
}

// accuracyEMA is the smoothing constant used to fold one response's
// correctness into the running cue-free/cue-assisted accuracy.
const accuracyEMA = 0.2

func updateAccuracy(current float64, correct bool, first bool) float64 {
	observed := 0.0
	if correct {
		observed = 1.0
	}
	if first {
		return observed
	}
	return current + accuracyEMA*(observed-current)
}

// scoreResponse runs the Scoring->Update layer for one submitted
// response: timing classification, FSRS review, θ update, stage
// transition check, bottleneck tracking, and encounter-graph update.
// Persistence (repo writes, the stage-audit log) happens here too, so
// that by the time this function returns the response is durable.
func scoreResponse(ctx context.Context, s *state, cfg Config, repo Repository, auditLog *stageaudit.Logger, req SubmitResponseRequest) (SubmitResponseResult, error) {
	now := time.Now()
	obj, ok := s.objects[req.ObjectID]
	if !ok {
		return SubmitResponseResult{}, fmt.Errorf("unknown object %s", req.ObjectID)
	}
	m := s.masteryFor(req.ObjectID)
	firstExposure := m.ExposureCount == 0

	class := timing.Classify(cfg.Timing, req.ResponseTimeMs, req.Category, m.Stage, len([]rune(req.ExpectedContent)))
	preAutomatic := m.Stage < domain.StageAutomatic
	rating := timing.RecommendRating(class, req.Correct, preAutomatic)

	review := fsrs.ReviewCard(cfg.FSRS, m.FSRS, rating, now)
	m.FSRS = review.Card
	m.ExposureCount++
	if rating == fsrs.Again {
		m.AgainStreak++
	} else {
		m.AgainStreak = 0
	}
	if req.CueLevel == 0 {
		m.CueFreeAccuracy = updateAccuracy(m.CueFreeAccuracy, req.Correct, firstExposure)
	} else {
		m.CueAssistedAccuracy = updateAccuracy(m.CueAssistedAccuracy, req.Correct, firstExposure)
	}

	newStage, promoted := stage.Evaluate(s.thresholds, m.Stage, stage.Metrics{
		CueFreeAccuracy:     m.CueFreeAccuracy,
		CueAssistedAccuracy: m.CueAssistedAccuracy,
		Stability:           m.FSRS.Stability,
		ExposureCount:       m.ExposureCount,
	})
	regressed := false
	if !promoted {
		newStage, regressed = stage.EvaluateRegression(s.thresholds, m.Stage, m.AgainStreak)
	}
	stageChanged := promoted || regressed

	var transition domain.StageTransition
	if stageChanged {
		transition = domain.StageTransition{
			ID:                  generateID(),
			ObjectID:            req.ObjectID,
			FromStage:           m.Stage,
			ToStage:             newStage,
			Trigger:             "response",
			Timestamp:           now,
			CueFreeAccuracy:     m.CueFreeAccuracy,
			CueAssistedAccuracy: m.CueAssistedAccuracy,
			Stability:           m.FSRS.Stability,
			ExposureCount:       m.ExposureCount,
			ScaffoldingGap:      m.ScaffoldingGap(),
		}
		m.Stage = newStage
		if err := repo.AppendStageTransition(ctx, transition); err != nil {
			return SubmitResponseResult{}, fmt.Errorf("append stage transition: %w", err)
		}
		if auditLog != nil {
			auditLog.Record(transition)
		}
	}

	component := componentForObjectType(obj.Type)
	s.bottleneck.Record(bottleneck.Outcome{
		ResponseID:   req.ObjectID,
		Component:    component,
		Correct:      req.Correct,
		ErrorPattern: errorPattern(req),
	})
	report := bottleneck.Detect(s.bottleneck, cfg.Bottleneck)
	m.Priority = priority.Score(cfg.Priority, priority.Inputs{
		Stage:               m.Stage,
		Frequency:            obj.Z.F,
		RelationalDensity:    obj.Z.R,
		Engagement:           obj.Z.PRAG,
		BaseIRTCost:          (obj.IRT.B + 4) / 8,
		IsPrimaryBottleneck:  report.HasPrimary && report.PrimaryComponent == component,
	})
	s.mastery[req.ObjectID] = m

	s.recordSample(timing.Sample{ResponseTimeMs: req.ResponseTimeMs, Correct: req.Correct})
	flags := timing.DetectSuspicious(s.recentSamples)

	updateTheta(s, cfg, obj, req.Correct, component)

	enc := domain.ObjectEncounter{
		ID:             generateID(),
		UserID:         s.user.ID,
		ObjectID:       req.ObjectID,
		Category:       req.InteractionKind,
		Modality:       req.Modality,
		Domain:         s.goal.Domain,
		Theta:          s.user.Theta.Global.Theta,
		Difficulty:     obj.IRT.B,
		Correct:        req.Correct,
		ResponseTimeMs: req.ResponseTimeMs,
		OccurredAt:     now,
	}
	stats := s.encounterStatsFor(s.user.ID, req.ObjectID)
	encountergraph.Update(&stats, enc)
	s.encounters[req.ObjectID] = stats

	response := domain.Response{
		ID:              generateID(),
		SessionID:       s.session.ID,
		ObjectID:        req.ObjectID,
		TaskType:        string(req.TaskType),
		Modality:        req.Modality,
		Category:        req.Category,
		Correct:         req.Correct,
		ResponseTimeMs:  req.ResponseTimeMs,
		CueLevel:        req.CueLevel,
		ResponseContent: req.ResponseContent,
		ExpectedContent: req.ExpectedContent,
		CreatedAt:       now,
	}

	if err := repo.AppendResponse(ctx, response); err != nil {
		return SubmitResponseResult{}, fmt.Errorf("append response: %w", err)
	}
	if err := repo.UpsertMastery(ctx, m); err != nil {
		return SubmitResponseResult{}, fmt.Errorf("upsert mastery: %w", err)
	}
	if err := repo.UpsertEncounter(ctx, enc); err != nil {
		return SubmitResponseResult{}, fmt.Errorf("upsert encounter: %w", err)
	}
	if err := repo.UpsertRelationshipStats(ctx, stats); err != nil {
		return SubmitResponseResult{}, fmt.Errorf("upsert relationship stats: %w", err)
	}

	s.session.ItemsPracticed++
	s.session.ResponseCount++
	if req.Correct {
		s.session.CorrectCount++
	}
	if stageChanged {
		s.session.StageTransitions++
	}

	return SubmitResponseResult{
		Response:          response,
		NewStage:          m.Stage,
		StageChanged:      stageChanged,
		Regressed:         regressed,
		SuspiciousFlags:   flags,
		PrimaryBottleneck: report.PrimaryComponent,
		HasBottleneck:     report.HasPrimary,
	}, nil
}

// updateTheta folds one response into the user's global and
// per-component ability estimates via a sequential EAP update: the
// current estimate becomes the prior for a one-observation posterior,
// since responses arrive one at a time rather than as a batch.
func updateTheta(s *state, cfg Config, obj domain.LanguageObject, correct bool, component domain.Component) {
	obs := []irt.Observation{{Item: obj.IRT, Correct: correct}}

	globalCfg := cfg.Estimator
	globalCfg.PriorMean = s.user.Theta.Global.Theta
	globalCfg.PriorSD = s.user.Theta.Global.SE
	globalResult := irt.EAP(obs, globalCfg)
	s.user.Theta.Global = domain.Ability{Theta: domain.ClampTheta(globalResult.Theta), SE: globalResult.SE}

	compAbility := s.user.Theta.ByComponent[component]
	compCfg := cfg.Estimator
	compCfg.PriorMean = compAbility.Theta
	compCfg.PriorSD = compAbility.SE
	if compCfg.PriorSD <= 0 {
		compCfg.PriorSD = 1
	}
	compResult := irt.EAP(obs, compCfg)
	s.user.Theta.ByComponent[component] = domain.Ability{Theta: domain.ClampTheta(compResult.Theta), SE: compResult.SE}
}

func errorPattern(req SubmitResponseRequest) string {
	if req.Correct {
		return ""
	}
	return string(req.TaskType)
}
