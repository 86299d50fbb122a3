// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/stageaudit"
	"github.com/kerem-isiktasli/logos/internal/threshold"
)

// fakeRepo is an in-memory Repository for tests: no persistence beyond
// the lifetime of the test, but enough surface to exercise loadState and
// scoreResponse's write-back path.
type fakeRepo struct {
	mu sync.Mutex

	user       domain.User
	goals      []domain.Goal
	objects    map[string][]domain.LanguageObject
	mastery    map[string]domain.MasteryState
	thresholds threshold.Config

	responses    []domain.Response
	transitions  []domain.StageTransition
	encounters   []domain.ObjectEncounter
	relStats     map[string]domain.RelationshipStats
	thetaSnaps   int
}

func newFakeRepo(user domain.User, goal domain.Goal, objects []domain.LanguageObject) *fakeRepo {
	r := &fakeRepo{
		user:       user,
		goals:      []domain.Goal{goal},
		objects:    map[string][]domain.LanguageObject{goal.ID: objects},
		mastery:    make(map[string]domain.MasteryState),
		thresholds: threshold.Default(),
		relStats:   make(map[string]domain.RelationshipStats),
	}
	return r
}

func (r *fakeRepo) GetUser(ctx context.Context, userID string) (domain.User, error) {
	return r.user, nil
}

func (r *fakeRepo) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	return r.goals, nil
}

func (r *fakeRepo) ListObjects(ctx context.Context, goalID string) ([]domain.LanguageObject, error) {
	return r.objects[goalID], nil
}

func (r *fakeRepo) GetMastery(ctx context.Context, objectID string) (domain.MasteryState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.mastery[objectID]
	if !ok {
		return domain.MasteryState{}, fmt.Errorf("no mastery record for %s", objectID)
	}
	return m, nil
}

func (r *fakeRepo) UpsertMastery(ctx context.Context, m domain.MasteryState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mastery[m.ObjectID] = m
	return nil
}

func (r *fakeRepo) AppendResponse(ctx context.Context, resp domain.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, resp)
	return nil
}

func (r *fakeRepo) AppendStageTransition(ctx context.Context, t domain.StageTransition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, t)
	return nil
}

func (r *fakeRepo) UpsertEncounter(ctx context.Context, enc domain.ObjectEncounter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encounters = append(r.encounters, enc)
	return nil
}

func (r *fakeRepo) UpsertRelationshipStats(ctx context.Context, stats domain.RelationshipStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relStats[stats.ObjectID] = stats
	return nil
}

func (r *fakeRepo) ReadThresholds(ctx context.Context, userID string) (threshold.Config, error) {
	return r.thresholds, nil
}

func (r *fakeRepo) WriteThetaSnapshot(ctx context.Context, userID string, profile domain.ThetaProfile, asOf time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.thetaSnaps++
	return nil
}

// fakeTransport answers every oracle request with a deterministic prompt
// derived from the request, so tests don't depend on Template's exact
// wording.
type fakeTransport struct {
	calls int
}

func (t *fakeTransport) Generate(ctx context.Context, req oracle.Request) (oracle.Response, error) {
	t.calls++
	return oracle.Response{
		Prompt:         fmt.Sprintf("practice %s as %s", req.ObjectID, req.Type),
		ExpectedAnswer: req.ObjectID,
	}, nil
}

func testObjects() []domain.LanguageObject {
	return []domain.LanguageObject{
		{ID: "obj-1", GoalID: "goal-1", Type: domain.ObjectTypeLex, Content: "hola", Z: domain.ZVector{F: 0.9, R: 0.5, D: 0.2, M: 0.3, P: 0.1, PRAG: 0.2, SYNT: 0.1}, IRT: domain.IRTParams{A: 1, B: -1, C: 0}},
		{ID: "obj-2", GoalID: "goal-1", Type: domain.ObjectTypeSynt, Content: "estar vs ser", Z: domain.ZVector{F: 0.4, R: 0.8, D: 0.6, M: 0.2, P: 0.1, PRAG: 0.3, SYNT: 0.9}, IRT: domain.IRTParams{A: 1, B: 0.5, C: 0}},
	}
}

func newTestActor(t *testing.T, repo *fakeRepo, transport oracle.Transport) (*SessionActor, context.Context, context.CancelFunc) {
	t.Helper()
	cfg := DefaultConfig()
	oc := oracle.NewClient(transport, oracle.DefaultConfig())
	tc := NewTaskCache(cfg.TaskCacheSize, cfg.TaskCacheTTL)
	auditLog := stageaudit.NewLogger(stageaudit.NewMemoryStore(0), stageaudit.DefaultConfig())

	actor := NewSessionActor("session-1", cfg, repo, oc, tc, auditLog, StartSessionRequest{
		UserID: repo.user.ID,
		GoalID: "goal-1",
		Mode:   domain.SessionModeLearning,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go actor.Serve(ctx)
	return actor, ctx, cancel
}

func TestStartSessionBuildsQueueFromDueAndNewObjects(t *testing.T) {
	user := domain.User{ID: "user-1", Theta: domain.NewThetaProfile()}
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Domain: domain.DomainGeneral, Modalities: []domain.Modality{domain.ModalityReading}, Weight: 1}
	repo := newFakeRepo(user, goal, testObjects())

	actor, ctx, cancel := newTestActor(t, repo, &fakeTransport{})
	defer cancel()

	result, err := actor.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if len(result.Queue) == 0 {
		t.Fatal("expected a non-empty queue for two fresh objects")
	}
	if result.Queue[0].Content.Prompt == "" {
		t.Fatal("expected the first queue item's content to be resolved")
	}
}

func TestSubmitResponseAdvancesMasteryAndPersists(t *testing.T) {
	user := domain.User{ID: "user-1", Theta: domain.NewThetaProfile()}
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Domain: domain.DomainGeneral, Modalities: []domain.Modality{domain.ModalityReading}, Weight: 1}
	repo := newFakeRepo(user, goal, testObjects())

	actor, ctx, cancel := newTestActor(t, repo, &fakeTransport{})
	defer cancel()

	if _, err := actor.StartSession(ctx); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	result, err := actor.SubmitResponse(ctx, SubmitResponseRequest{
		ObjectID:        "obj-1",
		TaskType:        "recognition",
		Modality:        domain.ModalityReading,
		Category:        domain.TaskCategoryRecognition,
		InteractionKind: domain.InteractionInterpretation,
		Correct:         true,
		ResponseTimeMs:  1200,
		ResponseContent: "hola",
		ExpectedContent: "hola",
	})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if result.Response.ID == "" {
		t.Fatal("expected a generated response ID")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.responses) != 1 {
		t.Fatalf("expected 1 persisted response, got %d", len(repo.responses))
	}
	if len(repo.encounters) != 1 {
		t.Fatalf("expected 1 persisted encounter, got %d", len(repo.encounters))
	}
	m, ok := repo.mastery["obj-1"]
	if !ok {
		t.Fatal("expected mastery record for obj-1 to be upserted")
	}
	if m.ExposureCount != 1 {
		t.Fatalf("expected exposure count 1, got %d", m.ExposureCount)
	}
}

func TestCommandsProcessInSubmissionOrder(t *testing.T) {
	user := domain.User{ID: "user-1", Theta: domain.NewThetaProfile()}
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Domain: domain.DomainGeneral, Modalities: []domain.Modality{domain.ModalityReading}, Weight: 1}
	repo := newFakeRepo(user, goal, testObjects())

	actor, ctx, cancel := newTestActor(t, repo, &fakeTransport{})
	defer cancel()

	if _, err := actor.StartSession(ctx); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	const n = 10
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := actor.SubmitResponse(ctx, SubmitResponseRequest{
				ObjectID:        "obj-1",
				TaskType:        "recognition",
				Category:        domain.TaskCategoryRecognition,
				InteractionKind: domain.InteractionInterpretation,
				Correct:         i%2 == 0,
				ResponseTimeMs:  1000,
			})
			errs <- err
		}(i)
	}
	for i := 0; i < n; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("SubmitResponse[%d]: %v", i, err)
		}
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.responses) != n {
		t.Fatalf("expected %d persisted responses, got %d", n, len(repo.responses))
	}
	if m := repo.mastery["obj-1"]; m.ExposureCount != n {
		t.Fatalf("expected exposure count %d, got %d", n, m.ExposureCount)
	}
}

func TestEndSessionStopsAcceptingCommands(t *testing.T) {
	user := domain.User{ID: "user-1", Theta: domain.NewThetaProfile()}
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Domain: domain.DomainGeneral, Modalities: []domain.Modality{domain.ModalityReading}, Weight: 1}
	repo := newFakeRepo(user, goal, testObjects())

	actor, ctx, cancel := newTestActor(t, repo, &fakeTransport{})

	if _, err := actor.StartSession(ctx); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := actor.EndSession(ctx); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if repo.thetaSnaps != 1 {
		t.Fatalf("expected 1 theta snapshot write, got %d", repo.thetaSnaps)
	}

	cancel()
	time.Sleep(10 * time.Millisecond)

	if _, err := actor.SubmitResponse(context.Background(), SubmitResponseRequest{ObjectID: "obj-1"}); err == nil {
		t.Fatal("expected SubmitResponse after shutdown to fail")
	}
}

func TestManagerStartSubmitEndLifecycle(t *testing.T) {
	user := domain.User{ID: "user-1", Theta: domain.NewThetaProfile()}
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Domain: domain.DomainGeneral, Modalities: []domain.Modality{domain.ModalityReading}, Weight: 1}
	repo := newFakeRepo(user, goal, testObjects())

	cfg := DefaultConfig()
	oc := oracle.NewClient(&fakeTransport{}, oracle.DefaultConfig())
	auditLog := stageaudit.NewLogger(stageaudit.NewMemoryStore(0), stageaudit.DefaultConfig())
	mgr := NewManager(cfg, repo, oc, auditLog, nil)

	ctx := context.Background()
	started, err := mgr.Start(ctx, StartSessionRequest{UserID: "user-1", GoalID: "goal-1", Mode: domain.SessionModeLearning})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if mgr.Active() != 1 {
		t.Fatalf("expected 1 active session, got %d", mgr.Active())
	}

	if _, err := mgr.Submit(ctx, started.Session.ID, SubmitResponseRequest{
		ObjectID:        "obj-1",
		Category:        domain.TaskCategoryRecognition,
		InteractionKind: domain.InteractionInterpretation,
		Correct:         true,
		ResponseTimeMs:  900,
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := mgr.End(ctx, started.Session.ID); err != nil {
		t.Fatalf("End: %v", err)
	}
	if mgr.Active() != 0 {
		t.Fatalf("expected 0 active sessions after End, got %d", mgr.Active())
	}
}
