package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/leveling"
	"github.com/keiaapp/keia/internal/llm"
	"github.com/keiaapp/keia/internal/profile"
	"github.com/keiaapp/keia/internal/scoring"
	"github.com/keiaapp/keia/internal/store"
)

// fakeEvents records appended assessment events.
type fakeEvents struct {
	assessments []store.AssessmentEventData
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }

func (f *fakeEvents) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	f.assessments = append(f.assessments, data)
	return nil
}

func (f *fakeEvents) QueryAssessments(context.Context, string, store.QueryOpts) ([]store.AssessmentRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsage(context.Context) ([]store.LLMUsageStats, error) { return nil, nil }

// writeSet builds a generation payload of n free-text questions.
func writeSet(n int) json.RawMessage {
	items := make([]map[string]any, n)
	for i := range items {
		items[i] = map[string]any{
			"id":             fmt.Sprintf("q%d", i+1),
			"type":           "write",
			"question":       fmt.Sprintf("Translate sentence %d", i+1),
			"correct_answer": fmt.Sprintf("answer %d", i+1),
		}
	}
	raw, _ := json.Marshal(items)
	return raw
}

// grading builds a judgment payload marking the first correct ids
// correct and the rest incorrect.
func grading(total, correct int) json.RawMessage {
	items := make([]map[string]any, total)
	for i := range items {
		items[i] = map[string]any{
			"id":         fmt.Sprintf("q%d", i+1),
			"is_correct": i < correct,
			"feedback":   "noted",
		}
	}
	raw, _ := json.Marshal(items)
	return raw
}

func newController(t *testing.T, cfg Config, responses ...llm.MockResponse) (*Controller, profile.Store, *fakeEvents) {
	t.Helper()

	client := content.NewClient(llm.NewMockProvider(responses...), content.DefaultConfig())
	profiles := profile.NewMemoryStore()
	events := &fakeEvents{}

	cfg.Generator = assessment.NewGenerator(client)
	cfg.Scorer = scoring.NewScorer(client)
	cfg.Aggregator = leveling.NewAggregator(profiles)
	cfg.Profiles = profiles
	cfg.Events = events
	if cfg.UserID == "" {
		cfg.UserID = "u1"
	}

	return New(cfg), profiles, events
}

func seed(t *testing.T, profiles profile.Store, level string, xp, streak int, skills map[string]int) {
	t.Helper()
	patch := profile.Patch{Level: &level, XP: &xp, Streak: &streak, Skills: skills}
	if err := profiles.Write(context.Background(), "u1", patch); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestSession_EndToEndWriting(t *testing.T) {
	ctrl, profiles, events := newController(t,
		Config{Type: assessment.TypeWriting, PracticePhase: 2},
		llm.MockResponse{Content: writeSet(7)},
		llm.MockResponse{Content: grading(7, 5)},
	)
	seed(t, profiles, "B1", 10, 2, map[string]int{profile.KeyWriting: 40})

	ctx := context.Background()
	if err := ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if ctrl.Phase() != PhasePresenting {
		t.Fatalf("phase after Start = %s", ctrl.Phase())
	}

	for {
		q, i, err := ctrl.Current()
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if q.ID != fmt.Sprintf("q%d", i+1) {
			t.Fatalf("question order broken at %d: %s", i, q.ID)
		}
		if err := ctrl.Answer("my answer " + q.ID); err != nil {
			t.Fatalf("Answer: %v", err)
		}
		done, err := ctrl.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if done {
			break
		}
	}
	if ctrl.Phase() != PhaseEvaluating {
		t.Fatalf("phase after last Advance = %s", ctrl.Phase())
	}

	result, err := ctrl.Finish(ctx)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if ctrl.Phase() != PhaseDone {
		t.Errorf("phase after Finish = %s", ctrl.Phase())
	}

	// 5 of 7 rounds to 71; prior skill 40 folds to 49; streak increments.
	if result.Score != 71 {
		t.Errorf("Score = %d, want 71", result.Score)
	}
	if result.SkillScore != 49 {
		t.Errorf("SkillScore = %d, want 49", result.SkillScore)
	}
	if result.Streak != 3 {
		t.Errorf("Streak = %d, want 3", result.Streak)
	}
	if len(result.Feedback) != 7 {
		t.Errorf("Feedback entries = %d, want 7", len(result.Feedback))
	}

	p, err := profiles.Read(ctx, "u1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.SkillScore(profile.KeyWriting) != 49 || p.Streak != 3 {
		t.Errorf("persisted skill=%d streak=%d", p.SkillScore(profile.KeyWriting), p.Streak)
	}

	if len(events.assessments) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(events.assessments))
	}
	ev := events.assessments[0]
	if ev.SessionID != ctrl.ID() || ev.Score != 71 || ev.Assessment != "writing" {
		t.Errorf("event = %+v", ev)
	}
}

func TestSession_FinishRunsOnce(t *testing.T) {
	ctrl, _, _ := newController(t,
		Config{Type: assessment.TypeGrammar, Level: "B1", PracticePhase: 1},
		llm.MockResponse{Content: writeSet(2)},
		llm.MockResponse{Content: grading(2, 2)},
	)

	ctx := context.Background()
	if err := ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := ctrl.Answer("x"); err != nil {
			t.Fatalf("Answer: %v", err)
		}
		if _, err := ctrl.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if _, err := ctrl.Finish(ctx); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if _, err := ctrl.Finish(ctx); !errors.Is(err, ErrAlreadyEvaluated) {
		t.Fatalf("second Finish = %v, want ErrAlreadyEvaluated", err)
	}
}

func TestSession_AdvanceRequiresAnswer(t *testing.T) {
	ctrl, _, _ := newController(t,
		Config{Type: assessment.TypeGrammar, Level: "A2", PracticePhase: 1},
		llm.MockResponse{Content: writeSet(2)},
	)

	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := ctrl.Advance(); !errors.Is(err, ErrAnswerRequired) {
		t.Fatalf("Advance without answer = %v, want ErrAnswerRequired", err)
	}
	if err := ctrl.Answer("   "); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := ctrl.Advance(); !errors.Is(err, ErrAnswerRequired) {
		t.Fatalf("Advance with whitespace answer = %v, want ErrAnswerRequired", err)
	}

	// Answers are overwritable before advancing.
	if err := ctrl.Answer("first"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if err := ctrl.Answer("second"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
}

func TestSession_PreambleAutoAdvances(t *testing.T) {
	set := json.RawMessage(`[
		{"id": "story", "type": "mc", "question": "Maria moved to Dublin last year...", "options": ["Continue"], "correct_answer": ""},
		{"id": "q1", "type": "mc", "question": "Where did Maria move?", "options": ["Dublin", "Madrid"], "correct_answer": "Dublin"},
		{"id": "q2", "type": "mc", "question": "When did she move?", "options": ["Last year", "Last week"], "correct_answer": "Last year"}
	]`)

	ctrl, _, _ := newController(t,
		Config{Type: assessment.TypeListening, Level: "B2", PracticePhase: 3},
		llm.MockResponse{Content: set},
	)

	if err := ctrl.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	q, _, err := ctrl.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !q.Preamble {
		t.Fatal("first listening item should be the story preamble")
	}

	// No answer needed on the preamble.
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance over preamble: %v", err)
	}

	q, _, err = ctrl.Current()
	if err != nil || q.ID != "q1" {
		t.Fatalf("after preamble: %s, %v", q.ID, err)
	}
}

func TestSession_GenerationFailure(t *testing.T) {
	ctrl, profiles, _ := newController(t,
		Config{Type: assessment.TypePlacement},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	err := ctrl.Start(context.Background())
	if !errors.Is(err, content.ErrContentUnavailable) {
		t.Fatalf("Start = %v, want content unavailable", err)
	}
	if ctrl.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", ctrl.Phase())
	}
	if ctrl.Err() == nil {
		t.Error("Err() should carry the cause")
	}

	// Loading failure leaves no trace in the store.
	if _, err := profiles.Read(context.Background(), "u1"); !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("profile should not exist after a failed load, got %v", err)
	}
}

func TestSession_GradingFailureEntersError(t *testing.T) {
	ctrl, _, _ := newController(t,
		Config{Type: assessment.TypeWriting, Level: "B1", PracticePhase: 1},
		llm.MockResponse{Content: writeSet(2)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)

	ctx := context.Background()
	if err := ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := ctrl.Answer("x"); err != nil {
			t.Fatalf("Answer: %v", err)
		}
		if _, err := ctrl.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if _, err := ctrl.Finish(ctx); err == nil {
		t.Fatal("Finish should fail when grading fails")
	}
	if ctrl.Phase() != PhaseError {
		t.Errorf("phase = %s, want error", ctrl.Phase())
	}

	// The latch holds even after a failed evaluation.
	if _, err := ctrl.Finish(ctx); !errors.Is(err, ErrAlreadyEvaluated) {
		t.Fatalf("re-Finish after failure = %v, want ErrAlreadyEvaluated", err)
	}
}

func TestSession_AbandonmentPersistsNothing(t *testing.T) {
	ctrl, profiles, events := newController(t,
		Config{Type: assessment.TypeGrammar, Level: "B1", PracticePhase: 1},
		llm.MockResponse{Content: writeSet(3)},
	)

	ctx := context.Background()
	if err := ctrl.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := ctrl.Answer("partial"); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := ctrl.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	// Walk away mid-session.

	if _, err := profiles.Read(ctx, "u1"); !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("abandoned session wrote a profile: %v", err)
	}
	if len(events.assessments) != 0 {
		t.Errorf("abandoned session wrote %d events", len(events.assessments))
	}
}
