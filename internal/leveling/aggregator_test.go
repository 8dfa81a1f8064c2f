package leveling

import (
	"context"
	"testing"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/profile"
	"github.com/keiaapp/keia/internal/scoring"
)

// evaluated builds a result set with the given correct/incorrect split.
func evaluated(correct, incorrect int) []scoring.Evaluated {
	var out []scoring.Evaluated
	for i := 0; i < correct; i++ {
		out = append(out, scoring.Evaluated{Correct: true})
	}
	for i := 0; i < incorrect; i++ {
		out = append(out, scoring.Evaluated{})
	}
	return out
}

func seedProfile(t *testing.T, store profile.Store, level string, xp, streak int, skills map[string]int) {
	t.Helper()
	patch := profile.Patch{XP: &xp, Streak: &streak, Skills: skills}
	if level != "" {
		patch.Level = &level
	}
	if err := store.Write(context.Background(), "u1", patch); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestApply_EWMASkillScore(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "B1", 0, 0, map[string]int{profile.KeyWriting: 50})

	// Perfect session on a prior 50: 50*0.7 + 100*0.3 = 65.
	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeWriting, evaluated(7, 0))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.SkillScore != 65 {
		t.Errorf("SkillScore = %d, want 65", out.SkillScore)
	}

	p, err := store.Read(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.SkillScore(profile.KeyWriting) != 65 {
		t.Errorf("persisted skill = %d, want 65", p.SkillScore(profile.KeyWriting))
	}
	if p.LastTestDate == nil {
		t.Error("LastTestDate not set")
	}
}

func TestApply_SevenQuestionSession(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "B1", 10, 2, map[string]int{profile.KeyWriting: 40})

	// 5 of 7 correct rounds to 71; 40*0.7 + 71*0.3 = 49.3 rounds to 49.
	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeWriting, evaluated(5, 2))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Score != 71 {
		t.Errorf("Score = %d, want 71", out.Score)
	}
	if out.SkillScore != 49 {
		t.Errorf("SkillScore = %d, want 49", out.SkillScore)
	}
	if out.Streak != 3 {
		t.Errorf("Streak = %d, want 3", out.Streak)
	}
	// round(71/5) = 14 XP on top of 10.
	if out.XP != 24 {
		t.Errorf("XP = %d, want 24", out.XP)
	}
	if out.LevelChanged || out.Level != B1 {
		t.Errorf("level should stay B1, got %s (changed=%v)", out.Level, out.LevelChanged)
	}
}

func TestApply_StreakBoundary(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "B1", 0, 4, nil)

	// 3 of 5 = 60: exactly passing.
	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeGrammar, evaluated(3, 2))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Streak != 5 {
		t.Errorf("Streak = %d, want 5 at exactly 60", out.Streak)
	}

	// 2 of 5 = 40: streak resets.
	out, err = NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeGrammar, evaluated(2, 3))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Streak != 0 {
		t.Errorf("Streak = %d, want 0 below 60", out.Streak)
	}
}

func TestApply_PlacementAssignsLevel(t *testing.T) {
	cases := []struct {
		correct, incorrect int
		want               Level
	}{
		{2, 8, A1},  // 20
		{3, 7, B1},  // 30
		{6, 4, B1},  // 60
		{7, 3, C1},  // 70
		{10, 0, C1}, // 100
	}
	for _, tc := range cases {
		store := profile.NewMemoryStore()
		out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypePlacement, evaluated(tc.correct, tc.incorrect))
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if out.Level != tc.want {
			t.Errorf("placement %d/10: level = %s, want %s", tc.correct, out.Level, tc.want)
		}

		p, err := store.Read(context.Background(), "u1")
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if p.Level != string(tc.want) {
			t.Errorf("persisted level = %q, want %s", p.Level, tc.want)
		}
		if _, ok := p.Skills[profile.KeyLevelTest]; !ok {
			t.Error("placement must write the levelTest skill score")
		}
	}
}

func TestApply_PracticePromotion(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "B1", 0, 0, nil)

	// 79 (rounded from 11/14) does not promote.
	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeListening, evaluated(11, 3))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Score != 79 || out.LevelChanged {
		t.Errorf("score %d should not promote (changed=%v)", out.Score, out.LevelChanged)
	}

	// 4 of 5 = 80 promotes exactly one step.
	out, err = NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeListening, evaluated(4, 1))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !out.LevelChanged || out.Level != B2 {
		t.Errorf("score 80 from B1: level = %s (changed=%v), want B2", out.Level, out.LevelChanged)
	}
}

func TestApply_NeverRegresses(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "C1", 0, 0, nil)

	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeSpeaking, evaluated(0, 7))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Level != C1 || out.LevelChanged {
		t.Errorf("a failed practice must not move the level, got %s", out.Level)
	}
}

func TestApply_C2Capped(t *testing.T) {
	store := profile.NewMemoryStore()
	seedProfile(t, store, "C2", 0, 0, nil)

	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeGrammar, evaluated(7, 0))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Level != C2 || out.LevelChanged {
		t.Errorf("C2 must cap promotions, got %s (changed=%v)", out.Level, out.LevelChanged)
	}
}

func TestApply_PreambleExcludedFromDenominator(t *testing.T) {
	store := profile.NewMemoryStore()

	results := evaluated(6, 0)
	results = append([]scoring.Evaluated{{
		Question: assessment.Question{Preamble: true},
	}}, results...)

	out, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeListening, results)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Evaluable != 6 || out.Score != 100 {
		t.Errorf("evaluable = %d score = %d, want 6 and 100", out.Evaluable, out.Score)
	}
}

func TestApply_MergePreservesUntouchedFields(t *testing.T) {
	store := profile.NewMemoryStore()
	email := "ana@example.com"
	if err := store.Write(context.Background(), "u1", profile.Patch{
		Email:  &email,
		Skills: map[string]int{profile.KeyGrammar: 55, profile.KeyWriting: 30},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeGrammar, evaluated(4, 1)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	p, err := store.Read(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if p.Email != email {
		t.Errorf("email lost on update: %q", p.Email)
	}
	if p.SkillScore(profile.KeyWriting) != 30 {
		t.Errorf("unrelated skill rewritten: %d", p.SkillScore(profile.KeyWriting))
	}
}

func TestApply_NoEvaluableQuestions(t *testing.T) {
	store := profile.NewMemoryStore()
	_, err := NewAggregator(store).Apply(context.Background(), "u1", assessment.TypeListening,
		[]scoring.Evaluated{{Question: assessment.Question{Preamble: true}}})
	if err == nil {
		t.Fatal("expected error for preamble-only result set")
	}
}
