package store

import (
	"context"
	"errors"
	"testing"

	"github.com/keiaapp/keia/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestProfileRepo_MergeUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.Read(ctx, "u1"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first write, got: %v", err)
	}

	lvl := "A1"
	xp := 14
	err := repo.Write(ctx, "u1", profile.Patch{
		Level:  &lvl,
		XP:     &xp,
		Skills: map[string]int{profile.KeyWriting: 49},
	})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}

	streak := 1
	err = repo.Write(ctx, "u1", profile.Patch{
		Streak: &streak,
		Skills: map[string]int{profile.KeyGrammar: 60},
	})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	p, err := repo.Read(ctx, "u1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.Level != "A1" || p.XP != 14 || p.Streak != 1 {
		t.Errorf("profile = level %q xp %d streak %d, want A1 14 1", p.Level, p.XP, p.Streak)
	}
	if p.Skills[profile.KeyWriting] != 49 {
		t.Errorf("writing = %d, want 49 preserved across merge", p.Skills[profile.KeyWriting])
	}
	if p.Skills[profile.KeyGrammar] != 60 {
		t.Errorf("grammar = %d, want 60", p.Skills[profile.KeyGrammar])
	}
}

func TestProfileRepo_SubscribeNotifies(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	var seen []profile.Profile
	cancel := repo.Subscribe("u1", func(p profile.Profile) { seen = append(seen, p) })
	defer cancel()

	xp := 7
	if err := repo.Write(ctx, "u1", profile.Patch{XP: &xp}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(seen) != 1 || seen[0].XP != 7 {
		t.Fatalf("expected one notification with XP=7, got %+v", seen)
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = repo.AppendAssessment(ctx, AssessmentEventData{
		SessionID:      "sess-1",
		UserID:         "u1",
		Assessment:     "writing",
		Level:          "B1",
		Phase:          2,
		Score:          71,
		NewLevel:       "B1",
		NewStreak:      1,
		TotalQuestions: 7,
		CorrectAnswers: 5,
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen",
		InputTokens: 100, OutputTokens: 400, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	recs, err := repo.QueryAssessments(ctx, "u1", QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query assessments: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].Score != 71 || recs[0].Assessment != "writing" {
		t.Errorf("record = %+v", recs[0])
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(usage) != 1 || usage[0].Purpose != "question-gen" || usage[0].Requests != 1 {
		t.Errorf("usage = %+v", usage)
	}
}
