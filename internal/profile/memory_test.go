package profile

import (
	"context"
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRead_NotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Read(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestWrite_CreatesThenMerges(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.Write(ctx, "u1", Patch{
		Level:  strPtr("B1"),
		XP:     intPtr(10),
		Skills: map[string]int{KeyWriting: 40},
	})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}

	// A later patch naming only the streak must not disturb level, XP
	// or other skill entries.
	err = s.Write(ctx, "u1", Patch{
		Streak: intPtr(3),
		Skills: map[string]int{KeyGrammar: 55},
	})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	p, err := s.Read(ctx, "u1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.Level != "B1" {
		t.Errorf("Level = %q, want B1", p.Level)
	}
	if p.XP != 10 {
		t.Errorf("XP = %d, want 10", p.XP)
	}
	if p.Streak != 3 {
		t.Errorf("Streak = %d, want 3", p.Streak)
	}
	if p.Skills[KeyWriting] != 40 {
		t.Errorf("writing score = %d, want 40 (merge must preserve it)", p.Skills[KeyWriting])
	}
	if p.Skills[KeyGrammar] != 55 {
		t.Errorf("grammar score = %d, want 55", p.Skills[KeyGrammar])
	}
}

func TestSubscribe_NotifiedOnWrite(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var got []Profile
	cancel := s.Subscribe("u1", func(p Profile) { got = append(got, p) })

	if err := s.Write(ctx, "u1", Patch{XP: intPtr(5)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(got) != 1 || got[0].XP != 5 {
		t.Fatalf("expected one notification with XP=5, got %+v", got)
	}

	cancel()
	if err := s.Write(ctx, "u1", Patch{XP: intPtr(6)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected no notification after cancel, got %d", len(got))
	}

	// Other users' writes never notify this subscription.
	s.Subscribe("u1", func(p Profile) { got = append(got, p) })
	if err := s.Write(ctx, "u2", Patch{XP: intPtr(1)}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("notified for the wrong user")
	}
}

func TestRead_ReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	s.Seed(&Profile{UserID: "u1", Skills: map[string]int{KeyWriting: 10}})

	p, err := s.Read(ctx, "u1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	p.Skills[KeyWriting] = 99

	again, _ := s.Read(ctx, "u1")
	if again.Skills[KeyWriting] != 10 {
		t.Fatal("mutating a read result leaked into the store")
	}
}
