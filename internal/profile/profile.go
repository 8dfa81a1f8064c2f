package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Read when no profile exists for the user.
var ErrNotFound = errors.New("profile not found")

// Skill score keys. Placement results persist under KeyLevelTest;
// practice assessments write under their own skill key.
const (
	KeySpeaking   = "speaking"
	KeyWriting    = "writing"
	KeyListening  = "listening"
	KeyVocabulary = "vocabulary"
	KeyGrammar    = "grammar"
	KeyLevelTest  = "levelTest"
)

// Profile is the learner's persisted document.
type Profile struct {
	UserID   string
	Email    string
	Username string

	// Level is the CEFR level label (A1..C2). Empty until placement.
	Level string

	// XP is monotonically non-decreasing experience.
	XP int

	// Streak counts consecutive passing assessments.
	Streak int

	// Skills maps skill key to score 0-100.
	Skills map[string]int

	LastTestDate *time.Time
	CreatedAt    time.Time
}

// Clone returns a deep copy, so callers can hand profiles to subscribers
// without sharing the skills map.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Skills = make(map[string]int, len(p.Skills))
	for k, v := range p.Skills {
		cp.Skills[k] = v
	}
	if p.LastTestDate != nil {
		t := *p.LastTestDate
		cp.LastTestDate = &t
	}
	return &cp
}

// SkillScore returns the stored score for a skill key, zero when absent.
func (p *Profile) SkillScore(key string) int {
	if p.Skills == nil {
		return 0
	}
	return p.Skills[key]
}

// Patch is a partial profile update. Nil fields are left untouched;
// Skills entries are merged key by key, never replacing the whole map.
type Patch struct {
	Email        *string
	Username     *string
	Level        *string
	XP           *int
	Streak       *int
	Skills       map[string]int
	LastTestDate *time.Time
}

// Store is the profile persistence port. The evaluation pipeline is
// injected with a Store; tests use the in-memory one, the CLI wires the
// SQLite-backed repo.
type Store interface {
	// Read returns the user's profile or ErrNotFound.
	Read(ctx context.Context, userID string) (*Profile, error)

	// Write applies a merge-semantics upsert: absent users get a fresh
	// document, existing fields not named by the patch are preserved.
	Write(ctx context.Context, userID string, patch Patch) error

	// Subscribe registers fn to be called with a copy of the profile
	// after every successful Write for userID. The returned cancel
	// function unregisters it.
	Subscribe(userID string, fn func(Profile)) (cancel func())
}

// NewInitial returns the document shape created for a first-time user.
func NewInitial(userID, email, username string) *Profile {
	return &Profile{
		UserID:   userID,
		Email:    email,
		Username: username,
		Skills: map[string]int{
			KeySpeaking:   0,
			KeyWriting:    0,
			KeyListening:  0,
			KeyVocabulary: 0,
			KeyGrammar:    0,
			KeyLevelTest:  0,
		},
		CreatedAt: time.Now().UTC(),
	}
}
