package assessment

import "github.com/keiaapp/keia/internal/profile"

// Kind is how a question is answered.
type Kind string

const (
	// KindMultipleChoice is answered by picking one of the options;
	// scored locally by exact match.
	KindMultipleChoice Kind = "mc"

	// KindFreeText is answered with typed text; scored by the remote
	// grading call.
	KindFreeText Kind = "write"
)

// Type identifies what kind of assessment a session runs.
type Type string

const (
	TypePlacement  Type = "placement"
	TypeWriting    Type = "writing"
	TypeSpeaking   Type = "speaking"
	TypeListening  Type = "listening"
	TypeGrammar    Type = "grammar"
	TypeVocabulary Type = "vocabulary"
)

// Types lists all assessment types.
var Types = []Type{
	TypePlacement, TypeWriting, TypeSpeaking,
	TypeListening, TypeGrammar, TypeVocabulary,
}

// Valid reports whether t names a known assessment type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Placement reports whether t is the diagnostic placement assessment.
func (t Type) Placement() bool {
	return t == TypePlacement
}

// ProfileKey returns the skill-score key this assessment writes under.
// Placement results persist under the levelTest key.
func (t Type) ProfileKey() string {
	if t == TypePlacement {
		return profile.KeyLevelTest
	}
	return string(t)
}

// Phase is the practice difficulty phase within a level, 1 through 3.
// Placement has no phase.
type Phase int

// Question is one generated assessment item. Immutable once generated.
type Question struct {
	// ID is unique within the session; grading results correlate by it.
	ID string

	Kind   Kind
	Prompt string

	// Options is present only for multiple choice.
	Options []string

	// Answer is the expected answer or phrase.
	Answer string

	// Preamble marks a non-scored lead-in item used to present shared
	// context (the listening comprehension story). It is excluded from
	// scoring and from the evaluable-question denominator.
	Preamble bool
}

// Answered reports whether the given raw answer is non-empty after
// trimming.
func Answered(raw string) bool {
	for _, r := range raw {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
