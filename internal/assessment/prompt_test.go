package assessment

import (
	"strings"
	"testing"
)

func TestSelectPrompt_Counts(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		phase Phase
		want  int
	}{
		{"placement", TypePlacement, 0, 10},
		{"writing early", TypeWriting, 1, 7},
		{"writing challenge", TypeWriting, 3, 7},
		{"speaking", TypeSpeaking, 2, 7},
		{"listening short", TypeListening, 1, 7},
		{"listening story", TypeListening, 3, 7},
		{"grammar early", TypeGrammar, 2, 7},
		{"grammar diagnosis", TypeGrammar, 3, 7},
		{"vocabulary", TypeVocabulary, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := SelectPrompt(tt.typ, "B1", tt.phase)
			if spec.Count != tt.want {
				t.Errorf("Count = %d, want %d", spec.Count, tt.want)
			}
			if spec.System == "" || spec.User == "" {
				t.Error("instruction pair must be non-empty")
			}
		})
	}
}

func TestSelectPrompt_LevelInterpolated(t *testing.T) {
	for _, typ := range []Type{TypeWriting, TypeSpeaking, TypeListening, TypeGrammar, TypeVocabulary} {
		spec := SelectPrompt(typ, "C1", 1)
		if !strings.Contains(spec.System, "C1") && !strings.Contains(spec.User, "C1") {
			t.Errorf("%s prompt does not mention the target level", typ)
		}
	}
}

func TestSelectPrompt_PlacementIsAllFreeText(t *testing.T) {
	spec := SelectPrompt(TypePlacement, "", 0)
	if !strings.Contains(spec.User, "'write'") {
		t.Error("placement must request short-answer questions only")
	}
	if spec.Count != PlacementCount {
		t.Errorf("Count = %d, want %d", spec.Count, PlacementCount)
	}
}

func TestSelectPrompt_ListeningStoryPhase(t *testing.T) {
	spec := SelectPrompt(TypeListening, "B1", 3)
	if !strings.Contains(spec.User, "FIRST array entry") {
		t.Error("story phase must place the passage in the first entry")
	}
	if !strings.Contains(spec.User, "6 multiple-choice") {
		t.Error("story phase must request 6 scored questions")
	}
}

func TestProfileKey(t *testing.T) {
	if got := TypePlacement.ProfileKey(); got != "levelTest" {
		t.Errorf("placement key = %q, want levelTest", got)
	}
	if got := TypeWriting.ProfileKey(); got != "writing" {
		t.Errorf("writing key = %q, want writing", got)
	}
}
