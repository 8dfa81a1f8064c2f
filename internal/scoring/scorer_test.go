package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

func newScorer(responses ...llm.MockResponse) (*Scorer, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	client := content.NewClient(mock, content.DefaultConfig())
	return NewScorer(client), mock
}

func mcQuestion(id, answer string) assessment.Question {
	return assessment.Question{
		ID:      id,
		Kind:    assessment.KindMultipleChoice,
		Prompt:  "Pick one",
		Options: []string{"go", "went", "gone"},
		Answer:  answer,
	}
}

func writeQuestion(id string) assessment.Question {
	return assessment.Question{
		ID:     id,
		Kind:   assessment.KindFreeText,
		Prompt: "Translate: ayer fui al mercado",
		Answer: "Yesterday I went to the market",
	}
}

func TestScore_MultipleChoiceLocal(t *testing.T) {
	s, mock := newScorer()

	questions := []assessment.Question{
		mcQuestion("q1", "went"),
		mcQuestion("q2", "went"),
		mcQuestion("q3", "went"),
	}
	answers := []string{"  WENT ", "gone", ""}

	results, err := s.Score(context.Background(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if !results[0].Correct {
		t.Error("trimmed case-insensitive match should be correct")
	}
	if results[1].Correct {
		t.Error("wrong option marked correct")
	}
	if !strings.Contains(results[1].Feedback, "went") {
		t.Errorf("feedback should name the correct answer, got %q", results[1].Feedback)
	}
	if results[2].Correct || results[2].Feedback != NotAnsweredFeedback {
		t.Errorf("blank answer: got correct=%v feedback=%q", results[2].Correct, results[2].Feedback)
	}
	if mock.CallCount() != 0 {
		t.Errorf("multiple choice scoring made %d provider calls", mock.CallCount())
	}
}

func TestScore_FreeTextBatchGrading(t *testing.T) {
	s, mock := newScorer(llm.MockResponse{Content: json.RawMessage(`[
		{"id": "w1", "is_correct": true, "feedback": "Well done."},
		{"id": "w2", "is_correct": false, "feedback": "Wrong tense."}
	]`)})

	questions := []assessment.Question{
		writeQuestion("w1"),
		writeQuestion("w2"),
		writeQuestion("w3"),
	}
	answers := []string{"Yesterday I went to the market", "Yesterday I go to the market", "   "}

	results, err := s.Score(context.Background(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if !results[0].Correct || results[0].Feedback != "Well done." {
		t.Errorf("w1: got correct=%v feedback=%q", results[0].Correct, results[0].Feedback)
	}
	if results[1].Correct || results[1].Feedback != "Wrong tense." {
		t.Errorf("w2: got correct=%v feedback=%q", results[1].Correct, results[1].Feedback)
	}
	if results[2].Feedback != NotAnsweredFeedback {
		t.Errorf("blank free-text answer should not be sent for grading, got %q", results[2].Feedback)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected one batch grading call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != assessment.GradingSchema.Name {
		t.Error("grading schema not forwarded")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, `"w1"`) || !strings.Contains(user, `"w2"`) {
		t.Errorf("payload missing answered items: %q", user)
	}
	if strings.Contains(user, `"w3"`) {
		t.Error("unanswered item leaked into grading payload")
	}
}

func TestScore_MissingJudgmentMarksIncorrect(t *testing.T) {
	s, _ := newScorer(llm.MockResponse{Content: json.RawMessage(`[
		{"id": "w1", "is_correct": true, "feedback": "Good."}
	]`)})

	questions := []assessment.Question{writeQuestion("w1"), writeQuestion("w2")}
	answers := []string{"one", "two"}

	results, err := s.Score(context.Background(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if !results[0].Correct {
		t.Error("judged item should keep its judgment")
	}
	if results[1].Correct {
		t.Error("unjudged item must not count as correct")
	}
	if results[1].Feedback == "" {
		t.Error("unjudged item should carry fallback feedback")
	}
}

func TestScore_GradingFailureFailsEvaluation(t *testing.T) {
	s, _ := newScorer(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	questions := []assessment.Question{writeQuestion("w1")}
	answers := []string{"attempt"}

	_, err := s.Score(context.Background(), questions, answers)
	if !errors.Is(err, content.ErrContentUnavailable) {
		t.Fatalf("expected content unavailable, got %v", err)
	}
}

func TestScore_PreambleExcluded(t *testing.T) {
	s, mock := newScorer()

	questions := []assessment.Question{
		{ID: "p0", Kind: assessment.KindMultipleChoice, Prompt: "A short story...", Options: []string{"Continue"}, Preamble: true},
		mcQuestion("q1", "went"),
	}
	answers := []string{"Continue", "went"}

	results, err := s.Score(context.Background(), questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if results[0].Correct {
		t.Error("preamble must never be marked correct")
	}
	if got := EvaluableCount(results); got != 1 {
		t.Errorf("EvaluableCount = %d, want 1", got)
	}
	if got := CorrectCount(results); got != 1 {
		t.Errorf("CorrectCount = %d, want 1", got)
	}
	if mock.CallCount() != 0 {
		t.Error("preamble scoring should not call the provider")
	}
}

func TestScore_MismatchedAnswers(t *testing.T) {
	s, _ := newScorer()

	_, err := s.Score(context.Background(), []assessment.Question{mcQuestion("q1", "went")}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched answer count")
	}
}
