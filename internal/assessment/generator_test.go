package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

func newTestGenerator(responses ...llm.MockResponse) (*Generator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	client := content.NewClient(mock, content.DefaultConfig())
	return NewGenerator(client), mock
}

func TestGenerate_DecodesQuestions(t *testing.T) {
	g, mock := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"1","type":"mc","question":"Choose the translation of 'gato'","options":["cat","dog","bird"],"correct_answer":"cat"},
		{"id":"2","type":"write","question":"Traduce: buenos dias","correct_answer":"good morning"}
	]`)})

	qs, err := g.Generate(context.Background(), TypeVocabulary, "A1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Kind != KindMultipleChoice || len(qs[0].Options) != 3 {
		t.Errorf("first question = %+v", qs[0])
	}
	if qs[1].Kind != KindFreeText || qs[1].Answer != "good morning" {
		t.Errorf("second question = %+v", qs[1])
	}
	if qs[0].Preamble || qs[1].Preamble {
		t.Error("no preamble expected outside listening phase 3")
	}

	// The request must carry the selected instruction pair.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema.Name != QuestionSetSchema.Name {
		t.Error("question schema not forwarded")
	}
}

func TestGenerate_MissingOptionsIsGenerationError(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"1","type":"mc","question":"Pick one","options":[],"correct_answer":"x"}
	]`)})

	_, err := g.Generate(context.Background(), TypeGrammar, "B1", 1)
	if !errors.Is(err, content.ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
}

func TestGenerate_UnknownKindRejected(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"1","type":"essay","question":"Write an essay","correct_answer":"n/a"}
	]`)})

	_, err := g.Generate(context.Background(), TypeWriting, "B1", 1)
	if !errors.Is(err, content.ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
}

func TestGenerate_ListeningStoryPreamble(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Content: json.RawMessage(`[
		{"id":"1","type":"mc","question":"Once upon a time, a long story...","options":["Continue"],"correct_answer":"Continue"},
		{"id":"2","type":"mc","question":"What happened first?","options":["a","b","c"],"correct_answer":"a"}
	]`)})

	qs, err := g.Generate(context.Background(), TypeListening, "B1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !qs[0].Preamble {
		t.Error("first listening phase-3 item must be the preamble")
	}
	if qs[1].Preamble {
		t.Error("only the first item is the preamble")
	}
}

func TestGenerate_ProviderFailurePropagates(t *testing.T) {
	g, _ := newTestGenerator(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := g.Generate(context.Background(), TypePlacement, "", 0)
	if !errors.Is(err, content.ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
}
