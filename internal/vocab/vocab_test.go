package vocab

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

func TestList_DecodesEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[
		{"infinitive": "go", "simple_past": "went", "past_participle": "gone", "spanish": "ir", "example": "I go to work by bus."},
		{"infinitive": "take", "simple_past": "took", "past_participle": "taken", "spanish": "tomar", "example": "She took the early train."}
	]`)})
	svc := NewService(content.NewClient(mock, content.DefaultConfig()))

	entries, err := svc.List(context.Background(), CategoryIrregular, "B1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Infinitive != "go" || entries[0].PastParticiple != "gone" {
		t.Errorf("entry 0 = %+v", entries[0])
	}
	if entries[1].Spanish != "tomar" {
		t.Errorf("entry 1 spanish = %q", entries[1].Spanish)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "verb-list" {
		t.Error("list schema not forwarded")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "irregular") || !strings.Contains(user, "B1") {
		t.Errorf("prompt missing category or level: %q", user)
	}
}

func TestList_RejectsUnknownCategory(t *testing.T) {
	svc := NewService(content.NewClient(llm.NewMockProvider(), content.DefaultConfig()))
	if _, err := svc.List(context.Background(), Category("modal"), "B1"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestList_EntryWithoutInfinitiveFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[
		{"infinitive": "", "simple_past": "went", "past_participle": "gone", "spanish": "ir", "example": "x"}
	]`)})
	svc := NewService(content.NewClient(mock, content.DefaultConfig()))

	_, err := svc.List(context.Background(), CategoryRegular, "A2")
	if err == nil {
		t.Fatal("expected generation error")
	}
}
