package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/keiaapp/keia/internal/llm"
)

func itemSchema() *llm.Schema {
	return &llm.Schema{
		Name: "test-items",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id"},
				"properties": map[string]any{
					"id": map[string]any{"type": "string"},
				},
			},
		},
	}
}

func TestGenerate_ReturnsRecords(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[{"id":"1"},{"id":"2"}]`)},
	)
	c := NewClient(mock, DefaultConfig())

	records, err := c.Generate(context.Background(), "sys", "user", itemSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if string(records[0]) != `{"id":"1"}` {
		t.Errorf("first record = %s", records[0])
	}

	// The instruction pair and schema must pass through unchanged.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	call := mock.Calls[0]
	if call.System != "sys" || len(call.Messages) != 1 || call.Messages[0].Content != "user" {
		t.Errorf("request = %+v", call)
	}
	if call.Schema == nil || call.Schema.Name != "test-items" {
		t.Error("schema not forwarded")
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	c := NewClient(mock, DefaultConfig())

	_, err := c.Generate(context.Background(), "sys", "user", itemSchema())
	if !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatal("cause should remain reachable through the wrapper")
	}
}

func TestGenerate_NonArrayPayload(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"not":"an array"}`)},
	)
	c := NewClient(mock, DefaultConfig())

	_, err := c.Generate(context.Background(), "sys", "user", itemSchema())
	if !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
}

func TestGenerate_EmptyArray(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	c := NewClient(mock, DefaultConfig())

	_, err := c.Generate(context.Background(), "sys", "user", itemSchema())
	if !errors.Is(err, ErrContentUnavailable) {
		t.Fatalf("expected ErrContentUnavailable, got: %v", err)
	}
}
