package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionListSchema() *Schema {
	return &Schema{
		Name:        "test-question-list",
		Description: "A list of assessment questions",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string"},
					"type":           map[string]any{"type": "string", "enum": []any{"mc", "write"}},
					"question":       map[string]any{"type": "string"},
					"correct_answer": map[string]any{"type": "string"},
				},
				"required": []any{"id", "type", "question", "correct_answer"},
			},
		},
	}
}

func TestValidateResponse_ValidArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":"1","type":"write","question":"Translate: hola","correct_answer":"hello"}]`)
	if err := validateResponse(questionListSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`[{"id":"1","type":"write","question":"Translate: hola"}]`)
	err := validateResponse(questionListSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`[{"id":"1","type":"essay","question":"q","correct_answer":"a"}]`)
	err := validateResponse(questionListSchema(), raw)
	if err == nil {
		t.Fatal("expected error for enum violation")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`not json at all`)
	err := validateResponse(questionListSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`whatever`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	s := questionListSchema()
	raw := json.RawMessage(`[]`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
