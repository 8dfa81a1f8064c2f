package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over generative AI backends.
// All content generation and free-text grading in KeIA goes through it.
type Provider interface {
	// Generate sends a prompt and returns structured output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is JSON
	// validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System is the system instruction (evaluator/generator role).
	System string

	// Messages is the conversation. Assessment calls are single-turn:
	// one user message carrying the task.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	// When nil the Content is the raw text wrapped as JSON.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "assessment-questions").
	// Used as the schema name for OpenAI structured output.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated payload. Validated JSON when the request
	// had a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
