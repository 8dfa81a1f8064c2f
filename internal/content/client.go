// Package content wraps the generative provider behind the one call the
// assessment pipeline needs: instruction pair in, validated record array
// out. Retries live below it in the provider middleware; by the time an
// error escapes this package the attempt budget is spent and the caller
// gets a single content-unavailable failure.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/keiaapp/keia/internal/llm"
)

// ErrContentUnavailable is the terminal generation failure: the call
// exhausted its retries or returned an empty or unparsable payload.
var ErrContentUnavailable = errors.New("content unavailable")

// GenerationError carries the cause behind an ErrContentUnavailable.
type GenerationError struct {
	Schema string
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Schema, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrContentUnavailable, e.Err}
}

// Config bounds a generation call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the limits used for assessment generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Client issues structured-output generation calls.
type Client struct {
	provider llm.Provider
	config   Config
}

// NewClient creates a Client on the given provider.
func NewClient(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, config: cfg}
}

// Generate sends the instruction pair with the given array schema and
// returns one raw JSON record per array element. No caching, no side
// effects beyond the call itself.
func (c *Client) Generate(ctx context.Context, system, user string, schema *llm.Schema) ([]json.RawMessage, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:      schema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Schema: schema.Name, Err: err}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(resp.Content, &records); err != nil {
		return nil, &GenerationError{Schema: schema.Name, Err: fmt.Errorf("response is not a JSON array: %w", err)}
	}
	if len(records) == 0 {
		return nil, &GenerationError{Schema: schema.Name, Err: errors.New("empty response")}
	}

	return records, nil
}
