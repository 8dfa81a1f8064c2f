// Package vocab generates vocabulary study lists: verb tables for a
// category, pitched at the learner's level.
package vocab

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

// Category selects the verb family to study.
type Category string

const (
	CategoryIrregular Category = "irregular"
	CategoryRegular   Category = "regular"
	CategoryPhrasal   Category = "phrasal"
)

// Categories lists all study categories.
var Categories = []Category{CategoryIrregular, CategoryRegular, CategoryPhrasal}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ListSize is the number of entries per generated study list.
const ListSize = 7

// Entry is one verb with its principal parts and a usage example.
type Entry struct {
	Infinitive     string `json:"infinitive"`
	SimplePast     string `json:"simple_past"`
	PastParticiple string `json:"past_participle"`
	Spanish        string `json:"spanish"`
	Example        string `json:"example"`
}

// listSchema is the structured-output schema for a verb study list.
var listSchema = &llm.Schema{
	Name:        "verb-list",
	Description: "A vocabulary study list of English verbs",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"infinitive":      map[string]any{"type": "string"},
				"simple_past":     map[string]any{"type": "string"},
				"past_participle": map[string]any{"type": "string"},
				"spanish":         map[string]any{"type": "string"},
				"example":         map[string]any{"type": "string"},
			},
			"required":             []any{"infinitive", "simple_past", "past_participle", "spanish", "example"},
			"additionalProperties": false,
		},
	},
}

// Service generates study lists through the content client.
type Service struct {
	client *content.Client
}

// NewService creates a Service.
func NewService(client *content.Client) *Service {
	return &Service{client: client}
}

// List generates a study list for the category at the given CEFR level.
func (s *Service) List(ctx context.Context, category Category, level string) ([]Entry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	ctx = llm.WithPurpose(ctx, "vocab")

	system := "You are an English teacher for Spanish speakers. " +
		"Produce vocabulary study lists with accurate verb forms, " +
		"a Spanish translation, and one natural example sentence per verb."
	user := fmt.Sprintf(
		"Generate exactly %d %s verbs suitable for a CEFR %s learner. "+
			"For each verb give the infinitive, simple past, past participle, "+
			"its Spanish translation, and an example sentence in English.",
		ListSize, categoryLabel(category), level,
	)

	records, err := s.client.Generate(ctx, system, user, listSchema)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		var e Entry
		if err := json.Unmarshal(rec, &e); err != nil {
			return nil, &content.GenerationError{
				Schema: listSchema.Name,
				Err:    fmt.Errorf("decode entry %d: %w", i, err),
			}
		}
		if e.Infinitive == "" {
			return nil, &content.GenerationError{
				Schema: listSchema.Name,
				Err:    fmt.Errorf("entry %d has no infinitive", i),
			}
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func categoryLabel(c Category) string {
	switch c {
	case CategoryIrregular:
		return "irregular"
	case CategoryRegular:
		return "regular"
	default:
		return "phrasal"
	}
}
