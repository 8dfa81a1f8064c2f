package assessment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

// Generator produces question sets through the content client.
type Generator struct {
	client *content.Client
}

// NewGenerator creates a Generator.
func NewGenerator(client *content.Client) *Generator {
	return &Generator{client: client}
}

// questionOutput is the raw generated item before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Generate requests a question set for the given assessment and decodes
// and validates it. Malformed items (a multiple-choice question without
// options) are a generation failure like any other: the caller sees
// content.ErrContentUnavailable.
func (g *Generator) Generate(ctx context.Context, typ Type, level string, phase Phase) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	spec := SelectPrompt(typ, level, phase)

	records, err := g.client.Generate(ctx, spec.System, spec.User, QuestionSetSchema)
	if err != nil {
		return nil, err
	}

	questions := make([]Question, 0, len(records))
	for i, rec := range records {
		var raw questionOutput
		if err := json.Unmarshal(rec, &raw); err != nil {
			return nil, &content.GenerationError{
				Schema: QuestionSetSchema.Name,
				Err:    fmt.Errorf("decode item %d: %w", i, err),
			}
		}

		q := Question{
			ID:      raw.ID,
			Kind:    Kind(raw.Type),
			Prompt:  raw.Question,
			Options: raw.Options,
			Answer:  raw.CorrectAnswer,
		}

		// Listening phase 3 leads with the comprehension story; it is
		// presented but never scored, so its options and answer are
		// decorative.
		if i == 0 && typ == TypeListening && phase == 3 {
			q.Preamble = true
		}

		if err := validateQuestion(q, i); err != nil {
			return nil, &content.GenerationError{Schema: QuestionSetSchema.Name, Err: err}
		}

		questions = append(questions, q)
	}

	return questions, nil
}

func validateQuestion(q Question, idx int) error {
	if q.ID == "" {
		return fmt.Errorf("item %d: empty id", idx)
	}
	if q.Prompt == "" {
		return fmt.Errorf("item %d: empty question text", idx)
	}
	if q.Preamble {
		return nil
	}
	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("item %d (%s): multiple choice with %d options", idx, q.ID, len(q.Options))
		}
	case KindFreeText:
		// No options expected.
	default:
		return fmt.Errorf("item %d (%s): unknown kind %q", idx, q.ID, q.Kind)
	}
	if q.Answer == "" {
		return fmt.Errorf("item %d (%s): empty expected answer", idx, q.ID)
	}
	return nil
}
