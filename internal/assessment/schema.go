package assessment

import "github.com/keiaapp/keia/internal/llm"

// QuestionSetSchema is the structured-output schema for question
/// generation: an array of items, each a complete question.
var QuestionSetSchema = &llm.Schema{
	Name:        "assessment-questions",
	Description: "A set of English assessment questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Unique question identifier within the set",
				},
				"type": map[string]any{
					"type":        "string",
					"enum":        []any{"mc", "write"},
					"description": "'mc' for multiple choice, 'write' for a typed answer",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question text shown to the learner",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Options for mc questions; empty for write",
				},
				"correct_answer": map[string]any{
					"type":        "string",
					"description": "The correct answer or expected phrase",
				},
			},
			"required": []any{"id", "type", "question", "correct_answer"},
		},
	},
}

// GradingSchema is the structured-output schema for the free-text batch
// grading call: one judgment per submitted item, correlated by id.
var GradingSchema = &llm.Schema{
	Name:        "answer-grading",
	Description: "Per-question grading judgments",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The id of the graded question",
				},
				"is_correct": map[string]any{
					"type":        "boolean",
					"description": "Whether the learner's answer is acceptable",
				},
				"feedback": map[string]any{
					"type":        "string",
					"description": "Concise feedback on grammar and coherence",
				},
			},
			"required": []any{"id", "is_correct", "feedback"},
		},
	},
}
