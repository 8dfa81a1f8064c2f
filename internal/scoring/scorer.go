// Package scoring turns a finished question sequence into evaluated
// results. Multiple choice is scored locally; answered free-text items
// are judged by the model in a single batch call.
package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/content"
	"github.com/keiaapp/keia/internal/llm"
)

// NotAnsweredFeedback is attached to every item left blank.
const NotAnsweredFeedback = "Not answered."

// Evaluated is a question plus its grading outcome. Immutable once
// produced.
type Evaluated struct {
	Question assessment.Question
	Answer   string
	Correct  bool
	Feedback string
}

// Scorer evaluates answered question sets.
type Scorer struct {
	client *content.Client
}

// NewScorer creates a Scorer. The client is only used for free-text
// grading; a session with no answered free-text items never calls it.
func NewScorer(client *content.Client) *Scorer {
	return &Scorer{client: client}
}

// Score evaluates every question against its recorded answer.
// answers[i] belongs to questions[i]; a session always records one slot
// per question. All answered free-text items go to the model in one
// batch; if that call fails the whole evaluation fails, since feedback
// for some items and not others would misreport the score.
func (s *Scorer) Score(ctx context.Context, questions []assessment.Question, answers []string) ([]Evaluated, error) {
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("answers (%d) do not match questions (%d)", len(answers), len(questions))
	}

	results := make([]Evaluated, len(questions))
	var pending []int // indexes awaiting batch grading

	for i, q := range questions {
		res := Evaluated{Question: q, Answer: answers[i]}

		switch {
		case q.Preamble:
			// Presented, never scored.

		case !assessment.Answered(answers[i]):
			res.Feedback = NotAnsweredFeedback

		case q.Kind == assessment.KindMultipleChoice:
			res.Correct = matchChoice(answers[i], q.Answer)
			if res.Correct {
				res.Feedback = "Correct!"
			} else {
				res.Feedback = "The correct answer was: " + q.Answer
			}

		default:
			pending = append(pending, i)
		}

		results[i] = res
	}

	if len(pending) > 0 {
		if err := s.gradeBatch(ctx, results, pending); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// matchChoice compares a multiple-choice answer: trimmed,
// case-insensitive exact equality.
func matchChoice(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(expected))
}

// gradeItem is one submitted item of the batch grading payload.
type gradeItem struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// gradeResult is one judgment of the grading response.
type gradeResult struct {
	ID        string `json:"id"`
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

func (s *Scorer) gradeBatch(ctx context.Context, results []Evaluated, pending []int) error {
	ctx = llm.WithPurpose(ctx, "grading")

	items := make([]gradeItem, 0, len(pending))
	for _, i := range pending {
		items = append(items, gradeItem{
			ID:            results[i].Question.ID,
			Question:      results[i].Question.Prompt,
			UserAnswer:    results[i].Answer,
			CorrectAnswer: results[i].Question.Answer,
		})
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal grading payload: %w", err)
	}

	system, user := assessment.GradingPrompt(string(payload))
	records, err := s.client.Generate(ctx, system, user, assessment.GradingSchema)
	if err != nil {
		return err
	}

	judged := make(map[string]gradeResult, len(records))
	for _, rec := range records {
		var r gradeResult
		if err := json.Unmarshal(rec, &r); err != nil {
			return &content.GenerationError{
				Schema: assessment.GradingSchema.Name,
				Err:    fmt.Errorf("decode judgment: %w", err),
			}
		}
		judged[r.ID] = r
	}

	for _, i := range pending {
		r, ok := judged[results[i].Question.ID]
		if !ok {
			// The model skipped this id; never guess in the learner's favor.
			results[i].Correct = false
			results[i].Feedback = "Could not be evaluated."
			continue
		}
		results[i].Correct = r.IsCorrect
		results[i].Feedback = r.Feedback
	}

	return nil
}

// CorrectCount returns how many evaluable results are correct.
func CorrectCount(results []Evaluated) int {
	n := 0
	for _, r := range results {
		if !r.Question.Preamble && r.Correct {
			n++
		}
	}
	return n
}

// EvaluableCount returns the score denominator: every question except
// the preamble.
func EvaluableCount(results []Evaluated) int {
	n := 0
	for _, r := range results {
		if !r.Question.Preamble {
			n++
		}
	}
	return n
}
