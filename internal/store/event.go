package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/keiaapp/keia/ent"
	"github.com/keiaapp/keia/ent/assessmentevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAssessment(data.Assessment).
		SetLevel(data.Level).
		SetPhase(data.Phase).
		SetScore(data.Score).
		SetNewLevel(data.NewLevel).
		SetNewStreak(data.NewStreak).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, userID string, opts QueryOpts) ([]AssessmentRecord, error) {
	q := r.client.AssessmentEvent.Query().
		Where(assessmentevent.UserID(userID)).
		Order(ent.Desc(assessmentevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(assessmentevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}

	out := make([]AssessmentRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, AssessmentRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				SessionID:      e.SessionID,
				UserID:         e.UserID,
				Assessment:     e.Assessment,
				Level:          e.Level,
				Phase:          e.Phase,
				Score:          e.Score,
				NewLevel:       e.NewLevel,
				NewStreak:      e.NewStreak,
				TotalQuestions: e.TotalQuestions,
				CorrectAnswers: e.CorrectAnswers,
			},
		})
	}
	return out, nil
}

// LLMUsage aggregates per purpose with raw SQL; ent's GroupBy doesn't
// compose multiple sums with a conditional count.
func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       SUM(CASE WHEN success THEN 0 ELSE 1 END),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsageStats
	for rows.Next() {
		var s LLMUsageStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures, &s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan LLM usage row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
