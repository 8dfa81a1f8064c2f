package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LLMRequestEventData captures one generative API call for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AssessmentEventData captures one completed assessment.
type AssessmentEventData struct {
	SessionID      string
	UserID         string
	Assessment     string
	Level          string
	Phase          int
	Score          int
	NewLevel       string
	NewStreak      int
	TotalQuestions int
	CorrectAnswers int
}

// AssessmentRecord is a persisted assessment event read back for stats.
type AssessmentRecord struct {
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// LLMUsageStats aggregates LLM spend per purpose.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records a generative API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAssessment records a completed assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// QueryAssessments returns completed assessments for a user,
	// newest first.
	QueryAssessments(ctx context.Context, userID string, opts QueryOpts) ([]AssessmentRecord, error)

	// LLMUsage aggregates request counts and token totals per purpose.
	LLMUsage(ctx context.Context) ([]LLMUsageStats, error)
}
