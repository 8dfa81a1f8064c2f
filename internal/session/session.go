// Package session orchestrates one assessment run: loading the question
// set, collecting answers position by position, and evaluating once the
// sequence is exhausted.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/leveling"
	"github.com/keiaapp/keia/internal/profile"
	"github.com/keiaapp/keia/internal/scoring"
	"github.com/keiaapp/keia/internal/store"
)

// Phase is the controller's lifecycle state.
type Phase int

const (
	// PhaseLoading is the initial state while the question set is
	// requested.
	PhaseLoading Phase = iota

	// PhasePresenting serves questions one at a time.
	PhasePresenting

	// PhaseEvaluating means the sequence is exhausted and Finish may
	// run.
	PhaseEvaluating

	// PhaseDone is terminal with a Result.
	PhaseDone

	// PhaseError is terminal with a cause; reachable from Loading and
	// Evaluating.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseEvaluating:
		return "evaluating"
	case PhaseDone:
		return "done"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrAlreadyEvaluated rejects a second Finish on the same session.
var ErrAlreadyEvaluated = errors.New("session already evaluated")

// ErrAnswerRequired rejects advancing past an unanswered question.
var ErrAnswerRequired = errors.New("answer required before advancing")

// errPhase reports an operation attempted in the wrong phase.
func errPhase(op string, p Phase) error {
	return fmt.Errorf("%s not allowed in phase %s", op, p)
}

// Result is the payload of a successful evaluation.
type Result struct {
	SessionID string

	// Score is the overall session percentage.
	Score int

	Level        leveling.Level
	LevelChanged bool
	Streak       int
	XP           int
	SkillScore   int

	// Feedback holds every question with its judgment, in presentation
	// order.
	Feedback []scoring.Evaluated
}

// Config wires a Controller.
type Config struct {
	UserID string
	Type   assessment.Type

	// Level overrides the profile level for prompt selection. Empty
	// means use the profile's current level.
	Level string

	// PracticePhase selects the difficulty phase for practice
	// assessments. Ignored for placement.
	PracticePhase assessment.Phase

	Generator  *assessment.Generator
	Scorer     *scoring.Scorer
	Aggregator *leveling.Aggregator
	Profiles   profile.Store

	// Events receives a record on successful evaluation. Nil disables
	// event logging.
	Events store.EventRepo
}

// Controller runs one assessment session. Not reusable: a finished or
// failed session is created fresh for the next run. Persistence happens
// only inside a successful Finish, so abandoning the controller at any
// point leaves the profile untouched.
type Controller struct {
	cfg Config
	id  string

	mu        sync.Mutex
	phase     Phase
	level     string
	questions []assessment.Question
	answers   []string
	index     int
	evaluated bool
	result    *Result
	err       error
}

// New creates a Controller in the Loading phase.
func New(cfg Config) *Controller {
	return &Controller{
		cfg:   cfg,
		id:    uuid.NewString(),
		phase: PhaseLoading,
	}
}

// ID returns the session identifier.
func (c *Controller) ID() string { return c.id }

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Err returns the cause after PhaseError.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Start reads the profile once and loads the question set. On success
// the first question is presented; on failure the session is in
// PhaseError.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != PhaseLoading {
		c.mu.Unlock()
		return errPhase("start", c.phase)
	}
	c.mu.Unlock()

	level := c.cfg.Level
	if level == "" {
		p, err := c.cfg.Profiles.Read(ctx, c.cfg.UserID)
		switch {
		case err == nil && p.Level != "":
			level = p.Level
		case err == nil || errors.Is(err, profile.ErrNotFound):
			level = string(leveling.A1)
		default:
			return c.fail(fmt.Errorf("read profile: %w", err))
		}
	}

	questions, err := c.cfg.Generator.Generate(ctx, c.cfg.Type, level, c.cfg.PracticePhase)
	if err != nil {
		return c.fail(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
	c.questions = questions
	c.answers = make([]string, len(questions))
	c.index = 0
	c.phase = PhasePresenting
	return nil
}

// fail moves the session to PhaseError and returns the cause.
func (c *Controller) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = PhaseError
	c.err = err
	return err
}

// Current returns the question at the present position.
func (c *Controller) Current() (assessment.Question, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting {
		return assessment.Question{}, 0, errPhase("current", c.phase)
	}
	return c.questions[c.index], c.index, nil
}

// Len returns the number of questions in the loaded set.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.questions)
}

// Answer records the answer for the current question, overwriting any
// earlier answer at this position.
func (c *Controller) Answer(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting {
		return errPhase("answer", c.phase)
	}
	c.answers[c.index] = text
	return nil
}

// Advance moves to the next question. The current question must be
// answered unless it is the preamble, which advances once viewed.
// Advancing past the last question enters PhaseEvaluating and Advance
// reports done.
func (c *Controller) Advance() (done bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhasePresenting {
		return false, errPhase("advance", c.phase)
	}

	q := c.questions[c.index]
	if !q.Preamble && !assessment.Answered(c.answers[c.index]) {
		return false, ErrAnswerRequired
	}

	if c.index == len(c.questions)-1 {
		c.phase = PhaseEvaluating
		return true, nil
	}
	c.index++
	return false, nil
}

// Finish scores the session, folds the outcome into the profile, and
// records the assessment event. It runs at most once per session; later
// calls get ErrAlreadyEvaluated regardless of the first call's outcome.
func (c *Controller) Finish(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	if c.evaluated {
		c.mu.Unlock()
		return nil, ErrAlreadyEvaluated
	}
	if c.phase != PhaseEvaluating {
		c.mu.Unlock()
		return nil, errPhase("finish", c.phase)
	}
	c.evaluated = true
	questions := c.questions
	answers := c.answers
	c.mu.Unlock()

	feedback, err := c.cfg.Scorer.Score(ctx, questions, answers)
	if err != nil {
		return nil, c.fail(err)
	}

	outcome, err := c.cfg.Aggregator.Apply(ctx, c.cfg.UserID, c.cfg.Type, feedback)
	if err != nil {
		return nil, c.fail(err)
	}

	result := &Result{
		SessionID:    c.id,
		Score:        outcome.Score,
		Level:        outcome.Level,
		LevelChanged: outcome.LevelChanged,
		Streak:       outcome.Streak,
		XP:           outcome.XP,
		SkillScore:   outcome.SkillScore,
		Feedback:     feedback,
	}

	if c.cfg.Events != nil {
		data := store.AssessmentEventData{
			SessionID:      c.id,
			UserID:         c.cfg.UserID,
			Assessment:     string(c.cfg.Type),
			Level:          c.level,
			Phase:          int(c.cfg.PracticePhase),
			Score:          outcome.Score,
			NewLevel:       string(outcome.Level),
			NewStreak:      outcome.Streak,
			TotalQuestions: outcome.Evaluable,
			CorrectAnswers: outcome.Correct,
		}
		// The profile update already landed; a lost event must not fail
		// the session.
		_ = c.cfg.Events.AppendAssessment(ctx, data)
	}

	c.mu.Lock()
	c.phase = PhaseDone
	c.result = result
	c.mu.Unlock()

	return result, nil
}

// Result returns the evaluation payload after PhaseDone.
func (c *Controller) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
