package leveling

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/keiaapp/keia/internal/assessment"
	"github.com/keiaapp/keia/internal/profile"
	"github.com/keiaapp/keia/internal/scoring"
)

// Moving-average weights for the per-skill score. History dominates so
// one bad session cannot erase established proficiency.
const (
	historyWeight = 0.7
	sessionWeight = 0.3
)

// passingScore is the streak threshold.
const passingScore = 60

// promotionScore is the skill-practice level advance threshold.
const promotionScore = 80

// Outcome is the result of folding one session into the profile.
type Outcome struct {
	// Score is the overall session percentage, 0-100.
	Score int

	// Level is the profile level after the update.
	Level Level

	// LevelChanged reports whether this session moved the level.
	LevelChanged bool

	// Streak and XP are the updated profile values.
	Streak int
	XP     int

	// SkillScore is the updated moving-average score for the assessed
	// skill.
	SkillScore int

	Correct   int
	Evaluable int
}

// Aggregator persists session outcomes through the profile store.
type Aggregator struct {
	store profile.Store
	now   func() time.Time
}

// NewAggregator creates an Aggregator over the given store.
func NewAggregator(store profile.Store) *Aggregator {
	return &Aggregator{store: store, now: time.Now}
}

// Apply computes the outcome for one evaluated session and writes it as
// a merge upsert. Fields the update does not touch survive on the
// stored profile.
func (a *Aggregator) Apply(ctx context.Context, userID string, typ assessment.Type, results []scoring.Evaluated) (*Outcome, error) {
	evaluable := scoring.EvaluableCount(results)
	if evaluable == 0 {
		return nil, errors.New("no evaluable questions")
	}
	correct := scoring.CorrectCount(results)
	score := int(math.Round(float64(correct) / float64(evaluable) * 100))

	current, err := a.store.Read(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			current = profile.NewInitial(userID, "", "")
		} else {
			return nil, fmt.Errorf("read profile: %w", err)
		}
	}

	skillKey := typ.ProfileKey()
	skillScore := ewma(current.SkillScore(skillKey), score)

	streak := 0
	if score >= passingScore {
		streak = current.Streak + 1
	}

	xp := current.XP + int(math.Round(float64(score)/5))

	level, changed := nextLevel(typ, current.Level, score)

	when := a.now().UTC()
	patch := profile.Patch{
		XP:           &xp,
		Streak:       &streak,
		Skills:       map[string]int{skillKey: skillScore},
		LastTestDate: &when,
	}
	if changed {
		label := string(level)
		patch.Level = &label
	}

	if err := a.store.Write(ctx, userID, patch); err != nil {
		return nil, fmt.Errorf("persist outcome: %w", err)
	}

	return &Outcome{
		Score:        score,
		Level:        level,
		LevelChanged: changed,
		Streak:       streak,
		XP:           xp,
		SkillScore:   skillScore,
		Correct:      correct,
		Evaluable:    evaluable,
	}, nil
}

// ewma folds a session score into the historical skill score.
func ewma(old, session int) int {
	v := math.Round(float64(old)*historyWeight + float64(session)*sessionWeight)
	return clamp(int(v), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nextLevel decides the level after a session. Placement assigns it
// outright from the score bands; practice advances one step at 80 or
// above and never regresses.
func nextLevel(typ assessment.Type, currentLabel string, score int) (Level, bool) {
	current, err := ParseLevel(currentLabel)
	if err != nil {
		// No placement taken yet; practice starts from the bottom step.
		current = A1
	}

	if typ.Placement() {
		placed := PlacementLevel(score)
		return placed, string(placed) != currentLabel
	}

	if score >= promotionScore {
		promoted := current.Next()
		return promoted, string(promoted) != currentLabel
	}

	return current, false
}
