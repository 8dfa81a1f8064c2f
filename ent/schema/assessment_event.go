package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records one completed assessment: what was taken and
// what the evaluation decided. Appended only on the successful
// Evaluating → Done transition, so abandoned sessions leave no trace.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the assessment session"),
		field.String("user_id").
			NotEmpty(),
		field.String("assessment").
			NotEmpty().
			Comment("placement, writing, speaking, listening, grammar or vocabulary"),
		field.String("level").
			Comment("Level the set was generated for"),
		field.Int("phase").
			Default(0).
			Comment("Phase 1-3 for skill practice, 0 for placement"),
		field.Int("score").
			Comment("Overall score 0-100"),
		field.String("new_level").
			Comment("Level after the evaluation"),
		field.Int("new_streak"),
		field.Int("total_questions"),
		field.Int("correct_answers"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("assessment"),
	}
}
