package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the learner's persisted document: current level, experience,
// streak and per-skill scores. One row per user; writes are merge-upserts
// so fields not touched by an update survive.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Opaque user identifier"),
		field.String("email").
			Default("").
			Comment("Account email, informational only"),
		field.String("username").
			Default("").
			Comment("Display name"),
		field.String("level").
			Default("").
			Comment("CEFR level (A1..C2); empty until placement"),
		field.Int("xp").
			Default(0).
			NonNegative().
			Comment("Experience points, monotonically non-decreasing"),
		field.Int("streak").
			Default(0).
			NonNegative().
			Comment("Consecutive passing assessments; resets on a fail"),
		field.JSON("skills", map[string]int{}).
			Optional().
			Comment("Per-skill score 0-100, keyed by skill name"),
		field.Time("last_test_date").
			Optional().
			Nillable().
			Comment("Completion time of the most recent assessment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
