package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Misconception tracks one recurring conceptual error for one learner.
type Misconception struct {
	ent.Schema
}

func (Misconception) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			NotEmpty().
			Comment("Learner this record belongs to"),
		field.String("concept").
			NotEmpty().
			Comment("Concept the error occurs on"),
		field.String("misconception_type").
			NotEmpty().
			Comment("The tracked error pattern"),
		field.Int("strength").
			Comment("How entrenched the misconception is, clamped 1-10"),
		field.Int("occurrence_count").
			Comment("Times incorrect evidence has been observed"),
		field.Int("correct_streak").
			Default(0).
			Comment("Consecutive correct observations; resets on a wrong answer"),
		field.String("status").
			Comment("active, resolving, or resolved"),
		field.Time("last_observed_at").
			Comment("When the triple was last observed"),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("Set only on the transition into resolved"),
	}
}

func (Misconception) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "concept", "misconception_type").Unique(),
		index.Fields("owner_id", "status"),
	}
}
