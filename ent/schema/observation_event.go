package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ObservationEvent records a single graded answer observation.
type ObservationEvent struct {
	ent.Schema
}

func (ObservationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ObservationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("observation_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned when the observation was handled"),
		field.String("owner_id").NotEmpty(),
		field.String("concept").NotEmpty(),
		field.String("misconception_type").
			Optional().
			Default("").
			Comment("Empty when the grader attached no error pattern"),
		field.Bool("correct"),
		field.String("confidence").
			Comment("low, medium, or high"),
		field.String("learning_state").
			Comment("Classifier output for this observation"),
	}
}

func (ObservationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "concept"),
	}
}
