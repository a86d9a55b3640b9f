package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem is the spaced repetition schedule entry for one concept.
type ReviewItem struct {
	ent.Schema
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").
			NotEmpty().
			Comment("Learner this item belongs to"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept or question being scheduled"),
		field.Int("priority").
			Comment("1 = review first, 5 = last"),
		field.Time("next_review_date").
			Comment("Item is due once this date is reached"),
		field.Time("last_review_date").
			Optional().
			Nillable().
			Comment("Most recent review, if any"),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "concept_id").Unique(),
		index.Fields("owner_id", "next_review_date"),
	}
}
