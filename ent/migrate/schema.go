// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MisconceptionsColumns holds the columns for the "misconceptions" table.
	MisconceptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "misconception_type", Type: field.TypeString},
		{Name: "strength", Type: field.TypeInt},
		{Name: "occurrence_count", Type: field.TypeInt},
		{Name: "correct_streak", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString},
		{Name: "last_observed_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// MisconceptionsTable holds the schema information for the "misconceptions" table.
	MisconceptionsTable = &schema.Table{
		Name:       "misconceptions",
		Columns:    MisconceptionsColumns,
		PrimaryKey: []*schema.Column{MisconceptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "misconception_owner_id_concept_misconception_type",
				Unique:  true,
				Columns: []*schema.Column{MisconceptionsColumns[1], MisconceptionsColumns[2], MisconceptionsColumns[3]},
			},
			{
				Name:    "misconception_owner_id_status",
				Unique:  false,
				Columns: []*schema.Column{MisconceptionsColumns[1], MisconceptionsColumns[7]},
			},
		},
	}
	// ObservationEventsColumns holds the columns for the "observation_events" table.
	ObservationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "observation_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "misconception_type", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeString},
		{Name: "learning_state", Type: field.TypeString},
	}
	// ObservationEventsTable holds the schema information for the "observation_events" table.
	ObservationEventsTable = &schema.Table{
		Name:       "observation_events",
		Columns:    ObservationEventsColumns,
		PrimaryKey: []*schema.Column{ObservationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "observationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[1]},
			},
			{
				Name:    "observationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[2]},
			},
			{
				Name:    "observationevent_owner_id",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[4]},
			},
			{
				Name:    "observationevent_owner_id_concept",
				Unique:  false,
				Columns: []*schema.Column{ObservationEventsColumns[4], ObservationEventsColumns[5]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_review_date", Type: field.TypeTime, Nullable: true},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_owner_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_owner_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		MisconceptionsTable,
		ObservationEventsTable,
		ReviewItemsTable,
	}
)

func init() {
}
