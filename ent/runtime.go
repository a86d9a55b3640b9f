// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Kairavparikh/quizwhiz/ent/llmrequestevent"
	"github.com/Kairavparikh/quizwhiz/ent/misconception"
	"github.com/Kairavparikh/quizwhiz/ent/observationevent"
	"github.com/Kairavparikh/quizwhiz/ent/reviewitem"
	"github.com/Kairavparikh/quizwhiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	misconceptionFields := schema.Misconception{}.Fields()
	_ = misconceptionFields
	// misconceptionDescOwnerID is the schema descriptor for owner_id field.
	misconceptionDescOwnerID := misconceptionFields[0].Descriptor()
	// misconception.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	misconception.OwnerIDValidator = misconceptionDescOwnerID.Validators[0].(func(string) error)
	// misconceptionDescConcept is the schema descriptor for concept field.
	misconceptionDescConcept := misconceptionFields[1].Descriptor()
	// misconception.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	misconception.ConceptValidator = misconceptionDescConcept.Validators[0].(func(string) error)
	// misconceptionDescMisconceptionType is the schema descriptor for misconception_type field.
	misconceptionDescMisconceptionType := misconceptionFields[2].Descriptor()
	// misconception.MisconceptionTypeValidator is a validator for the "misconception_type" field. It is called by the builders before save.
	misconception.MisconceptionTypeValidator = misconceptionDescMisconceptionType.Validators[0].(func(string) error)
	// misconceptionDescCorrectStreak is the schema descriptor for correct_streak field.
	misconceptionDescCorrectStreak := misconceptionFields[5].Descriptor()
	// misconception.DefaultCorrectStreak holds the default value on creation for the correct_streak field.
	misconception.DefaultCorrectStreak = misconceptionDescCorrectStreak.Default.(int)
	observationeventMixin := schema.ObservationEvent{}.Mixin()
	observationeventMixinFields0 := observationeventMixin[0].Fields()
	_ = observationeventMixinFields0
	observationeventFields := schema.ObservationEvent{}.Fields()
	_ = observationeventFields
	// observationeventDescTimestamp is the schema descriptor for timestamp field.
	observationeventDescTimestamp := observationeventMixinFields0[1].Descriptor()
	// observationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	observationevent.DefaultTimestamp = observationeventDescTimestamp.Default.(func() time.Time)
	// observationeventDescObservationID is the schema descriptor for observation_id field.
	observationeventDescObservationID := observationeventFields[0].Descriptor()
	// observationevent.ObservationIDValidator is a validator for the "observation_id" field. It is called by the builders before save.
	observationevent.ObservationIDValidator = observationeventDescObservationID.Validators[0].(func(string) error)
	// observationeventDescOwnerID is the schema descriptor for owner_id field.
	observationeventDescOwnerID := observationeventFields[1].Descriptor()
	// observationevent.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	observationevent.OwnerIDValidator = observationeventDescOwnerID.Validators[0].(func(string) error)
	// observationeventDescConcept is the schema descriptor for concept field.
	observationeventDescConcept := observationeventFields[2].Descriptor()
	// observationevent.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	observationevent.ConceptValidator = observationeventDescConcept.Validators[0].(func(string) error)
	// observationeventDescMisconceptionType is the schema descriptor for misconception_type field.
	observationeventDescMisconceptionType := observationeventFields[3].Descriptor()
	// observationevent.DefaultMisconceptionType holds the default value on creation for the misconception_type field.
	observationevent.DefaultMisconceptionType = observationeventDescMisconceptionType.Default.(string)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescOwnerID is the schema descriptor for owner_id field.
	reviewitemDescOwnerID := reviewitemFields[0].Descriptor()
	// reviewitem.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	reviewitem.OwnerIDValidator = reviewitemDescOwnerID.Validators[0].(func(string) error)
	// reviewitemDescConceptID is the schema descriptor for concept_id field.
	reviewitemDescConceptID := reviewitemFields[1].Descriptor()
	// reviewitem.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	reviewitem.ConceptIDValidator = reviewitemDescConceptID.Validators[0].(func(string) error)
}
