// Code generated by ent, DO NOT EDIT.

package observationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Kairavparikh/quizwhiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ObservationID applies equality check predicate on the "observation_id" field. It's identical to ObservationIDEQ.
func ObservationID(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldObservationID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldOwnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldConcept, v))
}

// MisconceptionType applies equality check predicate on the "misconception_type" field. It's identical to MisconceptionTypeEQ.
func MisconceptionType(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldMisconceptionType, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldCorrect, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldConfidence, v))
}

// LearningState applies equality check predicate on the "learning_state" field. It's identical to LearningStateEQ.
func LearningState(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldLearningState, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ObservationIDEQ applies the EQ predicate on the "observation_id" field.
func ObservationIDEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldObservationID, v))
}

// ObservationIDNEQ applies the NEQ predicate on the "observation_id" field.
func ObservationIDNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldObservationID, v))
}

// ObservationIDIn applies the In predicate on the "observation_id" field.
func ObservationIDIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldObservationID, vs...))
}

// ObservationIDNotIn applies the NotIn predicate on the "observation_id" field.
func ObservationIDNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldObservationID, vs...))
}

// ObservationIDGT applies the GT predicate on the "observation_id" field.
func ObservationIDGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldObservationID, v))
}

// ObservationIDGTE applies the GTE predicate on the "observation_id" field.
func ObservationIDGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldObservationID, v))
}

// ObservationIDLT applies the LT predicate on the "observation_id" field.
func ObservationIDLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldObservationID, v))
}

// ObservationIDLTE applies the LTE predicate on the "observation_id" field.
func ObservationIDLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldObservationID, v))
}

// ObservationIDContains applies the Contains predicate on the "observation_id" field.
func ObservationIDContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldObservationID, v))
}

// ObservationIDHasPrefix applies the HasPrefix predicate on the "observation_id" field.
func ObservationIDHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldObservationID, v))
}

// ObservationIDHasSuffix applies the HasSuffix predicate on the "observation_id" field.
func ObservationIDHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldObservationID, v))
}

// ObservationIDEqualFold applies the EqualFold predicate on the "observation_id" field.
func ObservationIDEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldObservationID, v))
}

// ObservationIDContainsFold applies the ContainsFold predicate on the "observation_id" field.
func ObservationIDContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldObservationID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldOwnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldConcept, v))
}

// MisconceptionTypeEQ applies the EQ predicate on the "misconception_type" field.
func MisconceptionTypeEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldMisconceptionType, v))
}

// MisconceptionTypeNEQ applies the NEQ predicate on the "misconception_type" field.
func MisconceptionTypeNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldMisconceptionType, v))
}

// MisconceptionTypeIn applies the In predicate on the "misconception_type" field.
func MisconceptionTypeIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldMisconceptionType, vs...))
}

// MisconceptionTypeNotIn applies the NotIn predicate on the "misconception_type" field.
func MisconceptionTypeNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldMisconceptionType, vs...))
}

// MisconceptionTypeGT applies the GT predicate on the "misconception_type" field.
func MisconceptionTypeGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldMisconceptionType, v))
}

// MisconceptionTypeGTE applies the GTE predicate on the "misconception_type" field.
func MisconceptionTypeGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldMisconceptionType, v))
}

// MisconceptionTypeLT applies the LT predicate on the "misconception_type" field.
func MisconceptionTypeLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldMisconceptionType, v))
}

// MisconceptionTypeLTE applies the LTE predicate on the "misconception_type" field.
func MisconceptionTypeLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldMisconceptionType, v))
}

// MisconceptionTypeContains applies the Contains predicate on the "misconception_type" field.
func MisconceptionTypeContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldMisconceptionType, v))
}

// MisconceptionTypeHasPrefix applies the HasPrefix predicate on the "misconception_type" field.
func MisconceptionTypeHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldMisconceptionType, v))
}

// MisconceptionTypeHasSuffix applies the HasSuffix predicate on the "misconception_type" field.
func MisconceptionTypeHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldMisconceptionType, v))
}

// MisconceptionTypeIsNil applies the IsNil predicate on the "misconception_type" field.
func MisconceptionTypeIsNil() predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIsNull(FieldMisconceptionType))
}

// MisconceptionTypeNotNil applies the NotNil predicate on the "misconception_type" field.
func MisconceptionTypeNotNil() predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotNull(FieldMisconceptionType))
}

// MisconceptionTypeEqualFold applies the EqualFold predicate on the "misconception_type" field.
func MisconceptionTypeEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldMisconceptionType, v))
}

// MisconceptionTypeContainsFold applies the ContainsFold predicate on the "misconception_type" field.
func MisconceptionTypeContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldMisconceptionType, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceContains applies the Contains predicate on the "confidence" field.
func ConfidenceContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldConfidence, v))
}

// ConfidenceHasPrefix applies the HasPrefix predicate on the "confidence" field.
func ConfidenceHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldConfidence, v))
}

// ConfidenceHasSuffix applies the HasSuffix predicate on the "confidence" field.
func ConfidenceHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldConfidence, v))
}

// ConfidenceEqualFold applies the EqualFold predicate on the "confidence" field.
func ConfidenceEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldConfidence, v))
}

// ConfidenceContainsFold applies the ContainsFold predicate on the "confidence" field.
func ConfidenceContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldConfidence, v))
}

// LearningStateEQ applies the EQ predicate on the "learning_state" field.
func LearningStateEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEQ(FieldLearningState, v))
}

// LearningStateNEQ applies the NEQ predicate on the "learning_state" field.
func LearningStateNEQ(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNEQ(FieldLearningState, v))
}

// LearningStateIn applies the In predicate on the "learning_state" field.
func LearningStateIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldIn(FieldLearningState, vs...))
}

// LearningStateNotIn applies the NotIn predicate on the "learning_state" field.
func LearningStateNotIn(vs ...string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldNotIn(FieldLearningState, vs...))
}

// LearningStateGT applies the GT predicate on the "learning_state" field.
func LearningStateGT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGT(FieldLearningState, v))
}

// LearningStateGTE applies the GTE predicate on the "learning_state" field.
func LearningStateGTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldGTE(FieldLearningState, v))
}

// LearningStateLT applies the LT predicate on the "learning_state" field.
func LearningStateLT(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLT(FieldLearningState, v))
}

// LearningStateLTE applies the LTE predicate on the "learning_state" field.
func LearningStateLTE(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldLTE(FieldLearningState, v))
}

// LearningStateContains applies the Contains predicate on the "learning_state" field.
func LearningStateContains(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContains(FieldLearningState, v))
}

// LearningStateHasPrefix applies the HasPrefix predicate on the "learning_state" field.
func LearningStateHasPrefix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasPrefix(FieldLearningState, v))
}

// LearningStateHasSuffix applies the HasSuffix predicate on the "learning_state" field.
func LearningStateHasSuffix(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldHasSuffix(FieldLearningState, v))
}

// LearningStateEqualFold applies the EqualFold predicate on the "learning_state" field.
func LearningStateEqualFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldEqualFold(FieldLearningState, v))
}

// LearningStateContainsFold applies the ContainsFold predicate on the "learning_state" field.
func LearningStateContainsFold(v string) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.FieldContainsFold(FieldLearningState, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ObservationEvent) predicate.ObservationEvent {
	return predicate.ObservationEvent(sql.NotPredicates(p))
}
