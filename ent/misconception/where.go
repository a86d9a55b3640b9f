// Code generated by ent, DO NOT EDIT.

package misconception

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Kairavparikh/quizwhiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldOwnerID, v))
}

// Concept applies equality check predicate on the "concept" field. It's identical to ConceptEQ.
func Concept(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldConcept, v))
}

// MisconceptionType applies equality check predicate on the "misconception_type" field. It's identical to MisconceptionTypeEQ.
func MisconceptionType(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldMisconceptionType, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldStrength, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldOccurrenceCount, v))
}

// CorrectStreak applies equality check predicate on the "correct_streak" field. It's identical to CorrectStreakEQ.
func CorrectStreak(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldCorrectStreak, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldStatus, v))
}

// LastObservedAt applies equality check predicate on the "last_observed_at" field. It's identical to LastObservedAtEQ.
func LastObservedAt(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldLastObservedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldResolvedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContainsFold(FieldOwnerID, v))
}

// ConceptEQ applies the EQ predicate on the "concept" field.
func ConceptEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldConcept, v))
}

// ConceptNEQ applies the NEQ predicate on the "concept" field.
func ConceptNEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldConcept, v))
}

// ConceptIn applies the In predicate on the "concept" field.
func ConceptIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldConcept, vs...))
}

// ConceptNotIn applies the NotIn predicate on the "concept" field.
func ConceptNotIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldConcept, vs...))
}

// ConceptGT applies the GT predicate on the "concept" field.
func ConceptGT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldConcept, v))
}

// ConceptGTE applies the GTE predicate on the "concept" field.
func ConceptGTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldConcept, v))
}

// ConceptLT applies the LT predicate on the "concept" field.
func ConceptLT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldConcept, v))
}

// ConceptLTE applies the LTE predicate on the "concept" field.
func ConceptLTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldConcept, v))
}

// ConceptContains applies the Contains predicate on the "concept" field.
func ConceptContains(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContains(FieldConcept, v))
}

// ConceptHasPrefix applies the HasPrefix predicate on the "concept" field.
func ConceptHasPrefix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasPrefix(FieldConcept, v))
}

// ConceptHasSuffix applies the HasSuffix predicate on the "concept" field.
func ConceptHasSuffix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasSuffix(FieldConcept, v))
}

// ConceptEqualFold applies the EqualFold predicate on the "concept" field.
func ConceptEqualFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEqualFold(FieldConcept, v))
}

// ConceptContainsFold applies the ContainsFold predicate on the "concept" field.
func ConceptContainsFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContainsFold(FieldConcept, v))
}

// MisconceptionTypeEQ applies the EQ predicate on the "misconception_type" field.
func MisconceptionTypeEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldMisconceptionType, v))
}

// MisconceptionTypeNEQ applies the NEQ predicate on the "misconception_type" field.
func MisconceptionTypeNEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldMisconceptionType, v))
}

// MisconceptionTypeIn applies the In predicate on the "misconception_type" field.
func MisconceptionTypeIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldMisconceptionType, vs...))
}

// MisconceptionTypeNotIn applies the NotIn predicate on the "misconception_type" field.
func MisconceptionTypeNotIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldMisconceptionType, vs...))
}

// MisconceptionTypeGT applies the GT predicate on the "misconception_type" field.
func MisconceptionTypeGT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldMisconceptionType, v))
}

// MisconceptionTypeGTE applies the GTE predicate on the "misconception_type" field.
func MisconceptionTypeGTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldMisconceptionType, v))
}

// MisconceptionTypeLT applies the LT predicate on the "misconception_type" field.
func MisconceptionTypeLT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldMisconceptionType, v))
}

// MisconceptionTypeLTE applies the LTE predicate on the "misconception_type" field.
func MisconceptionTypeLTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldMisconceptionType, v))
}

// MisconceptionTypeContains applies the Contains predicate on the "misconception_type" field.
func MisconceptionTypeContains(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContains(FieldMisconceptionType, v))
}

// MisconceptionTypeHasPrefix applies the HasPrefix predicate on the "misconception_type" field.
func MisconceptionTypeHasPrefix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasPrefix(FieldMisconceptionType, v))
}

// MisconceptionTypeHasSuffix applies the HasSuffix predicate on the "misconception_type" field.
func MisconceptionTypeHasSuffix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasSuffix(FieldMisconceptionType, v))
}

// MisconceptionTypeEqualFold applies the EqualFold predicate on the "misconception_type" field.
func MisconceptionTypeEqualFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEqualFold(FieldMisconceptionType, v))
}

// MisconceptionTypeContainsFold applies the ContainsFold predicate on the "misconception_type" field.
func MisconceptionTypeContainsFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContainsFold(FieldMisconceptionType, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldStrength, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldOccurrenceCount, v))
}

// CorrectStreakEQ applies the EQ predicate on the "correct_streak" field.
func CorrectStreakEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldCorrectStreak, v))
}

// CorrectStreakNEQ applies the NEQ predicate on the "correct_streak" field.
func CorrectStreakNEQ(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldCorrectStreak, v))
}

// CorrectStreakIn applies the In predicate on the "correct_streak" field.
func CorrectStreakIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldCorrectStreak, vs...))
}

// CorrectStreakNotIn applies the NotIn predicate on the "correct_streak" field.
func CorrectStreakNotIn(vs ...int) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldCorrectStreak, vs...))
}

// CorrectStreakGT applies the GT predicate on the "correct_streak" field.
func CorrectStreakGT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldCorrectStreak, v))
}

// CorrectStreakGTE applies the GTE predicate on the "correct_streak" field.
func CorrectStreakGTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldCorrectStreak, v))
}

// CorrectStreakLT applies the LT predicate on the "correct_streak" field.
func CorrectStreakLT(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldCorrectStreak, v))
}

// CorrectStreakLTE applies the LTE predicate on the "correct_streak" field.
func CorrectStreakLTE(v int) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldCorrectStreak, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Misconception {
	return predicate.Misconception(sql.FieldContainsFold(FieldStatus, v))
}

// LastObservedAtEQ applies the EQ predicate on the "last_observed_at" field.
func LastObservedAtEQ(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldLastObservedAt, v))
}

// LastObservedAtNEQ applies the NEQ predicate on the "last_observed_at" field.
func LastObservedAtNEQ(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldLastObservedAt, v))
}

// LastObservedAtIn applies the In predicate on the "last_observed_at" field.
func LastObservedAtIn(vs ...time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldLastObservedAt, vs...))
}

// LastObservedAtNotIn applies the NotIn predicate on the "last_observed_at" field.
func LastObservedAtNotIn(vs ...time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldLastObservedAt, vs...))
}

// LastObservedAtGT applies the GT predicate on the "last_observed_at" field.
func LastObservedAtGT(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldLastObservedAt, v))
}

// LastObservedAtGTE applies the GTE predicate on the "last_observed_at" field.
func LastObservedAtGTE(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldLastObservedAt, v))
}

// LastObservedAtLT applies the LT predicate on the "last_observed_at" field.
func LastObservedAtLT(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldLastObservedAt, v))
}

// LastObservedAtLTE applies the LTE predicate on the "last_observed_at" field.
func LastObservedAtLTE(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldLastObservedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Misconception {
	return predicate.Misconception(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Misconception {
	return predicate.Misconception(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Misconception {
	return predicate.Misconception(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Misconception) predicate.Misconception {
	return predicate.Misconception(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Misconception) predicate.Misconception {
	return predicate.Misconception(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Misconception) predicate.Misconception {
	return predicate.Misconception(sql.NotPredicates(p))
}
