// Code generated by ent, DO NOT EDIT.

package observationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the observationevent type in the database.
	Label = "observation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldObservationID holds the string denoting the observation_id field in the database.
	FieldObservationID = "observation_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldMisconceptionType holds the string denoting the misconception_type field in the database.
	FieldMisconceptionType = "misconception_type"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldLearningState holds the string denoting the learning_state field in the database.
	FieldLearningState = "learning_state"
	// Table holds the table name of the observationevent in the database.
	Table = "observation_events"
)

// Columns holds all SQL columns for observationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldObservationID,
	FieldOwnerID,
	FieldConcept,
	FieldMisconceptionType,
	FieldCorrect,
	FieldConfidence,
	FieldLearningState,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ObservationIDValidator is a validator for the "observation_id" field. It is called by the builders before save.
	ObservationIDValidator func(string) error
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// DefaultMisconceptionType holds the default value on creation for the "misconception_type" field.
	DefaultMisconceptionType string
)

// OrderOption defines the ordering options for the ObservationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByObservationID orders the results by the observation_id field.
func ByObservationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservationID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByConcept orders the results by the concept field.
func ByConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcept, opts...).ToFunc()
}

// ByMisconceptionType orders the results by the misconception_type field.
func ByMisconceptionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisconceptionType, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByLearningState orders the results by the learning_state field.
func ByLearningState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningState, opts...).ToFunc()
}
