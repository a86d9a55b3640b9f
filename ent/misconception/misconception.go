// Code generated by ent, DO NOT EDIT.

package misconception

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the misconception type in the database.
	Label = "misconception"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldConcept holds the string denoting the concept field in the database.
	FieldConcept = "concept"
	// FieldMisconceptionType holds the string denoting the misconception_type field in the database.
	FieldMisconceptionType = "misconception_type"
	// FieldStrength holds the string denoting the strength field in the database.
	FieldStrength = "strength"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldCorrectStreak holds the string denoting the correct_streak field in the database.
	FieldCorrectStreak = "correct_streak"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastObservedAt holds the string denoting the last_observed_at field in the database.
	FieldLastObservedAt = "last_observed_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the misconception in the database.
	Table = "misconceptions"
)

// Columns holds all SQL columns for misconception fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldConcept,
	FieldMisconceptionType,
	FieldStrength,
	FieldOccurrenceCount,
	FieldCorrectStreak,
	FieldStatus,
	FieldLastObservedAt,
	FieldResolvedAt,
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
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	ConceptValidator func(string) error
	// MisconceptionTypeValidator is a validator for the "misconception_type" field. It is called by the builders before save.
	MisconceptionTypeValidator func(string) error
	// DefaultCorrectStreak holds the default value on creation for the "correct_streak" field.
	DefaultCorrectStreak int
)

// OrderOption defines the ordering options for the Misconception queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
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

// ByStrength orders the results by the strength field.
func ByStrength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrength, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByCorrectStreak orders the results by the correct_streak field.
func ByCorrectStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectStreak, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastObservedAt orders the results by the last_observed_at field.
func ByLastObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastObservedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
