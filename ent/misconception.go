// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kairavparikh/quizwhiz/ent/misconception"
)

// Misconception is the model entity for the Misconception schema.
type Misconception struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this record belongs to
	OwnerID string `json:"owner_id,omitempty"`
	// Concept the error occurs on
	Concept string `json:"concept,omitempty"`
	// The tracked error pattern
	MisconceptionType string `json:"misconception_type,omitempty"`
	// How entrenched the misconception is, clamped 1-10
	Strength int `json:"strength,omitempty"`
	// Times incorrect evidence has been observed
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// Consecutive correct observations; resets on a wrong answer
	CorrectStreak int `json:"correct_streak,omitempty"`
	// active, resolving, or resolved
	Status string `json:"status,omitempty"`
	// When the triple was last observed
	LastObservedAt time.Time `json:"last_observed_at,omitempty"`
	// Set only on the transition into resolved
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Misconception) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case misconception.FieldID, misconception.FieldStrength, misconception.FieldOccurrenceCount, misconception.FieldCorrectStreak:
			values[i] = new(sql.NullInt64)
		case misconception.FieldOwnerID, misconception.FieldConcept, misconception.FieldMisconceptionType, misconception.FieldStatus:
			values[i] = new(sql.NullString)
		case misconception.FieldLastObservedAt, misconception.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Misconception fields.
func (_m *Misconception) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case misconception.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case misconception.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case misconception.FieldConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept", values[i])
			} else if value.Valid {
				_m.Concept = value.String
			}
		case misconception.FieldMisconceptionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misconception_type", values[i])
			} else if value.Valid {
				_m.MisconceptionType = value.String
			}
		case misconception.FieldStrength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field strength", values[i])
			} else if value.Valid {
				_m.Strength = int(value.Int64)
			}
		case misconception.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case misconception.FieldCorrectStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_streak", values[i])
			} else if value.Valid {
				_m.CorrectStreak = int(value.Int64)
			}
		case misconception.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case misconception.FieldLastObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_observed_at", values[i])
			} else if value.Valid {
				_m.LastObservedAt = value.Time
			}
		case misconception.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Misconception.
// This includes values selected through modifiers, order, etc.
func (_m *Misconception) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Misconception.
// Note that you need to call Misconception.Unwrap() before calling this method if this Misconception
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Misconception) Update() *MisconceptionUpdateOne {
	return NewMisconceptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Misconception entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Misconception) Unwrap() *Misconception {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Misconception is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Misconception) String() string {
	var builder strings.Builder
	builder.WriteString("Misconception(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("concept=")
	builder.WriteString(_m.Concept)
	builder.WriteString(", ")
	builder.WriteString("misconception_type=")
	builder.WriteString(_m.MisconceptionType)
	builder.WriteString(", ")
	builder.WriteString("strength=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strength))
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("correct_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectStreak))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("last_observed_at=")
	builder.WriteString(_m.LastObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Misconceptions is a parsable slice of Misconception.
type Misconceptions []*Misconception
