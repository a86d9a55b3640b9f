// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kairavparikh/quizwhiz/ent/misconception"
	"github.com/Kairavparikh/quizwhiz/ent/predicate"
)

// MisconceptionUpdate is the builder for updating Misconception entities.
type MisconceptionUpdate struct {
	config
	hooks    []Hook
	mutation *MisconceptionMutation
}

// Where appends a list predicates to the MisconceptionUpdate builder.
func (_u *MisconceptionUpdate) Where(ps ...predicate.Misconception) *MisconceptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *MisconceptionUpdate) SetOwnerID(v string) *MisconceptionUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableOwnerID(v *string) *MisconceptionUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *MisconceptionUpdate) SetConcept(v string) *MisconceptionUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableConcept(v *string) *MisconceptionUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMisconceptionType sets the "misconception_type" field.
func (_u *MisconceptionUpdate) SetMisconceptionType(v string) *MisconceptionUpdate {
	_u.mutation.SetMisconceptionType(v)
	return _u
}

// SetNillableMisconceptionType sets the "misconception_type" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableMisconceptionType(v *string) *MisconceptionUpdate {
	if v != nil {
		_u.SetMisconceptionType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MisconceptionUpdate) SetStrength(v int) *MisconceptionUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableStrength(v *int) *MisconceptionUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *MisconceptionUpdate) AddStrength(v int) *MisconceptionUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *MisconceptionUpdate) SetOccurrenceCount(v int) *MisconceptionUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableOccurrenceCount(v *int) *MisconceptionUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *MisconceptionUpdate) AddOccurrenceCount(v int) *MisconceptionUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *MisconceptionUpdate) SetCorrectStreak(v int) *MisconceptionUpdate {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableCorrectStreak(v *int) *MisconceptionUpdate {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *MisconceptionUpdate) AddCorrectStreak(v int) *MisconceptionUpdate {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MisconceptionUpdate) SetStatus(v string) *MisconceptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableStatus(v *string) *MisconceptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *MisconceptionUpdate) SetLastObservedAt(v time.Time) *MisconceptionUpdate {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableLastObservedAt(v *time.Time) *MisconceptionUpdate {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MisconceptionUpdate) SetResolvedAt(v time.Time) *MisconceptionUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MisconceptionUpdate) SetNillableResolvedAt(v *time.Time) *MisconceptionUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MisconceptionUpdate) ClearResolvedAt() *MisconceptionUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MisconceptionMutation object of the builder.
func (_u *MisconceptionUpdate) Mutation() *MisconceptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MisconceptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MisconceptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MisconceptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MisconceptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MisconceptionUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := misconception.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Misconception.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := misconception.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "Misconception.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MisconceptionType(); ok {
		if err := misconception.MisconceptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "misconception_type", err: fmt.Errorf(`ent: validator failed for field "Misconception.misconception_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MisconceptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(misconception.Table, misconception.Columns, sqlgraph.NewFieldSpec(misconception.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(misconception.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(misconception.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionType(); ok {
		_spec.SetField(misconception.FieldMisconceptionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(misconception.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(misconception.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconception.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(misconception.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(misconception.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(misconception.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(misconception.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(misconception.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(misconception.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(misconception.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{misconception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MisconceptionUpdateOne is the builder for updating a single Misconception entity.
type MisconceptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MisconceptionMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *MisconceptionUpdateOne) SetOwnerID(v string) *MisconceptionUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableOwnerID(v *string) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *MisconceptionUpdateOne) SetConcept(v string) *MisconceptionUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableConcept(v *string) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMisconceptionType sets the "misconception_type" field.
func (_u *MisconceptionUpdateOne) SetMisconceptionType(v string) *MisconceptionUpdateOne {
	_u.mutation.SetMisconceptionType(v)
	return _u
}

// SetNillableMisconceptionType sets the "misconception_type" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableMisconceptionType(v *string) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetMisconceptionType(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *MisconceptionUpdateOne) SetStrength(v int) *MisconceptionUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableStrength(v *int) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *MisconceptionUpdateOne) AddStrength(v int) *MisconceptionUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *MisconceptionUpdateOne) SetOccurrenceCount(v int) *MisconceptionUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableOccurrenceCount(v *int) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *MisconceptionUpdateOne) AddOccurrenceCount(v int) *MisconceptionUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetCorrectStreak sets the "correct_streak" field.
func (_u *MisconceptionUpdateOne) SetCorrectStreak(v int) *MisconceptionUpdateOne {
	_u.mutation.ResetCorrectStreak()
	_u.mutation.SetCorrectStreak(v)
	return _u
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableCorrectStreak(v *int) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetCorrectStreak(*v)
	}
	return _u
}

// AddCorrectStreak adds value to the "correct_streak" field.
func (_u *MisconceptionUpdateOne) AddCorrectStreak(v int) *MisconceptionUpdateOne {
	_u.mutation.AddCorrectStreak(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MisconceptionUpdateOne) SetStatus(v string) *MisconceptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableStatus(v *string) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *MisconceptionUpdateOne) SetLastObservedAt(v time.Time) *MisconceptionUpdateOne {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableLastObservedAt(v *time.Time) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *MisconceptionUpdateOne) SetResolvedAt(v time.Time) *MisconceptionUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *MisconceptionUpdateOne) SetNillableResolvedAt(v *time.Time) *MisconceptionUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *MisconceptionUpdateOne) ClearResolvedAt() *MisconceptionUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the MisconceptionMutation object of the builder.
func (_u *MisconceptionUpdateOne) Mutation() *MisconceptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MisconceptionUpdate builder.
func (_u *MisconceptionUpdateOne) Where(ps ...predicate.Misconception) *MisconceptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MisconceptionUpdateOne) Select(field string, fields ...string) *MisconceptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Misconception entity.
func (_u *MisconceptionUpdateOne) Save(ctx context.Context) (*Misconception, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MisconceptionUpdateOne) SaveX(ctx context.Context) *Misconception {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MisconceptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MisconceptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MisconceptionUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := misconception.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Misconception.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := misconception.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "Misconception.concept": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MisconceptionType(); ok {
		if err := misconception.MisconceptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "misconception_type", err: fmt.Errorf(`ent: validator failed for field "Misconception.misconception_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MisconceptionUpdateOne) sqlSave(ctx context.Context) (_node *Misconception, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(misconception.Table, misconception.Columns, sqlgraph.NewFieldSpec(misconception.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Misconception.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, misconception.FieldID)
		for _, f := range fields {
			if !misconception.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != misconception.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(misconception.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(misconception.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionType(); ok {
		_spec.SetField(misconception.FieldMisconceptionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(misconception.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(misconception.FieldStrength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconception.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(misconception.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectStreak(); ok {
		_spec.SetField(misconception.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectStreak(); ok {
		_spec.AddField(misconception.FieldCorrectStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(misconception.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(misconception.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(misconception.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(misconception.FieldResolvedAt, field.TypeTime)
	}
	_node = &Misconception{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{misconception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
