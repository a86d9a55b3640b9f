// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kairavparikh/quizwhiz/ent/observationevent"
	"github.com/Kairavparikh/quizwhiz/ent/predicate"
)

// ObservationEventUpdate is the builder for updating ObservationEvent entities.
type ObservationEventUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationEventMutation
}

// Where appends a list predicates to the ObservationEventUpdate builder.
func (_u *ObservationEventUpdate) Where(ps ...predicate.ObservationEvent) *ObservationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObservationID sets the "observation_id" field.
func (_u *ObservationEventUpdate) SetObservationID(v string) *ObservationEventUpdate {
	_u.mutation.SetObservationID(v)
	return _u
}

// SetNillableObservationID sets the "observation_id" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableObservationID(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetObservationID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ObservationEventUpdate) SetOwnerID(v string) *ObservationEventUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableOwnerID(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ObservationEventUpdate) SetConcept(v string) *ObservationEventUpdate {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableConcept(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMisconceptionType sets the "misconception_type" field.
func (_u *ObservationEventUpdate) SetMisconceptionType(v string) *ObservationEventUpdate {
	_u.mutation.SetMisconceptionType(v)
	return _u
}

// SetNillableMisconceptionType sets the "misconception_type" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableMisconceptionType(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetMisconceptionType(*v)
	}
	return _u
}

// ClearMisconceptionType clears the value of the "misconception_type" field.
func (_u *ObservationEventUpdate) ClearMisconceptionType() *ObservationEventUpdate {
	_u.mutation.ClearMisconceptionType()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ObservationEventUpdate) SetCorrect(v bool) *ObservationEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableCorrect(v *bool) *ObservationEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ObservationEventUpdate) SetConfidence(v string) *ObservationEventUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableConfidence(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetLearningState sets the "learning_state" field.
func (_u *ObservationEventUpdate) SetLearningState(v string) *ObservationEventUpdate {
	_u.mutation.SetLearningState(v)
	return _u
}

// SetNillableLearningState sets the "learning_state" field if the given value is not nil.
func (_u *ObservationEventUpdate) SetNillableLearningState(v *string) *ObservationEventUpdate {
	if v != nil {
		_u.SetLearningState(*v)
	}
	return _u
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_u *ObservationEventUpdate) Mutation() *ObservationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationEventUpdate) check() error {
	if v, ok := _u.mutation.ObservationID(); ok {
		if err := observationevent.ObservationIDValidator(v); err != nil {
			return &ValidationError{Name: "observation_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.observation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := observationevent.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := observationevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationevent.Table, observationevent.Columns, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObservationID(); ok {
		_spec.SetField(observationevent.FieldObservationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(observationevent.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(observationevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionType(); ok {
		_spec.SetField(observationevent.FieldMisconceptionType, field.TypeString, value)
	}
	if _u.mutation.MisconceptionTypeCleared() {
		_spec.ClearField(observationevent.FieldMisconceptionType, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(observationevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningState(); ok {
		_spec.SetField(observationevent.FieldLearningState, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationEventUpdateOne is the builder for updating a single ObservationEvent entity.
type ObservationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationEventMutation
}

// SetObservationID sets the "observation_id" field.
func (_u *ObservationEventUpdateOne) SetObservationID(v string) *ObservationEventUpdateOne {
	_u.mutation.SetObservationID(v)
	return _u
}

// SetNillableObservationID sets the "observation_id" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableObservationID(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetObservationID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ObservationEventUpdateOne) SetOwnerID(v string) *ObservationEventUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableOwnerID(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConcept sets the "concept" field.
func (_u *ObservationEventUpdateOne) SetConcept(v string) *ObservationEventUpdateOne {
	_u.mutation.SetConcept(v)
	return _u
}

// SetNillableConcept sets the "concept" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableConcept(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetConcept(*v)
	}
	return _u
}

// SetMisconceptionType sets the "misconception_type" field.
func (_u *ObservationEventUpdateOne) SetMisconceptionType(v string) *ObservationEventUpdateOne {
	_u.mutation.SetMisconceptionType(v)
	return _u
}

// SetNillableMisconceptionType sets the "misconception_type" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableMisconceptionType(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetMisconceptionType(*v)
	}
	return _u
}

// ClearMisconceptionType clears the value of the "misconception_type" field.
func (_u *ObservationEventUpdateOne) ClearMisconceptionType() *ObservationEventUpdateOne {
	_u.mutation.ClearMisconceptionType()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ObservationEventUpdateOne) SetCorrect(v bool) *ObservationEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableCorrect(v *bool) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ObservationEventUpdateOne) SetConfidence(v string) *ObservationEventUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableConfidence(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetLearningState sets the "learning_state" field.
func (_u *ObservationEventUpdateOne) SetLearningState(v string) *ObservationEventUpdateOne {
	_u.mutation.SetLearningState(v)
	return _u
}

// SetNillableLearningState sets the "learning_state" field if the given value is not nil.
func (_u *ObservationEventUpdateOne) SetNillableLearningState(v *string) *ObservationEventUpdateOne {
	if v != nil {
		_u.SetLearningState(*v)
	}
	return _u
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_u *ObservationEventUpdateOne) Mutation() *ObservationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservationEventUpdate builder.
func (_u *ObservationEventUpdateOne) Where(ps ...predicate.ObservationEvent) *ObservationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationEventUpdateOne) Select(field string, fields ...string) *ObservationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ObservationEvent entity.
func (_u *ObservationEventUpdateOne) Save(ctx context.Context) (*ObservationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationEventUpdateOne) SaveX(ctx context.Context) *ObservationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationEventUpdateOne) check() error {
	if v, ok := _u.mutation.ObservationID(); ok {
		if err := observationevent.ObservationIDValidator(v); err != nil {
			return &ValidationError{Name: "observation_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.observation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := observationevent.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Concept(); ok {
		if err := observationevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.concept": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationEventUpdateOne) sqlSave(ctx context.Context) (_node *ObservationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observationevent.Table, observationevent.Columns, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ObservationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observationevent.FieldID)
		for _, f := range fields {
			if !observationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observationevent.FieldID {
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
	if value, ok := _u.mutation.ObservationID(); ok {
		_spec.SetField(observationevent.FieldObservationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(observationevent.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Concept(); ok {
		_spec.SetField(observationevent.FieldConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.MisconceptionType(); ok {
		_spec.SetField(observationevent.FieldMisconceptionType, field.TypeString, value)
	}
	if _u.mutation.MisconceptionTypeCleared() {
		_spec.ClearField(observationevent.FieldMisconceptionType, field.TypeString)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(observationevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningState(); ok {
		_spec.SetField(observationevent.FieldLearningState, field.TypeString, value)
	}
	_node = &ObservationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
