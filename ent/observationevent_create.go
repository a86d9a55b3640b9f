// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kairavparikh/quizwhiz/ent/observationevent"
)

// ObservationEventCreate is the builder for creating a ObservationEvent entity.
type ObservationEventCreate struct {
	config
	mutation *ObservationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ObservationEventCreate) SetSequence(v int64) *ObservationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ObservationEventCreate) SetTimestamp(v time.Time) *ObservationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ObservationEventCreate) SetNillableTimestamp(v *time.Time) *ObservationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetObservationID sets the "observation_id" field.
func (_c *ObservationEventCreate) SetObservationID(v string) *ObservationEventCreate {
	_c.mutation.SetObservationID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ObservationEventCreate) SetOwnerID(v string) *ObservationEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *ObservationEventCreate) SetConcept(v string) *ObservationEventCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetMisconceptionType sets the "misconception_type" field.
func (_c *ObservationEventCreate) SetMisconceptionType(v string) *ObservationEventCreate {
	_c.mutation.SetMisconceptionType(v)
	return _c
}

// SetNillableMisconceptionType sets the "misconception_type" field if the given value is not nil.
func (_c *ObservationEventCreate) SetNillableMisconceptionType(v *string) *ObservationEventCreate {
	if v != nil {
		_c.SetMisconceptionType(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ObservationEventCreate) SetCorrect(v bool) *ObservationEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ObservationEventCreate) SetConfidence(v string) *ObservationEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetLearningState sets the "learning_state" field.
func (_c *ObservationEventCreate) SetLearningState(v string) *ObservationEventCreate {
	_c.mutation.SetLearningState(v)
	return _c
}

// Mutation returns the ObservationEventMutation object of the builder.
func (_c *ObservationEventCreate) Mutation() *ObservationEventMutation {
	return _c.mutation
}

// Save creates the ObservationEvent in the database.
func (_c *ObservationEventCreate) Save(ctx context.Context) (*ObservationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationEventCreate) SaveX(ctx context.Context) *ObservationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := observationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MisconceptionType(); !ok {
		v := observationevent.DefaultMisconceptionType
		_c.mutation.SetMisconceptionType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ObservationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ObservationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ObservationID(); !ok {
		return &ValidationError{Name: "observation_id", err: errors.New(`ent: missing required field "ObservationEvent.observation_id"`)}
	}
	if v, ok := _c.mutation.ObservationID(); ok {
		if err := observationevent.ObservationIDValidator(v); err != nil {
			return &ValidationError{Name: "observation_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.observation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ObservationEvent.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := observationevent.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "ObservationEvent.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := observationevent.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "ObservationEvent.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ObservationEvent.correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ObservationEvent.confidence"`)}
	}
	if _, ok := _c.mutation.LearningState(); !ok {
		return &ValidationError{Name: "learning_state", err: errors.New(`ent: missing required field "ObservationEvent.learning_state"`)}
	}
	return nil
}

func (_c *ObservationEventCreate) sqlSave(ctx context.Context) (*ObservationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ObservationEventCreate) createSpec() (*ObservationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ObservationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observationevent.Table, sqlgraph.NewFieldSpec(observationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(observationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(observationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ObservationID(); ok {
		_spec.SetField(observationevent.FieldObservationID, field.TypeString, value)
		_node.ObservationID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(observationevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(observationevent.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.MisconceptionType(); ok {
		_spec.SetField(observationevent.FieldMisconceptionType, field.TypeString, value)
		_node.MisconceptionType = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(observationevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(observationevent.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.LearningState(); ok {
		_spec.SetField(observationevent.FieldLearningState, field.TypeString, value)
		_node.LearningState = value
	}
	return _node, _spec
}

// ObservationEventCreateBulk is the builder for creating many ObservationEvent entities in bulk.
type ObservationEventCreateBulk struct {
	config
	err      error
	builders []*ObservationEventCreate
}

// Save creates the ObservationEvent entities in the database.
func (_c *ObservationEventCreateBulk) Save(ctx context.Context) ([]*ObservationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ObservationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ObservationEventCreateBulk) SaveX(ctx context.Context) []*ObservationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
