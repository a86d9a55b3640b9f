// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Kairavparikh/quizwhiz/ent/misconception"
)

// MisconceptionCreate is the builder for creating a Misconception entity.
type MisconceptionCreate struct {
	config
	mutation *MisconceptionMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *MisconceptionCreate) SetOwnerID(v string) *MisconceptionCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetConcept sets the "concept" field.
func (_c *MisconceptionCreate) SetConcept(v string) *MisconceptionCreate {
	_c.mutation.SetConcept(v)
	return _c
}

// SetMisconceptionType sets the "misconception_type" field.
func (_c *MisconceptionCreate) SetMisconceptionType(v string) *MisconceptionCreate {
	_c.mutation.SetMisconceptionType(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *MisconceptionCreate) SetStrength(v int) *MisconceptionCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *MisconceptionCreate) SetOccurrenceCount(v int) *MisconceptionCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetCorrectStreak sets the "correct_streak" field.
func (_c *MisconceptionCreate) SetCorrectStreak(v int) *MisconceptionCreate {
	_c.mutation.SetCorrectStreak(v)
	return _c
}

// SetNillableCorrectStreak sets the "correct_streak" field if the given value is not nil.
func (_c *MisconceptionCreate) SetNillableCorrectStreak(v *int) *MisconceptionCreate {
	if v != nil {
		_c.SetCorrectStreak(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MisconceptionCreate) SetStatus(v string) *MisconceptionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_c *MisconceptionCreate) SetLastObservedAt(v time.Time) *MisconceptionCreate {
	_c.mutation.SetLastObservedAt(v)
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *MisconceptionCreate) SetResolvedAt(v time.Time) *MisconceptionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *MisconceptionCreate) SetNillableResolvedAt(v *time.Time) *MisconceptionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// Mutation returns the MisconceptionMutation object of the builder.
func (_c *MisconceptionCreate) Mutation() *MisconceptionMutation {
	return _c.mutation
}

// Save creates the Misconception in the database.
func (_c *MisconceptionCreate) Save(ctx context.Context) (*Misconception, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MisconceptionCreate) SaveX(ctx context.Context) *Misconception {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MisconceptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MisconceptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MisconceptionCreate) defaults() {
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		v := misconception.DefaultCorrectStreak
		_c.mutation.SetCorrectStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MisconceptionCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Misconception.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := misconception.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Misconception.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Concept(); !ok {
		return &ValidationError{Name: "concept", err: errors.New(`ent: missing required field "Misconception.concept"`)}
	}
	if v, ok := _c.mutation.Concept(); ok {
		if err := misconception.ConceptValidator(v); err != nil {
			return &ValidationError{Name: "concept", err: fmt.Errorf(`ent: validator failed for field "Misconception.concept": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MisconceptionType(); !ok {
		return &ValidationError{Name: "misconception_type", err: errors.New(`ent: missing required field "Misconception.misconception_type"`)}
	}
	if v, ok := _c.mutation.MisconceptionType(); ok {
		if err := misconception.MisconceptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "misconception_type", err: fmt.Errorf(`ent: validator failed for field "Misconception.misconception_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "Misconception.strength"`)}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "Misconception.occurrence_count"`)}
	}
	if _, ok := _c.mutation.CorrectStreak(); !ok {
		return &ValidationError{Name: "correct_streak", err: errors.New(`ent: missing required field "Misconception.correct_streak"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Misconception.status"`)}
	}
	if _, ok := _c.mutation.LastObservedAt(); !ok {
		return &ValidationError{Name: "last_observed_at", err: errors.New(`ent: missing required field "Misconception.last_observed_at"`)}
	}
	return nil
}

func (_c *MisconceptionCreate) sqlSave(ctx context.Context) (*Misconception, error) {
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

func (_c *MisconceptionCreate) createSpec() (*Misconception, *sqlgraph.CreateSpec) {
	var (
		_node = &Misconception{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(misconception.Table, sqlgraph.NewFieldSpec(misconception.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(misconception.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Concept(); ok {
		_spec.SetField(misconception.FieldConcept, field.TypeString, value)
		_node.Concept = value
	}
	if value, ok := _c.mutation.MisconceptionType(); ok {
		_spec.SetField(misconception.FieldMisconceptionType, field.TypeString, value)
		_node.MisconceptionType = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(misconception.FieldStrength, field.TypeInt, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(misconception.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.CorrectStreak(); ok {
		_spec.SetField(misconception.FieldCorrectStreak, field.TypeInt, value)
		_node.CorrectStreak = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(misconception.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastObservedAt(); ok {
		_spec.SetField(misconception.FieldLastObservedAt, field.TypeTime, value)
		_node.LastObservedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(misconception.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// MisconceptionCreateBulk is the builder for creating many Misconception entities in bulk.
type MisconceptionCreateBulk struct {
	config
	err      error
	builders []*MisconceptionCreate
}

// Save creates the Misconception entities in the database.
func (_c *MisconceptionCreateBulk) Save(ctx context.Context) ([]*Misconception, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Misconception, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MisconceptionMutation)
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
func (_c *MisconceptionCreateBulk) SaveX(ctx context.Context) []*Misconception {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MisconceptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MisconceptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
