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
	"github.com/Kairavparikh/quizwhiz/ent/predicate"
	"github.com/Kairavparikh/quizwhiz/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ReviewItemUpdate) SetOwnerID(v string) *ReviewItemUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableOwnerID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewItemUpdate) SetConceptID(v string) *ReviewItemUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableConceptID(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReviewItemUpdate) SetPriority(v int) *ReviewItemUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillablePriority(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ReviewItemUpdate) AddPriority(v int) *ReviewItemUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewItemUpdate) SetNextReviewDate(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableNextReviewDate(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewDate sets the "last_review_date" field.
func (_u *ReviewItemUpdate) SetLastReviewDate(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetLastReviewDate(v)
	return _u
}

// SetNillableLastReviewDate sets the "last_review_date" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastReviewDate(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastReviewDate(*v)
	}
	return _u
}

// ClearLastReviewDate clears the value of the "last_review_date" field.
func (_u *ReviewItemUpdate) ClearLastReviewDate() *ReviewItemUpdate {
	_u.mutation.ClearLastReviewDate()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := reviewitem.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewitem.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(reviewitem.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewitem.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(reviewitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(reviewitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewitem.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewDate(); ok {
		_spec.SetField(reviewitem.FieldLastReviewDate, field.TypeTime, value)
	}
	if _u.mutation.LastReviewDateCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewDate, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *ReviewItemUpdateOne) SetOwnerID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableOwnerID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewItemUpdateOne) SetConceptID(v string) *ReviewItemUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableConceptID(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReviewItemUpdateOne) SetPriority(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillablePriority(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ReviewItemUpdateOne) AddPriority(v int) *ReviewItemUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewItemUpdateOne) SetNextReviewDate(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableNextReviewDate(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewDate sets the "last_review_date" field.
func (_u *ReviewItemUpdateOne) SetLastReviewDate(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetLastReviewDate(v)
	return _u
}

// SetNillableLastReviewDate sets the "last_review_date" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastReviewDate(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastReviewDate(*v)
	}
	return _u
}

// ClearLastReviewDate clears the value of the "last_review_date" field.
func (_u *ReviewItemUpdateOne) ClearLastReviewDate() *ReviewItemUpdateOne {
	_u.mutation.ClearLastReviewDate()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := reviewitem.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewitem.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.concept_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
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
		_spec.SetField(reviewitem.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewitem.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(reviewitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(reviewitem.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewitem.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewDate(); ok {
		_spec.SetField(reviewitem.FieldLastReviewDate, field.TypeTime, value)
	}
	if _u.mutation.LastReviewDateCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewDate, field.TypeTime)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
