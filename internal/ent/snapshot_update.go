// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/projector/internal/ent/predicate"
	"github.com/wilhg/projector/internal/ent/snapshot"
)

// SnapshotUpdate is the builder for updating Snapshot entities.
type SnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SnapshotMutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdate) Where(ps ...predicate.Snapshot) *SnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *SnapshotUpdate) SetSnapshotID(v string) *SnapshotUpdate {
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableSnapshotID(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// SetViewID sets the "view_id" field.
func (_u *SnapshotUpdate) SetViewID(v string) *SnapshotUpdate {
	_u.mutation.SetViewID(v)
	return _u
}

// SetNillableViewID sets the "view_id" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableViewID(v *string) *SnapshotUpdate {
	if v != nil {
		_u.SetViewID(*v)
	}
	return _u
}

// SetSeqNr sets the "seq_nr" field.
func (_u *SnapshotUpdate) SetSeqNr(v int64) *SnapshotUpdate {
	_u.mutation.ResetSeqNr()
	_u.mutation.SetSeqNr(v)
	return _u
}

// SetNillableSeqNr sets the "seq_nr" field if the given value is not nil.
func (_u *SnapshotUpdate) SetNillableSeqNr(v *int64) *SnapshotUpdate {
	if v != nil {
		_u.SetSeqNr(*v)
	}
	return _u
}

// AddSeqNr adds value to the "seq_nr" field.
func (_u *SnapshotUpdate) AddSeqNr(v int64) *SnapshotUpdate {
	_u.mutation.AddSeqNr(v)
	return _u
}

// SetOffset sets the "offset" field.
func (_u *SnapshotUpdate) SetOffset(v []byte) *SnapshotUpdate {
	_u.mutation.SetOffset(v)
	return _u
}

// ClearOffset clears the value of the "offset" field.
func (_u *SnapshotUpdate) ClearOffset() *SnapshotUpdate {
	_u.mutation.ClearOffset()
	return _u
}

// SetEntitySeqs sets the "entity_seqs" field.
func (_u *SnapshotUpdate) SetEntitySeqs(v map[string]uint64) *SnapshotUpdate {
	_u.mutation.SetEntitySeqs(v)
	return _u
}

// ClearEntitySeqs clears the value of the "entity_seqs" field.
func (_u *SnapshotUpdate) ClearEntitySeqs() *SnapshotUpdate {
	_u.mutation.ClearEntitySeqs()
	return _u
}

// SetState sets the "state" field.
func (_u *SnapshotUpdate) SetState(v map[string]interface{}) *SnapshotUpdate {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *SnapshotUpdate) ClearState() *SnapshotUpdate {
	_u.mutation.ClearState()
	return _u
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdate) Mutation() *SnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdate) check() error {
	if v, ok := _u.mutation.SnapshotID(); ok {
		if err := snapshot.SnapshotIDValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.snapshot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewID(); ok {
		if err := snapshot.ViewIDValidator(v); err != nil {
			return &ValidationError{Name: "view_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.view_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeqNr(); ok {
		if err := snapshot.SeqNrValidator(v); err != nil {
			return &ValidationError{Name: "seq_nr", err: fmt.Errorf(`ent: validator failed for field "Snapshot.seq_nr": %w`, err)}
		}
	}
	return nil
}

func (_u *SnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(snapshot.FieldSnapshotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewID(); ok {
		_spec.SetField(snapshot.FieldViewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeqNr(); ok {
		_spec.SetField(snapshot.FieldSeqNr, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeqNr(); ok {
		_spec.AddField(snapshot.FieldSeqNr, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Offset(); ok {
		_spec.SetField(snapshot.FieldOffset, field.TypeBytes, value)
	}
	if _u.mutation.OffsetCleared() {
		_spec.ClearField(snapshot.FieldOffset, field.TypeBytes)
	}
	if value, ok := _u.mutation.EntitySeqs(); ok {
		_spec.SetField(snapshot.FieldEntitySeqs, field.TypeJSON, value)
	}
	if _u.mutation.EntitySeqsCleared() {
		_spec.ClearField(snapshot.FieldEntitySeqs, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(snapshot.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(snapshot.FieldState, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SnapshotUpdateOne is the builder for updating a single Snapshot entity.
type SnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SnapshotMutation
}

// SetSnapshotID sets the "snapshot_id" field.
func (_u *SnapshotUpdateOne) SetSnapshotID(v string) *SnapshotUpdateOne {
	_u.mutation.SetSnapshotID(v)
	return _u
}

// SetNillableSnapshotID sets the "snapshot_id" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableSnapshotID(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetSnapshotID(*v)
	}
	return _u
}

// SetViewID sets the "view_id" field.
func (_u *SnapshotUpdateOne) SetViewID(v string) *SnapshotUpdateOne {
	_u.mutation.SetViewID(v)
	return _u
}

// SetNillableViewID sets the "view_id" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableViewID(v *string) *SnapshotUpdateOne {
	if v != nil {
		_u.SetViewID(*v)
	}
	return _u
}

// SetSeqNr sets the "seq_nr" field.
func (_u *SnapshotUpdateOne) SetSeqNr(v int64) *SnapshotUpdateOne {
	_u.mutation.ResetSeqNr()
	_u.mutation.SetSeqNr(v)
	return _u
}

// SetNillableSeqNr sets the "seq_nr" field if the given value is not nil.
func (_u *SnapshotUpdateOne) SetNillableSeqNr(v *int64) *SnapshotUpdateOne {
	if v != nil {
		_u.SetSeqNr(*v)
	}
	return _u
}

// AddSeqNr adds value to the "seq_nr" field.
func (_u *SnapshotUpdateOne) AddSeqNr(v int64) *SnapshotUpdateOne {
	_u.mutation.AddSeqNr(v)
	return _u
}

// SetOffset sets the "offset" field.
func (_u *SnapshotUpdateOne) SetOffset(v []byte) *SnapshotUpdateOne {
	_u.mutation.SetOffset(v)
	return _u
}

// ClearOffset clears the value of the "offset" field.
func (_u *SnapshotUpdateOne) ClearOffset() *SnapshotUpdateOne {
	_u.mutation.ClearOffset()
	return _u
}

// SetEntitySeqs sets the "entity_seqs" field.
func (_u *SnapshotUpdateOne) SetEntitySeqs(v map[string]uint64) *SnapshotUpdateOne {
	_u.mutation.SetEntitySeqs(v)
	return _u
}

// ClearEntitySeqs clears the value of the "entity_seqs" field.
func (_u *SnapshotUpdateOne) ClearEntitySeqs() *SnapshotUpdateOne {
	_u.mutation.ClearEntitySeqs()
	return _u
}

// SetState sets the "state" field.
func (_u *SnapshotUpdateOne) SetState(v map[string]interface{}) *SnapshotUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *SnapshotUpdateOne) ClearState() *SnapshotUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// Mutation returns the SnapshotMutation object of the builder.
func (_u *SnapshotUpdateOne) Mutation() *SnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SnapshotUpdate builder.
func (_u *SnapshotUpdateOne) Where(ps ...predicate.Snapshot) *SnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SnapshotUpdateOne) Select(field string, fields ...string) *SnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Snapshot entity.
func (_u *SnapshotUpdateOne) Save(ctx context.Context) (*Snapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SnapshotUpdateOne) SaveX(ctx context.Context) *Snapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SnapshotID(); ok {
		if err := snapshot.SnapshotIDValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.snapshot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewID(); ok {
		if err := snapshot.ViewIDValidator(v); err != nil {
			return &ValidationError{Name: "view_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.view_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeqNr(); ok {
		if err := snapshot.SeqNrValidator(v); err != nil {
			return &ValidationError{Name: "seq_nr", err: fmt.Errorf(`ent: validator failed for field "Snapshot.seq_nr": %w`, err)}
		}
	}
	return nil
}

func (_u *SnapshotUpdateOne) sqlSave(ctx context.Context) (_node *Snapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(snapshot.Table, snapshot.Columns, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Snapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, snapshot.FieldID)
		for _, f := range fields {
			if !snapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != snapshot.FieldID {
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
	if value, ok := _u.mutation.SnapshotID(); ok {
		_spec.SetField(snapshot.FieldSnapshotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewID(); ok {
		_spec.SetField(snapshot.FieldViewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SeqNr(); ok {
		_spec.SetField(snapshot.FieldSeqNr, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeqNr(); ok {
		_spec.AddField(snapshot.FieldSeqNr, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Offset(); ok {
		_spec.SetField(snapshot.FieldOffset, field.TypeBytes, value)
	}
	if _u.mutation.OffsetCleared() {
		_spec.ClearField(snapshot.FieldOffset, field.TypeBytes)
	}
	if value, ok := _u.mutation.EntitySeqs(); ok {
		_spec.SetField(snapshot.FieldEntitySeqs, field.TypeJSON, value)
	}
	if _u.mutation.EntitySeqsCleared() {
		_spec.ClearField(snapshot.FieldEntitySeqs, field.TypeJSON)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(snapshot.FieldState, field.TypeJSON, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(snapshot.FieldState, field.TypeJSON)
	}
	_node = &Snapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{snapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
