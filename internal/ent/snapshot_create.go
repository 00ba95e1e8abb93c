// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/projector/internal/ent/snapshot"
)

// SnapshotCreate is the builder for creating a Snapshot entity.
type SnapshotCreate struct {
	config
	mutation *SnapshotMutation
	hooks    []Hook
}

// SetSnapshotID sets the "snapshot_id" field.
func (_c *SnapshotCreate) SetSnapshotID(v string) *SnapshotCreate {
	_c.mutation.SetSnapshotID(v)
	return _c
}

// SetViewID sets the "view_id" field.
func (_c *SnapshotCreate) SetViewID(v string) *SnapshotCreate {
	_c.mutation.SetViewID(v)
	return _c
}

// SetSeqNr sets the "seq_nr" field.
func (_c *SnapshotCreate) SetSeqNr(v int64) *SnapshotCreate {
	_c.mutation.SetSeqNr(v)
	return _c
}

// SetOffset sets the "offset" field.
func (_c *SnapshotCreate) SetOffset(v []byte) *SnapshotCreate {
	_c.mutation.SetOffset(v)
	return _c
}

// SetEntitySeqs sets the "entity_seqs" field.
func (_c *SnapshotCreate) SetEntitySeqs(v map[string]uint64) *SnapshotCreate {
	_c.mutation.SetEntitySeqs(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SnapshotCreate) SetState(v map[string]interface{}) *SnapshotCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SnapshotCreate) SetCreatedAt(v time.Time) *SnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SnapshotCreate) SetNillableCreatedAt(v *time.Time) *SnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SnapshotMutation object of the builder.
func (_c *SnapshotCreate) Mutation() *SnapshotMutation {
	return _c.mutation
}

// Save creates the Snapshot in the database.
func (_c *SnapshotCreate) Save(ctx context.Context) (*Snapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SnapshotCreate) SaveX(ctx context.Context) *Snapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := snapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SnapshotCreate) check() error {
	if _, ok := _c.mutation.SnapshotID(); !ok {
		return &ValidationError{Name: "snapshot_id", err: errors.New(`ent: missing required field "Snapshot.snapshot_id"`)}
	}
	if v, ok := _c.mutation.SnapshotID(); ok {
		if err := snapshot.SnapshotIDValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.snapshot_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ViewID(); !ok {
		return &ValidationError{Name: "view_id", err: errors.New(`ent: missing required field "Snapshot.view_id"`)}
	}
	if v, ok := _c.mutation.ViewID(); ok {
		if err := snapshot.ViewIDValidator(v); err != nil {
			return &ValidationError{Name: "view_id", err: fmt.Errorf(`ent: validator failed for field "Snapshot.view_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeqNr(); !ok {
		return &ValidationError{Name: "seq_nr", err: errors.New(`ent: missing required field "Snapshot.seq_nr"`)}
	}
	if v, ok := _c.mutation.SeqNr(); ok {
		if err := snapshot.SeqNrValidator(v); err != nil {
			return &ValidationError{Name: "seq_nr", err: fmt.Errorf(`ent: validator failed for field "Snapshot.seq_nr": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Snapshot.created_at"`)}
	}
	return nil
}

func (_c *SnapshotCreate) sqlSave(ctx context.Context) (*Snapshot, error) {
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

func (_c *SnapshotCreate) createSpec() (*Snapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &Snapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(snapshot.Table, sqlgraph.NewFieldSpec(snapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SnapshotID(); ok {
		_spec.SetField(snapshot.FieldSnapshotID, field.TypeString, value)
		_node.SnapshotID = value
	}
	if value, ok := _c.mutation.ViewID(); ok {
		_spec.SetField(snapshot.FieldViewID, field.TypeString, value)
		_node.ViewID = value
	}
	if value, ok := _c.mutation.SeqNr(); ok {
		_spec.SetField(snapshot.FieldSeqNr, field.TypeInt64, value)
		_node.SeqNr = value
	}
	if value, ok := _c.mutation.Offset(); ok {
		_spec.SetField(snapshot.FieldOffset, field.TypeBytes, value)
		_node.Offset = value
	}
	if value, ok := _c.mutation.EntitySeqs(); ok {
		_spec.SetField(snapshot.FieldEntitySeqs, field.TypeJSON, value)
		_node.EntitySeqs = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(snapshot.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(snapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SnapshotCreateBulk is the builder for creating many Snapshot entities in bulk.
type SnapshotCreateBulk struct {
	config
	err      error
	builders []*SnapshotCreate
}

// Save creates the Snapshot entities in the database.
func (_c *SnapshotCreateBulk) Save(ctx context.Context) ([]*Snapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Snapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SnapshotMutation)
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
func (_c *SnapshotCreateBulk) SaveX(ctx context.Context) []*Snapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
