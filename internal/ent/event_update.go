// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wilhg/projector/internal/ent/event"
	"github.com/wilhg/projector/internal/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *EventUpdate) SetEventID(v string) *EventUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventID(v *string) *EventUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetTag sets the "tag" field.
func (_u *EventUpdate) SetTag(v string) *EventUpdate {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTag(v *string) *EventUpdate {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EventUpdate) SetEntityID(v string) *EventUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEntityID(v *string) *EventUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *EventUpdate) SetSeq(v uint64) *EventUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *EventUpdate) SetNillableSeq(v *uint64) *EventUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *EventUpdate) AddSeq(v int64) *EventUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetGlobalSeq sets the "global_seq" field.
func (_u *EventUpdate) SetGlobalSeq(v int64) *EventUpdate {
	_u.mutation.ResetGlobalSeq()
	_u.mutation.SetGlobalSeq(v)
	return _u
}

// SetNillableGlobalSeq sets the "global_seq" field if the given value is not nil.
func (_u *EventUpdate) SetNillableGlobalSeq(v *int64) *EventUpdate {
	if v != nil {
		_u.SetGlobalSeq(*v)
	}
	return _u
}

// AddGlobalSeq adds value to the "global_seq" field.
func (_u *EventUpdate) AddGlobalSeq(v int64) *EventUpdate {
	_u.mutation.AddGlobalSeq(v)
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdate) SetType(v string) *EventUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdate) SetNillableType(v *string) *EventUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventUpdate) SetPayload(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EventUpdate) ClearPayload() *EventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := event.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "Event.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tag(); ok {
		if err := event.TagValidator(v); err != nil {
			return &ValidationError{Name: "tag", err: fmt.Errorf(`ent: validator failed for field "Event.tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityID(); ok {
		if err := event.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Event.entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalSeq(); ok {
		if err := event.GlobalSeqValidator(v); err != nil {
			return &ValidationError{Name: "global_seq", err: fmt.Errorf(`ent: validator failed for field "Event.global_seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := event.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Event.type": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(event.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(event.FieldTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(event.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(event.FieldSeq, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(event.FieldSeq, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.GlobalSeq(); ok {
		_spec.SetField(event.FieldGlobalSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGlobalSeq(); ok {
		_spec.AddField(event.FieldGlobalSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(event.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetEventID sets the "event_id" field.
func (_u *EventUpdateOne) SetEventID(v string) *EventUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// SetTag sets the "tag" field.
func (_u *EventUpdateOne) SetTag(v string) *EventUpdateOne {
	_u.mutation.SetTag(v)
	return _u
}

// SetNillableTag sets the "tag" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTag(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTag(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EventUpdateOne) SetEntityID(v string) *EventUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEntityID(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *EventUpdateOne) SetSeq(v uint64) *EventUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableSeq(v *uint64) *EventUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *EventUpdateOne) AddSeq(v int64) *EventUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetGlobalSeq sets the "global_seq" field.
func (_u *EventUpdateOne) SetGlobalSeq(v int64) *EventUpdateOne {
	_u.mutation.ResetGlobalSeq()
	_u.mutation.SetGlobalSeq(v)
	return _u
}

// SetNillableGlobalSeq sets the "global_seq" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableGlobalSeq(v *int64) *EventUpdateOne {
	if v != nil {
		_u.SetGlobalSeq(*v)
	}
	return _u
}

// AddGlobalSeq adds value to the "global_seq" field.
func (_u *EventUpdateOne) AddGlobalSeq(v int64) *EventUpdateOne {
	_u.mutation.AddGlobalSeq(v)
	return _u
}

// SetType sets the "type" field.
func (_u *EventUpdateOne) SetType(v string) *EventUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableType(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventUpdateOne) SetPayload(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EventUpdateOne) ClearPayload() *EventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := event.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "Event.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tag(); ok {
		if err := event.TagValidator(v); err != nil {
			return &ValidationError{Name: "tag", err: fmt.Errorf(`ent: validator failed for field "Event.tag": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityID(); ok {
		if err := event.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Event.entity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GlobalSeq(); ok {
		if err := event.GlobalSeqValidator(v); err != nil {
			return &ValidationError{Name: "global_seq", err: fmt.Errorf(`ent: validator failed for field "Event.global_seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := event.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Event.type": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(event.FieldEventID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tag(); ok {
		_spec.SetField(event.FieldTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(event.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(event.FieldSeq, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(event.FieldSeq, field.TypeUint64, value)
	}
	if value, ok := _u.mutation.GlobalSeq(); ok {
		_spec.SetField(event.FieldGlobalSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedGlobalSeq(); ok {
		_spec.AddField(event.FieldGlobalSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(event.FieldPayload, field.TypeJSON)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
