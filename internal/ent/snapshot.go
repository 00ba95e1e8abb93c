// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wilhg/projector/internal/ent/snapshot"
)

// Snapshot is the model entity for the Snapshot schema.
type Snapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SnapshotID holds the value of the "snapshot_id" field.
	SnapshotID string `json:"snapshot_id,omitempty"`
	// ViewID holds the value of the "view_id" field.
	ViewID string `json:"view_id,omitempty"`
	// SeqNr holds the value of the "seq_nr" field.
	SeqNr int64 `json:"seq_nr,omitempty"`
	// Offset holds the value of the "offset" field.
	Offset []byte `json:"offset,omitempty"`
	// EntitySeqs holds the value of the "entity_seqs" field.
	EntitySeqs map[string]uint64 `json:"entity_seqs,omitempty"`
	// State holds the value of the "state" field.
	State map[string]interface{} `json:"state,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Snapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case snapshot.FieldOffset, snapshot.FieldEntitySeqs, snapshot.FieldState:
			values[i] = new([]byte)
		case snapshot.FieldID, snapshot.FieldSeqNr:
			values[i] = new(sql.NullInt64)
		case snapshot.FieldSnapshotID, snapshot.FieldViewID:
			values[i] = new(sql.NullString)
		case snapshot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Snapshot fields.
func (_m *Snapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case snapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case snapshot.FieldSnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot_id", values[i])
			} else if value.Valid {
				_m.SnapshotID = value.String
			}
		case snapshot.FieldViewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field view_id", values[i])
			} else if value.Valid {
				_m.ViewID = value.String
			}
		case snapshot.FieldSeqNr:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq_nr", values[i])
			} else if value.Valid {
				_m.SeqNr = value.Int64
			}
		case snapshot.FieldOffset:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field offset", values[i])
			} else if value != nil {
				_m.Offset = *value
			}
		case snapshot.FieldEntitySeqs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_seqs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntitySeqs); err != nil {
					return fmt.Errorf("unmarshal field entity_seqs: %w", err)
				}
			}
		case snapshot.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case snapshot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Snapshot.
// This includes values selected through modifiers, order, etc.
func (_m *Snapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Snapshot.
// Note that you need to call Snapshot.Unwrap() before calling this method if this Snapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Snapshot) Update() *SnapshotUpdateOne {
	return NewSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Snapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Snapshot) Unwrap() *Snapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Snapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Snapshot) String() string {
	var builder strings.Builder
	builder.WriteString("Snapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("snapshot_id=")
	builder.WriteString(_m.SnapshotID)
	builder.WriteString(", ")
	builder.WriteString("view_id=")
	builder.WriteString(_m.ViewID)
	builder.WriteString(", ")
	builder.WriteString("seq_nr=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeqNr))
	builder.WriteString(", ")
	builder.WriteString("offset=")
	builder.WriteString(fmt.Sprintf("%v", _m.Offset))
	builder.WriteString(", ")
	builder.WriteString("entity_seqs=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntitySeqs))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Snapshots is a parsable slice of Snapshot.
type Snapshots []*Snapshot
