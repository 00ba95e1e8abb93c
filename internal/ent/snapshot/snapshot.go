// Code generated by ent, DO NOT EDIT.

package snapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the snapshot type in the database.
	Label = "snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSnapshotID holds the string denoting the snapshot_id field in the database.
	FieldSnapshotID = "snapshot_id"
	// FieldViewID holds the string denoting the view_id field in the database.
	FieldViewID = "view_id"
	// FieldSeqNr holds the string denoting the seq_nr field in the database.
	FieldSeqNr = "seq_nr"
	// FieldOffset holds the string denoting the offset field in the database.
	FieldOffset = "offset"
	// FieldEntitySeqs holds the string denoting the entity_seqs field in the database.
	FieldEntitySeqs = "entity_seqs"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the snapshot in the database.
	Table = "snapshots"
)

// Columns holds all SQL columns for snapshot fields.
var Columns = []string{
	FieldID,
	FieldSnapshotID,
	FieldViewID,
	FieldSeqNr,
	FieldOffset,
	FieldEntitySeqs,
	FieldState,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SnapshotIDValidator is a validator for the "snapshot_id" field. It is called by the builders before save.
	SnapshotIDValidator func(string) error
	// ViewIDValidator is a validator for the "view_id" field. It is called by the builders before save.
	ViewIDValidator func(string) error
	// SeqNrValidator is a validator for the "seq_nr" field. It is called by the builders before save.
	SeqNrValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Snapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySnapshotID orders the results by the snapshot_id field.
func BySnapshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshotID, opts...).ToFunc()
}

// ByViewID orders the results by the view_id field.
func ByViewID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewID, opts...).ToFunc()
}

// BySeqNr orders the results by the seq_nr field.
func BySeqNr(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeqNr, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
