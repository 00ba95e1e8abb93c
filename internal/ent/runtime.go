// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wilhg/projector/internal/ent/event"
	"github.com/wilhg/projector/internal/ent/schema"
	"github.com/wilhg/projector/internal/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescEventID is the schema descriptor for event_id field.
	eventDescEventID := eventFields[0].Descriptor()
	// event.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	event.EventIDValidator = eventDescEventID.Validators[0].(func(string) error)
	// eventDescTag is the schema descriptor for tag field.
	eventDescTag := eventFields[1].Descriptor()
	// event.TagValidator is a validator for the "tag" field. It is called by the builders before save.
	event.TagValidator = eventDescTag.Validators[0].(func(string) error)
	// eventDescEntityID is the schema descriptor for entity_id field.
	eventDescEntityID := eventFields[2].Descriptor()
	// event.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	event.EntityIDValidator = eventDescEntityID.Validators[0].(func(string) error)
	// eventDescGlobalSeq is the schema descriptor for global_seq field.
	eventDescGlobalSeq := eventFields[4].Descriptor()
	// event.GlobalSeqValidator is a validator for the "global_seq" field. It is called by the builders before save.
	event.GlobalSeqValidator = eventDescGlobalSeq.Validators[0].(func(int64) error)
	// eventDescType is the schema descriptor for type field.
	eventDescType := eventFields[5].Descriptor()
	// event.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	event.TypeValidator = eventDescType.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[7].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSnapshotID is the schema descriptor for snapshot_id field.
	snapshotDescSnapshotID := snapshotFields[0].Descriptor()
	// snapshot.SnapshotIDValidator is a validator for the "snapshot_id" field. It is called by the builders before save.
	snapshot.SnapshotIDValidator = snapshotDescSnapshotID.Validators[0].(func(string) error)
	// snapshotDescViewID is the schema descriptor for view_id field.
	snapshotDescViewID := snapshotFields[1].Descriptor()
	// snapshot.ViewIDValidator is a validator for the "view_id" field. It is called by the builders before save.
	snapshot.ViewIDValidator = snapshotDescViewID.Validators[0].(func(string) error)
	// snapshotDescSeqNr is the schema descriptor for seq_nr field.
	snapshotDescSeqNr := snapshotFields[2].Descriptor()
	// snapshot.SeqNrValidator is a validator for the "seq_nr" field. It is called by the builders before save.
	snapshot.SeqNrValidator = snapshotDescSeqNr.Validators[0].(func(int64) error)
	// snapshotDescCreatedAt is the schema descriptor for created_at field.
	snapshotDescCreatedAt := snapshotFields[6].Descriptor()
	// snapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	snapshot.DefaultCreatedAt = snapshotDescCreatedAt.Default.(func() time.Time)
}
