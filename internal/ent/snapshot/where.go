// Code generated by ent, DO NOT EDIT.

package snapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wilhg/projector/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldID, id))
}

// SnapshotID applies equality check predicate on the "snapshot_id" field. It's identical to SnapshotIDEQ.
func SnapshotID(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldSnapshotID, v))
}

// ViewID applies equality check predicate on the "view_id" field. It's identical to ViewIDEQ.
func ViewID(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldViewID, v))
}

// SeqNr applies equality check predicate on the "seq_nr" field. It's identical to SeqNrEQ.
func SeqNr(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldSeqNr, v))
}

// Offset applies equality check predicate on the "offset" field. It's identical to OffsetEQ.
func Offset(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldOffset, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// SnapshotIDEQ applies the EQ predicate on the "snapshot_id" field.
func SnapshotIDEQ(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldSnapshotID, v))
}

// SnapshotIDNEQ applies the NEQ predicate on the "snapshot_id" field.
func SnapshotIDNEQ(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldSnapshotID, v))
}

// SnapshotIDIn applies the In predicate on the "snapshot_id" field.
func SnapshotIDIn(vs ...string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldSnapshotID, vs...))
}

// SnapshotIDNotIn applies the NotIn predicate on the "snapshot_id" field.
func SnapshotIDNotIn(vs ...string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldSnapshotID, vs...))
}

// SnapshotIDGT applies the GT predicate on the "snapshot_id" field.
func SnapshotIDGT(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldSnapshotID, v))
}

// SnapshotIDGTE applies the GTE predicate on the "snapshot_id" field.
func SnapshotIDGTE(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldSnapshotID, v))
}

// SnapshotIDLT applies the LT predicate on the "snapshot_id" field.
func SnapshotIDLT(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldSnapshotID, v))
}

// SnapshotIDLTE applies the LTE predicate on the "snapshot_id" field.
func SnapshotIDLTE(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldSnapshotID, v))
}

// SnapshotIDContains applies the Contains predicate on the "snapshot_id" field.
func SnapshotIDContains(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldContains(FieldSnapshotID, v))
}

// SnapshotIDHasPrefix applies the HasPrefix predicate on the "snapshot_id" field.
func SnapshotIDHasPrefix(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldHasPrefix(FieldSnapshotID, v))
}

// SnapshotIDHasSuffix applies the HasSuffix predicate on the "snapshot_id" field.
func SnapshotIDHasSuffix(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldHasSuffix(FieldSnapshotID, v))
}

// SnapshotIDEqualFold applies the EqualFold predicate on the "snapshot_id" field.
func SnapshotIDEqualFold(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEqualFold(FieldSnapshotID, v))
}

// SnapshotIDContainsFold applies the ContainsFold predicate on the "snapshot_id" field.
func SnapshotIDContainsFold(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldContainsFold(FieldSnapshotID, v))
}

// ViewIDEQ applies the EQ predicate on the "view_id" field.
func ViewIDEQ(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldViewID, v))
}

// ViewIDNEQ applies the NEQ predicate on the "view_id" field.
func ViewIDNEQ(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldViewID, v))
}

// ViewIDIn applies the In predicate on the "view_id" field.
func ViewIDIn(vs ...string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldViewID, vs...))
}

// ViewIDNotIn applies the NotIn predicate on the "view_id" field.
func ViewIDNotIn(vs ...string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldViewID, vs...))
}

// ViewIDGT applies the GT predicate on the "view_id" field.
func ViewIDGT(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldViewID, v))
}

// ViewIDGTE applies the GTE predicate on the "view_id" field.
func ViewIDGTE(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldViewID, v))
}

// ViewIDLT applies the LT predicate on the "view_id" field.
func ViewIDLT(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldViewID, v))
}

// ViewIDLTE applies the LTE predicate on the "view_id" field.
func ViewIDLTE(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldViewID, v))
}

// ViewIDContains applies the Contains predicate on the "view_id" field.
func ViewIDContains(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldContains(FieldViewID, v))
}

// ViewIDHasPrefix applies the HasPrefix predicate on the "view_id" field.
func ViewIDHasPrefix(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldHasPrefix(FieldViewID, v))
}

// ViewIDHasSuffix applies the HasSuffix predicate on the "view_id" field.
func ViewIDHasSuffix(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldHasSuffix(FieldViewID, v))
}

// ViewIDEqualFold applies the EqualFold predicate on the "view_id" field.
func ViewIDEqualFold(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEqualFold(FieldViewID, v))
}

// ViewIDContainsFold applies the ContainsFold predicate on the "view_id" field.
func ViewIDContainsFold(v string) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldContainsFold(FieldViewID, v))
}

// SeqNrEQ applies the EQ predicate on the "seq_nr" field.
func SeqNrEQ(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldSeqNr, v))
}

// SeqNrNEQ applies the NEQ predicate on the "seq_nr" field.
func SeqNrNEQ(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldSeqNr, v))
}

// SeqNrIn applies the In predicate on the "seq_nr" field.
func SeqNrIn(vs ...int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldSeqNr, vs...))
}

// SeqNrNotIn applies the NotIn predicate on the "seq_nr" field.
func SeqNrNotIn(vs ...int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldSeqNr, vs...))
}

// SeqNrGT applies the GT predicate on the "seq_nr" field.
func SeqNrGT(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldSeqNr, v))
}

// SeqNrGTE applies the GTE predicate on the "seq_nr" field.
func SeqNrGTE(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldSeqNr, v))
}

// SeqNrLT applies the LT predicate on the "seq_nr" field.
func SeqNrLT(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldSeqNr, v))
}

// SeqNrLTE applies the LTE predicate on the "seq_nr" field.
func SeqNrLTE(v int64) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldSeqNr, v))
}

// OffsetEQ applies the EQ predicate on the "offset" field.
func OffsetEQ(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldOffset, v))
}

// OffsetNEQ applies the NEQ predicate on the "offset" field.
func OffsetNEQ(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldOffset, v))
}

// OffsetIn applies the In predicate on the "offset" field.
func OffsetIn(vs ...[]byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldOffset, vs...))
}

// OffsetNotIn applies the NotIn predicate on the "offset" field.
func OffsetNotIn(vs ...[]byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldOffset, vs...))
}

// OffsetGT applies the GT predicate on the "offset" field.
func OffsetGT(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldOffset, v))
}

// OffsetGTE applies the GTE predicate on the "offset" field.
func OffsetGTE(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldOffset, v))
}

// OffsetLT applies the LT predicate on the "offset" field.
func OffsetLT(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldOffset, v))
}

// OffsetLTE applies the LTE predicate on the "offset" field.
func OffsetLTE(v []byte) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldOffset, v))
}

// OffsetIsNil applies the IsNil predicate on the "offset" field.
func OffsetIsNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIsNull(FieldOffset))
}

// OffsetNotNil applies the NotNil predicate on the "offset" field.
func OffsetNotNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotNull(FieldOffset))
}

// EntitySeqsIsNil applies the IsNil predicate on the "entity_seqs" field.
func EntitySeqsIsNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIsNull(FieldEntitySeqs))
}

// EntitySeqsNotNil applies the NotNil predicate on the "entity_seqs" field.
func EntitySeqsNotNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotNull(FieldEntitySeqs))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotNull(FieldState))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Snapshot {
	return predicate.Snapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Snapshot) predicate.Snapshot {
	return predicate.Snapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Snapshot) predicate.Snapshot {
	return predicate.Snapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Snapshot) predicate.Snapshot {
	return predicate.Snapshot(sql.NotPredicates(p))
}
