package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds persisted view states with their replay bookkeeping.
type Snapshot struct{ ent.Schema }

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("snapshot_id").NotEmpty().Unique(),
		field.String("view_id").NotEmpty(),
		// The snapshot's own sequence number, monotonic per view.
		field.Int64("seq_nr").NonNegative(),
		// Journal offset at save time, opaque to the store.
		field.Bytes("offset").Optional(),
		// Per-entity next expected sequence numbers at save time.
		field.JSON("entity_seqs", map[string]uint64{}).Optional(),
		field.JSON("state", map[string]any{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("view_id"),
		index.Fields("view_id", "seq_nr").Unique(),
	}
}
