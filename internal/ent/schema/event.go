package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for one journal entry.
type Event struct{ ent.Schema }

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// External stable ID for idempotent appends.
		field.String("event_id").NotEmpty().Unique(),
		// Tag is the selection criterion views subscribe to.
		field.String("tag").NotEmpty(),
		field.String("entity_id").NotEmpty(),
		// Monotonic sequence per entity, starting at 0.
		field.Uint64("seq"),
		// Journal-global position; the precise offset shape.
		field.Int64("global_seq").NonNegative(),
		field.String("type").NotEmpty(),
		// JSON payload; compatible with Postgres (JSONB) and SQLite (TEXT/BLOB).
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.Time("created_at").Default(time.Now).Immutable().SchemaType(map[string]string{
			dialect.Postgres: "TIMESTAMPTZ",
			dialect.SQLite:   "DATETIME",
		}),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "seq").Unique(),
		index.Fields("global_seq").Unique(),
		index.Fields("tag", "global_seq"),
		index.Fields("tag", "created_at"),
	}
}
