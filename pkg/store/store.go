// Package store defines persistence interfaces for view snapshots.
// Implementations must provide identical semantics across backends so a view
// can be rebuilt from any of them.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// SnapshotRecord is a persisted point-in-time copy of a view's state together
// with the replay bookkeeping needed to resume the journal after it.
type SnapshotRecord struct {
	SnapshotID string
	// ViewID is the stable identity the view persists under.
	ViewID string
	// SeqNr is the snapshot's own sequence number, monotonic per view.
	SeqNr int64
	// Offset is the journal offset at save time, encoded with
	// journal.MarshalOffset. Opaque to the store.
	Offset []byte
	// EntitySeqs maps entity identity to the next expected per-entity
	// sequence number at save time.
	EntitySeqs map[string]uint64
	// State is the application payload. Opaque JSON.
	State     json.RawMessage
	CreatedAt time.Time
}

// SnapshotStore persists and retrieves view snapshots.
//
// LoadLatestSnapshot returns sql.ErrNoRows when no snapshot exists for the
// view.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, rec SnapshotRecord) (SnapshotRecord, error)
	LoadLatestSnapshot(ctx context.Context, viewID string) (SnapshotRecord, error)
}
