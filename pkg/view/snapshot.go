package view

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

// startSnapshotLoad issues the startup load-latest request. Absence is a
// normal outcome; a store error and a timeout both arrive as the same
// failure message, so the waiting-phase handler has a single failure path.
func (v *View) startSnapshotLoad(ctx context.Context) {
	if v.cfg.Snapshots == nil {
		v.post(ctx, snapshotLoadedMsg{})
		return
	}
	go func() {
		lctx := ctx
		cancel := func() {}
		if v.cfg.LoadSnapshotTimeout > 0 {
			lctx, cancel = context.WithTimeout(ctx, v.cfg.LoadSnapshotTimeout)
		}
		defer cancel()

		lctx, span := v.tracer.Start(lctx, "view.loadSnapshot", attributeViewID(v.cfg.ViewID))
		rec, err := v.cfg.Snapshots.LoadLatestSnapshot(lctx, v.cfg.ViewID)
		span.End()

		switch {
		case err == nil:
			v.post(ctx, snapshotLoadedMsg{rec: rec, found: true})
		case errors.Is(err, sql.ErrNoRows):
			v.post(ctx, snapshotLoadedMsg{})
		default:
			v.post(ctx, snapshotLoadFailedMsg{err: err})
		}
	}()
}

// handleRequestSnapshot decorates the payload with the view's replay
// bookkeeping and submits it. Only one save may be outstanding; a second
// trigger while one is in flight is dropped, not queued.
func (v *View) handleRequestSnapshot(ctx context.Context, m requestSnapshotMsg) {
	if v.snapshotInFlight {
		return
	}
	off, err := journal.MarshalOffset(v.LastOffset())
	if err != nil {
		v.log.Error("snapshot request dropped, cannot encode offset", "error", err)
		return
	}
	rec := store.SnapshotRecord{
		SnapshotID: uuid.NewString(),
		ViewID:     v.cfg.ViewID,
		SeqNr:      v.NextSnapshotSequenceNr(),
		Offset:     off,
		EntitySeqs: maps.Clone(v.nextSeq),
		State:      m.state,
		CreatedAt:  time.Now().UTC(),
	}
	v.snapshotInFlight = true
	go func() {
		sctx, span := v.tracer.Start(ctx, "view.saveSnapshot", attributeViewID(v.cfg.ViewID))
		saved, err := v.cfg.Snapshots.SaveSnapshot(sctx, rec)
		if err != nil {
			span.RecordError(err)
			span.End()
			v.post(ctx, snapshotSaveFailedMsg{err: err})
			return
		}
		span.End()
		v.post(ctx, snapshotSavedMsg{rec: saved})
	}()
}

func (v *View) handleSnapshotSaved(m snapshotSavedMsg) {
	v.snapshotInFlight = false
	v.lastSnapshotSeqNr = m.rec.SeqNr
	v.eventsSinceSnapshot = 0
	v.cfg.Metrics.snapshotSaved()
	v.log.Debug("snapshot saved", "snapshot_seq", m.rec.SeqNr)
}

// A failed save is recoverable: the in-flight flag clears and the counter
// keeps accumulating, so the application's next trigger retries.
func (v *View) handleSnapshotSaveFailed(m snapshotSaveFailedMsg) {
	v.snapshotInFlight = false
	v.cfg.Metrics.snapshotSaveFailed()
	v.log.Error("snapshot save failed", "error", m.err)
}

func attributeViewID(id string) trace.SpanStartOption {
	return trace.WithAttributes(attribute.String("view.id", id))
}
