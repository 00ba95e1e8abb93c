package view

import (
	"context"
	"encoding/json"

	"github.com/wilhg/projector/pkg/journal"
)

// Handler is the application side of a view: it owns the in-memory queryable
// structure and folds events and snapshots into it. Every method runs on the
// view's dispatch goroutine, never concurrently with another, so handlers
// need no locking of their own.
type Handler interface {
	// ApplyEvent folds one journal event into the view. The view's
	// bookkeeping (offset, per-entity sequence table, snapshot counter) is
	// already advanced when ApplyEvent runs, so accessors reflect the event
	// being applied. Returning an error is fatal to the view instance: a
	// half-applied event leaves the view's consistency unprovable.
	ApplyEvent(ctx context.Context, env journal.Envelope) error

	// OfferSnapshot presents the latest persisted snapshot state once,
	// before recovery starts. Returning false rejects the offer; the view
	// then replays from the beginning as if no snapshot existed, and none
	// of the snapshot's bookkeeping is adopted.
	OfferSnapshot(ctx context.Context, state json.RawMessage) bool

	// HandleMessage processes an application message while the view is
	// live. Messages sent earlier are buffered unanswered and delivered
	// here, in send order, right after the transition to live.
	HandleMessage(ctx context.Context, msg any) (any, error)
}
