// Package view rebuilds an in-memory, query-optimized projection of
// event-sourced state. A view bootstraps from the latest snapshot if one
// exists, replays the journal's historical events exactly once each, then
// tails the live stream, buffering application messages until it can answer
// them. All mutable state is owned by the single dispatch goroutine; the
// journal pipelines and snapshot store feed it through an acknowledgement
// gated mailbox.
package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/projector/pkg/errmodel"
	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

// ErrStopped is returned by Tell, Ask, and RequestSnapshot after the view's
// Run loop has exited.
var ErrStopped = errors.New("view: stopped")

// message is anything travelling through the view's mailbox.
type message = any

// Internal control messages. Every phase transition is driven by one of
// these; the dispatch loop never polls.
type (
	snapshotLoadedMsg struct {
		rec   store.SnapshotRecord
		found bool
	}
	snapshotLoadFailedMsg struct{ err error }
	recoveryCompletedMsg  struct{}
	recoveryFailedMsg     struct{ err error }
	// liveEndedMsg with a nil err means the infinite stream completed,
	// which is just as fatal as a stream error.
	liveEndedMsg struct{ err error }
	eventMsg     struct {
		env journal.Envelope
		ack chan struct{}
	}
	snapshotSavedMsg      struct{ rec store.SnapshotRecord }
	snapshotSaveFailedMsg struct{ err error }
	requestSnapshotMsg    struct{ state []byte }
	userMsg               struct {
		payload any
		reply   chan userReply
	}
)

type userReply struct {
	value any
	err   error
}

// Config wires a view to its collaborators.
type Config struct {
	// ViewID is the stable identity snapshots are persisted under.
	// Defaults to Tag.
	ViewID string
	// Tag selects this view's slice of the journal.
	Tag string
	// Journal supplies the historical and live event streams.
	Journal journal.Journal
	// Snapshots is optional; without it the view always recovers from the
	// beginning of the journal and RequestSnapshot fails.
	Snapshots store.SnapshotStore
	// Handler is the application logic the view projects into.
	Handler Handler

	// LoadSnapshotTimeout bounds the startup snapshot load. Zero means
	// wait forever.
	LoadSnapshotTimeout time.Duration
	// RecoveryTimeout bounds historical replay. Zero means wait forever.
	// Exceeding it is fatal.
	RecoveryTimeout time.Duration

	// PreLive, if set, runs exactly once after recovery completes and
	// before buffered messages are released. An error is fatal.
	PreLive func(ctx context.Context) error

	Logger  *slog.Logger
	Metrics *Metrics
	// MailboxSize defaults to 64.
	MailboxSize int
}

// View is one projection instance. Create with New, drive with Run; when Run
// returns an error the instance is dead and the supervising caller decides
// whether to construct and run a fresh one.
type View struct {
	cfg     Config
	log     *slog.Logger
	tracer  trace.Tracer
	mailbox chan message
	done    chan struct{}
	started atomic.Bool

	phase atomic.Int32

	// Owned by the dispatch goroutine. Read-only accessors are safe from
	// handler callbacks, which run on that goroutine.
	lastOffset          journal.Offset
	nextSeq             map[string]uint64
	lastSnapshotSeqNr   int64
	eventsSinceSnapshot int
	snapshotInFlight    bool
	buffer              stash
}

// New validates cfg and returns an unstarted view.
func New(cfg Config) (*View, error) {
	if cfg.Journal == nil {
		return nil, errmodel.Validation("journal_required", "view requires a journal", nil)
	}
	if cfg.Handler == nil {
		return nil, errmodel.Validation("handler_required", "view requires a handler", nil)
	}
	if cfg.Tag == "" {
		return nil, errmodel.Validation("tag_required", "view requires a journal tag", nil)
	}
	if cfg.ViewID == "" {
		cfg.ViewID = cfg.Tag
	}
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = 64
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &View{
		cfg:     cfg,
		log:     log.With("view", cfg.ViewID, "tag", cfg.Tag),
		tracer:  otel.Tracer("projector/view"),
		mailbox: make(chan message, cfg.MailboxSize),
		done:    make(chan struct{}),
		nextSeq: make(map[string]uint64),
	}, nil
}

// Run executes the view's lifecycle until ctx is cancelled (returns nil) or
// a fatal fault occurs (returns the fault). Run may be called once.
func (v *View) Run(ctx context.Context) error {
	if !v.started.CompareAndSwap(false, true) {
		return errmodel.Validation("already_started", "view Run called twice", nil)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer close(v.done)

	ctx, span := v.tracer.Start(ctx, "view.run", trace.WithAttributes(
		attribute.String("view.id", v.cfg.ViewID),
		attribute.String("view.tag", v.cfg.Tag),
	))
	defer span.End()

	v.setPhase(PhaseWaitingForSnapshot)
	v.startSnapshotLoad(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case m := <-v.mailbox:
			if err := v.dispatch(ctx, m); err != nil {
				span.RecordError(err)
				v.log.Error("view terminated", "error", err, "phase", v.Phase().String())
				return err
			}
		}
	}
}

// dispatch routes one mailbox message by the current phase.
func (v *View) dispatch(ctx context.Context, m message) error {
	switch v.Phase() {
	case PhaseWaitingForSnapshot:
		return v.dispatchWaiting(ctx, m)
	case PhaseRecovering:
		return v.dispatchRecovering(ctx, m)
	default:
		return v.dispatchLive(ctx, m)
	}
}

func (v *View) dispatchWaiting(ctx context.Context, m message) error {
	switch m := m.(type) {
	case snapshotLoadedMsg:
		if m.found {
			v.adoptSnapshot(ctx, m.rec)
		}
		v.startRecovery(ctx)
	case snapshotLoadFailedMsg:
		// Non-fatal: recover from the beginning with empty bookkeeping.
		v.log.Warn("snapshot load failed, recovering from scratch", "error", m.err)
		v.startRecovery(ctx)
	case snapshotSavedMsg:
		v.handleSnapshotSaved(m)
	case snapshotSaveFailedMsg:
		v.handleSnapshotSaveFailed(m)
	default:
		v.buffer.append(m)
		v.cfg.Metrics.setStashDepth(v.buffer.len())
	}
	return nil
}

func (v *View) dispatchRecovering(ctx context.Context, m message) error {
	switch m := m.(type) {
	case *eventMsg:
		return v.applyEvent(ctx, m)
	case recoveryCompletedMsg:
		return v.becomeLive(ctx)
	case recoveryFailedMsg:
		return errmodel.Stream("recovery_failed", "historical replay failed", map[string]any{
			"view": v.cfg.ViewID,
		}, m.err)
	case snapshotSavedMsg:
		v.handleSnapshotSaved(m)
	case snapshotSaveFailedMsg:
		v.handleSnapshotSaveFailed(m)
	default:
		v.buffer.append(m)
		v.cfg.Metrics.setStashDepth(v.buffer.len())
	}
	return nil
}

func (v *View) dispatchLive(ctx context.Context, m message) error {
	switch m := m.(type) {
	case *eventMsg:
		return v.applyEvent(ctx, m)
	case liveEndedMsg:
		if m.err != nil {
			return errmodel.Stream("live_stream_failed", "live event stream failed", map[string]any{
				"view": v.cfg.ViewID,
			}, m.err)
		}
		return errmodel.Stream("live_stream_ended", "live event stream completed; it must never end", map[string]any{
			"view": v.cfg.ViewID,
		}, nil)
	case snapshotSavedMsg:
		v.handleSnapshotSaved(m)
	case snapshotSaveFailedMsg:
		v.handleSnapshotSaveFailed(m)
	case requestSnapshotMsg:
		v.handleRequestSnapshot(ctx, m)
	case userMsg:
		v.eventsSinceSnapshot++
		value, err := v.cfg.Handler.HandleMessage(ctx, m.payload)
		if m.reply != nil {
			m.reply <- userReply{value: value, err: err}
		}
	default:
		v.log.Debug("dropping unexpected message", "type", fmt.Sprintf("%T", m))
	}
	return nil
}

// applyEvent advances bookkeeping, folds the event into the handler, then
// acknowledges so the driver pulls the next element. Bookkeeping first: the
// handler's accessors must see the event it is applying.
func (v *View) applyEvent(ctx context.Context, m *eventMsg) error {
	env := m.env
	v.lastOffset = env.Offset
	v.nextSeq[env.EntityID] = env.SequenceNr + 1
	v.eventsSinceSnapshot++
	if err := v.cfg.Handler.ApplyEvent(ctx, env); err != nil {
		return errmodel.Stream("apply_event", "handler failed to apply event", map[string]any{
			"view":   v.cfg.ViewID,
			"entity": env.EntityID,
			"seq":    env.SequenceNr,
		}, err)
	}
	v.cfg.Metrics.eventApplied(v.Phase())
	m.ack <- struct{}{}
	return nil
}

// becomeLive runs the pre-live hook, flips the phase, starts the live
// pipeline, and releases the buffered messages in arrival order. The phase is
// already live when they are released so they see live semantics.
func (v *View) becomeLive(ctx context.Context) error {
	if v.cfg.PreLive != nil {
		if err := v.cfg.PreLive(ctx); err != nil {
			return errmodel.Stream("pre_live", "pre-live hook failed", map[string]any{
				"view": v.cfg.ViewID,
			}, err)
		}
	}
	v.setPhase(PhaseLive)
	v.startLive(ctx)
	for _, m := range v.buffer.drain() {
		if err := v.dispatchLive(ctx, m); err != nil {
			return err
		}
	}
	v.cfg.Metrics.setStashDepth(0)
	v.log.Debug("view is live", "last_offset", v.lastOffset)
	return nil
}

// adoptSnapshot offers the loaded record to the application and, only if it
// accepts, adopts the record's replay bookkeeping. A record whose offset
// cannot be decoded is discarded before the offer so the application never
// sees state the view cannot resume from.
func (v *View) adoptSnapshot(ctx context.Context, rec store.SnapshotRecord) {
	off, err := journal.UnmarshalOffset(rec.Offset)
	if err != nil {
		v.log.Warn("discarding snapshot with undecodable offset", "snapshot_seq", rec.SeqNr, "error", err)
		return
	}
	if !v.cfg.Handler.OfferSnapshot(ctx, rec.State) {
		v.log.Warn("snapshot offer rejected, recovering from scratch", "snapshot_seq", rec.SeqNr)
		return
	}
	v.lastOffset = off
	v.nextSeq = maps.Clone(rec.EntitySeqs)
	if v.nextSeq == nil {
		v.nextSeq = make(map[string]uint64)
	}
	v.lastSnapshotSeqNr = rec.SeqNr
}

func (v *View) setPhase(p Phase) {
	v.phase.Store(int32(p))
	v.cfg.Metrics.setPhase(p)
}

// Phase returns the current lifecycle phase. Safe from any goroutine.
func (v *View) Phase() Phase { return Phase(v.phase.Load()) }

// IsLive reports whether the view answers application messages.
func (v *View) IsLive() bool { return v.Phase() == PhaseLive }

// IsRecovering reports whether historical replay is in progress.
func (v *View) IsRecovering() bool { return v.Phase() == PhaseRecovering }

// LastOffset returns the journal offset of the last applied event, or the
// snapshot's offset before any event was applied. Call from handler
// callbacks only.
func (v *View) LastOffset() journal.Offset {
	if v.lastOffset == nil {
		return journal.NoOffset{}
	}
	return v.lastOffset
}

// NextSequenceNr returns the next expected per-entity sequence number.
// Call from handler callbacks only.
func (v *View) NextSequenceNr(entityID string) uint64 { return v.nextSeq[entityID] }

// EventsSinceSnapshot counts messages applied since the last successful
// snapshot save; applications use it to decide when to snapshot. Call from
// handler callbacks only.
func (v *View) EventsSinceSnapshot() int { return v.eventsSinceSnapshot }

// NextSnapshotSequenceNr is the sequence number the next saved snapshot will
// carry. Call from handler callbacks only.
func (v *View) NextSnapshotSequenceNr() int64 { return v.lastSnapshotSeqNr + 1 }

// Tell enqueues an application message without waiting for an answer.
func (v *View) Tell(ctx context.Context, msg any) error {
	return v.send(ctx, userMsg{payload: msg})
}

// Ask enqueues an application message and waits for the handler's answer.
// While the view is rebuilding the message is buffered and Ask blocks; the
// answer arrives once the view is live.
func (v *View) Ask(ctx context.Context, msg any) (any, error) {
	reply := make(chan userReply, 1)
	if err := v.send(ctx, userMsg{payload: msg, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-v.done:
		return nil, ErrStopped
	}
}

// RequestSnapshot asks the view to persist state, decorated with the current
// offset and per-entity sequence table, as the next snapshot. A request while
// another save is in flight is a silent no-op.
func (v *View) RequestSnapshot(ctx context.Context, state []byte) error {
	if v.cfg.Snapshots == nil {
		return errmodel.Snapshot("no_store", "view has no snapshot store", nil, nil)
	}
	return v.send(ctx, requestSnapshotMsg{state: state})
}

func (v *View) send(ctx context.Context, m message) error {
	select {
	case v.mailbox <- m:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-v.done:
		return ErrStopped
	}
}

// post delivers a collaborator result to the mailbox, dropping it if the view
// is shutting down.
func (v *View) post(ctx context.Context, m message) {
	select {
	case v.mailbox <- m:
	case <-ctx.Done():
	case <-v.done:
	}
}
