package view

import (
	"context"
	"errors"
	"io"

	"github.com/wilhg/projector/pkg/journal"
)

// pump moves one journal stream into the mailbox, one element at a time.
// The dispatch loop must acknowledge each event before the next is pulled,
// so at most one undelivered element per pipeline is ever outstanding. That
// acknowledgement is the back-pressure mechanism; the mailbox is not a
// buffer for events.
//
// pump returns the stream's terminal error: io.EOF on natural completion,
// the context error on cancellation, anything else on upstream failure.
func (v *View) pump(ctx context.Context, s journal.Stream, filter dedupFilter) error {
	defer func() { _ = s.Close() }()
	ack := make(chan struct{}, 1)
	for {
		element, err := s.Next(ctx)
		if err != nil {
			return err
		}
		env, ok := journal.Normalize(element)
		if !ok || !filter.keep(env) {
			continue
		}
		select {
		case v.mailbox <- &eventMsg{env: env, ack: ack}:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-ack:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// startRecovery freezes the dedup filter and resumption offset from the
// current bookkeeping, flips to Recovering, and runs the finite historical
// stream through the pump. Natural completion posts the recovery-completed
// control message; a timeout or upstream failure posts recovery-failed,
// which the dispatch loop treats as fatal.
func (v *View) startRecovery(ctx context.Context) {
	v.setPhase(PhaseRecovering)
	filter := newDedupFilter(v.nextSeq)
	from := v.LastOffset()

	go func() {
		rctx := ctx
		cancel := func() {}
		if v.cfg.RecoveryTimeout > 0 {
			rctx, cancel = context.WithTimeout(ctx, v.cfg.RecoveryTimeout)
		}
		defer cancel()

		s, err := v.cfg.Journal.CurrentEvents(rctx, v.cfg.Tag, from)
		if err != nil {
			v.post(ctx, recoveryFailedMsg{err: err})
			return
		}
		switch err := v.pump(rctx, s, filter); {
		case errors.Is(err, io.EOF):
			v.post(ctx, recoveryCompletedMsg{})
		case ctx.Err() != nil:
			// Shutdown, not a fault.
		default:
			v.post(ctx, recoveryFailedMsg{err: err})
		}
	}()
}

// startLive runs the infinite stream through the pump with a filter frozen at
// the handoff. No timeout and no completion marker: the stream ending at all,
// for any reason, is reported and fatal.
func (v *View) startLive(ctx context.Context) {
	filter := newDedupFilter(v.nextSeq)
	from := v.LastOffset()

	go func() {
		s, err := v.cfg.Journal.Events(ctx, v.cfg.Tag, from)
		if err != nil {
			v.post(ctx, liveEndedMsg{err: err})
			return
		}
		switch err := v.pump(ctx, s, filter); {
		case ctx.Err() != nil:
			// Shutdown, not a fault.
		case errors.Is(err, io.EOF):
			v.post(ctx, liveEndedMsg{})
		default:
			v.post(ctx, liveEndedMsg{err: err})
		}
	}()
}
