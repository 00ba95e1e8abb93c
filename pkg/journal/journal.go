// Package journal defines the read interface of an append-only, per-entity
// sequenced event log and the envelope shapes it delivers. The package does
// not implement a journal; storage backends (see pkg/store) and test doubles
// provide implementations.
package journal

import (
	"context"
)

// Envelope is the normalized event shape used past the journal boundary.
// Offsets order events journal-wide; sequence numbers order events per
// entity, starting at 0.
type Envelope struct {
	Offset     Offset
	EntityID   string
	SequenceNr uint64
	Payload    any
}

// RawEnvelope is the precise wire shape: the offset is the exact
// journal-global sequence number of the event.
type RawEnvelope struct {
	Offset     int64
	EntityID   string
	SequenceNr uint64
	Payload    any
}

// RawLegacyEnvelope is the legacy wire shape: the offset is a wall-clock
// timestamp with millisecond precision, so distinct events can share an
// offset.
type RawLegacyEnvelope struct {
	TimestampMillis int64
	EntityID        string
	SequenceNr      uint64
	Payload         any
}

// Normalize converts either accepted wire shape into the internal Envelope.
// Already normalized envelopes pass through. ok is false for anything else;
// such elements carry no usable identity and must not travel further.
func Normalize(element any) (env Envelope, ok bool) {
	switch e := element.(type) {
	case Envelope:
		return e, true
	case RawEnvelope:
		return Envelope{
			Offset:     SequenceOffset(e.Offset),
			EntityID:   e.EntityID,
			SequenceNr: e.SequenceNr,
			Payload:    e.Payload,
		}, true
	case RawLegacyEnvelope:
		return Envelope{
			Offset:     TimeOffset(e.TimestampMillis),
			EntityID:   e.EntityID,
			SequenceNr: e.SequenceNr,
			Payload:    e.Payload,
		}, true
	default:
		return Envelope{}, false
	}
}

// Stream is a pull-based sequence of journal elements. Elements are raw wire
// shapes; the consumer normalizes them on receipt.
type Stream interface {
	// Next blocks until the next element is available or ctx is done.
	// A finite stream returns io.EOF once exhausted.
	Next(ctx context.Context) (any, error)

	// Close releases the stream's resources. Pending Next calls may fail.
	Close() error
}

// Journal is the event log read interface consumed by a view. Both streams
// deliver events for a tag in journal order and resume after from; the
// resumption point may be coarser than per-event sequence numbers (see
// TimeOffset), in which case redelivery around the boundary is expected.
type Journal interface {
	// CurrentEvents streams events appended up to roughly the time of the
	// call and then ends. Used for historical replay.
	CurrentEvents(ctx context.Context, tag string, from Offset) (Stream, error)

	// Events streams events without ever completing: historical events
	// first, then new events as they are appended. Used for live tailing;
	// a journal for which this stream ends is broken.
	Events(ctx context.Context, tag string, from Offset) (Stream, error)
}
