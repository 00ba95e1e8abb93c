package entstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/wilhg/projector/internal/ent"
	"github.com/wilhg/projector/internal/ent/event"
	"github.com/wilhg/projector/pkg/journal"
)

var errStreamClosed = errors.New("entstore: stream closed")

// CurrentEvents implements journal.Journal: a finite stream bounded at the
// journal-global position observed when the call is made. Events appended
// afterwards belong to the live stream.
func (s *Store) CurrentEvents(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	bound, err := s.LastGlobalSeq(ctx)
	if err != nil {
		return nil, err
	}
	return &eventStream{s: s, tag: tag, from: from, bound: bound, closed: make(chan struct{})}, nil
}

// Events implements journal.Journal: an unbounded stream that polls for new
// events once it catches up. It never returns io.EOF.
func (s *Store) Events(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	return &eventStream{s: s, tag: tag, from: from, live: true, closed: make(chan struct{})}, nil
}

// eventStream pages through the events table in global order. Until the first
// row is consumed the query resumes from the caller's offset; a legacy time
// offset resumes inclusively at millisecond precision and redelivers.
// Afterwards the query follows the precise global cursor.
type eventStream struct {
	s      *Store
	tag    string
	from   journal.Offset
	live   bool
	bound  int64 // upper global bound for historical streams; zero on an empty journal
	cursor int64
	primed bool
	buf       []*ent.Event
	closed    chan struct{}
	closeOnce sync.Once
}

func (st *eventStream) fetch(ctx context.Context) ([]*ent.Event, error) {
	q := st.s.client.Event.Query().Where(event.Tag(st.tag))
	if st.primed {
		q = q.Where(event.GlobalSeqGT(st.cursor))
	} else {
		switch o := st.from.(type) {
		case journal.SequenceOffset:
			q = q.Where(event.GlobalSeqGT(int64(o)))
		case journal.TimeOffset:
			q = q.Where(event.CreatedAtGTE(o.Time()))
		}
	}
	if !st.live {
		q = q.Where(event.GlobalSeqLTE(st.bound))
	}
	return q.Order(ent.Asc(event.FieldGlobalSeq)).Limit(st.s.pageSize).All(ctx)
}

func (st *eventStream) Next(ctx context.Context) (any, error) {
	for {
		select {
		case <-st.closed:
			return nil, errStreamClosed
		default:
		}
		if len(st.buf) > 0 {
			row := st.buf[0]
			st.buf = st.buf[1:]
			st.cursor = row.GlobalSeq
			st.primed = true
			return st.s.rowToElement(row), nil
		}
		rows, err := st.fetch(ctx)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			st.buf = rows
			continue
		}
		if !st.live {
			return nil, io.EOF
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-st.closed:
			return nil, errStreamClosed
		case <-time.After(st.s.pollInterval):
		}
	}
}

func (st *eventStream) Close() error {
	st.closeOnce.Do(func() { close(st.closed) })
	return nil
}

func (s *Store) rowToElement(r *ent.Event) any {
	var raw json.RawMessage
	if r.Payload != nil {
		b, _ := json.Marshal(r.Payload)
		raw = b
	}
	if s.legacy {
		return journal.RawLegacyEnvelope{
			TimestampMillis: r.CreatedAt.UnixMilli(),
			EntityID:        r.EntityID,
			SequenceNr:      r.Seq,
			Payload:         raw,
		}
	}
	return journal.RawEnvelope{
		Offset:     r.GlobalSeq,
		EntityID:   r.EntityID,
		SequenceNr: r.Seq,
		Payload:    raw,
	}
}
