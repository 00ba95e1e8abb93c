// Package journaltest provides an in-memory journal with live tailing and
// failure injection, for tests and examples.
package journaltest

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/wilhg/projector/pkg/journal"
)

// Request records one stream request made against the journal.
type Request struct {
	Live bool
	Tag  string
	From journal.Offset
}

type entry struct {
	tag     string
	element any
	global  int64
	millis  int64
}

// Journal is an append-only in-memory journal. The zero value is not usable;
// call New.
type Journal struct {
	mu      sync.Mutex
	notify  chan struct{}
	entries []entry
	nextSeq map[string]uint64

	legacy       bool
	blockCurrent bool
	currentErr   error
	liveErr      error
	liveEnded    bool

	requests []Request

	// Now supplies entry timestamps; defaults to time.Now.
	Now func() time.Time
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{
		notify:  make(chan struct{}),
		nextSeq: make(map[string]uint64),
	}
}

// UseLegacyOffsets makes Append produce legacy millisecond-offset envelopes
// instead of precise ones.
func (j *Journal) UseLegacyOffsets() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.legacy = true
}

// Append adds one event for entityID under tag, assigning the next per-entity
// sequence number and journal-global position. It returns the element that
// streams will deliver.
func (j *Journal) Append(tag, entityID string, payload any) any {
	j.mu.Lock()
	defer j.mu.Unlock()

	seq := j.nextSeq[entityID]
	j.nextSeq[entityID] = seq + 1
	global := int64(len(j.entries) + 1)
	millis := j.now().UnixMilli()

	var element any
	if j.legacy {
		element = journal.RawLegacyEnvelope{
			TimestampMillis: millis,
			EntityID:        entityID,
			SequenceNr:      seq,
			Payload:         payload,
		}
	} else {
		element = journal.RawEnvelope{
			Offset:     global,
			EntityID:   entityID,
			SequenceNr: seq,
			Payload:    payload,
		}
	}
	j.append(tag, element, global, millis)
	return element
}

// AppendRaw adds an arbitrary element under tag without touching the
// journal's own sequence bookkeeping. Used to script duplicates, legacy
// shapes, or junk elements.
func (j *Journal) AppendRaw(tag string, element any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.append(tag, element, int64(len(j.entries)+1), j.now().UnixMilli())
}

func (j *Journal) append(tag string, element any, global, millis int64) {
	j.entries = append(j.entries, entry{tag: tag, element: element, global: global, millis: millis})
	j.broadcast()
}

// FailCurrent makes historical streams fail with err on the next pull.
func (j *Journal) FailCurrent(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.currentErr = err
	j.broadcast()
}

// BlockCurrent makes historical streams block indefinitely instead of
// delivering or completing. Used to exercise recovery timeouts.
func (j *Journal) BlockCurrent() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.blockCurrent = true
}

// EndLive completes all live streams, which a healthy consumer must treat as
// a contract violation.
func (j *Journal) EndLive() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.liveEnded = true
	j.broadcast()
}

// FailLive makes live streams fail with err on the next pull.
func (j *Journal) FailLive(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.liveErr = err
	j.broadcast()
}

// Requests returns the stream requests observed so far, oldest first.
func (j *Journal) Requests() []Request {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Request, len(j.requests))
	copy(out, j.requests)
	return out
}

func (j *Journal) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

// broadcast wakes every blocked live reader. Callers hold j.mu.
func (j *Journal) broadcast() {
	close(j.notify)
	j.notify = make(chan struct{})
}

// cursorAfter returns the index of the first entry not excluded by from.
// Time offsets keep entries on the same millisecond: that is the coarse
// redelivery the dedup filter exists for.
func (j *Journal) cursorAfter(from journal.Offset) int {
	switch o := from.(type) {
	case journal.SequenceOffset:
		for i, e := range j.entries {
			if e.global > int64(o) {
				return i
			}
		}
		return len(j.entries)
	case journal.TimeOffset:
		for i, e := range j.entries {
			if e.millis >= int64(o) {
				return i
			}
		}
		return len(j.entries)
	default:
		return 0
	}
}

// CurrentEvents implements journal.Journal.
func (j *Journal) CurrentEvents(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.requests = append(j.requests, Request{Tag: tag, From: from})
	return &currentStream{j: j, tag: tag, cursor: j.cursorAfter(from), bound: len(j.entries)}, nil
}

// Events implements journal.Journal.
func (j *Journal) Events(ctx context.Context, tag string, from journal.Offset) (journal.Stream, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.requests = append(j.requests, Request{Live: true, Tag: tag, From: from})
	return &liveStream{j: j, tag: tag, cursor: j.cursorAfter(from)}, nil
}

type currentStream struct {
	j      *Journal
	tag    string
	cursor int
	bound  int
}

func (s *currentStream) Next(ctx context.Context) (any, error) {
	for {
		s.j.mu.Lock()
		if s.j.currentErr != nil {
			err := s.j.currentErr
			s.j.mu.Unlock()
			return nil, err
		}
		blocked := s.j.blockCurrent
		if !blocked {
			for s.cursor < s.bound {
				e := s.j.entries[s.cursor]
				s.cursor++
				if e.tag == s.tag {
					s.j.mu.Unlock()
					return e.element, nil
				}
			}
		}
		notify := s.j.notify
		s.j.mu.Unlock()
		if !blocked {
			return nil, io.EOF
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-notify:
		}
	}
}

func (s *currentStream) Close() error { return nil }

type liveStream struct {
	j      *Journal
	tag    string
	cursor int
}

func (s *liveStream) Next(ctx context.Context) (any, error) {
	for {
		s.j.mu.Lock()
		if s.j.liveErr != nil {
			err := s.j.liveErr
			s.j.mu.Unlock()
			return nil, err
		}
		for s.cursor < len(s.j.entries) {
			e := s.j.entries[s.cursor]
			s.cursor++
			if e.tag == s.tag {
				s.j.mu.Unlock()
				return e.element, nil
			}
		}
		if s.j.liveEnded {
			s.j.mu.Unlock()
			return nil, io.EOF
		}
		notify := s.j.notify
		s.j.mu.Unlock()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-notify:
		}
	}
}

func (s *liveStream) Close() error { return nil }
