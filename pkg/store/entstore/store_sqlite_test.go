package entstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

func openTestStore(t *testing.T, name string, opts ...Option) *Store {
	t.Helper()
	dsn := fmt.Sprintf("sqlite:file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)
	st, err := Open(t.Context(), dsn, opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(t.Context()); err != nil {
		t.Fatal(err)
	}
	return st
}

func appendN(t *testing.T, st *Store, tag, entityID string, n int) []EventRecord {
	t.Helper()
	out := make([]EventRecord, 0, n)
	for range n {
		rec, err := st.AppendEvent(t.Context(), EventRecord{
			EventID:  uuid.NewString(),
			Tag:      tag,
			EntityID: entityID,
			Type:     "test",
			Payload:  json.RawMessage(`{"n":1}`),
		})
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, rec)
	}
	return out
}

func TestAppendEvent_Sequencing(t *testing.T) {
	st := openTestStore(t, "seq")
	ctx := t.Context()

	a := appendN(t, st, "t", "a", 2)
	b := appendN(t, st, "t", "b", 1)

	if a[0].Seq != 0 || a[1].Seq != 1 {
		t.Fatalf("entity a seqs = %d,%d want 0,1", a[0].Seq, a[1].Seq)
	}
	if b[0].Seq != 0 {
		t.Fatalf("entity b seq = %d want 0", b[0].Seq)
	}
	if a[0].GlobalSeq != 1 || a[1].GlobalSeq != 2 || b[0].GlobalSeq != 3 {
		t.Fatalf("globals = %d,%d,%d want 1,2,3", a[0].GlobalSeq, a[1].GlobalSeq, b[0].GlobalSeq)
	}

	last, err := st.LastGlobalSeq(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if last != 3 {
		t.Fatalf("last global = %d want 3", last)
	}

	// Re-appending an existing event_id returns the stored record unchanged.
	dup, err := st.AppendEvent(ctx, EventRecord{
		EventID:  a[0].EventID,
		Tag:      "t",
		EntityID: "a",
		Type:     "test",
	})
	if err != nil {
		t.Fatal(err)
	}
	if dup.GlobalSeq != a[0].GlobalSeq || dup.Seq != a[0].Seq {
		t.Fatalf("idempotent append returned %+v, want %+v", dup, a[0])
	}
	if last, _ := st.LastGlobalSeq(ctx); last != 3 {
		t.Fatalf("duplicate append advanced the journal to %d", last)
	}
}

func TestCurrentEvents_EmptyJournalCompletes(t *testing.T) {
	st := openTestStore(t, "empty")

	s, err := st.CurrentEvents(t.Context(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// First boot: no history to replay, the stream must end immediately
	// rather than poll.
	if _, err := s.Next(t.Context()); !errors.Is(err, io.EOF) {
		t.Fatalf("next on empty journal = %v, want EOF", err)
	}

	// An append after the stream was opened belongs to the live stream,
	// not this one.
	appendN(t, st, "t", "a", 1)
	if _, err := s.Next(t.Context()); !errors.Is(err, io.EOF) {
		t.Fatalf("next after late append = %v, want EOF", err)
	}
}

func TestCurrentEvents_BoundedAndOrdered(t *testing.T) {
	st := openTestStore(t, "current")
	appendN(t, st, "t", "a", 3)
	appendN(t, st, "other", "x", 1)

	s, err := st.CurrentEvents(t.Context(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// An append after the stream is opened is beyond its bound.
	appendN(t, st, "t", "a", 1)

	var seqs []uint64
	for {
		el, err := s.Next(t.Context())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		env, ok := journal.Normalize(el)
		if !ok {
			t.Fatalf("unexpected element %T", el)
		}
		seqs = append(seqs, env.SequenceNr)
	}
	if len(seqs) != 3 {
		t.Fatalf("delivered %d events, want 3", len(seqs))
	}
	for i, s := range seqs {
		if s != uint64(i) {
			t.Fatalf("seqs = %v, want 0,1,2", seqs)
		}
	}
}

func TestCurrentEvents_ResumesFromSequenceOffset(t *testing.T) {
	st := openTestStore(t, "resume")
	recs := appendN(t, st, "t", "a", 3)

	s, err := st.CurrentEvents(t.Context(), "t", journal.SequenceOffset(recs[0].GlobalSeq))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	el, err := s.Next(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	env, _ := journal.Normalize(el)
	if env.SequenceNr != 1 {
		t.Fatalf("first resumed seq = %d, want 1", env.SequenceNr)
	}
	if env.Offset != journal.SequenceOffset(recs[1].GlobalSeq) {
		t.Fatalf("first resumed offset = %v, want %d", env.Offset, recs[1].GlobalSeq)
	}
}

func TestEvents_PollsForNewEvents(t *testing.T) {
	st := openTestStore(t, "live", WithPollInterval(10*time.Millisecond))
	appendN(t, st, "t", "a", 1)

	s, err := st.Events(t.Context(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Next(t.Context()); err != nil {
		t.Fatal(err)
	}

	// The stream is caught up; the next element arrives via polling.
	done := make(chan struct{})
	go func() {
		defer close(done)
		el, err := s.Next(context.Background())
		if err != nil {
			t.Errorf("live next: %v", err)
			return
		}
		env, _ := journal.Normalize(el)
		if env.SequenceNr != 1 {
			t.Errorf("live seq = %d, want 1", env.SequenceNr)
		}
	}()

	time.Sleep(20 * time.Millisecond)
	appendN(t, st, "t", "a", 1)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("live stream never delivered the new event")
	}
}

func TestEvents_ClosedStreamFailsPendingNext(t *testing.T) {
	st := openTestStore(t, "close", WithPollInterval(10*time.Millisecond))

	s, err := st.Events(t.Context(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}

	errc := make(chan error, 1)
	go func() {
		_, err := s.Next(context.Background())
		errc <- err
	}()
	time.Sleep(20 * time.Millisecond)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("Next returned no error after Close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Next did not return after Close")
	}
	// Closing twice is fine.
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLegacyOffsets(t *testing.T) {
	st := openTestStore(t, "legacy", WithLegacyOffsets())
	appendN(t, st, "t", "a", 1)

	s, err := st.CurrentEvents(t.Context(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	el, err := s.Next(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := el.(journal.RawLegacyEnvelope); !ok {
		t.Fatalf("element = %T, want legacy envelope", el)
	}
	env, _ := journal.Normalize(el)
	if _, ok := env.Offset.(journal.TimeOffset); !ok {
		t.Fatalf("offset = %T, want time offset", env.Offset)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := openTestStore(t, "snap")
	ctx := t.Context()

	if _, err := st.LoadLatestSnapshot(ctx, "v"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("load on empty store = %v, want no rows", err)
	}

	off, err := journal.MarshalOffset(journal.SequenceOffset(9))
	if err != nil {
		t.Fatal(err)
	}
	for seqNr := int64(1); seqNr <= 2; seqNr++ {
		_, err := st.SaveSnapshot(ctx, store.SnapshotRecord{
			SnapshotID: fmt.Sprintf("s%d", seqNr),
			ViewID:     "v",
			SeqNr:      seqNr,
			Offset:     off,
			EntitySeqs: map[string]uint64{"a": 4},
			State:      json.RawMessage(fmt.Sprintf(`{"count":%d}`, seqNr)),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := st.LoadLatestSnapshot(ctx, "v")
	if err != nil {
		t.Fatal(err)
	}
	if got.SeqNr != 2 || got.SnapshotID != "s2" {
		t.Fatalf("latest = %+v, want s2", got)
	}
	if got.EntitySeqs["a"] != 4 {
		t.Fatalf("entity seqs = %v", got.EntitySeqs)
	}
	decoded, err := journal.UnmarshalOffset(got.Offset)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != journal.SequenceOffset(9) {
		t.Fatalf("offset = %v, want sequence 9", decoded)
	}
}

func TestOpen_RejectsBadDSN(t *testing.T) {
	if _, err := Open(t.Context(), ""); err == nil {
		t.Fatal("empty DSN accepted")
	}
	if _, err := Open(t.Context(), "mysql://u@h/db"); err == nil {
		t.Fatal("unsupported scheme accepted")
	}
	if _, err := Open(t.Context(), "definitely not a dsn"); err == nil {
		t.Fatal("junk DSN accepted")
	}
}
