package journaltest

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/wilhg/projector/pkg/journal"
)

func TestAppend_AssignsSequences(t *testing.T) {
	j := New()
	a0 := j.Append("t", "a", nil).(journal.RawEnvelope)
	a1 := j.Append("t", "a", nil).(journal.RawEnvelope)
	b0 := j.Append("t", "b", nil).(journal.RawEnvelope)

	if a0.SequenceNr != 0 || a1.SequenceNr != 1 || b0.SequenceNr != 0 {
		t.Fatalf("seqs = %d,%d,%d want 0,1,0", a0.SequenceNr, a1.SequenceNr, b0.SequenceNr)
	}
	if a0.Offset != 1 || a1.Offset != 2 || b0.Offset != 3 {
		t.Fatalf("globals = %d,%d,%d want 1,2,3", a0.Offset, a1.Offset, b0.Offset)
	}
}

func TestCurrentEvents_BoundedAtOpen(t *testing.T) {
	j := New()
	j.Append("t", "a", nil)
	j.Append("other", "x", nil)

	s, err := j.CurrentEvents(context.Background(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	j.Append("t", "a", nil) // past the bound

	if _, err := s.Next(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("second next = %v, want EOF", err)
	}
}

func TestEvents_TailsAndFails(t *testing.T) {
	j := New()
	s, err := j.Events(context.Background(), "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}

	got := make(chan any, 1)
	go func() {
		el, err := s.Next(context.Background())
		if err != nil {
			got <- err
			return
		}
		got <- el
	}()

	time.Sleep(10 * time.Millisecond)
	j.Append("t", "a", nil)
	select {
	case el := <-got:
		if _, ok := el.(journal.RawEnvelope); !ok {
			t.Fatalf("delivered %T", el)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("live stream never delivered")
	}

	boom := errors.New("boom")
	j.FailLive(boom)
	if _, err := s.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("after FailLive next = %v", err)
	}
}

func TestEvents_EndLiveCompletes(t *testing.T) {
	j := New()
	s, _ := j.Events(context.Background(), "t", journal.NoOffset{})
	j.EndLive()
	if _, err := s.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("after EndLive next = %v, want EOF", err)
	}
}

func TestTimeOffset_RedeliversSameMillisecond(t *testing.T) {
	j := New()
	j.UseLegacyOffsets()
	now := time.UnixMilli(42)
	j.Now = func() time.Time { return now }
	j.Append("t", "a", nil)
	j.Append("t", "a", nil)

	s, err := j.CurrentEvents(context.Background(), "t", journal.TimeOffset(42))
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for {
		_, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("redelivered %d events, want 2 (inclusive millisecond resume)", n)
	}
}

func TestSequenceOffset_ResumesExclusively(t *testing.T) {
	j := New()
	j.Append("t", "a", nil)
	j.Append("t", "a", nil)

	s, err := j.CurrentEvents(context.Background(), "t", journal.SequenceOffset(1))
	if err != nil {
		t.Fatal(err)
	}
	el, err := s.Next(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if env := el.(journal.RawEnvelope); env.Offset != 2 {
		t.Fatalf("resumed at global %d, want 2", env.Offset)
	}

	reqs := j.Requests()
	if len(reqs) != 1 || reqs[0].Live || reqs[0].From != journal.SequenceOffset(1) {
		t.Fatalf("requests = %+v", reqs)
	}
}
