package view

import (
	"testing"

	"github.com/wilhg/projector/pkg/journal"
)

func TestDedupFilter(t *testing.T) {
	f := newDedupFilter(map[string]uint64{"a": 3})

	cases := []struct {
		name string
		env  journal.Envelope
		want bool
	}{
		{"below threshold", journal.Envelope{EntityID: "a", SequenceNr: 2}, false},
		{"at threshold", journal.Envelope{EntityID: "a", SequenceNr: 3}, true},
		{"above threshold", journal.Envelope{EntityID: "a", SequenceNr: 7}, true},
		{"unknown entity", journal.Envelope{EntityID: "b", SequenceNr: 0}, true},
		{"no identity", journal.Envelope{EntityID: "", SequenceNr: 9}, false},
	}
	for _, tc := range cases {
		if got := f.keep(tc.env); got != tc.want {
			t.Errorf("%s: keep = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDedupFilter_DropsDuplicatesWithinStream(t *testing.T) {
	f := newDedupFilter(nil)
	if !f.keep(journal.Envelope{EntityID: "a", SequenceNr: 5}) {
		t.Fatal("first delivery dropped")
	}
	if f.keep(journal.Envelope{EntityID: "a", SequenceNr: 5}) {
		t.Fatal("duplicate delivery kept")
	}
	if f.keep(journal.Envelope{EntityID: "a", SequenceNr: 4}) {
		t.Fatal("stale delivery kept")
	}
	if !f.keep(journal.Envelope{EntityID: "a", SequenceNr: 6}) {
		t.Fatal("next delivery dropped")
	}
}

func TestDedupFilter_FrozenCopy(t *testing.T) {
	src := map[string]uint64{"a": 1}
	f := newDedupFilter(src)
	src["a"] = 100

	if !f.keep(journal.Envelope{EntityID: "a", SequenceNr: 1}) {
		t.Fatal("filter tracked later mutations of its source table")
	}
}

func TestStash_DrainResets(t *testing.T) {
	var s stash
	s.append("a")
	s.append("b")
	if s.len() != 2 {
		t.Fatalf("len = %d, want 2", s.len())
	}
	got := s.drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("drain = %v", got)
	}
	if s.len() != 0 {
		t.Fatalf("len after drain = %d, want 0", s.len())
	}
}
