package journal

import (
	"testing"
	"time"
)

func TestOffsetRoundTrip(t *testing.T) {
	for _, off := range []Offset{NoOffset{}, SequenceOffset(42), TimeOffset(1_700_000_000_123)} {
		b, err := MarshalOffset(off)
		if err != nil {
			t.Fatalf("marshal %v: %v", off, err)
		}
		got, err := UnmarshalOffset(b)
		if err != nil {
			t.Fatalf("unmarshal %v: %v", off, err)
		}
		if got != off {
			t.Fatalf("round trip = %v, want %v", got, off)
		}
	}
}

func TestUnmarshalOffset_Empty(t *testing.T) {
	got, err := UnmarshalOffset(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != (NoOffset{}) {
		t.Fatalf("empty input = %v, want no offset", got)
	}
}

func TestUnmarshalOffset_Garbage(t *testing.T) {
	if _, err := UnmarshalOffset([]byte("not json")); err == nil {
		t.Fatal("garbage input decoded")
	}
	if _, err := UnmarshalOffset([]byte(`{"kind":"parsecs","value":12}`)); err == nil {
		t.Fatal("unknown kind decoded")
	}
}

func TestTimeOffsetOf_MillisecondPrecision(t *testing.T) {
	ts := time.Date(2026, 8, 25, 12, 0, 0, 123_456_789, time.UTC)
	off := TimeOffsetOf(ts)
	if got := off.Time().UnixMilli(); got != ts.UnixMilli() {
		t.Fatalf("millis = %d, want %d", got, ts.UnixMilli())
	}
	// Sub-millisecond detail is gone: two instants in the same millisecond
	// collapse to the same offset.
	if TimeOffsetOf(ts.Add(100*time.Microsecond)) != off {
		t.Fatal("offsets within one millisecond differ")
	}
}

func TestNormalize(t *testing.T) {
	env, ok := Normalize(RawEnvelope{Offset: 7, EntityID: "a", SequenceNr: 3, Payload: "p"})
	if !ok {
		t.Fatal("precise shape rejected")
	}
	if env.Offset != SequenceOffset(7) || env.EntityID != "a" || env.SequenceNr != 3 || env.Payload != "p" {
		t.Fatalf("normalized = %+v", env)
	}

	env, ok = Normalize(RawLegacyEnvelope{TimestampMillis: 99, EntityID: "b", SequenceNr: 0})
	if !ok {
		t.Fatal("legacy shape rejected")
	}
	if env.Offset != TimeOffset(99) || env.EntityID != "b" {
		t.Fatalf("normalized = %+v", env)
	}

	passthrough := Envelope{Offset: SequenceOffset(1), EntityID: "c"}
	env, ok = Normalize(passthrough)
	if !ok || env != passthrough {
		t.Fatalf("passthrough = %+v, %v", env, ok)
	}

	if _, ok := Normalize("junk"); ok {
		t.Fatal("junk element normalized")
	}
	if _, ok := Normalize(nil); ok {
		t.Fatal("nil element normalized")
	}
}
