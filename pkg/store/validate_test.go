package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/wilhg/projector/pkg/store"
	"github.com/wilhg/projector/pkg/store/storetest"
)

const counterSchema = `{
  "type": "object",
  "required": ["count"],
  "properties": {
    "count": {"type": "integer", "minimum": 0}
  }
}`

func TestValidatingStore(t *testing.T) {
	inner := storetest.New()
	st, err := store.NewValidating(inner, []byte(counterSchema))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	rec := store.SnapshotRecord{
		SnapshotID: "s1",
		ViewID:     "v",
		SeqNr:      1,
		State:      json.RawMessage(`{"count":3}`),
	}
	if _, err := st.SaveSnapshot(ctx, rec); err != nil {
		t.Fatalf("conforming state rejected: %v", err)
	}

	rec.SnapshotID = "s2"
	rec.SeqNr = 2
	rec.State = json.RawMessage(`{"count":-1}`)
	if _, err := st.SaveSnapshot(ctx, rec); err == nil {
		t.Fatal("non-conforming state saved")
	}

	rec.State = json.RawMessage(`not json`)
	if _, err := st.SaveSnapshot(ctx, rec); err == nil {
		t.Fatal("malformed state saved")
	}

	// Loads pass through regardless of schema.
	got, err := st.LoadLatestSnapshot(ctx, "v")
	if err != nil {
		t.Fatal(err)
	}
	if got.SnapshotID != "s1" {
		t.Fatalf("loaded %q, want s1", got.SnapshotID)
	}
}

func TestNewValidating_BadSchema(t *testing.T) {
	if _, err := store.NewValidating(storetest.New(), []byte(`{`)); err == nil {
		t.Fatal("malformed schema accepted")
	}
}
