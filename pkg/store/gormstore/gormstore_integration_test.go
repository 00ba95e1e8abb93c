//go:build integration

package gormstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

func openGorm(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("projector"),
		tcpostgres.WithUsername("projector"),
		tcpostgres.WithPassword("projector"),
		tcpostgres.WithSQLDriver("pgx"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	st, err := Open(fmt.Sprintf("postgres://%s", dsn), WithPollInterval(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestGormEventFlow(t *testing.T) {
	st := openGorm(t)
	ctx := context.Background()

	// Empty journal: the historical stream completes instead of polling.
	empty, err := st.CurrentEvents(ctx, "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := empty.Next(ctx); !errors.Is(err, io.EOF) {
		t.Fatalf("next on empty journal = %v, want EOF", err)
	}
	_ = empty.Close()

	var globals []int64
	for entity, n := range map[string]int{"a": 2, "b": 1} {
		for i := range n {
			rec, err := st.AppendEvent(ctx, "t", entity, "test", json.RawMessage(`{"n":1}`))
			if err != nil {
				t.Fatal(err)
			}
			if rec.Seq != uint64(i) {
				t.Fatalf("entity %s append %d got seq %d", entity, i, rec.Seq)
			}
			globals = append(globals, rec.GlobalSeq)
		}
	}
	if len(globals) != 3 {
		t.Fatalf("appended %d events", len(globals))
	}

	s, err := st.CurrentEvents(ctx, "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var count int
	var lastGlobal int64
	for {
		el, err := s.Next(ctx)
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
		g := int64(env.Offset.(journal.SequenceOffset))
		if g <= lastGlobal {
			t.Fatalf("global order violated: %d after %d", g, lastGlobal)
		}
		lastGlobal = g
		count++
	}
	if count != 3 {
		t.Fatalf("delivered %d events, want 3", count)
	}
}

func TestGormLivePickup(t *testing.T) {
	st := openGorm(t)
	ctx := context.Background()

	s, err := st.Events(ctx, "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		el, err := s.Next(ctx)
		if err != nil {
			t.Errorf("live next: %v", err)
			return
		}
		env, _ := journal.Normalize(el)
		if env.EntityID != "a" {
			t.Errorf("entity = %q", env.EntityID)
		}
	}()

	time.Sleep(50 * time.Millisecond)
	if _, err := st.AppendEvent(ctx, "t", "a", "test", nil); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("live stream never delivered")
	}
}

func TestGormSnapshotFlow(t *testing.T) {
	st := openGorm(t)
	ctx := context.Background()

	if _, err := st.LoadLatestSnapshot(ctx, "v"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("load on empty store = %v, want no rows", err)
	}

	off, err := journal.MarshalOffset(journal.SequenceOffset(2))
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.SaveSnapshot(ctx, store.SnapshotRecord{
		SnapshotID: "g1",
		ViewID:     "v",
		SeqNr:      1,
		Offset:     off,
		EntitySeqs: map[string]uint64{"a": 2},
		State:      json.RawMessage(`{"count":2}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := st.LoadLatestSnapshot(ctx, "v")
	if err != nil {
		t.Fatal(err)
	}
	if got.SnapshotID != "g1" || got.EntitySeqs["a"] != 2 {
		t.Fatalf("loaded %+v", got)
	}
}
