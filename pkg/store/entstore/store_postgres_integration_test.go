//go:build integration

package entstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/store"
)

func openPostgres(t *testing.T) *Store {
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
	st, err := Open(ctx, fmt.Sprintf("postgres://%s", dsn))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestPostgresEventFlow(t *testing.T) {
	st := openPostgres(t)
	ctx := context.Background()

	for i := range 3 {
		_, err := st.AppendEvent(ctx, EventRecord{
			EventID:  fmt.Sprintf("pg-%d", i),
			Tag:      "t",
			EntityID: "a",
			Type:     "test",
			Payload:  json.RawMessage(`{"n":1}`),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	s, err := st.CurrentEvents(ctx, "t", journal.NoOffset{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var seqs []uint64
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
		seqs = append(seqs, env.SequenceNr)
	}
	if len(seqs) != 3 || seqs[0] != 0 || seqs[2] != 2 {
		t.Fatalf("seqs = %v, want 0,1,2", seqs)
	}
}

func TestPostgresSnapshotFlow(t *testing.T) {
	st := openPostgres(t)
	ctx := context.Background()

	off, err := journal.MarshalOffset(journal.SequenceOffset(3))
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.SaveSnapshot(ctx, store.SnapshotRecord{
		SnapshotID: "pgsnap",
		ViewID:     "v",
		SeqNr:      1,
		Offset:     off,
		EntitySeqs: map[string]uint64{"a": 3},
		State:      json.RawMessage(`{"count":3}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := st.LoadLatestSnapshot(ctx, "v")
	if err != nil {
		t.Fatal(err)
	}
	if got.SnapshotID != "pgsnap" || got.EntitySeqs["a"] != 3 {
		t.Fatalf("loaded %+v", got)
	}
}
