package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wilhg/projector/examples/counter"
	"github.com/wilhg/projector/pkg/store/entstore"
	"github.com/wilhg/projector/pkg/view"
)

func startTestView(t *testing.T, st *entstore.Store, tag string) *view.View {
	t.Helper()
	v, err := view.New(view.Config{
		Tag:       tag,
		Journal:   st,
		Snapshots: st,
		Handler:   counter.New(),
		Logger:    slog.New(slog.NewTextHandler(testWriter{t}, nil)),
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = v.Run(ctx) }()
	return v
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(bytes.TrimSpace(p)))
	return len(p), nil
}

func TestHTTP_AppendAndQuery(t *testing.T) {
	dsn := "sqlite:file:maintest?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	st, err := entstore.Open(t.Context(), dsn, entstore.WithPollInterval(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(t.Context()); err != nil {
		t.Fatal(err)
	}

	v := startTestView(t, st, "counter")
	srv := httptest.NewServer(buildMux(st, v, "counter", prometheus.NewRegistry()))
	defer srv.Close()

	// append two events for one entity
	for range 2 {
		body := bytes.NewBufferString(`{"entity_id":"a","type":"incr"}`)
		res, err := http.Post(srv.URL+"/api/events", "application/json", body)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != http.StatusOK {
			t.Fatalf("append status=%d", res.StatusCode)
		}
		_ = res.Body.Close()
	}

	// the query blocks until the view is live and caught up with the stash,
	// then polling delivers the rest; retry until both events are visible
	deadline := time.Now().Add(5 * time.Second)
	for {
		res, err := http.Get(srv.URL + "/api/view")
		if err != nil {
			t.Fatal(err)
		}
		var state counter.State
		if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
			t.Fatal(err)
		}
		_ = res.Body.Close()
		if state.Count == 2 && state.ByEntity["a"] == 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("state never converged: %+v", state)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestHTTP_StatusAndHealth(t *testing.T) {
	dsn := "sqlite:file:maintest2?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	st, err := entstore.Open(t.Context(), dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(t.Context()); err != nil {
		t.Fatal(err)
	}

	v := startTestView(t, st, "counter")
	srv := httptest.NewServer(buildMux(st, v, "counter", prometheus.NewRegistry()))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("healthz status=%d", res.StatusCode)
	}
	_ = res.Body.Close()

	res2, err := http.Get(srv.URL + "/api/view/status")
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	var status struct {
		Phase string `json:"phase"`
		Live  bool   `json:"live"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	switch status.Phase {
	case "waiting_for_snapshot", "recovering", "live":
	default:
		t.Fatalf("unexpected phase %q", status.Phase)
	}
}

func TestHTTP_SnapshotRoundTrip(t *testing.T) {
	dsn := "sqlite:file:maintest3?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	st, err := entstore.Open(t.Context(), dsn, entstore.WithPollInterval(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(t.Context()); err != nil {
		t.Fatal(err)
	}

	_, err = st.AppendEvent(t.Context(), entstore.EventRecord{
		EventID: "ev-1", Tag: "counter", EntityID: "a", Type: "incr",
	})
	if err != nil {
		t.Fatal(err)
	}

	v := startTestView(t, st, "counter")
	srv := httptest.NewServer(buildMux(st, v, "counter", prometheus.NewRegistry()))
	defer srv.Close()

	// wait for the view to apply the historical event
	res, err := http.Get(srv.URL + "/api/view")
	if err != nil {
		t.Fatal(err)
	}
	_ = res.Body.Close()

	res2, err := http.Post(srv.URL+"/api/view/snapshot", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res2.StatusCode != http.StatusAccepted {
		t.Fatalf("snapshot status=%d", res2.StatusCode)
	}
	_ = res2.Body.Close()

	// the save is asynchronous; poll the store for the record
	deadline := time.Now().Add(5 * time.Second)
	for {
		rec, err := st.LoadLatestSnapshot(t.Context(), "counter")
		if err == nil {
			if rec.SeqNr != 1 {
				t.Fatalf("first snapshot seq_nr=%d, want 1", rec.SeqNr)
			}
			var state counter.State
			if err := json.Unmarshal(rec.State, &state); err != nil {
				t.Fatal(err)
			}
			if state.Count != 1 {
				t.Fatalf("snapshot count=%d, want 1", state.Count)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("snapshot never saved: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}
