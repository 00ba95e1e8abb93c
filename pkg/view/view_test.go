package view_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/wilhg/projector/examples/counter"
	"github.com/wilhg/projector/pkg/errmodel"
	"github.com/wilhg/projector/pkg/journal"
	"github.com/wilhg/projector/pkg/journal/journaltest"
	"github.com/wilhg/projector/pkg/store"
	"github.com/wilhg/projector/pkg/store/storetest"
	"github.com/wilhg/projector/pkg/view"
)

// recordingHandler captures every callback for assertions.
type recordingHandler struct {
	mu              sync.Mutex
	v               *view.View
	applied         []journal.Envelope
	phases          []view.Phase
	offers          []json.RawMessage
	reject          bool
	applyErr        error
	handled         []any
	appliedAtHandle []int
}

func (h *recordingHandler) ApplyEvent(ctx context.Context, env journal.Envelope) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.applyErr != nil {
		return h.applyErr
	}
	h.applied = append(h.applied, env)
	if h.v != nil {
		h.phases = append(h.phases, h.v.Phase())
	}
	return nil
}

func (h *recordingHandler) OfferSnapshot(ctx context.Context, state json.RawMessage) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.offers = append(h.offers, state)
	return !h.reject
}

func (h *recordingHandler) HandleMessage(ctx context.Context, msg any) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, msg)
	h.appliedAtHandle = append(h.appliedAtHandle, len(h.applied))
	return msg, nil
}

func (h *recordingHandler) appliedSeqs() []uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]uint64, len(h.applied))
	for i, env := range h.applied {
		out[i] = env.SequenceNr
	}
	return out
}

func (h *recordingHandler) appliedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.applied)
}

func (h *recordingHandler) offerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.offers)
}

func startView(t *testing.T, cfg view.Config) (*view.View, <-chan error) {
	t.Helper()
	v, err := view.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	errc := make(chan error, 1)
	go func() { errc <- v.Run(ctx) }()
	return v, errc
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitErr(t *testing.T, errc <-chan error) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("view did not terminate")
		return nil
	}
}

func seedSnapshot(t *testing.T, st *storetest.SnapshotStore, viewID string, seqNr int64, off journal.Offset, seqs map[string]uint64, state string) {
	t.Helper()
	b, err := journal.MarshalOffset(off)
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.SaveSnapshot(context.Background(), store.SnapshotRecord{
		SnapshotID: "seed",
		ViewID:     viewID,
		SeqNr:      seqNr,
		Offset:     b,
		EntitySeqs: seqs,
		State:      json.RawMessage(state),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestView_EndToEnd(t *testing.T) {
	j := journaltest.New()
	for range 3 {
		j.Append("counter", "a", nil) // covered by the snapshot below
	}
	j.Append("counter", "a", nil) // seq 3, to replay

	st := storetest.New()
	seedSnapshot(t, st, "counter", 7, journal.SequenceOffset(3),
		map[string]uint64{"a": 3}, `{"count":10,"by_entity":{"a":3}}`)

	h := counter.New()
	v, _ := startView(t, view.Config{
		Tag:       "counter",
		Journal:   j,
		Snapshots: st,
		Handler:   h,
	})

	ctx := context.Background()

	// This query is sent while the view may still be rebuilding; the answer
	// must already include the replayed historical event.
	reply, err := v.Ask(ctx, "query")
	if err != nil {
		t.Fatal(err)
	}
	state := reply.(counter.State)
	if state.Count != 11 {
		t.Fatalf("count after recovery = %d, want 11", state.Count)
	}
	if state.ByEntity["a"] != 4 {
		t.Fatalf("by_entity[a] = %d, want 4", state.ByEntity["a"])
	}

	// Live pickup.
	j.Append("counter", "b", nil)
	waitFor(t, "live event", func() bool {
		reply, err := v.Ask(ctx, "query")
		if err != nil {
			t.Fatal(err)
		}
		return reply.(counter.State).Count == 12
	})
	reply, _ = v.Ask(ctx, "query")
	state = reply.(counter.State)
	if state.ByEntity["a"] != 4 || state.ByEntity["b"] != 1 {
		t.Fatalf("by_entity = %v, want a:4 b:1", state.ByEntity)
	}

	// The historical request resumed from the snapshot's offset; the live
	// request resumed from the last applied event.
	reqs := j.Requests()
	if len(reqs) != 2 {
		t.Fatalf("requests = %d, want 2", len(reqs))
	}
	if reqs[0].Live || reqs[0].From != journal.SequenceOffset(3) {
		t.Fatalf("historical request = %+v", reqs[0])
	}
	if !reqs[1].Live || reqs[1].From != journal.SequenceOffset(4) {
		t.Fatalf("live request = %+v", reqs[1])
	}

	// Snapshot the current state; the saved record must carry the view's
	// bookkeeping, not the handler's.
	raw, err := v.Ask(ctx, "snapshot")
	if err != nil {
		t.Fatal(err)
	}
	if err := v.RequestSnapshot(ctx, raw.([]byte)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "snapshot save", func() bool {
		rec, err := st.LoadLatestSnapshot(ctx, "counter")
		return err == nil && rec.SeqNr == 8
	})
	rec, err := st.LoadLatestSnapshot(ctx, "counter")
	if err != nil {
		t.Fatal(err)
	}
	if rec.EntitySeqs["a"] != 4 || rec.EntitySeqs["b"] != 1 {
		t.Fatalf("snapshot entity seqs = %v, want a:4 b:1", rec.EntitySeqs)
	}
	off, err := journal.UnmarshalOffset(rec.Offset)
	if err != nil {
		t.Fatal(err)
	}
	if off != journal.SequenceOffset(5) {
		t.Fatalf("snapshot offset = %v, want sequence 5", off)
	}
	var saved counter.State
	if err := json.Unmarshal(rec.State, &saved); err != nil {
		t.Fatal(err)
	}
	if saved.Count != 12 {
		t.Fatalf("snapshot state count = %d, want 12", saved.Count)
	}
}

func TestView_NoSnapshotStore(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)
	j.Append("t", "a", nil)

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	if got := h.appliedCount(); got != 2 {
		t.Fatalf("applied = %d, want 2", got)
	}
	if h.offerCount() != 0 {
		t.Fatal("handler was offered a snapshot without a store")
	}

	err := v.RequestSnapshot(context.Background(), nil)
	if !errmodel.IsCategory(err, errmodel.CategorySnapshot) {
		t.Fatalf("RequestSnapshot error = %v, want snapshot category", err)
	}
}

func TestView_StashReleasedInOrderAfterLive(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	st.BlockLoad = make(chan struct{})

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})
	h.v = v

	ctx := context.Background()
	if err := v.Tell(ctx, "m1"); err != nil {
		t.Fatal(err)
	}
	if err := v.Tell(ctx, "m2"); err != nil {
		t.Fatal(err)
	}

	// Still waiting on the snapshot load: nothing answered, nothing applied.
	time.Sleep(20 * time.Millisecond)
	if v.IsLive() {
		t.Fatal("view went live while the snapshot load was blocked")
	}
	h.mu.Lock()
	handled := len(h.handled)
	h.mu.Unlock()
	if handled != 0 {
		t.Fatalf("handled %d messages before live", handled)
	}

	close(st.BlockLoad)
	waitFor(t, "live", v.IsLive)
	waitFor(t, "buffered messages", func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		return len(h.handled) == 2
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.handled[0] != "m1" || h.handled[1] != "m2" {
		t.Fatalf("handled order = %v", h.handled)
	}
	// Both answers were produced after the historical event was applied.
	for i, n := range h.appliedAtHandle {
		if n != 1 {
			t.Fatalf("message %d handled with %d events applied, want 1", i, n)
		}
	}
	// The event was applied during recovery, before the phase flipped.
	if h.phases[0] != view.PhaseRecovering {
		t.Fatalf("event applied in phase %v, want recovering", h.phases[0])
	}
}

func TestView_PreLiveHookRunsOnceBeforeRelease(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	st.BlockLoad = make(chan struct{})

	h := &recordingHandler{}
	var (
		mu            sync.Mutex
		calls         int
		phaseAtHook   view.Phase
		handledAtHook int
		appliedAtHook int
	)
	var v *view.View
	v, _ = startView(t, view.Config{
		Tag:       "t",
		Journal:   j,
		Snapshots: st,
		Handler:   h,
		PreLive: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			calls++
			phaseAtHook = v.Phase()
			h.mu.Lock()
			handledAtHook = len(h.handled)
			appliedAtHook = len(h.applied)
			h.mu.Unlock()
			return nil
		},
	})

	ctx := context.Background()
	if err := v.Tell(ctx, "buffered"); err != nil {
		t.Fatal(err)
	}
	close(st.BlockLoad)

	waitFor(t, "live", v.IsLive)
	waitFor(t, "buffered message", func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		return len(h.handled) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("hook ran %d times, want 1", calls)
	}
	if phaseAtHook != view.PhaseRecovering {
		t.Fatalf("hook saw phase %v, want recovering", phaseAtHook)
	}
	if handledAtHook != 0 {
		t.Fatalf("hook ran with %d buffered messages already handled", handledAtHook)
	}
	if appliedAtHook != 1 {
		t.Fatalf("hook ran with %d events applied, want all history replayed (1)", appliedAtHook)
	}
}

func TestView_PreLiveErrorIsFatal(t *testing.T) {
	j := journaltest.New()
	_, errc := startView(t, view.Config{
		Tag:     "t",
		Journal: j,
		Handler: &recordingHandler{},
		PreLive: func(ctx context.Context) error { return errors.New("warmup failed") },
	})

	err := waitErr(t, errc)
	if !errmodel.IsCategory(err, errmodel.CategoryStream) {
		t.Fatalf("error = %v, want stream category", err)
	}
	var ce *errmodel.Error
	if !errors.As(err, &ce) || ce.Code != "pre_live" {
		t.Fatalf("error code = %v, want pre_live", err)
	}
}

func TestView_DedupAcrossLegacyHandoff(t *testing.T) {
	j := journaltest.New()
	j.UseLegacyOffsets()
	now := time.UnixMilli(1_700_000_000_000)
	j.Now = func() time.Time { return now }
	for range 3 {
		j.Append("t", "a", nil) // seq 0..2, all on the same millisecond
	}

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	// The live stream resumed from a millisecond offset and redelivered all
	// three entries; the handoff filter drops every one of them.
	j.Append("t", "a", nil) // seq 3
	waitFor(t, "live event", func() bool { return h.appliedCount() == 4 })

	seqs := h.appliedSeqs()
	want := []uint64{0, 1, 2, 3}
	for i, s := range seqs {
		if s != want[i] {
			t.Fatalf("applied seqs = %v, want %v", seqs, want)
		}
	}
	// Make sure nothing slips in late.
	time.Sleep(50 * time.Millisecond)
	if got := h.appliedCount(); got != 4 {
		t.Fatalf("applied = %d after settle, want 4", got)
	}
}

func TestView_DuplicateDeliveryAppliedOnce(t *testing.T) {
	j := journaltest.New()
	j.AppendRaw("t", journal.RawEnvelope{Offset: 1, EntityID: "a", SequenceNr: 5})
	j.AppendRaw("t", journal.RawEnvelope{Offset: 2, EntityID: "a", SequenceNr: 5})
	j.AppendRaw("t", journal.RawEnvelope{Offset: 3, EntityID: "a", SequenceNr: 6})

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	seqs := h.appliedSeqs()
	if len(seqs) != 2 || seqs[0] != 5 || seqs[1] != 6 {
		t.Fatalf("applied seqs = %v, want [5 6]", seqs)
	}
}

func TestView_DropsElementsWithoutIdentity(t *testing.T) {
	j := journaltest.New()
	j.AppendRaw("t", "not an envelope")
	j.AppendRaw("t", journal.RawEnvelope{Offset: 2, EntityID: "", SequenceNr: 0})
	j.Append("t", "a", nil)

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	if got := h.appliedCount(); got != 1 {
		t.Fatalf("applied = %d, want 1", got)
	}
}

func TestView_RecoveryFailureIsFatal(t *testing.T) {
	j := journaltest.New()
	boom := errors.New("boom")
	j.FailCurrent(boom)

	_, errc := startView(t, view.Config{Tag: "t", Journal: j, Handler: &recordingHandler{}})

	err := waitErr(t, errc)
	if !errmodel.IsCategory(err, errmodel.CategoryStream) {
		t.Fatalf("error = %v, want stream category", err)
	}
	var ce *errmodel.Error
	if !errors.As(err, &ce) || ce.Code != "recovery_failed" {
		t.Fatalf("error code = %v, want recovery_failed", err)
	}
}

func TestView_RecoveryTimeoutIsFatal(t *testing.T) {
	j := journaltest.New()
	j.BlockCurrent()

	_, errc := startView(t, view.Config{
		Tag:             "t",
		Journal:         j,
		Handler:         &recordingHandler{},
		RecoveryTimeout: 30 * time.Millisecond,
	})

	err := waitErr(t, errc)
	if !errmodel.IsCategory(err, errmodel.CategoryStream) {
		t.Fatalf("error = %v, want stream category", err)
	}
}

func TestView_ApplyErrorIsFatal(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	h := &recordingHandler{applyErr: errors.New("bad event")}
	_, errc := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	err := waitErr(t, errc)
	var ce *errmodel.Error
	if !errors.As(err, &ce) || ce.Code != "apply_event" {
		t.Fatalf("error = %v, want apply_event", err)
	}
}

func TestView_LiveStreamEndIsFatal(t *testing.T) {
	j := journaltest.New()
	h := &recordingHandler{}
	v, errc := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	j.EndLive()

	err := waitErr(t, errc)
	var ce *errmodel.Error
	if !errors.As(err, &ce) || ce.Code != "live_stream_ended" {
		t.Fatalf("error = %v, want live_stream_ended", err)
	}
}

func TestView_LiveStreamFailureIsFatal(t *testing.T) {
	j := journaltest.New()
	h := &recordingHandler{}
	v, errc := startView(t, view.Config{Tag: "t", Journal: j, Handler: h})

	waitFor(t, "live", v.IsLive)
	j.FailLive(errors.New("conn reset"))

	err := waitErr(t, errc)
	var ce *errmodel.Error
	if !errors.As(err, &ce) || ce.Code != "live_stream_failed" {
		t.Fatalf("error = %v, want live_stream_failed", err)
	}
}

func TestView_SnapshotLoadFailureRecoversFromScratch(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)
	j.Append("t", "a", nil)

	st := storetest.New()
	st.LoadErr = errors.New("db down")

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})

	waitFor(t, "live", v.IsLive)
	if got := h.appliedCount(); got != 2 {
		t.Fatalf("applied = %d, want 2", got)
	}
	if from := j.Requests()[0].From; from != (journal.NoOffset{}) {
		t.Fatalf("recovered from %v, want no offset", from)
	}
}

func TestView_SnapshotLoadTimeoutRecoversFromScratch(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	st.BlockLoad = make(chan struct{}) // never closed

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{
		Tag:                 "t",
		Journal:             j,
		Snapshots:           st,
		Handler:             h,
		LoadSnapshotTimeout: 30 * time.Millisecond,
	})

	waitFor(t, "live", v.IsLive)
	if got := h.appliedCount(); got != 1 {
		t.Fatalf("applied = %d, want 1", got)
	}
}

func TestView_RejectedOfferDiscardsBookkeeping(t *testing.T) {
	j := journaltest.New()
	for range 3 {
		j.Append("t", "a", nil)
	}

	st := storetest.New()
	seedSnapshot(t, st, "t", 1, journal.SequenceOffset(2), map[string]uint64{"a": 2}, `{}`)

	h := &recordingHandler{reject: true}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})

	waitFor(t, "live", v.IsLive)
	if h.offerCount() != 1 {
		t.Fatalf("offers = %d, want 1", h.offerCount())
	}
	// Rejection means the snapshot's offset and sequence table are not
	// adopted: replay covers the whole journal.
	if got := h.appliedCount(); got != 3 {
		t.Fatalf("applied = %d, want 3", got)
	}
	if from := j.Requests()[0].From; from != (journal.NoOffset{}) {
		t.Fatalf("recovered from %v, want no offset", from)
	}
}

func TestView_UndecodableSnapshotOffsetNeverOffered(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	_, err := st.SaveSnapshot(context.Background(), store.SnapshotRecord{
		SnapshotID: "bad",
		ViewID:     "t",
		SeqNr:      1,
		Offset:     []byte("garbage"),
		State:      json.RawMessage(`{}`),
	})
	if err != nil {
		t.Fatal(err)
	}

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})

	waitFor(t, "live", v.IsLive)
	if h.offerCount() != 0 {
		t.Fatal("handler was offered a snapshot the view cannot resume from")
	}
	if got := h.appliedCount(); got != 1 {
		t.Fatalf("applied = %d, want 1", got)
	}
}

func TestView_SingleSnapshotSaveInFlight(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	st.BlockSave = make(chan struct{})

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})

	ctx := context.Background()
	waitFor(t, "live", v.IsLive)

	if err := v.RequestSnapshot(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := v.RequestSnapshot(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	// Both requests are dispatched before this answer arrives.
	if _, err := v.Ask(ctx, "ping"); err != nil {
		t.Fatal(err)
	}

	close(st.BlockSave)
	waitFor(t, "snapshot save", func() bool {
		_, err := st.LoadLatestSnapshot(ctx, "t")
		return err == nil
	})
	if got := st.SaveCount(); got != 1 {
		t.Fatalf("saves = %d, want 1 (second request must be dropped)", got)
	}
}

func TestView_SnapshotSaveFailureAllowsRetry(t *testing.T) {
	j := journaltest.New()
	j.Append("t", "a", nil)

	st := storetest.New()
	st.SaveErr = errors.New("disk full")

	h := &recordingHandler{}
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Snapshots: st, Handler: h})

	ctx := context.Background()
	waitFor(t, "live", v.IsLive)

	if err := v.RequestSnapshot(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "failed save attempt", func() bool { return st.SaveCount() == 1 })
	if _, err := st.LoadLatestSnapshot(ctx, "t"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("load after failed save = %v, want no rows", err)
	}

	st.SaveErr = nil
	if err := v.RequestSnapshot(ctx, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "snapshot save", func() bool {
		_, err := st.LoadLatestSnapshot(ctx, "t")
		return err == nil
	})
	rec, _ := st.LoadLatestSnapshot(ctx, "t")
	if rec.SeqNr != 1 {
		t.Fatalf("snapshot seq_nr = %d, want 1", rec.SeqNr)
	}
}

func TestView_RunTwice(t *testing.T) {
	j := journaltest.New()
	v, _ := startView(t, view.Config{Tag: "t", Journal: j, Handler: &recordingHandler{}})
	waitFor(t, "live", v.IsLive)

	err := v.Run(context.Background())
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("second Run = %v, want validation error", err)
	}
}

func TestView_CancelStopsCleanly(t *testing.T) {
	j := journaltest.New()
	v, err := view.New(view.Config{Tag: "t", Journal: j, Handler: &recordingHandler{}})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- v.Run(ctx) }()
	waitFor(t, "live", v.IsLive)
	cancel()
	if err := waitErr(t, errc); err != nil {
		t.Fatalf("Run after cancel = %v, want nil", err)
	}

	// Interacting with a stopped view fails fast.
	if _, err := v.Ask(context.Background(), "q"); !errors.Is(err, view.ErrStopped) {
		t.Fatalf("Ask after stop = %v, want ErrStopped", err)
	}
}

func TestView_ConfigValidation(t *testing.T) {
	if _, err := view.New(view.Config{Tag: "t", Handler: &recordingHandler{}}); err == nil {
		t.Fatal("New without journal succeeded")
	}
	if _, err := view.New(view.Config{Tag: "t", Journal: journaltest.New()}); err == nil {
		t.Fatal("New without handler succeeded")
	}
	if _, err := view.New(view.Config{Journal: journaltest.New(), Handler: &recordingHandler{}}); err == nil {
		t.Fatal("New without tag succeeded")
	}
}
