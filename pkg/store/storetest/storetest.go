// Package storetest provides an in-memory snapshot store for tests and
// examples.
package storetest

import (
	"context"
	"database/sql"
	"maps"
	"sync"

	"github.com/wilhg/projector/pkg/store"
)

// SnapshotStore keeps snapshots in memory, newest-first per view.
type SnapshotStore struct {
	mu   sync.Mutex
	recs map[string][]store.SnapshotRecord

	// SaveErr, when set, fails every save with this error.
	SaveErr error
	// LoadErr, when set, fails every load with this error.
	LoadErr error
	// BlockSave, when non-nil, is received from before a save returns.
	// Lets tests hold a save in flight.
	BlockSave chan struct{}
	// BlockLoad, when non-nil, is received from before a load returns.
	BlockLoad chan struct{}

	saves int
}

// New returns an empty store.
func New() *SnapshotStore {
	return &SnapshotStore{recs: make(map[string][]store.SnapshotRecord)}
}

// SaveCount reports how many saves reached the store.
func (s *SnapshotStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, rec store.SnapshotRecord) (store.SnapshotRecord, error) {
	s.mu.Lock()
	s.saves++
	err := s.SaveErr
	block := s.BlockSave
	s.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return store.SnapshotRecord{}, ctx.Err()
		}
	}
	if err != nil {
		return store.SnapshotRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec.EntitySeqs = maps.Clone(rec.EntitySeqs)
	s.recs[rec.ViewID] = append(s.recs[rec.ViewID], rec)
	return rec, nil
}

func (s *SnapshotStore) LoadLatestSnapshot(ctx context.Context, viewID string) (store.SnapshotRecord, error) {
	s.mu.Lock()
	block := s.BlockLoad
	s.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return store.SnapshotRecord{}, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return store.SnapshotRecord{}, s.LoadErr
	}
	recs := s.recs[viewID]
	if len(recs) == 0 {
		return store.SnapshotRecord{}, sql.ErrNoRows
	}
	latest := recs[0]
	for _, r := range recs[1:] {
		if r.SeqNr > latest.SeqNr {
			latest = r
		}
	}
	latest.EntitySeqs = maps.Clone(latest.EntitySeqs)
	return latest, nil
}
