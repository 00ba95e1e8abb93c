package store

import (
	"context"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// validatingStore rejects snapshot saves whose state does not conform to a
// JSON schema. Loads pass through untouched: already persisted snapshots are
// the application's problem to migrate, not the store's to censor.
type validatingStore struct {
	inner  SnapshotStore
	schema *jsonschema.Schema
}

// NewValidating wraps inner so that SaveSnapshot validates the record's State
// against the given JSON schema document.
func NewValidating(inner SnapshotStore, schema []byte) (SnapshotStore, error) {
	c := jsonschema.NewCompiler()
	var doc any
	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, fmt.Errorf("store: parse snapshot schema: %w", err)
	}
	if err := c.AddResource("mem://snapshot.json", doc); err != nil {
		return nil, err
	}
	sch, err := c.Compile("mem://snapshot.json")
	if err != nil {
		return nil, fmt.Errorf("store: compile snapshot schema: %w", err)
	}
	return &validatingStore{inner: inner, schema: sch}, nil
}

func (s *validatingStore) SaveSnapshot(ctx context.Context, rec SnapshotRecord) (SnapshotRecord, error) {
	var v any
	if len(rec.State) > 0 {
		if err := json.Unmarshal(rec.State, &v); err != nil {
			return SnapshotRecord{}, fmt.Errorf("store: snapshot state is not JSON: %w", err)
		}
	}
	if err := s.schema.Validate(v); err != nil {
		return SnapshotRecord{}, fmt.Errorf("store: snapshot state rejected by schema: %w", err)
	}
	return s.inner.SaveSnapshot(ctx, rec)
}

func (s *validatingStore) LoadLatestSnapshot(ctx context.Context, viewID string) (SnapshotRecord, error) {
	return s.inner.LoadLatestSnapshot(ctx, viewID)
}
