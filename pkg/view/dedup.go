package view

import (
	"maps"

	"github.com/wilhg/projector/pkg/journal"
)

// dedupFilter drops events the view has already folded in. It is seeded from
// the per-entity sequence table at the moment a stream starts and never reads
// the view's table again: resumption offsets can be coarser than per-event
// sequence numbers (legacy time offsets), so redelivery at or after the
// resumption point is expected and suppressed per entity. The filter advances
// its own copy as elements pass, which also suppresses duplicates within a
// single stream run.
type dedupFilter map[string]uint64

func newDedupFilter(next map[string]uint64) dedupFilter {
	f := maps.Clone(next)
	if f == nil {
		f = make(dedupFilter)
	}
	return f
}

// keep reports whether env should be delivered, advancing the filter when it
// is. Envelopes without an entity identity cannot be deduplicated and are
// dropped; they are not expected on this path.
func (f dedupFilter) keep(env journal.Envelope) bool {
	if env.EntityID == "" {
		return false
	}
	if next, ok := f[env.EntityID]; ok && env.SequenceNr < next {
		return false
	}
	f[env.EntityID] = env.SequenceNr + 1
	return true
}
