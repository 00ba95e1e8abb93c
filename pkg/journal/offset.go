package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Offset marks how far a journal has been consumed. Offsets are minted by the
// journal and carried opaquely by consumers; only the journal interprets them
// when a stream is resumed.
type Offset interface {
	isOffset()
}

// NoOffset is the zero resumption point: streams start from the beginning of
// the journal.
type NoOffset struct{}

// SequenceOffset is the precise offset shape: the journal-global sequence
// number of the last consumed event.
type SequenceOffset int64

// TimeOffset is the legacy offset shape: a wall-clock position with
// millisecond precision. Resuming from a TimeOffset may redeliver events that
// fall on the same millisecond, so consumers must deduplicate per entity.
type TimeOffset int64

func (NoOffset) isOffset()       {}
func (SequenceOffset) isOffset() {}
func (TimeOffset) isOffset()     {}

// TimeOffsetOf truncates t to the journal's millisecond precision.
func TimeOffsetOf(t time.Time) TimeOffset { return TimeOffset(t.UnixMilli()) }

// Time returns the wall-clock position of the offset.
func (o TimeOffset) Time() time.Time { return time.UnixMilli(int64(o)) }

// offsetJSON is the persisted wire form of an Offset.
type offsetJSON struct {
	Kind  string `json:"kind"`
	Value int64  `json:"value,omitempty"`
}

const (
	offsetKindNone     = "none"
	offsetKindSequence = "sequence"
	offsetKindTime     = "time"
)

// MarshalOffset encodes an offset for storage, e.g. inside a snapshot record.
// A nil offset encodes the same as NoOffset.
func MarshalOffset(o Offset) ([]byte, error) {
	switch v := o.(type) {
	case nil, NoOffset:
		return json.Marshal(offsetJSON{Kind: offsetKindNone})
	case SequenceOffset:
		return json.Marshal(offsetJSON{Kind: offsetKindSequence, Value: int64(v)})
	case TimeOffset:
		return json.Marshal(offsetJSON{Kind: offsetKindTime, Value: int64(v)})
	default:
		return nil, fmt.Errorf("journal: unknown offset type %T", o)
	}
}

// UnmarshalOffset decodes an offset previously encoded with MarshalOffset.
// Empty input decodes to NoOffset.
func UnmarshalOffset(data []byte) (Offset, error) {
	if len(data) == 0 {
		return NoOffset{}, nil
	}
	var raw offsetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("journal: decode offset: %w", err)
	}
	switch raw.Kind {
	case offsetKindNone, "":
		return NoOffset{}, nil
	case offsetKindSequence:
		return SequenceOffset(raw.Value), nil
	case offsetKindTime:
		return TimeOffset(raw.Value), nil
	default:
		return nil, fmt.Errorf("journal: unknown offset kind %q", raw.Kind)
	}
}
