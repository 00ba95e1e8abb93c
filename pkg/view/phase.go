package view

// Phase is a view's lifecycle state. Phases only move forward:
// WaitingForSnapshot → Recovering → Live, each transition at most once per
// instance.
type Phase int32

const (
	// PhaseWaitingForSnapshot covers startup until the snapshot load
	// resolves (present, absent, failed, or timed out).
	PhaseWaitingForSnapshot Phase = iota
	// PhaseRecovering covers the bounded replay of historical events.
	PhaseRecovering
	// PhaseLive is steady state: tailing new events and answering
	// application messages.
	PhaseLive
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForSnapshot:
		return "waiting_for_snapshot"
	case PhaseRecovering:
		return "recovering"
	case PhaseLive:
		return "live"
	default:
		return "unknown"
	}
}
