package player

import "github.com/automoto/beachbomb/catalog"

// RejectReason explains why an attack request did not start a move.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonControlLock
	ReasonBusy
	ReasonCooldown
	ReasonLedgeRecovery
	ReasonEmptySlot
	ReasonPrerequisite
	ReasonInvalidState
	ReasonNotAllowed
	ReasonNotReady
	ReasonNotActive
)

var reasonNames = [...]string{
	"none", "control_lock", "busy", "cooldown", "ledge_recovery", "empty_slot",
	"prerequisite", "invalid_state", "not_allowed", "not_ready", "not_active",
}

func (r RejectReason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}

// Result of an attack request. A rejection is a normal outcome.
type Result struct {
	Move   *catalog.Move
	Reason RejectReason
}

func (r Result) Started() bool {
	return r.Move != nil && r.Reason == ReasonNone
}

func rejected(r RejectReason) Result {
	return Result{Reason: r}
}
