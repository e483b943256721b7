package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionProne
	ActionLightAttack
	ActionMediumAttack
	ActionHeavyAttack
	ActionPause
	ActionNextOutfit
	ActionNextLoadout
	ActionToggleDebug
	ActionRespawn
	ActionCount // Must be last - used for array sizing
)

// TrackedAction identifies a button watched by the slip mash detector
type TrackedAction int

const (
	TrackProne TrackedAction = iota
	TrackLight
	TrackMedium
	TrackHeavy
	TrackJump
	TrackedActionCount
)

func (t TrackedAction) String() string {
	switch t {
	case TrackProne:
		return "prone"
	case TrackLight:
		return "light"
	case TrackMedium:
		return "medium"
	case TrackHeavy:
		return "heavy"
	case TrackJump:
		return "jump"
	}
	return "unknown"
}

// SpeedCapState names a row of the locomotion speed cap table
type SpeedCapState int

const (
	CapNone SpeedCapState = iota
	CapGroundPoundRecover
	CapSpinKick
	CapSpinKickFall
	CapSpinKickRecover
	CapUppercut
	CapGroundPoundFall
	CapHighFall
	CapFall
	CapProne
)
