package config

// Animation state names reported by the animation probe.
const (
	StateIdle        = "Idle"
	StateIdleToRun   = "IdleToRun"
	StateRun         = "Run"
	StateWalk        = "Walk"
	StateJump        = "Jump"
	StateFall        = "Fall"
	StateHighLand    = "HighLand"
	StateSplat       = "Splat"
	StateProneDown   = "ProneDown"
	StateProneTo     = "ProneTo"
	StateProneIdle   = "ProneIdle"
	StateCrawl       = "Crawl"
	StateProneUp     = "ProneUp"
	StateSlip        = "Slip"
	StateSlipRecover = "SlipRecover"

	StateSpinKick    = "SpinKick"
	StateSKFall      = "SKFall"
	StateSKRecover   = "SKRecover"
	StatePunch       = "Punch"
	StateUppercut    = "Uppercut"
	StateGroundPound = "GroundPound"
	StateGPFall      = "GPFall"
	StateGPRecover   = "GPRecover"
)

// Animation parameter names written by the core.
const (
	ParamGrounded      = "Grounded"
	ParamSpeed         = "Speed"
	ParamJustLanded    = "JustLanded"
	ParamIsIdle        = "IsIdle"
	ParamIsJumping     = "IsJumping"
	ParamIsFalling     = "IsFalling"
	ParamIsHighFalling = "IsHighFalling"
	ParamIsHighJumping = "IsHighJumping"
	ParamShouldProne   = "ShouldProne"
	ParamShouldHighLnd = "ShouldHighLand"
	ParamShouldSplat   = "ShouldSplat"
	ParamShouldBlink   = "ShouldBlink"
	ParamShouldStretch = "ShouldStretch"
	ParamSlip          = "Slip"
)

// AttackParams are the boolean parameters owned by attacks. Every one is
// cleared by a forced attack end.
var AttackParams = []string{
	StateSpinKick,
	StateSKFall,
	StateSKRecover,
	StatePunch,
	StateUppercut,
	StateGroundPound,
	StateGPFall,
	StateGPRecover,
}

// NormalStates are locomotion states in which no attack animation can be
// legitimately playing.
var NormalStates = []string{StateIdle, StateIdleToRun, StateRun, StateWalk}

// ProneStates are the prone-axis animation states.
var ProneStates = []string{StateProneDown, StateProneIdle, StateProneTo, StateCrawl, StateProneUp}
