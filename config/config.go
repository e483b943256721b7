package config

import "image/color"

// AttackConfig contains combat resolver tuning
type AttackConfig struct {
	Cooldown float64 // Seconds after a normal attack end before another may start

	// Active completion
	CompletionProgress float64 // Normalized progress that ends an Active phase early

	// Punch-off-ledge heuristic
	LedgeConfirmTime float64 // Seconds airborne before a ledge punch is cancelled

	// Special fall
	SpecialFallTimeout     float64 // Airborne seconds before a special fall is abandoned
	GroundPoundRampEvery   float64 // Seconds between ground pound force increments
	GroundPoundRampStep    float64
	GroundPoundSplatForce  float64 // Force at which a ground pound landing always splats
	GroundPoundSplatTime   float64 // Fall seconds at which a ground pound landing splats
	GroundPoundRecoverMinY float64 // Lowest vertical velocity kept on ground pound recovery
	SpinKickFallPush       float64 // Vertical velocity forced when a spin kick falls while rising
	SpecialFallGravityMult float64 // Gravity multiplier for ground pound falls

	// Uppercut-style vertical curves
	GravitySuspend float64 // Seconds gravity stays off at the start of a vertical curve
}

// LocomotionConfig contains movement, jump and landing tuning
type LocomotionConfig struct {
	// Horizontal
	MoveSpeed         float64 // Speed on spawn
	LandedMoveSpeed   float64 // Speed restored on every landing and after a slip
	Acceleration      float64
	Deceleration      float64
	AirControl        float64 // Multiplier on accel/decel while airborne
	InputDeadzone     float64
	ProneMultiplier   float64 // Speed multiplier while grounded with prone held
	SpecialFallFactor float64 // Target speed factor during non-spin-kick special falls
	RotateSpeed       float64 // Facing turn rate (per second)

	// Speed caps (Open Question kept as a table)
	SpeedCaps map[SpeedCapState]float64

	// Jump
	JumpForce          float64
	RunningJumpForce   float64
	RunningThreshold   float64 // Speed above which jumps skip the windup
	HighJumpMultiplier float64
	JumpDelayFrames    int     // Windup frames at the authoring frame rate
	AuthoringFPS       float64 // Frame rate the windup was authored at
	ConsecutiveWindow  float64 // Seconds after landing during which jumps skip the windup
	EarlyProneCutoff   float64 // ProneDown progress below which jumping is disabled

	// Gravity
	Gravity      float64
	GravityScale float64
	GroundStick  float64 // Vertical velocity held while grounded

	// Landing classification
	HighLandThreshold  float64
	SplatThreshold     float64
	HighLandLock       float64 // Seconds of control lock after a high landing
	HighLandParamHold  float64 // Further seconds before ShouldHighLand clears
	SplatGrace         float64 // Seconds before the splat animation is polled
	SplatDoneProgress  float64
	ProneUpDone        float64 // ProneUp progress that completes a prone exit
	ProneExitGrace     float64
	HighLandMoveCancel float64 // Input magnitude that cancels a pending high landing
	JustLandedWindow   float64

	// Idle flavour
	BlinkEvery     float64
	StretchAfter   float64
	StretchChance  float64
	IdleSpeedLimit float64
}

// SlipConfig contains slip-and-fall tuning
type SlipConfig struct {
	Thresholds      map[TrackedAction]int // Presses within Window that trigger a slip
	Window          float64
	StuckTime       float64 // Seconds in IdleToRun before a slip triggers
	Duration        float64 // Seconds of slip movement before recovery
	RecoverTimeout  float64 // Seconds a recovery may wait for its animation
	Speed           float64
	Cooldown        float64
	ParamPulse      float64 // Seconds the Slip param stays raised
	DirectionBlend  float64 // Weight of velocity direction vs facing
	VelocityMin     float64 // Speed above which velocity contributes to direction
	AirGravityMult  float64
	AirInitialPush  float64
	AirMaxFallSpeed float64
	SlideSink       float64 // Downward drift applied while sliding (per second)
}

// PauseConfig contains pause handling configuration
type PauseConfig struct {
	ImmunityTime float64 // Seconds after unpause during which fall detection is suppressed
	OverlayColor color.RGBA `yaml:"-"`
}

// ForceConfig contains scheduled force defaults
type ForceConfig struct {
	PunchScale    float64
	PunchHoldDown float64 // Downward velocity while a displacement curve runs
	DashScale     float64 // Converts a move's horizontal force into a dash speed
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	TickRate      int     // Simulation ticks per second
	PixelsPerUnit float64 // Scale between core units and screen pixels
}

// InputConfig contains input polling configuration
type InputConfig struct {
	AnalogDeadzone float64
}

// BodyConfig contains the player's collision box in pixels
type BodyConfig struct {
	Width  float64
	Height float64
}

// PersistenceConfig contains save data configuration
type PersistenceConfig struct {
	AppName   string
	OutfitKey string
	Outfits   []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogCombat   bool    // Log rejected attacks and desync heals
	LogRate     float64 // Diagnostic lines per second
	LogBurst    int
	ShowOverlay bool
}

// Global configuration instances
var C *Config
var Attack AttackConfig
var Locomotion LocomotionConfig
var Slip SlipConfig
var Pause PauseConfig
var Force ForceConfig
var Input InputConfig
var Body BodyConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Sand      = color.RGBA{R: 222, G: 196, B: 140, A: 255}
	Sea       = color.RGBA{R: 20, G: 70, B: 120, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tuning value to its default.
func Reset() {
	C = &Config{
		Width:         640,
		Height:        360,
		TickRate:      60,
		PixelsPerUnit: 16,
	}

	// Attack Config
	Attack = AttackConfig{
		Cooldown:           0.5,
		CompletionProgress: 0.9,

		LedgeConfirmTime: 0.15,

		SpecialFallTimeout:     5.0,
		GroundPoundRampEvery:   0.1,
		GroundPoundRampStep:    1.0,
		GroundPoundSplatForce:  50.0,
		GroundPoundSplatTime:   0.5,
		GroundPoundRecoverMinY: -20.0,
		SpinKickFallPush:       -1.0,
		SpecialFallGravityMult: 2.0,

		GravitySuspend: 0.1,
	}

	// Locomotion Config
	Locomotion = LocomotionConfig{
		MoveSpeed:         5.0,
		LandedMoveSpeed:   10.0,
		Acceleration:      25.0,
		Deceleration:      30.0,
		AirControl:        0.6,
		InputDeadzone:     0.1,
		ProneMultiplier:   0.4,
		SpecialFallFactor: 0.2,
		RotateSpeed:       10.0,

		SpeedCaps: map[SpeedCapState]float64{
			CapGroundPoundRecover: 3,
			CapSpinKick:           8,
			CapSpinKickFall:       8,
			CapSpinKickRecover:    5,
			CapUppercut:           6,
			CapGroundPoundFall:    8,
			CapHighFall:           4,
			CapFall:               8,
			CapProne:              4,
		},

		JumpForce:          20.0,
		RunningJumpForce:   23.0,
		RunningThreshold:   1.0,
		HighJumpMultiplier: 1.25,
		JumpDelayFrames:    3,
		AuthoringFPS:       24.0,
		ConsecutiveWindow:  0.4,
		EarlyProneCutoff:   0.5,

		Gravity:      -9.81,
		GravityScale: 7.0,
		GroundStick:  -2.0,

		HighLandThreshold:  0.6,
		SplatThreshold:     0.8,
		HighLandLock:       1.05,
		HighLandParamHold:  0.5,
		SplatGrace:         0.1,
		SplatDoneProgress:  0.95,
		ProneUpDone:        0.9,
		ProneExitGrace:     0.1,
		HighLandMoveCancel: 0.1,
		JustLandedWindow:   0.4,

		BlinkEvery:     2.0,
		StretchAfter:   10.0,
		StretchChance:  0.2,
		IdleSpeedLimit: 0.1,
	}

	// Slip Config
	Slip = SlipConfig{
		Thresholds: map[TrackedAction]int{
			TrackProne:  3,
			TrackLight:  5,
			TrackMedium: 5,
			TrackHeavy:  5,
			TrackJump:   4,
		},
		Window:          2.0,
		StuckTime:       0.5,
		Duration:        1.5,
		RecoverTimeout:  3.0,
		Speed:           3.0,
		Cooldown:        5.0,
		ParamPulse:      0.1,
		DirectionBlend:  0.3,
		VelocityMin:     0.1,
		AirGravityMult:  2.0,
		AirInitialPush:  -5.0,
		AirMaxFallSpeed: -30.0,
		SlideSink:       0.1,
	}

	Pause = PauseConfig{
		ImmunityTime: 0.05,
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 150},
	}

	Force = ForceConfig{
		PunchScale:    0.1,
		PunchHoldDown: 2.0,
		DashScale:     0.02,
	}

	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}

	Body = BodyConfig{
		Width:  14,
		Height: 28,
	}

	Persistence = PersistenceConfig{
		AppName:   "beachbomb",
		OutfitKey: "outfit",
		Outfits:   []string{"PJs", "Swimsuit", "Wetsuit", "Tuxedo"},
	}

	Debug = DebugConfig{
		LogCombat:   false,
		LogRate:     4,
		LogBurst:    4,
		ShowOverlay: true,
	}
}

// JumpDelay is the pre-jump windup in seconds.
func (l LocomotionConfig) JumpDelay() float64 {
	return float64(l.JumpDelayFrames) / l.AuthoringFPS
}

// EffectiveGravity is the scaled downward acceleration.
func (l LocomotionConfig) EffectiveGravity() float64 {
	return l.Gravity * l.GravityScale
}
