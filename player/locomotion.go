package player

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/metrics"
	"github.com/go-gl/mathgl/mgl64"
)

// LocomotionPhase is the jump/fall/landing step of the body.
type LocomotionPhase int

const (
	LocoGrounded LocomotionPhase = iota
	LocoPreJump
	LocoRising
	LocoFalling
	LocoHighLandLock
	LocoSplatLock
)

var locoPhaseNames = [...]string{"grounded", "pre_jump", "rising", "falling", "high_land_lock", "splat_lock"}

func (p LocomotionPhase) String() string {
	if p < 0 || int(p) >= len(locoPhaseNames) {
		return "unknown"
	}
	return locoPhaseNames[p]
}

// LandingSeverity classifies a landing by how long the fall lasted.
type LandingSeverity int

const (
	LandingNormal LandingSeverity = iota
	LandingHighLand
	LandingSplat
)

func (s LandingSeverity) String() string {
	switch s {
	case LandingHighLand:
		return "high_land"
	case LandingSplat:
		return "splat"
	}
	return "normal"
}

// classifyLanding maps a fall duration onto a landing severity.
func classifyLanding(fall float64) LandingSeverity {
	switch {
	case fall >= config.Locomotion.SplatThreshold:
		return LandingSplat
	case fall >= config.Locomotion.HighLandThreshold:
		return LandingHighLand
	}
	return LandingNormal
}

// LocomotionState is owned by the LocomotionDriver.
type LocomotionState struct {
	Grounded        bool
	HorizontalSpeed float64
	Phase           LocomotionPhase
	Prone           ProneAxis
	FallTimer       float64
	LastLandingTime float64
	LastJumpTime    float64
	LastLanding     LandingSeverity
	Facing          mgl64.Vec2
	MoveSpeed       float64
}

func defaultLocomotionState() LocomotionState {
	return LocomotionState{
		LastLandingTime: math.Inf(-1),
		LastJumpTime:    math.Inf(-1),
		Facing:          mgl64.Vec2{1, 0},
		MoveSpeed:       config.Locomotion.MoveSpeed,
		Grounded:        true,
	}
}

// locoRequests are raised by the other stages during a tick and applied
// when locomotion runs.
type locoRequests struct {
	hasLanding bool
	landing    LandingSeverity

	fall         bool
	clearJump    bool
	launchJump   bool
	proneSync    bool
	standUp      bool
	restoreSpeed bool

	hasImpulse bool
	impulse    mgl64.Vec2
}

// LocomotionDriver owns body kinematics, the jump sequence, landing
// classification and the prone axis. It is also the ForceSink attacks
// write through.
type LocomotionDriver struct {
	LocomotionState

	probe    AnimationStateProbe
	ctx      *tickContext
	vertical *verticalChannel
	rng      *rand.Rand
	attack   *AttackResolver
	slip     *SlipResolver

	req locoRequests

	preJumpTimer float64
	pendingJump  float64
	highJump     bool

	lockTimer      float64
	proneAtLock    bool
	highLandHold   float64
	justLandedLeft float64

	proneTimer float64

	lastDir      mgl64.Vec2
	horizontal   mgl64.Vec2
	displacement mgl64.Vec3

	blinkTimer float64
	idleTimer  float64
}

func newLocomotionDriver(probe AnimationStateProbe, v *verticalChannel, ctx *tickContext, rng *rand.Rand) *LocomotionDriver {
	return &LocomotionDriver{
		LocomotionState: defaultLocomotionState(),
		probe:           probe,
		ctx:             ctx,
		vertical:        v,
		rng:             rng,
		lastDir:         mgl64.Vec2{1, 0},
	}
}

// ApplyVerticalImpulse sets vertical velocity on behalf of an attack.
func (l *LocomotionDriver) ApplyVerticalImpulse(v float64) {
	l.vertical.set(AuthorityAttack, v)
}

// ApplyHorizontalImpulse replaces the smoothed horizontal velocity.
func (l *LocomotionDriver) ApplyHorizontalImpulse(v mgl64.Vec2) {
	l.req.hasImpulse = true
	l.req.impulse = v
}

// MoveBy queues a direct displacement for this tick.
func (l *LocomotionDriver) MoveBy(delta mgl64.Vec3) {
	l.displacement = l.displacement.Add(delta)
}

// InLandingLock reports a high-land or splat control lock.
func (l *LocomotionDriver) InLandingLock() bool {
	return l.Phase == LocoHighLandLock || l.Phase == LocoSplatLock
}

func (l *LocomotionDriver) requestLanding(s LandingSeverity) {
	l.req.hasLanding = true
	l.req.landing = s
}

func (l *LocomotionDriver) requestFall()      { l.req.fall = true }
func (l *LocomotionDriver) requestClearJump() { l.req.clearJump = true }

// requestRestoreSpeed is raised when a slip ends.
func (l *LocomotionDriver) requestRestoreSpeed() { l.req.restoreSpeed = true }

func (l *LocomotionDriver) onAttackBegin(m *catalog.Move) {
	if !m.RequiresProne && l.Prone != ProneStanding {
		l.req.standUp = true
	}
	if m.LaunchesPendingJump && l.Phase == LocoPreJump {
		l.req.launchJump = true
	}
}

func (l *LocomotionDriver) onAttackEnd(*catalog.Move) {
	l.req.proneSync = true
}

// stance picks the slot row attack input resolves against.
func (l *LocomotionDriver) stance() catalog.Stance {
	if !l.ctx.grounded {
		return catalog.Air
	}
	if l.proneIntent() {
		return catalog.Prone
	}
	return catalog.Ground
}

func (l *LocomotionDriver) proneIntent() bool {
	return l.ctx.frame.ProneHeld || l.Prone == ProneEntering || l.Prone == ProneLying
}

func (l *LocomotionDriver) jumpDisabled() bool {
	return l.probe.IsCurrentState(config.StateProneDown) &&
		l.probe.NormalizedProgress() < config.Locomotion.EarlyProneCutoff
}

// Tick runs after slip and attack. Vertical velocity is only written when
// no earlier stage claimed it.
func (l *LocomotionDriver) Tick() {
	t := l.ctx
	l.probe.SetParam(config.ParamShouldProne, t.frame.ProneHeld)
	l.Grounded = t.grounded
	l.horizontal = mgl64.Vec2{}

	ownsVertical := l.vertical.claim(AuthorityLocomotion)
	l.applyRequests(t)
	l.tickAirborne(t)
	l.tickLocks(t)

	if !l.attack.IsInAttackState() && !l.slip.Active() {
		l.handleProneInput(t)
	}
	l.tickProne(t)

	if ownsVertical && !l.slip.Active() {
		l.tickVertical(t)
	}
	l.tickHorizontal(t)
	l.updateAnimation(t)
	l.req = locoRequests{}
}

func (l *LocomotionDriver) applyRequests(t *tickContext) {
	r := l.req
	if r.clearJump {
		clearParams(l.probe, config.ParamIsJumping, config.ParamIsHighJumping)
		l.highJump = false
		switch {
		case l.Phase == LocoPreJump:
			l.Phase = LocoGrounded
		case l.Phase == LocoRising && !t.grounded:
			l.Phase = LocoFalling
		}
	}
	if r.fall && !t.grounded {
		l.Phase = LocoFalling
		l.probe.SetParam(config.ParamIsJumping, false)
		l.probe.SetParam(config.ParamIsFalling, true)
	}
	if r.standUp {
		l.Prone = ProneStanding
		l.proneTimer = 0
	}
	if r.proneSync && t.grounded && !l.InLandingLock() {
		if t.frame.ProneHeld {
			l.enterProne()
		} else {
			l.exitProne()
		}
	}
	if r.restoreSpeed {
		l.MoveSpeed = config.Locomotion.LandedMoveSpeed
		l.HorizontalSpeed = 0
	}
	if r.hasImpulse {
		l.HorizontalSpeed = r.impulse.Len()
		if l.HorizontalSpeed > 0 {
			l.lastDir = r.impulse.Normalize()
		}
	}
}

// tickAirborne tracks the rising/falling phases whoever owns vertical
// velocity, and detects landings.
func (l *LocomotionDriver) tickAirborne(t *tickContext) {
	vy := l.vertical.v
	if !t.grounded {
		switch l.Phase {
		case LocoGrounded, LocoPreJump:
			if vy > 0 {
				l.Phase = LocoRising
			} else {
				l.Phase = LocoFalling
				l.probe.SetParam(config.ParamIsFalling, true)
			}
			l.FallTimer = 0
		case LocoRising:
			if vy <= 0 {
				l.Phase = LocoFalling
				l.probe.SetParam(config.ParamIsHighJumping, false)
				l.probe.SetParam(config.ParamIsFalling, true)
				l.highJump = false
			}
		}
		if l.Phase == LocoFalling && !t.immune {
			l.FallTimer += t.dt
			if l.FallTimer >= config.Locomotion.HighLandThreshold {
				l.probe.SetParam(config.ParamIsHighFalling, true)
			}
		}
		return
	}
	if (l.Phase == LocoRising || l.Phase == LocoFalling) && vy <= 0 {
		l.land(t)
	}
}

func (l *LocomotionDriver) land(t *tickContext) {
	verdict := classifyLanding(l.FallTimer)
	if l.req.hasLanding {
		verdict = l.req.landing
	}
	l.MoveSpeed = config.Locomotion.LandedMoveSpeed
	l.LastLandingTime = t.now
	l.LastLanding = verdict
	l.FallTimer = 0
	l.highJump = false
	clearParams(l.probe, config.ParamIsJumping, config.ParamIsFalling,
		config.ParamIsHighFalling, config.ParamIsHighJumping)
	l.probe.SetParam(config.ParamJustLanded, true)
	l.justLandedLeft = config.Locomotion.JustLandedWindow

	held := t.frame.ProneHeld
	l.lockTimer = 0
	l.proneAtLock = held
	switch verdict {
	case LandingSplat:
		l.Phase = LocoSplatLock
		l.probe.SetParam(config.ParamShouldSplat, true)
	case LandingHighLand:
		l.Phase = LocoHighLandLock
		l.probe.SetParam(config.ParamShouldHighLnd, true)
	default:
		l.Phase = LocoGrounded
		if held && !l.attack.IsInAttackState() {
			l.enterProne()
		}
	}
	metrics.Landing(verdict.String())
	diagf("landed: %s", verdict)
	l.attack.notifyLanded(held)
}

func (l *LocomotionDriver) tickLocks(t *tickContext) {
	if l.highLandHold > 0 {
		l.highLandHold -= t.dt
		if l.highLandHold <= 0 {
			l.probe.SetParam(config.ParamShouldHighLnd, false)
		}
	}
	if !l.InLandingLock() {
		return
	}
	l.lockTimer += t.dt
	if !t.frame.ProneHeld {
		l.proneAtLock = false
	}

	switch l.Phase {
	case LocoSplatLock:
		if l.lockTimer < config.Locomotion.SplatGrace {
			return
		}
		// Wait for the landing animation rather than a fixed duration.
		p := l.probe.NormalizedProgress()
		inSplat := l.probe.IsCurrentState(config.StateSplat)
		if (inSplat && p >= config.Locomotion.SplatDoneProgress) || (!inSplat && p > 0) {
			l.probe.SetParam(config.ParamShouldSplat, false)
			l.releaseLock()
		}
	case LocoHighLandLock:
		if t.frame.Move.Len() > config.Locomotion.HighLandMoveCancel {
			l.probe.SetParam(config.ParamShouldHighLnd, false)
		}
		if l.lockTimer >= config.Locomotion.HighLandLock {
			l.highLandHold = config.Locomotion.HighLandParamHold
			l.releaseLock()
		}
	}
}

func (l *LocomotionDriver) releaseLock() {
	l.Phase = LocoGrounded
	l.lockTimer = 0
	if l.proneAtLock {
		l.enterProne()
	}
	l.proneAtLock = false
}

func (l *LocomotionDriver) tickVertical(t *tickContext) {
	vy := l.vertical.v
	g := config.Locomotion.EffectiveGravity()
	stick := config.Locomotion.GroundStick

	if l.req.launchJump && l.Phase == LocoPreJump {
		l.launch(t, l.pendingJump)
		return
	}

	switch {
	case l.attack.IsInAttackState():
		if t.grounded {
			if vy < 0 {
				vy = stick
			}
		} else {
			vy += g * t.dt
			if l.attack.IsInSpecialRecovery() && vy > stick {
				vy = stick
			}
		}
	case l.InLandingLock() || l.jumpDisabled():
		if t.grounded {
			vy = stick
		} else {
			vy += g * t.dt
		}
	default:
		switch l.Phase {
		case LocoPreJump:
			l.preJumpTimer += t.dt
			if l.preJumpTimer >= config.Locomotion.JumpDelay()-timeEpsilon {
				l.launch(t, l.pendingJump)
				return
			}
			vy = 0
		case LocoGrounded:
			vy = stick
			if t.frame.JumpPressed && t.grounded {
				if l.startJump(t) {
					return
				}
				vy = 0
			}
		default:
			vy += g * t.dt
		}
	}
	l.vertical.set(AuthorityLocomotion, vy)
}

// startJump begins a jump, returning true when it launched without a windup.
func (l *LocomotionDriver) startJump(t *tickContext) bool {
	cfg := config.Locomotion
	running := l.HorizontalSpeed > cfg.RunningThreshold
	force := cfg.JumpForce
	if running {
		force = cfg.RunningJumpForce
	}
	l.highJump = t.frame.ProneHeld && inAnyState(l.probe, config.StateProneIdle, config.StateCrawl, config.StateProneTo)
	if l.highJump {
		force *= cfg.HighJumpMultiplier
		l.probe.SetParam(config.ParamIsHighJumping, true)
	}
	l.Prone = ProneStanding
	l.probe.SetParam(config.ParamIsJumping, true)

	consecutive := t.now-l.LastLandingTime < cfg.ConsecutiveWindow
	if consecutive || running {
		l.launch(t, force)
		return true
	}
	l.Phase = LocoPreJump
	l.preJumpTimer = 0
	l.pendingJump = force
	return false
}

func (l *LocomotionDriver) launch(t *tickContext, force float64) {
	l.vertical.set(AuthorityLocomotion, force)
	l.Phase = LocoRising
	l.LastJumpTime = t.now
	l.FallTimer = 0
	l.preJumpTimer = 0
	l.pendingJump = 0
	l.probe.SetParam(config.ParamIsJumping, true)
}

func (l *LocomotionDriver) tickHorizontal(t *tickContext) {
	cfg := config.Locomotion
	in := t.frame.Move
	mag := in.Len()
	if mag < cfg.InputDeadzone {
		mag = 0
	}
	var dir mgl64.Vec2
	if mag > 0 {
		dir = in.Normalize()
		if mag > 1 {
			mag = 1
		}
	}

	target := 0.0
	halt := l.probe.IsCurrentState(config.StatePunch) || l.InLandingLock() || l.slip.Active()
	if !halt && mag > 0 {
		target = l.MoveSpeed * l.speedMultiplier() * mag
		if limit, ok := l.speedCap(); ok && target > limit {
			target = limit
		}
		l.lastDir = dir
	}

	rate := cfg.Deceleration
	if target > l.HorizontalSpeed {
		rate = cfg.Acceleration
	}
	if !t.grounded {
		rate *= cfg.AirControl
	}
	l.HorizontalSpeed = moveToward(l.HorizontalSpeed, target, rate*t.dt)
	l.horizontal = l.lastDir.Mul(l.HorizontalSpeed)

	if mag > 0 && !halt && !l.probe.IsCurrentState(config.StateUppercut) {
		l.Facing = rotateToward(l.Facing, dir, cfg.RotateSpeed*t.dt)
	}
}

func (l *LocomotionDriver) updateAnimation(t *tickContext) {
	cfg := config.Locomotion
	l.probe.SetParam(config.ParamGrounded, t.grounded)
	l.probe.SetFloat(config.ParamSpeed, l.HorizontalSpeed)

	if l.justLandedLeft > 0 {
		l.justLandedLeft -= t.dt
		if l.justLandedLeft <= 0 {
			l.probe.SetParam(config.ParamJustLanded, false)
		}
	}

	idle := t.grounded && l.HorizontalSpeed < cfg.IdleSpeedLimit &&
		!l.attack.IsInAttackState() && !l.slip.Active() && l.Phase == LocoGrounded
	l.probe.SetParam(config.ParamIsIdle, idle)

	blink := false
	l.blinkTimer += t.dt
	if l.blinkTimer >= cfg.BlinkEvery {
		l.blinkTimer = l.rng.Float64() * cfg.BlinkEvery * 0.5
		blink = true
	}
	l.probe.SetParam(config.ParamShouldBlink, blink)

	stretch := false
	if idle {
		l.idleTimer += t.dt
		if l.idleTimer >= cfg.StretchAfter {
			l.idleTimer = 0
			stretch = l.rng.Float64() < cfg.StretchChance
		}
	} else {
		l.idleTimer = 0
	}
	l.probe.SetParam(config.ParamShouldStretch, stretch)
}

// drain returns and clears the queued displacement.
func (l *LocomotionDriver) drain() mgl64.Vec3 {
	d := l.displacement
	l.displacement = mgl64.Vec3{}
	return d
}

func (l *LocomotionDriver) restart() {
	l.LocomotionState = defaultLocomotionState()
	l.req = locoRequests{}
	l.preJumpTimer, l.pendingJump, l.highJump = 0, 0, false
	l.lockTimer, l.proneAtLock, l.highLandHold, l.justLandedLeft = 0, false, 0, 0
	l.proneTimer = 0
	l.lastDir = mgl64.Vec2{1, 0}
	l.horizontal, l.displacement = mgl64.Vec2{}, mgl64.Vec3{}
	l.blinkTimer, l.idleTimer = 0, 0
}

func moveToward(cur, target, maxDelta float64) float64 {
	if math.Abs(target-cur) <= maxDelta {
		return target
	}
	if target > cur {
		return cur + maxDelta
	}
	return cur - maxDelta
}

// rotateToward turns unit vector from toward to by at most maxAngle radians.
func rotateToward(from, to mgl64.Vec2, maxAngle float64) mgl64.Vec2 {
	a := math.Atan2(from.Y(), from.X())
	b := math.Atan2(to.Y(), to.X())
	d := math.Remainder(b-a, 2*math.Pi)
	if math.Abs(d) > maxAngle {
		d = math.Copysign(maxAngle, d)
	}
	return mgl64.Vec2{math.Cos(a + d), math.Sin(a + d)}
}
