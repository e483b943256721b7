package player

import (
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/metrics"
)

// timeEpsilon absorbs float drift when accumulated dt is compared against a
// duration.
const timeEpsilon = 1e-6

// AttackPhase is the lifecycle step of the current attack.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseActive
	PhaseSpecialFall
	PhaseSpecialRecovery
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseSpecialFall:
		return "special_fall"
	case PhaseSpecialRecovery:
		return "special_recovery"
	}
	return "idle"
}

// CombatState is owned by the AttackResolver. Phase != PhaseIdle implies
// Current != nil.
type CombatState struct {
	Current       *catalog.Move
	Phase         AttackPhase
	Cooldown      float64
	ActiveTimer   float64
	FallTimer     float64
	RecoveryTimer float64

	UsedAirSpecialThisJump  bool
	PunchedOffLedgeRecently bool
}

// AttackResolver owns attack selection, sequencing, follow-ups and cooldown.
type AttackResolver struct {
	CombatState

	probe    AnimationStateProbe
	slots    *catalog.Slots
	vertical *verticalChannel
	ctx      *tickContext
	loco     *LocomotionDriver
	slip     *SlipResolver

	force *forceSchedule

	// punch-off-ledge
	ledgeTiming bool
	ledgeTimer  float64

	// special fall
	rampTimer    float64
	slamForce    float64
	fallClock    float64
	splatPending bool
	highPending  bool

	forcedPlay bool
	phaseDone  string

	// written by locomotion, consumed at the start of the next tick
	landed        bool
	landedReset   bool
	inputBlocked  bool
	lastRejection RejectReason
}

func newAttackResolver(probe AnimationStateProbe, slots *catalog.Slots, v *verticalChannel, ctx *tickContext) *AttackResolver {
	return &AttackResolver{probe: probe, slots: slots, vertical: v, ctx: ctx}
}

func (a *AttackResolver) IsInAttackState() bool      { return a.Phase != PhaseIdle }
func (a *AttackResolver) IsInSpecialFall() bool      { return a.Phase == PhaseSpecialFall }
func (a *AttackResolver) IsInSpecialRecovery() bool  { return a.Phase == PhaseSpecialRecovery }
func (a *AttackResolver) LastRejection() RejectReason { return a.lastRejection }

// NotifyAnimationPhaseComplete records an animation-event completion. It only
// corroborates the timer and probe checks.
func (a *AttackResolver) NotifyAnimationPhaseComplete(name string) {
	a.phaseDone = name
}

// notifyLanded is called by locomotion on a landing edge.
func (a *AttackResolver) notifyLanded(proneHeld bool) {
	a.landed = true
	a.landedReset = a.landedReset || proneHeld
}

// Tick advances the attack state machine.
func (a *AttackResolver) Tick() {
	t := a.ctx
	if a.landed {
		a.PunchedOffLedgeRecently = false
		a.UsedAirSpecialThisJump = false
		if a.landedReset {
			a.Cooldown = 0
		}
		a.landed, a.landedReset = false, false
	}

	a.inputBlocked = a.heal()

	if a.Cooldown > 0 {
		a.Cooldown -= t.dt
		if a.Cooldown < timeEpsilon {
			a.Cooldown = 0
		}
	}

	switch a.Phase {
	case PhaseActive:
		a.tickActive(t)
	case PhaseSpecialFall:
		a.tickSpecialFall(t)
	case PhaseSpecialRecovery:
		a.tickSpecialRecovery(t)
	default:
		if !a.inputBlocked {
			a.handleIdleInput(t)
		}
	}
	a.phaseDone = ""
}

// heal resets attack params that the probe contradicts. It reports whether
// attack input should be ignored this tick.
func (a *AttackResolver) heal() bool {
	for _, p := range config.AttackParams {
		if a.owns(p) {
			continue
		}
		if a.probe.Param(p) && !a.probe.IsCurrentState(p) {
			a.probe.SetParam(p, false)
			metrics.DesyncHealed(p)
			diagf("desync: %s set without its state, cleared", p)
		}
	}
	if a.Phase != PhaseIdle {
		return false
	}

	blocked := false
	if inAnyState(a.probe, config.StateSpinKick, config.StateSKFall) ||
		anyParam(a.probe, config.StateSpinKick, config.StateSKFall) {
		clearParams(a.probe, config.StateSpinKick, config.StateSKFall, config.StateSKRecover)
		blocked = true
	}
	if a.probe.IsCurrentState(config.StatePunch) && a.probe.Param(config.StatePunch) {
		a.probe.SetParam(config.StatePunch, false)
		metrics.DesyncHealed(config.StatePunch)
	}
	return blocked
}

func (a *AttackResolver) owns(param string) bool {
	if a.Current == nil {
		return false
	}
	switch a.Phase {
	case PhaseActive:
		return param == a.Current.Name
	case PhaseSpecialFall:
		return param == a.Current.SpecialFallAnim
	case PhaseSpecialRecovery:
		return param == a.Current.SpecialRecoveryAnim
	}
	return false
}

// controlLocked also covers the tick a slip ends in, since the slip still
// owns vertical velocity until the next tick.
func (a *AttackResolver) controlLocked() bool {
	return a.slip.Active() || a.loco.InLandingLock() || a.vertical.owner == AuthoritySlip
}

func (a *AttackResolver) handleIdleInput(t *tickContext) {
	f := t.frame
	if f.AttackPressed[catalog.Medium] && !t.grounded && a.tryAirSpecial() {
		return
	}
	if a.Cooldown > 0 {
		return
	}
	for c := catalog.Category(0); c < catalog.CategoryCount; c++ {
		if !f.AttackPressed[c] {
			continue
		}
		if a.TryStartAttack(c).Started() {
			return
		}
	}
}

// tryAirSpecial starts the air medium move when it is a once-per-jump
// special. It ignores cooldown.
func (a *AttackResolver) tryAirSpecial() bool {
	m := a.slots.Get(catalog.Medium, catalog.Air)
	if m == nil || !m.OncePerJump || a.UsedAirSpecialThisJump || a.controlLocked() {
		return false
	}
	if m.BlockedAfterLedgePunch && a.PunchedOffLedgeRecently {
		return false
	}
	saved := a.Cooldown
	a.Cooldown = 0
	if a.TryStartAttack(catalog.Medium).Started() {
		return true
	}
	a.Cooldown = saved
	return false
}

// TryStartAttack starts the move bound to category for the current stance.
// Mid-Active requests are treated as follow-ups.
func (a *AttackResolver) TryStartAttack(c catalog.Category) Result {
	switch a.Phase {
	case PhaseActive:
		return a.TryFollowup(c)
	case PhaseSpecialFall, PhaseSpecialRecovery:
		return a.reject(c, ReasonBusy)
	}
	if a.controlLocked() {
		return a.reject(c, ReasonControlLock)
	}
	if a.Cooldown > 0 {
		return a.reject(c, ReasonCooldown)
	}
	m := a.slots.Get(c, a.loco.stance())
	if m == nil {
		return a.reject(c, ReasonEmptySlot)
	}
	if r := a.checkStart(m); r != ReasonNone {
		return a.reject(c, r)
	}
	a.begin(m)
	metrics.AttackStarted(m.Name)
	return Result{Move: m}
}

// TryFollowup cancels the Active move into the move bound to category when
// the current move lists it and its readiness predicate holds.
func (a *AttackResolver) TryFollowup(c catalog.Category) Result {
	if a.Phase != PhaseActive || a.Current == nil {
		return a.reject(c, ReasonNotActive)
	}
	if a.controlLocked() {
		return a.reject(c, ReasonControlLock)
	}
	st := a.loco.stance()
	if st == catalog.Air && !a.Current.CanAirAttackAfter {
		return a.reject(c, ReasonNotAllowed)
	}
	cand := a.slots.Get(c, st)
	if cand == nil {
		return a.reject(c, ReasonEmptySlot)
	}
	f, ok := a.Current.Followup(cand.Name)
	if !ok {
		return a.reject(c, ReasonNotAllowed)
	}
	ready, err := f.Predicate().Eval(catalog.ReadyContext{
		Progress: a.probe.NormalizedProgress(),
		Grounded: a.ctx.grounded,
		Elapsed:  a.ActiveTimer,
		InState:  a.probe.IsCurrentState,
	})
	if err != nil {
		diagf("followup %s -> %s: %v", a.Current.Name, cand.Name, err)
		return a.reject(c, ReasonNotReady)
	}
	if !ready {
		return a.reject(c, ReasonNotReady)
	}
	if r := a.checkStart(cand); r != ReasonNone {
		return a.reject(c, r)
	}

	old := a.Current
	a.cancelForce()
	a.probe.SetParam(old.Name, false)
	a.loco.onAttackEnd(old)
	a.begin(cand)

	metrics.Followup(old.Name, cand.Name)
	metrics.AttackStarted(cand.Name)
	return Result{Move: cand}
}

func (a *AttackResolver) checkStart(m *catalog.Move) RejectReason {
	grounded := a.ctx.grounded
	switch {
	case m.RequiresGrounded && !grounded,
		m.RequiresAirborne && grounded,
		m.RequiresProne && !a.loco.proneIntent():
		return ReasonPrerequisite
	case m.OncePerJump && a.UsedAirSpecialThisJump:
		return ReasonInvalidState
	case m.BlockedAfterLedgePunch && a.PunchedOffLedgeRecently:
		return ReasonLedgeRecovery
	}
	if inAnyState(a.probe, m.BlockedStates...) || anyParam(a.probe, m.BlockedParams...) {
		return ReasonInvalidState
	}
	return ReasonNone
}

func (a *AttackResolver) reject(c catalog.Category, r RejectReason) Result {
	a.lastRejection = r
	metrics.AttackRejected(r.String())
	diagf("%s attack rejected: %s", c, r)
	return rejected(r)
}

func (a *AttackResolver) begin(m *catalog.Move) {
	a.Current = m
	a.Phase = PhaseActive
	a.ActiveTimer, a.FallTimer, a.RecoveryTimer = 0, 0, 0
	a.forcedPlay = false
	a.ledgeTiming, a.ledgeTimer = false, 0
	a.splatPending, a.highPending = false, false

	if m.SpecialFallAnim != "" {
		a.probe.SetParam(m.SpecialFallAnim, false)
	}
	if m.SpecialRecoveryAnim != "" {
		a.probe.SetParam(m.SpecialRecoveryAnim, false)
	}
	a.probe.SetParam(m.Name, true)
	if m.OncePerJump {
		a.UsedAirSpecialThisJump = true
	}

	a.loco.onAttackBegin(m)
	a.force = newForceSchedule(m, a.loco.Facing)
	if m.Slams() && !a.ctx.grounded {
		a.loco.ApplyVerticalImpulse(-m.DownwardForce)
	}
}

func (a *AttackResolver) cancelForce() {
	a.force.cancel()
	a.force = nil
}

func (a *AttackResolver) tickForce(t *tickContext) {
	if !a.force.running() {
		return
	}
	a.force.tick(forceEnv{
		dt:            t.dt,
		vy:            a.vertical.v,
		gravity:       config.Locomotion.EffectiveGravity(),
		blockVertical: anyParam(a.probe, config.ParamShouldSplat, config.ParamShouldHighLnd),
	}, a.loco)
}

func (a *AttackResolver) tickActive(t *tickContext) {
	for c := catalog.Category(0); c < catalog.CategoryCount; c++ {
		if t.frame.AttackPressed[c] && a.TryFollowup(c).Started() {
			return
		}
	}

	m := a.Current
	a.ActiveTimer += t.dt

	if m.ForcePlayAfter > 0 && !a.forcedPlay && a.ActiveTimer >= m.ForcePlayAfter && !a.probe.IsCurrentState(m.Name) {
		a.probe.Play(m.Name, 0)
		a.forcedPlay = true
	}

	a.tickForce(t)

	if m.LedgeWalkOff && !t.immune && a.checkLedge(t) {
		return
	}

	byTime := a.ActiveTimer >= m.Duration-timeEpsilon
	byState := a.probe.IsCurrentState(m.Name) && a.probe.NormalizedProgress() >= config.Attack.CompletionProgress
	byEvent := a.phaseDone == m.Name
	if byTime || byState || byEvent {
		a.completeActive(t)
	}
}

// checkLedge flags a grounded move that left the ground and ends it once the
// player has been airborne long enough to have walked off an edge.
func (a *AttackResolver) checkLedge(t *tickContext) bool {
	if t.grounded {
		a.ledgeTiming, a.ledgeTimer = false, 0
		return false
	}
	a.PunchedOffLedgeRecently = true
	if !a.ledgeTiming {
		a.ledgeTiming, a.ledgeTimer = true, 0
		return false
	}
	a.ledgeTimer += t.dt
	if a.ledgeTimer <= config.Attack.LedgeConfirmTime {
		return false
	}
	diagf("%s walked off a ledge", a.Current.Name)
	a.loco.requestFall()
	a.finish()
	return true
}

func (a *AttackResolver) completeActive(t *tickContext) {
	m := a.Current
	a.probe.SetParam(m.Name, false)
	a.cancelForce()
	if !t.grounded && m.HasSpecialFall {
		a.enterSpecialFall()
		return
	}
	a.finish()
}

func (a *AttackResolver) enterSpecialFall() {
	m := a.Current
	a.Phase = PhaseSpecialFall
	a.FallTimer, a.rampTimer = 0, 0
	a.splatPending, a.highPending = false, false
	if m.SpecialFallAnim != "" {
		a.probe.SetParam(m.SpecialFallAnim, true)
	}
	a.probe.SetParam(config.ParamIsJumping, false)
	a.loco.requestClearJump()

	if m.Slams() {
		a.slamForce = m.DownwardForce
		a.loco.ApplyVerticalImpulse(-a.slamForce)
		return
	}
	a.fallClock = a.loco.FallTimer
	if a.vertical.v > 0 {
		a.loco.ApplyVerticalImpulse(config.Attack.SpinKickFallPush)
	}
}

func (a *AttackResolver) tickSpecialFall(t *tickContext) {
	m := a.Current
	a.FallTimer += t.dt
	g := config.Locomotion.EffectiveGravity()

	if m.Slams() {
		vy := a.vertical.v + g*config.Attack.SpecialFallGravityMult*t.dt
		a.rampTimer += t.dt
		if a.rampTimer >= config.Attack.GroundPoundRampEvery-timeEpsilon {
			a.rampTimer = 0
			a.slamForce += config.Attack.GroundPoundRampStep
			vy = -a.slamForce
		}
		if !t.grounded {
			a.loco.ApplyVerticalImpulse(vy)
		}
		if a.FallTimer >= config.Attack.GroundPoundSplatTime {
			a.splatPending = true
		}
	} else {
		if !t.grounded {
			a.loco.ApplyVerticalImpulse(a.vertical.v + g*t.dt)
		}
		a.fallClock += t.dt
		switch {
		case a.fallClock >= config.Locomotion.SplatThreshold:
			a.splatPending = true
			a.probe.SetParam(config.ParamIsHighFalling, true)
		case a.fallClock >= config.Locomotion.HighLandThreshold:
			a.highPending = true
		}
	}

	if t.grounded {
		a.landSpecialFall()
		return
	}
	timeout := config.Attack.SpecialFallTimeout
	if m.SpecialFallDuration > 0 {
		timeout = m.SpecialFallDuration
	}
	if a.FallTimer > timeout {
		diagf("%s special fall timed out", m.Name)
		a.loco.requestFall()
		a.finish()
	}
}

func (a *AttackResolver) landSpecialFall() {
	m := a.Current
	verdict := LandingNormal
	switch {
	case m.Slams() && (a.splatPending || a.FallTimer >= config.Attack.GroundPoundSplatTime ||
		a.slamForce >= config.Attack.GroundPoundSplatForce):
		verdict = LandingSplat
	case !m.Slams() && a.splatPending:
		verdict = LandingSplat
	case !m.Slams() && a.highPending:
		verdict = LandingHighLand
	}
	a.loco.requestLanding(verdict)

	if m.SpecialFallAnim != "" {
		a.probe.SetParam(m.SpecialFallAnim, false)
	}
	if verdict != LandingNormal || !m.HasSpecialLanding {
		a.finish()
		return
	}

	a.Phase = PhaseSpecialRecovery
	a.RecoveryTimer = 0
	if m.SpecialRecoveryAnim != "" {
		a.probe.SetParam(m.SpecialRecoveryAnim, true)
	}
	if m.Slams() && a.vertical.v < config.Attack.GroundPoundRecoverMinY {
		a.loco.ApplyVerticalImpulse(config.Attack.GroundPoundRecoverMinY)
	}
}

func (a *AttackResolver) tickSpecialRecovery(t *tickContext) {
	m := a.Current
	a.RecoveryTimer += t.dt
	if a.RecoveryTimer >= m.SpecialRecoveryDuration-timeEpsilon || (m.SpecialRecoveryAnim != "" && a.phaseDone == m.SpecialRecoveryAnim) {
		a.finish()
	}
}

// finish ends the current attack normally and starts the cooldown.
func (a *AttackResolver) finish() {
	if m := a.Current; m != nil {
		a.probe.SetParam(m.Name, false)
		if m.SpecialFallAnim != "" {
			a.probe.SetParam(m.SpecialFallAnim, false)
		}
		if m.SpecialRecoveryAnim != "" {
			a.probe.SetParam(m.SpecialRecoveryAnim, false)
		}
		a.loco.onAttackEnd(m)
	}
	a.reset()
	a.Cooldown = config.Attack.Cooldown
}

// ForceEnd tears down any attack without starting a cooldown. Calling it
// again is a no-op.
func (a *AttackResolver) ForceEnd() {
	clearParams(a.probe, config.AttackParams...)
	if a.Current != nil {
		a.loco.onAttackEnd(a.Current)
	}
	a.reset()
}

func (a *AttackResolver) reset() {
	a.cancelForce()
	a.Current = nil
	a.Phase = PhaseIdle
	a.ActiveTimer, a.FallTimer, a.RecoveryTimer = 0, 0, 0
	a.ledgeTiming, a.ledgeTimer = false, 0
	a.rampTimer, a.slamForce, a.fallClock = 0, 0, 0
	a.splatPending, a.highPending = false, false
	a.forcedPlay = false
}

// ForcePending reports whether a scheduled force is still in flight.
func (a *AttackResolver) ForcePending() bool {
	return a.force.running()
}

func (a *AttackResolver) restart() {
	a.reset()
	a.CombatState = CombatState{}
	a.landed, a.landedReset = false, false
	a.phaseDone = ""
	a.lastRejection = ReasonNone
}
