package player

import (
	"context"

	"github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/metrics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/looplab/fsm"
)

// Slip lifecycle states.
const (
	SlipReady      = "ready"
	SlipSlipping   = "slipping"
	SlipRecovering = "recovering"
	SlipCooldown   = "cooldown"
)

const (
	evSlip    = "slip"
	evRecover = "recover"
	evFinish  = "finish"
	evRearm   = "rearm"
)

// mashTracker counts presses of one action inside a sliding window.
type mashTracker struct {
	count   int
	window  float64
	running bool
}

// SlipState is owned by the SlipResolver.
type SlipState struct {
	Direction mgl64.Vec2
	Cooldown  float64
	Timer     float64
	Trackers  [config.TrackedActionCount]mashTracker
}

// SlipResolver detects button mashing and stuck run-up animations and forces
// a slip that preempts attacks and locomotion.
type SlipResolver struct {
	SlipState

	machine *fsm.FSM
	probe   AnimationStateProbe
	ctx     *tickContext
	vert    *verticalChannel
	attack  *AttackResolver
	loco    *LocomotionDriver

	stuckTimer   float64
	pulse        float64
	recoverTimer float64
	sawRecover   bool
	wasAttacking bool

	horizontal mgl64.Vec2
	sink       float64
}

func newSlipResolver(probe AnimationStateProbe, v *verticalChannel, ctx *tickContext) *SlipResolver {
	s := &SlipResolver{probe: probe, ctx: ctx, vert: v}
	s.machine = fsm.NewFSM(
		SlipReady,
		fsm.Events{
			{Name: evSlip, Src: []string{SlipReady}, Dst: SlipSlipping},
			{Name: evRecover, Src: []string{SlipSlipping}, Dst: SlipRecovering},
			{Name: evFinish, Src: []string{SlipRecovering}, Dst: SlipCooldown},
			{Name: evRearm, Src: []string{SlipCooldown}, Dst: SlipReady},
		},
		fsm.Callbacks{
			"enter_" + SlipCooldown: func(_ context.Context, _ *fsm.Event) {
				s.Cooldown = config.Slip.Cooldown
			},
			"enter_" + SlipRecovering: func(_ context.Context, _ *fsm.Event) {
				s.recoverTimer = 0
				s.sawRecover = false
			},
		},
	)
	return s
}

// State is the lifecycle state name.
func (s *SlipResolver) State() string { return s.machine.Current() }

// Active reports whether the slip owns movement.
func (s *SlipResolver) Active() bool {
	return s.machine.Is(SlipSlipping) || s.machine.Is(SlipRecovering)
}

func (s *SlipResolver) Recovering() bool { return s.machine.Is(SlipRecovering) }

func (s *SlipResolver) event(name string) bool {
	if err := s.machine.Event(context.Background(), name); err != nil {
		diagf("slip %s from %s: %v", name, s.machine.Current(), err)
		return false
	}
	return true
}

// Tick runs first in the controller tick.
func (s *SlipResolver) Tick() {
	t := s.ctx
	s.horizontal, s.sink = mgl64.Vec2{}, 0

	attacking := s.attack.IsInAttackState()
	if attacking && !s.wasAttacking {
		s.resetTrackers()
	}
	s.wasAttacking = attacking

	if s.pulse > 0 {
		s.pulse -= t.dt
		if s.pulse <= 0 {
			s.probe.SetParam(config.ParamSlip, false)
		}
	}

	switch s.machine.Current() {
	case SlipReady:
		if s.stuck(t) {
			s.trigger("stuck")
			break
		}
		if !s.suspended() {
			if a, ok := s.countPresses(t); ok {
				s.trigger("mash_" + a.String())
				break
			}
		}
		s.ageTrackers(t.dt)
	case SlipCooldown:
		s.Cooldown -= t.dt
		if s.Cooldown <= 0 {
			s.Cooldown = 0
			s.event(evRearm)
		}
	}

	if s.Active() {
		s.drive(t)
	}
}

func (s *SlipResolver) stuck(t *tickContext) bool {
	if !s.probe.IsCurrentState(config.StateIdleToRun) {
		s.stuckTimer = 0
		return false
	}
	s.stuckTimer += t.dt
	return s.stuckTimer >= config.Slip.StuckTime
}

// suspended reports states in which mashing is expected and not counted.
func (s *SlipResolver) suspended() bool {
	return s.loco.InLandingLock() ||
		inAnyState(s.probe, config.StateGPFall, config.StateGPRecover, config.StateSKFall, config.StateUppercut)
}

func (s *SlipResolver) countPresses(t *tickContext) (config.TrackedAction, bool) {
	for a := config.TrackedAction(0); a < config.TrackedActionCount; a++ {
		if !t.frame.Pressed(a) {
			continue
		}
		tr := &s.Trackers[a]
		tr.count++
		if !tr.running {
			tr.running, tr.window = true, 0
		}
		if limit, ok := config.Slip.Thresholds[a]; ok && limit > 0 && tr.count >= limit {
			return a, true
		}
	}
	return 0, false
}

func (s *SlipResolver) ageTrackers(dt float64) {
	for i := range s.Trackers {
		tr := &s.Trackers[i]
		if !tr.running {
			continue
		}
		tr.window += dt
		if tr.window >= config.Slip.Window {
			*tr = mashTracker{}
		}
	}
}

func (s *SlipResolver) resetTrackers() {
	s.Trackers = [config.TrackedActionCount]mashTracker{}
}

func (s *SlipResolver) trigger(reason string) {
	if !s.event(evSlip) {
		return
	}
	s.attack.cancelForce()
	if s.attack.IsInAttackState() {
		s.attack.ForceEnd()
	}
	clearParams(s.probe, config.ParamIsJumping, config.ParamIsFalling,
		config.ParamIsHighFalling, config.ParamIsHighJumping)
	clearParams(s.probe, config.AttackParams...)
	s.loco.requestClearJump()

	s.Direction = s.direction()
	s.Timer = 0
	s.stuckTimer = 0
	s.probe.SetParam(config.ParamSlip, true)
	s.pulse = config.Slip.ParamPulse
	s.probe.Play(config.StateSlip, 0)
	s.resetTrackers()

	metrics.Slip(reason)
	diagf("slip triggered by %s", reason)
}

// direction blends facing with the current travel direction.
func (s *SlipResolver) direction() mgl64.Vec2 {
	facing := s.loco.Facing
	vel := s.loco.horizontal
	if vel.Len() <= config.Slip.VelocityMin {
		return facing
	}
	b := config.Slip.DirectionBlend
	d := facing.Mul(1 - b).Add(vel.Normalize().Mul(b))
	if d.Len() == 0 {
		return facing
	}
	return d.Normalize()
}

func (s *SlipResolver) drive(t *tickContext) {
	switch s.machine.Current() {
	case SlipSlipping:
		s.Timer += t.dt
		s.horizontal = s.Direction.Mul(config.Slip.Speed)
		if t.grounded {
			s.sink = config.Slip.SlideSink
		}
		if s.probe.IsCurrentState(config.StateSlipRecover) || s.Timer >= config.Slip.Duration {
			s.event(evRecover)
		}
	case SlipRecovering:
		s.recoverTimer += t.dt
		in := s.probe.IsCurrentState(config.StateSlipRecover)
		if in {
			s.sawRecover = true
		}
		done := in && s.probe.NormalizedProgress() >= 1
		if done || (s.sawRecover && !in) || s.recoverTimer >= config.Slip.RecoverTimeout {
			s.end()
		}
	}
	s.driveVertical(t)
}

func (s *SlipResolver) driveVertical(t *tickContext) {
	vy := s.vert.v
	if t.grounded {
		vy = config.Locomotion.GroundStick
	} else {
		if vy > config.Slip.AirInitialPush {
			vy = config.Slip.AirInitialPush
		}
		vy += config.Locomotion.EffectiveGravity() * config.Slip.AirGravityMult * t.dt
		if vy < config.Slip.AirMaxFallSpeed {
			vy = config.Slip.AirMaxFallSpeed
		}
	}
	s.vert.set(AuthoritySlip, vy)
}

func (s *SlipResolver) end() {
	if !s.event(evFinish) {
		return
	}
	s.probe.SetParam(config.ParamSlip, false)
	s.pulse = 0
	s.loco.requestRestoreSpeed()
	diagf("slip recovered")
}

func (s *SlipResolver) restart() {
	s.machine.SetState(SlipReady)
	s.SlipState = SlipState{}
	s.stuckTimer, s.pulse, s.recoverTimer = 0, 0, 0
	s.sawRecover, s.wasAttacking = false, false
	s.horizontal, s.sink = mgl64.Vec2{}, 0
}
