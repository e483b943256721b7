package player

import (
	"math/rand/v2"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Deps are the host collaborators of one controller. Pause and Rand may be
// nil.
type Deps struct {
	Probe  AnimationStateProbe
	Input  InputSource
	Ground GroundProbe
	Pause  PauseSignal
	Mover  Mover
	Rand   *rand.Rand
}

// Controller advances the slip, attack and locomotion stages of one player
// in that order, once per tick.
type Controller struct {
	deps  Deps
	slots *catalog.Slots

	ctx      tickContext
	vertical verticalChannel
	sampler  sampler

	slip   *SlipResolver
	attack *AttackResolver
	loco   *LocomotionDriver

	paused   bool
	immunity float64
}

func NewController(d Deps, slots *catalog.Slots) *Controller {
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(1, 2))
	}
	c := &Controller{deps: d, slots: slots}
	c.slip = newSlipResolver(d.Probe, &c.vertical, &c.ctx)
	c.attack = newAttackResolver(d.Probe, slots, &c.vertical, &c.ctx)
	c.loco = newLocomotionDriver(d.Probe, &c.vertical, &c.ctx, d.Rand)

	c.slip.attack, c.slip.loco = c.attack, c.loco
	c.attack.slip, c.attack.loco = c.slip, c.loco
	c.loco.attack, c.loco.slip = c.attack, c.slip

	c.ctx.grounded = d.Ground.IsGrounded()
	return c
}

// Tick advances the core by dt seconds. Nothing advances while paused.
func (c *Controller) Tick(dt float64) {
	if c.isPaused() {
		c.paused = true
		return
	}
	if c.paused {
		c.paused = false
		// Physics may report a stale ground contact on the first step back.
		c.immunity = config.Pause.ImmunityTime + dt
	}

	c.ctx.dt = dt
	c.ctx.now += dt
	c.ctx.grounded = c.deps.Ground.IsGrounded()
	c.ctx.frame = c.sampler.sample(c.deps.Input)
	c.ctx.immune = c.immunity > 0
	c.vertical.begin()

	c.slip.Tick()
	c.attack.Tick()
	c.loco.Tick()

	if c.immunity > 0 {
		c.immunity -= dt
	}
	c.move(dt)
}

func (c *Controller) move(dt float64) {
	h := c.loco.horizontal
	up := c.vertical.v * dt
	if c.slip.Active() {
		h = c.slip.horizontal
		up -= c.slip.sink * dt
	}
	delta := mgl64.Vec3{h.X() * dt, up, h.Y() * dt}.Add(c.loco.drain())
	c.deps.Mover.MoveBy(delta)
}

// external runs a call that arrives between ticks against fresh ground and
// prone readings.
func (c *Controller) external(fn func()) {
	c.ctx.grounded = c.deps.Ground.IsGrounded()
	c.ctx.frame.ProneHeld = c.deps.Input.ProneHeld()
	prev := c.vertical.owner
	c.vertical.begin()
	fn()
	if c.vertical.owner == AuthorityNone {
		c.vertical.owner = prev
	}
}

// TryStartAttack requests the move bound to category for the current
// stance.
func (c *Controller) TryStartAttack(cat catalog.Category) Result {
	if c.isPaused() {
		return c.attack.reject(cat, ReasonControlLock)
	}
	var r Result
	c.external(func() { r = c.attack.TryStartAttack(cat) })
	return r
}

// TryFollowup requests a cancel of the active move into category's move.
func (c *Controller) TryFollowup(cat catalog.Category) Result {
	if c.isPaused() {
		return c.attack.reject(cat, ReasonControlLock)
	}
	var r Result
	c.external(func() { r = c.attack.TryFollowup(cat) })
	return r
}

func (c *Controller) isPaused() bool {
	return c.deps.Pause != nil && c.deps.Pause.IsPaused()
}

func (c *Controller) ForceEnd() { c.attack.ForceEnd() }

func (c *Controller) NotifyAnimationPhaseComplete(name string) {
	c.attack.NotifyAnimationPhaseComplete(name)
}

func (c *Controller) SwapSlot(cat catalog.Category, st catalog.Stance, m *catalog.Move) error {
	return c.slots.SwapSlot(cat, st, m)
}

func (c *Controller) ApplyLoadout(index int) error {
	return c.slots.ApplyLoadout(index)
}

func (c *Controller) Slots() *catalog.Slots { return c.slots }

func (c *Controller) IsInAttackState() bool     { return c.attack.IsInAttackState() }
func (c *Controller) IsInSpecialFall() bool     { return c.attack.IsInSpecialFall() }
func (c *Controller) IsInSpecialRecovery() bool { return c.attack.IsInSpecialRecovery() }

// IsInControlLock reports a slip or a landing lock.
func (c *Controller) IsInControlLock() bool {
	return c.slip.Active() || c.loco.InLandingLock()
}

// Authority is the stage that owned vertical velocity on the last tick.
func (c *Controller) Authority() Authority      { return c.vertical.owner }
func (c *Controller) DroppedVerticalWrites() int { return c.vertical.dropped }
func (c *Controller) VerticalVelocity() float64  { return c.vertical.v }

func (c *Controller) Combat() CombatState         { return c.attack.CombatState }
func (c *Controller) Locomotion() LocomotionState { return c.loco.LocomotionState }
func (c *Controller) SlipState() string           { return c.slip.State() }
func (c *Controller) ForcePending() bool          { return c.attack.ForcePending() }
func (c *Controller) LastRejection() RejectReason { return c.attack.LastRejection() }

// Reset restores spawn state, as on respawn or scene re-entry.
func (c *Controller) Reset() {
	c.attack.ForceEnd()
	c.attack.restart()
	c.loco.restart()
	c.slip.restart()
	c.vertical = verticalChannel{}
	c.sampler = sampler{}
	c.ctx = tickContext{grounded: c.deps.Ground.IsGrounded()}
	c.paused, c.immunity = false, 0
}
