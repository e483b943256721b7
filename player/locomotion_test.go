package player

import (
	"math"
	"testing"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestJumpWindup(t *testing.T) {
	r := newRig(t)
	r.input.jump = true
	r.run(1)
	if ph := r.c.Locomotion().Phase; ph != LocoPreJump {
		t.Fatalf("phase = %s, want pre_jump", ph)
	}
	r.run(12)
	if r.c.Locomotion().Phase != LocoPreJump || r.c.VerticalVelocity() != 0 {
		t.Fatalf("windup ended early: %s vy=%v", r.c.Locomotion().Phase, r.c.VerticalVelocity())
	}
	r.run(1)
	if r.c.Locomotion().Phase != LocoRising {
		t.Fatalf("phase = %s, want rising", r.c.Locomotion().Phase)
	}
	if v := r.c.VerticalVelocity(); v != config.Locomotion.JumpForce {
		t.Errorf("launch velocity = %v", v)
	}
	if !r.probe.params[config.ParamIsJumping] {
		t.Error("IsJumping not raised")
	}
}

func TestRunningJumpSkipsWindup(t *testing.T) {
	r := newRig(t)
	r.input.move = mgl64.Vec2{1, 0}
	r.run(30)
	if s := r.c.Locomotion().HorizontalSpeed; s != config.Locomotion.MoveSpeed {
		t.Fatalf("run speed = %v", s)
	}
	r.input.jump = true
	r.run(1)
	if v := r.c.VerticalVelocity(); v != config.Locomotion.RunningJumpForce {
		t.Errorf("running jump = %v, want %v", v, config.Locomotion.RunningJumpForce)
	}
}

func TestConsecutiveJumpSkipsWindup(t *testing.T) {
	r := newRig(t)
	r.input.jump = true
	r.run(14)
	r.ground.grounded = false
	r.run(40)
	if r.c.Locomotion().Phase != LocoFalling {
		t.Fatalf("phase = %s, want falling", r.c.Locomotion().Phase)
	}
	r.ground.grounded = true
	r.run(1)
	if l := r.c.Locomotion(); l.Phase != LocoGrounded || l.LastLanding != LandingNormal {
		t.Fatalf("landing: %s %s", l.Phase, l.LastLanding)
	}
	if r.c.Locomotion().MoveSpeed != config.Locomotion.LandedMoveSpeed {
		t.Error("landing should restore move speed")
	}

	r.input.jump = true
	r.run(1)
	if r.c.Locomotion().Phase != LocoRising || r.c.VerticalVelocity() != config.Locomotion.JumpForce {
		t.Errorf("second jump: %s vy=%v", r.c.Locomotion().Phase, r.c.VerticalVelocity())
	}
}

func TestClassifyLanding(t *testing.T) {
	cases := []struct {
		fall float64
		want LandingSeverity
	}{
		{0, LandingNormal},
		{0.59, LandingNormal},
		{0.6, LandingHighLand},
		{0.79, LandingHighLand},
		{0.8, LandingSplat},
		{2, LandingSplat},
	}
	for _, tc := range cases {
		if got := classifyLanding(tc.fall); got != tc.want {
			t.Errorf("classifyLanding(%v) = %s, want %s", tc.fall, got, tc.want)
		}
	}
}

func TestSplatWaitsForAnimation(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.run(90)
	r.ground.grounded = true
	r.run(1)

	l := r.c.Locomotion()
	if l.LastLanding != LandingSplat || l.Phase != LocoSplatLock {
		t.Fatalf("landing after 0.9s = %s/%s", l.LastLanding, l.Phase)
	}
	if !r.c.IsInControlLock() || !r.probe.params[config.ParamShouldSplat] {
		t.Fatal("splat did not lock control")
	}
	if res := r.c.TryStartAttack(catalog.Medium); res.Reason != ReasonControlLock {
		t.Errorf("attack during splat: %s", res.Reason)
	}

	r.probe.state, r.probe.progress = config.StateSplat, 0.5
	r.run(300)
	if !r.c.IsInControlLock() {
		t.Fatal("splat released on a timer")
	}

	r.probe.progress = 0.95
	r.run(1)
	if r.c.IsInControlLock() {
		t.Fatal("splat held after the animation finished")
	}
	if r.probe.params[config.ParamShouldSplat] {
		t.Error("ShouldSplat left raised")
	}
}

func TestHighLandLock(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.run(70)
	r.ground.grounded = true
	r.run(1)
	if r.c.Locomotion().Phase != LocoHighLandLock {
		t.Fatalf("phase = %s", r.c.Locomotion().Phase)
	}
	r.run(100)
	if !r.c.IsInControlLock() {
		t.Fatal("high land released early")
	}
	r.run(10)
	if r.c.IsInControlLock() {
		t.Fatal("high land still locked")
	}
	if !r.probe.params[config.ParamShouldHighLnd] {
		t.Error("ShouldHighLand should outlast the lock")
	}
	r.run(60)
	if r.probe.params[config.ParamShouldHighLnd] {
		t.Error("ShouldHighLand never cleared")
	}
}

func TestLockRestoresHeldProne(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.input.prone = true
	r.run(90)
	r.ground.grounded = true
	r.run(1)
	r.probe.state, r.probe.progress = config.StateSplat, 1
	r.run(20)
	if r.c.IsInControlLock() {
		t.Fatal("still locked")
	}
	if p := r.c.Locomotion().Prone; p == ProneStanding {
		t.Error("prone held through the splat was not restored")
	}
}

func TestSpeedCapDuringSpinKick(t *testing.T) {
	r := newRig(t)
	r.c.loco.MoveSpeed = 20
	if !r.c.TryStartAttack(catalog.Light).Started() {
		t.Fatal("spin kick rejected")
	}
	r.input.move = mgl64.Vec2{1, 0}
	r.run(50)
	if !r.c.IsInAttackState() {
		t.Fatal("spin kick ended")
	}
	if s := r.c.Locomotion().HorizontalSpeed; s != config.Locomotion.SpeedCaps[config.CapSpinKick] {
		t.Errorf("speed = %v, want cap", s)
	}
}

func TestReleaseGlides(t *testing.T) {
	r := newRig(t)
	r.input.move = mgl64.Vec2{1, 0}
	r.run(30)
	r.input.move = mgl64.Vec2{}

	x := r.mover.total.X()
	r.run(1)
	if r.mover.total.X() <= x {
		t.Error("releasing the stick stopped dead")
	}
	if s := r.c.Locomotion().HorizontalSpeed; s <= 0 || s >= config.Locomotion.MoveSpeed {
		t.Errorf("speed after release = %v", s)
	}
	r.run(30)
	if s := r.c.Locomotion().HorizontalSpeed; s != 0 {
		t.Errorf("speed never settled: %v", s)
	}
}

func TestProneAxis(t *testing.T) {
	r := newRig(t)
	r.input.prone = true
	r.run(1)
	if p := r.c.Locomotion().Prone; p != ProneEntering {
		t.Fatalf("prone = %s", p)
	}
	r.run(15)
	if p := r.c.Locomotion().Prone; p != ProneLying {
		t.Fatalf("prone = %s", p)
	}
	if !r.probe.params[config.ParamShouldProne] {
		t.Error("ShouldProne not mirrored")
	}

	r.input.prone = false
	r.run(1)
	if p := r.c.Locomotion().Prone; p != ProneExiting {
		t.Fatalf("prone = %s", p)
	}
	r.input.prone = true
	r.run(1)
	if p := r.c.Locomotion().Prone; p != ProneEntering {
		t.Errorf("re-press during stand-up: %s", p)
	}
	r.input.prone = false
	r.run(20)
	if p := r.c.Locomotion().Prone; p != ProneStanding {
		t.Errorf("prone = %s", p)
	}
}

func TestEarlyProneBlocksJump(t *testing.T) {
	r := newRig(t)
	r.probe.state, r.probe.progress = config.StateProneDown, 0.3
	r.input.jump = true
	r.run(1)
	if ph := r.c.Locomotion().Phase; ph != LocoGrounded {
		t.Errorf("jumped out of early prone: %s", ph)
	}
}

func TestPauseFreezesCore(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(10)
	before := r.c.Combat().ActiveTimer
	calls := r.mover.calls

	r.pause.paused = true
	r.run(50)
	if r.c.Combat().ActiveTimer != before || r.mover.calls != calls {
		t.Fatal("core advanced while paused")
	}
	r.pause.paused = false
	r.run(1)
	if r.c.Combat().ActiveTimer <= before {
		t.Error("core did not resume")
	}
}

func TestAttackRequestsRejectedWhilePaused(t *testing.T) {
	r := newRig(t)
	r.pause.paused = true
	r.run(1)
	if res := r.c.TryStartAttack(catalog.Medium); res.Started() {
		t.Fatal("attack started while paused")
	}
	if got := r.c.LastRejection(); got != ReasonControlLock {
		t.Errorf("rejection = %s", got)
	}
	if r.c.IsInAttackState() {
		t.Error("phase left Idle while paused")
	}

	r.pause.paused = false
	r.run(1)
	if res := r.c.TryStartAttack(catalog.Medium); !res.Started() {
		t.Errorf("attack after unpause rejected: %s", r.c.LastRejection())
	}
}

func TestUnpauseImmunitySuppressesFall(t *testing.T) {
	r := newRig(t)
	r.pause.paused = true
	r.run(1)
	r.pause.paused = false
	r.ground.grounded = false

	r.run(3)
	if ft := r.c.Locomotion().FallTimer; ft != 0 {
		t.Errorf("fall tracked during immunity: %v", ft)
	}
	r.run(20)
	if r.c.Locomotion().FallTimer <= 0 {
		t.Error("fall tracking never resumed")
	}
}

func TestRotateToward(t *testing.T) {
	got := rotateToward(mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, 0.1)
	if got.Y() <= 0 || got.X() >= 1 {
		t.Errorf("no turn: %v", got)
	}
	got = rotateToward(mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, 10)
	if math.Abs(got.X()) > 1e-9 || math.Abs(got.Y()-1) > 1e-9 {
		t.Errorf("full turn = %v", got)
	}
}
