package player

import (
	"testing"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
)

func TestMashTriggersOnce(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 4; i++ {
		r.press(catalog.Heavy)
	}
	if s := r.c.SlipState(); s != SlipReady {
		t.Fatalf("slipped after 4 presses: %s", s)
	}
	if n := r.c.slip.Trackers[config.TrackHeavy].count; n != 4 {
		t.Fatalf("heavy count = %d", n)
	}

	r.press(catalog.Heavy)
	if s := r.c.SlipState(); s != SlipSlipping {
		t.Fatalf("5th press: %s", s)
	}
	for a, tr := range r.c.slip.Trackers {
		if tr.count != 0 || tr.running {
			t.Errorf("tracker %s not reset: %+v", config.TrackedAction(a), tr)
		}
	}

	for i := 0; i < 5; i++ {
		r.press(catalog.Heavy)
	}
	if n := r.probe.plays(config.StateSlip); n != 1 {
		t.Errorf("slip played %d times", n)
	}
}

func TestMashWindowExpires(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 4; i++ {
		r.press(catalog.Heavy)
	}
	r.run(210)
	r.press(catalog.Heavy)
	if s := r.c.SlipState(); s != SlipReady {
		t.Errorf("presses outside the window slipped: %s", s)
	}
}

func TestStuckRunUpPreemptsAttack(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(5)

	r.probe.state = config.StateIdleToRun
	r.run(40)
	if s := r.c.SlipState(); s != SlipReady {
		t.Fatalf("slipped before the stuck threshold: %s", s)
	}
	r.run(20)
	if s := r.c.SlipState(); s != SlipSlipping {
		t.Fatalf("stuck run-up did not slip: %s", s)
	}
	if r.c.IsInAttackState() || r.c.ForcePending() {
		t.Error("slip left the punch running")
	}
	if r.probe.params["Punch"] {
		t.Error("Punch param left raised")
	}
	if r.c.Authority() != AuthoritySlip {
		t.Errorf("authority = %s", r.c.Authority())
	}
	if res := r.c.TryStartAttack(catalog.Medium); res.Reason != ReasonControlLock {
		t.Errorf("attack during slip: %s", res.Reason)
	}
}

func TestSlipRecoveryAndCooldown(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 5; i++ {
		r.press(catalog.Heavy)
	}
	if !r.c.IsInControlLock() {
		t.Fatal("slip did not lock control")
	}
	if v := r.c.VerticalVelocity(); v != config.Locomotion.GroundStick {
		t.Errorf("grounded slip vertical = %v", v)
	}

	r.probe.state, r.probe.progress = config.StateSlipRecover, 0.2
	r.run(1)
	if s := r.c.SlipState(); s != SlipRecovering {
		t.Fatalf("state = %s", s)
	}
	r.run(10)
	if s := r.c.SlipState(); s != SlipRecovering {
		t.Fatalf("recovery ended before the animation: %s", s)
	}

	r.probe.progress = 1
	r.run(1)
	if s := r.c.SlipState(); s != SlipCooldown {
		t.Fatalf("state = %s", s)
	}
	if r.probe.params[config.ParamSlip] {
		t.Error("Slip param left raised")
	}
	if got := r.c.Locomotion().MoveSpeed; got != config.Locomotion.LandedMoveSpeed {
		t.Errorf("move speed = %v", got)
	}

	r.run(510)
	if s := r.c.SlipState(); s != SlipReady {
		t.Errorf("cooldown never re-armed: %s", s)
	}
}

func TestAirborneSlipFallsFast(t *testing.T) {
	r := newRig(t)
	for i := 0; i < 5; i++ {
		r.press(catalog.Heavy)
	}
	r.ground.grounded = false
	r.run(1)
	if v := r.c.VerticalVelocity(); v > config.Slip.AirInitialPush {
		t.Errorf("airborne slip vertical = %v", v)
	}
	r.run(100)
	if v := r.c.VerticalVelocity(); v != config.Slip.AirMaxFallSpeed {
		t.Errorf("fall speed = %v, want cap", v)
	}
}
