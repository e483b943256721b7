package player

import (
	"testing"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
)

func TestPunchThenCooldown(t *testing.T) {
	r := newRig(t)

	res := r.c.TryStartAttack(catalog.Medium)
	if !res.Started() || res.Move.Name != "Punch" {
		t.Fatalf("start = %+v", res)
	}
	if !r.probe.params["Punch"] {
		t.Error("Punch param not raised")
	}

	r.run(145)
	if !r.c.IsInAttackState() {
		t.Fatal("punch ended before its duration")
	}
	r.run(1)
	if r.c.IsInAttackState() {
		t.Fatalf("punch still %s after 1.46s", r.c.Combat().Phase)
	}
	if r.probe.params["Punch"] {
		t.Error("Punch param left raised")
	}

	for _, c := range []catalog.Category{catalog.Light, catalog.Medium} {
		if res := r.c.TryStartAttack(c); res.Reason != ReasonCooldown {
			t.Errorf("%s right after punch: %s", c, res.Reason)
		}
	}
	r.run(49)
	if res := r.c.TryStartAttack(catalog.Medium); res.Reason != ReasonCooldown {
		t.Errorf("0.49s into cooldown: %s", res.Reason)
	}
	r.run(1)
	if res := r.c.TryStartAttack(catalog.Medium); !res.Started() {
		t.Errorf("after cooldown: %s", res.Reason)
	}
}

func TestFollowupCommitmentWindow(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(20)
	if r.mover.total.X() <= 0 {
		t.Fatalf("punch displacement not applied: %v", r.mover.total)
	}

	r.probe.state, r.probe.progress = "Punch", 0.4
	if res := r.c.TryFollowup(catalog.Light); res.Reason != ReasonNotReady {
		t.Fatalf("followup at 40%%: %s", res.Reason)
	}
	if r.c.Combat().Current.Name != "Punch" {
		t.Fatal("rejected followup replaced the move")
	}

	r.probe.progress = 0.5
	res := r.c.TryFollowup(catalog.Light)
	if !res.Started() || res.Move.Name != "SpinKick" {
		t.Fatalf("followup at 50%%: %+v", res)
	}
	if f := r.c.attack.force; f.running() && f.spec.Kind == catalog.ForceDisplacement {
		t.Error("punch force still scheduled after cancel")
	}
	if r.probe.params["Punch"] || !r.probe.params["SpinKick"] {
		t.Errorf("params after cancel: %v", r.probe.params)
	}

	// Without the spin kick dash any travel would be the punch curve.
	config.Force.DashScale = 0
	x := r.mover.total.X()
	r.run(10)
	if got := r.mover.total.X(); got != x {
		t.Errorf("residual displacement after cancel: %v -> %v", x, got)
	}
}

func TestFollowupNotAllowed(t *testing.T) {
	r := newRig(t)
	if res := r.c.TryFollowup(catalog.Light); res.Reason != ReasonNotActive {
		t.Errorf("idle followup: %s", res.Reason)
	}
	r.c.TryStartAttack(catalog.Light)
	r.probe.state, r.probe.progress = "SpinKick", 0.6
	if res := r.c.TryFollowup(catalog.Medium); res.Reason != ReasonNotAllowed {
		t.Errorf("SpinKick -> Punch: %s", res.Reason)
	}
}

func TestAirFollowupNeedsAirCancel(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(5)
	r.ground.grounded = false
	r.run(1)

	r.probe.state, r.probe.progress = "Punch", 0.6
	if res := r.c.TryFollowup(catalog.Light); res.Reason != ReasonNotAllowed {
		t.Errorf("punch -> spin kick off the ground: %s", res.Reason)
	}
	if r.c.Combat().Current.Name != "Punch" {
		t.Error("rejected air followup replaced the punch")
	}
}

func TestSpinKickDashes(t *testing.T) {
	r := newRig(t)
	if !r.c.TryStartAttack(catalog.Light).Started() {
		t.Fatal("spin kick rejected")
	}
	r.run(1)
	if s := r.c.Locomotion().HorizontalSpeed; s <= 0 {
		t.Fatalf("spin kick from rest has speed %v", s)
	}
	if r.mover.total.X() <= 0 {
		t.Errorf("dash did not move along the facing: %v", r.mover.total)
	}
	if r.c.Authority() == AuthorityAttack {
		t.Error("a pure dash took vertical authority")
	}
}

func TestSpecialFallDurationAbandonsFall(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.run(1)
	res := r.c.TryStartAttack(catalog.Light)
	if !res.Started() || res.Move.Name != "SpinKick" {
		t.Fatalf("air light = %+v", res)
	}
	r.run(110)
	if !r.c.IsInSpecialFall() {
		t.Fatalf("phase = %s, want special fall", r.c.Combat().Phase)
	}
	r.run(60)
	if r.c.IsInAttackState() {
		t.Fatalf("special fall outlived %vs: phase %s", res.Move.SpecialFallDuration, r.c.Combat().Phase)
	}
}

func TestUppercutIntoGroundPound(t *testing.T) {
	r := newRig(t)
	r.input.prone = true

	res := r.c.TryStartAttack(catalog.Medium)
	if !res.Started() || res.Move.Name != "Uppercut" {
		t.Fatalf("prone medium = %+v", res)
	}
	r.run(5)
	if r.probe.plays("Uppercut") != 1 {
		t.Error("uppercut state was not forced")
	}
	if v := r.c.VerticalVelocity(); v <= 0 {
		t.Fatalf("uppercut vertical = %v, want upward", v)
	}

	r.ground.grounded = false
	r.run(1)
	res = r.c.TryStartAttack(catalog.Medium)
	if !res.Started() || res.Move.Name != "GroundPound" {
		t.Fatalf("air medium during uppercut = %+v", res)
	}
	if v := r.c.VerticalVelocity(); v != -40 {
		t.Errorf("vertical after ground pound = %v, want -40", v)
	}
	if r.c.Authority() != AuthorityAttack {
		t.Errorf("authority = %s", r.c.Authority())
	}

	r.run(25)
	if !r.c.IsInSpecialFall() {
		t.Fatalf("phase = %s, want special fall", r.c.Combat().Phase)
	}
	if v := r.c.VerticalVelocity(); v > -40 {
		t.Errorf("ground pound fall slowed to %v", v)
	}
	if !r.c.Combat().UsedAirSpecialThisJump {
		t.Error("air special not marked used")
	}
}

func TestGroundPoundLandingRecovers(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.run(5)

	res := r.c.TryStartAttack(catalog.Medium)
	if !res.Started() || res.Move.Name != "GroundPound" {
		t.Fatalf("air medium = %+v", res)
	}
	r.run(25)
	if !r.c.IsInSpecialFall() {
		t.Fatalf("phase = %s", r.c.Combat().Phase)
	}
	r.ground.grounded = true
	r.run(1)
	if !r.c.IsInSpecialRecovery() {
		t.Fatalf("landing after 0.05s of fall: phase %s", r.c.Combat().Phase)
	}
	if !r.probe.params["GPRecover"] || r.probe.params["GPFall"] {
		t.Errorf("params = %v", r.probe.params)
	}
	r.run(61)
	if r.c.IsInAttackState() {
		t.Fatal("recovery did not end")
	}
	if r.c.Combat().Cooldown <= 0 {
		t.Error("recovery end should start the cooldown")
	}
	if r.c.Combat().UsedAirSpecialThisJump {
		t.Error("landing should re-arm the air special")
	}
}

func TestAirSpecialOncePerJump(t *testing.T) {
	r := newRig(t)
	r.ground.grounded = false
	r.run(1)
	if !r.c.TryStartAttack(catalog.Medium).Started() {
		t.Fatal("first ground pound rejected")
	}
	r.c.ForceEnd()
	if res := r.c.TryStartAttack(catalog.Medium); res.Reason != ReasonInvalidState {
		t.Errorf("second ground pound in one jump: %s", res.Reason)
	}
}

func TestDesyncSelfHeal(t *testing.T) {
	r := newRig(t)
	r.probe.params["SpinKick"] = true
	r.probe.params["GPFall"] = true

	r.run(1)
	if r.probe.params["SpinKick"] || r.probe.params["GPFall"] {
		t.Errorf("params not healed: %v", r.probe.params)
	}
	if r.c.Combat().Phase != PhaseIdle {
		t.Errorf("heal changed phase to %s", r.c.Combat().Phase)
	}

	// A param whose state really is playing is left alone.
	r.probe.state = "Uppercut"
	r.probe.params["Uppercut"] = true
	r.run(1)
	if !r.probe.params["Uppercut"] {
		t.Error("corroborated param was cleared")
	}
}

func TestForceEndIdempotent(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(20)

	r.c.ForceEnd()
	once := r.c.Combat()
	r.c.ForceEnd()
	twice := r.c.Combat()

	if once != twice {
		t.Errorf("second ForceEnd changed state: %+v vs %+v", once, twice)
	}
	if once.Phase != PhaseIdle || once.Current != nil {
		t.Errorf("state after ForceEnd: %+v", once)
	}
	if r.c.ForcePending() {
		t.Error("force still pending")
	}
	for _, p := range config.AttackParams {
		if r.probe.params[p] {
			t.Errorf("%s left raised", p)
		}
	}
}

func TestRejectionReasons(t *testing.T) {
	r := newRig(t)
	if res := r.c.TryStartAttack(catalog.Heavy); res.Reason != ReasonEmptySlot {
		t.Errorf("heavy: %s", res.Reason)
	}

	r.ground.grounded = false
	r.run(1)
	punch, _ := catalogMove(t, "Punch")
	if err := r.c.SwapSlot(catalog.Medium, catalog.Air, punch); err != nil {
		t.Fatal(err)
	}
	if res := r.c.TryStartAttack(catalog.Medium); res.Reason != ReasonPrerequisite {
		t.Errorf("grounded move in the air: %s", res.Reason)
	}

	r.ground.grounded = true
	r.probe.state = "ProneIdle"
	r.run(1)
	if res := r.c.TryStartAttack(catalog.Light); res.Reason != ReasonInvalidState {
		t.Errorf("spin kick while prone animation plays: %s", res.Reason)
	}
}

func TestPunchOffLedge(t *testing.T) {
	r := newRig(t)
	r.c.TryStartAttack(catalog.Medium)
	r.run(5)

	r.ground.grounded = false
	r.run(1)
	if !r.c.Combat().PunchedOffLedgeRecently {
		t.Fatal("ledge not flagged on first airborne tick")
	}
	if !r.c.IsInAttackState() {
		t.Fatal("punch cancelled before confirmation")
	}
	r.run(20)
	if r.c.IsInAttackState() {
		t.Fatal("punch kept running off a ledge")
	}

	// The air special normally ignores cooldown but not a ledge punch.
	r.input.attack[catalog.Medium] = true
	r.run(1)
	if r.c.IsInAttackState() {
		t.Errorf("%s started after a ledge punch", r.c.Combat().Current.Name)
	}
}

func catalogMove(t *testing.T, name string) (*catalog.Move, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Load("")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := c.Move(name)
	if !ok {
		t.Fatalf("no move %s", name)
	}
	return m, c
}
