package player

import (
	"math"
	"testing"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
)

type recordingSink struct {
	vertical []float64
	impulses []mgl64.Vec2
	moved    mgl64.Vec3
}

func (s *recordingSink) ApplyVerticalImpulse(v float64)      { s.vertical = append(s.vertical, v) }
func (s *recordingSink) ApplyHorizontalImpulse(v mgl64.Vec2) { s.impulses = append(s.impulses, v) }
func (s *recordingSink) MoveBy(d mgl64.Vec3)                 { s.moved = s.moved.Add(d) }

func (s *recordingSink) lastVertical() float64 {
	if len(s.vertical) == 0 {
		return 0
	}
	return s.vertical[len(s.vertical)-1]
}

func runSchedule(f *forceSchedule, sink *recordingSink, ticks int) {
	for i := 0; i < ticks && f.running(); i++ {
		f.tick(forceEnv{
			dt:      0.01,
			vy:      sink.lastVertical(),
			gravity: config.Locomotion.EffectiveGravity(),
		}, sink)
	}
}

func TestDisplacementCurveTotal(t *testing.T) {
	config.Reset()
	punch, _ := catalogMove(t, "Punch")
	f := newForceSchedule(punch, mgl64.Vec2{0, 1})
	sink := &recordingSink{}

	runSchedule(f, sink, 1000)
	if f.running() {
		t.Fatal("displacement never finished")
	}
	want := 66 * config.Force.PunchScale
	if got := sink.moved.Z(); math.Abs(got-want) > 1e-3 {
		t.Errorf("plane y travel = %v, want %v", got, want)
	}
	if sink.moved.X() != 0 {
		t.Errorf("travel leaked off the facing axis: %v", sink.moved)
	}
	if sink.moved.Y() >= 0 {
		t.Error("displacement should hold the body down")
	}
}

func TestVerticalSamples(t *testing.T) {
	config.Reset()
	up, _ := catalogMove(t, "Uppercut")
	f := newForceSchedule(up, mgl64.Vec2{1, 0})
	sink := &recordingSink{}

	runSchedule(f, sink, 1)
	if len(sink.vertical) != 0 {
		t.Fatalf("wrote before the delay: %v", sink.vertical)
	}
	runSchedule(f, sink, 1)
	if got := sink.lastVertical(); got != up.Force.Samples[0] {
		t.Errorf("first sample = %v", got)
	}
	if !f.holdsVertical() {
		t.Error("running curve should hold vertical")
	}
	runSchedule(f, sink, 100)
	if f.running() {
		t.Error("samples never finished")
	}
}

func TestBlockedVerticalKeepsVelocity(t *testing.T) {
	config.Reset()
	up, _ := catalogMove(t, "Uppercut")
	f := newForceSchedule(up, mgl64.Vec2{1, 0})
	sink := &recordingSink{}
	for i := 0; i < 3; i++ {
		f.tick(forceEnv{dt: 0.01, vy: -3, blockVertical: true}, sink)
	}
	for _, v := range sink.vertical {
		if v != -3 {
			t.Fatalf("pending landing overwritten with %v", v)
		}
	}
}

func TestImpulseFiresOnce(t *testing.T) {
	config.Reset()
	m := &catalog.Move{
		Name:        "Dash",
		LaunchForce: 12,
		Force:       catalog.ForceSpec{Kind: catalog.ForceImpulse, Horizontal: 300},
	}
	f := newForceSchedule(m, mgl64.Vec2{0, 1})
	sink := &recordingSink{}
	runSchedule(f, sink, 50)

	if sink.vertical[0] != 12 {
		t.Errorf("launch = %v", sink.vertical[0])
	}
	if len(sink.impulses) != 1 || sink.impulses[0] != (mgl64.Vec2{0, 300 * config.Force.DashScale}) {
		t.Errorf("horizontal impulses = %v", sink.impulses)
	}
	if f.running() {
		t.Error("impulse still holding after gravity suspend")
	}
}

func TestDashLeavesVerticalAlone(t *testing.T) {
	config.Reset()
	kick, _ := catalogMove(t, "SpinKick")
	f := newForceSchedule(kick, mgl64.Vec2{1, 0})
	sink := &recordingSink{}
	runSchedule(f, sink, 10)

	if len(sink.vertical) != 0 {
		t.Errorf("dash wrote vertical velocity %v", sink.vertical)
	}
	if len(sink.impulses) != 1 || sink.impulses[0].X() <= 0 {
		t.Errorf("dash impulses = %v", sink.impulses)
	}
	if f.running() || f.holdsVertical() {
		t.Error("dash still running after it fired")
	}
}

func TestCancelStopsOutput(t *testing.T) {
	config.Reset()
	punch, _ := catalogMove(t, "Punch")
	f := newForceSchedule(punch, mgl64.Vec2{1, 0})
	sink := &recordingSink{}
	runSchedule(f, sink, 10)
	f.cancel()
	before := sink.moved
	f.tick(forceEnv{dt: 0.01}, sink)
	if sink.moved != before {
		t.Error("cancelled schedule kept moving")
	}

	var none *forceSchedule
	none.cancel()
	if none.running() {
		t.Error("nil schedule reports running")
	}
}
