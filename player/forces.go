package player

import (
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// forceEnv is what a schedule needs from the resolver each tick.
type forceEnv struct {
	dt            float64
	vy            float64 // current vertical velocity
	gravity       float64
	blockVertical bool // a splat or high landing is pending
}

// forceSchedule plays one move's force curve. It is owned by the attack
// resolver and emits nothing once canceled or finished.
type forceSchedule struct {
	spec    catalog.ForceSpec
	launch  float64
	facing  mgl64.Vec2
	elapsed float64
	active  bool

	// displacement
	seq     *gween.Sequence
	lastPos float64
	started bool

	// vertical samples
	next     int
	interval float64

	// impulse
	fired bool
}

func newForceSchedule(m *catalog.Move, facing mgl64.Vec2) *forceSchedule {
	f := &forceSchedule{
		spec:   m.Force,
		launch: m.LaunchForce,
		facing: facing,
		active: m.Force.Kind != catalog.ForceNone,
	}
	switch m.Force.Kind {
	case catalog.ForceDisplacement:
		f.seq = keyframeSequence(m.Force.Keyframes, m.Force.Duration)
		f.lastPos = m.Force.Keyframes[0].Value
	case catalog.ForceVerticalSamples:
		f.interval = m.Force.Duration / float64(len(m.Force.Samples))
	}
	return f
}

// keyframeSequence maps authored frames linearly onto duration seconds.
func keyframeSequence(keys []catalog.Keyframe, duration float64) *gween.Sequence {
	span := keys[len(keys)-1].Frame - keys[0].Frame
	seq := gween.NewSequence()
	for i := 0; i+1 < len(keys); i++ {
		d := (keys[i+1].Frame - keys[i].Frame) / span * duration
		seq.Add(gween.New(float32(keys[i].Value), float32(keys[i+1].Value), float32(d), ease.Linear))
	}
	return seq
}

func (f *forceSchedule) cancel() {
	if f != nil {
		f.active = false
	}
}

func (f *forceSchedule) running() bool {
	return f != nil && f.active
}

// holdsVertical reports whether the curve owns vertical velocity this tick.
func (f *forceSchedule) holdsVertical() bool {
	if !f.running() || f.elapsed < f.spec.Delay {
		return false
	}
	switch f.spec.Kind {
	case catalog.ForceVerticalSamples:
		return true
	case catalog.ForceImpulse:
		return f.launch > 0
	}
	return false
}

func (f *forceSchedule) tick(env forceEnv, sink ForceSink) {
	if !f.running() {
		return
	}
	prev := f.elapsed
	f.elapsed += env.dt
	if f.elapsed < f.spec.Delay {
		return
	}
	// Only the part of dt past the delay counts on the first live tick.
	step := env.dt
	if prev < f.spec.Delay {
		step = f.elapsed - f.spec.Delay
	}

	switch f.spec.Kind {
	case catalog.ForceDisplacement:
		f.tickDisplacement(env, step, sink)
	case catalog.ForceVerticalSamples:
		f.tickSamples(env, sink)
	case catalog.ForceImpulse:
		f.tickImpulse(env, sink)
	}
}

func (f *forceSchedule) tickDisplacement(env forceEnv, step float64, sink ForceSink) {
	pos32, _, done := f.seq.Update(float32(step))
	pos := float64(pos32)
	delta := (pos - f.lastPos) * config.Force.PunchScale
	f.lastPos = pos
	plane := f.facing.Mul(delta)
	sink.MoveBy(mgl64.Vec3{plane.X(), -config.Force.PunchHoldDown * env.dt, plane.Y()})
	if done {
		f.active = false
	}
}

func (f *forceSchedule) tickSamples(env forceEnv, sink ForceSink) {
	live := f.elapsed - f.spec.Delay
	vy := env.vy
	wrote := false
	for f.next < len(f.spec.Samples) && live >= float64(f.next)*f.interval-timeEpsilon {
		if !env.blockVertical {
			vy = f.spec.Samples[f.next]
			wrote = true
		}
		f.next++
	}
	if !wrote && live >= config.Attack.GravitySuspend {
		vy += env.gravity * env.dt
	}
	sink.ApplyVerticalImpulse(vy)
	if f.next >= len(f.spec.Samples) {
		f.active = false
	}
}

func (f *forceSchedule) tickImpulse(env forceEnv, sink ForceSink) {
	if !f.fired {
		f.fired = true
		if f.spec.Horizontal > 0 {
			sink.ApplyHorizontalImpulse(f.facing.Mul(f.spec.Horizontal * config.Force.DashScale))
		}
		if f.launch <= 0 {
			// A pure dash leaves vertical velocity to its current owner.
			f.active = false
			return
		}
		if !env.blockVertical {
			sink.ApplyVerticalImpulse(f.launch)
		}
		return
	}
	// Hold the launch velocity while gravity is suspended.
	sink.ApplyVerticalImpulse(env.vy)
	if f.elapsed-f.spec.Delay >= config.Attack.GravitySuspend {
		f.active = false
	}
}
