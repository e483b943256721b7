package player

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeProbe struct {
	state    string
	progress float64
	params   map[string]bool
	floats   map[string]float64
	played   []string
}

func newFakeProbe() *fakeProbe {
	return &fakeProbe{params: map[string]bool{}, floats: map[string]float64{}}
}

func (p *fakeProbe) IsCurrentState(name string) bool  { return p.state == name }
func (p *fakeProbe) NormalizedProgress() float64      { return p.progress }
func (p *fakeProbe) Param(name string) bool           { return p.params[name] }
func (p *fakeProbe) SetParam(name string, v bool)     { p.params[name] = v }
func (p *fakeProbe) SetFloat(name string, v float64)  { p.floats[name] = v }
func (p *fakeProbe) Play(name string, start float64) {
	p.state, p.progress = name, start
	p.played = append(p.played, name)
}

func (p *fakeProbe) plays(name string) int {
	n := 0
	for _, s := range p.played {
		if s == name {
			n++
		}
	}
	return n
}

type fakeInput struct {
	move   mgl64.Vec2
	jump   bool
	prone  bool
	attack [catalog.CategoryCount]bool
}

func (in *fakeInput) MoveVector() mgl64.Vec2 { return in.move }

func (in *fakeInput) JumpEdge() bool {
	j := in.jump
	in.jump = false
	return j
}

func (in *fakeInput) ProneHeld() bool                    { return in.prone }
func (in *fakeInput) AttackHeld(c catalog.Category) bool { return in.attack[c] }

type fakeGround struct{ grounded bool }

func (g *fakeGround) IsGrounded() bool { return g.grounded }

type fakePause struct{ paused bool }

func (p *fakePause) IsPaused() bool { return p.paused }

type fakeMover struct {
	total mgl64.Vec3
	calls int
}

func (m *fakeMover) MoveBy(d mgl64.Vec3) {
	m.total = m.total.Add(d)
	m.calls++
}

type rig struct {
	c      *Controller
	probe  *fakeProbe
	input  *fakeInput
	ground *fakeGround
	pause  *fakePause
	mover  *fakeMover
}

func newRig(t *testing.T) *rig {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	r := &rig{
		probe:  newFakeProbe(),
		input:  &fakeInput{},
		ground: &fakeGround{grounded: true},
		pause:  &fakePause{},
		mover:  &fakeMover{},
	}
	r.c = NewController(Deps{
		Probe:  r.probe,
		Input:  r.input,
		Ground: r.ground,
		Pause:  r.pause,
		Mover:  r.mover,
		Rand:   rand.New(rand.NewPCG(7, 7)),
	}, cat.NewSlots())
	return r
}

func (r *rig) run(n int) {
	for i := 0; i < n; i++ {
		r.c.Tick(0.01)
	}
}

// press holds an attack button for one tick and releases it on the next.
func (r *rig) press(c catalog.Category) {
	r.input.attack[c] = true
	r.run(1)
	r.input.attack[c] = false
	r.run(1)
}
