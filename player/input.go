package player

import (
	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Frame is one tick's sampled input.
type Frame struct {
	Move          mgl64.Vec2
	JumpPressed   bool
	ProneHeld     bool
	PronePressed  bool
	AttackHeld    [catalog.CategoryCount]bool
	AttackPressed [catalog.CategoryCount]bool
}

// Pressed reports whether a mash-tracked action had a fresh press.
func (f Frame) Pressed(a config.TrackedAction) bool {
	switch a {
	case config.TrackProne:
		return f.PronePressed
	case config.TrackLight:
		return f.AttackPressed[catalog.Light]
	case config.TrackMedium:
		return f.AttackPressed[catalog.Medium]
	case config.TrackHeavy:
		return f.AttackPressed[catalog.Heavy]
	case config.TrackJump:
		return f.JumpPressed
	}
	return false
}

type sampler struct {
	prevProne  bool
	prevAttack [catalog.CategoryCount]bool
}

func (s *sampler) sample(in InputSource) Frame {
	f := Frame{
		Move:        in.MoveVector(),
		JumpPressed: in.JumpEdge(),
		ProneHeld:   in.ProneHeld(),
	}
	f.PronePressed = f.ProneHeld && !s.prevProne
	s.prevProne = f.ProneHeld

	for c := catalog.Category(0); c < catalog.CategoryCount; c++ {
		f.AttackHeld[c] = in.AttackHeld(c)
		f.AttackPressed[c] = f.AttackHeld[c] && !s.prevAttack[c]
		s.prevAttack[c] = f.AttackHeld[c]
	}
	return f
}

// tickContext is shared by the three stages of one controller.
type tickContext struct {
	dt       float64
	now      float64
	grounded bool
	immune   bool
	frame    Frame
}
