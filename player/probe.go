package player

import (
	"github.com/automoto/beachbomb/catalog"
	"github.com/go-gl/mathgl/mgl64"
)

// AnimationStateProbe is the animation system as seen by the core. Params
// are write-mostly outputs; the named-state query is the corroborating truth.
type AnimationStateProbe interface {
	IsCurrentState(name string) bool
	// NormalizedProgress of the current state. Looping states keep counting
	// past 1.
	NormalizedProgress() float64
	Param(name string) bool
	SetParam(name string, v bool)
	SetFloat(name string, v float64)
	// Play forces a transition, bypassing parameter-driven rules.
	Play(name string, normalizedStart float64)
}

// InputSource exposes logical actions. Attack buttons are level triggered;
// the core derives edges itself.
type InputSource interface {
	MoveVector() mgl64.Vec2
	// JumpEdge reports a fresh press and consumes it.
	JumpEdge() bool
	ProneHeld() bool
	AttackHeld(c catalog.Category) bool
}

type GroundProbe interface {
	IsGrounded() bool
}

type PauseSignal interface {
	IsPaused() bool
}

// Mover is the host body. Delta is (plane x, up, plane y) in world units.
type Mover interface {
	MoveBy(delta mgl64.Vec3)
}

// ForceSink receives the output of scheduled attack forces.
type ForceSink interface {
	ApplyVerticalImpulse(v float64)
	ApplyHorizontalImpulse(v mgl64.Vec2)
	MoveBy(delta mgl64.Vec3)
}

func inAnyState(p AnimationStateProbe, names ...string) bool {
	for _, n := range names {
		if p.IsCurrentState(n) {
			return true
		}
	}
	return false
}

func anyParam(p AnimationStateProbe, names ...string) bool {
	for _, n := range names {
		if p.Param(n) {
			return true
		}
	}
	return false
}

func clearParams(p AnimationStateProbe, names ...string) {
	for _, n := range names {
		p.SetParam(n, false)
	}
}
