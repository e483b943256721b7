package components

import (
	"github.com/automoto/beachbomb/animator"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animator.Animator
	// PrevState is the state drawn last frame, used to spot transitions.
	PrevState string
}

var Animation = donburi.NewComponentType[AnimationData]()
