package components

import (
	"github.com/automoto/beachbomb/body"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object. Walls and players both
// carry one; obj.Data points back at the entry.
type ObjectData struct {
	*resolv.Object
}

// BodyData is the player's kinematic body. It shares the resolv object held
// by the Object component.
type BodyData struct {
	*body.Body
}

var (
	Object = donburi.NewComponentType[ObjectData]()
	Body   = donburi.NewComponentType[BodyData]()

	// Space is the arena's collision space singleton.
	Space = donburi.NewComponentType[resolv.Space]()
)
