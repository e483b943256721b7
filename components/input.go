package components

import (
	cfg "github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Stick           mgl64.Vec2 // analog left stick after deadzone, zero when unused
	LastInputMethod InputMethod

	// JumpConsumed is set once the controller has taken this frame's jump
	// press.
	JumpConsumed bool
}

var Input = donburi.NewComponentType[InputData]()
