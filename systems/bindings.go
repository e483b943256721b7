package systems

import (
	cfg "github.com/automoto/beachbomb/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one action to physical inputs.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the default keyboard and gamepad layout.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	cfg.ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	cfg.ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	cfg.ActionJump:      {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	cfg.ActionProne:     {Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyC}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft}},

	cfg.ActionLightAttack:  {Keys: []ebiten.Key{ebiten.KeyJ}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
	cfg.ActionMediumAttack: {Keys: []ebiten.Key{ebiten.KeyK}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
	cfg.ActionHeavyAttack:  {Keys: []ebiten.Key{ebiten.KeyL}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},

	cfg.ActionPause:       {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
	cfg.ActionNextOutfit:  {Keys: []ebiten.Key{ebiten.KeyO}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft}},
	cfg.ActionNextLoadout: {Keys: []ebiten.Key{ebiten.KeyTab}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
	cfg.ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
	cfg.ActionRespawn:     {Keys: []ebiten.Key{ebiten.KeyR}},
}
