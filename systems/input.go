package systems

import (
	"strings"

	"github.com/automoto/beachbomb/catalog"
	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

var attackActions = [catalog.CategoryCount]cfg.ActionID{
	catalog.Light:  cfg.ActionLightAttack,
	catalog.Medium: cfg.ActionMediumAttack,
	catalog.Heavy:  cfg.ActionHeavyAttack,
}

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Stick = mgl64.Vec2{}
	input.JumpConsumed = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if stick, gpID, ok := readLeftStick(gamepadIDs); ok {
		input.Stick = stick
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// readLeftStick returns the first left stick outside the deadzone, in plane
// coordinates (+y away from the camera).
func readLeftStick(gamepads []ebiten.GamepadID) (mgl64.Vec2, ebiten.GamepadID, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if v.Len() > deadzone {
			return v, gpID, true
		}
	}
	return mgl64.Vec2{}, 0, false
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(inputEntry(ecs))
}

func inputEntry(ecs *ecs.ECS) *donburi.Entry {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return entry
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// InputSource adapts the Input singleton to the controller's input port.
type InputSource struct {
	entry *donburi.Entry
}

func NewInputSource(ecs *ecs.ECS) *InputSource {
	return &InputSource{entry: inputEntry(ecs)}
}

func (s *InputSource) data() *components.InputData {
	return components.Input.Get(s.entry)
}

func (s *InputSource) MoveVector() mgl64.Vec2 {
	in := s.data()
	if in.Stick != (mgl64.Vec2{}) {
		return clampUnit(in.Stick)
	}
	var v mgl64.Vec2
	if in.Current[cfg.ActionMoveRight] {
		v[0]++
	}
	if in.Current[cfg.ActionMoveLeft] {
		v[0]--
	}
	if in.Current[cfg.ActionMoveUp] {
		v[1]++
	}
	if in.Current[cfg.ActionMoveDown] {
		v[1]--
	}
	return clampUnit(v)
}

func (s *InputSource) JumpEdge() bool {
	in := s.data()
	if in.JumpConsumed || !GetAction(in, cfg.ActionJump).JustPressed {
		return false
	}
	in.JumpConsumed = true
	return true
}

func (s *InputSource) ProneHeld() bool {
	return s.data().Current[cfg.ActionProne]
}

func (s *InputSource) AttackHeld(c catalog.Category) bool {
	if c < 0 || c >= catalog.CategoryCount {
		return false
	}
	return s.data().Current[attackActions[c]]
}

func clampUnit(v mgl64.Vec2) mgl64.Vec2 {
	if l := v.Len(); l > 1 {
		return v.Mul(1 / l)
	}
	return v
}
