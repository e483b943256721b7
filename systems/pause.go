package systems

import (
	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.Ticks = 0
		if !pause.IsPaused {
			SaveOutfits(ecs)
		}
	}
	if pause.IsPaused {
		pause.Ticks++
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	title := "PAUSED"
	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, (int(width)-fonts.Width(titleFont, title))/2, int(height)/2, cfg.White)

	hint := getPauseHint(getOrCreateInput(ecs).LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, (int(width)-fonts.Width(hintFont, hint))/2, int(height)-16, cfg.White)
}

// getPauseHint returns the resume hint for the active device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(pauseEntry(ecs))
}

func pauseEntry(ecs *ecs.ECS) *donburi.Entry {
	ent, ok := components.Pause.First(ecs.World)
	if !ok {
		ent = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return ent
}

// PauseSignal adapts the Pause singleton to the controller's pause port.
type PauseSignal struct {
	entry *donburi.Entry
}

func NewPauseSignal(ecs *ecs.ECS) *PauseSignal {
	return &PauseSignal{entry: pauseEntry(ecs)}
}

func (p *PauseSignal) IsPaused() bool {
	return components.Pause.Get(p.entry).IsPaused
}
