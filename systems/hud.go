package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/fonts"
	"github.com/automoto/beachbomb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin  = 6
	hudPadding = 3
)

var hudBackground = color.RGBA{20, 20, 20, 160}

// DrawHUD shows the active loadout and outfit in the top-right corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	lineHeight := fonts.Ascent(face) + hudPadding
	y := hudMargin

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		lines := hudLines(e)
		width := 0
		for _, l := range lines {
			width = max(width, fonts.Width(face, l))
		}
		x := screen.Bounds().Dx() - hudMargin - width
		vector.FillRect(screen,
			float32(x-hudPadding), float32(y-hudPadding),
			float32(width+2*hudPadding), float32(len(lines)*lineHeight+hudPadding),
			hudBackground, false)
		for _, l := range lines {
			y += lineHeight
			text.Draw(screen, l, face, x, y-hudPadding, cfg.White)
		}
		y += 2 * hudPadding
	})
}

func hudLines(e *donburi.Entry) []string {
	p := components.Player.Get(e)
	slots := p.Controller.Slots()
	loadout := "-"
	if ls := slots.Loadouts(); slots.Current() >= 0 && slots.Current() < len(ls) {
		loadout = ls[slots.Current()].Name
	}
	lines := []string{fmt.Sprintf("P%d loadout: %s", p.Index+1, loadout)}
	if e.HasComponent(components.Outfit) {
		o := components.Outfit.Get(e)
		lines = append(lines, fmt.Sprintf("outfit: %s %v", o.CurrentOutfit, o.Accessories()))
	}
	return lines
}
