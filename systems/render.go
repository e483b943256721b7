package systems

import (
	"image/color"
	"slices"

	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// depthParallax is how far up the screen one pixel of lane depth draws.
const depthParallax = 0.5

var outfitColors = map[string]color.RGBA{
	"PJs":      cfg.LightBlue,
	"Swimsuit": cfg.Red,
	"Wetsuit":  cfg.Sea,
	"Tuxedo":   {R: 30, G: 30, B: 30, A: 255},
}

var shadowColor = color.RGBA{R: 0, G: 0, B: 0, A: 90}

// DrawArena renders the sea backdrop and every solid.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sea)
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Sand, false)
	})
}

// DrawPlayers renders each player as a box coloured by outfit, with a band
// showing the animation state family and a notch on the facing side.
func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		b := components.Body.Get(e)
		anim := components.Animation.Get(e)
		o := b.Object

		lift := (b.Depth - (b.MinDepth+b.MaxDepth)/2) * depthParallax
		x, y := float32(o.X), float32(o.Y-lift)
		w, h := float32(o.W), float32(o.H)

		// Shadow stays on the lane even in the air.
		vector.FillRect(screen, x-2, float32(o.Y+o.H-lift)-2, w+4, 3, shadowColor, false)

		if slices.Contains(proneLike, anim.State()) {
			y += h / 2
			h /= 2
		}

		body := cfg.White
		if e.HasComponent(components.Outfit) {
			if c, ok := outfitColors[components.Outfit.Get(e).CurrentOutfit]; ok {
				body = c
			}
		}
		vector.FillRect(screen, x, y, w, h, body, false)
		vector.FillRect(screen, x, y, w, 4, stateColor(anim.State()), false)

		facing := p.Controller.Locomotion().Facing
		nx := x + w
		if facing.X() < 0 {
			nx = x - 3
		}
		vector.FillRect(screen, nx, y+h/3, 3, 4, cfg.Orange, false)

		if e.HasComponent(components.Outfit) {
			for i, a := range components.Outfit.Get(e).Accessories() {
				vector.FillRect(screen, x+float32(i*4), y-4, 3, 3, accessoryColor(a), false)
			}
		}
	})
}

var proneLike = []string{
	cfg.StateProneDown, cfg.StateProneTo, cfg.StateProneIdle, cfg.StateCrawl, cfg.StateSplat,
}

func stateColor(state string) color.RGBA {
	switch {
	case slices.Contains(cfg.AttackParams, state):
		return cfg.Orange
	case state == cfg.StateSlip || state == cfg.StateSlipRecover:
		return cfg.LightBlue
	case state == cfg.StateSplat || state == cfg.StateHighLand:
		return cfg.Red
	case slices.Contains(cfg.ProneStates, state):
		return cfg.Purple
	}
	return cfg.White
}

func accessoryColor(a int) color.RGBA {
	palette := []color.RGBA{cfg.Orange, cfg.Purple, cfg.Red, cfg.LightBlue}
	return palette[(a-1+len(palette))%len(palette)]
}
