package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/player"
	"github.com/automoto/beachbomb/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		d := getOrCreateDebug(ecs)
		d.Visible = !d.Visible
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !getOrCreateDebug(ecs).Visible {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	components.Marker.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Marker.Get(e)
		if m.Owner == nil || !m.Owner.Valid() {
			return
		}
		o := components.Object.Get(m.Owner)
		x := float32(o.X + o.W/2 - 2)
		y := float32(o.Y - 12 - m.Offset)
		vector.FillRect(screen, x, y, 4, 4, cfg.Orange, false)
	})

	line := 4
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		anim := components.Animation.Get(e)
		for _, s := range snapshotLines(p.Index, anim.State(), p.Controller.Snapshot()) {
			ebitenutil.DebugPrintAt(screen, s, 4, line)
			line += 14
		}
	})
}

func snapshotLines(index int, state string, s player.Snapshot) []string {
	attack := s.Attack
	if attack == "" {
		attack = "-"
	}
	return []string{
		fmt.Sprintf("P%d %s  loco=%s prone=%s slip=%s", index, state, s.Locomotion, s.Prone, s.Slip),
		fmt.Sprintf("  attack=%s/%s cd=%.2f reject=%s loadout=%d", attack, s.AttackPhase, s.Cooldown, s.LastRejection, s.Loadout),
		fmt.Sprintf("  grounded=%t vy=%.2f speed=%.2f fall=%.2f land=%s", s.Grounded, s.Vertical, s.Speed, s.FallTimer, s.LastLanding),
		fmt.Sprintf("  authority=%s dropped=%d", s.Authority, s.Dropped),
	}
}

func getOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		e := ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(e, components.DebugData{Visible: cfg.Debug.ShowOverlay})
	}
	e, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(e)
}
