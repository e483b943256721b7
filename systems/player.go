package systems

import (
	"log"

	"github.com/automoto/beachbomb/components"
	cfg "github.com/automoto/beachbomb/config"
	"github.com/automoto/beachbomb/metrics"
	"github.com/automoto/beachbomb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func tickSeconds() float64 {
	return 1 / float64(cfg.C.TickRate)
}

// UpdatePlayer ticks every player controller. It runs while paused too: the
// controller watches the pause signal itself.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	paused := GetOrCreatePause(ecs).IsPaused
	dt := tickSeconds()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		if !paused {
			if GetAction(input, cfg.ActionNextLoadout).JustPressed {
				cycleLoadout(p)
			}
			if GetAction(input, cfg.ActionRespawn).JustPressed {
				respawn(e)
			}
		}
		p.Controller.Tick(dt)
		metrics.PublishState(p.Controller.Snapshot())
	})
}

// UpdateAnimation advances each player's animator after the controller has
// written this tick's parameters.
func UpdateAnimation(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.PrevState = anim.State()
		anim.Update(dt)
	})
}

func cycleLoadout(p *components.PlayerData) {
	slots := p.Controller.Slots()
	n := len(slots.Loadouts())
	if n == 0 {
		return
	}
	next := (slots.Current() + 1) % n
	if err := p.Controller.ApplyLoadout(next); err != nil {
		log.Printf("Warning: Could not apply loadout %d: %v", next, err)
		return
	}
	log.Printf("player %d: loadout %d", p.Index, next)
}

// respawn puts the player back on its spawn point with a fresh core.
func respawn(e *donburi.Entry) {
	p := components.Player.Get(e)
	b := components.Body.Get(e)
	b.Teleport(p.SpawnX-b.Object.W/2, p.SpawnY-b.Object.H)
	p.Controller.Reset()
}
